package notice

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"eduportal/model"
	"eduportal/store"
	"eduportal/utils/middleware"
	"eduportal/utils/response"
	"eduportal/utils/validation"
)

// Uploader puts attachment files into object storage and returns
// their public URL.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

// NoticeHandler groups the notice board endpoints.
type NoticeHandler struct {
	records   *store.RecordStore
	uploader  Uploader
	validator *validation.Validator
}

// NewNoticeHandler creates a new notice handler. The uploader may be
// nil, in which case attachment upload is disabled.
func NewNoticeHandler(records *store.RecordStore, uploader Uploader) *NoticeHandler {
	return &NoticeHandler{
		records:   records,
		uploader:  uploader,
		validator: validation.NewValidator(),
	}
}

// CreateNoticeRequest represents a new notice board entry
type CreateNoticeRequest struct {
	Title       string             `json:"title" validate:"required"`
	Content     string             `json:"content" validate:"required"`
	Category    string             `json:"category" validate:"omitempty,oneof=General Important Event"`
	EventDate   *time.Time         `json:"event_date"`
	Attachments []model.Attachment `json:"attachments"`
}

// UpdateNoticeRequest carries optional notice updates
type UpdateNoticeRequest struct {
	Title       *string            `json:"title"`
	Content     *string            `json:"content"`
	Category    *string            `json:"category" validate:"omitempty,oneof=General Important Event"`
	EventDate   *time.Time         `json:"event_date"`
	Attachments []model.Attachment `json:"attachments"`
}

// List returns all notices. Public.
func (h *NoticeHandler) List(c *fiber.Ctx) error {
	notices, err := h.records.ListNotices(c.Context())
	if err != nil {
		return response.FromStoreError(c, err)
	}
	return response.Success(c, notices)
}

// Get returns one notice. Public.
func (h *NoticeHandler) Get(c *fiber.Ctx) error {
	notice, err := h.records.GetNotice(c.Context(), c.Params("id"))
	if err != nil {
		return response.FromStoreError(c, err)
	}
	return response.Success(c, notice)
}

// Create publishes a notice. Route is admin-gated.
func (h *NoticeHandler) Create(c *fiber.Ctx) error {
	sess, _ := middleware.GetSession(c)

	var req CreateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.ValidationError(c, err)
	}

	notice, err := h.records.AddNotice(c.Context(), sess, store.NoticeInput{
		Title:       req.Title,
		Content:     req.Content,
		Category:    model.NoticeCategory(req.Category),
		EventDate:   req.EventDate,
		Attachments: req.Attachments,
	})
	if err != nil {
		return response.FromStoreError(c, err)
	}
	return response.Created(c, notice)
}

// Update edits a notice. Route is admin-gated.
func (h *NoticeHandler) Update(c *fiber.Ctx) error {
	sess, _ := middleware.GetSession(c)

	var req UpdateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.ValidationError(c, err)
	}

	patch := store.NoticePatch{
		Title:       req.Title,
		Content:     req.Content,
		EventDate:   req.EventDate,
		Attachments: req.Attachments,
	}
	if req.Category != nil {
		category := model.NoticeCategory(*req.Category)
		patch.Category = &category
	}

	notice, err := h.records.UpdateNotice(c.Context(), sess, c.Params("id"), patch)
	if err != nil {
		return response.FromStoreError(c, err)
	}
	return response.Success(c, notice)
}

// Delete removes a notice. Route is admin-gated.
func (h *NoticeHandler) Delete(c *fiber.Ctx) error {
	sess, _ := middleware.GetSession(c)

	if err := h.records.DeleteNotice(c.Context(), sess, c.Params("id")); err != nil {
		return response.FromStoreError(c, err)
	}
	return response.SuccessWithMessage(c, "Notice deleted", nil)
}

// UploadAttachment stores a multipart file in object storage and
// appends its reference to the notice. Route is admin-gated.
func (h *NoticeHandler) UploadAttachment(c *fiber.Ctx) error {
	if h.uploader == nil {
		return response.ServiceUnavailable(c, "Attachment storage is not configured")
	}

	sess, _ := middleware.GetSession(c)
	noticeID := c.Params("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "A file field is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	attID := uuid.NewString()
	key := fmt.Sprintf("notices/%s/%s%s", noticeID, attID, filepath.Ext(fileHeader.Filename))

	url, err := h.uploader.Upload(c.Context(), key, contentType, file, fileHeader.Size)
	if err != nil {
		return response.InternalServerError(c, "Failed to store attachment")
	}

	notice, err := h.records.AttachToNotice(c.Context(), sess, noticeID, model.Attachment{
		ID:   attID,
		Name: fileHeader.Filename,
		URL:  url,
		Type: contentType,
	})
	if err != nil {
		return response.FromStoreError(c, err)
	}
	return response.Created(c, notice)
}
