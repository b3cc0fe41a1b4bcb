package inquiry

import (
	"github.com/gofiber/fiber/v2"

	"eduportal/model"
	"eduportal/store"
	"eduportal/utils/middleware"
	"eduportal/utils/response"
	"eduportal/utils/validation"
)

// InquiryHandler groups the contact-form endpoints.
type InquiryHandler struct {
	records   *store.RecordStore
	validator *validation.Validator
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(records *store.RecordStore) *InquiryHandler {
	return &InquiryHandler{
		records:   records,
		validator: validation.NewValidator(),
	}
}

// CreateInquiryRequest represents a contact-form submission
type CreateInquiryRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// StatusRequest moves an inquiry between Pending and Resolved
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Resolved"`
}

// Create records a submission. Public; a session is optional and only
// affects activity logging.
func (h *InquiryHandler) Create(c *fiber.Ctx) error {
	sess, _ := middleware.GetSession(c)

	var req CreateInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.Name = validation.SanitizeString(req.Name)
	req.Email = validation.SanitizeString(req.Email)
	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.ValidationError(c, err)
	}

	inquiry, err := h.records.AddInquiry(c.Context(), sess, store.InquiryInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return response.FromStoreError(c, err)
	}
	return response.Created(c, inquiry)
}

// List returns all inquiries. Route is admin-gated.
func (h *InquiryHandler) List(c *fiber.Ctx) error {
	sess, _ := middleware.GetSession(c)

	inquiries, err := h.records.ListInquiries(c.Context(), sess)
	if err != nil {
		return response.FromStoreError(c, err)
	}
	return response.Success(c, inquiries)
}

// Get returns one inquiry. Route is admin-gated.
func (h *InquiryHandler) Get(c *fiber.Ctx) error {
	sess, _ := middleware.GetSession(c)

	inquiry, err := h.records.GetInquiry(c.Context(), sess, c.Params("id"))
	if err != nil {
		return response.FromStoreError(c, err)
	}
	return response.Success(c, inquiry)
}

// Mine returns the inquiries matching the session user's email.
func (h *InquiryHandler) Mine(c *fiber.Ctx) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "Not logged in")
	}

	inquiries, err := h.records.MyInquiries(c.Context(), sess)
	if err != nil {
		return response.FromStoreError(c, err)
	}
	return response.Success(c, inquiries)
}

// UpdateStatus moves an inquiry between Pending and Resolved. Route is
// admin-gated.
func (h *InquiryHandler) UpdateStatus(c *fiber.Ctx) error {
	sess, _ := middleware.GetSession(c)

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.ValidationError(c, err)
	}

	inquiry, err := h.records.UpdateInquiryStatus(c.Context(), sess, c.Params("id"), model.InquiryStatus(req.Status))
	if err != nil {
		return response.FromStoreError(c, err)
	}
	return response.Success(c, inquiry)
}
