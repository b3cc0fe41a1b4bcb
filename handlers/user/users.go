package user

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	authhandler "eduportal/handlers/auth"
	"eduportal/model"
	"eduportal/store"
	"eduportal/utils/middleware"
	"eduportal/utils/response"
	"eduportal/utils/validation"
)

// UserHandler groups the profile and user-administration endpoints.
type UserHandler struct {
	records   *store.RecordStore
	validator *validation.Validator
}

// NewUserHandler creates a new user handler
func NewUserHandler(records *store.RecordStore) *UserHandler {
	return &UserHandler{
		records:   records,
		validator: validation.NewValidator(),
	}
}

// UpdateProfileRequest carries the editable profile fields. Role and
// password are not part of this surface.
type UpdateProfileRequest struct {
	Username        *string               `json:"username" validate:"omitempty,min=3,max=30"`
	Email           *string               `json:"email" validate:"omitempty,email"`
	Bio             *string               `json:"bio"`
	RollNumber      *string               `json:"roll_number"`
	ContactNumber   *string               `json:"contact_number"`
	Address         *string               `json:"address"`
	ProfilePhoto    *string               `json:"profile_photo"`
	PreviousSchools []model.PreviousSchool `json:"previous_schools"`
	AcademicMarks   []model.SemesterMarks  `json:"academic_marks"`
}

func (r *UpdateProfileRequest) toPatch() (store.ProfilePatch, error) {
	patch := store.ProfilePatch{
		Username:      r.Username,
		Email:         r.Email,
		Bio:           r.Bio,
		RollNumber:    r.RollNumber,
		ContactNumber: r.ContactNumber,
		Address:       r.Address,
		ProfilePhoto:  r.ProfilePhoto,
	}
	if r.PreviousSchools != nil {
		data, err := json.Marshal(r.PreviousSchools)
		if err != nil {
			return patch, err
		}
		patch.PreviousSchools = datatypes.JSON(data)
	}
	if r.AcademicMarks != nil {
		data, err := json.Marshal(r.AcademicMarks)
		if err != nil {
			return patch, err
		}
		patch.AcademicMarks = datatypes.JSON(data)
	}
	return patch, nil
}

func (h *UserHandler) updateUser(c *fiber.Ctx, userID string) error {
	sess, _ := middleware.GetSession(c)

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.ValidationError(c, err)
	}
	if req.Username != nil {
		if ok, msg := validation.ValidateUsername(*req.Username); !ok {
			return response.BadRequest(c, msg)
		}
	}

	patch, err := req.toPatch()
	if err != nil {
		return response.BadRequest(c, "Invalid embedded documents")
	}

	user, err := h.records.UpdateProfile(c.Context(), sess, userID, patch)
	if err != nil {
		return response.FromStoreError(c, err)
	}
	return response.Success(c, authhandler.ToUserResponse(user))
}

// UpdateProfile edits the logged-in user's own record.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "Not logged in")
	}
	return h.updateUser(c, sess.User.ID)
}

// UpdateUser edits an arbitrary user record. Route is admin-gated.
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	return h.updateUser(c, c.Params("id"))
}

// DeleteProfile removes the logged-in user's own account and ends the
// session.
func (h *UserHandler) DeleteProfile(c *fiber.Ctx) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "Not logged in")
	}

	if err := h.records.DeleteAccount(c.Context(), sess, sess.User.ID); err != nil {
		return response.FromStoreError(c, err)
	}
	return response.SuccessWithMessage(c, "Account deleted", nil)
}

// DeleteUser removes an arbitrary user record. Route is admin-gated.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	sess, _ := middleware.GetSession(c)

	if err := h.records.DeleteAccount(c.Context(), sess, c.Params("id")); err != nil {
		return response.FromStoreError(c, err)
	}
	return response.SuccessWithMessage(c, "Account deleted", nil)
}

// GetUser returns one user record. Route is admin-gated.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	sess, _ := middleware.GetSession(c)

	user, err := h.records.GetUser(c.Context(), sess, c.Params("id"))
	if err != nil {
		return response.FromStoreError(c, err)
	}
	return response.Success(c, authhandler.ToUserResponse(user))
}

// ListUsers returns all user records. Route is admin-gated.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	sess, _ := middleware.GetSession(c)

	users, err := h.records.ListUsers(c.Context(), sess)
	if err != nil {
		return response.FromStoreError(c, err)
	}

	res := make([]authhandler.UserResponse, 0, len(users))
	for i := range users {
		res = append(res, authhandler.ToUserResponse(&users[i]))
	}
	return response.Success(c, res)
}
