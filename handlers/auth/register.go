package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"eduportal/store"
	"eduportal/utils/response"
	"eduportal/utils/validation"
)

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Username      string `json:"username" validate:"required,min=3,max=30"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	Role          string `json:"role" validate:"omitempty,oneof=admin student"`
	Bio           string `json:"bio"`
	RollNumber    string `json:"roll_number"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
}

// Register handles account creation. The new account is not logged in;
// the client follows up with a login call.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Username = validation.SanitizeString(req.Username)
	req.Email = validation.SanitizeString(req.Email)

	if err := h.validator.ValidateStruct(&req); err != nil {
		return response.ValidationError(c, err)
	}
	if ok, msg := validation.ValidateUsername(req.Username); !ok {
		return response.BadRequest(c, msg)
	}

	user, err := h.records.Register(c.Context(), store.RegisterInput{
		Username:      req.Username,
		Email:         req.Email,
		Password:      req.Password,
		Role:          req.Role,
		Bio:           req.Bio,
		RollNumber:    req.RollNumber,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return response.Conflict(c, err.Error())
		}
		return response.FromStoreError(c, err)
	}

	return response.Created(c, ToUserResponse(user))
}
