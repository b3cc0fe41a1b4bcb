package auth

import (
	"time"

	"eduportal/model"
	"eduportal/store"
	"eduportal/utils/auth"
	"eduportal/utils/middleware"
	"eduportal/utils/validation"
)

// AuthHandler groups the authentication endpoints.
type AuthHandler struct {
	records    *store.RecordStore
	jwtManager *auth.JWTManager
	bruteForce *middleware.BruteForceProtection
	validator  *validation.Validator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(records *store.RecordStore, jwtManager *auth.JWTManager, bruteForce *middleware.BruteForceProtection) *AuthHandler {
	return &AuthHandler{
		records:    records,
		jwtManager: jwtManager,
		bruteForce: bruteForce,
		validator:  validation.NewValidator(),
	}
}

// UserResponse is the user shape returned by the API. The password
// hash never appears here.
type UserResponse struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	ProfilePhoto  string    `json:"profile_photo,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	RollNumber    string    `json:"roll_number,omitempty"`
	ContactNumber string    `json:"contact_number,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToUserResponse converts a user record to its API shape.
func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		Role:          u.Role,
		ProfilePhoto:  u.ProfilePhoto,
		Bio:           u.Bio,
		RollNumber:    u.RollNumber,
		ContactNumber: u.ContactNumber,
		Address:       u.Address,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
