package auth

import (
	"github.com/gofiber/fiber/v2"

	"eduportal/utils/middleware"
	"eduportal/utils/response"
)

// Logout ends the current session. Calling it without a live session
// is a no-op, matching the store semantics.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.SuccessWithMessage(c, "Logged out", nil)
	}

	if err := h.records.Logout(c.Context(), sess.Token); err != nil {
		return response.FromStoreError(c, err)
	}
	return response.SuccessWithMessage(c, "Logged out", nil)
}
