package auth

import (
	"github.com/gofiber/fiber/v2"

	"eduportal/utils/middleware"
	"eduportal/utils/response"
)

// Me returns the session snapshot of the logged-in user.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sess, ok := middleware.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "Not logged in")
	}
	return response.Success(c, ToUserResponse(&sess.User))
}
