package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"eduportal/store"
	"eduportal/utils/auth"
	"eduportal/utils/response"
)

// AuthMiddleware resolves session tokens into live sessions.
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	records    *store.RecordStore
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager, records *store.RecordStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		records:    records,
	}
}

func (m *AuthMiddleware) resolve(c *fiber.Ctx) (*store.Session, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, store.ErrUnauthenticated
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, store.ErrUnauthenticated
	}

	claims, err := m.jwtManager.ValidateToken(parts[1])
	if err != nil {
		return nil, err
	}

	// The session record must still exist; logout removes it and
	// thereby revokes the token ahead of its expiry.
	return m.records.CurrentSession(c.Context(), claims.SessionKey())
}

// Required rejects requests without a live session.
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := m.resolve(c)
		if err != nil {
			if err == auth.ErrExpiredToken {
				return response.Unauthorized(c, "Token has expired")
			}
			return response.Unauthorized(c, "Not logged in")
		}

		c.Locals("session", sess)
		return c.Next()
	}
}

// Optional resolves a session when one is presented and continues
// either way.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sess, err := m.resolve(c); err == nil {
			c.Locals("session", sess)
		}
		return c.Next()
	}
}

// RequireAdmin rejects requests whose session user is not an admin.
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := m.resolve(c)
		if err != nil {
			if err == auth.ErrExpiredToken {
				return response.Unauthorized(c, "Token has expired")
			}
			return response.Unauthorized(c, "Not logged in")
		}

		if !sess.User.IsAdmin() {
			return response.Forbidden(c, "Admin access required")
		}

		c.Locals("session", sess)
		return c.Next()
	}
}

// GetSession extracts the resolved session from context.
func GetSession(c *fiber.Ctx) (*store.Session, bool) {
	sess := c.Locals("session")
	if sess == nil {
		return nil, false
	}
	s, ok := sess.(*store.Session)
	return s, ok
}
