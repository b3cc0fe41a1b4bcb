package store

import (
	"context"
	"time"

	"eduportal/model"
)

// Session is the stored pointer identifying the logged-in user. It
// holds a full snapshot of the user record taken at login time. The
// snapshot is refreshed on self profile edits and self enrollments,
// never on admin edits of other users' records.
type Session struct {
	Token     string     `json:"token"`
	User      model.User `json:"user"`
	CreatedAt time.Time  `json:"created_at"`
}

// SessionStore is the key-value substrate holding sessions, keyed by
// opaque token. Get returns ErrNotFound for unknown or expired tokens.
type SessionStore interface {
	Put(ctx context.Context, s *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
