package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"eduportal/model"
	"eduportal/utils/auth"
)

// RegisterInput is the data needed to create an account.
type RegisterInput struct {
	Username      string
	Email         string
	Password      string
	Role          string
	Bio           string
	RollNumber    string
	ContactNumber string
	Address       string
}

// Login verifies the credentials, stores a session snapshot of the
// user and appends a Login entry. Unknown username and wrong password
// both return ErrUnauthenticated; callers get no distinction.
func (s *RecordStore) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, ErrUnauthenticated
	}

	sess := &Session{
		Token:     uuid.NewString(),
		User:      *user,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Put(ctx, sess); err != nil {
		return nil, err
	}

	s.logActivity(ctx, user.ID, user.Username, model.ActionLogin, "")
	return sess, nil
}

// Logout appends a Logout entry and clears the session. A token with
// no live session is a no-op and logs nothing.
func (s *RecordStore) Logout(ctx context.Context, token string) error {
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	s.logActivity(ctx, sess.User.ID, sess.User.Username, model.ActionLogout, "")
	return s.sessions.Delete(ctx, token)
}

// CurrentSession returns the stored session snapshot for the token.
// This is purely a read of the pointer; it carries no freshness
// guarantee against concurrent edits of the underlying user record.
func (s *RecordStore) CurrentSession(ctx context.Context, token string) (*Session, error) {
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return sess, nil
}

// Register creates a new account. Username and email are checked
// independently, with exact case-sensitive matching. The new user is
// not logged in.
func (s *RecordStore) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if in.Role == "" {
		in.Role = model.RoleStudent
	}
	if in.Role != model.RoleStudent && in.Role != model.RoleAdmin {
		return nil, ErrInvalidInput
	}

	if _, err := s.users.GetByUsername(ctx, in.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:      in.Username,
		Email:         in.Email,
		PasswordHash:  hash,
		Role:          in.Role,
		Bio:           in.Bio,
		RollNumber:    in.RollNumber,
		ContactNumber: in.ContactNumber,
		Address:       in.Address,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logActivity(ctx, user.ID, user.Username, model.ActionRegister, "")
	return user, nil
}
