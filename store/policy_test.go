package store

import (
	"errors"
	"testing"

	"eduportal/model"
)

func TestAuthorize(t *testing.T) {
	admin := &Session{User: model.User{ID: "a1", Role: model.RoleAdmin}}
	owner := &Session{User: model.User{ID: "u1", Role: model.RoleStudent}}
	stranger := &Session{User: model.User{ID: "u2", Role: model.RoleStudent}}

	tests := []struct {
		name    string
		sess    *Session
		res     resource
		write   bool
		ownerID string
		wantErr error
	}{
		{"public course read, no session", nil, resourceCourse, false, "", nil},
		{"course write, no session", nil, resourceCourse, true, "", ErrUnauthenticated},
		{"course write, student", stranger, resourceCourse, true, "", ErrForbidden},
		{"course write, admin", admin, resourceCourse, true, "", nil},
		{"user read, student", stranger, resourceUser, false, "", ErrForbidden},
		{"user read, admin", admin, resourceUser, false, "", nil},
		{"user write, owner", owner, resourceUser, true, "u1", nil},
		{"user write, stranger", stranger, resourceUser, true, "u1", ErrForbidden},
		{"user write, admin over other", admin, resourceUser, true, "u1", nil},
		{"enrollment write, owner", owner, resourceEnrollment, true, "u1", nil},
		{"enrollment write, stranger", stranger, resourceEnrollment, true, "u1", ErrForbidden},
		{"inquiry write, no session", nil, resourceInquiry, true, "", ErrUnauthenticated},
		{"inquiry write, student", stranger, resourceInquiry, true, "", ErrForbidden},
		{"activity read, owner", owner, resourceActivity, false, "u1", nil},
		{"activity read, stranger", stranger, resourceActivity, false, "u1", ErrForbidden},
		{"notice read, no session", nil, resourceNotice, false, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorize(tt.sess, tt.res, tt.write, tt.ownerID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("authorize() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
