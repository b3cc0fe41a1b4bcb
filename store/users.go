package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"

	"eduportal/model"
)

// ProfilePatch carries the fields a profile update may touch. Role,
// password, id and creation time are deliberately absent: the patch
// cannot escalate a role or rewrite identity no matter who calls.
type ProfilePatch struct {
	Username        *string
	Email           *string
	Bio             *string
	RollNumber      *string
	ContactNumber   *string
	Address         *string
	ProfilePhoto    *string
	PreviousSchools datatypes.JSON
	AcademicMarks   datatypes.JSON
}

// UpdateProfile merges the patch into the target user. Callers must
// be the target user or an admin. Self-edits refresh the session
// snapshot; admin edits of other users do not touch their sessions.
func (s *RecordStore) UpdateProfile(ctx context.Context, sess *Session, userID string, patch ProfilePatch) (*model.User, error) {
	if err := authorize(sess, resourceUser, true, userID); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	if patch.RollNumber != nil {
		user.RollNumber = *patch.RollNumber
	}
	if patch.ContactNumber != nil {
		user.ContactNumber = *patch.ContactNumber
	}
	if patch.Address != nil {
		user.Address = *patch.Address
	}
	if patch.ProfilePhoto != nil {
		user.ProfilePhoto = *patch.ProfilePhoto
	}
	if patch.PreviousSchools != nil {
		user.PreviousSchools = patch.PreviousSchools
	}
	if patch.AcademicMarks != nil {
		user.AcademicMarks = patch.AcademicMarks
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	if sess.User.ID == userID {
		sess.User = *user
		if err := s.sessions.Put(ctx, sess); err != nil {
			return nil, err
		}
	}

	s.logActivity(ctx, sess.User.ID, sess.User.Username, model.ActionUpdateProfile,
		fmt.Sprintf("Updated user profile for %s", user.Username))
	return user, nil
}

// DeleteAccount removes the target user. Same ownership rule as
// UpdateProfile. Deleting the session user also logs that session out.
func (s *RecordStore) DeleteAccount(ctx context.Context, sess *Session, userID string) error {
	if err := authorize(sess, resourceUser, true, userID); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}

	s.logActivity(ctx, sess.User.ID, sess.User.Username, model.ActionDeleteAccount,
		fmt.Sprintf("Deleted account for %s", user.Username))

	if sess.User.ID == userID {
		return s.Logout(ctx, sess.Token)
	}
	return nil
}

// GetUser returns one user record. Admin only.
func (s *RecordStore) GetUser(ctx context.Context, sess *Session, userID string) (*model.User, error) {
	if err := authorize(sess, resourceUser, false, ""); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, userID)
}

// ListUsers returns all user records. Admin only.
func (s *RecordStore) ListUsers(ctx context.Context, sess *Session) ([]model.User, error) {
	if err := authorize(sess, resourceUser, false, ""); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

// Enroll adds the user to a course. Enrolling an already-enrolled
// user is an idempotent no-op. A self-enrollment refreshes the
// session snapshot so the session's view of enrollments stays current.
func (s *RecordStore) Enroll(ctx context.Context, sess *Session, userID, courseID string) error {
	if err := authorize(sess, resourceEnrollment, true, userID); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return err
	}

	if _, err := s.enrollments.Get(ctx, userID, courseID); err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	enrollment := &model.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Status:   model.EnrollmentNotStarted,
		Progress: 0,
	}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		return err
	}

	if sess.User.ID == userID {
		sess.User = *user
		if err := s.sessions.Put(ctx, sess); err != nil {
			return err
		}
	}

	s.logActivity(ctx, user.ID, user.Username, model.ActionEnrollInCourse,
		fmt.Sprintf("Enrolled in course: %s", course.Title))
	return nil
}

// SetProgress records course progress for an enrollment and moves the
// status bucket accordingly. Progress is clamped to 0-100.
func (s *RecordStore) SetProgress(ctx context.Context, sess *Session, userID, courseID string, progress int) (*model.Enrollment, error) {
	if err := authorize(sess, resourceEnrollment, true, userID); err != nil {
		return nil, err
	}

	enrollment, err := s.enrollments.Get(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	enrollment.Progress = progress
	enrollment.Status = model.StatusForProgress(progress)

	if err := s.enrollments.Save(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// EnrolledCourses joins the user's enrollments against the course
// catalog. The user themselves or an admin may read the view.
// Enrollments whose course no longer resolves are silently dropped.
// A missing user yields an empty view, not an error.
func (s *RecordStore) EnrolledCourses(ctx context.Context, sess *Session, userID string) ([]model.EnrolledCourse, error) {
	if err := authorize(sess, resourceEnrollment, false, userID); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []model.EnrolledCourse{}, nil
		}
		return nil, err
	}

	enrollments, err := s.enrollments.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := make([]model.EnrolledCourse, 0, len(enrollments))
	for _, e := range enrollments {
		course, err := s.courses.GetByID(ctx, e.CourseID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		view = append(view, model.EnrolledCourse{
			Course:         *course,
			Status:         e.Status,
			Progress:       e.Progress,
			EnrollmentDate: e.EnrolledAt,
		})
	}
	return view, nil
}
