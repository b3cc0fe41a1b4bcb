package store_test

import (
	"context"
	"errors"
	"testing"

	"eduportal/model"
	"eduportal/store"
)

func strPtr(s string) *string { return &s }

func TestUpdateProfileOwnership(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	target := register(t, s, "target", "target@x.com", "password1", model.RoleStudent)
	register(t, s, "other", "other@x.com", "password1", model.RoleStudent)
	otherSess := login(t, s, "other", "password1")

	_, err := s.UpdateProfile(ctx, otherSess, target.ID, store.ProfilePatch{Bio: strPtr("hacked")})
	if !errors.Is(err, store.ErrForbidden) {
		t.Fatalf("UpdateProfile() by non-owner error = %v, want ErrForbidden", err)
	}

	// Target record is untouched.
	adminSess := adminSession(t, s)
	got, err := s.GetUser(ctx, adminSess, target.ID)
	if err != nil {
		t.Fatalf("GetUser() failed: %v", err)
	}
	if got.Bio != "" {
		t.Errorf("Bio = %q after forbidden edit, want empty", got.Bio)
	}
}

func TestUpdateProfileNoSession(t *testing.T) {
	s, _ := newTestStore(t)
	target := register(t, s, "target", "target@x.com", "password1", model.RoleStudent)

	_, err := s.UpdateProfile(context.Background(), nil, target.ID, store.ProfilePatch{Bio: strPtr("x")})
	if !errors.Is(err, store.ErrUnauthenticated) {
		t.Errorf("UpdateProfile() without session error = %v, want ErrUnauthenticated", err)
	}
}

func TestUpdateProfileCannotChangeRoleOrPassword(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	sess := studentSession(t, s)
	before := sess.User

	updated, err := s.UpdateProfile(ctx, sess, sess.User.ID, store.ProfilePatch{
		Bio: strPtr("new bio"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile() failed: %v", err)
	}

	// The patch type has no role or password fields; confirm the
	// stored values survived the merge.
	if updated.Role != before.Role {
		t.Errorf("Role = %q, want %q", updated.Role, before.Role)
	}
	if updated.PasswordHash != before.PasswordHash {
		t.Errorf("PasswordHash changed across profile update")
	}
	if updated.Bio != "new bio" {
		t.Errorf("Bio = %q, want %q", updated.Bio, "new bio")
	}
}

func TestUpdateProfileRefreshesOwnSession(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	sess := studentSession(t, s)

	if _, err := s.UpdateProfile(ctx, sess, sess.User.ID, store.ProfilePatch{Bio: strPtr("fresh")}); err != nil {
		t.Fatalf("UpdateProfile() failed: %v", err)
	}

	got, err := s.CurrentSession(ctx, sess.Token)
	if err != nil {
		t.Fatalf("CurrentSession() failed: %v", err)
	}
	if got.User.Bio != "fresh" {
		t.Errorf("session snapshot Bio = %q, want %q", got.User.Bio, "fresh")
	}
}

func TestAdminEditDoesNotTouchTargetSession(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	studentSess := studentSession(t, s)
	adminSess := adminSession(t, s)

	if _, err := s.UpdateProfile(ctx, adminSess, studentSess.User.ID, store.ProfilePatch{Bio: strPtr("edited")}); err != nil {
		t.Fatalf("admin UpdateProfile() failed: %v", err)
	}

	// The student's snapshot still shows the pre-edit record; it only
	// re-syncs on the student's own actions.
	got, err := s.CurrentSession(ctx, studentSess.Token)
	if err != nil {
		t.Fatalf("CurrentSession() failed: %v", err)
	}
	if got.User.Bio == "edited" {
		t.Errorf("student session snapshot picked up admin edit")
	}
}

func TestDeleteOwnAccountLogsOut(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	sess := studentSession(t, s)

	if err := s.DeleteAccount(ctx, sess, sess.User.ID); err != nil {
		t.Fatalf("DeleteAccount() failed: %v", err)
	}

	if _, err := s.CurrentSession(ctx, sess.Token); !errors.Is(err, store.ErrUnauthenticated) {
		t.Errorf("CurrentSession() after self-delete error = %v, want ErrUnauthenticated", err)
	}
}

func TestListUsersAdminOnly(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	studentSess := studentSession(t, s)
	if _, err := s.ListUsers(ctx, studentSess); !errors.Is(err, store.ErrForbidden) {
		t.Errorf("ListUsers() as student error = %v, want ErrForbidden", err)
	}

	adminSess := adminSession(t, s)
	users, err := s.ListUsers(ctx, adminSess)
	if err != nil {
		t.Fatalf("ListUsers() as admin failed: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("len(users) = %d, want 2", len(users))
	}
}

func TestEnroll(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	adminSess := adminSession(t, s)
	studentSess := studentSession(t, s)

	course, err := s.AddCourse(ctx, adminSess, store.CourseInput{Title: "Algorithms", Instructor: "Dr. X"})
	if err != nil {
		t.Fatalf("AddCourse() failed: %v", err)
	}

	if err := s.Enroll(ctx, studentSess, studentSess.User.ID, course.ID); err != nil {
		t.Fatalf("Enroll() failed: %v", err)
	}

	// Enrolling twice is idempotent.
	if err := s.Enroll(ctx, studentSess, studentSess.User.ID, course.ID); err != nil {
		t.Fatalf("second Enroll() failed: %v", err)
	}

	courses, err := s.EnrolledCourses(ctx, studentSess, studentSess.User.ID)
	if err != nil {
		t.Fatalf("EnrolledCourses() failed: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("len(enrolled) = %d, want 1", len(courses))
	}
	if courses[0].Status != model.EnrollmentNotStarted {
		t.Errorf("Status = %q, want %q", courses[0].Status, model.EnrollmentNotStarted)
	}
}

func TestEnrollUnknownCourse(t *testing.T) {
	s, _ := newTestStore(t)
	sess := studentSession(t, s)

	err := s.Enroll(context.Background(), sess, sess.User.ID, "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Enroll() error = %v, want ErrNotFound", err)
	}
}

func TestEnrollForbiddenForOtherUser(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	adminSess := adminSession(t, s)
	course, err := s.AddCourse(ctx, adminSess, store.CourseInput{Title: "Algebra", Instructor: "Dr. Y"})
	if err != nil {
		t.Fatalf("AddCourse() failed: %v", err)
	}

	studentSess := studentSession(t, s)
	other := register(t, s, "other", "other@x.com", "password1", model.RoleStudent)

	if err := s.Enroll(ctx, studentSess, other.ID, course.ID); !errors.Is(err, store.ErrForbidden) {
		t.Errorf("Enroll() for other user error = %v, want ErrForbidden", err)
	}
}

func TestSetProgress(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	adminSess := adminSession(t, s)
	studentSess := studentSession(t, s)
	course, err := s.AddCourse(ctx, adminSess, store.CourseInput{Title: "Networks", Instructor: "Dr. Z"})
	if err != nil {
		t.Fatalf("AddCourse() failed: %v", err)
	}
	if err := s.Enroll(ctx, studentSess, studentSess.User.ID, course.ID); err != nil {
		t.Fatalf("Enroll() failed: %v", err)
	}

	tests := []struct {
		name       string
		progress   int
		want       int
		wantStatus model.EnrollmentStatus
	}{
		{"halfway", 50, 50, model.EnrollmentInProgress},
		{"clamped high", 150, 100, model.EnrollmentCompleted},
		{"clamped low", -5, 0, model.EnrollmentNotStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := s.SetProgress(ctx, studentSess, studentSess.User.ID, course.ID, tt.progress)
			if err != nil {
				t.Fatalf("SetProgress() failed: %v", err)
			}
			if e.Progress != tt.want {
				t.Errorf("Progress = %d, want %d", e.Progress, tt.want)
			}
			if e.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", e.Status, tt.wantStatus)
			}
		})
	}
}

func TestEnrolledCoursesMissingUser(t *testing.T) {
	s, _ := newTestStore(t)

	adminSess := adminSession(t, s)
	courses, err := s.EnrolledCourses(context.Background(), adminSess, "no-such-user")
	if err != nil {
		t.Fatalf("EnrolledCourses() failed: %v", err)
	}
	if len(courses) != 0 {
		t.Errorf("len(courses) = %d, want 0", len(courses))
	}
}

func TestEnrolledCoursesOwnership(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	studentSess := studentSession(t, s)
	other := register(t, s, "other", "other@x.com", "password1", model.RoleStudent)

	if _, err := s.EnrolledCourses(ctx, studentSess, other.ID); !errors.Is(err, store.ErrForbidden) {
		t.Errorf("EnrolledCourses() for other user error = %v, want ErrForbidden", err)
	}
	if _, err := s.EnrolledCourses(ctx, nil, other.ID); !errors.Is(err, store.ErrUnauthenticated) {
		t.Errorf("EnrolledCourses() without session error = %v, want ErrUnauthenticated", err)
	}

	adminSess := adminSession(t, s)
	if _, err := s.EnrolledCourses(ctx, adminSess, other.ID); err != nil {
		t.Errorf("EnrolledCourses() as admin failed: %v", err)
	}
}

func TestEnrolledCoursesSkipsDanglingCourse(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	adminSess := adminSession(t, s)
	studentSess := studentSession(t, s)

	keep, _ := s.AddCourse(ctx, adminSess, store.CourseInput{Title: "Keep", Instructor: "A"})
	gone, _ := s.AddCourse(ctx, adminSess, store.CourseInput{Title: "Gone", Instructor: "B"})

	if err := s.Enroll(ctx, studentSess, studentSess.User.ID, keep.ID); err != nil {
		t.Fatalf("Enroll() failed: %v", err)
	}
	if err := s.Enroll(ctx, studentSess, studentSess.User.ID, gone.ID); err != nil {
		t.Fatalf("Enroll() failed: %v", err)
	}

	if err := s.DeleteCourse(ctx, adminSess, gone.ID); err != nil {
		t.Fatalf("DeleteCourse() failed: %v", err)
	}

	courses, err := s.EnrolledCourses(ctx, studentSess, studentSess.User.ID)
	if err != nil {
		t.Fatalf("EnrolledCourses() failed: %v", err)
	}
	if len(courses) != 1 || courses[0].Title != "Keep" {
		t.Errorf("enrolled view = %+v, want only the surviving course", courses)
	}
}
