package store_test

import (
	"context"
	"errors"
	"testing"

	"eduportal/store"
)

func TestAddCourseRequiresAdmin(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	in := store.CourseInput{Title: "X", Instructor: "Y"}

	tests := []struct {
		name    string
		sess    func() *store.Session
		wantErr error
	}{
		{"no session", func() *store.Session { return nil }, store.ErrUnauthenticated},
		{"student session", func() *store.Session { return studentSession(t, s) }, store.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, _ := s.ListCourses(ctx)

			_, err := s.AddCourse(ctx, tt.sess(), in)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddCourse() error = %v, want %v", err, tt.wantErr)
			}

			after, _ := s.ListCourses(ctx)
			if len(after) != len(before) {
				t.Errorf("catalog length changed on rejected write: %d -> %d", len(before), len(after))
			}
		})
	}
}

func TestCourseReadsArePublic(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	adminSess := adminSession(t, s)
	course, err := s.AddCourse(ctx, adminSess, store.CourseInput{Title: "Compilers", Instructor: "Dr. K", Credits: 4})
	if err != nil {
		t.Fatalf("AddCourse() failed: %v", err)
	}

	// No session needed for reads.
	got, err := s.GetCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("GetCourse() failed: %v", err)
	}
	if got.Title != "Compilers" {
		t.Errorf("Title = %q, want %q", got.Title, "Compilers")
	}

	all, err := s.ListCourses(ctx)
	if err != nil {
		t.Fatalf("ListCourses() failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("len(courses) = %d, want 1", len(all))
	}
}

func TestUpdateCourseMergesPatch(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	adminSess := adminSession(t, s)

	course, err := s.AddCourse(ctx, adminSess, store.CourseInput{
		Title:      "Databases",
		Instructor: "Dr. C",
		Credits:    3,
	})
	if err != nil {
		t.Fatalf("AddCourse() failed: %v", err)
	}

	credits := 4
	updated, err := s.UpdateCourse(ctx, adminSess, course.ID, store.CoursePatch{Credits: &credits})
	if err != nil {
		t.Fatalf("UpdateCourse() failed: %v", err)
	}

	if updated.Credits != 4 {
		t.Errorf("Credits = %d, want 4", updated.Credits)
	}
	// Untouched fields survive.
	if updated.Title != "Databases" || updated.Instructor != "Dr. C" {
		t.Errorf("unpatched fields changed: %+v", updated)
	}
}

func TestDeleteCourse(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	adminSess := adminSession(t, s)

	course, err := s.AddCourse(ctx, adminSess, store.CourseInput{Title: "Temp", Instructor: "T"})
	if err != nil {
		t.Fatalf("AddCourse() failed: %v", err)
	}
	before, _ := s.ListCourses(ctx)

	if err := s.DeleteCourse(ctx, adminSess, course.ID); err != nil {
		t.Fatalf("DeleteCourse() failed: %v", err)
	}

	after, _ := s.ListCourses(ctx)
	if len(after) != len(before)-1 {
		t.Errorf("catalog length = %d, want %d", len(after), len(before)-1)
	}
	if _, err := s.GetCourse(ctx, course.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetCourse() after delete error = %v, want ErrNotFound", err)
	}
}

func TestDeleteCourseMissing(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	adminSess := adminSession(t, s)

	before, _ := s.ListCourses(ctx)

	if err := s.DeleteCourse(ctx, adminSess, "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("DeleteCourse() error = %v, want ErrNotFound", err)
	}

	after, _ := s.ListCourses(ctx)
	if len(after) != len(before) {
		t.Errorf("catalog length changed on failed delete")
	}
}
