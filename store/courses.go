package store

import (
	"context"
	"fmt"

	"eduportal/model"
)

// CourseInput is the data needed to create a course.
type CourseInput struct {
	Title       string
	Description string
	Instructor  string
	Credits     int
	Semester    string
	Year        string
}

// CoursePatch carries optional course updates. Id and timestamps are
// managed by the store.
type CoursePatch struct {
	Title       *string
	Description *string
	Instructor  *string
	Credits     *int
	Semester    *string
	Year        *string
}

// ListCourses returns the full catalog. Public read.
func (s *RecordStore) ListCourses(ctx context.Context) ([]model.Course, error) {
	return s.courses.List(ctx)
}

// GetCourse returns one course. Public read.
func (s *RecordStore) GetCourse(ctx context.Context, id string) (*model.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// AddCourse creates a catalog entry. Admin only.
func (s *RecordStore) AddCourse(ctx context.Context, sess *Session, in CourseInput) (*model.Course, error) {
	if err := authorize(sess, resourceCourse, true, ""); err != nil {
		return nil, err
	}

	course := &model.Course{
		Title:       in.Title,
		Description: in.Description,
		Instructor:  in.Instructor,
		Credits:     in.Credits,
		Semester:    in.Semester,
		Year:        in.Year,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	s.logActivity(ctx, sess.User.ID, sess.User.Username, model.ActionAddCourse,
		fmt.Sprintf("Added course: %s", course.Title))
	return course, nil
}

// UpdateCourse merges the patch and refreshes UpdatedAt. Admin only.
func (s *RecordStore) UpdateCourse(ctx context.Context, sess *Session, id string, patch CoursePatch) (*model.Course, error) {
	if err := authorize(sess, resourceCourse, true, ""); err != nil {
		return nil, err
	}

	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		course.Title = *patch.Title
	}
	if patch.Description != nil {
		course.Description = *patch.Description
	}
	if patch.Instructor != nil {
		course.Instructor = *patch.Instructor
	}
	if patch.Credits != nil {
		course.Credits = *patch.Credits
	}
	if patch.Semester != nil {
		course.Semester = *patch.Semester
	}
	if patch.Year != nil {
		course.Year = *patch.Year
	}

	if err := s.courses.Save(ctx, course); err != nil {
		return nil, err
	}

	s.logActivity(ctx, sess.User.ID, sess.User.Username, model.ActionUpdateCourse,
		fmt.Sprintf("Updated course: %s", course.Title))
	return course, nil
}

// DeleteCourse removes a catalog entry. Admin only. Enrollment rows
// pointing at the course cascade away with it; the enrolled-courses
// view also tolerates danglers.
func (s *RecordStore) DeleteCourse(ctx context.Context, sess *Session, id string) error {
	if err := authorize(sess, resourceCourse, true, ""); err != nil {
		return err
	}

	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}

	s.logActivity(ctx, sess.User.ID, sess.User.Username, model.ActionDeleteCourse,
		fmt.Sprintf("Deleted course: %s", course.Title))
	return nil
}
