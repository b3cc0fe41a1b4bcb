package store

import (
	"context"
	"time"

	"eduportal/model"
)

// Repositories give the store per-record access to the persistence
// substrate. Implementations translate their backend's not-found
// condition into ErrNotFound. The production implementations live in
// the database package; the inmem package provides map-backed doubles.

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Save(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id string) error
}

// CourseRepository persists catalog courses.
type CourseRepository interface {
	Create(ctx context.Context, c *model.Course) error
	GetByID(ctx context.Context, id string) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	Save(ctx context.Context, c *model.Course) error
	Delete(ctx context.Context, id string) error
}

// EnrollmentRepository persists user-course enrollment rows.
type EnrollmentRepository interface {
	Create(ctx context.Context, e *model.Enrollment) error
	Get(ctx context.Context, userID, courseID string) (*model.Enrollment, error)
	ListByUser(ctx context.Context, userID string) ([]model.Enrollment, error)
	Save(ctx context.Context, e *model.Enrollment) error
}

// NoticeRepository persists notice-board entries.
type NoticeRepository interface {
	Create(ctx context.Context, n *model.Notice) error
	GetByID(ctx context.Context, id string) (*model.Notice, error)
	List(ctx context.Context) ([]model.Notice, error)
	Save(ctx context.Context, n *model.Notice) error
	Delete(ctx context.Context, id string) error
}

// InquiryRepository persists contact-form inquiries.
type InquiryRepository interface {
	Create(ctx context.Context, i *model.Inquiry) error
	GetByID(ctx context.Context, id string) (*model.Inquiry, error)
	List(ctx context.Context) ([]model.Inquiry, error)
	ListByEmail(ctx context.Context, email string) ([]model.Inquiry, error)
	Save(ctx context.Context, i *model.Inquiry) error
}

// ActivityRepository persists the append-only activity log.
type ActivityRepository interface {
	Append(ctx context.Context, l *model.ActivityLog) error
	List(ctx context.Context) ([]model.ActivityLog, error)
	ListByUser(ctx context.Context, userID string) ([]model.ActivityLog, error)
	// DeleteOlderThan supports the retention job; store operations
	// themselves never remove entries.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
