package store

import (
	"context"
	"log"

	"eduportal/model"
	"eduportal/utils/metrics"
)

// RecordStore is the single source of truth for all portal
// collections. Every operation runs its policy check first, mutates
// the relevant records, and appends an activity entry on success.
type RecordStore struct {
	users       UserRepository
	courses     CourseRepository
	enrollments EnrollmentRepository
	notices     NoticeRepository
	inquiries   InquiryRepository
	activity    ActivityRepository
	sessions    SessionStore
}

// Repositories bundles the persistence dependencies of a RecordStore.
type Repositories struct {
	Users       UserRepository
	Courses     CourseRepository
	Enrollments EnrollmentRepository
	Notices     NoticeRepository
	Inquiries   InquiryRepository
	Activity    ActivityRepository
}

// New creates a RecordStore over the given repositories and session
// store.
func New(repos Repositories, sessions SessionStore) *RecordStore {
	return &RecordStore{
		users:       repos.Users,
		courses:     repos.Courses,
		enrollments: repos.Enrollments,
		notices:     repos.Notices,
		inquiries:   repos.Inquiries,
		activity:    repos.Activity,
		sessions:    sessions,
	}
}

// logActivity appends an audit entry. A failed append never fails the
// operation that triggered it; there is no transaction boundary
// spanning the mutated collection and the log.
func (s *RecordStore) logActivity(ctx context.Context, userID, username, action, details string) {
	entry := &model.ActivityLog{
		UserID:   userID,
		Username: username,
		Action:   action,
		Details:  details,
	}
	if err := s.activity.Append(ctx, entry); err != nil {
		log.Printf("activity log append failed for action %q: %v", action, err)
		return
	}
	metrics.CountActivityEntry()
}
