package store

import (
	"context"
	"time"

	"eduportal/model"
)

// ListActivity returns the full activity log, unsorted. Admin only.
// Callers are responsible for ordering and filtering.
func (s *RecordStore) ListActivity(ctx context.Context, sess *Session) ([]model.ActivityLog, error) {
	// The empty owner id never matches a session user, so the
	// owner-or-admin rule collapses to admin-only here.
	if err := authorize(sess, resourceActivity, false, ""); err != nil {
		return nil, err
	}
	return s.activity.List(ctx)
}

// ActivityForUser returns the entries with an exact user-id match.
// The user themselves or an admin may read them.
func (s *RecordStore) ActivityForUser(ctx context.Context, sess *Session, userID string) ([]model.ActivityLog, error) {
	if err := authorize(sess, resourceActivity, false, userID); err != nil {
		return nil, err
	}
	return s.activity.ListByUser(ctx, userID)
}

// PruneActivityBefore removes entries older than the cutoff. This is
// the retention hook for the scheduled job; store operations never
// delete log entries themselves.
func (s *RecordStore) PruneActivityBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.activity.DeleteOlderThan(ctx, cutoff)
}
