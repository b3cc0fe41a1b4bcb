package cron

import (
	"context"
	"fmt"
	"time"

	"eduportal/model"
)

const jobTimeout = 5 * time.Minute

// PruneActivityLog removes audit entries older than the configured
// retention window. This is the only path that deletes activity rows.
func (m *CronManager) PruneActivityLog() {
	jobName := "prune_activity_log"

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -m.retentionDays)
	removed, err := m.records.PruneActivityBefore(ctx, cutoff)
	if err != nil {
		m.logJobError(jobName, err)
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("removed %d entries older than %s", removed, cutoff.Format(time.RFC3339)))
}

// PendingInquiryDigest counts inquiries still awaiting resolution and
// records the tally. A notification channel can hang off this later;
// for now the digest lands in the job log.
func (m *CronManager) PendingInquiryDigest() {
	jobName := "pending_inquiry_digest"

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	var pending int64
	err := m.db.WithContext(ctx).Model(&model.Inquiry{}).
		Where("status = ?", model.InquiryPending).
		Count(&pending).Error
	if err != nil {
		m.logJobError(jobName, err)
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("%d inquiries pending", pending))
}
