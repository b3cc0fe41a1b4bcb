package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"eduportal/model"
	"eduportal/store"
)

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron          *cron.Cron
	db            *gorm.DB
	records       *store.RecordStore
	retentionDays int
}

// NewCronManager creates a new cron manager. retentionDays of 0 or
// less disables the activity pruning job.
func NewCronManager(db *gorm.DB, records *store.RecordStore, retentionDays int) *CronManager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:          c,
		db:            db,
		records:       records,
		retentionDays: retentionDays,
	}
}

// Start starts all cron jobs
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	// Daily at 2 AM: prune activity log entries past retention
	if m.retentionDays > 0 {
		_, err := m.cron.AddFunc("0 0 2 * * *", func() {
			m.logJobStart("prune_activity_log")
			m.PruneActivityLog()
		})
		if err != nil {
			return err
		}
	}

	// Daily at 8 AM: report inquiries still pending
	_, err := m.cron.AddFunc("0 0 8 * * *", func() {
		m.logJobStart("pending_inquiry_digest")
		m.PendingInquiryDigest()
	})
	if err != nil {
		return err
	}

	log.Println("All cron jobs registered successfully")
	return nil
}

// logJobStart logs the start of a cron job
func (m *CronManager) logJobStart(jobName string) {
	log.Printf("[CRON] Starting job: %s at %s", jobName, time.Now().Format(time.RFC3339))

	cronLog := model.CronJobLog{
		JobName:   jobName,
		Status:    model.CronJobRunning,
		StartedAt: time.Now(),
	}
	m.db.Create(&cronLog)
}

// logJobComplete logs successful completion of a cron job
func (m *CronManager) logJobComplete(jobName string, message string) {
	log.Printf("[CRON] Completed job: %s - %s", jobName, message)

	now := time.Now()
	m.db.Model(&model.CronJobLog{}).
		Where("job_name = ? AND status = ?", jobName, model.CronJobRunning).
		Order("started_at DESC").
		Limit(1).
		Updates(map[string]interface{}{
			"status":      model.CronJobCompleted,
			"finished_at": now,
			"message":     message,
		})
}

// logJobError logs a cron job error
func (m *CronManager) logJobError(jobName string, err error) {
	log.Printf("[CRON] Error in job: %s - %v", jobName, err)

	now := time.Now()
	m.db.Model(&model.CronJobLog{}).
		Where("job_name = ? AND status = ?", jobName, model.CronJobRunning).
		Order("started_at DESC").
		Limit(1).
		Updates(map[string]interface{}{
			"status":      model.CronJobFailed,
			"finished_at": now,
			"message":     err.Error(),
		})
}
