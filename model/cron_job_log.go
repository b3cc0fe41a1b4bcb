package model

import (
	"time"
)

// CronJobStatus is the lifecycle state of a scheduled job run.
type CronJobStatus string

const (
	CronJobRunning   CronJobStatus = "running"
	CronJobCompleted CronJobStatus = "completed"
	CronJobFailed    CronJobStatus = "failed"
)

// CronJobLog records one execution of a scheduled job.
type CronJobLog struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	JobName    string        `gorm:"type:varchar(100);not null;index" json:"job_name"`
	Status     CronJobStatus `gorm:"type:varchar(20);not null" json:"status"`
	Message    string        `gorm:"type:text" json:"message"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt *time.Time    `json:"finished_at,omitempty"`
}

// TableName specifies the table name for CronJobLog
func (CronJobLog) TableName() string {
	return "cron_job_logs"
}
