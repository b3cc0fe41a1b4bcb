package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Action labels recorded in the activity log.
const (
	ActionLogin               = "Login"
	ActionLogout              = "Logout"
	ActionRegister            = "Register"
	ActionUpdateProfile       = "Update Profile"
	ActionDeleteAccount       = "Delete Account"
	ActionAddCourse           = "Add Course"
	ActionUpdateCourse        = "Update Course"
	ActionDeleteCourse        = "Delete Course"
	ActionEnrollInCourse      = "Enroll in Course"
	ActionAddNotice           = "Add Notice"
	ActionUpdateNotice        = "Update Notice"
	ActionDeleteNotice        = "Delete Notice"
	ActionSubmitInquiry       = "Submit Inquiry"
	ActionUpdateInquiryStatus = "Update Inquiry Status"
)

// ActivityLog is one append-only audit entry. Entries are never
// mutated; retention is handled by a scheduled job, not by the store.
type ActivityLog struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;index;not null" json:"user_id"`
	Username  string    `gorm:"not null" json:"username"`
	Action    string    `gorm:"type:varchar(100);not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"timestamp"`
}

func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
