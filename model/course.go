package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Course is an independent top-level catalog entry.
type Course struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Instructor  string    `gorm:"not null" json:"instructor"`
	Credits     int       `gorm:"default:0" json:"credits"`
	Semester    string    `gorm:"type:varchar(20)" json:"semester"`
	Year        string    `gorm:"type:varchar(10)" json:"year"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// EnrollmentStatus buckets a student's progress through a course.
type EnrollmentStatus string

const (
	EnrollmentNotStarted EnrollmentStatus = "Not Started"
	EnrollmentInProgress EnrollmentStatus = "In Progress"
	EnrollmentCompleted  EnrollmentStatus = "Completed"
)

// Enrollment links a user to a course with persisted progress.
// Progress is a stored field updated by explicit writes, not
// synthesized at read time.
type Enrollment struct {
	UserID     string           `gorm:"type:uuid;primaryKey" json:"user_id"`
	CourseID   string           `gorm:"type:uuid;primaryKey" json:"course_id"`
	Status     EnrollmentStatus `gorm:"type:varchar(20);default:'Not Started'" json:"status"`
	Progress   int              `gorm:"default:0" json:"progress"` // 0-100
	EnrolledAt time.Time        `gorm:"autoCreateTime" json:"enrolled_at"`

	// Relationships
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Course Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

// StatusForProgress maps a progress percentage to its bucket.
func StatusForProgress(progress int) EnrollmentStatus {
	switch {
	case progress <= 0:
		return EnrollmentNotStarted
	case progress >= 100:
		return EnrollmentCompleted
	default:
		return EnrollmentInProgress
	}
}

// EnrolledCourse is the read-time join of a course with the caller's
// enrollment row. Derived, never persisted as its own table.
type EnrolledCourse struct {
	Course
	Status         EnrollmentStatus `json:"status"`
	Progress       int              `json:"progress"`
	EnrollmentDate time.Time        `json:"enrollment_date"`
}
