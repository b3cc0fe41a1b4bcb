package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Role values a user can hold.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User represents a registered portal account.
type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"` // Never expose password in JSON
	Role         string    `gorm:"type:varchar(20);default:'student'" json:"role"`

	// Extended profile fields
	ProfilePhoto  string `gorm:"type:text" json:"profile_photo,omitempty"`
	Bio           string `gorm:"type:text" json:"bio,omitempty"`
	RollNumber    string `gorm:"type:varchar(50)" json:"roll_number,omitempty"`
	ContactNumber string `gorm:"type:varchar(50)" json:"contact_number,omitempty"`
	Address       string `gorm:"type:text" json:"address,omitempty"`

	// User-owned embedded documents. These have no cross-entity
	// references, so they live as JSONB on the user row.
	PreviousSchools datatypes.JSON `gorm:"type:jsonb" json:"previous_schools,omitempty"`
	AcademicMarks   datatypes.JSON `gorm:"type:jsonb" json:"academic_marks,omitempty"`

	// Relationships. Activity log rows are deliberately NOT an
	// association: they are unreferenced audit rows (indexed by
	// UserID) so they survive account deletion.
	Enrollments []Enrollment `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate assigns a collision-resistant id.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// PreviousSchool is one entry of the user's schooling history.
type PreviousSchool struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Degree    string `json:"degree"`
	YearStart string `json:"year_start"`
	YearEnd   string `json:"year_end"`
}

// SubjectMark is a single graded subject within a semester.
type SubjectMark struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Grade   string `json:"grade"`
	Credits int    `json:"credits"`
}

// SemesterMarks groups subject marks for one semester.
type SemesterMarks struct {
	ID       string        `json:"id"`
	Semester string        `json:"semester"`
	Year     string        `json:"year"`
	GPA      string        `json:"gpa"`
	Subjects []SubjectMark `json:"subjects"`
}

// SchoolHistory decodes the PreviousSchools document.
func (u *User) SchoolHistory() ([]PreviousSchool, error) {
	if len(u.PreviousSchools) == 0 {
		return nil, nil
	}
	var schools []PreviousSchool
	if err := json.Unmarshal(u.PreviousSchools, &schools); err != nil {
		return nil, err
	}
	return schools, nil
}

// Marks decodes the AcademicMarks document.
func (u *User) Marks() ([]SemesterMarks, error) {
	if len(u.AcademicMarks) == 0 {
		return nil, nil
	}
	var marks []SemesterMarks
	if err := json.Unmarshal(u.AcademicMarks, &marks); err != nil {
		return nil, err
	}
	return marks, nil
}
