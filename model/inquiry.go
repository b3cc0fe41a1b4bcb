package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InquiryStatus is the two-state machine for contact-form inquiries.
type InquiryStatus string

const (
	InquiryPending  InquiryStatus = "Pending"
	InquiryResolved InquiryStatus = "Resolved"
)

// Inquiry is a contact-form submission. It is associated to a user
// only loosely, by email match at query time; no user id is stored.
type Inquiry struct {
	ID        string        `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Name      string        `gorm:"not null" json:"name"`
	Email     string        `gorm:"index;not null" json:"email"`
	Message   string        `gorm:"type:text;not null" json:"message"`
	Status    InquiryStatus `gorm:"type:varchar(20);default:'Pending'" json:"status"`
}

func (i *Inquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
