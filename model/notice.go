package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NoticeCategory classifies a notice board entry.
type NoticeCategory string

const (
	NoticeCategoryGeneral   NoticeCategory = "General"
	NoticeCategoryImportant NoticeCategory = "Important"
	NoticeCategoryEvent     NoticeCategory = "Event"
)

// Attachment is file metadata attached to a notice. The file itself
// lives in object storage; only the reference is stored here.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Notice is a portal announcement.
type Notice struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Title       string         `gorm:"not null" json:"title"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	Category    NoticeCategory `gorm:"type:varchar(20)" json:"category,omitempty"`
	EventDate   *time.Time     `json:"event_date,omitempty"`
	Attachments datatypes.JSON `gorm:"type:jsonb" json:"attachments,omitempty"`
}

func (n *Notice) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// AttachmentList decodes the attachments document.
func (n *Notice) AttachmentList() ([]Attachment, error) {
	if len(n.Attachments) == 0 {
		return nil, nil
	}
	var atts []Attachment
	if err := json.Unmarshal(n.Attachments, &atts); err != nil {
		return nil, err
	}
	return atts, nil
}

// SetAttachments encodes the attachment list back onto the row.
func (n *Notice) SetAttachments(atts []Attachment) error {
	data, err := json.Marshal(atts)
	if err != nil {
		return err
	}
	n.Attachments = datatypes.JSON(data)
	return nil
}
