package store

import (
	"context"
	"fmt"

	"eduportal/model"
)

// InquiryInput is a contact-form submission.
type InquiryInput struct {
	Name    string
	Email   string
	Message string
}

const inquiryPreviewLen = 30

func inquiryPreview(message string) string {
	if len(message) > inquiryPreviewLen {
		message = message[:inquiryPreviewLen]
	}
	return message + "..."
}

// AddInquiry records a contact-form submission. No session is
// required; when one is present a Submit Inquiry entry with a short
// message preview is logged against it.
func (s *RecordStore) AddInquiry(ctx context.Context, sess *Session, in InquiryInput) (*model.Inquiry, error) {
	inquiry := &model.Inquiry{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
		Status:  model.InquiryPending,
	}
	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	if sess != nil {
		s.logActivity(ctx, sess.User.ID, sess.User.Username, model.ActionSubmitInquiry,
			fmt.Sprintf("Submitted inquiry: %s", inquiryPreview(inquiry.Message)))
	}
	return inquiry, nil
}

// ListInquiries returns all inquiries. Admin only.
func (s *RecordStore) ListInquiries(ctx context.Context, sess *Session) ([]model.Inquiry, error) {
	if err := authorize(sess, resourceInquiry, false, ""); err != nil {
		return nil, err
	}
	return s.inquiries.List(ctx)
}

// GetInquiry returns one inquiry. Admin only.
func (s *RecordStore) GetInquiry(ctx context.Context, sess *Session, id string) (*model.Inquiry, error) {
	if err := authorize(sess, resourceInquiry, false, ""); err != nil {
		return nil, err
	}
	return s.inquiries.GetByID(ctx, id)
}

// MyInquiries returns the inquiries loosely associated with the
// session user, matched by email at query time.
func (s *RecordStore) MyInquiries(ctx context.Context, sess *Session) ([]model.Inquiry, error) {
	if sess == nil {
		return nil, ErrUnauthenticated
	}
	return s.inquiries.ListByEmail(ctx, sess.User.Email)
}

// UpdateInquiryStatus moves an inquiry between Pending and Resolved.
// Admin only. Only the status field changes.
func (s *RecordStore) UpdateInquiryStatus(ctx context.Context, sess *Session, id string, status model.InquiryStatus) (*model.Inquiry, error) {
	if err := authorize(sess, resourceInquiry, true, ""); err != nil {
		return nil, err
	}
	if status != model.InquiryPending && status != model.InquiryResolved {
		return nil, ErrInvalidInput
	}

	inquiry, err := s.inquiries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inquiry.Status = status
	if err := s.inquiries.Save(ctx, inquiry); err != nil {
		return nil, err
	}

	s.logActivity(ctx, sess.User.ID, sess.User.Username, model.ActionUpdateInquiryStatus,
		fmt.Sprintf("Updated inquiry status to %s", status))
	return inquiry, nil
}
