package store

import (
	"context"
	"fmt"
	"time"

	"eduportal/model"
)

// NoticeInput is the data needed to publish a notice.
type NoticeInput struct {
	Title       string
	Content     string
	Category    model.NoticeCategory
	EventDate   *time.Time
	Attachments []model.Attachment
}

// NoticePatch carries optional notice updates.
type NoticePatch struct {
	Title       *string
	Content     *string
	Category    *model.NoticeCategory
	EventDate   *time.Time
	Attachments []model.Attachment
}

func validCategory(c model.NoticeCategory) bool {
	switch c {
	case "", model.NoticeCategoryGeneral, model.NoticeCategoryImportant, model.NoticeCategoryEvent:
		return true
	}
	return false
}

// ListNotices returns all notices. Public read.
func (s *RecordStore) ListNotices(ctx context.Context) ([]model.Notice, error) {
	return s.notices.List(ctx)
}

// GetNotice returns one notice. Public read.
func (s *RecordStore) GetNotice(ctx context.Context, id string) (*model.Notice, error) {
	return s.notices.GetByID(ctx, id)
}

// AddNotice publishes a notice. Admin only.
func (s *RecordStore) AddNotice(ctx context.Context, sess *Session, in NoticeInput) (*model.Notice, error) {
	if err := authorize(sess, resourceNotice, true, ""); err != nil {
		return nil, err
	}
	if !validCategory(in.Category) {
		return nil, ErrInvalidInput
	}

	notice := &model.Notice{
		Title:     in.Title,
		Content:   in.Content,
		Category:  in.Category,
		EventDate: in.EventDate,
	}
	if len(in.Attachments) > 0 {
		if err := notice.SetAttachments(in.Attachments); err != nil {
			return nil, err
		}
	}
	if err := s.notices.Create(ctx, notice); err != nil {
		return nil, err
	}

	s.logActivity(ctx, sess.User.ID, sess.User.Username, model.ActionAddNotice,
		fmt.Sprintf("Added notice: %s", notice.Title))
	return notice, nil
}

// UpdateNotice merges the patch and refreshes UpdatedAt. Admin only.
func (s *RecordStore) UpdateNotice(ctx context.Context, sess *Session, id string, patch NoticePatch) (*model.Notice, error) {
	if err := authorize(sess, resourceNotice, true, ""); err != nil {
		return nil, err
	}

	notice, err := s.notices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		notice.Title = *patch.Title
	}
	if patch.Content != nil {
		notice.Content = *patch.Content
	}
	if patch.Category != nil {
		if !validCategory(*patch.Category) {
			return nil, ErrInvalidInput
		}
		notice.Category = *patch.Category
	}
	if patch.EventDate != nil {
		notice.EventDate = patch.EventDate
	}
	if patch.Attachments != nil {
		if err := notice.SetAttachments(patch.Attachments); err != nil {
			return nil, err
		}
	}

	if err := s.notices.Save(ctx, notice); err != nil {
		return nil, err
	}

	s.logActivity(ctx, sess.User.ID, sess.User.Username, model.ActionUpdateNotice,
		fmt.Sprintf("Updated notice: %s", notice.Title))
	return notice, nil
}

// AttachToNotice appends one attachment reference to a notice. Admin
// only. Used by the upload handler once the file is in object storage.
func (s *RecordStore) AttachToNotice(ctx context.Context, sess *Session, id string, att model.Attachment) (*model.Notice, error) {
	if err := authorize(sess, resourceNotice, true, ""); err != nil {
		return nil, err
	}

	notice, err := s.notices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	atts, err := notice.AttachmentList()
	if err != nil {
		return nil, err
	}
	atts = append(atts, att)
	if err := notice.SetAttachments(atts); err != nil {
		return nil, err
	}

	if err := s.notices.Save(ctx, notice); err != nil {
		return nil, err
	}

	s.logActivity(ctx, sess.User.ID, sess.User.Username, model.ActionUpdateNotice,
		fmt.Sprintf("Updated notice: %s", notice.Title))
	return notice, nil
}

// DeleteNotice removes a notice. Admin only.
func (s *RecordStore) DeleteNotice(ctx context.Context, sess *Session, id string) error {
	if err := authorize(sess, resourceNotice, true, ""); err != nil {
		return err
	}

	notice, err := s.notices.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.notices.Delete(ctx, id); err != nil {
		return err
	}

	s.logActivity(ctx, sess.User.ID, sess.User.Username, model.ActionDeleteNotice,
		fmt.Sprintf("Deleted notice: %s", notice.Title))
	return nil
}
