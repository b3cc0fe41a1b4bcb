package store_test

import (
	"context"
	"errors"
	"testing"

	"eduportal/model"
	"eduportal/store"
)

func TestAddInquiryWithoutSession(t *testing.T) {
	s, repos := newTestStore(t)
	ctx := context.Background()

	inquiry, err := s.AddInquiry(ctx, nil, store.InquiryInput{
		Name:    "Visitor",
		Email:   "visitor@x.com",
		Message: "How do I apply?",
	})
	if err != nil {
		t.Fatalf("AddInquiry() failed: %v", err)
	}
	if inquiry.Status != model.InquiryPending {
		t.Errorf("Status = %q, want %q", inquiry.Status, model.InquiryPending)
	}

	// Anonymous submissions log nothing.
	logs, _ := repos.Activity.List(ctx)
	if len(logs) != 0 {
		t.Errorf("len(activity) = %d after anonymous inquiry, want 0", len(logs))
	}
}

func TestAddInquiryLogsWhenLoggedIn(t *testing.T) {
	s, repos := newTestStore(t)
	ctx := context.Background()
	sess := studentSession(t, s)

	_, err := s.AddInquiry(ctx, sess, store.InquiryInput{
		Name:    "Student",
		Email:   sess.User.Email,
		Message: "This message is long enough to be previewed in the activity log",
	})
	if err != nil {
		t.Fatalf("AddInquiry() failed: %v", err)
	}

	logs, _ := repos.Activity.ListByUser(ctx, sess.User.ID)
	var found bool
	for _, l := range logs {
		if l.Action == model.ActionSubmitInquiry {
			found = true
			if len(l.Details) > len("Submitted inquiry: ")+33 {
				t.Errorf("Details = %q, want truncated preview", l.Details)
			}
		}
	}
	if !found {
		t.Error("no Submit Inquiry entry appended")
	}
}

func TestListInquiriesAdminOnly(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	studentSess := studentSession(t, s)
	if _, err := s.ListInquiries(ctx, studentSess); !errors.Is(err, store.ErrForbidden) {
		t.Errorf("ListInquiries() as student error = %v, want ErrForbidden", err)
	}
	if _, err := s.ListInquiries(ctx, nil); !errors.Is(err, store.ErrUnauthenticated) {
		t.Errorf("ListInquiries() without session error = %v, want ErrUnauthenticated", err)
	}
}

func TestMyInquiriesMatchesByEmail(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	sess := studentSession(t, s)

	// One inquiry under the student's email, one under another.
	if _, err := s.AddInquiry(ctx, nil, store.InquiryInput{Name: "S", Email: sess.User.Email, Message: "mine"}); err != nil {
		t.Fatalf("AddInquiry() failed: %v", err)
	}
	if _, err := s.AddInquiry(ctx, nil, store.InquiryInput{Name: "V", Email: "someone@else.com", Message: "not mine"}); err != nil {
		t.Fatalf("AddInquiry() failed: %v", err)
	}

	mine, err := s.MyInquiries(ctx, sess)
	if err != nil {
		t.Fatalf("MyInquiries() failed: %v", err)
	}
	if len(mine) != 1 || mine[0].Message != "mine" {
		t.Errorf("MyInquiries() = %+v, want only the matching-email inquiry", mine)
	}
}

func TestUpdateInquiryStatus(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	adminSess := adminSession(t, s)

	inquiry, err := s.AddInquiry(ctx, nil, store.InquiryInput{
		Name:    "Visitor",
		Email:   "visitor@x.com",
		Message: "Question",
	})
	if err != nil {
		t.Fatalf("AddInquiry() failed: %v", err)
	}

	updated, err := s.UpdateInquiryStatus(ctx, adminSess, inquiry.ID, model.InquiryResolved)
	if err != nil {
		t.Fatalf("UpdateInquiryStatus() failed: %v", err)
	}

	if updated.Status != model.InquiryResolved {
		t.Errorf("Status = %q, want %q", updated.Status, model.InquiryResolved)
	}
	// Only the status field changed.
	if updated.Name != inquiry.Name || updated.Email != inquiry.Email ||
		updated.Message != inquiry.Message || !updated.CreatedAt.Equal(inquiry.CreatedAt) {
		t.Errorf("non-status fields changed: %+v vs %+v", updated, inquiry)
	}
}

func TestUpdateInquiryStatusValidation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	adminSess := adminSession(t, s)

	inquiry, _ := s.AddInquiry(ctx, nil, store.InquiryInput{Name: "V", Email: "v@x.com", Message: "m"})

	if _, err := s.UpdateInquiryStatus(ctx, adminSess, inquiry.ID, "Closed"); !errors.Is(err, store.ErrInvalidInput) {
		t.Errorf("UpdateInquiryStatus() with unknown status error = %v, want ErrInvalidInput", err)
	}

	studentSess := studentSession(t, s)
	if _, err := s.UpdateInquiryStatus(ctx, studentSess, inquiry.ID, model.InquiryResolved); !errors.Is(err, store.ErrForbidden) {
		t.Errorf("UpdateInquiryStatus() as student error = %v, want ErrForbidden", err)
	}
}
