package gitlab

import (
	"testing"
	"time"

	gl "gitlab.com/gitlab-org/api/client-go"
)

func TestConvertIssue(t *testing.T) {
	created := time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC)
	closed := time.Date(2026, time.March, 10, 17, 0, 0, 0, time.UTC)
	due := gl.ISOTime(time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC))

	got := convertIssue(&gl.Issue{
		Title:       "3.2: Fix parser",
		Description: "- [x] done item",
		CreatedAt:   &created,
		ClosedAt:    &closed,
		DueDate:     &due,
	})

	if got.Title != "3.2: Fix parser" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.CreatedAt == nil || !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
	if got.DueDate == nil || !got.DueDate.Equal(time.Time(due)) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, time.Time(due))
	}
	if got.ClosedAt == nil || !got.ClosedAt.Equal(closed) {
		t.Errorf("ClosedAt = %v, want %v", got.ClosedAt, closed)
	}
}

func TestConvertIssue_NilDates(t *testing.T) {
	got := convertIssue(&gl.Issue{Title: "1: Bootstrap"})
	if got.CreatedAt != nil || got.DueDate != nil || got.ClosedAt != nil {
		t.Errorf("expected nil dates, got %+v", got)
	}
}

func TestNew_BadCABundle(t *testing.T) {
	_, err := New(Options{BaseURL: "https://gitlab.example.com", CABundle: "/nonexistent/ca.pem"})
	if err == nil {
		t.Fatalf("expected error for missing CA bundle")
	}
}
