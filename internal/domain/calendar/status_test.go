package calendar

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

func TestTransitions(t *testing.T) {
	now := time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		from    Status
		action  func(*models.CalendarEvent) error
		want    Status
		wantErr bool
	}{
		{"confirm pending", StatusPending, Confirm, StatusConfirmed, false},
		{"confirm confirmed", StatusConfirmed, Confirm, StatusConfirmed, false},
		{"confirm cancelled", StatusCancelled, Confirm, StatusCancelled, true},
		{"cancel confirmed", StatusConfirmed, func(ev *models.CalendarEvent) error { return Cancel(ev, now) }, StatusCancelled, false},
		{"cancel completed", StatusCompleted, func(ev *models.CalendarEvent) error { return Cancel(ev, now) }, StatusCompleted, true},
		{"complete pending", StatusPending, func(ev *models.CalendarEvent) error { return Complete(ev, now) }, StatusCompleted, false},
		{"complete cancelled", StatusCancelled, func(ev *models.CalendarEvent) error { return Complete(ev, now) }, StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := &models.CalendarEvent{Status: string(tt.from)}
			err := tt.action(ev)
			if tt.wantErr {
				if !httperr.IsBusiness(err, "invalid_state") {
					t.Fatalf("err = %v, want invalid_state", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ev.Status != string(tt.want) {
				t.Fatalf("status = %s, want %s", ev.Status, tt.want)
			}
		})
	}
}

func TestCancelStampsTime(t *testing.T) {
	now := time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)
	ev := &models.CalendarEvent{Status: string(StatusPending)}
	if err := Cancel(ev, now); err != nil {
		t.Fatal(err)
	}
	if ev.CancelledAt == nil || !ev.CancelledAt.Equal(now) {
		t.Fatalf("cancelled_at = %v", ev.CancelledAt)
	}
}

func TestOverlaps(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2026, 6, 1, h, 0, 0, 0, time.UTC) }

	if !Overlaps(at(19), at(23), at(22), at(24)) {
		t.Error("expected overlap")
	}
	if Overlaps(at(10), at(14), at(14), at(18)) {
		t.Error("touching windows must not overlap")
	}
}
