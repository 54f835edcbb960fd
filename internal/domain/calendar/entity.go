package calendar

import (
	"time"

	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ev *models.CalendarEvent) error {
	if err := CanConfirm(Status(ev.Status)); err != nil {
		return err
	}

	ev.Status = string(StatusConfirmed)
	return nil
}

func Cancel(ev *models.CalendarEvent, now time.Time) error {
	if err := CanCancel(Status(ev.Status)); err != nil {
		return err
	}

	ev.Status = string(StatusCancelled)
	ev.CancelledAt = &now
	return nil
}

func Complete(ev *models.CalendarEvent, now time.Time) error {
	if err := CanComplete(Status(ev.Status)); err != nil {
		return err
	}

	ev.Status = string(StatusCompleted)
	ev.CompletedAt = &now
	return nil
}

// Overlaps diz se [aStart, aEnd) e [bStart, bEnd) se cruzam.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
