package calendar

import (
	"context"
	"time"

	"github.com/BruksfildServices01/venue-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

type CancelEvent struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCancelEvent(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelEvent {
	return &CancelEvent{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *CancelEvent) Execute(
	ctx context.Context,
	eventID uint,
) (*models.CalendarEvent, error) {

	ev, err := uc.repo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, httperr.ErrBusiness("event_not_found")
	}

	if err := domain.Cancel(ev, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateEvent(ctx, ev); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "event_cancelled",
		Entity:   "calendar_event",
		EntityID: &ev.ID,
	})

	return ev, nil
}

type CompleteEvent struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCompleteEvent(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteEvent {
	return &CompleteEvent{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *CompleteEvent) Execute(
	ctx context.Context,
	eventID uint,
) (*models.CalendarEvent, error) {

	ev, err := uc.repo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, httperr.ErrBusiness("event_not_found")
	}

	if err := domain.Complete(ev, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateEvent(ctx, ev); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "event_completed",
		Entity:   "calendar_event",
		EntityID: &ev.ID,
	})

	return ev, nil
}
