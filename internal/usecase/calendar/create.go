package calendar

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/venue-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
	"github.com/BruksfildServices01/venue-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateEventInput struct {
	Title    string
	Date     string // YYYY-MM-DD
	Start    string // HH:MM
	End      string // HH:MM
	Category string

	ClientID    *uint
	Description string
}

// ======================================================
// USE CASE
// ======================================================

// CreateEvent registra um evento avulso (visita, degustação, reserva
// ainda sem contrato). Nasce pendente.
type CreateEvent struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCreateEvent(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateEvent {
	return &CreateEvent{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

func (uc *CreateEvent) Execute(
	ctx context.Context,
	in CreateEventInput,
) (*models.CalendarEvent, error) {

	// --------------------------------------------------
	// 1️⃣ Validação
	// --------------------------------------------------
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, httperr.ErrBusiness("missing_title")
	}

	category := domain.Category(strings.TrimSpace(in.Category))
	if category == "" {
		category = domain.CategoryOther
	}
	if !category.Valid() {
		return nil, httperr.ErrBusiness("invalid_category")
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora no fuso do salão
	// --------------------------------------------------
	day, err := timezone.ParseDate(in.Date, uc.loc)
	if err != nil {
		return nil, err
	}
	start, err := timezone.At(day, in.Start, uc.loc)
	if err != nil {
		return nil, err
	}
	end, err := timezone.At(day, in.End, uc.loc)
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}

	// --------------------------------------------------
	// 3️⃣ Criação (status centralizado)
	// --------------------------------------------------
	ev := &models.CalendarEvent{
		Title:       title,
		StartAt:     start,
		EndAt:       end,
		Category:    string(category),
		Status:      string(domain.InitialStatus()),
		ClientID:    in.ClientID,
		Description: in.Description,
	}

	if err := uc.repo.CreateEvent(ctx, ev); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "event_created",
		Entity:   "calendar_event",
		EntityID: &ev.ID,
	})

	return ev, nil
}
