package calendar

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/venue-scheduler/internal/dto"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
	"github.com/BruksfildServices01/venue-scheduler/internal/timezone"
)

type ListEventsByDate struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListEventsByDate(
	repo domain.Repository,
	loc *time.Location,
) *ListEventsByDate {
	return &ListEventsByDate{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListEventsByDate) Execute(
	ctx context.Context,
	date time.Time,
) ([]dto.EventListDTO, error) {

	start := timezone.StartOfDay(date, uc.loc)
	end := start.AddDate(0, 0, 1)

	events, err := uc.repo.ListEventsForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return toDTO(events), nil
}

type ListEventsByMonth struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListEventsByMonth(
	repo domain.Repository,
	loc *time.Location,
) *ListEventsByMonth {
	return &ListEventsByMonth{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListEventsByMonth) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]dto.EventListDTO, error) {

	start, end := timezone.MonthRange(year, month, uc.loc)

	events, err := uc.repo.ListEventsForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return toDTO(events), nil
}

func toDTO(events []models.CalendarEvent) []dto.EventListDTO {
	out := make([]dto.EventListDTO, 0, len(events))
	for _, ev := range events {
		item := dto.EventListDTO{
			ID:               ev.ID,
			Title:            ev.Title,
			StartAt:          ev.StartAt,
			EndAt:            ev.EndAt,
			Category:         ev.Category,
			Status:           ev.Status,
			SourceContractID: ev.SourceContractID,
		}
		if ev.Client != nil {
			item.ClientName = ev.Client.Name
		}
		out = append(out, item)
	}
	return out
}
