package calendar

import (
	"context"
	"time"

	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

type Repository interface {
	// -------- Event (create / state change) --------
	CreateEvent(
		ctx context.Context,
		ev *models.CalendarEvent,
	) error

	GetEvent(
		ctx context.Context,
		id uint,
	) (*models.CalendarEvent, error)

	UpdateEvent(
		ctx context.Context,
		ev *models.CalendarEvent,
	) error

	// -------- Projection lookup --------
	// Ambos devolvem (nil, nil) quando não há evento.
	FindBySourceContract(
		ctx context.Context,
		contractID uint,
	) (*models.CalendarEvent, error)

	// Só considera eventos sem source_contract_id (legado).
	FindUnownedByTitleAndStart(
		ctx context.Context,
		title string,
		start time.Time,
	) (*models.CalendarEvent, error)

	// -------- Agenda --------
	ListEventsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.CalendarEvent, error)

	// CountOverlapping conta eventos não cancelados que cruzam a janela,
	// ignorando excludeID.
	CountOverlapping(
		ctx context.Context,
		start time.Time,
		end time.Time,
		excludeID uint,
	) (int64, error)
}
