package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

type CalendarGormRepository struct {
	db *gorm.DB
}

func NewCalendarGormRepository(db *gorm.DB) *CalendarGormRepository {
	return &CalendarGormRepository{db: db}
}

// --------------------------------------------------
// Event
// --------------------------------------------------

func (r *CalendarGormRepository) CreateEvent(
	ctx context.Context,
	ev *models.CalendarEvent,
) error {
	return categoryError(r.db.WithContext(ctx).Omit("Client").Create(ev).Error)
}

func (r *CalendarGormRepository) GetEvent(
	ctx context.Context,
	id uint,
) (*models.CalendarEvent, error) {

	var ev models.CalendarEvent
	if err := r.db.WithContext(ctx).First(&ev, id).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *CalendarGormRepository) UpdateEvent(
	ctx context.Context,
	ev *models.CalendarEvent,
) error {
	return categoryError(r.db.WithContext(ctx).Omit("Client").Save(ev).Error)
}

func categoryError(err error) error {
	if IsCheckViolation(err) {
		return fmt.Errorf("%w: %v", domain.ErrCategoryRejected, err)
	}
	return err
}

// --------------------------------------------------
// Projection lookup
// --------------------------------------------------

func (r *CalendarGormRepository) FindBySourceContract(
	ctx context.Context,
	contractID uint,
) (*models.CalendarEvent, error) {

	return r.findOne(r.db.WithContext(ctx).
		Where("source_contract_id = ?", contractID))
}

func (r *CalendarGormRepository) FindUnownedByTitleAndStart(
	ctx context.Context,
	title string,
	start time.Time,
) (*models.CalendarEvent, error) {

	return r.findOne(r.db.WithContext(ctx).
		Where("title = ? AND start_at = ? AND source_contract_id IS NULL", title, start))
}

func (r *CalendarGormRepository) findOne(q *gorm.DB) (*models.CalendarEvent, error) {
	var ev models.CalendarEvent
	err := q.Order("id ASC").First(&ev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// --------------------------------------------------
// Agenda
// --------------------------------------------------

func (r *CalendarGormRepository) ListEventsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.CalendarEvent, error) {

	var events []models.CalendarEvent

	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("start_at >= ? AND start_at < ?", start, end).
		Order("start_at ASC").
		Find(&events).Error

	if err != nil {
		return nil, err
	}

	return events, nil
}

func (r *CalendarGormRepository) CountOverlapping(
	ctx context.Context,
	start time.Time,
	end time.Time,
	excludeID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CalendarEvent{}).
		Where(
			"status <> ? AND start_at < ? AND end_at > ? AND id <> ?",
			string(domain.StatusCancelled),
			end,
			start,
			excludeID,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// Compile-time check
var _ domain.Repository = (*CalendarGormRepository)(nil)
