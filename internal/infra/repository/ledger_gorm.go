package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/ledger"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

type LedgerGormRepository struct {
	db *gorm.DB
}

func NewLedgerGormRepository(db *gorm.DB) *LedgerGormRepository {
	return &LedgerGormRepository{db: db}
}

func (r *LedgerGormRepository) CreateMovement(
	ctx context.Context,
	m *models.FinancialMovement,
) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *LedgerGormRepository) CreateMovements(
	ctx context.Context,
	ms []models.FinancialMovement,
) error {
	if len(ms) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&ms).Error
}

func (r *LedgerGormRepository) GetMovement(
	ctx context.Context,
	id uint,
) (*models.FinancialMovement, error) {

	var m models.FinancialMovement
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *LedgerGormRepository) DeleteMovement(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(&models.FinancialMovement{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LedgerGormRepository) ListMovements(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.FinancialMovement, error) {

	var out []models.FinancialMovement
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC, id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *LedgerGormRepository) DeleteReceiptMovements(
	ctx context.Context,
	receiptID uint,
	description string,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where(
			"receipt_id = ? OR (receipt_id IS NULL AND description = ?)",
			receiptID,
			description,
		).
		Delete(&models.FinancialMovement{})

	return res.RowsAffected, res.Error
}

// Compile-time check
var _ domain.Repository = (*LedgerGormRepository)(nil)
