package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/receipt"
	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

type ReceiptGormRepository struct {
	db *gorm.DB
}

func NewReceiptGormRepository(db *gorm.DB) *ReceiptGormRepository {
	return &ReceiptGormRepository{db: db}
}

func (r *ReceiptGormRepository) GetReceipt(
	ctx context.Context,
	id uint,
) (*models.Receipt, error) {

	var rc models.Receipt
	if err := r.db.WithContext(ctx).First(&rc, id).Error; err != nil {
		return nil, err
	}
	return &rc, nil
}

func (r *ReceiptGormRepository) NumberExists(
	ctx context.Context,
	number string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Receipt{}).
		Where("number = ?", number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReceiptGormRepository) ListReceipts(
	ctx context.Context,
	year int,
) ([]models.Receipt, error) {

	q := r.db.WithContext(ctx)
	if year > 0 {
		q = q.Where("number LIKE ?", yearPattern(year))
	}

	var out []models.Receipt
	if err := q.Order("number ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReceiptGormRepository) SumForContract(
	ctx context.Context,
	contractID uint,
	typ domain.Type,
) (decimal.Decimal, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Receipt{}).
		Where("contract_id = ?", contractID)
	if typ != "" {
		q = q.Where("type = ?", string(typ))
	}

	var values []decimal.Decimal
	if err := q.Pluck("value", &values).Error; err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum, nil
}

func (r *ReceiptGormRepository) CountForYear(
	ctx context.Context,
	year int,
) (int64, error) {
	return countReceiptsForYear(r.db.WithContext(ctx), year)
}

// CreateWithMovement grava recibo + lançamento numa transação só.
func (r *ReceiptGormRepository) CreateWithMovement(
	ctx context.Context,
	rc *models.Receipt,
	m *models.FinancialMovement,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Contract").Create(rc).Error; err != nil {
			if IsUniqueViolation(err) {
				return httperr.ErrBusiness("receipt_number_taken")
			}
			return fmt.Errorf("create receipt: %w", err)
		}

		m.ReceiptID = &rc.ID
		if err := tx.Create(m).Error; err != nil {
			return fmt.Errorf("create receipt movement: %w", err)
		}
		return nil
	})
}

func (r *ReceiptGormRepository) DeleteReceipt(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Receipt{}, id).Error
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func yearPattern(year int) string {
	return fmt.Sprintf("%%/%d", year)
}

func countReceiptsForYear(db *gorm.DB, year int) (int64, error) {
	var count int64
	err := db.Model(&models.Receipt{}).
		Where("number LIKE ?", yearPattern(year)).
		Count(&count).Error
	return count, err
}

// Compile-time check
var _ domain.Repository = (*ReceiptGormRepository)(nil)
