package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/receipt"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

const maxSequenceAttempts = 10

// ReceiptSequenceGorm guarda o contador anual em receipt_sequences e o
// incrementa com compare-and-swap.
type ReceiptSequenceGorm struct {
	db *gorm.DB
}

func NewReceiptSequenceGorm(db *gorm.DB) *ReceiptSequenceGorm {
	return &ReceiptSequenceGorm{db: db}
}

// current devolve o valor gravado, criando a linha do ano (semeada com a
// contagem de recibos) quando ainda não existe, e a contagem atual.
func (s *ReceiptSequenceGorm) current(ctx context.Context, year int) (int, int, error) {
	db := s.db.WithContext(ctx)

	count, err := countReceiptsForYear(db, year)
	if err != nil {
		return 0, 0, err
	}

	var seq models.ReceiptSequence
	err = db.Where("year = ?", year).First(&seq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seq = models.ReceiptSequence{Year: year, LastValue: int(count)}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seq).Error; err != nil {
			return 0, 0, err
		}
		err = db.Where("year = ?", year).First(&seq).Error
	}
	if err != nil {
		return 0, 0, err
	}

	return seq.LastValue, int(count), nil
}

// Peek só lê: não cria a linha do ano.
func (s *ReceiptSequenceGorm) Peek(ctx context.Context, year int) (int, error) {
	db := s.db.WithContext(ctx)

	count, err := countReceiptsForYear(db, year)
	if err != nil {
		return 0, err
	}

	var last int
	var seq models.ReceiptSequence
	err = db.Where("year = ?", year).Take(&seq).Error
	switch {
	case err == nil:
		last = seq.LastValue
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return 0, err
	}

	return max(last, int(count)) + 1, nil
}

func (s *ReceiptSequenceGorm) Allocate(ctx context.Context, year int) (int, error) {
	for range maxSequenceAttempts {
		last, count, err := s.current(ctx, year)
		if err != nil {
			return 0, err
		}

		next := max(last, count) + 1
		res := s.db.WithContext(ctx).
			Model(&models.ReceiptSequence{}).
			Where("year = ? AND last_value = ?", year, last).
			Update("last_value", next)
		if res.Error != nil {
			return 0, res.Error
		}
		if res.RowsAffected == 1 {
			return next, nil
		}
		// outro processo levou o número; tenta de novo
	}

	return 0, fmt.Errorf("receipt sequence %d: too much contention", year)
}

func (s *ReceiptSequenceGorm) Observe(ctx context.Context, year, seq int) error {
	if _, _, err := s.current(ctx, year); err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Model(&models.ReceiptSequence{}).
		Where("year = ? AND last_value < ?", year, seq).
		Update("last_value", seq).Error
}

// Compile-time check
var _ domain.Sequencer = (*ReceiptSequenceGorm)(nil)
