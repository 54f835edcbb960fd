package ledger

import (
	"context"
	"time"

	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

type Type string

const (
	TypeRevenue Type = "revenue"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeRevenue || t == TypeExpense
}

// Categorias usadas pelo motor de sincronização.
const (
	CategoryDeposit      = "deposit"
	CategoryFinalPayment = "final payment"
)

type Repository interface {
	CreateMovement(ctx context.Context, m *models.FinancialMovement) error
	CreateMovements(ctx context.Context, ms []models.FinancialMovement) error
	GetMovement(ctx context.Context, id uint) (*models.FinancialMovement, error)
	DeleteMovement(ctx context.Context, id uint) error

	// ListMovements devolve lançamentos com date em [from, to).
	ListMovements(ctx context.Context, from, to time.Time) ([]models.FinancialMovement, error)

	// DeleteReceiptMovements remove o lançamento de um recibo: pelo receipt_id
	// ou, para linhas antigas sem receipt_id, pela descrição.
	DeleteReceiptMovements(ctx context.Context, receiptID uint, description string) (int64, error)
}
