package receipt

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

type Type string

const (
	TypePartial         Type = "partial"
	TypeFinalSettlement Type = "final_settlement"
)

var numberPattern = regexp.MustCompile(`^(\d{3,})/(\d{4})$`)

// FormatNumber devolve "NNN/YYYY".
func FormatNumber(seq, year int) string {
	return fmt.Sprintf("%03d/%d", seq, year)
}

// ParseNumber valida e separa um número informado manualmente.
func ParseNumber(number string) (seq int, year int, err error) {
	m := numberPattern.FindStringSubmatch(number)
	if m == nil {
		return 0, 0, httperr.ErrBusiness("invalid_receipt_number")
	}
	seq, _ = strconv.Atoi(m[1])
	year, _ = strconv.Atoi(m[2])
	if seq <= 0 {
		return 0, 0, httperr.ErrBusiness("invalid_receipt_number")
	}
	return seq, year, nil
}

// Description é o texto do lançamento pareado com o recibo.
// O formato é congelado: recibos antigos só se ligam ao livro-caixa por ele.
func Description(number, clientName string) string {
	return "Recibo " + number + " - " + clientName
}

// ===============================
// Ports
// ===============================

type Repository interface {
	GetReceipt(ctx context.Context, id uint) (*models.Receipt, error)
	NumberExists(ctx context.Context, number string) (bool, error)
	ListReceipts(ctx context.Context, year int) ([]models.Receipt, error)
	// SumForContract soma os recibos do contrato; typ vazio soma todos.
	SumForContract(ctx context.Context, contractID uint, typ Type) (decimal.Decimal, error)

	// CountForYear conta recibos com número terminado em "/YYYY".
	CountForYear(ctx context.Context, year int) (int64, error)

	// CreateWithMovement grava recibo e lançamento na mesma transação;
	// m.ReceiptID é preenchido com o ID do recibo.
	CreateWithMovement(ctx context.Context, r *models.Receipt, m *models.FinancialMovement) error

	DeleteReceipt(ctx context.Context, id uint) error
}

// Sequencer aloca números de recibo por ano sem corrida.
type Sequencer interface {
	// Peek devolve o próximo valor sem consumi-lo.
	Peek(ctx context.Context, year int) (int, error)

	// Allocate consome e devolve o próximo valor.
	Allocate(ctx context.Context, year int) (int, error)

	// Observe garante que o contador seja pelo menos seq
	// (números informados manualmente).
	Observe(ctx context.Context, year, seq int) error
}
