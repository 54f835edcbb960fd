package receipt

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/receipt"
)

// NextReceiptNumber só consulta o próximo número; não reserva.
// Pula números antigos já ocupados, como IssueReceipt faz ao alocar.
type NextReceiptNumber struct {
	seq      domain.Sequencer
	receipts domain.Repository
}

func NewNextReceiptNumber(seq domain.Sequencer, receipts domain.Repository) *NextReceiptNumber {
	return &NextReceiptNumber{seq: seq, receipts: receipts}
}

func (uc *NextReceiptNumber) Execute(ctx context.Context, year int) (string, error) {
	n, err := uc.seq.Peek(ctx, year)
	if err != nil {
		return "", err
	}

	for i := range maxAllocateAttempts {
		number := domain.FormatNumber(n+i, year)
		taken, err := uc.receipts.NumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !taken {
			return number, nil
		}
	}

	return "", fmt.Errorf("receipt numbering %d: no free number after %d attempts", year, maxAllocateAttempts)
}
