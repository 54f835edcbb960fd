package receipt

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/venue-scheduler/internal/audit"
	"github.com/BruksfildServices01/venue-scheduler/internal/domain/ledger"
	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/receipt"
	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
)

// DeleteReceipt remove o recibo e o lançamento pareado.
// As duas remoções são sequenciais: se a segunda falhar o recibo
// já foi removido e o erro é devolvido.
type DeleteReceipt struct {
	receipts domain.Repository
	ledger   ledger.Repository
	audit    *audit.Dispatcher
}

func NewDeleteReceipt(
	receipts domain.Repository,
	ledgerRepo ledger.Repository,
	audit *audit.Dispatcher,
) *DeleteReceipt {
	return &DeleteReceipt{
		receipts: receipts,
		ledger:   ledgerRepo,
		audit:    audit,
	}
}

func (uc *DeleteReceipt) Execute(ctx context.Context, id uint) error {
	rc, err := uc.receipts.GetReceipt(ctx, id)
	if err != nil {
		return httperr.ErrBusiness("receipt_not_found")
	}

	if err := uc.receipts.DeleteReceipt(ctx, rc.ID); err != nil {
		return err
	}

	removed, err := uc.ledger.DeleteReceiptMovements(
		ctx,
		rc.ID,
		domain.Description(rc.Number, rc.ClientName),
	)
	if err != nil {
		return fmt.Errorf("receipt %s deleted, ledger cleanup failed: %w", rc.Number, err)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "receipt_deleted",
		Entity:   "receipt",
		EntityID: &rc.ID,
		Metadata: map[string]any{
			"number":            rc.Number,
			"movements_removed": removed,
		},
	})

	return nil
}
