package contract

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/contract"
	"github.com/BruksfildServices01/venue-scheduler/internal/domain/pricing"
	"github.com/BruksfildServices01/venue-scheduler/internal/domain/receipt"
	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/logger"
)

// ReceiptTotals é a parte do repositório de recibos usada aqui.
type ReceiptTotals interface {
	SumForContract(ctx context.Context, contractID uint, typ receipt.Type) (decimal.Decimal, error)
}

type GetSettlement struct {
	contracts domain.Repository
	receipts  ReceiptTotals
	log       *logger.Logger
}

func NewGetSettlement(
	contracts domain.Repository,
	receipts ReceiptTotals,
	log *logger.Logger,
) *GetSettlement {
	return &GetSettlement{
		contracts: contracts,
		receipts:  receipts,
		log:       log,
	}
}

func (uc *GetSettlement) Execute(
	ctx context.Context,
	contractID uint,
) (*domain.Settlement, error) {

	ct, err := uc.contracts.GetContract(ctx, contractID)
	if err != nil {
		return nil, httperr.ErrBusiness("contract_not_found")
	}

	// valores vêm da linha do contrato; o payload só fornece a data do sinal
	var terms domain.Terms
	if len(ct.Payload) > 0 {
		if err := json.Unmarshal(ct.Payload, &terms); err != nil {
			uc.log.Warn("contracts", "contract %d: unreadable payload, deposit date omitted: %v", ct.ID, err)
		}
	}

	received, err := uc.receipts.SumForContract(ctx, ct.ID, "")
	if err != nil {
		return nil, err
	}
	settled, err := uc.receipts.SumForContract(ctx, ct.ID, receipt.TypeFinalSettlement)
	if err != nil {
		return nil, err
	}

	balance := pricing.ComputeBalance(ct.TotalValue, ct.DepositValue)
	outstanding := balance.Sub(settled)
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}

	return &domain.Settlement{
		ContractID:      ct.ID,
		ClientName:      ct.ClientNameSnapshot,
		EventDate:       ct.EventDate,
		Total:           ct.TotalValue,
		Deposit:         ct.DepositValue,
		DepositDate:     terms.Payment.DepositDate,
		Balance:         balance,
		Received:        received,
		Outstanding:     outstanding,
		SuggestedAmount: balance,
	}, nil
}
