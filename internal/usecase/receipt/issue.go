package receipt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/venue-scheduler/internal/audit"
	contractdomain "github.com/BruksfildServices01/venue-scheduler/internal/domain/contract"
	"github.com/BruksfildServices01/venue-scheduler/internal/domain/ledger"
	"github.com/BruksfildServices01/venue-scheduler/internal/domain/pricing"
	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/receipt"
	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
	"github.com/BruksfildServices01/venue-scheduler/internal/timezone"
)

const maxAllocateAttempts = 5

// ======================================================
// INPUT
// ======================================================

type IssueReceiptInput struct {
	ContractID *uint

	// vazio → próximo número do ano
	Number string

	// nil → saldo do contrato (só na quitação)
	Amount *decimal.Decimal

	Date              string // YYYY-MM-DD, vazio = hoje
	Method            string
	ClientName        string
	IsFinalSettlement bool
}

// ======================================================
// USE CASE
// ======================================================

type IssueReceipt struct {
	receipts  domain.Repository
	seq       domain.Sequencer
	contracts contractdomain.Repository
	audit     *audit.Dispatcher
	loc       *time.Location
	now       func() time.Time
}

func NewIssueReceipt(
	receipts domain.Repository,
	seq domain.Sequencer,
	contracts contractdomain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *IssueReceipt {
	return &IssueReceipt{
		receipts:  receipts,
		seq:       seq,
		contracts: contracts,
		audit:     audit,
		loc:       loc,
		now:       time.Now,
	}
}

func (uc *IssueReceipt) Execute(
	ctx context.Context,
	in IssueReceiptInput,
) (*models.Receipt, error) {

	// --------------------------------------------------
	// 1️⃣ Data
	// --------------------------------------------------
	date, err := timezone.ParseDateOr(
		strings.TrimSpace(in.Date),
		timezone.StartOfDay(uc.now(), uc.loc),
		uc.loc,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Contrato (opcional)
	// --------------------------------------------------
	var ct *models.Contract
	if in.ContractID != nil {
		ct, err = uc.contracts.GetContract(ctx, *in.ContractID)
		if err != nil {
			return nil, httperr.ErrBusiness("contract_not_found")
		}
	}

	clientName := strings.TrimSpace(in.ClientName)
	if clientName == "" && ct != nil {
		clientName = ct.ClientNameSnapshot
	}
	if clientName == "" {
		return nil, httperr.ErrBusiness("missing_client_name")
	}

	// --------------------------------------------------
	// 3️⃣ Valor
	// --------------------------------------------------
	var amount decimal.Decimal
	switch {
	case in.Amount != nil:
		amount = *in.Amount
	case in.IsFinalSettlement && ct != nil:
		amount = pricing.ComputeBalance(ct.TotalValue, ct.DepositValue)
	}
	if !amount.IsPositive() {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	// --------------------------------------------------
	// 4️⃣ Número
	// --------------------------------------------------
	number, err := uc.number(ctx, strings.TrimSpace(in.Number), date.Year())
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Recibo + lançamento (transação)
	// --------------------------------------------------
	typ := domain.TypePartial
	category := ledger.CategoryDeposit
	if in.IsFinalSettlement {
		typ = domain.TypeFinalSettlement
		category = ledger.CategoryFinalPayment
	}

	rc := &models.Receipt{
		ContractID: in.ContractID,
		Number:     number,
		Value:      amount,
		Date:       date,
		Type:       string(typ),
		Method:     strings.TrimSpace(in.Method),
		ClientName: clientName,
	}

	mv := &models.FinancialMovement{
		Type:             string(ledger.TypeRevenue),
		Category:         category,
		Description:      domain.Description(number, clientName),
		Amount:           amount,
		Date:             date,
		SourceContractID: in.ContractID,
	}

	if err := uc.receipts.CreateWithMovement(ctx, rc, mv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "receipt_issued",
		Entity:   "receipt",
		EntityID: &rc.ID,
		Metadata: map[string]any{
			"number":      rc.Number,
			"movement_id": mv.ID,
		},
	})

	return rc, nil
}

// number valida um número manual ou aloca o próximo do ano.
func (uc *IssueReceipt) number(ctx context.Context, manual string, year int) (string, error) {
	if manual != "" {
		seq, numYear, err := domain.ParseNumber(manual)
		if err != nil {
			return "", err
		}
		taken, err := uc.receipts.NumberExists(ctx, manual)
		if err != nil {
			return "", err
		}
		if taken {
			return "", httperr.ErrBusiness("receipt_number_taken")
		}
		if err := uc.seq.Observe(ctx, numYear, seq); err != nil {
			return "", err
		}
		return manual, nil
	}

	// números antigos digitados à mão podem ocupar o próximo valor
	for range maxAllocateAttempts {
		seq, err := uc.seq.Allocate(ctx, year)
		if err != nil {
			return "", err
		}
		number := domain.FormatNumber(seq, year)
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
