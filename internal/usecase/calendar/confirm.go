package calendar

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/venue-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/calendar"
	contractdomain "github.com/BruksfildServices01/venue-scheduler/internal/domain/contract"
	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/logger"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

// SettlementPrompt é a sugestão de quitação mostrada ao confirmar um evento
// ligado a contrato. Nada é lançado até o operador emitir o recibo.
type SettlementPrompt struct {
	ContractID      uint            `json:"contract_id"`
	ClientName      string          `json:"client_name"`
	Balance         decimal.Decimal `json:"balance"`
	Outstanding     decimal.Decimal `json:"outstanding"`
	SuggestedAmount decimal.Decimal `json:"suggested_amount"`
	SuggestedNumber string          `json:"suggested_number"`
}

type ConfirmEventResult struct {
	Event  *models.CalendarEvent `json:"event"`
	Prompt *SettlementPrompt     `json:"settlement_prompt,omitempty"`
}

// SettlementReader é o que ConfirmEvent precisa do caso de uso de contrato.
type SettlementReader interface {
	Execute(ctx context.Context, contractID uint) (*contractdomain.Settlement, error)
}

// NumberPreview sugere o próximo número de recibo sem reservá-lo.
type NumberPreview interface {
	Execute(ctx context.Context, year int) (string, error)
}

type ConfirmEvent struct {
	repo       domain.Repository
	settlement SettlementReader
	numbers    NumberPreview
	audit      *audit.Dispatcher
	log        *logger.Logger
}

func NewConfirmEvent(
	repo domain.Repository,
	settlement SettlementReader,
	numbers NumberPreview,
	audit *audit.Dispatcher,
	log *logger.Logger,
) *ConfirmEvent {
	return &ConfirmEvent{
		repo:       repo,
		settlement: settlement,
		numbers:    numbers,
		audit:      audit,
		log:        log,
	}
}

func (uc *ConfirmEvent) Execute(
	ctx context.Context,
	eventID uint,
) (*ConfirmEventResult, error) {

	ev, err := uc.repo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, httperr.ErrBusiness("event_not_found")
	}

	if err := domain.Confirm(ev); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateEvent(ctx, ev); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "event_confirmed",
		Entity:   "calendar_event",
		EntityID: &ev.ID,
	})

	out := &ConfirmEventResult{Event: ev}
	if ev.SourceContractID == nil {
		return out, nil
	}

	// --------------------------------------------------
	// Sugestão de quitação (somente leitura)
	// --------------------------------------------------
	// o evento já foi confirmado; falhas aqui só removem a sugestão
	st, err := uc.settlement.Execute(ctx, *ev.SourceContractID)
	if err != nil {
		uc.log.Warn("calendar", "event %d: settlement for contract %d unavailable: %v", ev.ID, *ev.SourceContractID, err)
		return out, nil
	}
	if !st.Outstanding.IsPositive() {
		return out, nil
	}

	next, err := uc.numbers.Execute(ctx, ev.StartAt.Year())
	if err != nil {
		uc.log.Warn("calendar", "event %d: next receipt number unavailable: %v", ev.ID, err)
		return out, nil
	}

	out.Prompt = &SettlementPrompt{
		ContractID:      st.ContractID,
		ClientName:      st.ClientName,
		Balance:         st.Balance,
		Outstanding:     st.Outstanding,
		SuggestedAmount: st.SuggestedAmount,
		SuggestedNumber: next,
	}

	return out, nil
}
