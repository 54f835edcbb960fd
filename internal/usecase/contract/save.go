package contract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/venue-scheduler/internal/audit"
	"github.com/BruksfildServices01/venue-scheduler/internal/domain/calendar"
	clientdomain "github.com/BruksfildServices01/venue-scheduler/internal/domain/client"
	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/contract"
	"github.com/BruksfildServices01/venue-scheduler/internal/domain/ledger"
	"github.com/BruksfildServices01/venue-scheduler/internal/domain/pricing"
	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/logger"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
	clientuc "github.com/BruksfildServices01/venue-scheduler/internal/usecase/client"
)

// ======================================================
// PORTS
// ======================================================

// SnapshotArchive guarda cópias do payload; opcional.
type SnapshotArchive interface {
	PutSnapshot(ctx context.Context, contractID uint, payload []byte) (string, error)
}

// ======================================================
// INPUT / OUTPUT
// ======================================================

type SaveContractInput struct {
	ContractID    uint
	IsNewContract bool
	Terms         domain.Terms
}

type StepStatus string

const (
	StepOK      StepStatus = "ok"
	StepFailed  StepStatus = "failed"
	StepSkipped StepStatus = "skipped"
)

type StepResult struct {
	Step   string     `json:"step"`
	Status StepStatus `json:"status"`
	Detail string     `json:"detail,omitempty"`
}

type SaveContractResult struct {
	RunID      string        `json:"run_id"`
	ContractID uint          `json:"contract_id"`
	ClientID   *uint         `json:"client_id"`
	EventID    *uint         `json:"event_id"`
	Quote      pricing.Quote `json:"quote"`
	Steps      []StepResult  `json:"steps"`
	Warnings   []string      `json:"warnings"`
}

const (
	stepClient   = "cliente"
	stepContract = "contrato"
	stepCalendar = "agenda"
	stepLedger   = "financeiro"
	stepArchive  = "arquivo"
)

// ======================================================
// USE CASE
// ======================================================

// SaveContract grava o contrato e projeta agenda e livro-caixa.
// Só a gravação do contrato é obrigatória; as demais etapas falham
// isoladamente e viram avisos, sem desfazer o que já foi gravado.
type SaveContract struct {
	clients   *clientuc.ResolveClient
	contracts domain.Repository
	events    calendar.Repository
	ledger    ledger.Repository
	archive   SnapshotArchive

	audit *audit.Dispatcher
	log   *logger.Logger
	loc   *time.Location
	now   func() time.Time
}

func NewSaveContract(
	clients *clientuc.ResolveClient,
	contracts domain.Repository,
	events calendar.Repository,
	ledgerRepo ledger.Repository,
	archive SnapshotArchive,
	audit *audit.Dispatcher,
	log *logger.Logger,
	loc *time.Location,
) *SaveContract {
	return &SaveContract{
		clients:   clients,
		contracts: contracts,
		events:    events,
		ledger:    ledgerRepo,
		archive:   archive,
		audit:     audit,
		log:       log,
		loc:       loc,
		now:       time.Now,
	}
}

type saveRun struct {
	*SaveContractResult
	log *logger.Logger
}

func (r *saveRun) ok(step string) {
	r.Steps = append(r.Steps, StepResult{Step: step, Status: StepOK})
}

func (r *saveRun) skip(step, detail string) {
	r.Steps = append(r.Steps, StepResult{Step: step, Status: StepSkipped, Detail: detail})
}

func (r *saveRun) fail(step string, err error) {
	r.Steps = append(r.Steps, StepResult{Step: step, Status: StepFailed, Detail: err.Error()})
	r.Warnings = append(r.Warnings, fmt.Sprintf("contrato salvo, mas %s falhou", step))
	r.log.Warn("contracts", "run %s: step %s failed: %v", r.RunID, step, err)
}

func (r *saveRun) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SaveContract) Execute(
	ctx context.Context,
	in SaveContractInput,
) (*SaveContractResult, error) {

	// --------------------------------------------------
	// 0️⃣ Validação (nada é gravado antes disso)
	// --------------------------------------------------
	terms := in.Terms
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if !in.IsNewContract && in.ContractID == 0 {
		return nil, httperr.ErrBusiness("missing_contract_id")
	}

	eventDay, err := domain.EventDay(terms, uc.loc)
	if err != nil {
		return nil, err
	}
	if _, _, err := domain.EventWindow(terms, uc.loc); err != nil {
		return nil, err
	}
	if _, _, err := domain.PaymentDates(terms, uc.now(), uc.loc); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(terms)
	if err != nil {
		return nil, fmt.Errorf("encode contract payload: %w", err)
	}

	var existing *models.Contract
	if !in.IsNewContract {
		existing, err = uc.contracts.GetContract(ctx, in.ContractID)
		if err != nil {
			return nil, httperr.ErrBusiness("contract_not_found")
		}
	}

	quote := terms.Quote()
	run := &saveRun{
		SaveContractResult: &SaveContractResult{
			RunID:    uuid.NewString(),
			Quote:    quote,
			Steps:    []StepResult{},
			Warnings: []string{},
		},
		log: uc.log,
	}

	// --------------------------------------------------
	// 1️⃣ Cliente
	// --------------------------------------------------
	client, err := uc.clients.Execute(ctx, clientuc.ResolveClientInput{
		Name:   terms.ClientName,
		Phone:  terms.ClientPhone,
		Email:  terms.ClientEmail,
		Notes:  terms.ClientNotes,
		Status: clientdomain.StatusBooked,
	})
	if err != nil {
		run.fail(stepClient, err)
	} else {
		run.ClientID = &client.ID
		run.ok(stepClient)
	}

	// --------------------------------------------------
	// 2️⃣ Contrato (obrigatório)
	// --------------------------------------------------
	ct := existing
	if ct == nil {
		ct = &models.Contract{}
	}
	if run.ClientID != nil {
		ct.ClientID = run.ClientID
	}
	ct.Client = nil
	ct.ClientNameSnapshot = terms.ClientName
	ct.EventDate = eventDay
	ct.TotalValue = quote.Total
	ct.DepositValue = quote.Deposit
	ct.Balance = quote.Balance
	ct.Payload = datatypes.JSON(payload)

	if in.IsNewContract {
		err = uc.contracts.CreateContract(ctx, ct)
	} else {
		err = uc.contracts.UpdateContract(ctx, ct)
	}
	if err != nil {
		uc.log.Error("contracts", "run %s: save contract failed: %v", run.RunID, err)
		return nil, fmt.Errorf("save contract: %w", err)
	}
	run.ContractID = ct.ID
	run.ok(stepContract)

	// --------------------------------------------------
	// 3️⃣ Agenda
	// --------------------------------------------------
	if ev, err := uc.projectEvent(ctx, ct.ID, run.ClientID, terms); err != nil {
		run.fail(stepCalendar, err)
	} else {
		run.EventID = &ev.ID
		run.ok(stepCalendar)

		n, err := uc.events.CountOverlapping(ctx, ev.StartAt, ev.EndAt, ev.ID)
		if err != nil {
			uc.log.Warn("contracts", "run %s: overlap check failed: %v", run.RunID, err)
		} else if n > 0 {
			run.warn(fmt.Sprintf("há %d outro(s) evento(s) no mesmo horário", n))
		}
	}

	// --------------------------------------------------
	// 4️⃣ Livro-caixa (só no primeiro salvamento)
	// --------------------------------------------------
	if !in.IsNewContract {
		run.skip(stepLedger, "contrato existente")
	} else if entries, err := domain.DeriveLedgerEntries(ct.ID, terms, uc.now(), uc.loc); err != nil {
		run.fail(stepLedger, err)
	} else if len(entries) == 0 {
		run.skip(stepLedger, "sem valores a lançar")
	} else if err := uc.ledger.CreateMovements(ctx, entries); err != nil {
		run.fail(stepLedger, err)
	} else {
		run.ok(stepLedger)
	}

	// --------------------------------------------------
	// 5️⃣ Arquivo do payload
	// --------------------------------------------------
	if uc.archive == nil {
		run.skip(stepArchive, "arquivo não configurado")
	} else if _, err := uc.archive.PutSnapshot(ctx, ct.ID, payload); err != nil {
		run.fail(stepArchive, err)
	} else {
		run.ok(stepArchive)
	}

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	action := "contract_updated"
	if in.IsNewContract {
		action = "contract_created"
	}
	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "contract",
		EntityID: &ct.ID,
		Metadata: map[string]any{
			"run_id":   run.RunID,
			"steps":    run.Steps,
			"warnings": run.Warnings,
		},
	})

	return run.SaveContractResult, nil
}

// projectEvent cria ou atualiza o evento do contrato. Procura primeiro pelo
// contrato de origem e depois pela chave antiga (título, início).
func (uc *SaveContract) projectEvent(
	ctx context.Context,
	contractID uint,
	clientID *uint,
	terms domain.Terms,
) (*models.CalendarEvent, error) {

	derived, err := domain.DeriveEvent(contractID, clientID, terms, uc.loc)
	if err != nil {
		return nil, err
	}

	ev, err := uc.events.FindBySourceContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		ev, err = uc.events.FindUnownedByTitleAndStart(ctx, derived.Title, derived.StartAt)
		if err != nil {
			return nil, err
		}
	}

	write := uc.events.CreateEvent
	if ev != nil {
		domain.ApplyTo(ev, derived)
		write = uc.events.UpdateEvent
	} else {
		ev = derived
	}

	err = write(ctx, ev)
	if errors.Is(err, calendar.ErrCategoryRejected) && ev.Category != string(calendar.CategoryOther) {
		uc.log.Warn("contracts", "category %q rejected, retrying as other", ev.Category)
		ev.Category = string(calendar.CategoryOther)
		err = write(ctx, ev)
	}
	if err != nil {
		return nil, err
	}

	return ev, nil
}
