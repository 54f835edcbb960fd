package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/venue-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/ledger"
	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
	"github.com/BruksfildServices01/venue-scheduler/internal/timezone"
)

// ======================================================
// CREATE
// ======================================================

type CreateMovementInput struct {
	Type        string
	Category    string
	Description string
	Amount      decimal.Decimal
	Date        string
}

type CreateMovement struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
	now   func() time.Time
}

func NewCreateMovement(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateMovement {
	return &CreateMovement{
		repo:  repo,
		audit: audit,
		loc:   loc,
		now:   time.Now,
	}
}

func (uc *CreateMovement) Execute(
	ctx context.Context,
	in CreateMovementInput,
) (*models.FinancialMovement, error) {

	typ := domain.Type(strings.TrimSpace(in.Type))
	if !typ.Valid() {
		return nil, httperr.ErrBusiness("invalid_movement_type")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, httperr.ErrBusiness("missing_description")
	}
	if !in.Amount.IsPositive() {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	date, err := timezone.ParseDateOr(in.Date, timezone.StartOfDay(uc.now(), uc.loc), uc.loc)
	if err != nil {
		return nil, err
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "other"
	}

	m := &models.FinancialMovement{
		Type:        string(typ),
		Category:    category,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Date:        date,
	}

	if err := uc.repo.CreateMovement(ctx, m); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "movement_created",
		Entity:   "financial_movement",
		EntityID: &m.ID,
	})

	return m, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteMovement struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteMovement(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteMovement {
	return &DeleteMovement{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteMovement) Execute(ctx context.Context, id uint) error {
	m, err := uc.repo.GetMovement(ctx, id)
	if err != nil {
		return httperr.ErrBusiness("movement_not_found")
	}

	// lançamento de recibo sai junto com o recibo
	if m.ReceiptID != nil {
		return httperr.ErrBusiness("movement_owned_by_receipt")
	}

	if err := uc.repo.DeleteMovement(ctx, m.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "movement_deleted",
		Entity:   "financial_movement",
		EntityID: &m.ID,
		Metadata: map[string]any{"description": m.Description},
	})

	return nil
}

// ======================================================
// LIST / SUMMARY
// ======================================================

type ListMovements struct {
	repo domain.Repository
}

func NewListMovements(repo domain.Repository) *ListMovements {
	return &ListMovements{repo: repo}
}

func (uc *ListMovements) Execute(ctx context.Context, p Period) ([]models.FinancialMovement, error) {
	return uc.repo.ListMovements(ctx, p.From, p.To)
}

type Summarize struct {
	repo domain.Repository
}

func NewSummarize(repo domain.Repository) *Summarize {
	return &Summarize{repo: repo}
}

func (uc *Summarize) Execute(ctx context.Context, p Period) (domain.Summary, error) {
	ms, err := uc.repo.ListMovements(ctx, p.From, p.To)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(ms), nil
}
