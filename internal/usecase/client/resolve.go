package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/venue-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
	"github.com/BruksfildServices01/venue-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type ResolveClientInput struct {
	Name  string
	Phone string

	Email  string
	Notes  string
	Status domain.Status
}

// ======================================================
// USE CASE
// ======================================================

// ResolveClient encontra o cliente pela chave (nome normalizado + dígitos do
// telefone) ou cria um novo. Nunca cria duplicata de um cliente existente.
type ResolveClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewResolveClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ResolveClient {
	return &ResolveClient{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ResolveClient) Execute(
	ctx context.Context,
	in ResolveClientInput,
) (*models.Client, error) {

	// --------------------------------------------------
	// 1️⃣ Validação
	// --------------------------------------------------
	if validators.IsBlank(in.Name) {
		return nil, httperr.ErrBusiness("missing_client_name")
	}
	if !validators.IsEmailValid(in.Email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}
	if in.Status != "" && !in.Status.Valid() {
		return nil, httperr.ErrBusiness("invalid_client_status")
	}

	// --------------------------------------------------
	// 2️⃣ Busca por nome OU telefone, filtro exato em memória
	// --------------------------------------------------
	phone := strings.TrimSpace(in.Phone)
	candidates, err := uc.repo.FindCandidates(
		ctx,
		domain.NormalizeName(in.Name),
		phone,
		validators.DigitsOnly(phone),
	)
	if err != nil {
		return nil, err
	}

	details := domain.Details{
		Email:  in.Email,
		Notes:  in.Notes,
		Status: in.Status,
	}

	// --------------------------------------------------
	// 3️⃣ Encontrado → merge sem apagar dados
	// --------------------------------------------------
	if found := domain.PickMatch(candidates, domain.Key(in.Name, in.Phone)); found != nil {
		if domain.Merge(found, in.Name, phone, details) {
			if err := uc.repo.UpdateClient(ctx, found); err != nil {
				return nil, err
			}
			uc.audit.Dispatch(audit.Event{
				Action:   "client_updated",
				Entity:   "client",
				EntityID: &found.ID,
			})
		}
		return found, nil
	}

	// --------------------------------------------------
	// 4️⃣ Novo cliente
	// --------------------------------------------------
	status := in.Status
	if status == "" {
		status = domain.StatusNew
	}

	c := &models.Client{
		Name:   strings.TrimSpace(in.Name),
		Phone:  phone,
		Email:  strings.TrimSpace(in.Email),
		Notes:  strings.TrimSpace(in.Notes),
		Status: string(status),
	}

	if err := uc.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: &c.ID,
	})

	return c, nil
}
