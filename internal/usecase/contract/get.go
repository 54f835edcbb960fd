package contract

import (
	"context"
	"encoding/json"

	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/contract"
	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/logger"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

type ContractView struct {
	*models.Contract
	Terms domain.Terms `json:"terms"`
}

type GetContract struct {
	repo domain.Repository
	log  *logger.Logger
}

func NewGetContract(repo domain.Repository, log *logger.Logger) *GetContract {
	return &GetContract{repo: repo, log: log}
}

func (uc *GetContract) Execute(
	ctx context.Context,
	id uint,
) (*ContractView, error) {

	ct, err := uc.repo.GetContract(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("contract_not_found")
	}

	view := &ContractView{Contract: ct}
	if len(ct.Payload) > 0 {
		// payload antigo ilegível não impede a leitura do contrato
		if err := json.Unmarshal(ct.Payload, &view.Terms); err != nil {
			uc.log.Warn("contracts", "contract %d: unreadable payload: %v", ct.ID, err)
		}
	}

	return view, nil
}
