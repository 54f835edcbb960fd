package client

import (
	"context"

	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/client"
)

type ListClients struct {
	repo domain.Repository
}

func NewListClients(repo domain.Repository) *ListClients {
	return &ListClients{repo: repo}
}

// Execute devolve os clientes já agrupados por pessoa real.
func (uc *ListClients) Execute(
	ctx context.Context,
	query string,
) ([]domain.Summary, error) {

	rows, err := uc.repo.SearchClients(ctx, query)
	if err != nil {
		return nil, err
	}

	return domain.GroupForDisplay(rows), nil
}
