package client

import (
	"context"

	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

type Repository interface {
	// FindCandidates consulta por nome OU telefone; o filtro exato pela
	// chave normalizada é feito em memória (PickMatch).
	FindCandidates(
		ctx context.Context,
		normalizedName string,
		rawPhone string,
		digitsPhone string,
	) ([]models.Client, error)

	GetClient(ctx context.Context, id uint) (*models.Client, error)

	CreateClient(ctx context.Context, c *models.Client) error

	UpdateClient(ctx context.Context, c *models.Client) error

	// SearchClients lista clientes com resumo de contratos para a listagem.
	SearchClients(ctx context.Context, query string) ([]Summary, error)
}
