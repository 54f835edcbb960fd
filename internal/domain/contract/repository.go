package contract

import (
	"context"

	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

type Repository interface {
	CreateContract(ctx context.Context, c *models.Contract) error
	UpdateContract(ctx context.Context, c *models.Contract) error
	GetContract(ctx context.Context, id uint) (*models.Contract, error)
}
