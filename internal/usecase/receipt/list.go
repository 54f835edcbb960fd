package receipt

import (
	"context"

	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/receipt"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

type ListReceipts struct {
	repo domain.Repository
}

func NewListReceipts(repo domain.Repository) *ListReceipts {
	return &ListReceipts{repo: repo}
}

// Execute lista os recibos do ano (0 = todos).
func (uc *ListReceipts) Execute(ctx context.Context, year int) ([]models.Receipt, error) {
	return uc.repo.ListReceipts(ctx, year)
}
