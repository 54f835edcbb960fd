package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/contract"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

type ContractGormRepository struct {
	db *gorm.DB
}

func NewContractGormRepository(db *gorm.DB) *ContractGormRepository {
	return &ContractGormRepository{db: db}
}

func (r *ContractGormRepository) CreateContract(
	ctx context.Context,
	c *models.Contract,
) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContractGormRepository) UpdateContract(
	ctx context.Context,
	c *models.Contract,
) error {
	return r.db.WithContext(ctx).
		Omit("Client").
		Save(c).Error
}

func (r *ContractGormRepository) GetContract(
	ctx context.Context,
	id uint,
) (*models.Contract, error) {

	var c models.Contract
	if err := r.db.WithContext(ctx).
		Preload("Client").
		First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Compile-time check
var _ domain.Repository = (*ContractGormRepository)(nil)
