package repository

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/client"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) FindCandidates(
	ctx context.Context,
	normalizedName string,
	rawPhone string,
	digitsPhone string,
) ([]models.Client, error) {

	q := r.db.WithContext(ctx).
		Where("LOWER(TRIM(name)) = ?", normalizedName)

	if rawPhone != "" {
		q = q.Or("phone = ?", rawPhone)
	}
	if digitsPhone != "" {
		q = q.Or("phone = ?", digitsPhone)
	}

	var out []models.Client
	if err := q.Order("created_at ASC, id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ClientGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientGormRepository) CreateClient(
	ctx context.Context,
	c *models.Client,
) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientGormRepository) UpdateClient(
	ctx context.Context,
	c *models.Client,
) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *ClientGormRepository) SearchClients(
	ctx context.Context,
	query string,
) ([]domain.Summary, error) {

	q := r.db.WithContext(ctx).Model(&models.Client{})
	if query = strings.TrimSpace(query); query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}

	var clients []models.Client
	if err := q.Order("updated_at DESC").Find(&clients).Error; err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return []domain.Summary{}, nil
	}

	ids := make([]uint, 0, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
	}

	var contracts []models.Contract
	if err := r.db.WithContext(ctx).
		Select("id", "client_id", "total_value", "event_date").
		Where("client_id IN ?", ids).
		Find(&contracts).Error; err != nil {
		return nil, err
	}

	type agg struct {
		count int
		total decimal.Decimal
		last  *time.Time
	}
	byClient := make(map[uint]*agg, len(clients))
	for _, ct := range contracts {
		if ct.ClientID == nil {
			continue
		}
		a := byClient[*ct.ClientID]
		if a == nil {
			a = &agg{total: decimal.Zero}
			byClient[*ct.ClientID] = a
		}
		a.count++
		a.total = a.total.Add(ct.TotalValue)
		if a.last == nil || ct.EventDate.After(*a.last) {
			d := ct.EventDate
			a.last = &d
		}
	}

	out := make([]domain.Summary, 0, len(clients))
	for _, c := range clients {
		s := domain.Summary{
			Key:        domain.KeyOf(&c),
			ClientIDs:  []uint{c.ID},
			Name:       c.Name,
			Phone:      c.Phone,
			Email:      c.Email,
			Status:     c.Status,
			TotalValue: decimal.Zero,
			UpdatedAt:  c.UpdatedAt,
		}
		if a := byClient[c.ID]; a != nil {
			s.ContractCount = a.count
			s.TotalValue = a.total
			s.LastEventDate = a.last
		}
		out = append(out, s)
	}

	return out, nil
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
