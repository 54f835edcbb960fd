package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Contract struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID *uint   `gorm:"index" json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	ClientNameSnapshot string    `gorm:"size:150;not null" json:"client_name_snapshot"`
	EventDate          time.Time `gorm:"index" json:"event_date"`

	TotalValue   decimal.Decimal `gorm:"type:decimal(14,4);not null;default:0" json:"total_value"`
	DepositValue decimal.Decimal `gorm:"type:decimal(14,4);not null;default:0" json:"deposit_value"`
	Balance      decimal.Decimal `gorm:"type:decimal(14,4);not null;default:0" json:"balance"`

	// estado completo do wizard (ContractTerms)
	Payload datatypes.JSON `gorm:"column:contract_payload" json:"contract_payload"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
