package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Receipt struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ContractID *uint     `gorm:"index" json:"contract_id"`
	Contract   *Contract `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Number     string          `gorm:"size:20;not null;uniqueIndex" json:"number"` // NNN/YYYY
	Value      decimal.Decimal `gorm:"type:decimal(14,4);not null" json:"value"`
	Date       time.Time       `gorm:"not null" json:"date"`
	Type       string          `gorm:"size:20;not null" json:"type"`
	Method     string          `gorm:"size:30" json:"method"`
	ClientName string          `gorm:"size:150;not null" json:"client_name"`

	CreatedAt time.Time `json:"created_at"`
}

// Contador atômico por ano para numeração de recibos.
type ReceiptSequence struct {
	Year      int       `gorm:"primaryKey;autoIncrement:false" json:"year"`
	LastValue int       `gorm:"not null;default:0" json:"last_value"`
	UpdatedAt time.Time `json:"updated_at"`
}
