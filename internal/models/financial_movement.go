package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lançamento do livro-caixa. Nunca é alterado pelo motor de sincronização,
// apenas inserido ou removido.
type FinancialMovement struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Type        string          `gorm:"size:10;not null;index" json:"type"`
	Category    string          `gorm:"size:50;not null;index" json:"category"`
	Description string          `gorm:"size:255;not null;index" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,4);not null" json:"amount"`
	Date        time.Time       `gorm:"not null;index" json:"date"`

	SourceContractID *uint `gorm:"index" json:"source_contract_id"`
	ReceiptID        *uint `gorm:"index" json:"receipt_id"`

	CreatedAt time.Time `json:"created_at"`
}
