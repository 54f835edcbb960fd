package models

import "time"

// Cliente do salão: lead, negociação ou evento fechado.
// A identidade real é (nome normalizado, telefone só com dígitos), nunca o ID.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:150;not null;index" json:"name"`
	Phone string `gorm:"size:30;index" json:"phone"`
	Email string `gorm:"size:150" json:"email"`
	Notes string `gorm:"type:text" json:"notes"`

	Status string `gorm:"size:20;default:'new'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
