package models

import "time"

type CalendarEvent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title   string    `gorm:"size:200;not null;index:idx_calendar_events_title_start" json:"title"`
	StartAt time.Time `gorm:"not null;index:idx_calendar_events_title_start" json:"start_at"`
	EndAt   time.Time `gorm:"not null" json:"end_at"`

	Category string `gorm:"size:20;not null;default:'other';check:chk_calendar_events_category,category IN ('wedding','birthday','corporate','other')" json:"category"`
	Status   string `gorm:"size:20;not null;default:'pending'" json:"status"`

	ClientID *uint   `gorm:"index" json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	Description string `gorm:"type:text" json:"description"`

	// chave de idempotência: contrato que originou o evento
	SourceContractID *uint `gorm:"index" json:"source_contract_id"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
