package contract

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/venue-scheduler/internal/domain/pricing"
	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/validators"
)

// ======================================================
// Payload (estado completo do wizard)
// ======================================================

type MenuSelection struct {
	Course string   `json:"course"`
	Items  []string `json:"items"`
}

type PaymentTerms struct {
	PricePerGuest  decimal.Decimal `json:"price_per_guest"`
	BaseGuestCount int             `json:"base_guest_count"`
	DepositAmount  decimal.Decimal `json:"deposit_amount"`
	DepositDate    string          `json:"deposit_date"`
	BalanceDueDate string          `json:"balance_due_date"`
	PaymentMethod  string          `json:"payment_method"`
}

// Terms é gravado como está em contract_payload.
type Terms struct {
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email"`
	ClientNotes string `json:"client_notes"`

	EventType  string `json:"event_type"`
	EventDate  string `json:"event_date"` // YYYY-MM-DD
	StartTime  string `json:"start_time"` // HH:MM
	EndTime    string `json:"end_time"`
	GuestCount int    `json:"guest_count"`

	Inclusions []string        `json:"inclusions"`
	Menu       []MenuSelection `json:"menu"`

	Payment PaymentTerms `json:"payment"`

	Notes string `json:"notes"`
}

// Validate roda antes de qualquer escrita.
func (t Terms) Validate() error {
	if validators.IsBlank(t.ClientName) {
		return httperr.ErrBusiness("missing_client_name")
	}
	if validators.IsBlank(t.EventDate) {
		return httperr.ErrBusiness("missing_event_date")
	}
	if !validators.IsEmailValid(t.ClientEmail) {
		return httperr.ErrBusiness("invalid_email")
	}
	if t.GuestCount < 0 || t.Payment.BaseGuestCount < 0 ||
		t.Payment.PricePerGuest.IsNegative() || t.Payment.DepositAmount.IsNegative() {
		return httperr.ErrBusiness("negative_value")
	}
	return nil
}

func (t Terms) Quote() pricing.Quote {
	return pricing.NewQuote(
		t.GuestCount,
		t.Payment.PricePerGuest,
		t.Payment.BaseGuestCount,
		t.Payment.DepositAmount,
	)
}
