package calendar

import "github.com/BruksfildServices01/venue-scheduler/internal/httperr"

// ===============================
// Event Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ===============================
// Validations
// ===============================

// CanConfirm: confirmar de novo um evento confirmado é permitido (idempotente)
func CanConfirm(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel define se um evento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se um evento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus de eventos criados manualmente na agenda.
// Eventos projetados de contrato nascem confirmados.
func InitialStatus() Status {
	return StatusPending
}
