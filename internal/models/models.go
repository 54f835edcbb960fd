package models

// All lista os modelos migrados na inicialização.
func All() []any {
	return []any{
		&Client{},
		&Contract{},
		&CalendarEvent{},
		&FinancialMovement{},
		&Receipt{},
		&ReceiptSequence{},
		&AuditLog{},
	}
}
