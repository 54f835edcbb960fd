package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement é o estado de pagamento de um contrato visto pelo módulo de recibos.
type Settlement struct {
	ContractID  uint            `json:"contract_id"`
	ClientName  string          `json:"client_name"`
	EventDate   time.Time       `json:"event_date"`
	Total       decimal.Decimal `json:"total"`
	Deposit     decimal.Decimal `json:"deposit"`
	DepositDate string          `json:"deposit_date"`
	Balance     decimal.Decimal `json:"balance"`

	// soma dos recibos já emitidos para o contrato
	Received decimal.Decimal `json:"received"`

	// saldo ainda sem recibo de quitação
	Outstanding decimal.Decimal `json:"outstanding"`

	// valor sugerido para o recibo de quitação (= saldo)
	SuggestedAmount decimal.Decimal `json:"suggested_amount"`
}
