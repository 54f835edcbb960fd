// Package pricing calcula o valor de um contrato a partir do número de
// convidados e do pacote contratado.
package pricing

import "github.com/shopspring/decimal"

// BilledGuests devolve o maior entre convidados reais e pacote base:
// falta de convidados não é reembolsada, excedente é cobrado pelo mesmo valor.
func BilledGuests(guestCount, baseGuestCount int) int {
	if guestCount > baseGuestCount {
		return guestCount
	}
	return baseGuestCount
}

// ComputeTotal = max(guestCount, baseGuestCount) * pricePerGuest.
func ComputeTotal(guestCount int, pricePerGuest decimal.Decimal, baseGuestCount int) decimal.Decimal {
	return pricePerGuest.Mul(decimal.NewFromInt(int64(BilledGuests(guestCount, baseGuestCount))))
}

// ComputeBalance = total - deposit. O valor zero de decimal.Decimal
// representa sinal não informado.
func ComputeBalance(total, deposit decimal.Decimal) decimal.Decimal {
	return total.Sub(deposit)
}

type Quote struct {
	BilledGuests int             `json:"billed_guests"`
	Total        decimal.Decimal `json:"total"`
	Deposit      decimal.Decimal `json:"deposit"`
	Balance      decimal.Decimal `json:"balance"`
}

func NewQuote(guestCount int, pricePerGuest decimal.Decimal, baseGuestCount int, deposit decimal.Decimal) Quote {
	total := ComputeTotal(guestCount, pricePerGuest, baseGuestCount)
	return Quote{
		BilledGuests: BilledGuests(guestCount, baseGuestCount),
		Total:        total,
		Deposit:      deposit,
		Balance:      ComputeBalance(total, deposit),
	}
}
