// Package money concentra a apresentação de valores em reais.
// Toda a aritmética interna usa decimal.Decimal com precisão total;
// o arredondamento para centavos só acontece aqui.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shopspring/decimal"
)

// Round2 arredonda para centavos (apresentação).
func Round2(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// String devolve o valor com duas casas, ex.: "8800.00".
func String(v decimal.Decimal) string {
	return v.StringFixed(2)
}

// Format devolve o valor no padrão brasileiro, ex.: "R$ 8.800,00".
func Format(v decimal.Decimal) string {
	p := message.NewPrinter(language.BrazilianPortuguese)
	f, _ := Round2(v).Float64()
	return p.Sprintf("R$ %.2f", f)
}
