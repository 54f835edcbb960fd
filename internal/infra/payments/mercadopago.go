// Package payments cria links de pagamento no Mercado Pago.
package payments

import (
	"context"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
)

// CheckoutRequest descreve a cobrança de um saldo.
type CheckoutRequest struct {
	Title             string
	Amount            decimal.Decimal
	ExternalReference string
}

type CheckoutLink struct {
	PreferenceID string `json:"preference_id"`
	URL          string `json:"url"`
}

type MercadoPagoCheckout struct {
	client preference.Client
}

func NewMercadoPagoCheckout(accessToken string) (*MercadoPagoCheckout, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &MercadoPagoCheckout{client: preference.NewClient(cfg)}, nil
}

func (m *MercadoPagoCheckout) CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutLink, error) {
	price, _ := req.Amount.Round(2).Float64()

	resp, err := m.client.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:      req.Title,
				Quantity:   1,
				UnitPrice:  price,
				CurrencyID: "BRL",
			},
		},
		ExternalReference: req.ExternalReference,
	})
	if err != nil {
		return nil, fmt.Errorf("mercadopago preference: %w", err)
	}

	return &CheckoutLink{
		PreferenceID: resp.ID,
		URL:          resp.InitPoint,
	}, nil
}
