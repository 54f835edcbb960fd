package contract

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/venue-scheduler/internal/audit"
	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/infra/payments"
)

type CheckoutProvider interface {
	CreateCheckout(ctx context.Context, req payments.CheckoutRequest) (*payments.CheckoutLink, error)
}

// CreateCheckoutLink gera um link de pagamento para o saldo em aberto.
type CreateCheckoutLink struct {
	settlement *GetSettlement
	provider   CheckoutProvider
	audit      *audit.Dispatcher
}

func NewCreateCheckoutLink(
	settlement *GetSettlement,
	provider CheckoutProvider,
	audit *audit.Dispatcher,
) *CreateCheckoutLink {
	return &CreateCheckoutLink{
		settlement: settlement,
		provider:   provider,
		audit:      audit,
	}
}

func (uc *CreateCheckoutLink) Execute(
	ctx context.Context,
	contractID uint,
) (*payments.CheckoutLink, error) {

	if uc.provider == nil {
		return nil, httperr.ErrBusiness("payments_not_configured")
	}

	st, err := uc.settlement.Execute(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if !st.Outstanding.IsPositive() {
		return nil, httperr.ErrBusiness("nothing_to_charge")
	}

	link, err := uc.provider.CreateCheckout(ctx, payments.CheckoutRequest{
		Title:             fmt.Sprintf("Saldo do evento - %s", st.ClientName),
		Amount:            st.Outstanding,
		ExternalReference: fmt.Sprintf("contract-%d", st.ContractID),
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "checkout_link_created",
		Entity:   "contract",
		EntityID: &st.ContractID,
		Metadata: map[string]any{"preference_id": link.PreferenceID},
	})

	return link, nil
}
