package contract

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/infra/payments"
	"github.com/BruksfildServices01/venue-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/venue-scheduler/internal/logger"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

type stubCheckout struct {
	got payments.CheckoutRequest
	err error
}

func (s *stubCheckout) CreateCheckout(_ context.Context, req payments.CheckoutRequest) (*payments.CheckoutLink, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &payments.CheckoutLink{PreferenceID: "pref-1", URL: "https://mp.example/pref-1"}, nil
}

func TestGetSettlementAndCheckout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.save.Execute(ctx, SaveContractInput{IsNewContract: true, Terms: weddingTerms(180)})
	if err != nil {
		t.Fatal(err)
	}

	receipts := repository.NewReceiptGormRepository(f.db)
	settlement := NewGetSettlement(repository.NewContractGormRepository(f.db), receipts, logger.Discard())

	st, err := settlement.Execute(ctx, res.ContractID)
	if err != nil {
		t.Fatal(err)
	}
	if !st.Balance.Equal(decimal.NewFromInt(8800)) || !st.SuggestedAmount.Equal(st.Balance) || !st.Received.IsZero() {
		t.Fatalf("settlement = %+v", st)
	}

	stub := &stubCheckout{}
	link, err := NewCreateCheckoutLink(settlement, stub, nil).Execute(ctx, res.ContractID)
	if err != nil {
		t.Fatal(err)
	}
	if link.URL == "" || !stub.got.Amount.Equal(decimal.NewFromInt(8800)) {
		t.Fatalf("checkout = %+v, request = %+v", link, stub.got)
	}
	if stub.got.ExternalReference != "contract-1" {
		t.Fatalf("external reference = %q", stub.got.ExternalReference)
	}

	// quitação emitida → nada a cobrar
	cid := res.ContractID
	f.db.Create(&models.Receipt{ContractID: &cid, Number: "001/2026", Value: decimal.NewFromInt(8800), Date: time.Now(), Type: "final_settlement", ClientName: "Ana Souza"})

	st, _ = settlement.Execute(ctx, res.ContractID)
	if !st.Outstanding.IsZero() || !st.Received.Equal(decimal.NewFromInt(8800)) {
		t.Fatalf("settlement after receipt = %+v", st)
	}
	_, err = NewCreateCheckoutLink(settlement, stub, nil).Execute(ctx, res.ContractID)
	if !httperr.IsBusiness(err, "nothing_to_charge") {
		t.Fatalf("err = %v", err)
	}
}

func TestCheckoutNotConfigured(t *testing.T) {
	_, err := NewCreateCheckoutLink(nil, nil, nil).Execute(context.Background(), 1)
	if !httperr.IsBusiness(err, "payments_not_configured") {
		t.Fatalf("err = %v", err)
	}
}

func TestCheckoutProviderError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, _ := f.save.Execute(ctx, SaveContractInput{IsNewContract: true, Terms: weddingTerms(180)})
	settlement := NewGetSettlement(repository.NewContractGormRepository(f.db), repository.NewReceiptGormRepository(f.db), logger.Discard())

	boom := errors.New("mercadopago down")
	_, err := NewCreateCheckoutLink(settlement, &stubCheckout{err: boom}, nil).Execute(ctx, res.ContractID)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}

func TestGetContractDecodesTerms(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, _ := f.save.Execute(ctx, SaveContractInput{IsNewContract: true, Terms: weddingTerms(180)})

	view, err := NewGetContract(repository.NewContractGormRepository(f.db), logger.Discard()).Execute(ctx, res.ContractID)
	if err != nil {
		t.Fatal(err)
	}
	if view.Terms.GuestCount != 180 || !view.Terms.Payment.PricePerGuest.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("terms = %+v", view.Terms)
	}
	if view.Client == nil || view.Client.Name != "Ana Souza" {
		t.Fatalf("client not preloaded: %+v", view.Client)
	}

	if _, err := NewGetContract(repository.NewContractGormRepository(f.db), logger.Discard()).Execute(ctx, 999); !httperr.IsBusiness(err, "contract_not_found") {
		t.Fatalf("err = %v", err)
	}
}

func TestGetSettlementLogsUnreadablePayload(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.save.Execute(ctx, SaveContractInput{IsNewContract: true, Terms: weddingTerms(180)})
	if err != nil {
		t.Fatal(err)
	}
	if err := f.db.Model(&models.Contract{}).
		Where("id = ?", res.ContractID).
		Update("contract_payload", datatypes.JSON("{quebrado")).Error; err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	settlement := NewGetSettlement(
		repository.NewContractGormRepository(f.db),
		repository.NewReceiptGormRepository(f.db),
		logger.NewWriter(&buf, logger.LevelDebug),
	)

	st, err := settlement.Execute(ctx, res.ContractID)
	if err != nil {
		t.Fatal(err)
	}
	if !st.Balance.Equal(decimal.NewFromInt(8800)) || st.DepositDate != "" {
		t.Fatalf("settlement = %+v", st)
	}
	if !strings.Contains(buf.String(), "[WARN]") || !strings.Contains(buf.String(), "unreadable payload") {
		t.Fatalf("log = %q", buf.String())
	}
}
