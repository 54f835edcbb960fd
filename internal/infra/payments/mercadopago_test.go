package payments

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
)

// fakeRequester responde como a API de preferências.
type fakeRequester struct {
	body map[string]any
	path string
}

func (f *fakeRequester) Do(req *http.Request) (*http.Response, error) {
	f.path = req.URL.Path
	raw, _ := io.ReadAll(req.Body)
	_ = json.Unmarshal(raw, &f.body)

	return &http.Response{
		StatusCode: http.StatusCreated,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body: io.NopCloser(strings.NewReader(
			`{"id":"pref-123","init_point":"https://mp.example/checkout/pref-123"}`,
		)),
		Request: req,
	}, nil
}

func TestCreateCheckout(t *testing.T) {
	fake := &fakeRequester{}
	cfg, err := config.New("TEST-token", config.WithHTTPClient(fake))
	if err != nil {
		t.Fatal(err)
	}
	mp := &MercadoPagoCheckout{client: preference.NewClient(cfg)}

	link, err := mp.CreateCheckout(context.Background(), CheckoutRequest{
		Title:             "Saldo do evento - Ana Souza",
		Amount:            decimal.RequireFromString("7600.005"),
		ExternalReference: "contract-42",
	})
	if err != nil {
		t.Fatalf("create checkout: %v", err)
	}

	if link.PreferenceID != "pref-123" || link.URL != "https://mp.example/checkout/pref-123" {
		t.Fatalf("link = %+v", link)
	}
	if !strings.HasSuffix(fake.path, "/checkout/preferences") {
		t.Fatalf("path = %q", fake.path)
	}
	if fake.body["external_reference"] != "contract-42" {
		t.Fatalf("external_reference = %v", fake.body["external_reference"])
	}

	items, _ := fake.body["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("items = %v", fake.body["items"])
	}
	item := items[0].(map[string]any)
	if item["unit_price"] != 7600.01 || item["currency_id"] != "BRL" {
		t.Fatalf("item = %v", item)
	}
}
