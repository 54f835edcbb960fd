package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/venue-scheduler/internal/logger"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
	"github.com/BruksfildServices01/venue-scheduler/internal/testutil"
)

func newRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	r := gin.New()
	RegisterRoutes(r, Dependencies{
		DB:                 db,
		Log:                logger.Discard(),
		Location:           time.UTC,
		CORSAllowedOrigins: []string{"*"},
	})
	return r, db
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

type errorBody struct {
	Code string `json:"error_code"`
}

func contractBody(guests int) map[string]any {
	return map[string]any{
		"client_name":  "Ana Souza",
		"client_phone": "(11) 98888-7777",
		"event_type":   "Casamento",
		"event_date":   "2026-09-12",
		"guest_count":  guests,
		"payment": map[string]any{
			"price_per_guest":  60,
			"base_guest_count": 150,
			"deposit_amount":   2000,
			"deposit_date":     "2026-03-01",
		},
	}
}

type saveResponse struct {
	ContractID uint  `json:"contract_id"`
	EventID    *uint `json:"event_id"`
	Quote      struct {
		Total   string `json:"total"`
		Balance string `json:"balance"`
	} `json:"quote"`
	Steps []struct {
		Step   string `json:"step"`
		Status string `json:"status"`
	} `json:"steps"`
}

func TestHealth(t *testing.T) {
	r, _ := newRouter(t)

	w := do(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestQuote(t *testing.T) {
	r, _ := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/contracts/quote", contractBody(180))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}

	q := decode[struct {
		BilledGuests int    `json:"billed_guests"`
		Total        string `json:"total"`
		Balance      string `json:"balance"`
	}](t, w)

	if q.BilledGuests != 180 || q.Total != "10800" || q.Balance != "8800" {
		t.Fatalf("quote = %+v", q)
	}
}

func TestContractLifecycle(t *testing.T) {
	r, db := newRouter(t)

	// --------------------------------------------------
	// primeira gravação
	// --------------------------------------------------
	w := do(t, r, http.MethodPost, "/api/contracts", contractBody(180))
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d body=%s", w.Code, w.Body.String())
	}
	created := decode[saveResponse](t, w)
	if created.ContractID == 0 || created.EventID == nil {
		t.Fatalf("created = %+v", created)
	}
	if created.Quote.Total != "10800" || created.Quote.Balance != "8800" {
		t.Fatalf("quote = %+v", created.Quote)
	}

	// --------------------------------------------------
	// regravação: mesmo evento, nenhum lançamento novo
	// --------------------------------------------------
	path := "/api/contracts/" + itoa(created.ContractID)
	w = do(t, r, http.MethodPut, path, contractBody(160))
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d body=%s", w.Code, w.Body.String())
	}
	updated := decode[saveResponse](t, w)
	if updated.EventID == nil || *updated.EventID != *created.EventID {
		t.Fatalf("event id changed: %v vs %v", updated.EventID, created.EventID)
	}
	if updated.Quote.Total != "9600" {
		t.Fatalf("total = %s", updated.Quote.Total)
	}

	var movements int64
	db.Model(&models.FinancialMovement{}).Count(&movements)
	if movements != 2 {
		t.Fatalf("movements = %d, want 2", movements)
	}

	// --------------------------------------------------
	// leitura do contrato e da agenda
	// --------------------------------------------------
	w = do(t, r, http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	view := decode[struct {
		Terms struct {
			GuestCount int `json:"guest_count"`
		} `json:"terms"`
	}](t, w)
	if view.Terms.GuestCount != 160 {
		t.Fatalf("guest_count = %d", view.Terms.GuestCount)
	}

	w = do(t, r, http.MethodGet, "/api/events?date=2026-09-12", nil)
	events := decode[struct {
		Total int `json:"total"`
		Data  []struct {
			Status string `json:"status"`
		} `json:"data"`
	}](t, w)
	if events.Total != 1 || events.Data[0].Status != "confirmed" {
		t.Fatalf("events = %+v", events)
	}

	// --------------------------------------------------
	// confirmação sugere a quitação
	// --------------------------------------------------
	eventPath := "/api/events/" + itoa(*created.EventID) + "/confirm"
	w = do(t, r, http.MethodPatch, eventPath, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("confirm status = %d body=%s", w.Code, w.Body.String())
	}
	confirm := decode[struct {
		Prompt *struct {
			Outstanding     string `json:"outstanding"`
			SuggestedNumber string `json:"suggested_number"`
		} `json:"settlement_prompt"`
	}](t, w)
	if confirm.Prompt == nil {
		t.Fatalf("expected settlement prompt")
	}
	if confirm.Prompt.Outstanding != "7600" || confirm.Prompt.SuggestedNumber != "001/2026" {
		t.Fatalf("prompt = %+v", *confirm.Prompt)
	}

	// --------------------------------------------------
	// recibo de quitação
	// --------------------------------------------------
	w = do(t, r, http.MethodPost, "/api/receipts", map[string]any{
		"contract_id":         created.ContractID,
		"date":                "2026-09-12",
		"is_final_settlement": true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("issue status = %d body=%s", w.Code, w.Body.String())
	}
	rc := decode[struct {
		ID     uint   `json:"id"`
		Number string `json:"number"`
		Value  string `json:"value"`
	}](t, w)
	if rc.Number != "001/2026" || rc.Value != "7600" {
		t.Fatalf("receipt = %+v", rc)
	}

	w = do(t, r, http.MethodGet, "/api/receipts/next-number?year=2026", nil)
	next := decode[struct {
		Number string `json:"number"`
	}](t, w)
	if next.Number != "002/2026" {
		t.Fatalf("next = %q", next.Number)
	}

	// sem saldo, a confirmação não sugere nada
	w = do(t, r, http.MethodPatch, eventPath, nil)
	confirm = decode[struct {
		Prompt *struct {
			Outstanding     string `json:"outstanding"`
			SuggestedNumber string `json:"suggested_number"`
		} `json:"settlement_prompt"`
	}](t, w)
	if confirm.Prompt != nil {
		t.Fatalf("unexpected prompt %+v", *confirm.Prompt)
	}

	w = do(t, r, http.MethodPost, "/api/contracts/"+itoa(created.ContractID)+"/checkout-link", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("checkout status = %d", w.Code)
	}

	// --------------------------------------------------
	// exclusão do recibo leva o lançamento junto
	// --------------------------------------------------
	w = do(t, r, http.MethodDelete, "/api/receipts/"+itoa(rc.ID), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d body=%s", w.Code, w.Body.String())
	}
	db.Model(&models.FinancialMovement{}).Count(&movements)
	if movements != 2 {
		t.Fatalf("movements after delete = %d, want 2", movements)
	}
}

func TestLedgerEndpoints(t *testing.T) {
	r, _ := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/ledger", map[string]any{
		"type":        "expense",
		"category":    "buffet",
		"description": "Compra de bebidas",
		"amount":      "350.90",
		"date":        "2026-05-10",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d body=%s", w.Code, w.Body.String())
	}
	mv := decode[struct {
		ID uint `json:"id"`
	}](t, w)

	w = do(t, r, http.MethodGet, "/api/ledger/summary?from=2026-05-01&to=2026-05-31", nil)
	summary := decode[struct {
		Expense string `json:"expense"`
		Net     string `json:"net"`
	}](t, w)
	if summary.Expense != "350.9" || summary.Net != "-350.9" {
		t.Fatalf("summary = %+v", summary)
	}

	w = do(t, r, http.MethodGet, "/api/ledger/export.csv?from=2026-05-01&to=2026-05-31", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv") {
		t.Fatalf("content type = %q", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "Compra de bebidas") {
		t.Fatalf("csv = %q", w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/api/ledger?from=2026-05-31&to=2026-05-01", nil)
	if w.Code != http.StatusBadRequest || decode[errorBody](t, w).Code != "invalid_period" {
		t.Fatalf("period status = %d body=%s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodDelete, "/api/ledger/"+itoa(mv.ID), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}
}

func TestErrorMapping(t *testing.T) {
	r, _ := newRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"bad id", http.MethodGet, "/api/contracts/abc", nil, http.StatusBadRequest, "invalid_id"},
		{"missing contract", http.MethodGet, "/api/contracts/999", nil, http.StatusNotFound, "contract_not_found"},
		{"missing event", http.MethodPatch, "/api/events/999/cancel", nil, http.StatusNotFound, "event_not_found"},
		{"missing name", http.MethodPost, "/api/contracts", map[string]any{"event_date": "2026-09-12"}, http.StatusBadRequest, "missing_client_name"},
		{"bad receipt number", http.MethodPost, "/api/receipts", map[string]any{"number": "1/26", "amount": 10, "client_name": "Ana"}, http.StatusBadRequest, "invalid_receipt_number"},
		{"bad year", http.MethodGet, "/api/receipts?year=abc", nil, http.StatusBadRequest, "invalid_date"},
		{"bad month", http.MethodGet, "/api/events/month?year=2026&month=13", nil, http.StatusBadRequest, "invalid_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, tt.method, tt.path, tt.body)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (body=%s)", w.Code, tt.status, w.Body.String())
			}
			if got := decode[errorBody](t, w).Code; got != tt.code {
				t.Fatalf("code = %q, want %q", got, tt.code)
			}
		})
	}
}

func TestAuditLogsList(t *testing.T) {
	r, db := newRouter(t)

	id := uint(7)
	db.Create(&models.AuditLog{Action: "contract_created", Entity: "contract", EntityID: &id})
	db.Create(&models.AuditLog{Action: "receipt_issued", Entity: "receipt"})

	w := do(t, r, http.MethodGet, "/api/audit-logs?entity=contract", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decode[struct {
		Total int64 `json:"total"`
		Logs  []struct {
			Action string `json:"action"`
		} `json:"logs"`
	}](t, w)
	if body.Total != 1 || body.Logs[0].Action != "contract_created" {
		t.Fatalf("body = %+v", body)
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
