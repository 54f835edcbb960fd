package receipt

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
	"github.com/BruksfildServices01/venue-scheduler/internal/testutil"
)

type fixture struct {
	db     *gorm.DB
	next   *NextReceiptNumber
	issue  *IssueReceipt
	delete *DeleteReceipt
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testutil.NewDB(t)

	receipts := repository.NewReceiptGormRepository(db)
	seq := repository.NewReceiptSequenceGorm(db)

	issue := NewIssueReceipt(receipts, seq, repository.NewContractGormRepository(db), nil, time.UTC)
	issue.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

	return fixture{
		db:     db,
		next:   NewNextReceiptNumber(seq, receipts),
		issue:  issue,
		delete: NewDeleteReceipt(receipts, repository.NewLedgerGormRepository(db), nil),
	}
}

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func newContract(t *testing.T, db *gorm.DB) *models.Contract {
	t.Helper()
	ct := &models.Contract{
		ClientNameSnapshot: "Ana Souza",
		EventDate:          time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		TotalValue:         decimal.NewFromInt(10800),
		DepositValue:       decimal.NewFromInt(2000),
		Balance:            decimal.NewFromInt(8800),
	}
	if err := db.Create(ct).Error; err != nil {
		t.Fatal(err)
	}
	return ct
}

func TestNextReceiptNumber(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.next.Execute(ctx, 2026)
	if err != nil || got != "001/2026" {
		t.Fatalf("next = %q, %v; want 001/2026", got, err)
	}

	for range 3 {
		if _, err := f.issue.Execute(ctx, IssueReceiptInput{ClientName: "Bruno", Amount: amount(100)}); err != nil {
			t.Fatal(err)
		}
	}

	got, _ = f.next.Execute(ctx, 2026)
	if got != "004/2026" {
		t.Fatalf("next = %q, want 004/2026", got)
	}

	// pré-visualizar não consome
	again, _ := f.next.Execute(ctx, 2026)
	if again != got {
		t.Fatalf("peek consumed a number: %q then %q", got, again)
	}
}

func TestIssueFinalSettlementReceipt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ct := newContract(t, f.db)

	dep, err := f.issue.Execute(ctx, IssueReceiptInput{ContractID: &ct.ID, Amount: amount(2000), Method: "pix"})
	if err != nil {
		t.Fatal(err)
	}
	if dep.Number != "001/2026" || dep.Type != "partial" {
		t.Fatalf("deposit receipt = %+v", dep)
	}

	final, err := f.issue.Execute(ctx, IssueReceiptInput{ContractID: &ct.ID, IsFinalSettlement: true, Date: "2026-09-10"})
	if err != nil {
		t.Fatal(err)
	}
	if final.Number != "002/2026" || !final.Value.Equal(decimal.NewFromInt(8800)) || final.Type != "final_settlement" {
		t.Fatalf("final receipt = %+v", final)
	}

	var mv models.FinancialMovement
	if err := f.db.Where("receipt_id = ?", final.ID).First(&mv).Error; err != nil {
		t.Fatal(err)
	}
	if mv.Category != "final payment" || mv.Description != "Recibo 002/2026 - Ana Souza" || !mv.Amount.Equal(decimal.NewFromInt(8800)) {
		t.Fatalf("movement = %+v", mv)
	}
	if mv.SourceContractID == nil || *mv.SourceContractID != ct.ID {
		t.Fatalf("movement contract = %v", mv.SourceContractID)
	}
	if !mv.Date.Equal(time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("movement date = %v", mv.Date)
	}
}

func TestIssueReceiptManualNumber(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rc, err := f.issue.Execute(ctx, IssueReceiptInput{Number: "010/2026", ClientName: "Ana", Amount: amount(50)})
	if err != nil {
		t.Fatal(err)
	}
	if rc.Number != "010/2026" {
		t.Fatalf("number = %s", rc.Number)
	}

	_, err = f.issue.Execute(ctx, IssueReceiptInput{Number: "010/2026", ClientName: "Ana", Amount: amount(50)})
	if !httperr.IsBusiness(err, "receipt_number_taken") {
		t.Fatalf("err = %v", err)
	}

	_, err = f.issue.Execute(ctx, IssueReceiptInput{Number: "10-2026", ClientName: "Ana", Amount: amount(50)})
	if !httperr.IsBusiness(err, "invalid_receipt_number") {
		t.Fatalf("err = %v", err)
	}

	next, _ := f.issue.Execute(ctx, IssueReceiptInput{ClientName: "Ana", Amount: amount(50)})
	if next.Number != "011/2026" {
		t.Fatalf("auto number after manual = %s, want 011/2026", next.Number)
	}
}

func TestIssueReceiptSkipsLegacyNumbers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// recibo antigo gravado fora do contador
	legacy := models.Receipt{Number: "002/2026", Value: decimal.NewFromInt(1), Date: time.Now(), Type: "partial", ClientName: "X"}
	f.db.Create(&legacy)

	preview, err := f.next.Execute(ctx, 2026)
	if err != nil {
		t.Fatal(err)
	}
	if preview != "003/2026" {
		t.Fatalf("preview = %s, want 003/2026", preview)
	}

	rc, err := f.issue.Execute(ctx, IssueReceiptInput{ClientName: "Ana", Amount: amount(50)})
	if err != nil {
		t.Fatal(err)
	}
	if rc.Number != preview {
		t.Fatalf("number = %s, want 003/2026", rc.Number)
	}
}

func TestIssueReceiptValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   IssueReceiptInput
		code string
	}{
		{"no client", IssueReceiptInput{Amount: amount(10)}, "missing_client_name"},
		{"no amount", IssueReceiptInput{ClientName: "Ana"}, "invalid_amount"},
		{"settlement without contract", IssueReceiptInput{ClientName: "Ana", IsFinalSettlement: true}, "invalid_amount"},
		{"negative", IssueReceiptInput{ClientName: "Ana", Amount: amount(-5)}, "invalid_amount"},
		{"bad date", IssueReceiptInput{ClientName: "Ana", Amount: amount(5), Date: "10/03/2026"}, "invalid_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.issue.Execute(ctx, tt.in)
			if !httperr.IsBusiness(err, tt.code) {
				t.Fatalf("err = %v, want %s", err, tt.code)
			}
		})
	}

	missing := uint(404)
	_, err := f.issue.Execute(ctx, IssueReceiptInput{ContractID: &missing, Amount: amount(5)})
	if !httperr.IsBusiness(err, "contract_not_found") {
		t.Fatalf("err = %v", err)
	}
}

func TestDeleteReceiptRemovesOnlyItsMovement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rc, err := f.issue.Execute(ctx, IssueReceiptInput{ClientName: "Ana Souza", Amount: amount(2000)})
	if err != nil {
		t.Fatal(err)
	}
	other, _ := f.issue.Execute(ctx, IssueReceiptInput{ClientName: "Bruno", Amount: amount(300)})

	unrelated := []models.FinancialMovement{
		{Type: "expense", Category: "buffet", Description: "Fornecedor", Amount: decimal.NewFromInt(900), Date: time.Now()},
		{Type: "revenue", Category: "deposit", Description: "Sinal - Ana Souza", Amount: decimal.NewFromInt(2000), Date: time.Now()},
	}
	f.db.Create(&unrelated)

	if err := f.delete.Execute(ctx, rc.ID); err != nil {
		t.Fatal(err)
	}

	var left []models.FinancialMovement
	f.db.Order("id").Find(&left)
	if len(left) != 3 {
		t.Fatalf("movements left = %d, want 3", len(left))
	}
	for _, m := range left {
		if m.ReceiptID != nil && *m.ReceiptID == rc.ID {
			t.Fatalf("receipt movement survived: %+v", m)
		}
	}
	if left[0].ReceiptID == nil || *left[0].ReceiptID != other.ID {
		t.Fatalf("other receipt movement removed: %+v", left)
	}

	var n int64
	f.db.Model(&models.Receipt{}).Where("id = ?", rc.ID).Count(&n)
	if n != 0 {
		t.Fatal("receipt not deleted")
	}

	if err := f.delete.Execute(ctx, rc.ID); !httperr.IsBusiness(err, "receipt_not_found") {
		t.Fatalf("second delete err = %v", err)
	}
}

func TestDeleteReceiptLegacyDescriptionFallback(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	rc := models.Receipt{Number: "001/2025", Value: decimal.NewFromInt(500), Date: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), Type: "partial", ClientName: "Ana Souza"}
	f.db.Create(&rc)

	// lançamento antigo, sem receipt_id
	f.db.Create(&models.FinancialMovement{Type: "revenue", Category: "deposit", Description: "Recibo 001/2025 - Ana Souza", Amount: decimal.NewFromInt(500), Date: rc.Date})
	f.db.Create(&models.FinancialMovement{Type: "revenue", Category: "deposit", Description: "Recibo 001/2025 - Bruno", Amount: decimal.NewFromInt(500), Date: rc.Date})

	if err := f.delete.Execute(ctx, rc.ID); err != nil {
		t.Fatal(err)
	}

	var left []models.FinancialMovement
	f.db.Find(&left)
	if len(left) != 1 || left[0].Description != "Recibo 001/2025 - Bruno" {
		t.Fatalf("left = %+v", left)
	}
}
