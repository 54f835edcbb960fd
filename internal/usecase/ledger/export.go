package ledger

import (
	"context"
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/ledger"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
	"github.com/BruksfildServices01/venue-scheduler/internal/money"
	"github.com/BruksfildServices01/venue-scheduler/internal/timezone"
)

// ExportCSV escreve os lançamentos do período em CSV.
type ExportCSV struct {
	repo domain.Repository
}

func NewExportCSV(repo domain.Repository) *ExportCSV {
	return &ExportCSV{repo: repo}
}

func (uc *ExportCSV) Execute(ctx context.Context, p Period, w io.Writer) error {
	ms, err := uc.repo.ListMovements(ctx, p.From, p.To)
	if err != nil {
		return err
	}

	df := movementsFrame(ms)
	if df.Err != nil {
		return fmt.Errorf("build ledger frame: %w", df.Err)
	}

	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("write ledger csv: %w", err)
	}
	return nil
}

func movementsFrame(ms []models.FinancialMovement) dataframe.DataFrame {
	n := len(ms)
	var (
		dates        = make([]string, n)
		types        = make([]string, n)
		categories   = make([]string, n)
		descriptions = make([]string, n)
		amounts      = make([]string, n)
		receipts     = make([]string, n)
		contracts    = make([]string, n)
	)

	for i, m := range ms {
		dates[i] = m.Date.Format(timezone.DateLayout)
		types[i] = m.Type
		categories[i] = m.Category
		descriptions[i] = m.Description
		amounts[i] = money.String(m.Amount)
		if m.ReceiptID != nil {
			receipts[i] = fmt.Sprint(*m.ReceiptID)
		}
		if m.SourceContractID != nil {
			contracts[i] = fmt.Sprint(*m.SourceContractID)
		}
	}

	return dataframe.New(
		series.New(dates, series.String, "date"),
		series.New(types, series.String, "type"),
		series.New(categories, series.String, "category"),
		series.New(descriptions, series.String, "description"),
		series.New(amounts, series.String, "amount"),
		series.New(receipts, series.String, "receipt_id"),
		series.New(contracts, series.String, "contract_id"),
	)
}
