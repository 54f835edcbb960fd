package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

type CategoryTotal struct {
	Type     string          `json:"type"`
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

type Summary struct {
	Revenue    decimal.Decimal `json:"revenue"`
	Expense    decimal.Decimal `json:"expense"`
	Net        decimal.Decimal `json:"net"`
	Categories []CategoryTotal `json:"categories"`
}

// Summarize agrega os lançamentos por tipo e categoria.
func Summarize(ms []models.FinancialMovement) Summary {
	s := Summary{
		Revenue:    decimal.Zero,
		Expense:    decimal.Zero,
		Categories: []CategoryTotal{},
	}

	index := map[[2]string]int{}
	for _, m := range ms {
		switch Type(m.Type) {
		case TypeRevenue:
			s.Revenue = s.Revenue.Add(m.Amount)
		case TypeExpense:
			s.Expense = s.Expense.Add(m.Amount)
		default:
			continue
		}

		k := [2]string{m.Type, m.Category}
		i, ok := index[k]
		if !ok {
			i = len(s.Categories)
			index[k] = i
			s.Categories = append(s.Categories, CategoryTotal{Type: m.Type, Category: m.Category, Total: decimal.Zero})
		}
		s.Categories[i].Total = s.Categories[i].Total.Add(m.Amount)
		s.Categories[i].Count++
	}

	s.Net = s.Revenue.Sub(s.Expense)

	sort.Slice(s.Categories, func(a, b int) bool {
		if s.Categories[a].Type != s.Categories[b].Type {
			return s.Categories[a].Type > s.Categories[b].Type // revenue antes de expense
		}
		return s.Categories[a].Category < s.Categories[b].Category
	})

	return s
}
