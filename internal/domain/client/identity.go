package client

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/BruksfildServices01/venue-scheduler/internal/models"
	"github.com/BruksfildServices01/venue-scheduler/internal/validators"
)

// ===============================
// Identity key
// ===============================

// NormalizeName devolve o nome em minúsculas e sem espaços nas pontas.
func NormalizeName(name string) string {
	return cases.Lower(language.BrazilianPortuguese).String(strings.TrimSpace(name))
}

// Key identifica a pessoa real: nome normalizado + "_" + dígitos do telefone.
func Key(name, phone string) string {
	return NormalizeName(name) + "_" + validators.DigitsOnly(phone)
}

func KeyOf(c *models.Client) string {
	return Key(c.Name, c.Phone)
}

// Details são os campos opcionais que acompanham uma resolução.
type Details struct {
	Email  string
	Notes  string
	Status Status
}

// PickMatch filtra os candidatos vindos do banco pela chave exata.
// Com duplicatas antigas, o registro mais antigo vence.
func PickMatch(candidates []models.Client, key string) *models.Client {
	var best *models.Client
	for i := range candidates {
		c := &candidates[i]
		if KeyOf(c) != key {
			continue
		}
		if best == nil || c.CreatedAt.Before(best.CreatedAt) ||
			(c.CreatedAt.Equal(best.CreatedAt) && c.ID < best.ID) {
			best = c
		}
	}
	return best
}

// Merge aplica os campos informados sem nunca sobrescrever com vazio.
// Retorna true quando algo mudou.
func Merge(c *models.Client, name, phone string, d Details) bool {
	changed := false

	set := func(dst *string, v string) {
		v = strings.TrimSpace(v)
		if v != "" && v != *dst {
			*dst = v
			changed = true
		}
	}

	set(&c.Name, name)
	set(&c.Phone, phone)
	set(&c.Email, d.Email)
	set(&c.Notes, d.Notes)
	if d.Status != "" && d.Status.Valid() {
		set(&c.Status, string(d.Status))
	}

	return changed
}

// ===============================
// Display grouping
// ===============================

// Summary é uma linha da listagem de clientes (somente leitura).
type Summary struct {
	Key           string          `json:"key"`
	ClientIDs     []uint          `json:"client_ids"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Status        string          `json:"status"`
	ContractCount int             `json:"contract_count"`
	TotalValue    decimal.Decimal `json:"total_value"`
	LastEventDate *time.Time      `json:"last_event_date"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// GroupForDisplay junta linhas com a mesma chave (dados legados duplicados),
// somando valores e mantendo a data mais recente. Não grava nada.
func GroupForDisplay(rows []Summary) []Summary {
	index := make(map[string]int, len(rows))
	out := make([]Summary, 0, len(rows))

	for _, r := range rows {
		if r.Key == "" {
			r.Key = Key(r.Name, r.Phone)
		}

		i, ok := index[r.Key]
		if !ok {
			r.ClientIDs = append([]uint(nil), r.ClientIDs...)
			index[r.Key] = len(out)
			out = append(out, r)
			continue
		}

		g := &out[i]
		g.ClientIDs = append(g.ClientIDs, r.ClientIDs...)
		g.ContractCount += r.ContractCount
		g.TotalValue = g.TotalValue.Add(r.TotalValue)

		if r.LastEventDate != nil && (g.LastEventDate == nil || r.LastEventDate.After(*g.LastEventDate)) {
			t := *r.LastEventDate
			g.LastEventDate = &t
		}
		if r.UpdatedAt.After(g.UpdatedAt) {
			g.UpdatedAt = r.UpdatedAt
			// a linha mais recente dita os dados de contato
			if r.Email != "" {
				g.Email = r.Email
			}
			if r.Status != "" {
				g.Status = r.Status
			}
			g.Phone = r.Phone
			g.Name = r.Name
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].UpdatedAt.After(out[b].UpdatedAt)
	})

	return out
}
