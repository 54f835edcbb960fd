package contract

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/BruksfildServices01/venue-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/venue-scheduler/internal/domain/ledger"
	"github.com/BruksfildServices01/venue-scheduler/internal/domain/pricing"
	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
	"github.com/BruksfildServices01/venue-scheduler/internal/money"
	"github.com/BruksfildServices01/venue-scheduler/internal/timezone"
)

const (
	DefaultStartTime = "19:00"
	DefaultDuration  = 5 * time.Hour
)

// --------------------------------------------------
// Categoria
// --------------------------------------------------

var categoryKeywords = []struct {
	category calendar.Category
	words    []string
}{
	{calendar.CategoryWedding, []string{"casamento", "wedding", "noivado", "bodas"}},
	{calendar.CategoryBirthday, []string{"aniversário", "aniversario", "birthday", "infantil", "kids", "15 anos", "debutante"}},
	{calendar.CategoryCorporate, []string{"corporativo", "corporate", "empresa", "confraternização"}},
}

// CategoryFor mapeia o tipo de evento (texto livre) para a categoria da agenda.
func CategoryFor(eventType string) calendar.Category {
	lowered := cases.Lower(language.BrazilianPortuguese).String(eventType)
	for _, k := range categoryKeywords {
		for _, w := range k.words {
			if strings.Contains(lowered, w) {
				return k.category
			}
		}
	}
	return calendar.CategoryOther
}

// --------------------------------------------------
// Evento
// --------------------------------------------------

func EventTitle(eventType, clientName string) string {
	eventType = strings.TrimSpace(eventType)
	if eventType == "" {
		eventType = "Evento"
	}
	return eventType + " - " + strings.TrimSpace(clientName)
}

// EventDay interpreta a data do evento no fuso do salão.
func EventDay(t Terms, loc *time.Location) (time.Time, error) {
	d, err := timezone.ParseDate(strings.TrimSpace(t.EventDate), loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_event_date")
	}
	return d, nil
}

// EventWindow devolve início e fim do evento. Sem horário de término,
// o evento dura DefaultDuration; término antes do início vira o dia seguinte.
func EventWindow(t Terms, loc *time.Location) (time.Time, time.Time, error) {
	day, err := EventDay(t, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	startHM := strings.TrimSpace(t.StartTime)
	if startHM == "" {
		startHM = DefaultStartTime
	}
	start, err := timezone.At(day, startHM, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	endHM := strings.TrimSpace(t.EndTime)
	if endHM == "" {
		return start, start.Add(DefaultDuration), nil
	}
	end, err := timezone.At(day, endHM, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}

	return start, end, nil
}

func eventDescription(t Terms, q pricing.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Convidados: %d", t.GuestCount)
	if p := strings.TrimSpace(t.ClientPhone); p != "" {
		fmt.Fprintf(&b, "\nTelefone: %s", p)
	}
	fmt.Fprintf(&b, "\nTotal: %s | Sinal: %s | Saldo: %s",
		money.Format(q.Total), money.Format(q.Deposit), money.Format(q.Balance))
	if n := strings.TrimSpace(t.Notes); n != "" {
		b.WriteString("\n")
		b.WriteString(n)
	}
	return b.String()
}

// DeriveEvent monta o evento confirmado correspondente ao contrato.
func DeriveEvent(
	contractID uint,
	clientID *uint,
	t Terms,
	loc *time.Location,
) (*models.CalendarEvent, error) {

	start, end, err := EventWindow(t, loc)
	if err != nil {
		return nil, err
	}

	id := contractID
	return &models.CalendarEvent{
		Title:            EventTitle(t.EventType, t.ClientName),
		StartAt:          start,
		EndAt:            end,
		Category:         string(CategoryFor(t.EventType)),
		Status:           string(calendar.StatusConfirmed),
		ClientID:         clientID,
		Description:      eventDescription(t, t.Quote()),
		SourceContractID: &id,
	}, nil
}

// ApplyTo copia os campos derivados para um evento já existente.
func ApplyTo(dst, derived *models.CalendarEvent) {
	dst.Title = derived.Title
	dst.StartAt = derived.StartAt
	dst.EndAt = derived.EndAt
	dst.Category = derived.Category
	dst.Status = derived.Status
	dst.ClientID = derived.ClientID
	dst.Description = derived.Description
	dst.SourceContractID = derived.SourceContractID
	dst.CancelledAt = nil
	dst.CompletedAt = nil
}

// --------------------------------------------------
// Livro-caixa
// --------------------------------------------------

// PaymentDates resolve as datas do sinal (padrão: hoje) e do saldo
// (padrão: dia do evento).
func PaymentDates(t Terms, today time.Time, loc *time.Location) (time.Time, time.Time, error) {
	day, err := EventDay(t, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	deposit, err := timezone.ParseDateOr(
		strings.TrimSpace(t.Payment.DepositDate),
		timezone.StartOfDay(today, loc),
		loc,
	)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_deposit_date")
	}

	balanceDue, err := timezone.ParseDateOr(strings.TrimSpace(t.Payment.BalanceDueDate), day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_balance_due_date")
	}

	return deposit, balanceDue, nil
}

// DeriveLedgerEntries gera os lançamentos do primeiro salvamento:
// sinal (se houver) e saldo (se houver).
func DeriveLedgerEntries(
	contractID uint,
	t Terms,
	today time.Time,
	loc *time.Location,
) ([]models.FinancialMovement, error) {

	q := t.Quote()
	depositDate, balanceDue, err := PaymentDates(t, today, loc)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(t.ClientName)
	id := contractID
	var out []models.FinancialMovement

	if q.Deposit.IsPositive() {
		out = append(out, models.FinancialMovement{
			Type:             string(ledger.TypeRevenue),
			Category:         ledger.CategoryDeposit,
			Description:      "Sinal - " + name,
			Amount:           q.Deposit,
			Date:             depositDate,
			SourceContractID: &id,
		})
	}

	if q.Balance.IsPositive() {
		out = append(out, models.FinancialMovement{
			Type:             string(ledger.TypeRevenue),
			Category:         ledger.CategoryFinalPayment,
			Description:      "Saldo - " + name,
			Amount:           q.Balance,
			Date:             balanceDue,
			SourceContractID: &id,
		})
	}

	return out, nil
}
