package ledger

import (
	"time"

	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/timezone"
)

// Period é um intervalo [From, To) de datas do livro-caixa.
type Period struct {
	From time.Time
	To   time.Time
}

// ParsePeriod lê from/to (YYYY-MM-DD, to inclusivo). Sem datas, usa o mês de now.
func ParsePeriod(from, to string, now time.Time, loc *time.Location) (Period, error) {
	now = now.In(loc)
	monthStart, monthEnd := timezone.MonthRange(now.Year(), int(now.Month()), loc)

	start, err := timezone.ParseDateOr(from, monthStart, loc)
	if err != nil {
		return Period{}, err
	}

	end := monthEnd
	if to != "" {
		last, err := timezone.ParseDate(to, loc)
		if err != nil {
			return Period{}, err
		}
		end = last.AddDate(0, 0, 1)
	}

	if !end.After(start) {
		return Period{}, httperr.ErrBusiness("invalid_period")
	}

	return Period{From: start, To: end}, nil
}
