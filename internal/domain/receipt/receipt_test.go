package receipt

import (
	"testing"

	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		seq, year int
		want      string
	}{
		{1, 2026, "001/2026"},
		{4, 2026, "004/2026"},
		{1234, 2027, "1234/2027"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.seq, tt.year); got != tt.want {
			t.Errorf("FormatNumber(%d, %d) = %q, want %q", tt.seq, tt.year, got, tt.want)
		}
	}
}

func TestParseNumber(t *testing.T) {
	seq, year, err := ParseNumber("012/2026")
	if err != nil || seq != 12 || year != 2026 {
		t.Fatalf("ParseNumber = %d, %d, %v", seq, year, err)
	}

	for _, bad := range []string{"", "12/2026", "000/2026", "abc/2026", "001-2026", "001/26"} {
		if _, _, err := ParseNumber(bad); !httperr.IsBusiness(err, "invalid_receipt_number") {
			t.Errorf("ParseNumber(%q) err = %v", bad, err)
		}
	}
}

func TestDescription(t *testing.T) {
	if got := Description("002/2026", "Ana Souza"); got != "Recibo 002/2026 - Ana Souza" {
		t.Fatalf("Description = %q", got)
	}
}
