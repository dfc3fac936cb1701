package normalizer

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/use-agent/holdcalc/models"
)

func TestNumberWords(t *testing.T) {
	tests := []struct {
		digits string
		want   []string
	}{
		// Standard cardinals; connectors are dropped from the countable list.
		{"0", []string{"zero"}},
		{"7", []string{"seven"}},
		{"50", []string{"fifty"}},
		{"150", []string{"one", "fifty"}},
		{"2500", []string{"two", "five"}},

		// Teen-hundreds convention: 1139 reads "eleven hundred and
		// thirty-nine", counting eleven/thirty/nine.
		{"1100", []string{"eleven"}},
		{"1139", []string{"eleven", "thirty", "nine"}},
		{"1999", []string{"nineteen", "ninety", "nine"}},

		// Calendar-year reading for modern years.
		{"2010", []string{"twenty", "ten"}},
		{"2024", []string{"twenty", "twenty", "four"}},
		{"2099", []string{"twenty", "ninety", "nine"}},

		// Just outside the year range: plain cardinal.
		{"2009", []string{"two", "nine"}},

		// Leading zeros carry no spoken weight.
		{"007", []string{"seven"}},
	}

	for _, tt := range tests {
		got, err := NumberWords(tt.digits)
		if err != nil {
			t.Errorf("NumberWords(%q) unexpected error: %v", tt.digits, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("NumberWords(%q) = %v, want %v", tt.digits, got, tt.want)
		}
	}
}

func TestNumberWords_LowerCased(t *testing.T) {
	words, err := NumberWords("1139")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, w := range words {
		if w != strings.ToLower(w) {
			t.Errorf("countable word %q is not lower-cased", w)
		}
	}
}

func TestSpokenNumber_TeenHundreds(t *testing.T) {
	spoken, err := SpokenNumber("1100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(spoken, "hundred") {
		t.Errorf("SpokenNumber(1100) = %q, want a teen-hundreds reading", spoken)
	}
	if strings.Contains(spoken, "thousand") {
		t.Errorf("SpokenNumber(1100) = %q, must not use the cardinal thousand reading", spoken)
	}
}

func TestSpokenNumber_OutOfRange(t *testing.T) {
	overlong := strings.Repeat("9", 40)

	for _, digits := range []string{overlong, "999999999999999"} {
		_, err := SpokenNumber(digits)
		if err == nil {
			t.Errorf("SpokenNumber(%q) = nil error, want out-of-range failure", digits)
			continue
		}
		var calcErr *models.CalcError
		if !errors.As(err, &calcErr) || calcErr.Code != models.ErrCodeNumberConversion {
			t.Errorf("SpokenNumber(%q) error = %v, want CalcError with code %s",
				digits, err, models.ErrCodeNumberConversion)
		}
	}
}
