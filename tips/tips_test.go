package tips

import (
	"testing"
)

func kinds(mainText, additionalText string) map[string]bool {
	out := make(map[string]bool)
	for _, tip := range Analyze(mainText, additionalText) {
		out[tip.Kind] = true
	}
	return out
}

func TestAnalyze_PhraseSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantKind string
	}{
		{"terms and conditions", "Full Terms and Conditions apply", "terms_and_conditions"},
		{"per annum", "interest of 5% per annum", "per_annum"},
		{"republic of ireland", "Not valid in the Republic of Ireland", "republic_of_ireland"},
		{"spelled out month", "Offer ends 31 January", "spelled_out_date"},
		{"per week", "costs £10 per week", "per_period"},
		{"per month", "costs £10 per month", "per_period"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kinds(tt.text, ""); !got[tt.wantKind] {
				t.Errorf("Analyze(%q) kinds = %v, want %s", tt.text, got, tt.wantKind)
			}
		})
	}
}

func TestAnalyze_TermsAndConditionsIsCaseSensitive(t *testing.T) {
	// The lowercase words are too common to flag.
	if got := kinds("all terms and conditions apply", ""); got["terms_and_conditions"] {
		t.Errorf("lowercase 'terms and conditions' should not fire, got %v", got)
	}
}

func TestAnalyze_DuplicateBlocks(t *testing.T) {
	text := "Offer subject to status. Terms apply. UK residents only."

	if got := kinds(text, text); !got["duplicate_blocks"] {
		t.Errorf("identical blocks should fire duplicate_blocks, got %v", got)
	}

	other := "Cashback paid within sixty days of qualifying purchase completion."
	if got := kinds(text, other); got["duplicate_blocks"] {
		t.Errorf("unrelated blocks should not fire duplicate_blocks, got %v", got)
	}

	// Never fires when either block is missing.
	if got := kinds(text, ""); got["duplicate_blocks"] {
		t.Errorf("missing additional block should not fire duplicate_blocks, got %v", got)
	}
}

func TestAnalyze_CleanText(t *testing.T) {
	if got := Analyze("Selected lines. Subject to availability.", ""); len(got) != 0 {
		t.Errorf("Analyze = %+v, want no tips", got)
	}
}

func TestFingerprint(t *testing.T) {
	a := fingerprint("offer subject to status terms apply")
	b := fingerprint("offer subject to status terms apply")
	if a != b {
		t.Errorf("identical texts produced different fingerprints: %064b vs %064b", a, b)
	}

	if fingerprint("") != 0 {
		t.Error("empty text should produce fingerprint 0")
	}

	c := fingerprint("offer subject to status terms may apply")
	if hamming(a, c) > 20 {
		t.Errorf("near-identical texts have distance %d, want small", hamming(a, c))
	}
}
