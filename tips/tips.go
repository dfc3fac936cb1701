// Package tips pattern-matches the raw disclaimer text for cheap wording
// changes that shave hold time. It works on the raw input, not on the
// normalized word list, so suggestions read back in the author's own words.
package tips

import (
	"strings"

	"github.com/use-agent/holdcalc/models"
)

var months = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// duplicateDistance is the max fingerprint Hamming distance at which two
// blocks are considered near-duplicates.
const duplicateDistance = 10

// Analyze inspects the raw main and additional text and returns any
// optimization suggestions, in a fixed order.
func Analyze(mainText, additionalText string) []models.Tip {
	fullText := mainText + " " + additionalText
	lower := strings.ToLower(fullText)

	var out []models.Tip

	// Spelled-out "Terms and Conditions" is matched case-sensitively: the
	// capitalized form is how it appears in legal copy, and the lowercase
	// words are too common to flag on their own.
	if strings.Contains(fullText, "Terms and Conditions") {
		out = append(out, models.Tip{
			Kind:          "terms_and_conditions",
			Message:       "Change 'Terms and Conditions' (3 words) to 'T&Cs' (1 word).",
			SavingSeconds: 0.4,
		})
	}

	if strings.Contains(lower, "per annum") {
		out = append(out, models.Tip{
			Kind:          "per_annum",
			Message:       "Change 'per annum' (2 words) to 'p.a.' (1 word).",
			SavingSeconds: 0.2,
		})
	}

	if strings.Contains(lower, "republic of ireland") {
		out = append(out, models.Tip{
			Kind:          "republic_of_ireland",
			Message:       "Change 'Republic of Ireland' (3 words) to 'ROI' (1 word).",
			SavingSeconds: 0.4,
		})
	}

	for _, month := range months {
		if strings.Contains(lower, month) {
			out = append(out, models.Tip{
				Kind:    "spelled_out_date",
				Message: "Writing dates out in full (e.g. 'January') is lengthy. Consider numerals (e.g. '25.01.25').",
			})
			break
		}
	}

	if strings.Contains(lower, "per week") || strings.Contains(lower, "per month") {
		out = append(out, models.Tip{
			Kind:    "per_period",
			Message: "Use '/week' or '/month' instead of 'per week'/'per month' to save a word.",
		})
	}

	// Near-duplicate blocks: cross-block dedup already absorbs repeated
	// words, but a largely duplicated additional block usually means the
	// split serves no purpose.
	if strings.TrimSpace(mainText) != "" && strings.TrimSpace(additionalText) != "" {
		if hamming(fingerprint(mainText), fingerprint(additionalText)) <= duplicateDistance {
			out = append(out, models.Tip{
				Kind:    "duplicate_blocks",
				Message: "The additional text largely repeats the main disclaimer. Repeated words are not counted twice, but consider dropping the split.",
			})
		}
	}

	return out
}
