// Package normalizer turns raw disclaimer text into the ordered sequence of
// countable word tokens used by UK advertising-clearance duration rules.
//
// The pipeline applies protections in a fixed order (brand exclusions, URLs,
// postcodes, abbreviations) before the generic tokenizer runs, so that
// multi-part surface forms like "T & Cs" or "holdcalc.co.uk/terms" each
// count as exactly one word, and postcodes as exactly two.
package normalizer

import (
	"regexp"
	"strings"

	"github.com/use-agent/holdcalc/models"
)

// Token is one countable unit: a literal word, a protected abbreviation in
// its canonical display form, or the [URL] placeholder.
type Token struct {
	Display string
}

// Key returns the case-insensitive identity used for deduplication.
func (t Token) Key() string {
	return strings.ToLower(t.Display)
}

// WordSet is the result of normalizing one block of text.
//
// Manual holds the literal-text tokens, unique by case-insensitive key, in
// first-occurrence order. Numbers holds the literal digit runs, unique by
// their exact digit string ("007" and "7" are distinct), in scan order.
// The two partitions are never deduplicated against each other: a numeral is
// an atomic phrase, not a bag of words.
type WordSet struct {
	Manual  []Token
	Numbers []string
}

// Normalizer applies the protection rule tables. It holds no per-request
// state and is safe for concurrent use.
type Normalizer struct{}

// New returns a Normalizer with the built-in clearance rule tables.
func New() *Normalizer {
	return &Normalizer{}
}

// Rules reports the size of the loaded rule tables (for health reporting).
func (n *Normalizer) Rules() models.RuleStats {
	return models.RuleStats{
		Abbreviations: len(abbreviations),
		Protections:   2, // URL + postcode
	}
}

// Normalize runs the full pipeline over one block of text.
//
// Steps, in order:
//  1. Remove each exclusion phrase (case-insensitive, sequential, in the
//     order supplied), replacing every occurrence with a single space.
//  2. Collapse URLs to a one-word placeholder.
//  3. Rewrite UK postcodes to guarantee an interior space (two words).
//  4. Collapse abbreviation variants to canonical one-word placeholders.
//  5. Split out maximal digit runs as numeral occurrences and tokenize the
//     remaining spans, mapping placeholders back to display forms.
func (n *Normalizer) Normalize(text string, exclusions []string) WordSet {
	var ws WordSet
	if strings.TrimSpace(text) == "" {
		return ws
	}

	// 1. Brand exclusions. Sequential by construction: each phrase is
	// matched against the text as left by the previous one.
	for _, excl := range exclusions {
		excl = strings.TrimSpace(excl)
		if excl == "" {
			continue
		}
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(excl))
		text = re.ReplaceAllString(text, " ")
	}

	// 2-4. Protection rules. Postcode halves become digit-free placeholders
	// with per-call display forms: leaving them inline would hand their
	// digits to numeral extraction, and "SW1A" must never read as "one".
	text = urlPattern.ReplaceAllString(text, urlToken)

	dynamic := make(map[string]string)
	text = postcodePattern.ReplaceAllStringFunc(text, func(m string) string {
		parts := postcodePattern.FindStringSubmatch(m)
		out := "__PCO" + letterIndex(len(dynamic)) + "__"
		dynamic[out] = parts[1]
		in := "__PCI" + letterIndex(len(dynamic)) + "__"
		dynamic[in] = parts[2]
		return out + " " + in
	})

	for _, abbr := range abbreviations {
		text = abbr.pattern.ReplaceAllString(text, abbr.token)
	}

	// 5. Numeral extraction and generic tokenization.
	seenManual := make(map[string]struct{})
	seenNumbers := make(map[string]struct{})

	last := 0
	for _, span := range digitRunPattern.FindAllStringIndex(text, -1) {
		appendManual(&ws, seenManual, dynamic, text[last:span[0]])

		literal := text[span[0]:span[1]]
		if _, dup := seenNumbers[literal]; !dup {
			seenNumbers[literal] = struct{}{}
			ws.Numbers = append(ws.Numbers, literal)
		}
		last = span[1]
	}
	appendManual(&ws, seenManual, dynamic, text[last:])

	return ws
}

// letterIndex encodes i as an uppercase base-26 string ("A", "B", ... "AA").
// Placeholder names must stay free of digits, or numeral extraction would
// split them apart.
func letterIndex(i int) string {
	s := ""
	for {
		s = string(rune('A'+i%26)) + s
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	return s
}

// appendManual tokenizes one digit-free span and appends the tokens not yet
// seen in this block, first occurrence winning the display surface form.
func appendManual(ws *WordSet, seen map[string]struct{}, dynamic map[string]string, span string) {
	for _, raw := range wordPattern.FindAllString(span, -1) {
		if display, ok := displayForms[raw]; ok {
			raw = display
		} else if display, ok := dynamic[raw]; ok {
			raw = display
		}
		tok := Token{Display: raw}
		if _, dup := seen[tok.Key()]; dup {
			continue
		}
		seen[tok.Key()] = struct{}{}
		ws.Manual = append(ws.Manual, tok)
	}
}
