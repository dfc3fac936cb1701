package normalizer

import "regexp"

// Protection placeholders. Each placeholder must survive the generic word
// tokenizer as a single token, so they are built from word characters only.
// Underscores keep them from colliding with anything in real disclaimer copy.
const (
	urlToken   = "__URL__"
	urlDisplay = "[URL]"
)

// urlPattern matches optional-scheme, optional-www, dot-separated hostnames
// with a TLD of at least two letters, optionally followed by a path. The
// whole match collapses to one placeholder so a URL counts as one word.
var urlPattern = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}(?:/\S*)?`)

// postcodePattern matches UK postcodes (outward: 1-2 letters, digit,
// optional letter-or-digit; inward: digit + 2 letters) with or without an
// interior space. The replacement guarantees exactly one separating space so
// the tokenizer splits a postcode into exactly two words.
var postcodePattern = regexp.MustCompile(`(?i)\b([A-Z]{1,2}\d[A-Z\d]?)\s*(\d[A-Z]{2})\b`)

// abbreviation is one entry of the protection rule table: a case-insensitive
// pattern over the punctuation/spacing variants of a legal or financial
// abbreviation, the placeholder it collapses to, and the canonical form shown
// in the countable word list. Every variant counts as exactly one word.
type abbreviation struct {
	pattern *regexp.Regexp
	token   string
	display string
}

// abbreviations are applied sequentially, in this order, after URL and
// postcode protection. Order matters: T&Cs variants must be collapsed before
// the single-letter patterns get a chance to nibble at them.
var abbreviations = []abbreviation{
	{regexp.MustCompile(`(?i)\bTs?\s?&\s?Cs\b`), "__TCS__", "T&Cs"},
	{regexp.MustCompile(`(?i)\bp\.?a\.?\b`), "__PA__", "p.a."},
	{regexp.MustCompile(`(?i)\bR\.?O\.?I\.?\b`), "__ROI__", "ROI"},
	{regexp.MustCompile(`(?i)\bN\.?I\.?\b`), "__NI__", "NI"},
}

// displayForms maps placeholders back to the surface form shown to users.
var displayForms = func() map[string]string {
	m := map[string]string{urlToken: urlDisplay}
	for _, a := range abbreviations {
		m[a.token] = a.display
	}
	return m
}()

// digitRunPattern finds maximal runs of decimal digits.
var digitRunPattern = regexp.MustCompile(`\d+`)

// wordPattern is the generic tokenizer: alphanumeric runs plus '&', so
// placeholders and &-joined tokens like "Q&A" survive as single tokens.
// A lone '&' is not a token (it needs a word character on at least one side).
var wordPattern = regexp.MustCompile(`\b[\w&]+\b`)
