// Package aggregator turns normalized word sets into countable-word totals,
// suppressing duplicates within a block and across blocks of the same
// calculation.
package aggregator

import (
	"github.com/use-agent/holdcalc/normalizer"
)

// SeenSets tracks which token keys have already been counted earlier in the
// calculation. Manual tokens and numerals are deduplicated independently:
// manual keys are case-insensitive surface forms, numeral keys are literal
// digit strings.
type SeenSets struct {
	Manual  map[string]struct{}
	Numbers map[string]struct{}
}

// NewSeenSets returns empty seen-sets for a fresh calculation.
func NewSeenSets() *SeenSets {
	return &SeenSets{
		Manual:  make(map[string]struct{}),
		Numbers: make(map[string]struct{}),
	}
}

// Block is the aggregation result for one text block: the countable word
// count and the display words in counting order (unique manual tokens first,
// then the expansion words of each surviving numeral, kept contiguous and in
// reading order).
type Block struct {
	Count int
	Words []string
}

// Aggregate counts the words of one block against the seen-sets, updating
// them in place. Passing the same sets for a main and then an additional
// block gives the cross-block behavior: repeats contribute zero new words.
//
// Numerals are atomic for uniqueness: a numeral whose literal digit string
// is new contributes all of its non-connector expansion words, even when
// those words already appear from manual text or from another numeral.
//
// Returns an error only when a numeral cannot be rendered in words, in which
// case no partial result is produced.
func Aggregate(ws normalizer.WordSet, seen *SeenSets) (Block, error) {
	var b Block

	for _, tok := range ws.Manual {
		key := tok.Key()
		if _, dup := seen.Manual[key]; dup {
			continue
		}
		seen.Manual[key] = struct{}{}
		b.Words = append(b.Words, tok.Display)
		b.Count++
	}

	for _, literal := range ws.Numbers {
		if _, dup := seen.Numbers[literal]; dup {
			continue
		}
		seen.Numbers[literal] = struct{}{}

		words, err := normalizer.NumberWords(literal)
		if err != nil {
			return Block{}, err
		}
		b.Words = append(b.Words, words...)
		b.Count += len(words)
	}

	return b, nil
}
