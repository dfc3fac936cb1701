package normalizer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/divan/num2words"

	"github.com/use-agent/holdcalc/models"
)

// maxSpokenValue is the largest value the cardinal converter renders
// correctly. Anything above it is a hard error: silently mis-rendering a
// number in a legal disclaimer is worse than refusing the calculation.
const maxSpokenValue = 999_999_999_999

// connectorWords are grammatical glue in a spoken number. They stay in the
// human-readable rendering but do not count as countable words.
var connectorWords = map[string]struct{}{
	"hundred":  {},
	"thousand": {},
	"and":      {},
}

var spokenWordPattern = regexp.MustCompile(`[a-z]+`)

// SpokenNumber renders a literal digit run the way a continuity announcer
// would read it:
//
//   - 1100-1999: "<hundreds> hundred[ and <remainder>]", the broadcast
//     convention for teen-hundred figures (1139 → "eleven hundred and
//     thirty-nine").
//   - 2010-2099: calendar-year reading (2024 → "twenty twenty-four").
//   - otherwise: standard British cardinal with "and".
//
// Leading zeros carry no spoken weight: "007" reads as "seven".
func SpokenNumber(digits string) (string, error) {
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || v > maxSpokenValue {
		return "", models.NewCalcError(models.ErrCodeNumberConversion,
			fmt.Sprintf("number %q is outside the supported range", digits), err)
	}

	n := int(v)
	switch {
	case n >= 1100 && n <= 1999:
		spoken := num2words.Convert(n/100) + " hundred"
		if r := n % 100; r > 0 {
			spoken += " and " + num2words.Convert(r)
		}
		return spoken, nil
	case n >= 2010 && n <= 2099:
		return num2words.Convert(n/100) + " " + num2words.Convert(n%100), nil
	default:
		return num2words.ConvertAnd(n), nil
	}
}

// NumberWords returns the countable words for a literal digit run: the
// spoken rendering, lower-cased, word-split, with connector words dropped.
func NumberWords(digits string) ([]string, error) {
	spoken, err := SpokenNumber(digits)
	if err != nil {
		return nil, err
	}

	raw := spokenWordPattern.FindAllString(strings.ToLower(spoken), -1)
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		if _, skip := connectorWords[w]; skip {
			continue
		}
		words = append(words, w)
	}
	return words, nil
}
