package aggregator

import (
	"reflect"
	"testing"

	"github.com/use-agent/holdcalc/models"
	"github.com/use-agent/holdcalc/normalizer"
)

func TestAggregate_CrossBlockDedup(t *testing.T) {
	n := normalizer.New()
	seen := NewSeenSets()

	main, err := Aggregate(n.Normalize("apply today", nil), seen)
	if err != nil {
		t.Fatalf("main block: %v", err)
	}
	if main.Count != 2 {
		t.Errorf("main count = %d, want 2", main.Count)
	}

	additional, err := Aggregate(n.Normalize("today only", nil), seen)
	if err != nil {
		t.Fatalf("additional block: %v", err)
	}
	if additional.Count != 1 {
		t.Errorf("additional count = %d, want 1", additional.Count)
	}
	if !reflect.DeepEqual(additional.Words, []string{"only"}) {
		t.Errorf("additional words = %v, want [only]", additional.Words)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	n := normalizer.New()
	ws := n.Normalize("offer ends soon offer", nil)

	seen := NewSeenSets()
	first, err := Aggregate(ws, seen)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}

	// Same word set against the updated seen-sets: everything is a repeat.
	second, err := Aggregate(ws, seen)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if second.Count != 0 || len(second.Words) != 0 {
		t.Errorf("second pass = %+v, want empty block", second)
	}

	// A fresh calculation reproduces the first result exactly.
	again, err := Aggregate(ws, NewSeenSets())
	if err != nil {
		t.Fatalf("fresh pass: %v", err)
	}
	if !reflect.DeepEqual(first, again) {
		t.Errorf("fresh pass = %+v, want %+v", again, first)
	}
}

func TestAggregate_NumeralIndependence(t *testing.T) {
	n := normalizer.New()

	// Two distinct numerals both expand in full, even though their
	// expansions share words.
	block, err := Aggregate(n.Normalize("from 1139 to 1199", nil), NewSeenSets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"from", "to", "eleven", "thirty", "nine", "eleven", "ninety", "nine"}
	if !reflect.DeepEqual(block.Words, want) {
		t.Errorf("words = %v, want %v", block.Words, want)
	}
	if block.Count != len(want) {
		t.Errorf("count = %d, want %d", block.Count, len(want))
	}

	// The same literal numeral twice expands only once.
	block, err = Aggregate(n.Normalize("1139 or 1139", nil), NewSeenSets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = []string{"or", "eleven", "thirty", "nine"}
	if !reflect.DeepEqual(block.Words, want) {
		t.Errorf("words = %v, want %v", block.Words, want)
	}
}

func TestAggregate_NumeralsNeverDedupAgainstManualWords(t *testing.T) {
	n := normalizer.New()

	// "thirty" and "nine" appear as manual words AND inside the numeral
	// expansion; the numeral is atomic, so its words count regardless.
	block, err := Aggregate(n.Normalize("thirty nine 1139", nil), NewSeenSets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"thirty", "nine", "eleven", "thirty", "nine"}
	if !reflect.DeepEqual(block.Words, want) {
		t.Errorf("words = %v, want %v", block.Words, want)
	}
	if block.Count != 5 {
		t.Errorf("count = %d, want 5", block.Count)
	}
}

func TestAggregate_LiteralKeyedNumerals(t *testing.T) {
	n := normalizer.New()

	// "007" and "7" have equal values but distinct literal keys, so both
	// expand; the display words may collide and that is fine.
	block, err := Aggregate(n.Normalize("agent 007 on channel 7", nil), NewSeenSets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"agent", "on", "channel", "seven", "seven"}
	if !reflect.DeepEqual(block.Words, want) {
		t.Errorf("words = %v, want %v", block.Words, want)
	}
}

func TestAggregate_NumberConversionFailure(t *testing.T) {
	ws := normalizer.WordSet{
		Manual:  []normalizer.Token{{Display: "pay"}},
		Numbers: []string{"99999999999999999999999999"},
	}

	_, err := Aggregate(ws, NewSeenSets())
	if err == nil {
		t.Fatal("expected error for out-of-range numeral")
	}
	calcErr, ok := err.(*models.CalcError)
	if !ok || calcErr.Code != models.ErrCodeNumberConversion {
		t.Errorf("error = %v, want CalcError with code %s", err, models.ErrCodeNumberConversion)
	}
}
