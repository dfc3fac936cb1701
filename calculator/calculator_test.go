package calculator

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/use-agent/holdcalc/models"
)

func noTips() *bool {
	f := false
	return &f
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculate_CrossBlock(t *testing.T) {
	calc := New()

	resp, err := calc.Calculate(&models.CalculateRequest{
		MainText:       "apply today",
		AdditionalText: "today only",
		Tips:           noTips(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Main.WordCount != 2 {
		t.Errorf("main word count = %d, want 2", resp.Main.WordCount)
	}
	if !almostEqual(resp.Main.TotalSeconds, 2.4) {
		t.Errorf("main total = %v, want 2.4", resp.Main.TotalSeconds)
	}

	if resp.Additional == nil {
		t.Fatal("additional block missing")
	}
	if resp.Additional.WordCount != 1 {
		t.Errorf("additional word count = %d, want 1", resp.Additional.WordCount)
	}
	if !reflect.DeepEqual(resp.Additional.Words, []string{"only"}) {
		t.Errorf("additional words = %v, want [only]", resp.Additional.Words)
	}

	if !almostEqual(resp.Total.Seconds, 4.6) {
		t.Errorf("grand total = %v, want 4.6", resp.Total.Seconds)
	}
	if resp.Total.WholeSeconds != 4 || resp.Total.Frames != 15 {
		t.Errorf("frames = (%d, %d), want (4, 15)", resp.Total.WholeSeconds, resp.Total.Frames)
	}
}

func TestCalculate_EmptyInput(t *testing.T) {
	calc := New()

	resp, err := calc.Calculate(&models.CalculateRequest{
		MainText: "   \n",
		Tips:     noTips(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Main.WordCount != 0 {
		t.Errorf("word count = %d, want 0", resp.Main.WordCount)
	}
	if resp.Main.TotalSeconds != 0 || resp.Main.RecognitionSeconds != 0 {
		t.Errorf("empty block got non-zero duration: %+v", resp.Main)
	}
	if resp.Additional != nil {
		t.Errorf("additional block = %+v, want nil", resp.Additional)
	}
	if resp.Total.Seconds != 0 {
		t.Errorf("grand total = %v, want 0", resp.Total.Seconds)
	}
}

func TestCalculate_ExclusionsAppliedToBothBlocks(t *testing.T) {
	calc := New()

	resp, err := calc.Calculate(&models.CalculateRequest{
		MainText:       "Nike terms apply",
		AdditionalText: "Nike returns accepted",
		Exclusions:     "Nike, , Adidas",
		Tips:           noTips(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(resp.Main.Words, []string{"terms", "apply"}) {
		t.Errorf("main words = %v, want [terms apply]", resp.Main.Words)
	}
	if !reflect.DeepEqual(resp.Additional.Words, []string{"returns", "accepted"}) {
		t.Errorf("additional words = %v, want [returns accepted]", resp.Additional.Words)
	}
}

func TestCalculate_FullDisclaimer(t *testing.T) {
	calc := New()

	resp, err := calc.Calculate(&models.CalculateRequest{
		MainText: "T&Cs apply. 18+ only. Visit www.example.com/terms or write to SW1A 1AA.",
		Tips:     noTips(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"T&Cs", "apply", "only", "Visit", "[URL]", "or", "write", "to",
		"SW1A", "1AA",
		"eighteen", // from "18"
	}
	if !reflect.DeepEqual(resp.Main.Words, want) {
		t.Errorf("words = %v, want %v", resp.Main.Words, want)
	}
	if resp.Main.WordCount != 11 {
		t.Errorf("word count = %d, want 11", resp.Main.WordCount)
	}
	if !almostEqual(resp.Main.RecognitionSeconds, 3.0) {
		t.Errorf("recognition = %v, want 3.0 at 10+ words", resp.Main.RecognitionSeconds)
	}
}

func TestCalculate_NumberConversionFailure(t *testing.T) {
	calc := New()

	_, err := calc.Calculate(&models.CalculateRequest{
		MainText: "pay 99999999999999999999999 now",
		Tips:     noTips(),
	})
	if err == nil {
		t.Fatal("expected error for out-of-range numeral")
	}

	var calcErr *models.CalcError
	if !errors.As(err, &calcErr) || calcErr.Code != models.ErrCodeNumberConversion {
		t.Errorf("error = %v, want CalcError with code %s", err, models.ErrCodeNumberConversion)
	}
}

func TestCalculate_TipsAttached(t *testing.T) {
	calc := New()

	resp, err := calc.Calculate(&models.CalculateRequest{
		MainText: "Full Terms and Conditions apply",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, tip := range resp.Tips {
		if tip.Kind == "terms_and_conditions" {
			found = true
		}
	}
	if !found {
		t.Errorf("tips = %+v, want a terms_and_conditions suggestion", resp.Tips)
	}
}
