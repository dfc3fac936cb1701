package timing

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDuration(t *testing.T) {
	tests := []struct {
		wordCount       int
		wantTotal       float64
		wantRecognition float64
	}{
		{0, 0, 0},
		{1, 2.2, 2.0},
		{5, 3.0, 2.0},
		{9, 3.8, 2.0},  // last word count on the short recognition tier
		{10, 5.0, 3.0}, // first word count on the long recognition tier
		{25, 8.0, 3.0},
	}

	for _, tt := range tests {
		total, recognition := Duration(tt.wordCount)
		if !almostEqual(total, tt.wantTotal) || !almostEqual(recognition, tt.wantRecognition) {
			t.Errorf("Duration(%d) = (%v, %v), want (%v, %v)",
				tt.wordCount, total, recognition, tt.wantTotal, tt.wantRecognition)
		}
	}
}

func TestFrames(t *testing.T) {
	tests := []struct {
		seconds    float64
		wantWhole  int
		wantFrames int
	}{
		{0, 0, 0},
		{4.6, 4, 15},
		{3.8, 3, 20},
		{5.0, 5, 0},
		{2.2, 2, 5},
	}

	for _, tt := range tests {
		whole, frames := Frames(tt.seconds)
		if whole != tt.wantWhole || frames != tt.wantFrames {
			t.Errorf("Frames(%v) = (%d, %d), want (%d, %d)",
				tt.seconds, whole, frames, tt.wantWhole, tt.wantFrames)
		}
	}
}
