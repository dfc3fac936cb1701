// Package timing implements the clearance hold-duration arithmetic: a fixed
// per-word hold plus a recognition allowance tiered by word count.
package timing

import "math"

const (
	// SecondsPerWord is the display time each countable word contributes.
	SecondsPerWord = 0.2

	// FramesPerSecond is the broadcast frame rate used when expressing a
	// duration as whole seconds plus frames.
	FramesPerSecond = 25

	// recognitionThreshold is the word count at which the larger
	// recognition allowance applies.
	recognitionThreshold = 10

	shortRecognition = 2.0
	longRecognition  = 3.0
)

// Duration returns the total hold duration and the recognition component for
// a block with the given countable word count. Zero words means zero
// duration, not a minimum recognition time.
func Duration(wordCount int) (total, recognition float64) {
	if wordCount == 0 {
		return 0, 0
	}

	recognition = shortRecognition
	if wordCount >= recognitionThreshold {
		recognition = longRecognition
	}
	return float64(wordCount)*SecondsPerWord + recognition, recognition
}

// Frames expresses a duration as whole seconds plus a frame count at the
// broadcast frame rate.
func Frames(totalSeconds float64) (wholeSeconds, frames int) {
	wholeSeconds = int(totalSeconds)
	frames = int(math.Round((totalSeconds - float64(wholeSeconds)) * FramesPerSecond))
	return wholeSeconds, frames
}
