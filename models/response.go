package models

// CalculateResponse is the response for POST /api/v1/calculate.
type CalculateResponse struct {
	// Success indicates whether the calculation completed without errors.
	Success bool `json:"success"`

	// Main is the breakdown for the main disclaimer block.
	Main BlockResult `json:"main"`

	// Additional is the breakdown for the additional block. Nil when no
	// additional text was supplied.
	Additional *BlockResult `json:"additional,omitempty"`

	// Total aggregates both blocks into the final on-screen hold figures.
	Total TotalResult `json:"total"`

	// Tips lists optimization suggestions derived from the raw input.
	Tips []Tip `json:"tips,omitempty"`

	// Timing provides duration breakdowns for the operation.
	Timing TimingInfo `json:"timing"`

	// CacheStatus indicates whether the response was served from cache.
	// Values: "hit", "miss", or empty (caching not requested).
	CacheStatus string `json:"cache_status,omitempty"`

	// Error is populated only when Success is false.
	Error *ErrorDetail `json:"error,omitempty"`
}

// BlockResult is the per-block word count and duration breakdown.
type BlockResult struct {
	// WordCount is the number of unique countable words in the block.
	WordCount int `json:"word_count"`

	// HoldSeconds is the per-word display component (0.2s per word).
	HoldSeconds float64 `json:"hold_seconds"`

	// RecognitionSeconds is the fixed reading-reaction overhead,
	// tiered by word count.
	RecognitionSeconds float64 `json:"recognition_seconds"`

	// TotalSeconds is HoldSeconds + RecognitionSeconds.
	TotalSeconds float64 `json:"total_seconds"`

	// Words lists the countable words in counting order, with numerals
	// expanded to their spoken form.
	Words []string `json:"words"`
}

// TotalResult combines both blocks into broadcast-ready figures.
type TotalResult struct {
	// Seconds is the grand total hold duration across both blocks.
	Seconds float64 `json:"seconds"`

	// WholeSeconds and Frames express the same duration in the
	// seconds-and-frames form used on clock numbers (25 fps).
	WholeSeconds int `json:"whole_seconds"`
	Frames       int `json:"frames"`
}

// Tip is a single optimization suggestion for the raw input text.
type Tip struct {
	// Kind identifies the heuristic that fired,
	// e.g. "terms_and_conditions", "per_annum", "duplicate_blocks".
	Kind string `json:"kind"`

	// Message is the human-readable suggestion.
	Message string `json:"message"`

	// SavingSeconds estimates the hold-time saving, when quantifiable.
	SavingSeconds float64 `json:"saving_seconds,omitempty"`
}

// TimingInfo breaks down the time spent in the operation.
type TimingInfo struct {
	// TotalMs is the end-to-end duration in milliseconds.
	TotalMs int64 `json:"total_ms"`

	// CalculationMs is the time spent in the normalize/aggregate pipeline.
	CalculationMs int64 `json:"calculation_ms"`
}

// HealthResponse is the response for GET /api/v1/health.
type HealthResponse struct {
	Status  string    `json:"status"` // always "healthy" for a stateless engine
	Uptime  string    `json:"uptime"`
	Rules   RuleStats `json:"rules"`
	Version string    `json:"version"`
}

// RuleStats reports the size of the loaded normalization rule tables.
type RuleStats struct {
	Abbreviations int `json:"abbreviations"`
	Protections   int `json:"protections"`
}
