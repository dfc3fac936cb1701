package models

import "strings"

// CalculateRequest is the payload for POST /api/v1/calculate.
type CalculateRequest struct {
	// MainText is the main disclaimer text. At least one of MainText and
	// AdditionalText must be non-empty.
	MainText string `json:"main_text"`

	// AdditionalText is optional text displayed at a different time while
	// the disclaimer is held. It is assessed after the main text, so words
	// already counted in the main block contribute nothing here.
	AdditionalText string `json:"additional_text,omitempty"`

	// Exclusions is a comma-separated list of brand names to remove from
	// the text before counting. E.g. "Nike, Adidas".
	Exclusions string `json:"exclusions,omitempty"`

	// Tips toggles optimization-tip analysis of the raw input.
	// Default: true.
	Tips *bool `json:"tips,omitempty"`

	// MaxAge is the maximum acceptable cache age in milliseconds.
	// 0 (default) disables cache lookup for this request.
	MaxAge int `json:"max_age,omitempty" binding:"omitempty,min=0"`
}

// Defaults applies default values to unset fields.
func (r *CalculateRequest) Defaults() {
	if r.Tips == nil {
		t := true
		r.Tips = &t
	}
}

// ExclusionList splits the comma-separated Exclusions field into trimmed,
// non-empty phrases, preserving input order.
func (r *CalculateRequest) ExclusionList() []string {
	if strings.TrimSpace(r.Exclusions) == "" {
		return nil
	}
	parts := strings.Split(r.Exclusions, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Empty reports whether the request carries no text at all.
func (r *CalculateRequest) Empty() bool {
	return strings.TrimSpace(r.MainText) == "" && strings.TrimSpace(r.AdditionalText) == ""
}
