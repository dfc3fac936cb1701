// Package calculator orchestrates the normalize → aggregate → duration
// pipeline for one calculation request.
package calculator

import (
	"strings"

	"github.com/use-agent/holdcalc/aggregator"
	"github.com/use-agent/holdcalc/models"
	"github.com/use-agent/holdcalc/normalizer"
	"github.com/use-agent/holdcalc/timing"
	"github.com/use-agent/holdcalc/tips"
)

// Calculator runs calculation requests against the built-in rule tables.
// It holds no per-request state and is safe for concurrent use.
type Calculator struct {
	norm *normalizer.Normalizer
}

// New returns a ready-to-use Calculator.
func New() *Calculator {
	return &Calculator{norm: normalizer.New()}
}

// Rules reports the size of the loaded rule tables.
func (c *Calculator) Rules() models.RuleStats {
	return c.norm.Rules()
}

// Calculate runs the full pipeline:
//
//  1. Normalize the main block (exclusions applied first) and aggregate it
//     against fresh seen-sets.
//  2. Normalize the additional block, if any, and aggregate it against the
//     same seen-sets, so words already counted in the main block contribute
//     zero. The additional block is displayed at a different time, which is
//     why it gets its own recognition allowance.
//  3. Derive per-block durations and the combined seconds-and-frames total.
//  4. Attach optimization tips for the raw input, unless disabled.
//
// Empty or whitespace-only blocks yield zero words and zero duration; the
// only error condition is a numeral outside the renderable range, which
// fails the whole calculation rather than mis-counting a legal number.
func (c *Calculator) Calculate(req *models.CalculateRequest) (*models.CalculateResponse, error) {
	exclusions := req.ExclusionList()
	seen := aggregator.NewSeenSets()

	mainSet := c.norm.Normalize(req.MainText, exclusions)
	mainBlock, err := aggregator.Aggregate(mainSet, seen)
	if err != nil {
		return nil, err
	}

	resp := &models.CalculateResponse{
		Success: true,
		Main:    blockResult(mainBlock),
	}
	grand := resp.Main.TotalSeconds

	if strings.TrimSpace(req.AdditionalText) != "" {
		addSet := c.norm.Normalize(req.AdditionalText, exclusions)
		addBlock, err := aggregator.Aggregate(addSet, seen)
		if err != nil {
			return nil, err
		}
		add := blockResult(addBlock)
		resp.Additional = &add
		grand += add.TotalSeconds
	}

	whole, frames := timing.Frames(grand)
	resp.Total = models.TotalResult{
		Seconds:      grand,
		WholeSeconds: whole,
		Frames:       frames,
	}

	if req.Tips == nil || *req.Tips {
		resp.Tips = tips.Analyze(req.MainText, req.AdditionalText)
	}

	return resp, nil
}

// blockResult attaches the duration arithmetic to an aggregated block.
func blockResult(b aggregator.Block) models.BlockResult {
	total, recognition := timing.Duration(b.Count)
	return models.BlockResult{
		WordCount:          b.Count,
		HoldSeconds:        float64(b.Count) * timing.SecondsPerWord,
		RecognitionSeconds: recognition,
		TotalSeconds:       total,
		Words:              b.Words,
	}
}
