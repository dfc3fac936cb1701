package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/holdcalc/cache"
	"github.com/use-agent/holdcalc/calculator"
	"github.com/use-agent/holdcalc/metrics"
	"github.com/use-agent/holdcalc/models"
)

// Calculate returns a handler for POST /api/v1/calculate.
//
// Orchestration flow:
//  1. Parse & validate request, apply defaults.
//  2. Cache lookup (when the client allows a max_age).
//  3. Calculator.Calculate → per-block breakdowns + combined total.
//  4. Cache store, record metrics, return 200.
func Calculate(calc *calculator.Calculator, cc *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		totalStart := time.Now()

		// ── 1. Parse request ────────────────────────────────────────
		var req models.CalculateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.CalculationsTotal.WithLabelValues(models.ErrCodeInvalidInput).Inc()
			c.JSON(http.StatusBadRequest, models.CalculateResponse{
				Success: false,
				Error: &models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: err.Error(),
				},
			})
			return
		}
		req.Defaults()

		// ── 2. Cache lookup ─────────────────────────────────────────
		var cacheKey string
		if cc != nil && req.MaxAge > 0 {
			cacheKey = cache.Key(req.MainText, req.AdditionalText, req.Exclusions)
			if cached, hit := cc.Get(cacheKey, req.MaxAge); hit {
				// Shallow copy so the stored entry is never mutated.
				out := *cached
				out.CacheStatus = "hit"
				out.Timing = models.TimingInfo{
					TotalMs: time.Since(totalStart).Milliseconds(),
				}
				c.JSON(http.StatusOK, &out)
				return
			}
		}

		// ── 3. Calculate ────────────────────────────────────────────
		calcStart := time.Now()
		resp, err := calc.Calculate(&req)
		calculationMs := time.Since(calcStart).Milliseconds()

		if err != nil {
			respondError(c, err, models.TimingInfo{
				TotalMs:       time.Since(totalStart).Milliseconds(),
				CalculationMs: calculationMs,
			})
			return
		}

		resp.Timing = models.TimingInfo{
			TotalMs:       time.Since(totalStart).Milliseconds(),
			CalculationMs: calculationMs,
		}

		metrics.CalculationsTotal.WithLabelValues("ok").Inc()
		wordCount := resp.Main.WordCount
		if resp.Additional != nil {
			wordCount += resp.Additional.WordCount
		}
		metrics.CountableWords.Observe(float64(wordCount))
		metrics.HoldSeconds.Observe(resp.Total.Seconds)

		// ── 4. Cache store ──────────────────────────────────────────
		if cc != nil && req.MaxAge > 0 {
			stored := *resp
			stored.CacheStatus = ""
			cc.Set(cacheKey, &stored)
			resp.CacheStatus = "miss"
		}

		c.JSON(http.StatusOK, resp)
	}
}

// respondError maps a CalcError to the correct HTTP status code and writes
// a structured JSON error response.
func respondError(c *gin.Context, err error, timing models.TimingInfo) {
	calcErr, ok := err.(*models.CalcError)
	if !ok {
		calcErr = models.NewCalcError(models.ErrCodeInternal, err.Error(), err)
	}

	metrics.CalculationsTotal.WithLabelValues(calcErr.Code).Inc()
	c.JSON(mapErrorToStatus(calcErr), models.CalculateResponse{
		Success: false,
		Error:   calcErr.ToDetail(),
		Timing:  timing,
	})
}

// mapErrorToStatus translates error codes to HTTP status codes.
func mapErrorToStatus(e *models.CalcError) int {
	switch e.Code {
	case models.ErrCodeInvalidInput:
		return http.StatusBadRequest // 400
	case models.ErrCodeNumberConversion:
		return http.StatusUnprocessableEntity // 422
	case models.ErrCodeRateLimited:
		return http.StatusTooManyRequests // 429
	case models.ErrCodeUnauthorized:
		return http.StatusUnauthorized // 401
	default:
		return http.StatusInternalServerError // 500
	}
}
