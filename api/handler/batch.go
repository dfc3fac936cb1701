package handler

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/holdcalc/calculator"
	"github.com/use-agent/holdcalc/config"
	"github.com/use-agent/holdcalc/models"
	"github.com/use-agent/holdcalc/webhook"
)

// batchStore holds all in-flight and completed batch jobs.
var batchStore sync.Map

// StartBatchJanitor launches the background goroutine that expires batch
// jobs older than ttl. Called once from main.
func StartBatchJanitor(ttl time.Duration) {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			cutoff := time.Now().Add(-ttl).Unix()
			batchStore.Range(func(key, value any) bool {
				job := value.(*models.BatchJob)
				if job.CreatedAt < cutoff {
					batchStore.Delete(key)
				}
				return true
			})
		}
	}()
}

// PostBatch returns a handler for POST /api/v1/batch/calculate.
// It validates the request, creates a batch job, and launches goroutines
// to process each item concurrently.
func PostBatch(calc *calculator.Calculator, cfg config.BatchConfig, webhookSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: err.Error(),
				},
			})
			return
		}

		if len(req.Items) > cfg.MaxItems {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: fmt.Sprintf("maximum %d items per batch", cfg.MaxItems),
				},
			})
			return
		}

		jobID := "batch-" + randomID()
		job := &models.BatchJob{
			ID:         jobID,
			Status:     "processing",
			Total:      len(req.Items),
			Completed:  0,
			Results:    make([]*models.CalculateResponse, len(req.Items)),
			WebhookURL: req.WebhookURL,
			CreatedAt:  time.Now().Unix(),
		}
		batchStore.Store(jobID, job)

		// Process in the background.
		go runBatch(calc, job, req, cfg.MaxConcurrent, webhookSecret)

		c.JSON(http.StatusOK, models.BatchResponse{
			ID:     jobID,
			Status: "processing",
			Total:  len(req.Items),
		})
	}
}

// GetBatch returns a handler for GET /api/v1/batch/:id.
func GetBatch() gin.HandlerFunc {
	return func(c *gin.Context) {
		jobID := c.Param("id")
		val, ok := batchStore.Load(jobID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{
				"error": models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: "batch job not found",
				},
			})
			return
		}

		job := val.(*models.BatchJob)
		c.JSON(http.StatusOK, models.BatchStatusResponse{
			ID:        job.ID,
			Status:    job.Status,
			Completed: job.Completed,
			Total:     job.Total,
			Results:   job.Results,
		})
	}
}

// runBatch processes all items in a batch job with concurrency limited by a
// semaphore. The engine itself is CPU-cheap; the limit mostly bounds memory
// on batches of very long texts.
func runBatch(calc *calculator.Calculator, job *models.BatchJob, req models.BatchRequest, maxConcurrent int, webhookSecret string) {
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}
	sem := make(chan struct{}, maxConcurrent)

	var wg sync.WaitGroup
	var completed atomic.Int32
	var failed atomic.Int32

	for i := range req.Items {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			resp := calculateOne(calc, &req.Items[idx])
			job.Results[idx] = resp

			if resp.Success {
				completed.Add(1)
			} else {
				failed.Add(1)
			}
			job.Completed = int(completed.Load()) + int(failed.Load())
		}(i)
	}

	wg.Wait()

	failedCount := int(failed.Load())
	completedCount := int(completed.Load())

	switch {
	case failedCount == job.Total:
		job.Status = "failed"
	case failedCount > 0:
		job.Status = "partial"
	default:
		job.Status = "completed"
	}
	job.Completed = completedCount + failedCount

	slog.Info("batch job finished",
		"id", job.ID,
		"status", job.Status,
		"completed", completedCount,
		"failed", failedCount,
		"total", job.Total,
	)

	if job.WebhookURL != "" {
		webhook.DeliverAsync(job.WebhookURL, webhookSecret, &webhook.Event{
			Type:      "batch.completed",
			JobID:     job.ID,
			Timestamp: time.Now().Unix(),
			Data: models.BatchStatusResponse{
				ID:        job.ID,
				Status:    job.Status,
				Completed: job.Completed,
				Total:     job.Total,
				Results:   job.Results,
			},
		})
	}
}

// calculateOne runs a single calculation, converting errors into an
// error-carrying response so one bad item cannot sink the batch.
func calculateOne(calc *calculator.Calculator, req *models.CalculateRequest) *models.CalculateResponse {
	totalStart := time.Now()
	req.Defaults()

	resp, err := calc.Calculate(req)
	if err != nil {
		calcErr, ok := err.(*models.CalcError)
		if !ok {
			calcErr = models.NewCalcError(models.ErrCodeInternal, err.Error(), err)
		}
		return &models.CalculateResponse{
			Success: false,
			Error:   calcErr.ToDetail(),
			Timing: models.TimingInfo{
				TotalMs: time.Since(totalStart).Milliseconds(),
			},
		}
	}

	resp.Timing = models.TimingInfo{
		TotalMs:       time.Since(totalStart).Milliseconds(),
		CalculationMs: time.Since(totalStart).Milliseconds(),
	}
	return resp
}

// randomID generates a short random hex string for job IDs.
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
