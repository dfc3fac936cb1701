package models

// BatchRequest is the payload for POST /api/v1/batch/calculate.
type BatchRequest struct {
	// Items lists the calculations to run. Max 100 per batch.
	Items []CalculateRequest `json:"items" binding:"required,min=1"`

	// WebhookURL, when set, receives a "batch.completed" event once all
	// items have been processed.
	WebhookURL string `json:"webhook_url,omitempty" binding:"omitempty,url"`
}

// BatchResponse is the immediate response for POST /api/v1/batch/calculate.
type BatchResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Total  int    `json:"total"`
}

// BatchStatusResponse is the response for GET /api/v1/batch/:id.
type BatchStatusResponse struct {
	ID        string               `json:"id"`
	Status    string               `json:"status"` // "processing", "completed", "partial", "failed"
	Completed int                  `json:"completed"`
	Total     int                  `json:"total"`
	Results   []*CalculateResponse `json:"results"`
}

// BatchJob is the in-memory state of one batch calculation job.
type BatchJob struct {
	ID         string
	Status     string
	Total      int
	Completed  int
	Results    []*CalculateResponse
	WebhookURL string
	CreatedAt  int64 // unix seconds, used for TTL expiry
}
