package models

import "time"

// ProcessingJob is the unit of work published to the queue for the
// async resize path. Workers download ImageURL, produce the four
// variants and persist the result under the job ID.
type ProcessingJob struct {
	ID        string        `json:"id"`
	ImageURL  string        `json:"image_url"`
	Scale     float64       `json:"scale"`
	Status    string        `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	Result    *ResizeResult `json:"result,omitempty"`
	Error     string        `json:"error,omitempty"`
}

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)
