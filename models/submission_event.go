package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission outcomes
const (
	OutcomeSucceeded   = "succeeded"
	OutcomeRejected    = "rejected"
	OutcomeUnreachable = "unreachable"
	OutcomeInvalid     = "invalid"
	OutcomeLocal       = "local"
)

// SubmissionEvent records the outcome of one lead submission attempt.
// It holds no field of the lead itself.
type SubmissionEvent struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index:idx_submission_created_at" json:"created_at"`

	Site       string     `gorm:"not null;index:idx_submission_site" json:"site"`
	LeadSource LeadSource `gorm:"not null" json:"lead_source"`
	Strategy   string     `gorm:"not null" json:"strategy"`
	Outcome    string     `gorm:"not null;index:idx_submission_outcome" json:"outcome"`

	// Zero when no HTTP response was received
	StatusCode int   `json:"status_code,omitempty"`
	DurationMs int64 `json:"duration_ms"`

	RequestID string `json:"request_id,omitempty"`
}

// BeforeCreate hook to generate UUID
func (e *SubmissionEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for SubmissionEvent model
func (SubmissionEvent) TableName() string {
	return "submission_events"
}

// IsValidOutcome checks if the outcome is valid
func IsValidOutcome(outcome string) bool {
	validOutcomes := []string{
		OutcomeSucceeded,
		OutcomeRejected,
		OutcomeUnreachable,
		OutcomeInvalid,
		OutcomeLocal,
	}
	for _, o := range validOutcomes {
		if o == outcome {
			return true
		}
	}
	return false
}
