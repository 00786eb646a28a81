// Package notifications implements the notification domain for MediTriage.
// It provides types, data access, and HTTP endpoints for submitting
// practitioner-conduct notifications through the classification engine and
// querying stored classification records.
package notifications

import (
	"time"

	"github.com/google/uuid"

	"github.com/meditriage/meditriage/internal/engine"
)

// Notification represents a stored classification record for one submitted
// notification. It mirrors the notifications table schema with flattened
// engine output.
type Notification struct {
	ID                       uuid.UUID        `json:"id"`
	Narrative                string           `json:"narrative"`
	Source                   string           `json:"source"`
	Pattern                  string           `json:"pattern"`
	Severity                 string           `json:"severity"`
	RecentChange             string           `json:"recent_change"`
	ImmediateRisk            string           `json:"immediate_risk"`
	Category                 string           `json:"category"`
	SecondaryCategory        *string          `json:"secondary_category"`
	Confidence               float64          `json:"confidence"`
	RequiresReview           bool             `json:"requires_review"`
	RequiresExternalReferral bool             `json:"requires_external_referral"`
	Factors                  []string         `json:"factors"`
	Sentiment                engine.Sentiment `json:"sentiment"`
	Actions                  []string         `json:"actions"`
	Reasoning                string           `json:"reasoning"`
	SubmittedAt              time.Time        `json:"submitted_at"`
}

// SubmitCommand carries the data needed to submit a notification: the
// free-text narrative plus the structured triage answers. Unanswered or
// unrecognized triage values are normalized by the engine.
type SubmitCommand struct {
	Narrative     string `json:"narrative"`
	Source        string `json:"source"`
	Pattern       string `json:"pattern"`
	Severity      string `json:"severity"`
	RecentChange  string `json:"recent_change"`
	ImmediateRisk string `json:"immediate_risk"`
}

// Input converts the command into an engine input.
func (c SubmitCommand) Input() engine.Input {
	return engine.Input{
		Narrative:     c.Narrative,
		Source:        engine.Source(c.Source),
		Pattern:       engine.Pattern(c.Pattern),
		Severity:      engine.Severity(c.Severity),
		RecentChange:  engine.RecentChange(c.RecentChange),
		ImmediateRisk: engine.ImmediateRisk(c.ImmediateRisk),
	}
}

// BatchResult pairs one batch item with its outcome. Exactly one of
// Notification and Error is set.
type BatchResult struct {
	Notification *Notification `json:"notification,omitempty"`
	Error        string        `json:"error,omitempty"`
}
