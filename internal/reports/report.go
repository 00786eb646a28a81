// Package reports implements the reporting domain for MediTriage. It
// aggregates stored classification records into summary reports and archives
// exported reports to blob storage.
package reports

import "time"

// ConfidenceDistribution buckets classifications by confidence. High is
// above 0.8, medium is 0.6 to 0.8 inclusive, low is below 0.6.
type ConfidenceDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Summary aggregates the stored notification records at a point in time.
type Summary struct {
	GeneratedAt        time.Time              `json:"generated_at"`
	TotalNotifications int                    `json:"total_notifications"`
	RequiresReview     int                    `json:"requires_review"`
	ExternalReferrals  int                    `json:"external_referrals"`
	Categories         map[string]int         `json:"categories"`
	Severities         map[string]int         `json:"severities"`
	Confidence         ConfidenceDistribution `json:"confidence"`
}

// Export describes one archived report blob.
type Export struct {
	Key        string    `json:"key"`
	Size       int64     `json:"size"`
	ExportedAt time.Time `json:"exported_at"`
}

// bucket assigns a confidence value to its distribution bucket.
func (d *ConfidenceDistribution) bucket(confidence float64) {
	switch {
	case confidence > 0.8:
		d.High++
	case confidence < 0.6:
		d.Low++
	default:
		d.Medium++
	}
}
