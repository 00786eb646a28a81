package notifications

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/meditriage/meditriage/pkg/query"
	"github.com/meditriage/meditriage/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "notifications", "n").
	Project("id", "ID").
	Project("narrative", "Narrative").
	Project("source", "Source").
	Project("pattern", "Pattern").
	Project("severity", "Severity").
	Project("recent_change", "RecentChange").
	Project("immediate_risk", "ImmediateRisk").
	Project("category", "Category").
	Project("secondary_category", "SecondaryCategory").
	Project("confidence", "Confidence").
	Project("requires_review", "RequiresReview").
	Project("requires_external_referral", "RequiresExternalReferral").
	Project("factors", "Factors").
	Project("sentiment", "Sentiment").
	Project("actions", "Actions").
	Project("reasoning", "Reasoning").
	Project("submitted_at", "SubmittedAt")

var defaultSort = query.SortField{
	Field:      "SubmittedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for notification queries.
// Nil fields are ignored. All fields use exact matching.
type Filters struct {
	Category       *string `json:"category,omitempty"`
	Source         *string `json:"source,omitempty"`
	Severity       *string `json:"severity,omitempty"`
	Sentiment      *string `json:"sentiment,omitempty"`
	RequiresReview *bool   `json:"requires_review,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Category", f.Category).
		WhereEquals("Source", f.Source).
		WhereEquals("Severity", f.Severity).
		WhereEquals("Sentiment", f.Sentiment).
		WhereEquals("RequiresReview", f.RequiresReview)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("category"); c != "" {
		f.Category = &c
	}

	if s := values.Get("source"); s != "" {
		f.Source = &s
	}

	if s := values.Get("severity"); s != "" {
		f.Severity = &s
	}

	if s := values.Get("sentiment"); s != "" {
		f.Sentiment = &s
	}

	if v := values.Get("requires_review"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			f.RequiresReview = &b
		}
	}

	return f
}

func scanNotification(s repository.Scanner) (Notification, error) {
	var n Notification
	var factorsRaw, actionsRaw []byte

	err := s.Scan(
		&n.ID,
		&n.Narrative,
		&n.Source,
		&n.Pattern,
		&n.Severity,
		&n.RecentChange,
		&n.ImmediateRisk,
		&n.Category,
		&n.SecondaryCategory,
		&n.Confidence,
		&n.RequiresReview,
		&n.RequiresExternalReferral,
		&factorsRaw,
		&n.Sentiment,
		&actionsRaw,
		&n.Reasoning,
		&n.SubmittedAt,
	)

	if err != nil {
		return n, err
	}

	if len(factorsRaw) > 0 {
		if err := json.Unmarshal(factorsRaw, &n.Factors); err != nil {
			return n, fmt.Errorf("unmarshal factors: %w", err)
		}
	}
	if n.Factors == nil {
		n.Factors = []string{}
	}

	if len(actionsRaw) > 0 {
		if err := json.Unmarshal(actionsRaw, &n.Actions); err != nil {
			return n, fmt.Errorf("unmarshal actions: %w", err)
		}
	}
	if n.Actions == nil {
		n.Actions = []string{}
	}

	return n, nil
}
