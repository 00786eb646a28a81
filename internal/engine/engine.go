package engine

import (
	"fmt"
	"strings"
	"time"
)

// Result is the classification produced for one notification. It is built
// exactly once per Classify call and never mutated afterwards.
type Result struct {
	Category                 Category  `json:"category"`
	SecondaryCategory        *Category `json:"secondary_category,omitempty"`
	Confidence               float64   `json:"confidence"`
	RequiresReview           bool      `json:"requires_review"`
	RequiresExternalReferral bool      `json:"requires_external_referral"`
	Signals                  SignalSet `json:"signals"`
	Actions                  []string  `json:"actions"`
	Reasoning                string    `json:"reasoning"`
	ClassifiedAt             time.Time `json:"classified_at"`
}

// Classify runs signal extraction and the rule-priority resolver over one
// notification. It rejects a blank narrative with ErrBlankNarrative before
// any evaluation; everything else, including fully unanswered triage fields,
// classifies deterministically. Classify holds no shared state and is safe
// for concurrent callers.
func Classify(in Input) (*Result, error) {
	if strings.TrimSpace(in.Narrative) == "" {
		return nil, ErrBlankNarrative
	}

	in.Normalize()
	sig := Extract(in.Narrative)
	_, out := resolve(in, sig)

	def := Lookup(out.category)
	actions := append([]string{def.Action}, out.extraActions...)

	res := &Result{
		Category:                 out.category,
		Confidence:               out.confidence,
		RequiresReview:           requiresReview(in, out),
		RequiresExternalReferral: out.externalReferral,
		Signals:                  sig,
		Actions:                  actions,
		Reasoning:                reasoning(in, sig),
		ClassifiedAt:             time.Now().UTC(),
	}

	if out.secondary != "" {
		secondary := out.secondary
		res.SecondaryCategory = &secondary
	}

	return res, nil
}

// requiresReview flags the fallback category, and serious or critical
// severity regardless of which rule matched.
func requiresReview(in Input, out outcome) bool {
	if out.category == NeedsFurtherInformation {
		return true
	}
	return in.Severity == SeveritySerious || in.Severity == SeverityCritical
}

// reasoning renders the explanatory summary. It reports what the engine saw,
// not how it decided; nothing downstream reads it.
func reasoning(in Input, sig SignalSet) string {
	return fmt.Sprintf(
		"Identified %d contextual factor(s) and %d regulatory factor(s); overall sentiment %s.",
		len(sig.Factors),
		regulatoryFactorCount(in),
		sig.Sentiment,
	)
}

// regulatoryFactorCount counts the structured triage answers that indicate
// regulatory concern on their own.
func regulatoryFactorCount(in Input) int {
	count := 0
	if in.Pattern == PatternEmerging || in.Pattern == PatternEstablished {
		count++
	}
	if in.Severity == SeveritySerious || in.Severity == SeverityCritical {
		count++
	}
	if in.RecentChange == ChangeSignificant || in.RecentChange == ChangeSudden {
		count++
	}
	if in.ImmediateRisk == RiskLikely || in.ImmediateRisk == RiskImmediate {
		count++
	}
	return count
}
