package engine

// outcome is the committed result of a matched rule.
type outcome struct {
	category         Category
	secondary        Category
	confidence       float64
	extraActions     []string
	externalReferral bool
}

// rule pairs a guard with its outcome. Guards are not mutually exclusive;
// position in the decision list, not guard specificity, breaks ties.
type rule struct {
	name  string
	guard func(in Input, sig SignalSet) bool
	out   outcome
}

// decisionList is evaluated top to bottom and commits to the first match.
// The ordering is the core design artifact: a narrative can suggest a safety
// risk and a conduct issue at once, and priority decides which wins. Insert
// new rules at the priority they deserve rather than appending.
var decisionList = []rule{
	{
		name: "immediate safety risk",
		guard: func(in Input, sig SignalSet) bool {
			return in.ImmediateRisk == RiskImmediate || sig.Has(FactorImpairment)
		},
		out: outcome{
			category:   UrgentSafetyReview,
			confidence: 0.95,
			extraActions: []string{
				"initiate immediate practice review",
				"consider interim restriction",
			},
		},
	},
	{
		name: "patient or family notifier",
		guard: func(in Input, sig SignalSet) bool {
			return in.Source == SourcePatient
		},
		out: outcome{
			category:         ExternalAgencyReferral,
			confidence:       0.90,
			externalReferral: true,
		},
	},
	{
		name: "acute behavioural change",
		guard: func(in Input, sig SignalSet) bool {
			changed := in.RecentChange == ChangeSignificant || in.RecentChange == ChangeSudden
			return changed && sig.Has(FactorWellbeing)
		},
		out: outcome{
			category:   HealthPathwayReview,
			confidence: 0.85,
		},
	},
	{
		name: "patterned clinical failure",
		guard: func(in Input, sig SignalSet) bool {
			patterned := in.Pattern == PatternEstablished || in.Pattern == PatternEmerging
			return patterned && sig.Has(FactorClinicalErrors)
		},
		out: outcome{
			category:   PerformanceAssessment,
			confidence: 0.80,
		},
	},
	{
		name: "conduct concern at severity",
		guard: func(in Input, sig SignalSet) bool {
			return sig.Has(FactorConductConcern) && severityAtLeast(in.Severity, SeverityModerate)
		},
		out: outcome{
			category:   ProfessionalConductReview,
			confidence: 0.78,
		},
	},
	{
		name: "prescribing without examination",
		guard: func(in Input, sig SignalSet) bool {
			return sig.Has(FactorPrescribing) &&
				sig.Has(FactorExamOmitted) &&
				sig.Has(FactorDefensiveResponse)
		},
		out: outcome{
			category:   DualReferral,
			secondary:  PerformanceAssessment,
			confidence: 0.75,
		},
	},
	{
		name: "isolated minor, no signals",
		guard: func(in Input, sig SignalSet) bool {
			return in.Pattern == PatternIsolated &&
				in.Severity == SeverityMinor &&
				len(sig.Factors) == 0
		},
		out: outcome{
			category:   NoFurtherAction,
			confidence: 0.70,
		},
	},
	{
		name: "isolated minor",
		guard: func(in Input, sig SignalSet) bool {
			return in.Pattern == PatternIsolated && in.Severity == SeverityMinor
		},
		out: outcome{
			category:   EducationalGuidance,
			confidence: 0.60,
		},
	},
}

// fallbackOutcome covers ambiguous accounts and anything no rule claimed.
var fallbackOutcome = outcome{
	category:   NeedsFurtherInformation,
	confidence: 0.40,
}

// resolve walks the decision list and returns the first matching outcome.
// When nothing matches it returns the fallback with an empty rule name.
func resolve(in Input, sig SignalSet) (string, outcome) {
	for _, r := range decisionList {
		if r.guard(in, sig) {
			return r.name, r.out
		}
	}
	return "", fallbackOutcome
}
