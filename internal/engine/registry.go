package engine

import "slices"

// Category is a regulatory review category code.
type Category string

// Review categories, richest taxonomy variant.
const (
	UrgentSafetyReview        Category = "urgent_safety_review"
	ExternalAgencyReferral    Category = "external_agency_referral"
	HealthPathwayReview       Category = "health_pathway_review"
	PerformanceAssessment     Category = "performance_assessment"
	ProfessionalConductReview Category = "professional_conduct_review"
	DualReferral              Category = "dual_referral"
	NoFurtherAction           Category = "no_further_action"
	EducationalGuidance       Category = "educational_guidance"
	NeedsFurtherInformation   Category = "needs_further_information"
)

// Definition describes a review category: the committee that owns it, the
// required action, the expected handling timeline, and its display priority.
// Definitions are constructed once at process start and never mutated.
type Definition struct {
	Code      Category `json:"code"`
	Label     string   `json:"label"`
	Committee string   `json:"committee"`
	Action    string   `json:"action"`
	Timeline  string   `json:"timeline"`
	Priority  int      `json:"priority"`
}

var registry = map[Category]Definition{
	UrgentSafetyReview: {
		Code:      UrgentSafetyReview,
		Label:     "Urgent Safety Review",
		Committee: "Urgent Response Panel",
		Action:    "Initiate immediate practice review",
		Timeline:  "24 hours",
		Priority:  1,
	},
	ExternalAgencyReferral: {
		Code:      ExternalAgencyReferral,
		Label:     "External Agency Referral",
		Committee: "Registrar's Office",
		Action:    "Refer to the external complaints agency",
		Timeline:  "5 working days",
		Priority:  2,
	},
	HealthPathwayReview: {
		Code:      HealthPathwayReview,
		Label:     "Health Pathway Review",
		Committee: "Health Committee",
		Action:    "Arrange a fitness-to-practise health assessment",
		Timeline:  "10 working days",
		Priority:  3,
	},
	PerformanceAssessment: {
		Code:      PerformanceAssessment,
		Label:     "Performance Assessment",
		Committee: "Performance Assessment Committee",
		Action:    "Schedule a structured competence review",
		Timeline:  "15 working days",
		Priority:  4,
	},
	ProfessionalConductReview: {
		Code:      ProfessionalConductReview,
		Label:     "Professional Conduct Review",
		Committee: "Professional Conduct Committee",
		Action:    "Open a professional standards investigation",
		Timeline:  "15 working days",
		Priority:  5,
	},
	DualReferral: {
		Code:      DualReferral,
		Label:     "Dual Referral",
		Committee: "Professional Conduct Committee",
		Action:    "Open conduct and competence reviews in parallel",
		Timeline:  "10 working days",
		Priority:  6,
	},
	NoFurtherAction: {
		Code:      NoFurtherAction,
		Label:     "No Further Action",
		Committee: "Triage Desk",
		Action:    "Close with a file note",
		Timeline:  "5 working days",
		Priority:  7,
	},
	EducationalGuidance: {
		Code:      EducationalGuidance,
		Label:     "Educational Guidance",
		Committee: "Education Committee",
		Action:    "Issue written educational guidance",
		Timeline:  "20 working days",
		Priority:  8,
	},
	NeedsFurtherInformation: {
		Code:      NeedsFurtherInformation,
		Label:     "Needs Further Information",
		Committee: "Triage Desk",
		Action:    "Request further detail from the notifier",
		Timeline:  "10 working days",
		Priority:  9,
	},
}

// Lookup resolves a category code to its definition. Unknown codes resolve to
// the needs-further-information definition; the fallback is a first-class
// registry row, so Lookup never fails.
func Lookup(code Category) Definition {
	if def, ok := registry[code]; ok {
		return def
	}
	return registry[NeedsFurtherInformation]
}

// Definitions returns every category definition ordered by display priority.
func Definitions() []Definition {
	defs := make([]Definition, 0, len(registry))
	for _, def := range registry {
		defs = append(defs, def)
	}
	slices.SortFunc(defs, func(a, b Definition) int {
		return a.Priority - b.Priority
	})
	return defs
}
