// Package engine implements the notification classification engine for MediTriage.
// It provides lexical signal extraction, the category registry, the rule-priority
// resolver, and the bounded classification history used for display and audit.
package engine

import (
	"errors"
	"strings"
)

// Source identifies who raised a notification.
type Source string

// Notification sources.
const (
	SourcePatient    Source = "patient"
	SourceColleague  Source = "colleague"
	SourceEmployer   Source = "employer"
	SourceRegulatory Source = "regulatory"
	SourceSelf       Source = "self"
	SourceUnknown    Source = "unknown"
)

// Pattern describes how often the reported behavior has occurred.
type Pattern string

// Pattern answers. Unanswered is a valid resolver input, not an error.
const (
	PatternIsolated    Pattern = "isolated"
	PatternEmerging    Pattern = "emerging"
	PatternEstablished Pattern = "established"
	PatternUnanswered  Pattern = "unanswered"
)

// Severity grades the reported harm or potential harm.
type Severity string

// Severity answers.
const (
	SeverityMinor      Severity = "minor"
	SeverityModerate   Severity = "moderate"
	SeveritySerious    Severity = "serious"
	SeverityCritical   Severity = "critical"
	SeverityUnanswered Severity = "unanswered"
)

// RecentChange describes any recent shift in the practitioner's behavior.
type RecentChange string

// Recent change answers.
const (
	ChangeNone        RecentChange = "none"
	ChangeMinor       RecentChange = "minor"
	ChangeSignificant RecentChange = "significant"
	ChangeSudden      RecentChange = "sudden"
	ChangeUnanswered  RecentChange = "unanswered"
)

// ImmediateRisk captures the notifier's assessment of ongoing public risk.
type ImmediateRisk string

// Immediate risk answers.
const (
	RiskNone       ImmediateRisk = "none"
	RiskPotential  ImmediateRisk = "potential"
	RiskLikely     ImmediateRisk = "likely"
	RiskImmediate  ImmediateRisk = "immediate"
	RiskUnanswered ImmediateRisk = "unanswered"
)

// ErrBlankNarrative is the only error the engine produces. Classification
// never starts without narrative text; every other input, including fully
// unanswered triage questions, resolves through a designated default branch.
var ErrBlankNarrative = errors.New("notification narrative must not be blank")

// Input carries one notification into the resolver: the free-text narrative
// plus the structured triage answers collected alongside it.
type Input struct {
	Narrative     string        `json:"narrative"`
	Source        Source        `json:"source"`
	Pattern       Pattern       `json:"pattern"`
	Severity      Severity      `json:"severity"`
	RecentChange  RecentChange  `json:"recent_change"`
	ImmediateRisk ImmediateRisk `json:"immediate_risk"`
}

// Normalize maps unrecognized or empty enum values to their designated
// defaults. Absence of an answer is itself a signal the resolver branches on.
func (in *Input) Normalize() {
	in.Source = ParseSource(string(in.Source))
	in.Pattern = ParsePattern(string(in.Pattern))
	in.Severity = ParseSeverity(string(in.Severity))
	in.RecentChange = ParseRecentChange(string(in.RecentChange))
	in.ImmediateRisk = ParseImmediateRisk(string(in.ImmediateRisk))
}

// ParseSource maps a raw string to a Source, defaulting to unknown.
func ParseSource(s string) Source {
	switch Source(normalize(s)) {
	case SourcePatient, SourceColleague, SourceEmployer, SourceRegulatory, SourceSelf:
		return Source(normalize(s))
	default:
		return SourceUnknown
	}
}

// ParsePattern maps a raw string to a Pattern, defaulting to unanswered.
func ParsePattern(s string) Pattern {
	switch Pattern(normalize(s)) {
	case PatternIsolated, PatternEmerging, PatternEstablished:
		return Pattern(normalize(s))
	default:
		return PatternUnanswered
	}
}

// ParseSeverity maps a raw string to a Severity, defaulting to unanswered.
func ParseSeverity(s string) Severity {
	switch Severity(normalize(s)) {
	case SeverityMinor, SeverityModerate, SeveritySerious, SeverityCritical:
		return Severity(normalize(s))
	default:
		return SeverityUnanswered
	}
}

// ParseRecentChange maps a raw string to a RecentChange, defaulting to unanswered.
func ParseRecentChange(s string) RecentChange {
	switch RecentChange(normalize(s)) {
	case ChangeNone, ChangeMinor, ChangeSignificant, ChangeSudden:
		return RecentChange(normalize(s))
	default:
		return ChangeUnanswered
	}
}

// ParseImmediateRisk maps a raw string to an ImmediateRisk, defaulting to unanswered.
func ParseImmediateRisk(s string) ImmediateRisk {
	switch ImmediateRisk(normalize(s)) {
	case RiskNone, RiskPotential, RiskLikely, RiskImmediate:
		return ImmediateRisk(normalize(s))
	default:
		return RiskUnanswered
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// severityRank orders severity answers for at-least comparisons.
// Unanswered ranks below minor.
func severityRank(s Severity) int {
	switch s {
	case SeverityMinor:
		return 1
	case SeverityModerate:
		return 2
	case SeveritySerious:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

func severityAtLeast(s, floor Severity) bool {
	return severityRank(s) >= severityRank(floor)
}
