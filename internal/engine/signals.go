package engine

import "strings"

// Sentiment is the coarse tone label derived from keyword counts.
type Sentiment string

// Sentiment labels.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentMixed    Sentiment = "mixed"
	SentimentNeutral  Sentiment = "neutral"
)

// Contextual factor labels produced by the signal detectors.
const (
	FactorRepeatedPattern     = "repeated pattern"
	FactorTemporalProgression = "temporal progression"
	FactorMixedAssessment     = "mixed assessment"
	FactorImpairment          = "impairment indicators"
	FactorWellbeing           = "wellbeing concern"
	FactorClinicalErrors      = "clinical errors"
	FactorConductConcern      = "conduct concern"
	FactorPrescribing         = "prescribing concern"
	FactorExamOmitted         = "examination omitted"
	FactorDefensiveResponse   = "defensive response"
	FactorAmbiguousAccount    = "ambiguous account"
)

// SignalSet holds the contextual factors detected in a narrative, in detector
// declaration order, plus the overall sentiment label. Factors never repeat:
// detection is existence-based.
type SignalSet struct {
	Factors   []string  `json:"factors"`
	Sentiment Sentiment `json:"sentiment"`
}

// Has reports whether the named factor was detected.
func (s SignalSet) Has(factor string) bool {
	for _, f := range s.Factors {
		if f == factor {
			return true
		}
	}
	return false
}

type detector struct {
	factor string
	match  func(text string) bool
}

// Token sets for the detectors. Matching is plain substring containment over
// the lowercased narrative; punctuation and whitespace are preserved so that
// multi-word phrases match as written.
var (
	recurrenceTokens = []string{"again", "repeat", "keeps", "recurr", "every time"}
	countTokens      = []string{"times", "multiple", "several", "twice", "pattern", "always"}

	initialStateTokens       = []string{"initially", "at first", "to begin with", "originally"}
	subsequentContrastTokens = []string{"but then", "later", "eventually", "after that", "since then"}

	contrastConjunctions  = []string{" but ", " however", " although", " though"}
	positiveQualityTokens = []string{"good", "thorough", "correct", "helpful", "competent", "kind", "caring"}

	impairmentTokens = []string{
		"impaired", "intoxicated", "drunk", "slurred", "unsteady", "shaking",
		"smell of alcohol", "smelled of alcohol", "substance", "erratic", "unstable",
	}
	wellbeingTokens = []string{
		"tired", "exhausted", "stressed", "burnt out", "burned out", "overwhelmed",
		"distracted", "unwell", "mental health", "struggling", "withdrawn",
	}
	errorTokens = []string{
		"error", "mistake", "misdiagnos", "wrong", "incorrect", "failed",
		"negligen", "incompetent", "overlooked", "missed",
	}
	conductTokens = []string{
		"rude", "dismissive", "unprofessional", "disrespectful", "inappropriate",
		"boundary", "boundaries", "harass", "hostile", "aggressive", "condescending",
	}
	prescribingTokens = []string{"prescri", "medication", "script"}
	examOmittedTokens = []string{
		"without examining", "without an examination", "didn't examine",
		"did not examine", "no examination", "never examined", "without seeing",
	}
	defensiveTokens = []string{
		"defensive", "refused to listen", "dismissed my concerns",
		"would not discuss", "brushed off",
	}
	ambiguityTokens = []string{"not sure", "maybe", "possibly", "might be", "unclear", "hard to say"}

	negativeKeywords = []string{
		"rude", "dismissive", "angry", "worse", "pain", "failed", "wrong",
		"hurt", "ignored", "unprofessional", "scared", "worried", "upset",
		"frustrated", "dangerous",
	}
	positiveKeywords = []string{
		"good", "great", "helpful", "thorough", "kind", "caring", "correct",
		"excellent", "attentive", "improved", "reassur",
	}
)

// detectors run in declaration order; each appends at most one factor.
// The detectors are independent: any subset may fire for a given narrative.
var detectors = []detector{
	{FactorRepeatedPattern, func(t string) bool {
		return containsAny(t, recurrenceTokens) && containsAny(t, countTokens)
	}},
	{FactorTemporalProgression, func(t string) bool {
		return containsAny(t, initialStateTokens) && containsAny(t, subsequentContrastTokens)
	}},
	{FactorMixedAssessment, func(t string) bool {
		return containsAny(t, contrastConjunctions) && containsAny(t, positiveQualityTokens)
	}},
	{FactorImpairment, func(t string) bool { return containsAny(t, impairmentTokens) }},
	{FactorWellbeing, func(t string) bool { return containsAny(t, wellbeingTokens) }},
	{FactorClinicalErrors, func(t string) bool { return containsAny(t, errorTokens) }},
	{FactorConductConcern, func(t string) bool { return containsAny(t, conductTokens) }},
	{FactorPrescribing, func(t string) bool { return containsAny(t, prescribingTokens) }},
	{FactorExamOmitted, func(t string) bool { return containsAny(t, examOmittedTokens) }},
	{FactorDefensiveResponse, func(t string) bool { return containsAny(t, defensiveTokens) }},
	{FactorAmbiguousAccount, func(t string) bool { return containsAny(t, ambiguityTokens) }},
}

// Extract scans a narrative for the fixed detector and sentiment keyword sets.
// It is a pure function: an empty or keyword-free narrative yields an empty
// factor set and neutral sentiment, never an error.
func Extract(narrative string) SignalSet {
	text := strings.ToLower(narrative)

	set := SignalSet{Factors: []string{}}
	for _, d := range detectors {
		if d.match(text) {
			set.Factors = append(set.Factors, d.factor)
		}
	}

	set.Sentiment = scoreSentiment(text)
	return set
}

// scoreSentiment counts each keyword at most once regardless of how often it
// repeats in the text, then compares the negative and positive totals.
func scoreSentiment(text string) Sentiment {
	negative := countPresent(text, negativeKeywords)
	positive := countPresent(text, positiveKeywords)

	switch {
	case negative > positive:
		return SentimentNegative
	case positive > negative:
		return SentimentPositive
	case negative == 0:
		return SentimentNeutral
	default:
		return SentimentMixed
	}
}

func countPresent(text string, keywords []string) int {
	count := 0
	for _, k := range keywords {
		if strings.Contains(text, k) {
			count++
		}
	}
	return count
}

func containsAny(text string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			return true
		}
	}
	return false
}
