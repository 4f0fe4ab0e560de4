package model

import "fmt"

// CandidateSection is a statutory section proposed for a case, either by
// the keyword matcher or by an AI provider. The validator may scale its
// confidence or remove it outright, but never rewrites code or title.
type CandidateSection struct {
	Code        string   `json:"code"`        // statute identifier, e.g. "IPC 420", "IT Act 66C"
	Title       string   `json:"title"`       // section title
	Description string   `json:"description"` // what the section covers
	Punishment  string   `json:"punishment"`  // punishment text
	Bailable    bool     `json:"bailable"`
	Cognizable  bool     `json:"cognizable"`
	Confidence  float64  `json:"confidence"`  // fraction in [0,1] after construction
	Reasoning   string   `json:"reasoning"`   // why this section applies
	KeyFactors  []string `json:"key_factors"` // matched keywords, truncated to 5
}

// maxKeyFactors bounds the key-factor list carried for display.
const maxKeyFactors = 5

// NewCandidateSection builds a CandidateSection, normalizing the confidence
// value exactly once. Producers are inconsistent about units: keyword tables
// emit fractions, AI providers sometimes emit percentage-like values. Any
// value >= 1 is treated as a percentage and divided by 100; the result is
// clamped to [0,1]. No later stage re-normalizes.
func NewCandidateSection(code, title, description, punishment string, bailable, cognizable bool, confidence float64, reasoning string, keyFactors []string) (CandidateSection, error) {
	if code == "" {
		return CandidateSection{}, fmt.Errorf("section code is required")
	}
	if title == "" {
		return CandidateSection{}, fmt.Errorf("section %s: title is required", code)
	}

	if len(keyFactors) > maxKeyFactors {
		keyFactors = keyFactors[:maxKeyFactors]
	}

	return CandidateSection{
		Code:        code,
		Title:       title,
		Description: description,
		Punishment:  punishment,
		Bailable:    bailable,
		Cognizable:  cognizable,
		Confidence:  NormalizeConfidence(confidence),
		Reasoning:   reasoning,
		KeyFactors:  keyFactors,
	}, nil
}

// NormalizeConfidence maps a producer confidence value to a fraction in
// [0,1]. Values >= 1 are treated as percentages.
func NormalizeConfidence(v float64) float64 {
	if v >= 1 {
		v = v / 100
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
