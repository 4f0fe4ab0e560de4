package llm

import (
	"encoding/json"
	"fmt"
)

// AIAnalysis is the structured verdict a provider returns. Field names
// match the schema in AnalysisSystemPrompt.
type AIAnalysis struct {
	CaseNature          string       `json:"case_nature"`
	PrimarySections     []AISection  `json:"primary_sections"`
	ConditionalSections []AISection  `json:"conditional_sections"`
	RejectedSections    []AIRejected `json:"rejected_sections"`
	OverallConfidence   float64      `json:"overall_confidence"`
	Reasoning           string       `json:"reasoning"`
}

// AISection is one proposed section in a provider verdict. Confidence
// may arrive as a fraction or a percentage-like value; the caller
// normalizes it when constructing a CandidateSection.
type AISection struct {
	Code        string   `json:"code"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Punishment  string   `json:"punishment"`
	Bailable    bool     `json:"bailable"`
	Cognizable  bool     `json:"cognizable"`
	Confidence  float64  `json:"confidence"`
	Reasoning   string   `json:"reasoning"`
	KeyFactors  []string `json:"key_factors"`
}

// AIRejected is a section the provider considered and ruled out.
type AIRejected struct {
	Code      string `json:"code"`
	Reasoning string `json:"reasoning"`
}

// ParseAnalysis parses provider output into an AIAnalysis, applying
// progressively more lenient repair strategies. It fails only when no
// strategy yields a usable structure.
func ParseAnalysis(text string) (*AIAnalysis, error) {
	repaired, err := RepairJSON(text)
	if err != nil {
		return nil, fmt.Errorf("parse analysis: %w", err)
	}

	var analysis AIAnalysis
	if err := json.Unmarshal([]byte(repaired), &analysis); err != nil {
		return nil, fmt.Errorf("parse analysis: %w", err)
	}
	return &analysis, nil
}
