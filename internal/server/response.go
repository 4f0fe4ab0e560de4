package server

import (
	"fmt"
	"strings"

	"github.com/vidhisaar/vidhisaar/internal/model"
)

// SectionView is a CandidateSection shaped for API consumers: confidence
// as an integer percentage and the top hit flagged as primary.
type SectionView struct {
	Code            string   `json:"code"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Punishment      string   `json:"punishment"`
	Bailable        bool     `json:"bailable"`
	Cognizable      bool     `json:"cognizable"`
	Confidence      int      `json:"confidence"` // 0-100
	IsPrimary       bool     `json:"is_primary"`
	Reasoning       string   `json:"reasoning"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// AnalyzeResponse is the POST /api/v1/analyze payload.
type AnalyzeResponse struct {
	RequestID         string        `json:"request_id"`
	Role              string        `json:"role"`
	Sections          []SectionView `json:"sections"`
	Severity          string        `json:"severity"`
	MaxPunishment     string        `json:"max_punishment"`
	Bail              string        `json:"bail"`
	OverallConfidence int           `json:"overall_confidence"` // 0-100
	Summary           string        `json:"summary"`
	NextSteps         []string      `json:"next_steps"`
	Method            string        `json:"method"`
	CaseNature        string        `json:"case_nature,omitempty"`
	CivilMatter       bool          `json:"civil_matter"`
	NeedsReview       bool          `json:"needs_review"`
	Warnings          []string      `json:"warnings,omitempty"`
}

func buildAnalyzeResponse(requestID, role string, res *model.Resolution) AnalyzeResponse {
	if len(res.Sections) == 0 && res.CivilMatter {
		return civilResponse(requestID, role, res)
	}

	views := make([]SectionView, 0, len(res.Sections))
	for i, s := range res.Sections {
		views = append(views, SectionView{
			Code:            s.Code,
			Title:           s.Title,
			Description:     s.Description,
			Punishment:      s.Punishment,
			Bailable:        s.Bailable,
			Cognizable:      s.Cognizable,
			Confidence:      toPercent(s.Confidence),
			IsPrimary:       i == 0,
			Reasoning:       s.Reasoning,
			MatchedKeywords: s.KeyFactors,
		})
	}

	return AnalyzeResponse{
		RequestID:         requestID,
		Role:              role,
		Sections:          views,
		Severity:          determineSeverity(res.Sections),
		MaxPunishment:     maxPunishment(res.Sections),
		Bail:              bailStatus(res.Sections),
		OverallConfidence: toPercent(res.Confidence),
		Summary:           summarize(res),
		NextSteps:         nextSteps(res.Sections),
		Method:            res.Method,
		CaseNature:        string(res.CaseNature),
		CivilMatter:       false,
		NeedsReview:       res.NeedsReview,
		Warnings:          res.Warnings,
	}
}

// civilResponse is the shape returned when the resolver concludes the
// case is a money dispute with no criminal sections surviving. Filing an
// FIR for these gets rejected, so the guidance points at civil remedies.
func civilResponse(requestID, role string, res *model.Resolution) AnalyzeResponse {
	reason := "This appears to be a civil dispute, not a criminal matter."
	if res.Validation != nil && res.Validation.Money.Reasoning != "" {
		reason = res.Validation.Money.Reasoning
	}

	return AnalyzeResponse{
		RequestID: requestID,
		Role:      role,
		Sections: []SectionView{{
			Code:        "Civil Dispute",
			Title:       "Contract Breach / Money Recovery",
			Description: "This is a civil matter under the Indian Contract Act, 1872, not a criminal offense",
			Punishment:  "Civil remedies: court can order money recovery with interest",
			Bailable:    true,
			Cognizable:  false,
			Confidence:  85,
			IsPrimary:   true,
			Reasoning:   reason,
		}},
		Severity:          "Civil Matter (Not Criminal)",
		MaxPunishment:     "Civil remedies: court can order money recovery with interest",
		Bail:              "Not Applicable (Civil Case)",
		OverallConfidence: 85,
		Summary:           "Civil dispute, not a criminal case. " + reason + " This requires filing a civil suit for money recovery; police will likely reject an FIR for this matter.",
		NextSteps: []string{
			"Gather all documents: loan agreement, payment records, messages, bank statements",
			"Send a legal notice for money recovery before filing suit",
			"File a civil suit in the court appropriate for the amount in dispute",
			"Consult a civil lawyer specializing in money recovery",
			"Act within the limitation period (3 years from the date payment was due)",
			"Do not file an FIR; police reject criminal complaints for civil money disputes",
		},
		Method:      res.Method,
		CaseNature:  string(res.CaseNature),
		CivilMatter: true,
		NeedsReview: res.NeedsReview,
		Warnings:    res.Warnings,
	}
}

func toPercent(v float64) int {
	p := int(v*100 + 0.5)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// determineSeverity grades by the primary section's punishment text.
func determineSeverity(sections []model.CandidateSection) string {
	if len(sections) == 0 {
		return "Unknown"
	}
	punishment := strings.ToLower(sections[0].Punishment)
	switch {
	case strings.Contains(punishment, "life") || strings.Contains(punishment, "10 years"):
		return "Very High"
	case strings.Contains(punishment, "7 years"):
		return "High"
	case strings.Contains(punishment, "3 years") || strings.Contains(punishment, "5 years"):
		return "Moderate"
	}
	return "Low to Moderate"
}

func maxPunishment(sections []model.CandidateSection) string {
	if len(sections) == 0 {
		return "To be determined after legal review"
	}
	primary := sections[0]
	return fmt.Sprintf("%s: %s", primary.Code, primary.Punishment)
}

func bailStatus(sections []model.CandidateSection) string {
	if len(sections) == 0 {
		return "Not Applicable"
	}
	for _, s := range sections {
		if !s.Bailable {
			return "Non-Bailable"
		}
	}
	return "Bailable"
}

func summarize(res *model.Resolution) string {
	if len(res.Sections) == 0 {
		return "This situation requires professional legal consultation."
	}
	primary := res.Sections[0]
	category := res.Classification.Category
	lead := map[string]string{
		"Cyber Crime":             "This is a cyber crime case.",
		"Harassment/Intimidation": "This is a case of criminal intimidation.",
		"Theft":                   "This is a theft case.",
		"Financial Fraud":         "This is a financial fraud case.",
		"Assault":                 "This is an assault case.",
	}[category]
	if lead == "" {
		return fmt.Sprintf("Primary applicable section: %s - %s", primary.Code, primary.Title)
	}
	return fmt.Sprintf("%s Primary applicable section: %s - %s", lead, primary.Code, primary.Title)
}

// nextSteps builds guidance from the section mix: cyber sections route
// to the cyber cell, IPC sections to the station FIR desk.
func nextSteps(sections []model.CandidateSection) []string {
	steps := []string{
		"Document all evidence (messages, emails, photos, receipts)",
		"Write a detailed timeline with dates and times",
		"Do not delete any communication or evidence",
	}

	hasIT := false
	hasIPC := false
	hasNonBailable := false
	for _, s := range sections {
		if strings.HasPrefix(s.Code, "IT Act") {
			hasIT = true
		}
		if strings.HasPrefix(s.Code, "IPC") {
			hasIPC = true
		}
		if !s.Bailable {
			hasNonBailable = true
		}
	}

	switch {
	case hasIT:
		steps = append(steps,
			"File a complaint with the Cyber Crime Cell",
			"Take screenshots of all digital evidence",
			"Report the incident to the relevant platform",
			"Preserve all chat logs and communications",
		)
	case hasIPC:
		steps = append(steps,
			"File an FIR at the nearest police station",
			"Consult a criminal lawyer",
			"Gather witness statements if available",
		)
	}

	if hasNonBailable {
		steps = append(steps, "This includes non-bailable offenses; seek legal counsel immediately")
	}

	return steps
}
