package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vidhisaar/vidhisaar/internal/model"
)

// Default thresholds, used when the caller passes non-positive values.
const (
	defaultConfidenceFloor = 0.3
	defaultReviewBelow     = 0.5
)

// requirementPenalty downgrades a section missing its typical
// indicators. The guard below keeps the penalty from compounding when a
// result is re-validated, so validation is idempotent.
const (
	requirementPenalty = 0.4
	downgradeCeiling   = 0.4
)

// Validator applies the hard disqualification rules to a candidate
// section list. It is a pure function of (description, sections,
// classification): no I/O, safe for concurrent use.
type Validator struct {
	confidenceFloor float64 // drop sections at or below this after all adjustments
	reviewBelow     float64 // flag the result when the mean falls under this
}

// NewValidator creates a Validator with the given confidence floor and
// needs-review threshold. Non-positive values fall back to the defaults.
func NewValidator(confidenceFloor, reviewBelow float64) *Validator {
	if confidenceFloor <= 0 {
		confidenceFloor = defaultConfidenceFloor
	}
	if reviewBelow <= 0 {
		reviewBelow = defaultReviewBelow
	}
	return &Validator{confidenceFloor: confidenceFloor, reviewBelow: reviewBelow}
}

// Validate prunes, downgrades or rejects candidate sections. Hard
// disqualifiers (mutual exclusion, blockers, the strict cheating test,
// the asset-context veto) run before the soft confidence floor, so a
// section that must be flatly rejected can never survive at reduced
// confidence. Input sections are never mutated.
func (v *Validator) Validate(description string, sections []model.CandidateSection, classification model.Classification) model.ValidationResult {
	desc := strings.ToLower(description)

	assetContext := DetectAssetContext(description)
	money := ClassifyMoneyDispute(description)

	// Higher-confidence sections claim their exclusions first, so of a
	// conflicting pair exactly one survives.
	ordered := make([]model.CandidateSection, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Confidence > ordered[j].Confidence
	})

	var survivors []model.CandidateSection
	var warnings []string
	removed := 0
	excludedCodes := make(map[string]string)
	seen := make(map[string]bool)

	for _, section := range ordered {
		if seen[section.Code] {
			removed++
			warnings = append(warnings, fmt.Sprintf("%s removed: duplicate candidate", section.Code))
			continue
		}
		seen[section.Code] = true

		if byCode, conflicting := excludedCodes[section.Code]; conflicting {
			removed++
			warnings = append(warnings, fmt.Sprintf("%s removed: conflicts with %s", section.Code, byCode))
			continue
		}

		if isCheatingCode(section.Code) {
			verdict := EvaluateCheating(description)
			if !verdict.Applies {
				removed++
				warnings = append(warnings, fmt.Sprintf("%s removed: %s", section.Code, verdict.Reasoning))
				if len(verdict.Alternatives) > 0 {
					warnings = append(warnings, fmt.Sprintf("%s alternatives: %s", section.Code, strings.Join(verdict.Alternatives, ", ")))
				}
				continue
			}
			section.Confidence = verdict.Confidence
			section.Reasoning = verdict.Reasoning
		} else if req, governed := sectionRequirements[section.Code]; governed {
			if blocker, blocked := firstMatch(desc, req.blocking); blocked {
				removed++
				warnings = append(warnings, fmt.Sprintf("%s removed: %s, found %q", section.Code, req.summary, blocker))
				continue
			}
			if !containsAny(desc, req.required) && section.Confidence > downgradeCeiling {
				section.Confidence *= requirementPenalty
				warnings = append(warnings, fmt.Sprintf("%s downgraded: %s, typical indicators missing", section.Code, req.summary))
			}
		}

		switch assetContext {
		case model.AssetDigital:
			if physicalTheftCodes[section.Code] {
				removed++
				warnings = append(warnings, fmt.Sprintf("%s removed: case involves digital assets, not physical property", section.Code))
				continue
			}
		case model.AssetPhysical:
			if strings.HasPrefix(section.Code, "IT Act") {
				removed++
				warnings = append(warnings, fmt.Sprintf("%s removed: case involves physical assets, not a cyber offense", section.Code))
				continue
			}
		}

		if section.Confidence <= v.confidenceFloor {
			removed++
			warnings = append(warnings, fmt.Sprintf("%s removed: confidence too low (%.2f)", section.Code, section.Confidence))
			continue
		}

		survivors = append(survivors, section)
		for _, ex := range exclusionRules[section.Code] {
			if _, present := excludedCodes[ex]; !present {
				excludedCodes[ex] = section.Code
			}
		}
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].Confidence > survivors[j].Confidence
	})

	overall := 0.0
	if len(survivors) > 0 {
		for _, s := range survivors {
			overall += s.Confidence
		}
		overall /= float64(len(survivors))
	}

	return model.ValidationResult{
		Sections:          survivors,
		Warnings:          warnings,
		OverallConfidence: overall,
		NeedsReview:       overall < v.reviewBelow || len(survivors) == 0,
		AssetContext:      assetContext,
		Money:             money,
		RemovedCount:      removed,
	}
}

// DetectAssetContext tags the case digital or physical. A clear margin
// is required to pick a side when both vocabularies score; otherwise
// the context stays ambiguous, and unknown when neither scores at all.
func DetectAssetContext(description string) model.AssetContext {
	desc := strings.ToLower(description)

	digital := 0
	for _, kw := range digitalContext {
		if strings.Contains(desc, kw) {
			digital++
		}
	}
	physical := 0
	for _, kw := range physicalContext {
		if strings.Contains(desc, kw) {
			physical++
		}
	}

	switch {
	case digital == 0 && physical == 0:
		return model.AssetUnknown
	case digital > 0 && physical == 0:
		return model.AssetDigital
	case physical > 0 && digital == 0:
		return model.AssetPhysical
	case digital > physical*2:
		return model.AssetDigital
	case physical > digital*2:
		return model.AssetPhysical
	default:
		return model.AssetAmbiguous
	}
}
