package llm

import (
	"fmt"
	"strings"

	"github.com/vidhisaar/vidhisaar/internal/model"
)

// AnalysisSystemPrompt instructs the provider to perform statutory
// analysis and answer with JSON only. The schema mirrors AIAnalysis.
const AnalysisSystemPrompt = `You are a legal analyst specializing in Indian criminal and civil law (IPC, IT Act, POCSO, DV Act, SC/ST Act).

Analyze the case description and identify applicable statutory sections.

CRITICAL RULES:
1. Respond with a single JSON object and NOTHING else - no markdown, no prose outside the JSON.
2. Distinguish criminal offenses from civil disputes. Cheating (IPC 420) requires deception AT THE TIME money changed hands; simple non-payment of a loan is civil.
3. Digital credentials (accounts, passwords) are NOT movable property - never apply IPC 378/379/380 to account hacking. Use IT Act 66C/66D instead.
4. Reject sections that do not fit, with one-line reasoning.
5. Confidence values are fractions between 0 and 1.

JSON schema:
{
  "case_nature": "criminal" | "civil" | "mixed" | "insufficient",
  "primary_sections": [
    {"code": "IPC 420", "title": "...", "description": "...", "punishment": "...", "bailable": false, "cognizable": true, "confidence": 0.85, "reasoning": "...", "key_factors": ["..."]}
  ],
  "conditional_sections": [ ...same shape... ],
  "rejected_sections": [ {"code": "...", "reasoning": "..."} ],
  "overall_confidence": 0.8,
  "reasoning": "one paragraph"
}`

// BuildAnalysisPrompt produces the user prompt for AI-only resolution,
// when keyword matching found nothing.
func BuildAnalysisPrompt(description string, classification model.Classification) string {
	return fmt.Sprintf(`Case description:
%s

Pre-classification (keyword-based, low confidence):
- Category: %s
- Severity: %s
- Domain: %s

No statutory sections were matched by keyword rules. Perform a full analysis and return the JSON object.`,
		description, classification.Category, classification.Severity, classification.Domain)
}

// BuildReviewPrompt produces the user prompt for hybrid validation:
// the provider confirms or rejects keyword-matched candidates.
func BuildReviewPrompt(description string, classification model.Classification, candidates []model.CandidateSection) string {
	var list strings.Builder
	for _, c := range candidates {
		fmt.Fprintf(&list, "- %s: %s (confidence %.2f)\n", c.Code, c.Title, c.Confidence)
	}

	return fmt.Sprintf(`Case description:
%s

Pre-classification:
- Category: %s
- Severity: %s
- Domain: %s

Candidate sections from keyword matching:
%s
Review each candidate: keep it in primary_sections (adjusting confidence), move it to conditional_sections, or list it in rejected_sections with reasoning. Add sections the keyword rules missed if clearly applicable. Return the JSON object.`,
		description, classification.Category, classification.Severity, classification.Domain, list.String())
}
