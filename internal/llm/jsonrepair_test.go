package llm

import (
	"testing"
)

func TestRepairJSON_DirectParse(t *testing.T) {
	input := `{"case_nature": "criminal", "overall_confidence": 0.8}`
	out, err := RepairJSON(input)
	if err != nil {
		t.Fatalf("RepairJSON: %v", err)
	}
	if out != input {
		t.Errorf("valid input was altered: %s", out)
	}
}

func TestRepairJSON_MarkdownFences(t *testing.T) {
	input := "```json\n{\"case_nature\": \"criminal\", \"primary_sections\": []}\n```"
	out, err := RepairJSON(input)
	if err != nil {
		t.Fatalf("RepairJSON: %v", err)
	}
	analysis, err := ParseAnalysis(out)
	if err != nil {
		t.Fatalf("ParseAnalysis: %v", err)
	}
	if analysis.CaseNature != "criminal" {
		t.Errorf("case_nature = %q, want criminal", analysis.CaseNature)
	}
}

func TestRepairJSON_ProseAroundObject(t *testing.T) {
	input := `Here is my analysis:
{"case_nature": "civil", "primary_sections": [], "overall_confidence": 0.6}
Let me know if you need more detail.`

	analysis, err := ParseAnalysis(input)
	if err != nil {
		t.Fatalf("ParseAnalysis: %v", err)
	}
	if analysis.CaseNature != "civil" {
		t.Errorf("case_nature = %q, want civil", analysis.CaseNature)
	}
	if analysis.OverallConfidence != 0.6 {
		t.Errorf("overall_confidence = %v, want 0.6", analysis.OverallConfidence)
	}
}

func TestRepairJSON_TrailingCommas(t *testing.T) {
	input := `{"case_nature": "criminal", "primary_sections": [{"code": "IPC 420", "confidence": 0.8,},],}`
	analysis, err := ParseAnalysis(input)
	if err != nil {
		t.Fatalf("ParseAnalysis: %v", err)
	}
	if len(analysis.PrimarySections) != 1 || analysis.PrimarySections[0].Code != "IPC 420" {
		t.Errorf("primary sections = %+v", analysis.PrimarySections)
	}
}

func TestRepairJSON_TruncatedOutput(t *testing.T) {
	// Response cut off mid-structure, as when max_tokens is hit.
	input := `{"case_nature": "criminal", "primary_sections": [{"code": "IT Act 66C", "confidence": 0.9`

	analysis, err := ParseAnalysis(input)
	if err != nil {
		t.Fatalf("ParseAnalysis: %v", err)
	}
	if analysis.CaseNature != "criminal" {
		t.Errorf("case_nature = %q, want criminal", analysis.CaseNature)
	}
	if len(analysis.PrimarySections) != 1 || analysis.PrimarySections[0].Code != "IT Act 66C" {
		t.Errorf("primary sections = %+v", analysis.PrimarySections)
	}
}

func TestRepairJSON_SalvageFromBrokenStructure(t *testing.T) {
	// Unbalanced quotes make full repair impossible; salvage still
	// recovers the scalar keys.
	input := `{"case_nature": "criminal", "broken: "yes, "overall_confidence": 0.75, "reasoning": "deception at inception"`

	analysis, err := ParseAnalysis(input)
	if err != nil {
		t.Fatalf("ParseAnalysis: %v", err)
	}
	if analysis.CaseNature != "criminal" {
		t.Errorf("case_nature = %q, want criminal", analysis.CaseNature)
	}
	if analysis.OverallConfidence != 0.75 {
		t.Errorf("overall_confidence = %v, want 0.75", analysis.OverallConfidence)
	}
}

func TestRepairJSON_Unrecoverable(t *testing.T) {
	inputs := []string{
		"",
		"I cannot analyze this case.",
		"404 service unavailable",
	}
	for _, input := range inputs {
		if out, err := RepairJSON(input); err == nil {
			t.Errorf("RepairJSON(%q) = %q, want error", input, out)
		}
	}
}
