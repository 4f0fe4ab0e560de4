package classify

import (
	"testing"

	"github.com/vidhisaar/vidhisaar/internal/model"
)

func TestClassifier_Classify_CyberCrime(t *testing.T) {
	c := NewClassifier()

	result := c.Classify("My instagram account was hacked and someone changed my password")

	if result.Category != "Cyber Crime" {
		t.Errorf("Category = %q, want Cyber Crime", result.Category)
	}
	if result.Domain != model.DomainCriminal {
		t.Errorf("Domain = %q, want criminal", result.Domain)
	}
	if result.Confidence < 0.5 {
		t.Errorf("Confidence = %v, want >= 0.5 for a firing pattern", result.Confidence)
	}
	if len(result.KeywordsFound) == 0 {
		t.Error("Expected matched keywords")
	}
}

func TestClassifier_Classify_Floor(t *testing.T) {
	c := NewClassifier()

	result := c.Classify("Something unusual happened yesterday evening")

	if result.Category != "General/Other" {
		t.Errorf("Category = %q, want General/Other", result.Category)
	}
	if result.Severity != model.SeverityMinor {
		t.Errorf("Severity = %q, want minor", result.Severity)
	}
	if result.Confidence != 0.3 {
		t.Errorf("Confidence = %v, want floor 0.3", result.Confidence)
	}
	if len(result.KeywordsFound) != 0 {
		t.Errorf("KeywordsFound = %v, want empty", result.KeywordsFound)
	}
}

func TestClassifier_Classify_TierPriority(t *testing.T) {
	c := NewClassifier()

	// Matches both tier-1 cyber_identity_theft ("account", "hacked") and
	// tier-3 theft ("stole"). The lower tier must win.
	result := c.Classify("They hacked my account and stole my data")

	if result.Category != "Cyber Crime" {
		t.Errorf("Category = %q, want tier-1 Cyber Crime to outrank Theft", result.Category)
	}
}

func TestClassifier_Classify_ChildProtectionOutranksAll(t *testing.T) {
	c := NewClassifier()

	result := c.Classify("A minor child was threatened and beaten near the school")

	if result.Category != "Child Protection" {
		t.Errorf("Category = %q, want Child Protection", result.Category)
	}
	if result.Severity != model.SeverityCritical {
		t.Errorf("Severity = %q, want critical", result.Severity)
	}
}

func TestClassifier_Classify_ConfidenceCap(t *testing.T) {
	c := NewClassifier()

	// All keywords of a pattern present: strength 1.0, confidence capped at 0.95
	result := c.Classify("property land house ownership boundary")

	if result.Confidence != 0.95 {
		t.Errorf("Confidence = %v, want cap 0.95", result.Confidence)
	}
	if result.Domain != model.DomainCivil {
		t.Errorf("Domain = %q, want civil for property dispute", result.Domain)
	}
}

func TestClassifier_Classify_KeywordUnion(t *testing.T) {
	c := NewClassifier()

	// Fires theft and cyber patterns; keywords-found is the union, not
	// just the winner's matches.
	result := c.Classify("stole my password")

	hasStole, hasPassword := false, false
	for _, kw := range result.KeywordsFound {
		switch kw {
		case "stole":
			hasStole = true
		case "password":
			hasPassword = true
		}
	}
	if !hasStole || !hasPassword {
		t.Errorf("KeywordsFound = %v, want union containing both 'stole' and 'password'", result.KeywordsFound)
	}
}
