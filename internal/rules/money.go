package rules

import (
	"strings"

	"github.com/vidhisaar/vidhisaar/internal/model"
)

// Money-dispute vocabularies. Order matters: a threat-based demand is
// extortion even when deception phrasing is also present.
var (
	extortionIndicators = []string{
		"threatening", "or else", "demanding money", "give money or", "pay or",
	}

	inceptionDeception = []string{
		"lied about", "false promise", "fake", "pretended", "forged", "deceived me",
	}

	moneyVocabulary = []string{
		"money", "rupees", "₹", "paid", "payment", "loan", "investment",
	}
)

// ClassifyMoneyDispute draws the criminal/civil line for money disputes.
// Extortion indicators win over deception indicators; with neither, the
// matter defaults to civil money recovery.
func ClassifyMoneyDispute(description string) model.MoneyClassification {
	desc := strings.ToLower(description)

	if containsAny(desc, extortionIndicators) {
		return model.MoneyClassification{
			Kind:           model.MoneyExtortion,
			Domain:         model.DomainCriminal,
			PrimarySection: "IPC 384",
			Reasoning:      "Threat-based money demand is extortion, not cheating",
		}
	}

	if containsAny(desc, inceptionDeception) {
		return model.MoneyClassification{
			Kind:           model.MoneyCriminalCheating,
			Domain:         model.DomainCriminal,
			PrimarySection: "IPC 420",
			Reasoning:      "Deception at the time of taking money is cheating",
		}
	}

	return model.MoneyClassification{
		Kind:      model.MoneyCivilBreach,
		Domain:    model.DomainCivil,
		Reasoning: "No deception at inception, civil money recovery",
	}
}

// HasMoneyVocabulary reports whether the description carries any
// generic financial vocabulary. Callers use it to decide whether a
// civil-breach money verdict is meaningful for this case at all.
func HasMoneyVocabulary(description string) bool {
	return containsAny(strings.ToLower(description), moneyVocabulary)
}

func containsAny(desc string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

func firstMatch(desc string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(desc, kw) {
			return kw, true
		}
	}
	return "", false
}
