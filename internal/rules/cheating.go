package rules

import (
	"fmt"
	"strings"
)

// cheatingCodes is the section family governed by the strict
// deception-at-inception test.
var cheatingCodes = []string{"IPC 420", "IPC 415"}

// The three essential elements of cheating. All must have positive
// keyword evidence; anti-keywords are explicit counter-evidence that
// rejects the section on its own.
var (
	deceptionKeywords     = []string{"lied", "false promise", "fake", "forged", "deceived", "misrepresented", "pretended"}
	deceptionAntiKeywords = []string{"didn't pay back", "asking more", "demanding double", "refuses to return"}

	intentionKeywords     = []string{"planned to cheat", "never intended", "knew it was false", "had ulterior motive", "guaranteed", "from the beginning"}
	intentionAntiKeywords = []string{"changed mind later", "business failed", "couldn't pay", "financial difficulty"}

	deliveryKeywords = []string{"gave money", "transferred", "paid", "delivered property", "handed over"}
)

// cheatingDisqualifier is a fact pattern that categorically rules the
// cheating sections out, naming the likely true classification.
type cheatingDisqualifier struct {
	pattern    string
	indicators []string
	reason     string
}

var cheatingDisqualifiers = []cheatingDisqualifier{
	{
		pattern:    "breach_of_contract",
		indicators: []string{"didn't pay back", "loan default", "business deal failed", "partnership dispute"},
		reason:     "civil breach of contract, not criminal cheating",
	},
	{
		pattern:    "post_transaction_demand",
		indicators: []string{"asking more now", "demanding double later", "changing terms after"},
		reason:     "no deception at inception, civil dispute or extortion (IPC 384)",
	},
	{
		pattern:    "simple_non_payment",
		indicators: []string{"borrowed and didn't return", "took loan and vanished", "didn't pay as agreed", "refuses to pay", "refuses to return"},
		reason:     "civil money recovery unless deception proven at time of borrowing",
	},
}

// CheatingVerdict is the outcome of the strict cheating test.
type CheatingVerdict struct {
	Applies      bool
	Confidence   float64
	Reasoning    string
	Missing      []string
	Alternatives []string
}

// EvaluateCheating runs the three-element test for the cheating section
// family: deception, dishonest intention from inception, and property
// delivery caused by that deception. Disqualifying fact patterns and
// explicit counter-evidence reject before the elements are counted, and
// the description must carry monetary vocabulary regardless of element
// count.
func EvaluateCheating(description string) CheatingVerdict {
	desc := strings.ToLower(description)

	for _, d := range cheatingDisqualifiers {
		if kw, ok := firstMatch(desc, d.indicators); ok {
			return CheatingVerdict{
				Applies:      false,
				Confidence:   0,
				Reasoning:    fmt.Sprintf("does not apply: %s (found %q)", d.reason, kw),
				Missing:      []string{"deception at inception"},
				Alternatives: []string{"Civil dispute (Indian Contract Act)", "IPC 384 (if threats present)"},
			}
		}
	}

	if containsAny(desc, deceptionAntiKeywords) || containsAny(desc, intentionAntiKeywords) {
		return CheatingVerdict{
			Applies:      false,
			Confidence:   0,
			Reasoning:    "no evidence of deception at inception, appears to be a civil dispute",
			Missing:      []string{"deception from beginning"},
			Alternatives: []string{"Civil recovery suit", "IPC 406 (if entrustment)", "IPC 384 (if extortion)"},
		}
	}

	if !containsAny(desc, moneyVocabulary) {
		return CheatingVerdict{
			Applies:      false,
			Confidence:   0,
			Reasoning:    "requires a financial or property element, no money mentioned",
			Missing:      []string{"monetary element"},
			Alternatives: []string{"IPC 503/506 (if threats)", "IPC 153A (if hate speech)"},
		}
	}

	hasDeception := containsAny(desc, deceptionKeywords)
	hasIntention := containsAny(desc, intentionKeywords)
	hasDelivery := containsAny(desc, deliveryKeywords)

	present := 0
	for _, ok := range []bool{hasDeception, hasIntention, hasDelivery} {
		if ok {
			present++
		}
	}

	switch {
	case present == 3:
		return CheatingVerdict{
			Applies:    true,
			Confidence: 0.88,
			Reasoning:  "all essential elements present: deception, dishonest intention from the start, and property delivery induced by fraud",
		}
	case present == 2:
		var missing []string
		if !hasDeception {
			missing = append(missing, "clear deception/false representation")
		}
		if !hasIntention {
			missing = append(missing, "dishonest intention from beginning")
		}
		if !hasDelivery {
			missing = append(missing, "property delivery because of fraud")
		}
		return CheatingVerdict{
			Applies:      false,
			Confidence:   0.35,
			Reasoning:    fmt.Sprintf("requirements not fully met, missing: %s", strings.Join(missing, ", ")),
			Missing:      missing,
			Alternatives: []string{"Needs more facts", "Consider civil remedies"},
		}
	default:
		return CheatingVerdict{
			Applies:      false,
			Confidence:   0,
			Reasoning:    "insufficient evidence, appears to be a civil matter",
			Missing:      []string{"deception", "dishonest intention", "induced delivery"},
			Alternatives: []string{"Civil dispute", "Legal notice", "IPC 503/506 if threats"},
		}
	}
}

// isCheatingCode reports whether the code belongs to the strictly
// tested cheating family.
func isCheatingCode(code string) bool {
	for _, c := range cheatingCodes {
		if c == code {
			return true
		}
	}
	return false
}
