// Package classify maps a raw case description to a best-fit category,
// severity and legal domain using a priority-tiered keyword table.
package classify

import (
	"sort"
	"strings"

	"github.com/vidhisaar/vidhisaar/internal/model"
)

// pattern is one named entry in the classification table. Tier encodes the
// hard-coded legal severity ordering: lower tier = more urgent. The
// ordering determines which matcher tables are consulted downstream, so
// protect-the-vulnerable signals outrank generic theft and contract signals.
type pattern struct {
	name     string
	tier     int
	keywords []string
	category string
	severity model.Severity
	domain   model.Domain
}

// Classifier pre-classifies case descriptions. It never fails: an
// unmatched description gets the floor classification.
type Classifier struct {
	patterns []pattern
}

// NewClassifier creates a classifier with the built-in pattern table
func NewClassifier() *Classifier {
	return &Classifier{
		patterns: []pattern{
			// Tier 1: offenses against minors and coercive cyber offenses
			{
				name:     "child_sexual_offense",
				tier:     1,
				keywords: []string{"child", "minor", "under 18", "underage", "school girl", "school boy"},
				category: "Child Protection",
				severity: model.SeverityCritical,
				domain:   model.DomainCriminal,
			},
			{
				name:     "cyber_blackmail",
				tier:     1,
				keywords: []string{"blackmail", "private photos", "intimate photos", "leak photos", "morphed", "sextortion", "nudes"},
				category: "Cyber Crime",
				severity: model.SeverityCritical,
				domain:   model.DomainCriminal,
			},
			{
				name:     "cyber_identity_theft",
				tier:     1,
				keywords: []string{"instagram", "facebook", "twitter", "snapchat", "account", "hacked", "login", "password", "otp"},
				category: "Cyber Crime",
				severity: model.SeverityModerate,
				domain:   model.DomainCriminal,
			},
			{
				name:     "cyber_fraud",
				tier:     1,
				keywords: []string{"online scam", "upi fraud", "phishing", "fake website", "cyber fraud"},
				category: "Cyber Crime",
				severity: model.SeveritySevere,
				domain:   model.DomainCriminal,
			},
			// Tier 2: violence, coercion and targeted abuse
			{
				name:     "assault",
				tier:     2,
				keywords: []string{"hit", "punch", "kicked", "slapped", "beat", "assault", "attack", "hurt"},
				category: "Assault",
				severity: model.SeveritySevere,
				domain:   model.DomainCriminal,
			},
			{
				name:     "bullying_harassment",
				tier:     2,
				keywords: []string{"bully", "harass", "intimidat", "threaten", "fear", "scare"},
				category: "Harassment/Intimidation",
				severity: model.SeverityModerate,
				domain:   model.DomainCriminal,
			},
			{
				name:     "racism_discrimination",
				tier:     2,
				keywords: []string{"racism", "racist", "caste", "casteism", "religion", "hate", "communal"},
				category: "Hate Speech/Discrimination",
				severity: model.SeveritySevere,
				domain:   model.DomainCriminal,
			},
			{
				name:     "sexual_harassment",
				tier:     2,
				keywords: []string{"molest", "groped", "stalking", "stalked", "obscene", "modesty", "inappropriate touch"},
				category: "Sexual Offense",
				severity: model.SeveritySevere,
				domain:   model.DomainCriminal,
			},
			{
				name:     "domestic_violence",
				tier:     2,
				keywords: []string{"husband beats", "in-laws", "dowry", "domestic violence", "marital abuse"},
				category: "Domestic Violence",
				severity: model.SeveritySevere,
				domain:   model.DomainCriminal,
			},
			{
				name:     "financial_fraud",
				tier:     2,
				keywords: []string{"fraud money", "cheated money", "scam money", "investment", "didn't pay", "loan"},
				category: "Financial Fraud",
				severity: model.SeveritySevere,
				domain:   model.DomainCriminal,
			},
			// Tier 3: property offenses (matcher decides cyber vs physical)
			{
				name:     "theft",
				tier:     3,
				keywords: []string{"stole", "stolen", "theft", "steal", "took", "missing phone", "pickpocket"},
				category: "Theft",
				severity: model.SeverityModerate,
				domain:   model.DomainCriminal,
			},
			// Tier 4: reputation
			{
				name:     "defamation",
				tier:     4,
				keywords: []string{"defam", "false rumours", "spreading lies", "ruined my reputation"},
				category: "Defamation",
				severity: model.SeverityMinor,
				domain:   model.DomainCriminal,
			},
			// Tier 5: civil disputes
			{
				name:     "property_dispute",
				tier:     5,
				keywords: []string{"property", "land", "house", "ownership", "boundary"},
				category: "Property Dispute",
				severity: model.SeverityMinor,
				domain:   model.DomainCivil,
			},
			{
				name:     "contract_dispute",
				tier:     5,
				keywords: []string{"agreement", "contract", "breach of contract", "refund", "deposit not returned", "borrowed", "refuses to pay"},
				category: "Contract Dispute",
				severity: model.SeverityMinor,
				domain:   model.DomainCivil,
			},
		},
	}
}

// firing records a pattern that matched, with its match strength
type firing struct {
	p        pattern
	strength float64
	matched  []string
}

// Classify returns the best-fit classification for a description.
// Winner selection: lowest tier first, ties broken by highest match
// strength. Keywords-found is the union across all firing patterns.
func (c *Classifier) Classify(description string) model.Classification {
	desc := strings.ToLower(description)

	var firings []firing
	seen := make(map[string]bool)
	var allKeywords []string

	for _, p := range c.patterns {
		var matched []string
		for _, kw := range p.keywords {
			if strings.Contains(desc, kw) {
				matched = append(matched, kw)
				if !seen[kw] {
					seen[kw] = true
					allKeywords = append(allKeywords, kw)
				}
			}
		}
		if len(matched) > 0 {
			firings = append(firings, firing{
				p:        p,
				strength: float64(len(matched)) / float64(len(p.keywords)),
				matched:  matched,
			})
		}
	}

	if len(firings) == 0 {
		return model.Classification{
			Category:      "General/Other",
			Severity:      model.SeverityMinor,
			Domain:        model.DomainCriminal,
			KeywordsFound: []string{},
			Confidence:    0.3,
		}
	}

	sort.SliceStable(firings, func(i, j int) bool {
		if firings[i].p.tier != firings[j].p.tier {
			return firings[i].p.tier < firings[j].p.tier
		}
		return firings[i].strength > firings[j].strength
	})
	best := firings[0]

	confidence := best.strength + 0.5
	if confidence > 0.95 {
		confidence = 0.95
	}

	return model.Classification{
		Category:      best.p.category,
		Severity:      best.p.severity,
		Domain:        best.p.domain,
		KeywordsFound: allKeywords,
		Confidence:    confidence,
	}
}
