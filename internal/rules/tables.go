// Package rules is the disqualification validator: hard legal rules that
// prune, downgrade or reject candidate sections regardless of how they
// were produced. Keyword matches and AI suggestions pass through the
// same rules; nothing bypasses them.
package rules

// exclusionRules declares mutually-exclusive section pairs. Digital
// credentials are not movable property under the physical theft
// sections, and vice versa, so the presence of one family excludes
// the other.
var exclusionRules = map[string][]string{
	"IT Act 66C": {"IPC 379", "IPC 378", "IPC 380"},
	"IT Act 66D": {"IPC 379", "IPC 378"},
	"IT Act 43":  {"IPC 379"},
	"IPC 379":    {"IT Act 66C", "IT Act 66D", "IT Act 43"},
	"IPC 378":    {"IT Act 66C", "IT Act 66D", "IT Act 43"},
}

// The table above declares some pairs one-directionally (IPC 380 has no
// entry of its own). Exclusion must hold no matter which side of a pair
// the validator keeps first, so the reverse edges are filled in here.
func init() {
	type edge struct{ from, to string }
	var reverse []edge
	for code, excluded := range exclusionRules {
		for _, ex := range excluded {
			back := false
			for _, b := range exclusionRules[ex] {
				if b == code {
					back = true
					break
				}
			}
			if !back {
				reverse = append(reverse, edge{ex, code})
			}
		}
	}
	for _, e := range reverse {
		exclusionRules[e.from] = append(exclusionRules[e.from], e.to)
	}
}

// Context detection vocabularies. The validator detects asset context
// independently of the matcher because it also sees AI-produced sections
// that never went through keyword matching.
var (
	digitalContext = []string{
		"instagram", "facebook", "twitter", "snapchat", "whatsapp",
		"account", "hacked", "login", "password", "otp", "username",
		"profile", "social media", "online", "website", "app",
	}

	physicalContext = []string{
		"phone stolen", "wallet stolen", "laptop stolen", "bag taken",
		"pickpocket", "grabbed", "snatched", "took from",
	}
)

// physicalTheftCodes are vetoed outright in a digital asset context.
var physicalTheftCodes = map[string]bool{
	"IPC 379": true,
	"IPC 378": true,
	"IPC 380": true,
}

// sectionRequirement gates a section on typical-indicator keywords.
// Blockers remove the section outright; a missing required keyword only
// downgrades it.
type sectionRequirement struct {
	required []string
	blocking []string
	summary  string
}

var sectionRequirements = map[string]sectionRequirement{
	"IPC 406": {
		required: []string{"entrust", "property", "possession", "trust", "gave"},
		blocking: []string{"bullying", "harassment", "stolen", "took without"},
		summary:  "breach of trust requires entrustment",
	},
	"IPC 468": {
		required: []string{"document", "signature", "forge", "fake", "fabricated"},
		blocking: []string{"verbal", "spoken", "said"},
		summary:  "forgery requires document manipulation",
	},
	"IPC 379": {
		required: []string{"phone", "wallet", "laptop", "bag", "jewelry", "watch", "bike", "car"},
		blocking: []string{"instagram", "facebook", "account", "hacked", "login", "password"},
		summary:  "theft requires movable physical property",
	},
	"IT Act 66C": {
		required: []string{"instagram", "facebook", "account", "hacked", "login", "password", "otp"},
		blocking: []string{"phone stolen", "wallet stolen", "laptop stolen"},
		summary:  "identity theft requires digital credentials",
	},
}

// GovernedCodes returns every section code the validator tables
// reference. The pipeline checks these against the statute catalog at
// startup so a typo in a rule fails fast instead of silently never
// firing.
func GovernedCodes() []string {
	seen := make(map[string]bool)
	var codes []string
	add := func(code string) {
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}
	for code, excluded := range exclusionRules {
		add(code)
		for _, ex := range excluded {
			add(ex)
		}
	}
	for code := range physicalTheftCodes {
		add(code)
	}
	for code := range sectionRequirements {
		add(code)
	}
	for _, code := range cheatingCodes {
		add(code)
	}
	return codes
}
