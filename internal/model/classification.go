package model

// Severity represents how serious a case is, from minor to critical
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityCritical Severity = "critical"
)

// rank orders severities for comparison (minor < moderate < severe < critical)
func (s Severity) rank() int {
	switch s {
	case SeverityModerate:
		return 1
	case SeveritySevere:
		return 2
	case SeverityCritical:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether s is at least as severe as other
func (s Severity) AtLeast(other Severity) bool {
	return s.rank() >= other.rank()
}

// Domain distinguishes criminal matters from civil ones
type Domain string

const (
	DomainCriminal Domain = "criminal"
	DomainCivil    Domain = "civil"
	DomainMixed    Domain = "mixed"
)

// Classification is the pre-classifier's verdict for a case description.
// It is produced once per request and is immutable afterward; every
// downstream stage consumes it read-only.
type Classification struct {
	Category      string   `json:"category"`       // e.g. "Cyber Crime", "Theft", "General/Other"
	Severity      Severity `json:"severity"`       // minor, moderate, severe, critical
	Domain        Domain   `json:"domain"`         // criminal or civil
	KeywordsFound []string `json:"keywords_found"` // union of matched keywords across all firing patterns
	Confidence    float64  `json:"confidence"`     // fraction in [0,1]
}
