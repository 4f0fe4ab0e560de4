package model

// AssetContext tags whether a case concerns digital or physical property.
// The tag gates mutually exclusive statute families (IT Act vs IPC theft).
type AssetContext string

const (
	AssetDigital   AssetContext = "digital"
	AssetPhysical  AssetContext = "physical"
	AssetAmbiguous AssetContext = "ambiguous"
	AssetUnknown   AssetContext = "unknown"
)

// MoneyDisputeKind classifies a money dispute along the criminal/civil line
type MoneyDisputeKind string

const (
	MoneyCriminalCheating MoneyDisputeKind = "criminal_cheating"
	MoneyCivilBreach      MoneyDisputeKind = "civil_breach"
	MoneyExtortion        MoneyDisputeKind = "extortion"
	MoneyInsufficient     MoneyDisputeKind = "insufficient"
)

// MoneyClassification is the money-dispute verdict attached to every
// validation result. When the final section list is empty it tells the
// caller whether a civil-dispute response should be produced instead.
type MoneyClassification struct {
	Kind           MoneyDisputeKind `json:"classification"`
	Domain         Domain           `json:"domain"`
	PrimarySection string           `json:"primary_section,omitempty"`
	Reasoning      string           `json:"reasoning"`
}

// ValidationResult is the disqualification validator's output: the
// surviving sections plus the justification chain for everything removed
// or downgraded.
type ValidationResult struct {
	Sections          []CandidateSection  `json:"sections"`            // survivors, descending confidence
	Warnings          []string            `json:"warnings"`            // one per disqualified/downgraded section
	OverallConfidence float64             `json:"overall_confidence"`  // mean of survivors, 0 if none
	NeedsReview       bool                `json:"needs_review"`        // overall < 0.5 or no survivors
	AssetContext      AssetContext        `json:"asset_context"`
	Money             MoneyClassification `json:"money_classification"`
	RemovedCount      int                 `json:"removed_count"`
}

// Method tags how the final section list was produced.
const (
	MethodKeywordOnly      = "keyword_only"      // no providers configured
	MethodKeywordValidated = "keyword_validated" // providers unavailable, keywords validated
	MethodKeywordFallback  = "keyword_fallback"  // AI output unparseable, keywords rescued
	MethodHybridValidated  = "hybrid_validated"  // provider confirmed keyword candidates
	MethodAIOnly           = "ai_only"           // no keyword evidence, provider resolved
	MethodAINoSections     = "ai_no_sections"    // provider answered with zero sections
	MethodAIFailed         = "ai_failed"         // all providers exhausted
	MethodJSONParseFailed  = "json_parse_failed" // unrepairable output and no keyword fallback
)

// CaseNature is the provider's criminal/civil verdict for a case
type CaseNature string

const (
	CaseNatureCriminal     CaseNature = "criminal"
	CaseNatureCivil        CaseNature = "civil"
	CaseNatureMixed        CaseNature = "mixed"
	CaseNatureInsufficient CaseNature = "insufficient"
)

// Resolution is the terminal artifact of a resolve request. External
// collaborators (document generator, HTTP layer) consume it read-only.
type Resolution struct {
	Classification Classification     `json:"classification"`
	Sections       []CandidateSection `json:"sections"`
	Confidence     float64            `json:"confidence"`
	Method         string             `json:"method"`
	Warnings       []string           `json:"warnings"`
	ProviderUsed   string             `json:"provider_used,omitempty"`
	Validation     *ValidationResult  `json:"validation,omitempty"`
	CaseNature     CaseNature         `json:"case_nature,omitempty"`
	CivilMatter    bool               `json:"civil_matter"` // empty list + civil money verdict
	NeedsReview    bool               `json:"needs_review"`
}
