package match

// sectionDef is one matchable section definition inside a pattern group.
// Keywords trigger the section; exclusion keywords are a hard veto checked
// first. AssetType earns a confidence boost when it matches the detected
// asset context.
type sectionDef struct {
	Code              string
	Title             string
	Description       string
	Punishment        string
	Bailable          bool
	Cognizable        bool
	BaseConfidence    float64
	Keywords          []string
	ExclusionKeywords []string
	AssetType         AssetType
}

// Group keys, referenced from the category map below.
const (
	groupCyberIdentity   = "cyber_identity_theft"
	groupCyberBlackmail  = "cyber_blackmail"
	groupChildProtection = "child_protection"
	groupHarassment      = "bullying_harassment"
	groupDiscrimination  = "racism_discrimination"
	groupPhysicalTheft   = "physical_theft"
	groupAssault         = "assault"
	groupFinancialFraud  = "financial_fraud"
	groupSexualOffense   = "sexual_offenses"
	groupDomestic        = "domestic_violence"
	groupDefamation      = "defamation"
)

// sectionGroups maps each group key to its ordered section definitions.
// Digital theft and physical theft exclude each other at the lexical level
// here; the validator re-checks the same rule structurally.
var sectionGroups = map[string][]sectionDef{
	groupCyberIdentity: {
		{
			Code:           "IT Act 66C",
			Title:          "Punishment for identity theft",
			Description:    "Fraudulently using electronic signature, password or unique identification of another person",
			Punishment:     "Imprisonment up to 3 years and fine up to ₹1 lakh",
			Bailable:       true,
			Cognizable:     true,
			BaseConfidence: 0.92,
			Keywords:       []string{"instagram", "facebook", "twitter", "account", "hacked", "login", "password", "otp", "username", "profile"},
			AssetType:      AssetDigitalIdentity,
		},
		{
			Code:           "IT Act 66D",
			Title:          "Cheating by personation using computer resource",
			Description:    "Cheating by personation using computer resource or communication device",
			Punishment:     "Imprisonment up to 3 years and fine up to ₹1 lakh",
			Bailable:       true,
			Cognizable:     true,
			BaseConfidence: 0.85,
			Keywords:       []string{"impersonat", "fake post", "pretend", "posted as me", "messaging as me", "fake profile"},
			AssetType:      AssetDigitalIdentity,
		},
		{
			Code:           "IT Act 43",
			Title:          "Penalty for damage to computer, computer system, etc.",
			Description:    "Unauthorized access, download, extraction or damage to computer resource",
			Punishment:     "Compensation up to ₹1 crore (civil liability)",
			Bailable:       true,
			Cognizable:     false,
			BaseConfidence: 0.75,
			Keywords:       []string{"unauthorized access", "breach", "hacked into"},
			AssetType:      AssetDigitalData,
		},
	},
	groupCyberBlackmail: {
		{
			Code:           "IT Act 66E",
			Title:          "Punishment for violation of privacy",
			Description:    "Capturing, publishing or transmitting images of a private area without consent",
			Punishment:     "Imprisonment up to 3 years or fine up to ₹2 lakhs or both",
			Bailable:       true,
			Cognizable:     true,
			BaseConfidence: 0.88,
			Keywords:       []string{"private photos", "intimate photos", "morphed", "nudes", "leak photos"},
			AssetType:      AssetDigitalData,
		},
		{
			Code:           "IPC 384",
			Title:          "Punishment for extortion",
			Description:    "Putting a person in fear of injury to dishonestly induce delivery of property",
			Punishment:     "Imprisonment up to 3 years or fine or both",
			Bailable:       false,
			Cognizable:     true,
			BaseConfidence: 0.82,
			Keywords:       []string{"blackmail", "demanding money", "pay or", "or else", "sextortion", "unless i give", "unless i pay"},
			AssetType:      AssetFinancial,
		},
		{
			Code:           "IT Act 67",
			Title:          "Publishing obscene material in electronic form",
			Description:    "Publishing or transmitting obscene material in electronic form",
			Punishment:     "First: 3 years + ₹5L fine. Subsequent: 5 years + ₹10L fine",
			Bailable:       true,
			Cognizable:     true,
			BaseConfidence: 0.78,
			Keywords:       []string{"posted obscene", "shared obscene", "circulated photos", "uploaded photos"},
			AssetType:      AssetDigitalData,
		},
	},
	groupChildProtection: {
		{
			Code:           "POCSO 7",
			Title:          "Sexual assault",
			Description:    "Sexual assault on a child involving physical contact",
			Punishment:     "Imprisonment not less than 3 years, may extend to 5 years + fine",
			Bailable:       false,
			Cognizable:     true,
			BaseConfidence: 0.90,
			Keywords:       []string{"touched child", "molested child", "assaulted minor", "touched my daughter", "touched my son"},
			AssetType:      AssetNone,
		},
		{
			Code:           "POCSO 11",
			Title:          "Sexual harassment of child",
			Description:    "Sexual harassment of a child, including showing pornography and stalking",
			Punishment:     "Imprisonment up to 3 years and fine",
			Bailable:       true,
			Cognizable:     true,
			BaseConfidence: 0.85,
			Keywords:       []string{"child", "minor", "underage"},
			AssetType:      AssetNone,
		},
		{
			Code:           "IT Act 67B",
			Title:          "Publishing child sexual abuse material",
			Description:    "Publishing or transmitting material depicting children in sexually explicit act",
			Punishment:     "First: 5 years + ₹10L fine. Subsequent: 7 years + ₹10L fine",
			Bailable:       false,
			Cognizable:     true,
			BaseConfidence: 0.88,
			Keywords:       []string{"child photos online", "minor photos shared", "child abuse material"},
			AssetType:      AssetDigitalData,
		},
	},
	groupHarassment: {
		{
			Code:           "IPC 503",
			Title:          "Criminal intimidation",
			Description:    "Threatening someone with injury to person, reputation or property",
			Punishment:     "Imprisonment up to 2 years or fine or both",
			Bailable:       true,
			Cognizable:     true,
			BaseConfidence: 0.80,
			Keywords:       []string{"intimidat", "threaten", "fear", "scare"},
			AssetType:      AssetNone,
		},
		{
			Code:           "IPC 506",
			Title:          "Punishment for criminal intimidation",
			Description:    "Threat to cause death or grievous hurt",
			Punishment:     "Imprisonment up to 7 years or fine or both",
			Bailable:       false,
			Cognizable:     true,
			BaseConfidence: 0.75,
			Keywords:       []string{"death threat", "kill", "murder"},
			AssetType:      AssetNone,
		},
	},
	groupDiscrimination: {
		{
			Code:           "IPC 153A",
			Title:          "Promoting enmity between different groups",
			Description:    "Promoting enmity on grounds of religion, race, place of birth, residence, language",
			Punishment:     "Imprisonment up to 3 years or fine or both",
			Bailable:       false,
			Cognizable:     true,
			BaseConfidence: 0.85,
			Keywords:       []string{"racism", "caste", "religion", "hate", "communal"},
			AssetType:      AssetNone,
		},
		{
			Code:           "SC/ST Act 3(1)(r)",
			Title:          "Intentional insult or intimidation to humiliate SC/ST member",
			Description:    "Intentional insult or intimidation with intent to humiliate a member of SC/ST in public view",
			Punishment:     "Imprisonment from 6 months to 5 years and fine",
			Bailable:       false,
			Cognizable:     true,
			BaseConfidence: 0.80,
			Keywords:       []string{"caste slur", "casteist", "humiliated publicly", "caste name"},
			AssetType:      AssetNone,
		},
	},
	groupPhysicalTheft: {
		{
			Code:              "IPC 379",
			Title:             "Punishment for theft",
			Description:       "Dishonestly taking movable physical property out of possession without consent",
			Punishment:        "Imprisonment up to 3 years or fine or both",
			Bailable:          true,
			Cognizable:        true,
			BaseConfidence:    0.90,
			Keywords:          []string{"stole phone", "stole wallet", "stole laptop", "stole bag", "theft", "pickpocket", "stolen jewelry", "snatched"},
			ExclusionKeywords: []string{"instagram", "facebook", "twitter", "account", "hacked", "login", "password", "online"},
			AssetType:         AssetPhysical,
		},
		{
			Code:              "IPC 380",
			Title:             "Theft in dwelling house",
			Description:       "Theft in any building, tent or vessel used as a human dwelling",
			Punishment:        "Imprisonment up to 7 years and fine",
			Bailable:          false,
			Cognizable:        true,
			BaseConfidence:    0.82,
			Keywords:          []string{"broke into my house", "stole from my home", "burglary", "house theft"},
			ExclusionKeywords: []string{"instagram", "facebook", "account", "hacked", "online"},
			AssetType:         AssetPhysical,
		},
	},
	groupAssault: {
		{
			Code:           "IPC 323",
			Title:          "Punishment for voluntarily causing hurt",
			Description:    "Causing bodily pain, disease or infirmity",
			Punishment:     "Imprisonment up to 1 year or fine up to ₹1000 or both",
			Bailable:       true,
			Cognizable:     true,
			BaseConfidence: 0.85,
			Keywords:       []string{"hit", "punch", "slap", "hurt", "beat", "kicked"},
			AssetType:      AssetNone,
		},
		{
			Code:           "IPC 325",
			Title:          "Punishment for voluntarily causing grievous hurt",
			Description:    "Causing serious injury like fracture or permanent disfiguration",
			Punishment:     "Imprisonment up to 7 years and fine",
			Bailable:       false,
			Cognizable:     true,
			BaseConfidence: 0.75,
			Keywords:       []string{"serious injury", "fracture", "grievous", "broken bone"},
			AssetType:      AssetNone,
		},
	},
	groupFinancialFraud: {
		{
			Code:              "IPC 420",
			Title:             "Cheating and dishonestly inducing delivery of property",
			Description:       "Deceiving someone to deliver money or property through fraud",
			Punishment:        "Imprisonment up to 7 years and fine",
			Bailable:          false,
			Cognizable:        true,
			BaseConfidence:    0.85,
			Keywords:          []string{"fraud money", "cheated money", "scam money", "investment fraud", "paid and didn't deliver", "fake investment", "false promise"},
			ExclusionKeywords: []string{"instagram", "facebook", "account", "hacked"},
			AssetType:         AssetFinancial,
		},
		{
			Code:           "IPC 406",
			Title:          "Punishment for criminal breach of trust",
			Description:    "Dishonest misappropriation or conversion of property entrusted",
			Punishment:     "Imprisonment up to 3 years or fine or both",
			Bailable:       true,
			Cognizable:     true,
			BaseConfidence: 0.78,
			Keywords:       []string{"entrusted", "misappropriated", "gave for safekeeping", "refused to return my property"},
			AssetType:      AssetFinancial,
		},
		{
			Code:           "IPC 468",
			Title:          "Forgery for purpose of cheating",
			Description:    "Forgery of a document intending that it be used for cheating",
			Punishment:     "Imprisonment up to 7 years and fine",
			Bailable:       false,
			Cognizable:     true,
			BaseConfidence: 0.80,
			Keywords:       []string{"forged", "fake document", "fabricated", "fake signature"},
			AssetType:      AssetNone,
		},
	},
	groupSexualOffense: {
		{
			Code:           "IPC 354",
			Title:          "Assault or criminal force to woman with intent to outrage her modesty",
			Description:    "Assault or use of criminal force on a woman with intent to outrage her modesty",
			Punishment:     "Imprisonment from 1 to 5 years and fine",
			Bailable:       false,
			Cognizable:     true,
			BaseConfidence: 0.85,
			Keywords:       []string{"molest", "groped", "modesty", "inappropriate touch"},
			AssetType:      AssetNone,
		},
		{
			Code:           "IPC 354A",
			Title:          "Sexual harassment",
			Description:    "Physical contact, demand for sexual favours, sexually coloured remarks",
			Punishment:     "Imprisonment up to 3 years or fine or both",
			Bailable:       true,
			Cognizable:     true,
			BaseConfidence: 0.80,
			Keywords:       []string{"sexual remarks", "demanded favours", "showed pornography", "obscene"},
			AssetType:      AssetNone,
		},
		{
			Code:           "IPC 354D",
			Title:          "Stalking",
			Description:    "Following a woman and contacting or attempting contact despite clear disinterest",
			Punishment:     "First conviction: up to 3 years + fine. Subsequent: up to 5 years + fine",
			Bailable:       true,
			Cognizable:     true,
			BaseConfidence: 0.82,
			Keywords:       []string{"stalking", "stalked", "following me", "keeps following"},
			AssetType:      AssetNone,
		},
	},
	groupDomestic: {
		{
			Code:           "DV Act 3",
			Title:          "Definition of domestic violence",
			Description:    "Physical, sexual, verbal, emotional, and economic abuse within a domestic relationship",
			Punishment:     "Civil remedy - protection orders, residence orders, monetary relief",
			Bailable:       true,
			Cognizable:     true,
			BaseConfidence: 0.85,
			Keywords:       []string{"husband beats", "in-laws", "domestic violence", "marital abuse"},
			AssetType:      AssetNone,
		},
		{
			Code:           "Dowry Act 4",
			Title:          "Penalty for demanding dowry",
			Description:    "Demanding dowry directly or indirectly",
			Punishment:     "Imprisonment from 6 months to 2 years and fine up to ₹10,000",
			Bailable:       false,
			Cognizable:     true,
			BaseConfidence: 0.85,
			Keywords:       []string{"dowry", "demanding dowry"},
			AssetType:      AssetNone,
		},
	},
	groupDefamation: {
		{
			Code:           "IPC 500",
			Title:          "Punishment for defamation",
			Description:    "Harming the reputation of another by words, signs or visible representations",
			Punishment:     "Simple imprisonment up to 2 years or fine or both",
			Bailable:       true,
			Cognizable:     false,
			BaseConfidence: 0.78,
			Keywords:       []string{"defam", "false rumours", "spreading lies", "ruined my reputation"},
			AssetType:      AssetNone,
		},
	},
}

// categoryGroups maps pre-classifier categories to the pattern groups to
// consult, in order. Theft checks cyber first: the matcher decides cyber
// vs physical, not the pre-classifier.
var categoryGroups = map[string][]string{
	"Cyber Crime":                 {groupCyberIdentity, groupCyberBlackmail},
	"Child Protection":            {groupChildProtection, groupSexualOffense},
	"Harassment/Intimidation":     {groupHarassment, groupCyberBlackmail},
	"Hate Speech/Discrimination":  {groupDiscrimination},
	"Theft":                       {groupCyberIdentity, groupPhysicalTheft},
	"Assault":                     {groupAssault},
	"Financial Fraud":             {groupFinancialFraud},
	"Sexual Offense":              {groupSexualOffense, groupChildProtection},
	"Domestic Violence":           {groupDomestic, groupAssault},
	"Defamation":                  {groupDefamation},
}

// genericCategories are fallback labels with no direct mapping; for these
// every group is scanned.
var genericCategories = map[string]bool{
	"General/Other": true,
	"General":       true,
}

// ReferencedCodes returns every section code the matcher tables can emit.
// The pipeline validates these against the statute catalog at startup.
func ReferencedCodes() []string {
	seen := make(map[string]bool)
	var codes []string
	for _, defs := range sectionGroups {
		for _, def := range defs {
			if !seen[def.Code] {
				seen[def.Code] = true
				codes = append(codes, def.Code)
			}
		}
	}
	return codes
}
