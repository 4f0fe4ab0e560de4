package match

import (
	"strings"
	"testing"

	"github.com/vidhisaar/vidhisaar/internal/model"
)

func classificationFor(category string) model.Classification {
	return model.Classification{
		Category:   category,
		Severity:   model.SeverityModerate,
		Domain:     model.DomainCriminal,
		Confidence: 0.8,
	}
}

func TestDetectAssetType(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        AssetType
	}{
		{"digital identity", "someone hacked my instagram account and changed the password", AssetDigitalIdentity},
		{"physical", "a man snatched my wallet and phone near the station", AssetPhysical},
		{"financial", "I paid money for an investment and the bank shows nothing", AssetFinancial},
		{"none", "he shouted at me in the street", AssetNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectAssetType(tt.description); got != tt.want {
				t.Errorf("DetectAssetType(%q) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}

func TestDetectAssetType_PrecedenceTieBreak(t *testing.T) {
	// One digital-identity hit and one physical hit: digital wins.
	got := DetectAssetType("my phone has my instagram on it")
	if got != AssetDigitalIdentity {
		t.Errorf("tie-break: got %q, want %q", got, AssetDigitalIdentity)
	}
}

func TestMatcher_Match_DigitalTheftExcludesPhysical(t *testing.T) {
	m := NewMatcher(5)
	desc := "Someone stole my instagram account, they hacked the login and changed my password"

	sections := m.Match(desc, classificationFor("Theft"))
	if len(sections) == 0 {
		t.Fatal("expected at least one section")
	}
	if sections[0].Code != "IT Act 66C" {
		t.Errorf("top section = %s, want IT Act 66C", sections[0].Code)
	}
	for _, s := range sections {
		if strings.HasPrefix(s.Code, "IPC 379") || strings.HasPrefix(s.Code, "IPC 380") {
			t.Errorf("physical theft section %s leaked into a digital case", s.Code)
		}
	}
}

func TestMatcher_Match_PhysicalTheft(t *testing.T) {
	m := NewMatcher(5)
	desc := "A man on a bike snatched my bag, this theft happened outside the market"

	sections := m.Match(desc, classificationFor("Theft"))
	if len(sections) == 0 {
		t.Fatal("expected at least one section")
	}
	if sections[0].Code != "IPC 379" {
		t.Errorf("top section = %s, want IPC 379", sections[0].Code)
	}
	for _, s := range sections {
		if strings.HasPrefix(s.Code, "IT Act") {
			t.Errorf("IT Act section %s matched a purely physical theft", s.Code)
		}
	}
}

func TestMatcher_Match_AssetBoostCapped(t *testing.T) {
	m := NewMatcher(5)
	// IPC 379 base 0.90, physical asset agreement adds 0.05.
	desc := "someone committed theft of my wallet"

	sections := m.Match(desc, classificationFor("Theft"))
	if len(sections) == 0 {
		t.Fatal("expected a match")
	}
	if sections[0].Code != "IPC 379" {
		t.Fatalf("top section = %s, want IPC 379", sections[0].Code)
	}
	if sections[0].Confidence != 0.95 {
		t.Errorf("boosted confidence = %v, want 0.95", sections[0].Confidence)
	}
}

func TestMatcher_Match_NoBoostWithoutAssetAgreement(t *testing.T) {
	m := NewMatcher(5)
	// Blackmail with no financial vocabulary: IPC 384 keeps its base.
	desc := "he is trying to blackmail me with my private photos"

	sections := m.Match(desc, classificationFor("Cyber Crime"))
	for _, s := range sections {
		if s.Code == "IPC 384" && s.Confidence != 0.82 {
			t.Errorf("IPC 384 confidence = %v, want base 0.82", s.Confidence)
		}
	}
}

func TestMatcher_Match_DigitalIdentityOverridesCategory(t *testing.T) {
	m := NewMatcher(5)
	// Pre-classified as harassment, but the asset signals say digital
	// identity: the cyber identity group must be consulted first.
	desc := "Someone is using my profile photo and username to harass my friends"

	sections := m.Match(desc, classificationFor("Harassment/Intimidation"))
	if len(sections) == 0 {
		t.Fatal("expected at least one section")
	}
	if sections[0].Code != "IT Act 66C" {
		t.Errorf("top section = %s, want IT Act 66C from the cyber identity group", sections[0].Code)
	}
}

func TestMatcher_Match_CivilCategoryReturnsNil(t *testing.T) {
	m := NewMatcher(5)
	desc := "my landlord will not return the deposit as per our agreement"

	if sections := m.Match(desc, classificationFor("Contract Dispute")); sections != nil {
		t.Errorf("civil category returned %d sections, want none", len(sections))
	}
}

func TestMatcher_Match_GenericCategoryScansAllGroups(t *testing.T) {
	m := NewMatcher(5)
	desc := "he hit me and then threatened to kill me"

	sections := m.Match(desc, classificationFor("General/Other"))
	codes := make(map[string]bool)
	for _, s := range sections {
		codes[s.Code] = true
	}
	if !codes["IPC 323"] {
		t.Error("expected IPC 323 from generic scan")
	}
	if !codes["IPC 506"] {
		t.Error("expected IPC 506 from generic scan")
	}
}

func TestMatcher_Match_OrderedAndBounded(t *testing.T) {
	m := NewMatcher(2)
	desc := "he hit me, threatened to kill me, and tried to intimidate me with a death threat"

	sections := m.Match(desc, classificationFor("General/Other"))
	if len(sections) > 2 {
		t.Fatalf("got %d sections, want at most 2", len(sections))
	}
	for i := 1; i < len(sections); i++ {
		if sections[i].Confidence > sections[i-1].Confidence {
			t.Errorf("sections not ordered by descending confidence at index %d", i)
		}
	}
}

func TestReferencedCodes_Unique(t *testing.T) {
	codes := ReferencedCodes()
	if len(codes) == 0 {
		t.Fatal("no referenced codes")
	}
	seen := make(map[string]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("duplicate code %s", code)
		}
		seen[code] = true
	}
}
