package arbiter

import (
	"context"
	"errors"
	"testing"

	"github.com/vidhisaar/vidhisaar/internal/llm"
	"github.com/vidhisaar/vidhisaar/internal/match"
	"github.com/vidhisaar/vidhisaar/internal/model"
	"github.com/vidhisaar/vidhisaar/internal/rules"
)

// MockProvider is a configurable fake for testing the fallback chain
type MockProvider struct {
	name      string
	response  string
	err       error
	available bool
	calls     int
}

func (m *MockProvider) Name() string { return m.name }

func (m *MockProvider) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "mock-model", TokensUsed: 10}, nil
}

func (m *MockProvider) IsAvailable(ctx context.Context) bool { return m.available }

func newArbiter(providers ...llm.Provider) *Arbiter {
	return New(providers, match.NewMatcher(5), rules.NewValidator(0, 0))
}

func cyberClassification() model.Classification {
	return model.Classification{
		Category:   "Cyber Crime",
		Severity:   model.SeverityModerate,
		Domain:     model.DomainCriminal,
		Confidence: 0.9,
	}
}

func mustCandidate(t *testing.T, code, title string, confidence float64) model.CandidateSection {
	t.Helper()
	s, err := model.NewCandidateSection(code, title, "", "", true, true, confidence, "keyword match", nil)
	if err != nil {
		t.Fatalf("NewCandidateSection(%s): %v", code, err)
	}
	return s
}

const validAnalysis = `{
	"case_nature": "criminal",
	"primary_sections": [
		{"code": "IT Act 66C", "title": "Punishment for identity theft", "confidence": 0.9, "reasoning": "account takeover", "key_factors": ["hacked", "password"]}
	],
	"overall_confidence": 0.9,
	"reasoning": "digital identity theft"
}`

func TestArbiter_NoProviders_KeywordOnly(t *testing.T) {
	a := newArbiter()
	desc := "someone hacked my instagram account and changed the password"
	candidates := []model.CandidateSection{
		mustCandidate(t, "IT Act 66C", "Punishment for identity theft", 0.92),
	}

	res := a.Resolve(context.Background(), desc, cyberClassification(), candidates)
	if res.Method != model.MethodKeywordOnly {
		t.Errorf("method = %q, want %q", res.Method, model.MethodKeywordOnly)
	}
	if len(res.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(res.Sections))
	}
}

func TestArbiter_NoProvidersNoCandidates(t *testing.T) {
	a := newArbiter()

	res := a.Resolve(context.Background(), "something unclassifiable happened", model.Classification{
		Category: "General/Other", Severity: model.SeverityMinor, Domain: model.DomainCriminal, Confidence: 0.3,
	}, nil)

	if res.Method != model.MethodKeywordOnly {
		t.Errorf("method = %q, want %q", res.Method, model.MethodKeywordOnly)
	}
	if len(res.Sections) != 0 || res.Confidence != 0 {
		t.Errorf("sections = %d, confidence = %v; want empty, 0", len(res.Sections), res.Confidence)
	}
	if !res.NeedsReview {
		t.Error("expected needs-review")
	}
}

func TestArbiter_AIOnly_Success(t *testing.T) {
	mock := &MockProvider{name: "openai", response: validAnalysis}
	a := newArbiter(mock)
	desc := "someone hacked my instagram account and changed the password"

	res := a.Resolve(context.Background(), desc, cyberClassification(), nil)
	if res.Method != model.MethodAIOnly {
		t.Errorf("method = %q, want %q", res.Method, model.MethodAIOnly)
	}
	if res.ProviderUsed != "openai" {
		t.Errorf("provider = %q, want openai", res.ProviderUsed)
	}
	if res.CaseNature != model.CaseNatureCriminal {
		t.Errorf("case nature = %q, want criminal", res.CaseNature)
	}
	if len(res.Sections) != 1 || res.Sections[0].Code != "IT Act 66C" {
		t.Fatalf("sections = %+v, want IT Act 66C", res.Sections)
	}
}

func TestArbiter_FallsThroughFailedProvider(t *testing.T) {
	failing := &MockProvider{name: "openai", err: errors.New("timeout")}
	working := &MockProvider{name: "anthropic", response: validAnalysis}
	a := newArbiter(failing, working)
	desc := "someone hacked my instagram account and changed the password"

	res := a.Resolve(context.Background(), desc, cyberClassification(), nil)
	if failing.calls != 1 {
		t.Errorf("failing provider called %d times, want 1", failing.calls)
	}
	if res.ProviderUsed != "anthropic" {
		t.Errorf("provider = %q, want anthropic", res.ProviderUsed)
	}
	found := false
	for _, w := range res.Warnings {
		if w == "provider openai unavailable" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing provider-failure warning in %v", res.Warnings)
	}
}

func TestArbiter_AllProvidersFail(t *testing.T) {
	a := newArbiter(
		&MockProvider{name: "openai", err: errors.New("timeout")},
		&MockProvider{name: "ollama", err: errors.New("connection refused")},
	)

	res := a.Resolve(context.Background(), "something unmatchable", cyberClassification(), nil)
	if res.Method != model.MethodAIFailed {
		t.Errorf("method = %q, want %q", res.Method, model.MethodAIFailed)
	}
	if len(res.Sections) != 0 || res.Confidence != 0 {
		t.Errorf("sections = %d, confidence = %v; want empty, 0", len(res.Sections), res.Confidence)
	}
	if !res.NeedsReview {
		t.Error("expected needs-review")
	}
}

func TestArbiter_UnparseableOutput_KeywordFallback(t *testing.T) {
	mock := &MockProvider{name: "ollama", response: "I think this is probably identity theft but I am not sure."}
	a := newArbiter(mock)
	// Keyword evidence exists, so the fallback matcher rescues it.
	desc := "someone hacked my instagram account and changed the password"

	res := a.Resolve(context.Background(), desc, cyberClassification(), nil)
	if res.Method != model.MethodKeywordFallback {
		t.Fatalf("method = %q, want %q", res.Method, model.MethodKeywordFallback)
	}
	want := 0.9 * 0.7
	if diff := res.Confidence - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("confidence = %v, want %v", res.Confidence, want)
	}
	if len(res.Sections) == 0 {
		t.Error("fallback should recover keyword sections")
	}
}

func TestArbiter_UnparseableOutput_NoKeywordEvidence(t *testing.T) {
	mock := &MockProvider{name: "ollama", response: "cannot answer in the requested format"}
	a := newArbiter(mock)

	res := a.Resolve(context.Background(), "nothing matches here", model.Classification{
		Category: "General/Other", Severity: model.SeverityMinor, Domain: model.DomainCriminal, Confidence: 0.3,
	}, nil)
	if res.Method != model.MethodJSONParseFailed {
		t.Errorf("method = %q, want %q", res.Method, model.MethodJSONParseFailed)
	}
	if !res.NeedsReview {
		t.Error("expected needs-review")
	}
}

func TestArbiter_AINoSections(t *testing.T) {
	mock := &MockProvider{name: "openai", response: `{
		"case_nature": "civil",
		"primary_sections": [],
		"overall_confidence": 0.7,
		"reasoning": "contract dispute, no criminal section applies"
	}`}
	a := newArbiter(mock)

	res := a.Resolve(context.Background(), "unreturned security deposit disagreement", cyberClassification(), nil)
	if res.Method != model.MethodAINoSections {
		t.Errorf("method = %q, want %q", res.Method, model.MethodAINoSections)
	}
	if res.CaseNature != model.CaseNatureCivil {
		t.Errorf("case nature = %q, want civil", res.CaseNature)
	}
	if len(res.Sections) != 0 {
		t.Errorf("sections = %+v, want empty", res.Sections)
	}
}

func TestArbiter_Hybrid_ProviderConfirms(t *testing.T) {
	mock := &MockProvider{name: "openai", response: validAnalysis}
	a := newArbiter(mock)
	desc := "someone hacked my instagram account and changed the password"
	candidates := []model.CandidateSection{
		mustCandidate(t, "IT Act 66C", "Punishment for identity theft", 0.92),
		mustCandidate(t, "IT Act 43", "Penalty for damage to computer", 0.75),
	}

	res := a.Resolve(context.Background(), desc, cyberClassification(), candidates)
	if res.Method != model.MethodHybridValidated {
		t.Errorf("method = %q, want %q", res.Method, model.MethodHybridValidated)
	}
	// Provider kept only 66C; its verdict replaces the candidate set.
	if len(res.Sections) != 1 || res.Sections[0].Code != "IT Act 66C" {
		t.Fatalf("sections = %+v, want only IT Act 66C", res.Sections)
	}
}

func TestArbiter_Hybrid_ProviderDown_KeywordValidated(t *testing.T) {
	mock := &MockProvider{name: "openai", err: errors.New("connection refused")}
	a := newArbiter(mock)
	desc := "someone hacked my instagram account and changed the password"
	candidates := []model.CandidateSection{
		mustCandidate(t, "IT Act 66C", "Punishment for identity theft", 0.92),
	}

	res := a.Resolve(context.Background(), desc, cyberClassification(), candidates)
	if res.Method != model.MethodKeywordValidated {
		t.Errorf("method = %q, want %q", res.Method, model.MethodKeywordValidated)
	}
	if len(res.Sections) != 1 || res.Sections[0].Code != "IT Act 66C" {
		t.Fatalf("sections = %+v, want IT Act 66C", res.Sections)
	}
}

func TestArbiter_ProviderSectionsAreRevalidated(t *testing.T) {
	// Provider wrongly proposes physical theft for a digital case;
	// the validator must veto it.
	mock := &MockProvider{name: "openai", response: `{
		"case_nature": "criminal",
		"primary_sections": [
			{"code": "IPC 379", "title": "Punishment for theft", "confidence": 0.9, "reasoning": "theft of account"}
		],
		"overall_confidence": 0.9,
		"reasoning": "theft"
	}`}
	a := newArbiter(mock)
	desc := "someone hacked my instagram account login and changed the password"

	res := a.Resolve(context.Background(), desc, cyberClassification(), nil)
	for _, s := range res.Sections {
		if s.Code == "IPC 379" {
			t.Error("validator failed to veto IPC 379 in a digital context")
		}
	}
	if !res.NeedsReview {
		t.Error("empty survivor list should set needs-review")
	}
}

func TestArbiter_MalformedSectionDiscarded(t *testing.T) {
	mock := &MockProvider{name: "openai", response: `{
		"case_nature": "criminal",
		"primary_sections": [
			{"code": "", "title": "missing code", "confidence": 0.9},
			{"code": "IT Act 66C", "title": "Punishment for identity theft", "confidence": 95, "reasoning": "hacked account"}
		],
		"overall_confidence": 0.9,
		"reasoning": "identity theft"
	}`}
	a := newArbiter(mock)
	desc := "someone hacked my instagram account and changed the password"

	res := a.Resolve(context.Background(), desc, cyberClassification(), nil)
	if len(res.Sections) != 1 || res.Sections[0].Code != "IT Act 66C" {
		t.Fatalf("sections = %+v, want only IT Act 66C", res.Sections)
	}
	// Percentage-style confidence must arrive normalized.
	if res.Sections[0].Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", res.Sections[0].Confidence)
	}
}
