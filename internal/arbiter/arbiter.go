// Package arbiter sends candidate sections (or the raw case, when no
// keyword evidence exists) to external providers for confirmation,
// with ordered fallback and JSON repair. Whatever a provider answers
// is re-run through the disqualification validator; AI judgment never
// bypasses the hard rules.
package arbiter

import (
	"context"
	"fmt"
	"os"

	"github.com/vidhisaar/vidhisaar/internal/llm"
	"github.com/vidhisaar/vidhisaar/internal/match"
	"github.com/vidhisaar/vidhisaar/internal/model"
	"github.com/vidhisaar/vidhisaar/internal/rules"
)

// analysisTemperature keeps provider sampling nearly deterministic.
const analysisTemperature = 0.2

// fallbackDeflation scales the pre-classifier's confidence when the
// keyword matcher rescues an unparseable provider response.
const fallbackDeflation = 0.7

// Arbiter runs the provider fallback chain and final validation.
// Safe for concurrent use; all fields are set at construction.
type Arbiter struct {
	providers []llm.Provider
	matcher   *match.Matcher
	validator *rules.Validator
	limiter   *Limiter
	verbose   bool
}

// Option configures an Arbiter.
type Option func(*Arbiter)

// WithLimiter installs a per-provider rate limiter.
func WithLimiter(l *Limiter) Option {
	return func(a *Arbiter) { a.limiter = l }
}

// WithVerbose enables per-provider failure logging to stderr.
func WithVerbose(v bool) Option {
	return func(a *Arbiter) { a.verbose = v }
}

// New creates an Arbiter. The provider slice order is the fallback
// priority order; an empty slice degrades to keyword-only resolution.
func New(providers []llm.Provider, matcher *match.Matcher, validator *rules.Validator, opts ...Option) *Arbiter {
	a := &Arbiter{
		providers: providers,
		matcher:   matcher,
		validator: validator,
		limiter:   NewLimiter(0, 0),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Resolve produces the final resolution for a classified case. The
// path taken depends on provider availability and keyword evidence;
// the method tag on the result records which one it was.
func (a *Arbiter) Resolve(ctx context.Context, description string, classification model.Classification, candidates []model.CandidateSection) model.Resolution {
	if len(a.providers) == 0 {
		validation := a.validator.Validate(description, candidates, classification)
		return a.fromValidation(classification, validation, model.MethodKeywordOnly, "", "")
	}

	if len(candidates) == 0 {
		return a.resolveAIOnly(ctx, description, classification)
	}
	return a.resolveHybrid(ctx, description, classification, candidates)
}

// resolveAIOnly handles the no-keyword-evidence path: the provider is
// the only source of candidates.
func (a *Arbiter) resolveAIOnly(ctx context.Context, description string, classification model.Classification) model.Resolution {
	prompt := llm.BuildAnalysisPrompt(description, classification)

	analysis, providerName, warnings, parseFailed := a.consult(ctx, prompt)
	if analysis == nil {
		if parseFailed {
			return a.keywordFallback(description, classification, warnings)
		}
		return model.Resolution{
			Classification: classification,
			Confidence:     0,
			Method:         model.MethodAIFailed,
			Warnings:       append(warnings, "all providers exhausted, case needs professional review"),
			NeedsReview:    true,
		}
	}

	if len(analysis.PrimarySections) == 0 {
		return model.Resolution{
			Classification: classification,
			Confidence:     model.NormalizeConfidence(analysis.OverallConfidence),
			Method:         model.MethodAINoSections,
			Warnings:       append(warnings, fmt.Sprintf("provider found no applicable sections: %s", analysis.Reasoning)),
			ProviderUsed:   providerName,
			CaseNature:     caseNature(analysis.CaseNature),
			NeedsReview:    true,
		}
	}

	sections := a.buildSections(analysis.PrimarySections, &warnings)
	validation := a.validator.Validate(description, sections, classification)
	res := a.fromValidation(classification, validation, model.MethodAIOnly, providerName, analysis.CaseNature)
	res.Warnings = append(warnings, res.Warnings...)
	return res
}

// resolveHybrid handles the keyword-candidates path: the provider
// confirms, rejects or extends what the matcher found. Provider
// trouble of any kind falls back to validating the original keyword
// candidates.
func (a *Arbiter) resolveHybrid(ctx context.Context, description string, classification model.Classification, candidates []model.CandidateSection) model.Resolution {
	prompt := llm.BuildReviewPrompt(description, classification, candidates)

	analysis, providerName, warnings, _ := a.consult(ctx, prompt)
	if analysis == nil {
		validation := a.validator.Validate(description, candidates, classification)
		res := a.fromValidation(classification, validation, model.MethodKeywordValidated, "", "")
		res.Warnings = append(warnings, res.Warnings...)
		return res
	}

	sections := a.buildSections(analysis.PrimarySections, &warnings)
	validation := a.validator.Validate(description, sections, classification)
	res := a.fromValidation(classification, validation, model.MethodHybridValidated, providerName, analysis.CaseNature)
	res.Warnings = append(warnings, res.Warnings...)
	return res
}

// consult walks the provider chain until one produces a parseable
// analysis. Returns the analysis and the provider that answered, plus
// accumulated warnings. parseFailed reports that at least one provider
// answered but with unrepairable output.
func (a *Arbiter) consult(ctx context.Context, prompt string) (analysis *llm.AIAnalysis, providerName string, warnings []string, parseFailed bool) {
	req := llm.GenerateRequest{
		System:      llm.AnalysisSystemPrompt,
		Prompt:      prompt,
		Temperature: analysisTemperature,
		JSONMode:    true,
	}

	for _, provider := range a.providers {
		if ctx.Err() != nil {
			warnings = append(warnings, "request cancelled before provider chain completed")
			return nil, "", warnings, parseFailed
		}

		if err := a.limiter.Wait(ctx, provider.Name()); err != nil {
			warnings = append(warnings, fmt.Sprintf("provider %s: rate limit wait aborted: %v", provider.Name(), err))
			continue
		}

		resp, err := provider.Generate(ctx, req)
		if err != nil {
			a.logf("provider %s failed: %v", provider.Name(), err)
			warnings = append(warnings, fmt.Sprintf("provider %s unavailable", provider.Name()))
			continue
		}

		parsed, err := llm.ParseAnalysis(resp.Text)
		if err != nil {
			a.logf("provider %s returned unparseable output: %v", provider.Name(), err)
			warnings = append(warnings, fmt.Sprintf("provider %s returned unparseable output", provider.Name()))
			parseFailed = true
			continue
		}

		return parsed, provider.Name(), warnings, false
	}
	return nil, "", warnings, parseFailed
}

// keywordFallback rescues an unparseable provider response by
// re-running the keyword matcher, with deflated confidence.
func (a *Arbiter) keywordFallback(description string, classification model.Classification, warnings []string) model.Resolution {
	candidates := a.matcher.Match(description, classification)
	if len(candidates) == 0 {
		return model.Resolution{
			Classification: classification,
			Confidence:     0,
			Method:         model.MethodJSONParseFailed,
			Warnings:       append(warnings, "provider output unrepairable and no keyword evidence found"),
			NeedsReview:    true,
		}
	}

	validation := a.validator.Validate(description, candidates, classification)
	res := a.fromValidation(classification, validation, model.MethodKeywordFallback, "", "")
	res.Confidence = model.NormalizeConfidence(classification.Confidence * fallbackDeflation)
	res.Warnings = append(warnings, res.Warnings...)
	return res
}

// buildSections converts provider-proposed sections into candidate
// sections, discarding any that fail basic construction.
func (a *Arbiter) buildSections(proposed []llm.AISection, warnings *[]string) []model.CandidateSection {
	sections := make([]model.CandidateSection, 0, len(proposed))
	for _, s := range proposed {
		section, err := model.NewCandidateSection(
			s.Code, s.Title, s.Description, s.Punishment,
			s.Bailable, s.Cognizable, s.Confidence, s.Reasoning, s.KeyFactors,
		)
		if err != nil {
			*warnings = append(*warnings, fmt.Sprintf("discarded malformed provider section: %v", err))
			continue
		}
		sections = append(sections, section)
	}
	return sections
}

// fromValidation assembles a Resolution around a validation result.
func (a *Arbiter) fromValidation(classification model.Classification, validation model.ValidationResult, method, providerName, nature string) model.Resolution {
	return model.Resolution{
		Classification: classification,
		Sections:       validation.Sections,
		Confidence:     validation.OverallConfidence,
		Method:         method,
		Warnings:       validation.Warnings,
		ProviderUsed:   providerName,
		Validation:     &validation,
		CaseNature:     caseNature(nature),
		NeedsReview:    validation.NeedsReview,
	}
}

func (a *Arbiter) logf(format string, args ...interface{}) {
	if a.verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// caseNature maps a provider's free-text verdict onto the closed set.
func caseNature(s string) model.CaseNature {
	switch s {
	case "criminal":
		return model.CaseNatureCriminal
	case "civil":
		return model.CaseNatureCivil
	case "mixed":
		return model.CaseNatureMixed
	case "insufficient":
		return model.CaseNatureInsufficient
	default:
		return ""
	}
}
