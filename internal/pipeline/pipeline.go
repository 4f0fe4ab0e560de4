// Package pipeline composes the full resolution cascade: classify the
// description, match keyword candidates, then arbitrate and validate.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/vidhisaar/vidhisaar/internal/arbiter"
	"github.com/vidhisaar/vidhisaar/internal/cache"
	"github.com/vidhisaar/vidhisaar/internal/catalog"
	"github.com/vidhisaar/vidhisaar/internal/classify"
	"github.com/vidhisaar/vidhisaar/internal/llm"
	"github.com/vidhisaar/vidhisaar/internal/match"
	"github.com/vidhisaar/vidhisaar/internal/model"
	"github.com/vidhisaar/vidhisaar/internal/rules"
)

// Pipeline orchestrates the complete resolution process. Built once at
// startup; all stages are stateless, so one Pipeline serves concurrent
// requests.
type Pipeline struct {
	classifier *classify.Classifier
	matcher    *match.Matcher
	validator  *rules.Validator
	arbiter    *arbiter.Arbiter
	catalog    *catalog.Catalog
	cache      cache.Cache // nil when caching is disabled
	cacheTTL   time.Duration
	minLength  int
	verbose    bool
}

// NewPipeline creates a pipeline from configuration. Misconfiguration
// (an unknown provider, a rule referencing a section code absent from
// the catalog) is a startup error, never a per-request one.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if err := verifyRuleCoverage(cat); err != nil {
		return nil, err
	}

	providers, err := llm.BuildProviders(cfg.Providers)
	if err != nil {
		return nil, err
	}
	providers = probeProviders(providers)

	limiter := arbiter.NewLimiter(0, 0)
	for _, pc := range cfg.Providers {
		if pc.RateLimit > 0 {
			limiter.SetProviderRate(pc.Name, pc.RateLimit, 0)
		}
	}

	matcher := match.NewMatcher(cfg.Resolver.MaxSections)
	validator := rules.NewValidator(cfg.Resolver.MinConfidence, cfg.Resolver.ReviewBelow)

	p := &Pipeline{
		classifier: classify.NewClassifier(),
		matcher:    matcher,
		validator:  validator,
		arbiter: arbiter.New(providers, matcher, validator,
			arbiter.WithLimiter(limiter),
			arbiter.WithVerbose(cfg.Output.Verbose)),
		catalog:   cat,
		minLength: cfg.Resolver.MinDescription,
		verbose:   cfg.Output.Verbose,
	}

	if cfg.Cache.Enabled {
		ttl := cfg.Cache.TTL
		if ttl <= 0 {
			ttl = 15 * time.Minute
		}
		p.cache = cache.NewMemoryCache(ttl, 2*ttl)
		p.cacheTTL = ttl
	}

	return p, nil
}

// providerProbeTimeout bounds the one-time startup availability check.
const providerProbeTimeout = 15 * time.Second

// probeProviders checks each configured provider once at startup and
// drops the ones that fail, so the per-request fallback chain only
// holds providers that answered. An empty chain degrades to
// keyword-only resolution.
func probeProviders(providers []llm.Provider) []llm.Provider {
	if len(providers) == 0 {
		return providers
	}

	ctx, cancel := context.WithTimeout(context.Background(), providerProbeTimeout)
	defer cancel()

	chain := make([]llm.Provider, 0, len(providers))
	for _, p := range providers {
		if !p.IsAvailable(ctx) {
			fmt.Fprintf(os.Stderr, "provider %s failed availability check, removed from chain\n", p.Name())
			continue
		}
		chain = append(chain, p)
	}
	return chain
}

// verifyRuleCoverage checks at startup that every section code the
// matcher and validator tables reference exists in the statute catalog.
// A typo in a rule must fail fast, not silently never fire.
func verifyRuleCoverage(cat *catalog.Catalog) error {
	var missing []string
	for _, code := range match.ReferencedCodes() {
		if _, ok := cat.Lookup(code); !ok {
			missing = append(missing, code)
		}
	}
	for _, code := range rules.GovernedCodes() {
		if _, ok := cat.Lookup(code); !ok {
			missing = append(missing, code)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("rules reference codes absent from catalog: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Catalog exposes the statute catalog for lookup endpoints.
func (p *Pipeline) Catalog() *catalog.Catalog {
	return p.catalog
}

// Resolve runs the full cascade for one description, consulting the
// result cache first. This satisfies the batch worker's Resolver
// interface.
func (p *Pipeline) Resolve(ctx context.Context, description string) (*model.Resolution, error) {
	return p.resolve(ctx, description, false)
}

// ResolveUncached runs the cascade bypassing the cache read, for
// urgent cases that must not be answered from a stale entry. The fresh
// result still refreshes the cache.
func (p *Pipeline) ResolveUncached(ctx context.Context, description string) (*model.Resolution, error) {
	return p.resolve(ctx, description, true)
}

func (p *Pipeline) resolve(ctx context.Context, description string, skipCacheRead bool) (*model.Resolution, error) {
	description = strings.TrimSpace(description)
	if len(description) < p.minLength {
		return nil, fmt.Errorf("description too short: %d characters, need at least %d", len(description), p.minLength)
	}

	key := cache.CacheKey(description)
	if p.cache != nil && !skipCacheRead {
		if data, found := p.cache.Get(key); found {
			var cached model.Resolution
			if err := json.Unmarshal(data, &cached); err == nil {
				p.logf("cache hit for description hash %s", key)
				return &cached, nil
			}
			_ = p.cache.Delete(key)
		}
	}

	classification := p.classifier.Classify(description)
	p.logf("classified as %q (severity %s, domain %s, confidence %.2f)",
		classification.Category, classification.Severity, classification.Domain, classification.Confidence)

	candidates := p.matcher.Match(description, classification)
	p.logf("keyword matcher produced %d candidates", len(candidates))

	resolution := p.arbiter.Resolve(ctx, description, classification, candidates)
	p.decideCivilMatter(description, &resolution)

	if p.cache != nil {
		if data, err := json.Marshal(resolution); err == nil {
			_ = p.cache.Set(key, data, p.cacheTTL)
		}
	}

	return &resolution, nil
}

// decideCivilMatter inspects an empty result's money-dispute and
// case-nature verdicts: a civil verdict means the caller should build
// a civil-dispute response instead of an unresolved-criminal one.
func (p *Pipeline) decideCivilMatter(description string, res *model.Resolution) {
	if len(res.Sections) > 0 {
		return
	}

	switch {
	case res.CaseNature == model.CaseNatureCivil:
		res.CivilMatter = true
	case res.Classification.Domain == model.DomainCivil:
		res.CivilMatter = true
	case res.Validation != nil &&
		res.Validation.Money.Kind == model.MoneyCivilBreach &&
		rules.HasMoneyVocabulary(description):
		// A civil-breach money verdict only means something when the
		// case is actually about money.
		res.CivilMatter = true
	}
}

func (p *Pipeline) logf(format string, args ...interface{}) {
	if p.verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
