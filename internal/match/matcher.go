// Package match maps a pre-classified case description to candidate
// statutory sections using curated keyword tables with asset-context
// disambiguation.
package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vidhisaar/vidhisaar/internal/model"
)

// assetBoost is added to a section's base confidence when the detected
// asset type agrees with the section's declared asset type.
const assetBoost = 0.05

// maxConfidence caps keyword-derived confidence; only explicit human or
// AI review should push a section above it.
const maxConfidence = 0.95

// Matcher resolves candidate sections for a classified description.
// It is stateless and safe for concurrent use.
type Matcher struct {
	maxSections int
}

// NewMatcher creates a Matcher returning at most maxSections candidates
// per call. Non-positive values fall back to 5.
func NewMatcher(maxSections int) *Matcher {
	if maxSections <= 0 {
		maxSections = 5
	}
	return &Matcher{maxSections: maxSections}
}

// Match returns candidate sections for the description, ordered by
// descending confidence. Civil categories with no statute tables return
// nil: an empty list is the civil-matter signal, not an error.
//
// Per section the rules apply in order: exclusion keywords veto before
// trigger keywords are consulted, then an asset-type agreement earns a
// small boost capped at 0.95.
func (m *Matcher) Match(description string, classification model.Classification) []model.CandidateSection {
	desc := strings.ToLower(description)
	asset := DetectAssetType(description)

	groups := m.groupsFor(classification.Category, asset)
	if len(groups) == 0 {
		return nil
	}

	var candidates []model.CandidateSection
	seen := make(map[string]bool)

	for _, group := range groups {
		for _, def := range sectionGroups[group] {
			if seen[def.Code] {
				continue
			}
			if excluded(desc, def.ExclusionKeywords) {
				continue
			}

			matched := matchedKeywords(desc, def.Keywords)
			if len(matched) == 0 {
				continue
			}

			confidence := def.BaseConfidence
			if def.AssetType != AssetNone && def.AssetType == asset {
				confidence += assetBoost
				if confidence > maxConfidence {
					confidence = maxConfidence
				}
			}

			section, err := model.NewCandidateSection(
				def.Code, def.Title, def.Description, def.Punishment,
				def.Bailable, def.Cognizable, confidence,
				fmt.Sprintf("Matched indicators: %s", strings.Join(matched, ", ")),
				matched,
			)
			if err != nil {
				continue
			}
			seen[def.Code] = true
			candidates = append(candidates, section)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
	if len(candidates) > m.maxSections {
		candidates = candidates[:m.maxSections]
	}
	return candidates
}

// groupsFor resolves the pattern groups for a category. Generic labels
// scan every group; unmapped categories (the civil ones) scan none. A
// digital-identity asset overrides the category mapping: the cyber
// identity group is consulted first even when the pre-classifier put
// the case elsewhere.
func (m *Matcher) groupsFor(category string, asset AssetType) []string {
	var groups []string
	if mapped, ok := categoryGroups[category]; ok {
		groups = mapped
	} else if genericCategories[category] {
		all := make([]string, 0, len(sectionGroups))
		for group := range sectionGroups {
			all = append(all, group)
		}
		sort.Strings(all)
		groups = all
	}

	// Unmapped civil categories stay empty: the override reorders an
	// existing consultation list, it does not create one.
	if asset == AssetDigitalIdentity && len(groups) > 0 {
		return prependGroup(groups, groupCyberIdentity)
	}
	return groups
}

// prependGroup puts group first, dropping any later duplicate.
func prependGroup(groups []string, group string) []string {
	out := make([]string, 0, len(groups)+1)
	out = append(out, group)
	for _, g := range groups {
		if g != group {
			out = append(out, g)
		}
	}
	return out
}

func excluded(desc string, exclusions []string) bool {
	for _, kw := range exclusions {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

func matchedKeywords(desc string, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(desc, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}
