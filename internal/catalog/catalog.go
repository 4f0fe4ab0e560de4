// Package catalog provides the read-only statute reference tables.
// The catalog is loaded once at process start from embedded data and
// shared read-only by every request.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed sections.yaml
var sectionsYAML []byte

// StatuteRecord is one entry in the reference tables
type StatuteRecord struct {
	Code        string `yaml:"code" json:"code"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Punishment  string `yaml:"punishment" json:"punishment"`
	Bailable    bool   `yaml:"bailable" json:"bailable"`
	Cognizable  bool   `yaml:"cognizable" json:"cognizable"`
}

// Catalog is the loaded statute reference, keyed by section code
type Catalog struct {
	byCode map[string]StatuteRecord
	order  []string
}

// Load parses the embedded statute tables. It fails only on malformed or
// duplicate data, which is a build defect rather than a runtime condition.
func Load() (*Catalog, error) {
	var records []StatuteRecord
	if err := yaml.Unmarshal(sectionsYAML, &records); err != nil {
		return nil, fmt.Errorf("parse statute tables: %w", err)
	}

	c := &Catalog{byCode: make(map[string]StatuteRecord, len(records))}
	for _, r := range records {
		if r.Code == "" || r.Title == "" {
			return nil, fmt.Errorf("statute entry missing code or title: %+v", r)
		}
		if _, dup := c.byCode[r.Code]; dup {
			return nil, fmt.Errorf("duplicate statute code: %s", r.Code)
		}
		c.byCode[r.Code] = r
		c.order = append(c.order, r.Code)
	}

	return c, nil
}

// Lookup returns the record for a section code. A miss is a normal,
// non-exceptional outcome.
func (c *Catalog) Lookup(code string) (StatuteRecord, bool) {
	r, ok := c.byCode[code]
	return r, ok
}

// Search returns every record whose title or description contains the
// keyword, case-insensitive. No ranking.
func (c *Catalog) Search(keyword string) []StatuteRecord {
	kw := strings.ToLower(keyword)
	var results []StatuteRecord
	for _, code := range c.order {
		r := c.byCode[code]
		if strings.Contains(strings.ToLower(r.Title), kw) ||
			strings.Contains(strings.ToLower(r.Description), kw) {
			results = append(results, r)
		}
	}
	return results
}

// Len returns the number of records loaded
func (c *Catalog) Len() int {
	return len(c.order)
}
