package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Repair pipeline for free-form model output. Providers are told to
// emit pure JSON, but in practice output arrives wrapped in markdown
// fences, truncated mid-structure, or with trailing commas. Strategies
// are tried in order of increasing leniency:
//
//  1. direct parse
//  2. strip fences, trim to the outermost object, drop trailing
//     commas, re-balance braces and brackets
//  3. salvage recognizable top-level keys into a minimal skeleton
//
// RepairJSON returns a string that json.Unmarshal accepts, or an error
// when even salvage finds nothing usable.
func RepairJSON(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", fmt.Errorf("repair json: empty input")
	}

	if json.Valid([]byte(trimmed)) {
		return trimmed, nil
	}

	cleaned := cleanJSON(trimmed)
	if json.Valid([]byte(cleaned)) {
		return cleaned, nil
	}

	balanced := balanceDelimiters(cleaned)
	if json.Valid([]byte(balanced)) {
		return balanced, nil
	}

	salvaged, ok := salvageAnalysis(trimmed)
	if !ok {
		return "", fmt.Errorf("repair json: no valid structure recoverable")
	}
	return salvaged, nil
}

// cleanJSON strips markdown fences, trims to the outermost JSON object
// and removes trailing commas before closing delimiters.
func cleanJSON(text string) string {
	s := strings.TrimSpace(text)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	start := strings.Index(s, "{")
	if start > 0 {
		s = s[start:]
	}
	if end := strings.LastIndex(s, "}"); end >= 0 && end < len(s)-1 {
		s = s[:end+1]
	}

	s = trailingCommaRe.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

var trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)

// balanceDelimiters appends missing closing braces and brackets to a
// truncated JSON document. A dangling string literal is closed first.
// Nesting order is tracked so closers come out in the right sequence.
func balanceDelimiters(s string) string {
	var stack []byte
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{', '[':
			if !inString {
				stack = append(stack, c)
			}
		case '}', ']':
			if !inString && len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if inString {
		s += `"`
	}
	s = strings.TrimRight(s, " \t\n,")
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			s += "}"
		} else {
			s += "]"
		}
	}
	return s
}

// Salvage patterns for the analysis schema's scalar keys.
var (
	caseNatureRe = regexp.MustCompile(`"case_nature"\s*:\s*"([^"]*)"`)
	overallRe    = regexp.MustCompile(`"overall_confidence"\s*:\s*([0-9.]+)`)
	reasoningRe  = regexp.MustCompile(`"reasoning"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	primaryRe    = regexp.MustCompile(`"primary_sections"\s*:\s*(\[)`)
)

// salvageAnalysis regex-extracts whatever top-level keys are
// recoverable and merges them into a default-valued skeleton.
func salvageAnalysis(text string) (string, bool) {
	skeleton := map[string]interface{}{
		"case_nature":          "insufficient",
		"primary_sections":     []interface{}{},
		"conditional_sections": []interface{}{},
		"rejected_sections":    []interface{}{},
		"overall_confidence":   0.0,
		"reasoning":            "",
	}

	recovered := false

	if m := caseNatureRe.FindStringSubmatch(text); m != nil {
		skeleton["case_nature"] = m[1]
		recovered = true
	}
	if m := overallRe.FindStringSubmatch(text); m != nil {
		var v float64
		if err := json.Unmarshal([]byte(m[1]), &v); err == nil {
			skeleton["overall_confidence"] = v
			recovered = true
		}
	}
	if m := reasoningRe.FindStringSubmatch(text); m != nil {
		var v string
		if err := json.Unmarshal([]byte(`"`+m[1]+`"`), &v); err == nil {
			skeleton["reasoning"] = v
			recovered = true
		}
	}
	if loc := primaryRe.FindStringSubmatchIndex(text); loc != nil {
		arrStart := loc[2]
		if arr, ok := extractBalancedArray(text[arrStart:]); ok {
			var sections []interface{}
			if err := json.Unmarshal([]byte(arr), &sections); err == nil {
				skeleton["primary_sections"] = sections
				recovered = true
			}
		}
	}

	if !recovered {
		return "", false
	}

	out, err := json.Marshal(skeleton)
	if err != nil {
		return "", false
	}
	return string(out), true
}

// extractBalancedArray returns the shortest balanced [...] prefix of s.
func extractBalancedArray(s string) (string, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '[':
			if !inString {
				depth++
			}
		case ']':
			if !inString {
				depth--
				if depth == 0 {
					return s[:i+1], true
				}
			}
		}
	}
	return "", false
}
