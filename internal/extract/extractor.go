// Package extract provides rule-based structured-information extraction from
// financial news headlines: institution names, metric keywords, numeric
// mentions and directional tone. No learned model is involved, so every
// extraction is deterministic and explainable.
package extract

import (
	"sort"
	"strconv"
	"strings"
)

// Directional is the lexical bullish/bearish tilt of a headline
type Directional string

const (
	DirectionalBullish Directional = "bullish"
	DirectionalBearish Directional = "bearish"
	DirectionalNeutral Directional = "neutral"
)

const maxNumerics = 5

// Result contains the entities extracted from a single headline.
// Institutions are de-duplicated registry entries in first-seen order;
// metrics are sorted, de-duplicated canonical labels.
type Result struct {
	Text         string      `json:"text"`
	Institutions []string    `json:"institutions"`
	Metrics      []string    `json:"metrics"`
	Numerics     []string    `json:"numerics"`
	Directional  Directional `json:"directional"`
}

// Extractor extracts financial entities from headline text. The pattern
// tables are compiled once at package init and shared read-only, so a
// single Extractor is safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new entity extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs all extraction rules over one headline. It is total over any
// input string: the empty string yields empty entity lists and a neutral
// directional.
func (e *Extractor) Extract(text string) Result {
	return Result{
		Text:         text,
		Institutions: extractInstitutions(text),
		Metrics:      extractMetrics(text),
		Numerics:     extractNumerics(text),
		Directional:  classifyDirectional(text),
	}
}

// ExtractBatch extracts entities from each text, preserving order
func (e *Extractor) ExtractBatch(texts []string) []Result {
	results := make([]Result, 0, len(texts))
	for _, text := range texts {
		results = append(results, e.Extract(text))
	}
	return results
}

func extractInstitutions(text string) []string {
	institutions := []string{}
	seen := map[string]bool{}

	for _, match := range institutionPattern.FindAllStringSubmatch(text, -1) {
		canonical, ok := canonicalInstitutions[strings.ToLower(match[1])]
		if !ok || seen[canonical] {
			continue
		}
		seen[canonical] = true
		institutions = append(institutions, canonical)
	}

	return institutions
}

func extractMetrics(text string) []string {
	found := map[string]bool{}
	for _, mp := range metricPatterns {
		if mp.pattern.MatchString(text) {
			found[mp.label] = true
		}
	}

	metrics := make([]string, 0, len(found))
	for label := range found {
		metrics = append(metrics, label)
	}
	sort.Strings(metrics)
	return metrics
}

func extractNumerics(text string) []string {
	numerics := []string{}
	for _, match := range numericPattern.FindAllStringSubmatch(text, -1) {
		if len(numerics) >= maxNumerics {
			break
		}

		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil || value == 0 {
			continue
		}
		numerics = append(numerics, strings.TrimSpace(match[0]))
	}
	return numerics
}

func classifyDirectional(text string) Directional {
	lower := strings.ToLower(text)

	bull := 0
	for _, signal := range bullishSignals {
		if strings.Contains(lower, signal) {
			bull++
		}
	}

	bear := 0
	for _, signal := range bearishSignals {
		if strings.Contains(lower, signal) {
			bear++
		}
	}

	switch {
	case bull > bear:
		return DirectionalBullish
	case bear > bull:
		return DirectionalBearish
	default:
		return DirectionalNeutral
	}
}
