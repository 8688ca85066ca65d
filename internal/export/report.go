// Package export renders an already-built analysis payload as a plain-text
// report. Pure formatting: it never recomputes or fetches anything.
package export

import (
	"fmt"
	"sort"
	"strings"
)

// Params echoes the request fields that headed the original analysis.
type Params struct {
	Domains   []string `json:"domains"`
	Region    string   `json:"region,omitempty"`
	Timeframe string   `json:"timeframe,omitempty"`
}

// Sections of the payload rendered as lists, in report order.
var listSections = []struct {
	key   string
	title string
}{
	{"qloo_insights", "Qloo Insights"},
	{"market_recommendations", "Market Recommendations"},
	{"cultural_risk_assessment", "Cultural Risk Assessment"},
	{"qloo_recommendations", "Qloo Recommendations"},
}

// Report renders payload into a human-readable report.
func Report(payload map[string]interface{}, params Params) string {
	var b strings.Builder
	b.WriteString("# CultureSense Analysis Report\n\n")

	if len(params.Domains) > 0 {
		b.WriteString(fmt.Sprintf("Domains: %s\n", strings.Join(params.Domains, ", ")))
	}
	if params.Region != "" {
		b.WriteString(fmt.Sprintf("Region: %s\n", params.Region))
	}
	if params.Timeframe != "" {
		b.WriteString(fmt.Sprintf("Timeframe: %s\n", params.Timeframe))
	}
	b.WriteString("\n")

	if insights, ok := payload["cross_domain_insights"].([]interface{}); ok && len(insights) > 0 {
		b.WriteString("## Cross-Domain Insights\n\n")
		for _, raw := range insights {
			insight, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf("- %v → %v (%v, confidence: %v)\n",
				insight["source_domain"], insight["target_domain"],
				insight["affinity_score"], insight["confidence"]))
			if pattern, ok := insight["cultural_pattern"].(string); ok && pattern != "" {
				b.WriteString(fmt.Sprintf("  %s\n", pattern))
			}
		}
		b.WriteString("\n")
	}

	if segments, ok := payload["cultural_segments"].([]interface{}); ok && len(segments) > 0 {
		b.WriteString("## Cultural Segments\n\n")
		for _, raw := range segments {
			segment, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf("- %v (market size: %v)\n", segment["segment_name"], segment["market_size"]))
		}
		b.WriteString("\n")
	}

	for _, section := range listSections {
		items, ok := payload[section.key].([]interface{})
		if !ok || len(items) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("## %s\n\n", section.title))
		for _, item := range items {
			if s, ok := item.(string); ok {
				b.WriteString(fmt.Sprintf("- %s\n", s))
			}
		}
		b.WriteString("\n")
	}

	if meta, ok := payload["analysis_metadata"].(map[string]interface{}); ok {
		b.WriteString("## Metadata\n\n")
		keys := make([]string, 0, len(meta))
		for k := range meta {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("- %s: %v\n", k, meta[k]))
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
