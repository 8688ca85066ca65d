// Package fallback synthesizes structurally complete analysis payloads with
// no network dependency. Every function here is pure: identical inputs yield
// identical outputs, and empty preference values are always replaced by the
// per-domain defaults before they reach generated prose.
package fallback

import (
	"fmt"
	"strings"

	"github.com/Shivakarthikeya23/CultureSense/internal/culture"
)

// render interpolates the source/target preference text into a template.
// Templates with no format verbs pass through untouched so fmt does not
// flag the unused operands.
func render(tpl, src, dst string) string {
	if !strings.Contains(tpl, "%") {
		return tpl
	}
	return fmt.Sprintf(tpl, src, dst)
}

// insightTemplate renders one pairwise connection. Format verbs reference
// %[1]s = source preference text, %[2]s = target preference text.
type insightTemplate struct {
	score        string
	confidence   string
	pattern      string
	implications []string
}

var insightTemplates = map[culture.DomainPair]insightTemplate{
	{Source: culture.DomainMusic, Target: culture.DomainFashion}: {
		score:      "75%",
		confidence: "high",
		pattern: "Individuals with an affinity for %[1]s often express similar values and aesthetics in their fashion choices. " +
			"The connection between %[1]s and %[2]s reflects shared cultural values of authenticity and unique expression.",
		implications: []string{
			"Partner with %[1]s artists for authentic %[2]s collaborations",
			"Target %[2]s campaigns to %[1]s audiences",
		},
	},
	{Source: culture.DomainMusic, Target: culture.DomainFood}: {
		score:      "68%",
		confidence: "medium",
		pattern:    "Fans of %[1]s often share similar cultural values with %[2]s enthusiasts, creating opportunities for authentic cross-domain experiences.",
		implications: []string{
			"Create %[1]s and %[2]s fusion experiences",
			"Partner with %[2]s brands for %[1]s events",
		},
	},
	{Source: culture.DomainMusic, Target: culture.DomainTravel}: {
		score:      "72%",
		confidence: "medium",
		pattern:    "%[1]s culture often influences travel preferences, with fans seeking destinations that align with their cultural identity.",
		implications: []string{
			"Create %[1]s-themed travel experiences",
			"Partner with travel brands for %[1]s festivals",
		},
	},
	{Source: culture.DomainMusic, Target: culture.DomainBooks}: {
		score:      "65%",
		confidence: "medium",
		pattern:    "%[1]s listeners often share similar intellectual and cultural interests with %[2]s readers.",
		implications: []string{
			"Create content that bridges %[1]s and %[2]s cultures",
			"Develop cross-domain marketing campaigns",
		},
	},
	{Source: culture.DomainFashion, Target: culture.DomainFood}: {
		score:      "70%",
		confidence: "high",
		pattern:    "%[1]s enthusiasts often share similar values with %[2]s consumers, particularly around sustainability and authenticity.",
		implications: []string{
			"Create %[1]s and %[2]s lifestyle experiences",
			"Partner with sustainable food brands",
		},
	},
	{Source: culture.DomainFashion, Target: culture.DomainTravel}: {
		score:      "73%",
		confidence: "medium",
		pattern:    "%[1]s choices often reflect travel preferences, with style-conscious travelers seeking destinations that align with their aesthetic.",
		implications: []string{
			"Create %[1]s-focused travel packages",
			"Partner with fashion brands for travel campaigns",
		},
	},
	{Source: culture.DomainFashion, Target: culture.DomainBooks}: {
		score:      "62%",
		confidence: "medium",
		pattern:    "%[1]s enthusiasts often share similar cultural interests with %[2]s readers, particularly around lifestyle and personal development.",
		implications: []string{
			"Create content that connects %[1]s and %[2]s cultures",
			"Develop lifestyle marketing campaigns",
		},
	},
	{Source: culture.DomainFood, Target: culture.DomainTravel}: {
		score:      "85%",
		confidence: "high",
		pattern:    "%[1]s enthusiasts often prefer %[2]s destinations, reflecting a holistic approach to lifestyle choices that prioritize sustainability and cultural authenticity.",
		implications: []string{
			"Create %[1]s culinary tourism experiences",
			"Develop %[2]s packages for %[1]s consumers",
		},
	},
	{Source: culture.DomainFood, Target: culture.DomainBooks}: {
		score:      "67%",
		confidence: "medium",
		pattern:    "%[1]s enthusiasts often share similar interests with %[2]s readers, particularly around culture and personal growth.",
		implications: []string{
			"Create content that connects %[1]s and %[2]s themes",
			"Develop cross-domain marketing campaigns",
		},
	},
	{Source: culture.DomainTravel, Target: culture.DomainBooks}: {
		score:      "69%",
		confidence: "medium",
		pattern:    "%[1]s enthusiasts often enjoy %[2]s, reflecting a desire for cultural exploration and personal growth.",
		implications: []string{
			"Create %[1]s and %[2]s content partnerships",
			"Develop cultural exploration campaigns",
		},
	},
}

// CrossDomainInsights emits one insight per known domain pair present in the
// requested set, in the fixed pair priority order.
func CrossDomainInsights(domains []string, prefs map[string]string) []culture.CrossDomainInsight {
	insights := []culture.CrossDomainInsight{}
	for _, pair := range culture.PairsIn(domains) {
		tpl, ok := insightTemplates[pair]
		if !ok {
			continue
		}
		src := culture.Preference(prefs, pair.Source)
		dst := culture.Preference(prefs, pair.Target)
		implications := make([]string, len(tpl.implications))
		for i, imp := range tpl.implications {
			implications[i] = render(imp, src, dst)
		}
		insights = append(insights, culture.CrossDomainInsight{
			SourceDomain:         pair.Source,
			TargetDomain:         pair.Target,
			AffinityScore:        tpl.score,
			ConnectionType:       "correlated",
			CulturalPattern:      fmt.Sprintf(tpl.pattern, src, dst),
			BusinessImplications: implications,
			Confidence:           tpl.confidence,
		})
	}
	return insights
}

// CrossDomainAnalysis bundles the three fallback collections under the same
// top-level keys the generative adapter produces.
func CrossDomainAnalysis(domains []string, prefs map[string]string) map[string]interface{} {
	return map[string]interface{}{
		"cross_domain_insights": CrossDomainInsights(domains, prefs),
		"cultural_segments":     CulturalSegments(domains, prefs),
		"qloo_insights":         QlooInsights(domains, prefs),
	}
}

type segmentTemplate struct {
	keyDomains      culture.DomainPair
	name            string
	marketSize      string
	characteristics []string
	prefDomains     []string
	opportunities   []string
}

// Segment templates interpolate %[1]s = first key domain's preference text,
// %[2]s = second key domain's preference text.
var segmentTemplates = []segmentTemplate{
	{
		keyDomains:      culture.DomainPair{Source: culture.DomainMusic, Target: culture.DomainFashion},
		name:            "The Authentic Creator",
		marketSize:      "23%",
		characteristics: []string{"Values authenticity", "Prefers %[1]s", "Sustainable lifestyle"},
		prefDomains:     []string{culture.DomainMusic, culture.DomainFashion},
		opportunities:   []string{"Partner with %[1]s artists", "Sustainable brand collaborations", "Eco-friendly product lines"},
	},
	{
		keyDomains:      culture.DomainPair{Source: culture.DomainMusic, Target: culture.DomainFood},
		name:            "The Cultural Fusionist",
		marketSize:      "18%",
		characteristics: []string{"Cross-cultural appreciation", "Enjoys %[1]s", "Culinary explorer"},
		prefDomains:     []string{culture.DomainMusic, culture.DomainFood},
		opportunities:   []string{"Create %[1]s and %[2]s fusion experiences", "Cultural event partnerships", "Cross-domain marketing campaigns"},
	},
	{
		keyDomains:      culture.DomainPair{Source: culture.DomainFashion, Target: culture.DomainFood},
		name:            "The Lifestyle Curator",
		marketSize:      "25%",
		characteristics: []string{"Style-conscious", "Prefers %[1]s", "Food culture enthusiast"},
		prefDomains:     []string{culture.DomainFashion, culture.DomainFood},
		opportunities:   []string{"Lifestyle brand partnerships", "Sustainable fashion collaborations", "Culinary fashion experiences"},
	},
	{
		keyDomains:      culture.DomainPair{Source: culture.DomainTravel, Target: culture.DomainFood},
		name:            "The Culinary Explorer",
		marketSize:      "20%",
		characteristics: []string{"Adventure-seeking", "Loves %[2]s", "Cultural immersion"},
		prefDomains:     []string{culture.DomainTravel, culture.DomainFood},
		opportunities:   []string{"Culinary tourism packages", "Food and travel partnerships", "Cultural experience campaigns"},
	},
	{
		keyDomains:      culture.DomainPair{Source: culture.DomainBooks, Target: culture.DomainTravel},
		name:            "The Cultural Scholar",
		marketSize:      "15%",
		characteristics: []string{"Intellectually curious", "Enjoys %[1]s", "Cultural exploration"},
		prefDomains:     []string{culture.DomainBooks, culture.DomainTravel},
		opportunities:   []string{"Cultural education partnerships", "Literary travel experiences", "Educational content campaigns"},
	},
}

// CulturalSegments matches the five fixed segments against the requested
// domains. When none match it returns exactly one generic segment whose
// preference list maps every requested domain to its preference-or-default.
func CulturalSegments(domains []string, prefs map[string]string) []culture.CulturalSegment {
	segments := []culture.CulturalSegment{}
	for _, tpl := range segmentTemplates {
		if !culture.Contains(domains, tpl.keyDomains.Source) || !culture.Contains(domains, tpl.keyDomains.Target) {
			continue
		}
		first := culture.Preference(prefs, tpl.keyDomains.Source)
		second := culture.Preference(prefs, tpl.keyDomains.Target)
		segments = append(segments, culture.CulturalSegment{
			SegmentName:           tpl.name,
			Characteristics:       renderAll(tpl.characteristics, first, second),
			Preferences:           preferencesFor(tpl.prefDomains, prefs),
			MarketSize:            tpl.marketSize,
			BusinessOpportunities: renderAll(tpl.opportunities, first, second),
		})
	}

	if len(segments) == 0 {
		segments = append(segments, culture.CulturalSegment{
			SegmentName:           "The Cultural Enthusiast",
			Characteristics:       []string{"Diverse interests", "Cultural appreciation", "Authenticity-seeking"},
			Preferences:           preferencesFor(domains, prefs),
			MarketSize:            "22%",
			BusinessOpportunities: []string{"Cross-domain brand partnerships", "Cultural experience offerings", "Authentic connection campaigns"},
		})
	}
	return segments
}

func renderAll(templates []string, first, second string) []string {
	out := make([]string, len(templates))
	for i, tpl := range templates {
		out[i] = render(tpl, first, second)
	}
	return out
}

func preferencesFor(domains []string, prefs map[string]string) []string {
	out := make([]string, len(domains))
	for i, d := range domains {
		out[i] = culture.Preference(prefs, d)
	}
	return out
}

// Qloo-style insight sentence per pair; %[1]s/%[2]s are the source/target
// preference text, %[3]d the pair's fixed affinity percentage.
var qlooInsightTemplates = map[culture.DomainPair]string{
	{Source: culture.DomainMusic, Target: culture.DomainFashion}:  "Qloo's cross-domain data reveals that %[1]s fans show %[3]d%% affinity with %[2]s choices",
	{Source: culture.DomainMusic, Target: culture.DomainFood}:     "Qloo data shows %[1]s listeners have %[3]d%% correlation with %[2]s preferences",
	{Source: culture.DomainMusic, Target: culture.DomainTravel}:   "Qloo reveals %[1]s culture influences travel choices with %[3]d%% affinity for cultural destinations",
	{Source: culture.DomainMusic, Target: culture.DomainBooks}:    "Qloo data indicates %[1]s fans share %[3]d%% cultural overlap with %[2]s readers",
	{Source: culture.DomainFashion, Target: culture.DomainFood}:   "%[1]s enthusiasts demonstrate %[3]d%% overlap with %[2]s preferences",
	{Source: culture.DomainFashion, Target: culture.DomainTravel}: "Qloo shows %[1]s choices correlate %[3]d%% with travel destination preferences",
	{Source: culture.DomainFashion, Target: culture.DomainBooks}:  "Qloo data reveals %[1]s consumers share %[3]d%% cultural affinity with %[2]s readers",
	{Source: culture.DomainFood, Target: culture.DomainTravel}:    "%[1]s preferences correlate %[3]d%% with %[2]s destinations",
	{Source: culture.DomainFood, Target: culture.DomainBooks}:     "Qloo shows %[1]s enthusiasts have %[3]d%% overlap with %[2]s cultural interests",
	{Source: culture.DomainTravel, Target: culture.DomainBooks}:   "Qloo data indicates %[1]s enthusiasts share %[3]d%% affinity with %[2]s readers",
}

const privacyInsight = "Qloo's privacy-first approach enables cultural intelligence without personal data collection"

// QlooInsights emits one templated sentence per known pair present in the
// requested set, plus a constant closing sentence. A set with no pair matches
// gets the fixed generic block instead of an empty list.
func QlooInsights(domains []string, prefs map[string]string) []string {
	insights := []string{}
	for _, pair := range culture.PairsIn(domains) {
		tpl, ok := qlooInsightTemplates[pair]
		if !ok {
			continue
		}
		insights = append(insights, fmt.Sprintf(tpl,
			culture.Preference(prefs, pair.Source),
			culture.Preference(prefs, pair.Target),
			culture.PairAffinity[pair]))
	}

	if len(insights) > 0 {
		return append(insights, privacyInsight)
	}
	return []string{
		"Qloo's cross-domain data reveals hidden cultural connections across all domains",
		"Cultural preferences often span multiple areas, creating opportunities for authentic brand partnerships",
		privacyInsight,
	}
}
