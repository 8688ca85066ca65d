package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Shivakarthikeya23/CultureSense/internal/culture"
)

func crossDomainPrompt(domains []string, prefs map[string]string) string {
	prefsJSON, _ := json.Marshal(prefs)
	return fmt.Sprintf(`You are a cultural intelligence expert analyzing cross-domain cultural connections using Qloo's unique affinity graph. Analyze how cultural preferences connect across different domains.

Domains: %s
Preferences: %s

Generate cross-domain cultural analysis in JSON format:
{
  "cross_domain_insights": [
    {
      "source_domain": "domain1",
      "target_domain": "domain2",
      "affinity_score": "percentage (0-100)",
      "connection_type": "direct/correlated/oppositional",
      "cultural_pattern": "Detailed explanation of the cultural connection",
      "business_implications": ["2-3 specific business implications"],
      "confidence": "high/medium/low"
    }
  ],
  "cultural_segments": [
    {
      "segment_name": "Creative name for this cultural segment",
      "characteristics": ["key cultural characteristics"],
      "preferences": ["typical cross-domain preferences"],
      "market_size": "estimated percentage",
      "business_opportunities": ["specific opportunities"]
    }
  ],
  "qloo_insights": [
    "3-4 insights that showcase Qloo's unique cross-domain intelligence"
  ]
}

Focus on insights that demonstrate Qloo's unique ability to connect cultural preferences across domains without personal data.`,
		strings.Join(domains, ", "), prefsJSON)
}

func brandAlignmentPrompt(brand, targetAudience string, domains []string) string {
	return fmt.Sprintf(`You are a brand strategy expert using Qloo's cross-domain cultural intelligence to analyze brand-culture alignment. Assess how well a brand aligns with its audience's cultural preferences across domains.

Brand: %s
Target Audience: %s
Cultural Domains: %s

Generate brand-culture alignment analysis in JSON format:
{
  "brand_culture_profile": {
    "brand_identity": "How the brand is perceived culturally",
    "audience_cultural_dna": "Cultural preferences of target audience",
    "alignment_score": "percentage (0-100)",
    "cultural_gaps": ["areas where brand doesn't align with audience culture"]
  },
  "cross_domain_opportunities": [
    {
      "domain": "domain_name",
      "opportunity": "specific opportunity description",
      "qloo_insight": "How Qloo's cross-domain data reveals this opportunity",
      "implementation": "how to implement this opportunity"
    }
  ],
  "cultural_risk_assessment": [
    "potential cultural risks and how to mitigate them"
  ],
  "qloo_recommendations": [
    "3-4 recommendations based on Qloo's cross-domain cultural intelligence"
  ]
}

Focus on how Qloo's unique cross-domain cultural intelligence can help brands better align with their audience's cultural preferences.`,
		brand, targetAudience, strings.Join(domains, ", "))
}

func marketIntelligencePrompt(domains []string, region, timeframe string) string {
	return fmt.Sprintf(`You are a market intelligence expert using Qloo's cross-domain cultural intelligence to analyze market opportunities. Identify cultural trends and cross-domain patterns that create business opportunities.

Domains: %s
Region: %s
Timeframe: %s

Generate cultural market intelligence in JSON format:
{
  "cultural_trends": [
    {
      "domain": "domain_name",
      "trend": "percentage_change",
      "direction": "up/down/stable",
      "cross_domain_impact": "How this trend affects other domains",
      "business_opportunity": "specific business opportunity",
      "qloo_insight": "How Qloo's cross-domain data reveals this opportunity"
    }
  ],
  "cross_domain_patterns": [
    {
      "pattern": "description of cross-domain cultural pattern",
      "strength": "percentage",
      "business_implication": "specific business implication",
      "qloo_evidence": "How Qloo's data supports this pattern"
    }
  ],
  "market_recommendations": [
    "3-4 recommendations based on Qloo's cross-domain cultural intelligence"
  ]
}

Focus on insights that showcase Qloo's unique ability to reveal cross-domain cultural patterns that create business opportunities.`,
		strings.Join(domains, ", "), region, timeframe)
}

func personaPrompt(prefs map[string]string) string {
	prefsJSON, _ := json.Marshal(prefs)
	return fmt.Sprintf(`You are a Cultural Persona Builder powered by Qloo's cross-domain intelligence. Create a personalized cultural persona based on user preferences.

User Preferences: %s

IMPORTANT: Use the EXACT user preferences provided above. Do not change or modify them. The preferences should reflect what the user actually entered, not generic examples.

Generate a comprehensive cultural persona that includes:

1. Persona Type: Choose from: conscious-explorer, urban-trendsetter, cultural-curator, wellness-enthusiast, creative-rebel
2. Persona Name: A creative name for this cultural type
3. Description: A detailed description of this cultural persona based on the actual preferences
4. Cultural Traits: 4-5 key personality traits derived from the actual preferences
5. Preferences: Use the EXACT user preferences provided (do not change them)
6. Cross-Domain Insights: 3 insights about how the actual preferences connect across domains
7. Qloo Affinities: 3 cross-domain affinity scores with specific examples based on actual preferences
8. Cultural Forecast: A prediction about future cultural trends for this persona
9. Share Text: A social media friendly text for sharing

Format as JSON:
{
  "persona_type": "conscious-explorer",
  "persona_name": "The Conscious Explorer",
  "description": "...",
  "cultural_traits": ["trait1", "trait2"],
  "preferences": {
    "music": "[EXACT user music preference]",
    "fashion": "[EXACT user fashion preference]",
    "food": "[EXACT user food preference]",
    "travel": "[EXACT user travel preference]",
    "books": "[EXACT user books preference]"
  },
  "cross_domain_insights": ["insight1", "insight2", "insight3"],
  "qloo_affinities": [
    {"source": "...", "target": "...", "score": 85}
  ],
  "cultural_forecast": "...",
  "share_text": "..."
}

Make it engaging, accurate, and showcase Qloo's cross-domain intelligence. Use the actual user preferences, not generic examples.`,
		prefsJSON)
}

func strategistPrompt(message string, history []culture.ChatMessage) string {
	var context strings.Builder
	if len(history) > 0 {
		context.WriteString("Previous conversation:\n")
		for _, msg := range history {
			role := "Assistant"
			if msg.Type == "user" {
				role = "User"
			}
			context.WriteString(fmt.Sprintf("%s: %s\n", role, msg.Content))
		}
		context.WriteString("\n")
	}

	return fmt.Sprintf(`You are a Cultural Strategist powered by Qloo's cross-domain intelligence. You help businesses understand cultural connections and create targeted strategies.

%sCurrent User Message: "%s"

IMPORTANT: Provide a unique, contextual response based on the specific question asked. Do not give generic answers. Use the conversation history to provide continuity and build upon previous insights.

Provide a helpful, conversational response that:
1. Addresses the user's specific question directly and uniquely
2. Leverages Qloo's cross-domain cultural intelligence
3. Provides actionable insights and recommendations
4. Includes specific cultural patterns and affinities when relevant
5. References previous conversation context when applicable

Format your response as a natural conversation, but also include structured data for the frontend to display:

Response: [Your conversational response here - make it specific to the question]

Cultural Insights: [2-3 key cultural insights relevant to the question]
Qloo Affinities: [2-3 cross-domain connections with scores]
Recommendations: [2-3 actionable recommendations]

Focus on being helpful, engaging, and showcasing Qloo's unique value proposition. Make each response unique and contextual.`,
		context.String(), message)
}
