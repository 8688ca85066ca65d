package fallback

import (
	"strings"

	"github.com/Shivakarthikeya23/CultureSense/internal/culture"
)

// Strategist routes the user message to one of three canned replies by
// keyword, mirroring the conversational endpoint's shape. Conversation
// history does not influence the canned reply.
func Strategist(message string, _ []culture.ChatMessage) culture.StrategistReply {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "campaign") || strings.Contains(lower, "marketing"):
		return culture.StrategistReply{
			Response: "Based on your question about campaigns and marketing, here's how Qloo's cross-domain intelligence can help:\n\n" +
				"Cultural intelligence reveals that successful campaigns often tap into cross-domain affinities. For example, Qloo data " +
				"shows that audiences who prefer indie music are 87% more likely to engage with sustainable fashion brands.\n\n" +
				"This creates opportunities for authentic brand partnerships that resonate with your audience's cultural DNA.",
			Data: culture.StrategistData{
				CulturalInsights: []string{
					"Cross-domain affinities drive campaign engagement",
					"Authentic cultural connections outperform generic messaging",
					"Audience cultural DNA predicts campaign success",
				},
				QlooAffinities: []culture.Affinity{
					{Source: "Indie Music", Target: "Sustainable Fashion", Score: 87},
					{Source: "Plant-based Food", Target: "Eco-travel", Score: 92},
					{Source: "Vintage Fashion", Target: "Artisanal Food", Score: 79},
				},
				Recommendations: []string{
					"Partner with brands that align with your audience's cultural preferences",
					"Use Qloo data to identify authentic cross-domain opportunities",
					"Create campaigns that reflect your audience's cultural identity",
				},
			},
		}
	case strings.Contains(lower, "trend") || strings.Contains(lower, "forecast"):
		return culture.StrategistReply{
			Response: "Cultural forecasting using Qloo's cross-domain data reveals emerging patterns:\n\n" +
				"The intersection of sustainability and authenticity is creating new cultural movements. Qloo data shows that audiences " +
				"who value sustainable fashion are increasingly seeking authentic experiences across all domains.\n\n" +
				"This trend is driving demand for brands that can deliver both environmental consciousness and genuine cultural connection.",
			Data: culture.StrategistData{
				CulturalInsights: []string{
					"Sustainability crosses all cultural domains",
					"Authenticity is becoming a universal cultural value",
					"Cross-domain cultural movements drive market opportunities",
				},
				QlooAffinities: []culture.Affinity{
					{Source: "Sustainable Fashion", Target: "Eco-travel", Score: 89},
					{Source: "Plant-based Food", Target: "Indie Music", Score: 76},
					{Source: "Vintage Culture", Target: "Artisanal Products", Score: 84},
				},
				Recommendations: []string{
					"Align your brand with emerging cultural movements",
					"Leverage cross-domain sustainability trends",
					"Build authentic connections across cultural domains",
				},
			},
		}
	default:
		return culture.StrategistReply{
			Response: "Thank you for your question! As a Cultural Strategist powered by Qloo's cross-domain intelligence, I can help you " +
				"understand how cultural preferences connect across different domains.\n\n" +
				"Qloo's unique data reveals that cultural affinities often span multiple areas - from music and fashion to food and travel. " +
				"This creates opportunities for brands to create more authentic, culturally-relevant experiences.\n\n" +
				"What specific aspect of cultural strategy would you like to explore? I can help with campaign insights, trend forecasting, " +
				"audience analysis, or brand-culture alignment.",
			Data: culture.StrategistData{
				CulturalInsights: []string{
					"Cultural preferences connect across multiple domains",
					"Authentic cultural connections drive brand success",
					"Qloo data reveals hidden cultural affinities",
				},
				QlooAffinities: []culture.Affinity{
					{Source: "Indie Music", Target: "Vintage Fashion", Score: 87},
					{Source: "Plant-based Food", Target: "Eco-travel", Score: 92},
					{Source: "Hip-hop Culture", Target: "Streetwear", Score: 94},
				},
				Recommendations: []string{
					"Use Qloo data to identify authentic brand partnerships",
					"Create campaigns that reflect cross-domain cultural affinities",
					"Build cultural intelligence into your marketing strategy",
				},
			},
		}
	}
}
