package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersona(t *testing.T) {
	t.Run("classical music selects the cultural curator", func(t *testing.T) {
		p := Persona(map[string]string{"music": "Classical, opera"})
		assert.Equal(t, "cultural-curator", p.PersonaType)
		assert.Equal(t, "The Cultural Curator", p.PersonaName)
	})

	t.Run("spicy food selects the adventure seeker", func(t *testing.T) {
		p := Persona(map[string]string{"food": "spicy street food"})
		assert.Equal(t, "adventure-seeker", p.PersonaType)
	})

	t.Run("beach travel selects the adventure seeker", func(t *testing.T) {
		p := Persona(map[string]string{"travel": "Beaches and islands"})
		assert.Equal(t, "adventure-seeker", p.PersonaType)
	})

	t.Run("no keyword match selects the conscious explorer", func(t *testing.T) {
		p := Persona(map[string]string{"music": "pop", "food": "pizza"})
		assert.Equal(t, "conscious-explorer", p.PersonaType)
		assert.Equal(t, "The Conscious Explorer", p.PersonaName)
	})

	t.Run("curator rule wins when both rules match", func(t *testing.T) {
		// "vintage" hits the curator rule, "spicy" the adventure rule; the
		// curator check runs first.
		p := Persona(map[string]string{"fashion": "vintage", "food": "spicy"})
		assert.Equal(t, "cultural-curator", p.PersonaType)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		prefs := map[string]string{"music": "classical", "fashion": "vintage"}
		first := Persona(prefs)
		second := Persona(prefs)
		assert.Equal(t, first, second)
	})

	t.Run("empty preferences substitute domain defaults in prose", func(t *testing.T) {
		p := Persona(map[string]string{})

		require.Equal(t, "conscious-explorer", p.PersonaType)
		assert.Contains(t, p.Description, "indie, alternative")
		assert.Contains(t, p.Description, "vintage, sustainable")
		assert.Contains(t, p.ShareText, "plant-based, fusion")
		for _, insight := range p.CrossDomainInsights {
			assert.NotContains(t, insight, "undefined")
		}
	})

	t.Run("input preferences are echoed verbatim", func(t *testing.T) {
		prefs := map[string]string{"music": "k-pop"}
		p := Persona(prefs)
		assert.Equal(t, prefs, p.Preferences)
	})

	t.Run("every branch fills the full record", func(t *testing.T) {
		for _, prefs := range []map[string]string{
			{"music": "classical"},
			{"food": "spicy"},
			{},
		} {
			p := Persona(prefs)
			assert.NotEmpty(t, p.PersonaType)
			assert.NotEmpty(t, p.Description)
			assert.Len(t, p.CulturalTraits, 5)
			assert.Len(t, p.CrossDomainInsights, 3)
			assert.Len(t, p.QlooAffinities, 3)
			assert.NotEmpty(t, p.CulturalForecast)
			assert.NotEmpty(t, p.ShareText)
		}
	})
}

func TestStrategist(t *testing.T) {
	t.Run("campaign questions get the campaign reply", func(t *testing.T) {
		reply := Strategist("How should I plan my next marketing campaign?", nil)
		assert.Contains(t, reply.Response, "campaigns and marketing")
		assert.Len(t, reply.Data.QlooAffinities, 3)
	})

	t.Run("trend questions get the forecasting reply", func(t *testing.T) {
		reply := Strategist("What cultural trends should we watch?", nil)
		assert.Contains(t, reply.Response, "Cultural forecasting")
	})

	t.Run("anything else gets the generic reply", func(t *testing.T) {
		reply := Strategist("Tell me about cultural intelligence", nil)
		assert.Contains(t, reply.Response, "What specific aspect of cultural strategy")
		assert.Len(t, reply.Data.CulturalInsights, 3)
		assert.Len(t, reply.Data.Recommendations, 3)
	})
}

func TestBrandCultureAlignment(t *testing.T) {
	payload := BrandCultureAlignment("Acme", "urban creatives", []string{"music"})

	profile, ok := payload["brand_culture_profile"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Acme represents innovation and authenticity", profile["brand_identity"])
	assert.Contains(t, profile["audience_cultural_dna"], "urban creatives")
	assert.Contains(t, payload, "cross_domain_opportunities")
	assert.Contains(t, payload, "cultural_risk_assessment")
	assert.Contains(t, payload, "qloo_recommendations")
}

func TestMarketIntelligence(t *testing.T) {
	payload := MarketIntelligence([]string{"music"}, "US", "6 months")

	assert.Contains(t, payload, "cultural_trends")
	assert.Contains(t, payload, "cross_domain_patterns")
	assert.Contains(t, payload, "market_recommendations")
}
