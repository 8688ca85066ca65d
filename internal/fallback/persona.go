package fallback

import (
	"fmt"
	"strings"

	"github.com/Shivakarthikeya23/CultureSense/internal/culture"
)

// personaRule pairs a keyword predicate with the template that builds the
// full persona. Rules are evaluated top to bottom and the first match wins;
// preferences containing keywords from more than one rule resolve to the
// earlier rule.
type personaRule struct {
	matches func(p loweredPrefs) bool
	build   func(prefs map[string]string) culture.PersonaRecord
}

type loweredPrefs struct {
	music, fashion, food, travel, books string
}

func lowerPrefs(prefs map[string]string) loweredPrefs {
	return loweredPrefs{
		music:   strings.ToLower(prefs[culture.DomainMusic]),
		fashion: strings.ToLower(prefs[culture.DomainFashion]),
		food:    strings.ToLower(prefs[culture.DomainFood]),
		travel:  strings.ToLower(prefs[culture.DomainTravel]),
		books:   strings.ToLower(prefs[culture.DomainBooks]),
	}
}

var personaRules = []personaRule{
	{
		matches: func(p loweredPrefs) bool {
			return strings.Contains(p.music, "classical") ||
				strings.Contains(p.music, "mass") ||
				strings.Contains(p.fashion, "vintage") ||
				strings.Contains(p.food, "indian") ||
				strings.Contains(p.food, "korean")
		},
		build: culturalCuratorPersona,
	},
	{
		matches: func(p loweredPrefs) bool {
			return strings.Contains(p.fashion, "baggy") ||
				strings.Contains(p.food, "spicy") ||
				strings.Contains(p.travel, "mountains") ||
				strings.Contains(p.travel, "beaches")
		},
		build: adventureSeekerPersona,
	},
}

// Persona classifies the caller's preferences into a canonical persona
// template. Deterministic: no randomness, no clock reads.
func Persona(prefs map[string]string) culture.PersonaRecord {
	if prefs == nil {
		prefs = map[string]string{}
	}
	lowered := lowerPrefs(prefs)
	for _, rule := range personaRules {
		if rule.matches(lowered) {
			return rule.build(prefs)
		}
	}
	return consciousExplorerPersona(prefs)
}

func culturalCuratorPersona(prefs map[string]string) culture.PersonaRecord {
	music := culture.Preference(prefs, culture.DomainMusic)
	fashion := culture.Preference(prefs, culture.DomainFashion)
	food := culture.Preference(prefs, culture.DomainFood)
	travel := culture.Preference(prefs, culture.DomainTravel)

	return culture.PersonaRecord{
		PersonaType: culture.PersonaCulturalCurator,
		PersonaName: "The Cultural Curator",
		Description: fmt.Sprintf("Your cultural DNA reveals a sophisticated appreciation for diverse traditions and authentic experiences. "+
			"You value depth over trends, seeking meaningful connections across cultures and time periods. "+
			"Your preferences for %s, %s, and %s reflect a refined palate that bridges classical elegance with contemporary global influences.",
			music, fashion, food),
		CulturalTraits: []string{
			"Culturally sophisticated",
			"Tradition-respecting",
			"Globally curious",
			"Authenticity-seeking",
			"Depth-oriented",
		},
		Preferences: prefs,
		CrossDomainInsights: []string{
			fmt.Sprintf("Your %s preferences connect with sophisticated fashion choices, creating a cohesive aesthetic identity", music),
			fmt.Sprintf("%s choices reveal a willingness to explore complex flavors and cultural traditions", food),
			fmt.Sprintf("%s preferences suggest a desire for meaningful, culturally-rich experiences", travel),
		},
		QlooAffinities: []culture.Affinity{
			{Source: "Classical Music", Target: "Vintage Fashion", Score: 89},
			{Source: "Global Cuisine", Target: "Cultural Travel", Score: 92},
			{Source: "Traditional Arts", Target: "Authentic Experiences", Score: 87},
		},
		CulturalForecast: "In 2026, your cultural preferences will align with a growing movement toward 'slow culture' - " +
			"valuing depth, tradition, and authentic cross-cultural connections over fast-paced trends.",
		ShareText: fmt.Sprintf("Just discovered my cultural DNA! I'm \"The Cultural Curator\" - someone who values authentic traditions "+
			"and meaningful cross-cultural connections. My preferences for %s, %s, and %s reveal a sophisticated appreciation "+
			"for global culture. #CultureSense #CulturalIntelligence", music, fashion, food),
	}
}

func adventureSeekerPersona(prefs map[string]string) culture.PersonaRecord {
	music := culture.Preference(prefs, culture.DomainMusic)
	fashion := culture.Preference(prefs, culture.DomainFashion)
	food := culture.Preference(prefs, culture.DomainFood)
	travel := culture.Preference(prefs, culture.DomainTravel)

	return culture.PersonaRecord{
		PersonaType: "adventure-seeker",
		PersonaName: "The Adventure Seeker",
		Description: fmt.Sprintf("Your cultural DNA reveals an adventurous spirit that thrives on bold experiences and natural connections. "+
			"You're drawn to intensity and authenticity, whether it's %s flavors, %s comfort, or %s destinations. "+
			"Your preferences suggest someone who values genuine experiences over curated perfection.",
			food, fashion, travel),
		CulturalTraits: []string{
			"Adventure-loving",
			"Intensity-seeking",
			"Nature-connected",
			"Authenticity-driven",
			"Experience-focused",
		},
		Preferences: prefs,
		CrossDomainInsights: []string{
			fmt.Sprintf("Your %s preferences for bold flavors connect with your adventurous %s choices", food, travel),
			fmt.Sprintf("%s comfort-first approach aligns with your practical, experience-oriented lifestyle", fashion),
			fmt.Sprintf("%s choices likely reflect your preference for authentic, unfiltered cultural expression", music),
		},
		QlooAffinities: []culture.Affinity{
			{Source: "Adventure Travel", Target: "Bold Cuisine", Score: 91},
			{Source: "Natural Experiences", Target: "Comfortable Fashion", Score: 88},
			{Source: "Authentic Culture", Target: "Intense Flavors", Score: 85},
		},
		CulturalForecast: "In 2026, your preference for authentic, intense experiences will align with a growing cultural movement " +
			"toward 'raw authenticity' - valuing genuine, unfiltered cultural expressions over polished presentations.",
		ShareText: fmt.Sprintf("My cultural DNA reveals I'm \"The Adventure Seeker\"! I love bold experiences, from %s to %s. "+
			"My %s and %s choices show I value authenticity over perfection. #CultureSense #AdventureSeeker",
			food, travel, fashion, music),
	}
}

func consciousExplorerPersona(prefs map[string]string) culture.PersonaRecord {
	music := culture.Preference(prefs, culture.DomainMusic)
	fashion := culture.Preference(prefs, culture.DomainFashion)
	food := culture.Preference(prefs, culture.DomainFood)
	travel := culture.Preference(prefs, culture.DomainTravel)

	return culture.PersonaRecord{
		PersonaType: culture.PersonaConsciousExplorer,
		PersonaName: "The Conscious Explorer",
		Description: fmt.Sprintf("Your cultural DNA reveals a unique blend of preferences that creates a distinctive cultural identity. "+
			"Your choices in %s, %s, %s, and %s reflect a personality that values authenticity and meaningful experiences. "+
			"You're someone who appreciates both tradition and innovation, creating a cultural profile that's uniquely yours.",
			music, fashion, food, travel),
		CulturalTraits: []string{
			"Authenticity-seeking",
			"Balanced",
			"Experience-oriented",
			"Culturally curious",
			"Individualistic",
		},
		Preferences: prefs,
		CrossDomainInsights: []string{
			fmt.Sprintf("Your %s and %s choices create a cohesive personal aesthetic", music, fashion),
			fmt.Sprintf("%s preferences reveal your approach to cultural exploration and comfort", food),
			fmt.Sprintf("%s destinations reflect your values and desired experiences", travel),
		},
		QlooAffinities: []culture.Affinity{
			{Source: "Personal Style", Target: "Cultural Preferences", Score: 87},
			{Source: "Food Choices", Target: "Travel Destinations", Score: 84},
			{Source: "Music Taste", Target: "Fashion Style", Score: 82},
		},
		CulturalForecast: "In 2026, your balanced approach to cultural preferences will align with a growing movement toward " +
			"'personalized culture' - where individuals create unique cultural identities that blend multiple influences authentically.",
		ShareText: fmt.Sprintf("Just discovered my cultural DNA! My preferences for %s, %s, %s, and %s reveal a unique cultural "+
			"identity that values authenticity and meaningful experiences. #CultureSense #PersonalCulture",
			music, fashion, food, travel),
	}
}
