package culture

// CrossDomainInsight describes one claimed connection between two domains.
type CrossDomainInsight struct {
	SourceDomain         string   `json:"source_domain"`
	TargetDomain         string   `json:"target_domain"`
	AffinityScore        string   `json:"affinity_score"`
	ConnectionType       string   `json:"connection_type"`
	CulturalPattern      string   `json:"cultural_pattern"`
	BusinessImplications []string `json:"business_implications"`
	Confidence           string   `json:"confidence"`
}

// CulturalSegment is an illustrative audience segment. Market sizes across
// segments are independent estimates, not a partition of 100%.
type CulturalSegment struct {
	SegmentName           string   `json:"segment_name"`
	Characteristics       []string `json:"characteristics"`
	Preferences           []string `json:"preferences"`
	MarketSize            string   `json:"market_size"`
	BusinessOpportunities []string `json:"business_opportunities"`
}

// EntityRecommendation aggregates one seed entity's recommendations from the
// affinity service.
type EntityRecommendation struct {
	SourceEntity    string        `json:"source_entity"`
	Recommendations []interface{} `json:"recommendations"`
	TotalCount      int           `json:"total_count"`
}

// QlooInsightsBundle carries the affinity sub-result merged into every
// analysis response as qloo_data. On total adapter failure every field is an
// empty collection, never omitted and never nil.
type QlooInsightsBundle struct {
	CrossDomainAffinities map[string]interface{} `json:"cross_domain_affinities"`
	CulturalSegments      []CulturalSegment      `json:"cultural_segments"`
	QlooInsights          []string               `json:"qloo_insights"`
	QlooRecommendations   []EntityRecommendation `json:"qloo_recommendations"`
}

// EmptyBundle returns a bundle with all collections allocated and empty.
func EmptyBundle() QlooInsightsBundle {
	return QlooInsightsBundle{
		CrossDomainAffinities: map[string]interface{}{},
		CulturalSegments:      []CulturalSegment{},
		QlooInsights:          []string{},
		QlooRecommendations:   []EntityRecommendation{},
	}
}

// Affinity is a source→target score triple surfaced in personas and
// strategist replies.
type Affinity struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Score  int    `json:"score"`
}

// The five persona types.
const (
	PersonaConsciousExplorer  = "conscious-explorer"
	PersonaUrbanTrendsetter   = "urban-trendsetter"
	PersonaCulturalCurator    = "cultural-curator"
	PersonaWellnessEnthusiast = "wellness-enthusiast"
	PersonaCreativeRebel      = "creative-rebel"
)

// PersonaRecord is the full cultural-persona payload.
type PersonaRecord struct {
	PersonaType         string            `json:"persona_type"`
	PersonaName         string            `json:"persona_name"`
	Description         string            `json:"description"`
	CulturalTraits      []string          `json:"cultural_traits"`
	Preferences         map[string]string `json:"preferences"`
	CrossDomainInsights []string          `json:"cross_domain_insights"`
	QlooAffinities      []Affinity        `json:"qloo_affinities"`
	CulturalForecast    string            `json:"cultural_forecast"`
	ShareText           string            `json:"share_text"`
}

// StrategistReply is the conversational endpoint's payload.
type StrategistReply struct {
	Response string         `json:"response"`
	Data     StrategistData `json:"data"`
}

// StrategistData is the structured portion of a strategist reply.
type StrategistData struct {
	CulturalInsights []string   `json:"cultural_insights"`
	QlooAffinities   []Affinity `json:"qloo_affinities"`
	Recommendations  []string   `json:"recommendations"`
}

// ChatMessage is one turn of strategist conversation history.
type ChatMessage struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
