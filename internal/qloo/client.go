// Package qloo is the cultural-affinity service adapter. It queries the
// insights endpoint once per fixed seed entity, tolerating per-entity
// failures, and aggregates whatever succeeded into one bundle.
package qloo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/Shivakarthikeya23/CultureSense/internal/culture"
	"github.com/Shivakarthikeya23/CultureSense/internal/fallback"
)

// SeedEntities are the fixed place identifiers used to seed recommendation
// lookups: Balthazar and Locanda Verde.
var SeedEntities = []string{
	"FCE8B172-4795-43E4-B222-3B550DC05FD9",
	"2D1D86F3-67B0-4C69-983E-CB65F9161F4B",
}

const entityTimeout = 10 * time.Second

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL, apiKey string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: entityTimeout},
		logger:  logger,
	}
}

// insightsResponse is the subset of the insights endpoint's reply we read.
type insightsResponse struct {
	Success bool `json:"success"`
	Results struct {
		Entities []interface{} `json:"entities"`
	} `json:"results"`
}

// CrossDomainRecommendations runs the per-seed lookup loop. Each entity's
// failure is logged and skipped; when at least one succeeds the bundle also
// carries generator-built segments and insights, and when every call fails
// the empty-collections bundle is returned instead of an error.
func (c *Client) CrossDomainRecommendations(ctx context.Context, domains []string, prefs map[string]string) (culture.QlooInsightsBundle, error) {
	bundle := culture.EmptyBundle()

	for _, entityID := range SeedEntities {
		rec, err := c.lookupEntity(ctx, entityID)
		if err != nil {
			c.logger.Warn("qloo entity lookup failed",
				zap.String("entity", entityID),
				zap.Error(err))
			continue
		}
		bundle.QlooRecommendations = append(bundle.QlooRecommendations, rec)
	}

	if len(bundle.QlooRecommendations) == 0 {
		return culture.EmptyBundle(), nil
	}

	bundle.CulturalSegments = fallback.CulturalSegments(domains, prefs)
	bundle.QlooInsights = fallback.QlooInsights(domains, prefs)
	return bundle, nil
}

func (c *Client) lookupEntity(ctx context.Context, entityID string) (culture.EntityRecommendation, error) {
	callCtx, cancel := context.WithTimeout(ctx, entityTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("filter.type", "urn:entity:place")
	params.Set("signal.interests.entities", entityID)
	params.Set("filter.location.query", "New York")

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, c.baseURL+"/v2/insights/?"+params.Encode(), nil)
	if err != nil {
		return culture.EntityRecommendation{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return culture.EntityRecommendation{}, fmt.Errorf("insights request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return culture.EntityRecommendation{}, fmt.Errorf("insights request: status %d: %s", resp.StatusCode, body)
	}

	var parsed insightsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return culture.EntityRecommendation{}, fmt.Errorf("decode insights response: %w", err)
	}
	if !parsed.Success {
		return culture.EntityRecommendation{}, fmt.Errorf("insights response not successful")
	}

	entities := parsed.Results.Entities
	if entities == nil {
		entities = []interface{}{}
	}
	return culture.EntityRecommendation{
		SourceEntity:    entityID,
		Recommendations: entities,
		TotalCount:      len(entities),
	}, nil
}
