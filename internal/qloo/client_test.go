package qloo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Shivakarthikeya23/CultureSense/internal/culture"
)

func insightsServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestCrossDomainRecommendations(t *testing.T) {
	domains := []string{"music", "fashion"}
	prefs := map[string]string{"music": "indie", "fashion": "vintage"}

	t.Run("both seeds succeed", func(t *testing.T) {
		var gotEntities []string
		srv := insightsServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/insights/", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
			assert.Equal(t, "urn:entity:place", r.URL.Query().Get("filter.type"))
			assert.Equal(t, "New York", r.URL.Query().Get("filter.location.query"))
			gotEntities = append(gotEntities, r.URL.Query().Get("signal.interests.entities"))

			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"results": map[string]interface{}{
					"entities": []interface{}{
						map[string]interface{}{"name": "Balthazar"},
						map[string]interface{}{"name": "Locanda Verde"},
					},
				},
			})
		})

		c := NewClient(srv.URL, "test-key", zap.NewNop())
		bundle, err := c.CrossDomainRecommendations(context.Background(), domains, prefs)
		require.NoError(t, err)

		assert.Equal(t, SeedEntities, gotEntities)
		require.Len(t, bundle.QlooRecommendations, 2)
		assert.Equal(t, SeedEntities[0], bundle.QlooRecommendations[0].SourceEntity)
		assert.Equal(t, 2, bundle.QlooRecommendations[0].TotalCount)
		assert.NotEmpty(t, bundle.CulturalSegments)
		assert.NotEmpty(t, bundle.QlooInsights)
	})

	t.Run("one seed fails", func(t *testing.T) {
		var calls int
		srv := insightsServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"results": map[string]interface{}{"entities": []interface{}{}},
			})
		})

		c := NewClient(srv.URL, "test-key", zap.NewNop())
		bundle, err := c.CrossDomainRecommendations(context.Background(), domains, prefs)
		require.NoError(t, err)

		require.Len(t, bundle.QlooRecommendations, 1)
		assert.Equal(t, SeedEntities[1], bundle.QlooRecommendations[0].SourceEntity)
		assert.Equal(t, 0, bundle.QlooRecommendations[0].TotalCount)
		assert.Empty(t, bundle.QlooRecommendations[0].Recommendations)
		assert.NotNil(t, bundle.QlooRecommendations[0].Recommendations)
		assert.NotEmpty(t, bundle.CulturalSegments)
	})

	t.Run("every seed fails yields the empty bundle", func(t *testing.T) {
		srv := insightsServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		c := NewClient(srv.URL, "test-key", zap.NewNop())
		bundle, err := c.CrossDomainRecommendations(context.Background(), domains, prefs)
		require.NoError(t, err)
		assert.Equal(t, culture.EmptyBundle(), bundle)
	})

	t.Run("success false counts as failure", func(t *testing.T) {
		srv := insightsServer(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false})
		})

		c := NewClient(srv.URL, "test-key", zap.NewNop())
		bundle, err := c.CrossDomainRecommendations(context.Background(), domains, prefs)
		require.NoError(t, err)
		assert.Equal(t, culture.EmptyBundle(), bundle)
	})

	t.Run("unreachable server yields the empty bundle", func(t *testing.T) {
		c := NewClient("http://127.0.0.1:1", "test-key", zap.NewNop())
		bundle, err := c.CrossDomainRecommendations(context.Background(), domains, prefs)
		require.NoError(t, err)
		assert.Equal(t, culture.EmptyBundle(), bundle)
	})
}
