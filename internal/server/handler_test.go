package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Shivakarthikeya23/CultureSense/internal/analysis"
	"github.com/Shivakarthikeya23/CultureSense/internal/auth"
	"github.com/Shivakarthikeya23/CultureSense/internal/culture"
	"github.com/Shivakarthikeya23/CultureSense/internal/storage"
)

// failingGen always errors so responses come from the fallback generators.
// It counts calls so validation tests can assert nothing reached it.
type failingGen struct {
	calls int
}

func (f *failingGen) touch() error {
	f.calls++
	return errors.New("adapter unavailable")
}

func (f *failingGen) CrossDomainAnalysis(context.Context, []string, map[string]string) (map[string]interface{}, error) {
	return nil, f.touch()
}

func (f *failingGen) BrandCultureAlignment(context.Context, string, string, []string) (map[string]interface{}, error) {
	return nil, f.touch()
}

func (f *failingGen) MarketIntelligence(context.Context, []string, string, string) (map[string]interface{}, error) {
	return nil, f.touch()
}

func (f *failingGen) CulturalPersona(context.Context, map[string]string) (map[string]interface{}, error) {
	return nil, f.touch()
}

func (f *failingGen) Strategist(context.Context, string, []culture.ChatMessage) (culture.StrategistReply, error) {
	return culture.StrategistReply{}, f.touch()
}

type failingAff struct {
	calls int
}

func (f *failingAff) CrossDomainRecommendations(context.Context, []string, map[string]string) (culture.QlooInsightsBundle, error) {
	f.calls++
	return culture.QlooInsightsBundle{}, errors.New("affinity unavailable")
}

type testEnv struct {
	router *gin.Engine
	gen    *failingGen
	aff    *failingAff
	repo   *storage.MemoryStore
}

func newTestEnv(t *testing.T, provider auth.Provider) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gen := &failingGen{}
	aff := &failingAff{}
	repo := storage.NewMemoryStore()
	logger := zap.NewNop()

	h := NewHandler(analysis.NewService(gen, aff, logger), repo, provider, logger)
	router := gin.New()
	h.Routes(router)

	return &testEnv{router: router, gen: gen, aff: aff, repo: repo}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCrossDomainAnalysisEndpoint(t *testing.T) {
	t.Run("missing domains is rejected before any adapter runs", func(t *testing.T) {
		env := newTestEnv(t, auth.StaticProvider{UserID: "u1"})

		w := env.do(t, http.MethodPost, "/api/profile/cross-domain-analysis",
			map[string]interface{}{"preferences": map[string]string{"music": "indie"}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Valid domains array is required", decodeObject(t, w)["error"])
		assert.Zero(t, env.gen.calls)
		assert.Zero(t, env.aff.calls)
	})

	t.Run("empty domains array is rejected", func(t *testing.T) {
		env := newTestEnv(t, auth.StaticProvider{UserID: "u1"})
		w := env.do(t, http.MethodPost, "/api/profile/cross-domain-analysis",
			map[string]interface{}{"domains": []string{}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed JSON is rejected", func(t *testing.T) {
		env := newTestEnv(t, auth.StaticProvider{UserID: "u1"})
		req := httptest.NewRequest(http.MethodPost, "/api/profile/cross-domain-analysis",
			bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, env.gen.calls)
	})

	t.Run("failing adapters still produce a complete 200 response", func(t *testing.T) {
		env := newTestEnv(t, auth.StaticProvider{UserID: "u1"})

		w := env.do(t, http.MethodPost, "/api/profile/cross-domain-analysis",
			map[string]interface{}{
				"domains":     []string{"music", "fashion"},
				"preferences": map[string]string{"music": "indie"},
			})

		require.Equal(t, http.StatusOK, w.Code)
		out := decodeObject(t, w)
		assert.Contains(t, out, "cross_domain_insights")
		assert.Contains(t, out, "cultural_segments")
		assert.Contains(t, out, "qloo_insights")

		qlooData, ok := out["qloo_data"].(map[string]interface{})
		require.True(t, ok)
		assert.Empty(t, qlooData["qloo_recommendations"])

		meta, ok := out["analysis_metadata"].(map[string]interface{})
		require.True(t, ok)
		assert.NotEmpty(t, meta["generated_at"])
		assert.Equal(t, 1, env.gen.calls)
		assert.Equal(t, 1, env.aff.calls)
	})
}

func TestBrandAndMarketEndpoints(t *testing.T) {
	t.Run("brand alignment requires brand and audience", func(t *testing.T) {
		env := newTestEnv(t, auth.StaticProvider{UserID: "u1"})
		w := env.do(t, http.MethodPost, "/api/profile/brand-culture-alignment",
			map[string]interface{}{"brand": "Acme", "domains": []string{"music"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Brand, target audience, and domains array are required", decodeObject(t, w)["error"])
		assert.Zero(t, env.gen.calls)
	})

	t.Run("brand alignment succeeds on fallback", func(t *testing.T) {
		env := newTestEnv(t, auth.StaticProvider{UserID: "u1"})
		w := env.do(t, http.MethodPost, "/api/profile/brand-culture-alignment",
			map[string]interface{}{
				"brand":          "Acme",
				"targetAudience": "urban creatives",
				"domains":        []string{"music"},
			})
		require.Equal(t, http.StatusOK, w.Code)
		out := decodeObject(t, w)
		assert.Contains(t, out, "brand_culture_profile")
		meta := out["analysis_metadata"].(map[string]interface{})
		assert.Equal(t, "Acme", meta["brand"])
	})

	t.Run("market intelligence succeeds on fallback", func(t *testing.T) {
		env := newTestEnv(t, auth.StaticProvider{UserID: "u1"})
		w := env.do(t, http.MethodPost, "/api/profile/cultural-market-intelligence",
			map[string]interface{}{"domains": []string{"music"}, "region": "US", "timeframe": "6 months"})
		require.Equal(t, http.StatusOK, w.Code)
		out := decodeObject(t, w)
		assert.Contains(t, out, "cultural_trends")
		meta := out["analysis_metadata"].(map[string]interface{})
		assert.Equal(t, "US", meta["region"])
	})

	t.Run("legacy aliases route to the same handlers", func(t *testing.T) {
		env := newTestEnv(t, auth.StaticProvider{UserID: "u1"})

		w := env.do(t, http.MethodPost, "/api/profile/analyze-trends",
			map[string]interface{}{"domains": []string{"music"}})
		assert.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodPost, "/api/profile/campaign-insights",
			map[string]interface{}{
				"brand":          "Acme",
				"targetAudience": "creatives",
				"domains":        []string{"music"},
			})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPersonaAndStrategistEndpoints(t *testing.T) {
	t.Run("persona falls back to the deterministic template", func(t *testing.T) {
		env := newTestEnv(t, auth.StaticProvider{UserID: "u1"})
		w := env.do(t, http.MethodPost, "/api/profile/cultural-persona",
			map[string]interface{}{"preferences": map[string]string{"music": "classical"}})
		require.Equal(t, http.StatusOK, w.Code)
		out := decodeObject(t, w)
		assert.Equal(t, "cultural-curator", out["persona_type"])
		assert.NotEmpty(t, out["share_text"])
	})

	t.Run("strategist requires a message", func(t *testing.T) {
		env := newTestEnv(t, auth.StaticProvider{UserID: "u1"})
		w := env.do(t, http.MethodPost, "/api/profile/cultural-strategist",
			map[string]interface{}{"message": ""})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Valid message is required", decodeObject(t, w)["error"])
		assert.Zero(t, env.gen.calls)
	})

	t.Run("strategist falls back to the canned reply", func(t *testing.T) {
		env := newTestEnv(t, auth.StaticProvider{UserID: "u1"})
		w := env.do(t, http.MethodPost, "/api/profile/cultural-strategist",
			map[string]interface{}{
				"message":             "help with my campaign",
				"conversationHistory": []map[string]string{{"type": "user", "content": "hi"}},
			})
		require.Equal(t, http.StatusOK, w.Code)
		out := decodeObject(t, w)
		assert.Contains(t, out["response"], "campaigns and marketing")
		assert.Contains(t, out, "data")
	})
}

func TestPersonaStore(t *testing.T) {
	record := map[string]interface{}{
		"persona_type": "conscious-explorer",
		"persona_name": "The Conscious Explorer",
	}

	t.Run("unauthenticated requests get 401", func(t *testing.T) {
		env := newTestEnv(t, auth.HeaderProvider{})
		w := env.do(t, http.MethodGet, "/api/personas", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Authentication required", decodeObject(t, w)["error"])
	})

	t.Run("save then list then get then delete", func(t *testing.T) {
		env := newTestEnv(t, auth.StaticProvider{UserID: "u1"})

		w := env.do(t, http.MethodPost, "/api/personas", record)
		require.Equal(t, http.StatusCreated, w.Code)
		saved := decodeObject(t, w)
		id, ok := saved["id"].(string)
		require.True(t, ok)
		require.NotEmpty(t, id)

		w = env.do(t, http.MethodGet, "/api/personas", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 1)

		w = env.do(t, http.MethodGet, "/api/personas/"+id, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodDelete, "/api/personas/"+id, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodGet, "/api/personas/"+id, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("another user's persona reads as not found", func(t *testing.T) {
		env := newTestEnv(t, auth.StaticProvider{UserID: "owner"})
		saved, err := env.repo.CreatePersona(context.Background(), "someone-else", culture.PersonaRecord{})
		require.NoError(t, err)

		w := env.do(t, http.MethodGet, "/api/personas/"+saved.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = env.do(t, http.MethodDelete, "/api/personas/"+saved.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAnalysisStore(t *testing.T) {
	t.Run("save requires type and payload", func(t *testing.T) {
		env := newTestEnv(t, auth.StaticProvider{UserID: "u1"})
		w := env.do(t, http.MethodPost, "/api/analyses",
			map[string]interface{}{"analysis_type": "cross-domain"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list supports the type filter", func(t *testing.T) {
		env := newTestEnv(t, auth.StaticProvider{UserID: "u1"})

		for _, at := range []string{"cross-domain", "cross-domain", "brand"} {
			w := env.do(t, http.MethodPost, "/api/analyses", map[string]interface{}{
				"analysis_type": at,
				"payload":       map[string]interface{}{"k": "v"},
			})
			require.Equal(t, http.StatusCreated, w.Code)
		}

		w := env.do(t, http.MethodGet, "/api/analyses?type=cross-domain", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Len(t, list, 2)

		w = env.do(t, http.MethodGet, "/api/analyses", nil)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Len(t, list, 3)
	})

	t.Run("delete removes the analysis", func(t *testing.T) {
		env := newTestEnv(t, auth.StaticProvider{UserID: "u1"})
		saved, err := env.repo.CreateAnalysis(context.Background(), "u1", "brand", map[string]interface{}{})
		require.NoError(t, err)

		w := env.do(t, http.MethodDelete, "/api/analyses/"+saved.ID, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodGet, "/api/analyses/"+saved.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestExportEndpoint(t *testing.T) {
	t.Run("missing data payload is rejected", func(t *testing.T) {
		env := newTestEnv(t, auth.StaticProvider{UserID: "u1"})
		w := env.do(t, http.MethodPost, "/api/export/report",
			map[string]interface{}{"domains": []string{"music"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("renders a plain text report", func(t *testing.T) {
		env := newTestEnv(t, auth.StaticProvider{UserID: "u1"})
		w := env.do(t, http.MethodPost, "/api/export/report", map[string]interface{}{
			"data": map[string]interface{}{
				"qloo_insights": []string{"Music fans cross into fashion"},
			},
			"domains":   []string{"music", "fashion"},
			"region":    "US",
			"timeframe": "6 months",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Music fans cross into fashion")
	})
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, auth.HeaderProvider{})
	w := env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
