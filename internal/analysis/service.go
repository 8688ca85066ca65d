// Package analysis coordinates the external adapters and the deterministic
// fallback generators. Every endpoint follows the same plan: race the
// adapter against an outer timeout, substitute the fallback on any failure,
// and wrap the result in the response envelope. External calls are attempted
// exactly once; the fallback path is the only recovery mechanism.
package analysis

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Shivakarthikeya23/CultureSense/internal/culture"
	"github.com/Shivakarthikeya23/CultureSense/internal/fallback"
)

// Outer timeouts per use case. Each exceeds the adapter's own per-call bound
// so a hang inside the adapter can never block the response past the outer
// limit.
const (
	crossDomainOuter = 30 * time.Second
	brandOuter       = 30 * time.Second
	marketOuter      = 30 * time.Second
	personaOuter     = 35 * time.Second
	strategistOuter  = 35 * time.Second
	affinityOuter    = 15 * time.Second
)

// Generative is the generative-text adapter contract.
type Generative interface {
	CrossDomainAnalysis(ctx context.Context, domains []string, prefs map[string]string) (map[string]interface{}, error)
	BrandCultureAlignment(ctx context.Context, brand, targetAudience string, domains []string) (map[string]interface{}, error)
	MarketIntelligence(ctx context.Context, domains []string, region, timeframe string) (map[string]interface{}, error)
	CulturalPersona(ctx context.Context, prefs map[string]string) (map[string]interface{}, error)
	Strategist(ctx context.Context, message string, history []culture.ChatMessage) (culture.StrategistReply, error)
}

// Affinity is the cultural-affinity adapter contract.
type Affinity interface {
	CrossDomainRecommendations(ctx context.Context, domains []string, prefs map[string]string) (culture.QlooInsightsBundle, error)
}

type Service struct {
	gen    Generative
	aff    Affinity
	logger *zap.Logger
}

func NewService(gen Generative, aff Affinity, logger *zap.Logger) *Service {
	return &Service{gen: gen, aff: aff, logger: logger}
}

// race runs call in its own goroutine and waits for the first of result or
// timeout. The result channel is buffered so a late loser settles silently,
// and a panic inside the call surfaces as an error rather than crashing the
// request.
func race[T any](ctx context.Context, timeout time.Duration, call func(context.Context) (T, error)) (T, error) {
	type outcome struct {
		value T
		err   error
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ch := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				ch <- outcome{zero, fmt.Errorf("adapter panicked: %v", r)}
			}
		}()
		v, err := call(callCtx)
		ch <- outcome{v, err}
	}()

	select {
	case out := <-ch:
		return out.value, out.err
	case <-callCtx.Done():
		var zero T
		return zero, fmt.Errorf("adapter exceeded %s bound: %w", timeout, callCtx.Err())
	}
}

// qlooData races the affinity adapter, falling back to the empty-collections
// bundle. Runs alongside the generative race; the two sub-results are
// independent.
func (s *Service) qlooData(ctx context.Context, domains []string, prefs map[string]string) culture.QlooInsightsBundle {
	bundle, err := race(ctx, affinityOuter, func(ctx context.Context) (culture.QlooInsightsBundle, error) {
		return s.aff.CrossDomainRecommendations(ctx, domains, prefs)
	})
	if err != nil {
		s.logger.Warn("qloo adapter failed, using empty bundle", zap.Error(err))
		return culture.EmptyBundle()
	}
	return bundle
}

// CrossDomainAnalysis produces the cross-domain analysis envelope. The
// generative and affinity calls run concurrently, each behind its own outer
// timeout and its own fallback.
func (s *Service) CrossDomainAnalysis(ctx context.Context, domains []string, prefs map[string]string) map[string]interface{} {
	qlooCh := make(chan culture.QlooInsightsBundle, 1)
	go func() {
		qlooCh <- s.qlooData(ctx, domains, prefs)
	}()

	payload, err := race(ctx, crossDomainOuter, func(ctx context.Context) (map[string]interface{}, error) {
		return s.gen.CrossDomainAnalysis(ctx, domains, prefs)
	})
	if err != nil {
		s.logger.Warn("gemini cross-domain analysis failed, using fallback", zap.Error(err))
		payload = fallback.CrossDomainAnalysis(domains, prefs)
	}

	return envelope(payload, <-qlooCh, map[string]interface{}{
		"domains":          domains,
		"qloo_integration": crossDomainIntegration,
	})
}

// BrandCultureAlignment produces the brand-alignment envelope.
func (s *Service) BrandCultureAlignment(ctx context.Context, brand, targetAudience string, domains []string) map[string]interface{} {
	qlooCh := make(chan culture.QlooInsightsBundle, 1)
	go func() {
		qlooCh <- s.qlooData(ctx, domains, map[string]string{})
	}()

	payload, err := race(ctx, brandOuter, func(ctx context.Context) (map[string]interface{}, error) {
		return s.gen.BrandCultureAlignment(ctx, brand, targetAudience, domains)
	})
	if err != nil {
		s.logger.Warn("gemini brand alignment failed, using fallback", zap.Error(err))
		payload = fallback.BrandCultureAlignment(brand, targetAudience, domains)
	}

	return envelope(payload, <-qlooCh, map[string]interface{}{
		"brand":            brand,
		"target_audience":  targetAudience,
		"domains":          domains,
		"qloo_integration": brandIntegration,
	})
}

// MarketIntelligence produces the market-intelligence envelope.
func (s *Service) MarketIntelligence(ctx context.Context, domains []string, region, timeframe string) map[string]interface{} {
	qlooCh := make(chan culture.QlooInsightsBundle, 1)
	go func() {
		qlooCh <- s.qlooData(ctx, domains, map[string]string{})
	}()

	payload, err := race(ctx, marketOuter, func(ctx context.Context) (map[string]interface{}, error) {
		return s.gen.MarketIntelligence(ctx, domains, region, timeframe)
	})
	if err != nil {
		s.logger.Warn("gemini market intelligence failed, using fallback", zap.Error(err))
		payload = fallback.MarketIntelligence(domains, region, timeframe)
	}

	return envelope(payload, <-qlooCh, map[string]interface{}{
		"domains":          domains,
		"region":           region,
		"timeframe":        timeframe,
		"qloo_integration": marketIntegration,
	})
}

// CulturalPersona returns the adapter's persona payload, or the
// deterministic fallback persona on any failure. Both shapes share the same
// top-level keys.
func (s *Service) CulturalPersona(ctx context.Context, prefs map[string]string) interface{} {
	payload, err := race(ctx, personaOuter, func(ctx context.Context) (map[string]interface{}, error) {
		return s.gen.CulturalPersona(ctx, prefs)
	})
	if err != nil {
		s.logger.Warn("gemini persona failed, using fallback", zap.Error(err))
		return fallback.Persona(prefs)
	}
	return payload
}

// Strategist returns the conversational reply, or the keyword-routed
// fallback reply on any failure.
func (s *Service) Strategist(ctx context.Context, message string, history []culture.ChatMessage) culture.StrategistReply {
	reply, err := race(ctx, strategistOuter, func(ctx context.Context) (culture.StrategistReply, error) {
		return s.gen.Strategist(ctx, message, history)
	})
	if err != nil {
		s.logger.Warn("gemini strategist failed, using fallback", zap.Error(err))
		return fallback.Strategist(message, history)
	}
	return reply
}
