// Package gemini is the generative-service adapter: it builds one prompt per
// use case, issues a single bounded call, and turns the model's free-form
// reply into the structured shapes the orchestration layer expects.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/Shivakarthikeya23/CultureSense/internal/culture"
)

// Per-call timeouts by use case. The orchestration layer applies its own
// outer bound on top of these.
const (
	crossDomainTimeout = 20 * time.Second
	brandTimeout       = 25 * time.Second
	marketTimeout      = 25 * time.Second
	personaTimeout     = 30 * time.Second
	strategistTimeout  = 30 * time.Second
)

type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger *zap.Logger
}

func NewClient(ctx context.Context, apiKey string, logger *zap.Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-2.0-flash")
	model.SetTemperature(0.7)
	model.SetTopP(0.95)
	model.SetMaxOutputTokens(2048)

	return &Client{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (c *Client) Close() {
	c.client.Close()
}

// CrossDomainAnalysis asks the model for the cross-domain insight payload.
func (c *Client) CrossDomainAnalysis(ctx context.Context, domains []string, prefs map[string]string) (map[string]interface{}, error) {
	text, err := c.generate(ctx, "cross-domain analysis", crossDomainPrompt(domains, prefs), crossDomainTimeout)
	if err != nil {
		return nil, err
	}
	return ExtractJSONObject(text)
}

// BrandCultureAlignment asks the model for the brand-alignment payload.
func (c *Client) BrandCultureAlignment(ctx context.Context, brand, targetAudience string, domains []string) (map[string]interface{}, error) {
	text, err := c.generate(ctx, "brand-culture alignment", brandAlignmentPrompt(brand, targetAudience, domains), brandTimeout)
	if err != nil {
		return nil, err
	}
	return ExtractJSONObject(text)
}

// MarketIntelligence asks the model for the market-intelligence payload.
func (c *Client) MarketIntelligence(ctx context.Context, domains []string, region, timeframe string) (map[string]interface{}, error) {
	text, err := c.generate(ctx, "market intelligence", marketIntelligencePrompt(domains, region, timeframe), marketTimeout)
	if err != nil {
		return nil, err
	}
	return ExtractJSONObject(text)
}

// CulturalPersona asks the model for a full persona payload.
func (c *Client) CulturalPersona(ctx context.Context, prefs map[string]string) (map[string]interface{}, error) {
	text, err := c.generate(ctx, "cultural persona", personaPrompt(prefs), personaTimeout)
	if err != nil {
		return nil, err
	}
	return ExtractJSONObject(text)
}

// Strategist asks the model for a conversational reply and parses its
// sectioned text into the strategist shape.
func (c *Client) Strategist(ctx context.Context, message string, history []culture.ChatMessage) (culture.StrategistReply, error) {
	text, err := c.generate(ctx, "cultural strategist", strategistPrompt(message, history), strategistTimeout)
	if err != nil {
		return culture.StrategistReply{}, err
	}
	return ParseStrategistText(text), nil
}

// generate runs one bounded GenerateContent call and returns the first
// candidate's text. Exactly one attempt; failures are classified into the
// adapter error taxonomy.
func (c *Client) generate(ctx context.Context, op, prompt string, timeout time.Duration) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.model.GenerateContent(callCtx, genai.Text(prompt))
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			c.logger.Warn("gemini call timed out",
				zap.String("op", op),
				zap.Duration("timeout", timeout))
			return "", &TimeoutError{Op: op, Timeout: timeout}
		}
		return "", &UpstreamError{Op: op, Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &ParseError{Reason: "no content generated"}
	}

	c.logger.Debug("gemini call completed",
		zap.String("op", op),
		zap.Duration("elapsed", time.Since(start)))

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
