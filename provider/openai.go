package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/DailyRoutines/isptranslator"
)

// OpenAIProvider implements Provider using OpenAI's chat completion API.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key (uses OPENAI_API_KEY env var if empty)
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.1)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.1
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Translate localizes a single ISP/organization name. The upstream contract:
// input already expressed in the target language is returned unchanged;
// otherwise the shortest recognizable localized form, stripped of generic
// corporate suffixes, with no quotes or explanatory text. Any transport
// error, non-success status, or empty payload is a hard failure with no
// retry.
func (p *OpenAIProvider) Translate(ctx context.Context, text, locale string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.buildSystemPrompt(locale)},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: p.temperature,
	})
	if err != nil {
		return "", &isptranslator.ProviderError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &isptranslator.ProviderError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	translated := sanitize(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", &isptranslator.ProviderError{
			Message: "empty translation from OpenAI",
		}
	}

	return translated, nil
}

func (p *OpenAIProvider) buildSystemPrompt(locale string) string {
	targetName := isptranslator.LocaleName(locale)

	return fmt.Sprintf(`# Role
You are a localization expert for internet service provider and organization names. You translate names into %s.

# Rules
- If the name is already expressed in %s, return it unchanged.
- Otherwise, return the shortest recognizable %s form of the name.
- Strip generic corporate suffixes (e.g., "Inc.", "Ltd.", "Co.", "Corporation", "有限公司").
- Return exactly one clean string: no quotes, no explanation, no conversational wrapping, no punctuation around the name.`,
		targetName, targetName, targetName)
}

// sanitize strips wrapping the model sometimes adds despite the prompt.
func sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\"'“”「」")
	return strings.TrimSpace(s)
}

func isRetryableError(err error) bool {
	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIProvider implements Provider
var _ Provider = (*OpenAIProvider)(nil)
