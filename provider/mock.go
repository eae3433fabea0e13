package provider

import (
	"context"
	"fmt"

	"github.com/DailyRoutines/isptranslator"
)

// MockProvider is a mock transformation provider for testing.
type MockProvider struct {
	Translations map[string]string // Map of source text to translation
	Err          error             // If set, every call fails with this error
	CallCount    int               // Number of times Translate was called
	LastText     string            // Last text received
	LastLocale   string            // Last locale received
}

// NewMockProvider creates a new mock provider with default translations.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: map[string]string{
			"China Telecom":    "中国电信",
			"China Mobile":     "中国移动",
			"NTT":              "NTT",
			"Deutsche Telekom": "Deutsche Telekom",
		},
	}
}

// Translate returns mock translations.
func (m *MockProvider) Translate(ctx context.Context, text, locale string) (string, error) {
	m.CallCount++
	m.LastText = text
	m.LastLocale = locale

	if m.Err != nil {
		return "", &isptranslator.ProviderError{
			Message: "mock failure",
			Cause:   m.Err,
		}
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}
	// Return bracketed text for unknown translations
	return fmt.Sprintf("[%s]", text), nil
}

// Reset resets the call count and recorded request.
func (m *MockProvider) Reset() {
	m.CallCount = 0
	m.LastText = ""
	m.LastLocale = ""
}

// Verify MockProvider implements Provider
var _ Provider = (*MockProvider)(nil)
