package isptranslator_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DailyRoutines/isptranslator"
	"github.com/DailyRoutines/isptranslator/cache"
	"github.com/DailyRoutines/isptranslator/provider"
)

// mockStore is an in-memory Store with call counting and error injection.
type mockStore struct {
	mu       sync.Mutex
	entries  map[string]*isptranslator.Entry
	getErr   error
	putErr   error
	getCalls int
	putCalls int
}

func newMockStore() *mockStore {
	return &mockStore{entries: map[string]*isptranslator.Entry{}}
}

func (s *mockStore) Get(ctx context.Context, key string) (*isptranslator.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getCalls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.entries[key], nil
}

func (s *mockStore) Put(ctx context.Context, key, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putCalls++
	if s.putErr != nil {
		return s.putErr
	}
	s.entries[key] = &isptranslator.Entry{
		CacheKey:       key,
		TranslatedText: text,
		CreatedAt:      time.Now(),
	}
	return nil
}

func (s *mockStore) entry(key string) *isptranslator.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[key]
}

func (s *mockStore) calls() (gets, puts int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getCalls, s.putCalls
}

func drain(t *testing.T, tr *isptranslator.Translator) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tr.Drain(ctx); err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
}

func TestTranslate_FullMiss(t *testing.T) {
	store := newMockStore()
	p := provider.NewMockProvider()
	edge := cache.NewInMemoryCache(0)
	tr := isptranslator.NewTranslator(store, p, isptranslator.WithEdgeCache(edge))

	result, err := tr.Translate(context.Background(), "China Telecom", "zh")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	if result.Original != "China Telecom" {
		t.Errorf("Original = %q, want 'China Telecom'", result.Original)
	}
	if result.Translated != "中国电信" {
		t.Errorf("Translated = %q, want '中国电信'", result.Translated)
	}
	if result.Source != isptranslator.SourceAI {
		t.Errorf("Source = %q, want %q", result.Source, isptranslator.SourceAI)
	}

	// Write-backs land on both tiers after drain.
	drain(t, tr)

	key := isptranslator.DeriveKey("China Telecom", "zh")
	if entry := store.entry(key); entry == nil || entry.TranslatedText != "中国电信" {
		t.Errorf("Store entry after drain = %+v, want 中国电信", entry)
	}
	if val, ok := edge.Get(context.Background(), key); !ok || val != "中国电信" {
		t.Errorf("Edge entry after drain = %q (ok=%v), want 中国电信", val, ok)
	}
}

func TestTranslate_SecondRequestNeverHitsProvider(t *testing.T) {
	store := newMockStore()
	p := provider.NewMockProvider()
	edge := cache.NewInMemoryCache(0)
	tr := isptranslator.NewTranslator(store, p, isptranslator.WithEdgeCache(edge))

	ctx := context.Background()
	if _, err := tr.Translate(ctx, "China Telecom", "zh"); err != nil {
		t.Fatalf("first Translate failed: %v", err)
	}
	drain(t, tr)

	result, err := tr.Translate(ctx, "China Telecom", "zh")
	if err != nil {
		t.Fatalf("second Translate failed: %v", err)
	}

	if result.Translated != "中国电信" {
		t.Errorf("Translated = %q, want '中国电信'", result.Translated)
	}
	if result.Source != isptranslator.SourceEdge && result.Source != isptranslator.SourceCache {
		t.Errorf("Source = %q, want edge or cache", result.Source)
	}
	if p.CallCount != 1 {
		t.Errorf("Provider called %d times, want 1", p.CallCount)
	}
}

func TestTranslate_EdgeHit(t *testing.T) {
	store := newMockStore()
	p := provider.NewMockProvider()
	edge := cache.NewInMemoryCache(0)
	tr := isptranslator.NewTranslator(store, p, isptranslator.WithEdgeCache(edge))

	ctx := context.Background()
	key := isptranslator.DeriveKey("NTT", "ja")
	_ = edge.Set(ctx, key, "NTT")

	result, err := tr.Translate(ctx, "NTT", "ja")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if result.Source != isptranslator.SourceEdge {
		t.Errorf("Source = %q, want %q", result.Source, isptranslator.SourceEdge)
	}

	// Edge hit resolves before any slower tier is consulted.
	gets, _ := store.calls()
	if gets != 0 {
		t.Errorf("Store consulted %d times on an edge hit, want 0", gets)
	}
	if p.CallCount != 0 {
		t.Errorf("Provider called %d times on an edge hit, want 0", p.CallCount)
	}
}

func TestTranslate_StoreHitBackfillsEdge(t *testing.T) {
	store := newMockStore()
	p := provider.NewMockProvider()
	edge := cache.NewInMemoryCache(0)
	tr := isptranslator.NewTranslator(store, p, isptranslator.WithEdgeCache(edge))

	ctx := context.Background()
	key := isptranslator.DeriveKey("NTT", "en")
	_ = store.Put(ctx, key, "NTT")

	result, err := tr.Translate(ctx, "NTT", "en")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if result.Source != isptranslator.SourceCache {
		t.Errorf("Source = %q, want %q", result.Source, isptranslator.SourceCache)
	}
	if result.Translated != "NTT" {
		t.Errorf("Translated = %q, want 'NTT'", result.Translated)
	}
	if p.CallCount != 0 {
		t.Errorf("Provider called %d times on a store hit, want 0", p.CallCount)
	}

	drain(t, tr)
	if val, ok := edge.Get(ctx, key); !ok || val != "NTT" {
		t.Errorf("Edge backfill = %q (ok=%v), want 'NTT'", val, ok)
	}
}

func TestTranslate_ProviderFailure(t *testing.T) {
	store := newMockStore()
	p := provider.NewMockProvider()
	p.Err = errors.New("simulated transport error")
	tr := isptranslator.NewTranslator(store, p)

	_, err := tr.Translate(context.Background(), "China Telecom", "zh")

	var perr *isptranslator.ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected ProviderError, got %v", err)
	}

	// No row materializes for the failed request.
	drain(t, tr)
	key := isptranslator.DeriveKey("China Telecom", "zh")
	if store.entry(key) != nil {
		t.Error("Store should hold no row after a provider failure")
	}
	_, puts := store.calls()
	if puts != 0 {
		t.Errorf("Store Put called %d times after provider failure, want 0", puts)
	}
}

func TestTranslate_StoreReadErrorSurfaces(t *testing.T) {
	store := newMockStore()
	store.getErr = errors.New("disk I/O error")
	p := provider.NewMockProvider()
	tr := isptranslator.NewTranslator(store, p)

	_, err := tr.Translate(context.Background(), "NTT", "en")

	var serr *isptranslator.StoreError
	if !errors.As(err, &serr) {
		t.Fatalf("Expected StoreError, got %v", err)
	}
	if serr.Op != "get" {
		t.Errorf("StoreError.Op = %q, want 'get'", serr.Op)
	}
	if p.CallCount != 0 {
		t.Error("Provider should not be called when the store read fails")
	}
}

func TestTranslate_BackgroundWriteFailureInvisible(t *testing.T) {
	store := newMockStore()
	store.putErr = errors.New("unique constraint violated")
	p := provider.NewMockProvider()
	tr := isptranslator.NewTranslator(store, p)

	result, err := tr.Translate(context.Background(), "China Telecom", "zh")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if result.Source != isptranslator.SourceAI {
		t.Errorf("Source = %q, want %q", result.Source, isptranslator.SourceAI)
	}

	// The failed write-back never affects the delivered response.
	drain(t, tr)
}

func TestTranslate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		locale string
	}{
		{"empty text", "", "zh"},
		{"blank text", "   ", "zh"},
		{"empty locale", "NTT", ""},
		{"65 characters", strings.Repeat("a", 65), "en"},
		{"65 multibyte characters", strings.Repeat("电", 65), "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMockStore()
			p := provider.NewMockProvider()
			edge := cache.NewInMemoryCache(0)
			tr := isptranslator.NewTranslator(store, p, isptranslator.WithEdgeCache(edge))

			_, err := tr.Translate(context.Background(), tt.text, tt.locale)

			var verr *isptranslator.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}

			// Rejected before any tier or provider is touched.
			gets, puts := store.calls()
			if gets != 0 || puts != 0 {
				t.Errorf("Store touched (gets=%d puts=%d) for invalid input", gets, puts)
			}
			if p.CallCount != 0 {
				t.Errorf("Provider called %d times for invalid input", p.CallCount)
			}
		})
	}
}

func TestTranslate_Exactly64CharactersAccepted(t *testing.T) {
	store := newMockStore()
	p := provider.NewMockProvider()
	tr := isptranslator.NewTranslator(store, p)

	text := strings.Repeat("a", 64)
	result, err := tr.Translate(context.Background(), text, "en")
	if err != nil {
		t.Fatalf("64-character input rejected: %v", err)
	}
	if result.Source != isptranslator.SourceAI {
		t.Errorf("Source = %q, want %q", result.Source, isptranslator.SourceAI)
	}
}

func TestTranslate_TruncatesLongProviderOutput(t *testing.T) {
	store := newMockStore()
	p := provider.NewMockProvider()
	p.Translations["Long Corp"] = strings.Repeat("x", 100)
	tr := isptranslator.NewTranslator(store, p)

	ctx := context.Background()
	result, err := tr.Translate(ctx, "Long Corp", "en")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if len(result.Translated) != 64 {
		t.Errorf("Translated length = %d, want 64", len(result.Translated))
	}

	// The stored value is the truncated one, so a later hit returns it as-is.
	drain(t, tr)
	key := isptranslator.DeriveKey("Long Corp", "en")
	entry := store.entry(key)
	if entry == nil || entry.TranslatedText != result.Translated {
		t.Errorf("Stored text differs from returned text: %+v", entry)
	}

	second, err := tr.Translate(ctx, "Long Corp", "en")
	if err != nil {
		t.Fatalf("second Translate failed: %v", err)
	}
	if second.Translated != result.Translated {
		t.Errorf("Cache hit returned %q, want %q", second.Translated, result.Translated)
	}
}

func TestTranslate_TwoTierVariant(t *testing.T) {
	// Without an edge cache the store and provider semantics are unchanged
	// and SourceEdge is never reported.
	store := newMockStore()
	p := provider.NewMockProvider()
	tr := isptranslator.NewTranslator(store, p)

	ctx := context.Background()
	first, err := tr.Translate(ctx, "China Mobile", "zh")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if first.Source != isptranslator.SourceAI {
		t.Errorf("Source = %q, want %q", first.Source, isptranslator.SourceAI)
	}
	drain(t, tr)

	second, err := tr.Translate(ctx, "China Mobile", "zh")
	if err != nil {
		t.Fatalf("second Translate failed: %v", err)
	}
	if second.Source != isptranslator.SourceCache {
		t.Errorf("Source = %q, want %q", second.Source, isptranslator.SourceCache)
	}
	if p.CallCount != 1 {
		t.Errorf("Provider called %d times, want 1", p.CallCount)
	}
}
