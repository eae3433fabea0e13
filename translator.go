package isptranslator

import (
	"context"
	"errors"
	"unicode/utf8"

	"go.uber.org/zap"
)

// EdgeCache is a best-effort, non-authoritative fast tier. A Get error is
// reported as a miss by implementations; Set errors are logged and ignored
// by the Translator. No read-after-write consistency is guaranteed.
type EdgeCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}

// Store is the authoritative persistent tier. Get returns (nil, nil) when no
// entry exists for the key. Put inserts a new row; implementations return
// ErrDuplicate-style conflicts as ordinary errors, which the write-back path
// treats as non-fatal.
type Store interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Put(ctx context.Context, key, text string) error
}

// Provider is the external transformation backend, invoked only on a full
// cache miss.
type Provider interface {
	Translate(ctx context.Context, text, locale string) (string, error)
}

// Translator coordinates the cache tiers: it derives the key, probes the
// edge cache then the store, falls back to the provider on a full miss, and
// schedules non-blocking write-backs. Each call is request-local; the
// Translator holds no per-request state.
type Translator struct {
	store    Store
	provider Provider
	edge     EdgeCache
	tasks    *Tasks
	logger   *zap.Logger
}

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithEdgeCache sets the edge tier. Without it the Translator runs the
// two-tier variant (store + provider) and never reports SourceEdge.
func WithEdgeCache(edge EdgeCache) TranslatorOption {
	return func(t *Translator) {
		t.edge = edge
	}
}

// WithLogger sets the logger used for background write-back outcomes.
func WithLogger(logger *zap.Logger) TranslatorOption {
	return func(t *Translator) {
		t.logger = logger
	}
}

// NewTranslator creates a Translator over the given persistent store and
// provider.
func NewTranslator(store Store, provider Provider, opts ...TranslatorOption) *Translator {
	t := &Translator{
		store:    store,
		provider: provider,
		tasks:    NewTasks(),
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Translate resolves a (text, locale) pair through the tier chain.
//
// The edge cache is always probed strictly before the store, and the store
// strictly before the provider. On a provider hit the output is truncated to
// MaxTextLen before any tier write, so cached entries always satisfy the
// length bound. Writes to the store and the edge cache are scheduled on the
// background task group and never delay the returned Result.
func (t *Translator) Translate(ctx context.Context, text, locale string) (*Result, error) {
	if err := validate(text, locale); err != nil {
		return nil, err
	}

	key := DeriveKey(text, locale)

	if t.edge != nil {
		if value, ok := t.edge.Get(ctx, key); ok {
			return &Result{Original: text, Translated: value, Source: SourceEdge}, nil
		}
	}

	entry, err := t.store.Get(ctx, key)
	if err != nil {
		return nil, &StoreError{Op: "get", Cause: err}
	}
	if entry != nil {
		t.scheduleEdgeSet(key, entry.TranslatedText)
		return &Result{Original: text, Translated: entry.TranslatedText, Source: SourceCache}, nil
	}

	translated, err := t.provider.Translate(ctx, text, locale)
	if err != nil {
		var perr *ProviderError
		if errors.As(err, &perr) {
			return nil, err
		}
		return nil, &ProviderError{Message: "transformation failed", Cause: err}
	}

	translated = Truncate(translated)
	t.schedulePut(key, translated)
	t.scheduleEdgeSet(key, translated)

	return &Result{Original: text, Translated: translated, Source: SourceAI}, nil
}

// Drain blocks until all scheduled write-backs finish or ctx expires. Call
// it on shutdown so background writes are not dropped.
func (t *Translator) Drain(ctx context.Context) error {
	return t.tasks.Drain(ctx)
}

// schedulePut records the translation in the persistent store after the
// response has been delivered. Failures, including uniqueness conflicts from
// a concurrent miss for the same key, are logged and absorbed.
func (t *Translator) schedulePut(key, text string) {
	t.tasks.Go(func(ctx context.Context) {
		if err := t.store.Put(ctx, key, text); err != nil {
			t.logger.Warn("background store write failed",
				zap.String("cache_key", key),
				zap.Error(&StoreError{Op: "put", Cause: err}))
		}
	})
}

func (t *Translator) scheduleEdgeSet(key, text string) {
	if t.edge == nil {
		return
	}
	t.tasks.Go(func(ctx context.Context) {
		if err := t.edge.Set(ctx, key, text); err != nil {
			t.logger.Warn("edge cache write failed",
				zap.String("cache_key", key),
				zap.Error(err))
		}
	})
}

func validate(text, locale string) error {
	if NormalizeText(text) == "" {
		return &ValidationError{Field: "text", Message: "must not be empty"}
	}
	if locale == "" {
		return &ValidationError{Field: "locale", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(text) > MaxTextLen {
		return &ValidationError{Field: "text", Message: "exceeds 64 characters"}
	}
	return nil
}
