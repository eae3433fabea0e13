package isptranslator

import (
	"time"
	"unicode/utf8"
)

// MaxTextLen is the maximum accepted input length and the bound enforced on
// stored translations, counted in Unicode code points. Truncation happens at
// write time, so cached entries always satisfy the bound on read.
const MaxTextLen = 64

// Source identifies the tier that resolved a translation.
type Source string

const (
	// SourceEdge means the edge cache held the value.
	SourceEdge Source = "edge"
	// SourceCache means the persistent store held the value.
	SourceCache Source = "cache"
	// SourceAI means the transformation provider was invoked.
	SourceAI Source = "ai"
)

// Result is the response value for a single lookup. It is constructed fresh
// per request and never persisted; only the translated text is stored.
type Result struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
	Source     Source `json:"source"`
}

// Entry is a persisted translation record. The persistent store exclusively
// owns it; the edge cache holds only a disposable derived copy with its own
// TTL, which may expire or be evicted without notice.
type Entry struct {
	CacheKey       string
	TranslatedText string
	CreatedAt      time.Time
}

// Truncate returns s cut to at most MaxTextLen code points.
func Truncate(s string) string {
	if utf8.RuneCountInString(s) <= MaxTextLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:MaxTextLen])
}
