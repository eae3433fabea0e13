// Package isptranslator provides a tiered cache-aside lookup service for
// ISP and organization names.
//
// Given a short input string and a target locale, the Translator returns a
// cached translated value if any cache tier holds it, and otherwise invokes
// an AI transformation provider, stores the result at all tiers, and returns
// it. Tiers are consulted in increasing order of latency: an edge cache
// (Redis or in-memory), a persistent store (SQLite), and finally the
// provider itself.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/DailyRoutines/isptranslator"
//	    "github.com/DailyRoutines/isptranslator/cache"
//	    "github.com/DailyRoutines/isptranslator/provider"
//	    "github.com/DailyRoutines/isptranslator/store"
//	)
//
//	func main() {
//	    db, err := store.OpenSQLite("translations.db")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer db.Close()
//
//	    p := provider.NewOpenAIProvider(provider.OpenAIConfig{
//	        APIKey: os.Getenv("OPENAI_API_KEY"),
//	    })
//
//	    t := isptranslator.NewTranslator(db, p,
//	        isptranslator.WithEdgeCache(cache.NewInMemoryCache(3600)),
//	    )
//	    defer t.Drain(context.Background())
//
//	    result, err := t.Translate(context.Background(), "China Telecom", "zh")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result.Translated, result.Source)
//	}
//
// Write-backs to the persistent store and the edge cache happen on a
// background task group after the result has been returned; call Drain
// before process exit so in-flight writes complete.
package isptranslator
