// Package store provides the persistent, authoritative translation tier.
package store

import "github.com/DailyRoutines/isptranslator"

// Store is the interface for the persistent tier.
// This is an alias to the main package interface for convenience.
type Store = isptranslator.Store

// Entry is an alias to the main package type.
type Entry = isptranslator.Entry
