// Package provider defines the AI transformation backend implementations.
package provider

import "github.com/DailyRoutines/isptranslator"

// Provider is the interface for AI translation backends.
// This is an alias to the main package interface for convenience.
type Provider = isptranslator.Provider
