package isptranslator

import "fmt"

// ValidationError indicates bad or oversized input. It is a client fault and
// is never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ProviderError indicates an AI provider failure (API error, malformed
// response, transport error). The core issues each request to the provider
// exactly once; Retryable only advises outer layers.
type ProviderError struct {
	Message   string
	Cause     error
	Retryable bool
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// StoreError indicates a persistent-store failure. Read failures surface to
// the caller as retryable infrastructure errors; write failures occur only
// on the background write-back path, where they are logged and absorbed.
type StoreError struct {
	Op    string // "get" or "put"
	Cause error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store %s error: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("store %s error", e.Op)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
