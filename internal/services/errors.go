package services

import "fmt"

// ValidationError rejects a request before any call to the model.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

// GenerationReason is kept for server-side logs and metrics only; callers
// always see a single generic failure.
type GenerationReason string

const (
	ReasonMissingCredential GenerationReason = "missing_credential"
	ReasonClient            GenerationReason = "client"
	ReasonProvider          GenerationReason = "provider"
	ReasonEmptyResponse     GenerationReason = "empty_response"
)

// GenerationError is any failure of the model gateway.
type GenerationError struct {
	Reason GenerationReason
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to generate content (%s)", e.Reason)
	}
	return fmt.Sprintf("failed to generate content (%s): %v", e.Reason, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
