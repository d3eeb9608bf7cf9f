package document

import (
	"fmt"

	"github.com/jonathan/resume-studio/internal/types"
)

// ValidationError represents a document that violates the canonical shape
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Validate checks a normalized document and wraps failures in ValidationError
func Validate(doc *types.ResumeDocument) error {
	if err := doc.Validate(); err != nil {
		return &ValidationError{Message: fmt.Sprintf("document %q", doc.ID), Cause: err}
	}
	return nil
}
