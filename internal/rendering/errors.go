// Package rendering maps a résumé document, a template id and a theme mode to
// a layout tree. Each template is a separate strategy in a closed registry.
package rendering

import (
	"errors"
	"fmt"
)

// ErrUnknownTemplate is matched by every UnknownTemplateError
var ErrUnknownTemplate = errors.New("unknown template")

// UnknownTemplateError reports a template id with no registered strategy
type UnknownTemplateError struct {
	TemplateID string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownTemplate, e.TemplateID)
}

func (e *UnknownTemplateError) Unwrap() error {
	return ErrUnknownTemplate
}

// RenderError represents a general rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
