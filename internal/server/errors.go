package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-studio/internal/document"
	"github.com/jonathan/resume-studio/internal/records"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/schemas"
)

// ErrNotFound indicates no document has the requested id
type ErrNotFound struct {
	ID string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("résumé not found: %s", e.ID)
}

// ErrBadRequest indicates a malformed request
type ErrBadRequest struct {
	Field   string
	Message string
}

func (e *ErrBadRequest) Error() string {
	return fmt.Sprintf("bad request: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound   *ErrNotFound
		badRequest *ErrBadRequest
		docErr     *document.ValidationError
		schemaErr  *schemas.ValidationError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &badRequest),
		errors.As(err, &docErr),
		errors.As(err, &schemaErr),
		errors.Is(err, rendering.ErrUnknownTemplate):
		return http.StatusBadRequest
	case records.IsQuotaExceeded(err):
		return http.StatusInsufficientStorage
	default:
		return http.StatusInternalServerError
	}
}
