// Package export turns rendered layout trees into standalone HTML documents
// and PDFs, one document or a whole template gallery at a time.
package export

import "fmt"

// ExportError represents a failure producing an output format
type ExportError struct {
	Format  string
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export %s: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("export %s: %s", e.Format, e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
