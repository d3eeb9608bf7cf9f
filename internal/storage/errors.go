package storage

import "fmt"

// QuotaError reports a write rejected for size. errors.Is(err, ErrQuotaExceeded) holds.
type QuotaError struct {
	Size  int
	Quota int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("%v: value is %d bytes, quota is %d bytes", ErrQuotaExceeded, e.Size, e.Quota)
}

func (e *QuotaError) Unwrap() error {
	return ErrQuotaExceeded
}

// BackendError represents a failure of the underlying medium
type BackendError struct {
	Op      string
	Key     string
	Message string
	Cause   error
}

func (e *BackendError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage %s %q: %s: %v", e.Op, e.Key, e.Message, e.Cause)
	}
	return fmt.Sprintf("storage %s %q: %s", e.Op, e.Key, e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}
