package records

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-studio/internal/storage"
)

// ErrorKind classifies a storage failure for the caller
type ErrorKind int

const (
	// KindUnknown is any failure of the medium other than running out of space
	KindUnknown ErrorKind = iota
	// KindQuotaExceeded means the serialized collection did not fit the backend
	KindQuotaExceeded
)

func (k ErrorKind) String() string {
	switch k {
	case KindQuotaExceeded:
		return "quota exceeded"
	default:
		return "unknown"
	}
}

// StorageError represents a failed read or write of a storage slot
type StorageError struct {
	Kind  ErrorKind
	Op    string
	Key   string
	Cause error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage error (%s) during %s of %q: %v", e.Kind, e.Op, e.Key, e.Cause)
	}
	return fmt.Sprintf("storage error (%s) during %s of %q", e.Kind, e.Op, e.Key)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

func newStorageError(op, key string, cause error) *StorageError {
	kind := KindUnknown
	if errors.Is(cause, storage.ErrQuotaExceeded) {
		kind = KindQuotaExceeded
	}
	return &StorageError{Kind: kind, Op: op, Key: key, Cause: cause}
}

// IsQuotaExceeded reports whether err is a storage error caused by the quota
func IsQuotaExceeded(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr) && storageErr.Kind == KindQuotaExceeded
}
