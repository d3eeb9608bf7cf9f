// Package ids generates collision-resistant identifiers for documents and their sub-entities.
package ids

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Generator produces a new unique identifier on every call
type Generator func() string

// New returns a random (version 4) UUID. If the system entropy source fails
// it falls back to base36(unix millis) + base36(random), so it always returns
// a value.
func New() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fallback(time.Now())
	}
	return id.String()
}

func fallback(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 36) + strconv.FormatUint(rand.Uint64(), 36)
}

// Sequence returns a deterministic generator yielding prefix-1, prefix-2, ...
// It is meant for tests and fixtures.
func Sequence(prefix string) Generator {
	n := 0
	return func() string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}

// OrDefault returns gen, or New when gen is nil
func OrDefault(gen Generator) Generator {
	if gen == nil {
		return New
	}
	return gen
}
