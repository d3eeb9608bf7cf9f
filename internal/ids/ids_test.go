package ids

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ReturnsUUID(t *testing.T) {
	id := New()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := New()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestFallback_TimestampPrefix(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	a := fallback(now)
	b := fallback(now)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b, "random suffix should differ")
	assert.Equal(t, "loyw3v28", a[:8], "prefix is base36 of unix millis")
}

func TestSequence(t *testing.T) {
	gen := Sequence("exp")
	assert.Equal(t, "exp-1", gen())
	assert.Equal(t, "exp-2", gen())
}

func TestOrDefault(t *testing.T) {
	assert.NotNil(t, OrDefault(nil))
	gen := OrDefault(Sequence("x"))
	assert.Equal(t, "x-1", gen())
}
