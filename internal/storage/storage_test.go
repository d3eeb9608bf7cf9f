package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T, quota int) map[string]Backend {
	t.Helper()
	file, err := NewFile(t.TempDir(), quota)
	require.NoError(t, err)
	return map[string]Backend{
		"memory": NewMemory(quota),
		"file":   file,
	}
}

func TestBackend_GetMissing(t *testing.T) {
	for name, b := range backends(t, 0) {
		t.Run(name, func(t *testing.T) {
			v, ok, err := b.Get(context.Background(), "absent")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, v)
		})
	}
}

func TestBackend_SetThenGet(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t, 0) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, b.Set(ctx, "cv_collection_data", []byte(`[]`)))
			require.NoError(t, b.Set(ctx, "cv_collection_data", []byte(`[{"id":"a"}]`)))

			v, ok, err := b.Get(ctx, "cv_collection_data")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"id":"a"}]`, string(v))
		})
	}
}

func TestBackend_QuotaKeepsPreviousValue(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t, 16) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, b.Set(ctx, "k", []byte(`["small"]`)))

			err := b.Set(ctx, "k", []byte(`["this value is far too large"]`))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrQuotaExceeded))

			var quotaErr *QuotaError
			require.True(t, errors.As(err, &quotaErr))
			assert.Equal(t, 16, quotaErr.Quota)

			v, ok, err := b.Get(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `["small"]`, string(v))
		})
	}
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(0)
	require.NoError(t, m.Set(ctx, "k", []byte("abc")))

	v, _, _ := m.Get(ctx, "k")
	v[0] = 'z'

	again, _, _ := m.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestFile_NoTempFilesLeftBehind(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f, err := NewFile(dir, 8)
	require.NoError(t, err)

	require.NoError(t, f.Set(ctx, "k", []byte("ok")))
	require.Error(t, f.Set(ctx, "k", []byte("much too long")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "k.json", entries[0].Name())
}

func TestFile_EscapesKeys(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	f, err := NewFile(dir, 0)
	require.NoError(t, err)

	require.NoError(t, f.Set(ctx, "../escape", []byte("x")))
	_, err = os.Stat(filepath.Join(dir, "..%2Fescape.json"))
	assert.NoError(t, err)
}

func TestNewFile_EmptyDir(t *testing.T) {
	_, err := NewFile("", 0)
	assert.Error(t, err)
}

func TestHub_PublishAndCancel(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe(4)
	assert.Equal(t, 1, hub.Subscribers())

	hub.Publish("cv_collection_data", "tab-1")
	event := <-ch
	assert.Equal(t, "cv_collection_data", event.Key)
	assert.Equal(t, "tab-1", event.Origin)
	assert.False(t, event.At.IsZero())

	cancel()
	cancel()
	assert.Equal(t, 0, hub.Subscribers())
	_, open := <-ch
	assert.False(t, open)
}

func TestHub_FullSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe(1)
	defer cancel()

	done := make(chan struct{})
	go func() {
		hub.Publish("k", "a")
		hub.Publish("k", "b")
		hub.Publish("k", "c")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full subscriber")
	}
	assert.Equal(t, "a", (<-ch).Origin)
}

func TestNotifying_PublishesOnlyOnSuccess(t *testing.T) {
	ctx := context.Background()
	hub := NewHub()
	ch, cancel := hub.Subscribe(4)
	defer cancel()

	b := NewNotifying(NewMemory(4), hub, "tab-a")
	assert.Equal(t, "tab-a", b.Origin())

	require.Error(t, b.Set(ctx, "k", []byte("too large")))
	require.NoError(t, b.Set(ctx, "k", []byte("ok")))

	event := <-ch
	assert.Equal(t, "tab-a", event.Origin)
	select {
	case extra := <-ch:
		t.Fatalf("unexpected event %+v", extra)
	default:
	}
}

func TestPoller_DetectsExternalWrites(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory(0)
	hub := NewHub()
	ch, cancel := hub.Subscribe(4)
	defer cancel()

	p := NewPoller(backend, hub, time.Hour, nil, "k")
	p.Check(ctx)

	require.NoError(t, backend.Set(ctx, "k", []byte("v1")))
	p.Check(ctx)
	event := <-ch
	assert.Equal(t, ExternalOrigin, event.Origin)
	assert.Equal(t, "k", event.Key)

	p.Check(ctx)
	select {
	case extra := <-ch:
		t.Fatalf("unchanged slot published %+v", extra)
	default:
	}

	require.NoError(t, backend.Set(ctx, "k", []byte("v2")))
	p.Check(ctx)
	assert.Equal(t, "k", (<-ch).Key)
}

func TestPoller_SkipsRecordedWrites(t *testing.T) {
	ctx := context.Background()
	backend := NewMemory(0)
	hub := NewHub()
	ch, cancel := hub.Subscribe(4)
	defer cancel()

	p := NewPoller(backend, hub, time.Hour, nil, "k")
	p.Check(ctx)
	own := NewNotifying(backend, hub, "server", p)

	require.NoError(t, own.Set(ctx, "k", []byte("mine")))
	assert.Equal(t, "server", (<-ch).Origin)

	p.Check(ctx)
	select {
	case extra := <-ch:
		t.Fatalf("own write reported again: %+v", extra)
	default:
	}

	require.NoError(t, backend.Set(ctx, "k", []byte("theirs")))
	p.Check(ctx)
	assert.Equal(t, ExternalOrigin, (<-ch).Origin)
}

func TestNotifying_OriginFromContext(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe(2)
	defer cancel()
	b := NewNotifying(NewMemory(0), hub, "server")

	require.NoError(t, b.Set(WithOrigin(context.Background(), "tab-b"), "k", []byte("x")))
	assert.Equal(t, "tab-b", (<-ch).Origin)

	require.NoError(t, b.Set(WithOrigin(context.Background(), ""), "k", []byte("y")))
	assert.Equal(t, "server", (<-ch).Origin)
}

func TestPoller_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPoller(NewMemory(0), NewHub(), 10*time.Millisecond, nil, "k")

	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(ctx) }()
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop")
	}
}
