// Package storage provides single-slot key-value backends for the résumé
// collection, plus the change notification hub that stands in for the
// browser's cross-tab storage event.
package storage

import (
	"context"
	"errors"
)

// DefaultQuotaBytes matches the local-storage budget of common browsers
const DefaultQuotaBytes = 5 * 1024 * 1024

// ErrQuotaExceeded is returned by Set when the value does not fit the backend's quota
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Backend is a durable key-value slot store. Set replaces the whole value in
// one atomic step: readers observe either the previous value or the new one.
type Backend interface {
	// Get returns the value stored under key; ok is false when the key is absent
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set atomically replaces the value under key
	Set(ctx context.Context, key string, value []byte) error
}

// Recorder is told about every value a Notifying backend wrote, so a Poller
// over the same slots does not report them again as external changes
type Recorder interface {
	Record(key string, value []byte)
}

// Notifying wraps a backend so every successful Set publishes a ChangeEvent
// on the hub, stamped with the writer's origin.
type Notifying struct {
	Backend
	hub       *Hub
	origin    string
	recorders []Recorder
}

// NewNotifying returns a backend that reports its own writes to hub as origin
func NewNotifying(backend Backend, hub *Hub, origin string, recorders ...Recorder) *Notifying {
	return &Notifying{Backend: backend, hub: hub, origin: origin, recorders: recorders}
}

// Set writes through to the wrapped backend and publishes on success. The
// event carries the origin attached to ctx by WithOrigin, if any.
func (n *Notifying) Set(ctx context.Context, key string, value []byte) error {
	if err := n.Backend.Set(ctx, key, value); err != nil {
		return err
	}
	for _, r := range n.recorders {
		r.Record(key, value)
	}
	n.hub.Publish(key, OriginFrom(ctx, n.origin))
	return nil
}

// Origin identifies the writer this backend publishes as by default
func (n *Notifying) Origin() string {
	return n.origin
}

type originKey struct{}

// WithOrigin names the writer of any Set made with the returned context
func WithOrigin(ctx context.Context, origin string) context.Context {
	return context.WithValue(ctx, originKey{}, origin)
}

// OriginFrom returns the origin attached by WithOrigin, or fallback
func OriginFrom(ctx context.Context, fallback string) string {
	if origin, ok := ctx.Value(originKey{}).(string); ok && origin != "" {
		return origin
	}
	return fallback
}

func checkQuota(quota int, value []byte) error {
	if quota > 0 && len(value) > quota {
		return &QuotaError{Size: len(value), Quota: quota}
	}
	return nil
}
