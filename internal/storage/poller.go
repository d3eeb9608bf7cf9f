package storage

import (
	"context"
	"crypto/sha256"
	"log/slog"
	"sync"
	"time"
)

// Poller watches slots for changes made by other processes and publishes
// them on the hub with ExternalOrigin. Writes made through a Notifying
// backend that records into the poller are not reported again.
type Poller struct {
	backend  Backend
	hub      *Hub
	keys     []string
	interval time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	digests map[string]digest
}

type digest struct {
	present bool
	sum     [sha256.Size]byte
}

// NewPoller returns a poller over keys; it does nothing until Run or Check is called
func NewPoller(backend Backend, hub *Hub, interval time.Duration, logger *slog.Logger, keys ...string) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		backend:  backend,
		hub:      hub,
		keys:     keys,
		interval: interval,
		logger:   logger,
	}
}

// Run checks the slots every interval until ctx is cancelled
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.Check(ctx)
		}
	}
}

// Check reads every watched slot once and publishes the ones whose content
// changed since the previous check. The first check only records a baseline.
func (p *Poller) Check(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	first := p.digests == nil
	if first {
		p.digests = make(map[string]digest, len(p.keys))
	}

	for _, key := range p.keys {
		value, ok, err := p.backend.Get(ctx, key)
		if err != nil {
			p.logger.Warn("poll storage slot", slog.String("key", key), slog.Any("error", err))
			continue
		}

		current := digest{present: ok}
		if ok {
			current.sum = sha256.Sum256(value)
		}

		previous, seen := p.digests[key]
		p.digests[key] = current
		if first || !seen {
			continue
		}
		if previous != current {
			p.logger.Debug("storage slot changed externally", slog.String("key", key))
			p.hub.Publish(key, ExternalOrigin)
		}
	}
}

// Record implements Recorder. A value written by this process becomes the
// new baseline for key, so the next Check stays quiet about it.
func (p *Poller) Record(key string, value []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.digests == nil {
		return
	}
	if _, watched := p.digests[key]; watched {
		p.digests[key] = digest{present: true, sum: sha256.Sum256(value)}
	}
}
