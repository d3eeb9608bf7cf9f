// Package records persists the résumé collection in a single storage slot and
// upgrades whatever it finds there to the current document shape.
package records

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jonathan/resume-studio/internal/document"
	"github.com/jonathan/resume-studio/internal/ids"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/storage"
	"github.com/jonathan/resume-studio/internal/types"
)

// Default slot keys, shared with the original browser client's local storage
const (
	DefaultCollectionKey = "cv_collection_data"
	DefaultLegacyKey     = "cv_backup_data"
)

// Options configures a Store. Zero values select the defaults.
type Options struct {
	CollectionKey string
	LegacyKey     string
	Logger        *slog.Logger
	IDs           ids.Generator
}

// Store reads and writes the whole collection as one JSON array under the
// collection key. The legacy key holds a single document from before
// collections existed; it is read for migration and never written.
type Store struct {
	backend       storage.Backend
	collectionKey string
	legacyKey     string
	logger        *slog.Logger
	gen           ids.Generator
}

// LoadResult is the outcome of LoadCollection
type LoadResult struct {
	Documents []types.ResumeDocument
	// Corrupt is set when the collection slot held data that could not be
	// interpreted. Documents is empty in that case and the slot is left as is.
	Corrupt bool
	// Problem describes why the data was considered corrupt
	Problem error
	// Migrated is set when a legacy single document was moved into the collection slot
	Migrated bool
	// Repaired is set when missing or duplicate ids were assigned on load and
	// the collection was written back so they stay stable
	Repaired bool
}

// NewStore creates a store over backend
func NewStore(backend storage.Backend, opts Options) *Store {
	s := &Store{
		backend:       backend,
		collectionKey: opts.CollectionKey,
		legacyKey:     opts.LegacyKey,
		logger:        opts.Logger,
		gen:           ids.OrDefault(opts.IDs),
	}
	if s.collectionKey == "" {
		s.collectionKey = DefaultCollectionKey
	}
	if s.legacyKey == "" {
		s.legacyKey = DefaultLegacyKey
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

// CollectionKey returns the slot the collection is stored under
func (s *Store) CollectionKey() string {
	return s.collectionKey
}

// LegacyKey returns the slot read for migration
func (s *Store) LegacyKey() string {
	return s.legacyKey
}

// LoadCollection reads the persisted collection and normalizes every document.
// A missing collection falls back to the legacy single-document slot, which is
// migrated on the spot. Only a failure of the backend itself is returned as an
// error; unreadable data is reported through LoadResult.Corrupt.
func (s *Store) LoadCollection(ctx context.Context) (LoadResult, error) {
	data, ok, err := s.backend.Get(ctx, s.collectionKey)
	if err != nil {
		return LoadResult{}, newStorageError("read", s.collectionKey, err)
	}
	if ok {
		result, assigned := s.decodeCollection(data)
		if assigned {
			s.repair(ctx, &result)
		}
		return result, nil
	}
	return s.migrateLegacy(ctx)
}

// SaveCollection replaces the persisted collection in one write. On failure
// the previously stored value is left intact.
func (s *Store) SaveCollection(ctx context.Context, docs []types.ResumeDocument) error {
	if docs == nil {
		docs = []types.ResumeDocument{}
	}
	data, err := json.Marshal(docs)
	if err != nil {
		return &StorageError{Kind: KindUnknown, Op: "encode", Key: s.collectionKey, Cause: err}
	}
	if err := s.backend.Set(ctx, s.collectionKey, data); err != nil {
		storageErr := newStorageError("write", s.collectionKey, err)
		s.logger.Error("failed to save collection",
			"key", s.collectionKey,
			"kind", storageErr.Kind.String(),
			"bytes", len(data),
			"error", err)
		return storageErr
	}
	return nil
}

// decodeCollection also reports whether any document or entry id had to be assigned
func (s *Store) decodeCollection(data []byte) (LoadResult, bool) {
	if err := schemas.ValidateCollection(data); err != nil {
		return s.corrupt(err), false
	}
	var raws []types.RawDocument
	if err := json.Unmarshal(data, &raws); err != nil {
		return s.corrupt(err), false
	}

	docs := make([]types.ResumeDocument, 0, len(raws))
	seen := make(map[string]struct{}, len(raws))
	assigned := false
	for _, raw := range raws {
		doc := document.Normalize(raw, s.gen)
		if _, dup := seen[doc.ID]; dup {
			previous := doc.ID
			doc.ID = s.freshID(seen)
			s.logger.Warn("duplicate document id in collection, assigned a new one",
				"key", s.collectionKey, "duplicate_id", previous, "new_id", doc.ID)
		}
		seen[doc.ID] = struct{}{}
		if idsChanged(raw, doc) {
			assigned = true
		}
		docs = append(docs, doc)
	}
	return LoadResult{Documents: docs}, assigned
}

// repair writes back a collection whose ids were assigned during load. A
// failed write leaves the result usable; the next load assigns and retries.
func (s *Store) repair(ctx context.Context, result *LoadResult) {
	if err := s.SaveCollection(ctx, result.Documents); err != nil {
		s.logger.Warn("could not persist assigned ids", "key", s.collectionKey, "error", err)
		return
	}
	result.Repaired = true
	s.logger.Info("persisted collection with assigned ids",
		"key", s.collectionKey, "documents", len(result.Documents))
}

func idsChanged(raw types.RawDocument, doc types.ResumeDocument) bool {
	if raw.ID == nil || *raw.ID != doc.ID {
		return true
	}
	for i, e := range raw.Experiences {
		if e.ID == nil || *e.ID != doc.Experiences[i].ID {
			return true
		}
	}
	for i, e := range raw.Education {
		if e.ID == nil || *e.ID != doc.Education[i].ID {
			return true
		}
	}
	for i, sk := range raw.Skills {
		if sk.ID == nil || *sk.ID != doc.Skills[i].ID {
			return true
		}
	}
	for i, l := range raw.Languages {
		if l.ID == nil || *l.ID != doc.Languages[i].ID {
			return true
		}
	}
	return false
}

func (s *Store) freshID(seen map[string]struct{}) string {
	for {
		id := s.gen()
		if _, taken := seen[id]; !taken {
			return id
		}
	}
}

func (s *Store) corrupt(cause error) LoadResult {
	s.logger.Error("collection data is corrupt, starting with an empty collection",
		"key", s.collectionKey, "error", cause)
	return LoadResult{
		Documents: []types.ResumeDocument{},
		Corrupt:   true,
		Problem:   fmt.Errorf("corrupt data under %q: %w", s.collectionKey, cause),
	}
}

func (s *Store) migrateLegacy(ctx context.Context) (LoadResult, error) {
	empty := LoadResult{Documents: []types.ResumeDocument{}}

	data, ok, err := s.backend.Get(ctx, s.legacyKey)
	if err != nil {
		return LoadResult{}, newStorageError("read", s.legacyKey, err)
	}
	if !ok {
		return empty, nil
	}
	if err := schemas.ValidateDocument(data); err != nil {
		s.logger.Error("legacy document is corrupt, ignoring it", "key", s.legacyKey, "error", err)
		return empty, nil
	}
	var raw types.RawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Error("legacy document is corrupt, ignoring it", "key", s.legacyKey, "error", err)
		return empty, nil
	}

	doc := document.Normalize(raw, s.gen)
	docs := []types.ResumeDocument{doc}
	if err := s.SaveCollection(ctx, docs); err != nil {
		// Still usable in memory; the next load retries the migration
		s.logger.Warn("could not persist migrated legacy document", "id", doc.ID, "error", err)
		return LoadResult{Documents: docs}, nil
	}
	s.logger.Info("migrated legacy document into collection",
		"from", s.legacyKey, "to", s.collectionKey, "id", doc.ID)
	return LoadResult{Documents: docs, Migrated: true}, nil
}
