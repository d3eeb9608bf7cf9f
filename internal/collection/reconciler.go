// Package collection applies single-document mutations to the persisted
// résumé collection and defines the display order of its documents.
package collection

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/jonathan/resume-studio/internal/document"
	"github.com/jonathan/resume-studio/internal/ids"
	"github.com/jonathan/resume-studio/internal/records"
	"github.com/jonathan/resume-studio/internal/types"
)

// TimestampLayout is the format of LastUpdated written on save (UTC, millisecond precision)
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// ErrNotFound is returned by Edit when no document has the requested id
var ErrNotFound = errors.New("résumé not found")

// RecordStore loads and saves the whole collection
type RecordStore interface {
	LoadCollection(ctx context.Context) (records.LoadResult, error)
	SaveCollection(ctx context.Context, docs []types.ResumeDocument) error
}

// Mutation computes the replacement for one document. current is a private
// copy of the freshly loaded document, or nil when the id is absent.
// Returning nil removes the document.
type Mutation func(current *types.ResumeDocument) *types.ResumeDocument

// Options configures a Reconciler. Zero values select the defaults.
type Options struct {
	Now func() time.Time
	IDs ids.Generator
}

// Reconciler merges one mutation at a time into the latest persisted state.
// Each writer (process, goroutine, server client) holds its own Reconciler
// over a shared store; writes to different documents never overwrite each
// other, writes to the same document are last-writer-wins.
type Reconciler struct {
	store RecordStore
	now   func() time.Time
	gen   ids.Generator
}

// NewReconciler creates a reconciler over store
func NewReconciler(store RecordStore, opts Options) *Reconciler {
	r := &Reconciler{store: store, now: opts.Now, gen: ids.OrDefault(opts.IDs)}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// Load returns the current collection in storage order
func (r *Reconciler) Load(ctx context.Context) (records.LoadResult, error) {
	return r.store.LoadCollection(ctx)
}

// Apply reloads the collection, applies mutation to the document with docID
// and persists the result. It returns the new authoritative collection in
// storage order. Replacements keep their position, new documents are
// appended. When nothing changes no write happens.
func (r *Reconciler) Apply(ctx context.Context, docID string, mutation Mutation) ([]types.ResumeDocument, error) {
	return r.apply(ctx, docID, func(current *types.ResumeDocument) (*types.ResumeDocument, error) {
		return mutation(current), nil
	})
}

// apply is Apply with a mutation that can fail; a failed mutation writes nothing
func (r *Reconciler) apply(ctx context.Context, docID string, mutation func(*types.ResumeDocument) (*types.ResumeDocument, error)) ([]types.ResumeDocument, error) {
	loaded, err := r.store.LoadCollection(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}
	docs := loaded.Documents

	index := slices.IndexFunc(docs, func(d types.ResumeDocument) bool { return d.ID == docID })
	var current *types.ResumeDocument
	if index >= 0 {
		clone := docs[index].Clone()
		current = &clone
	}

	next, err := mutation(current)
	if err != nil {
		return nil, err
	}
	if current == nil && next == nil {
		return docs, nil
	}

	updated := slices.Clone(docs)
	switch {
	case next == nil:
		updated = slices.Delete(updated, index, index+1)
	case index >= 0:
		updated[index] = next.Clone()
	default:
		updated = append(updated, next.Clone())
	}

	if err := r.store.SaveCollection(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Upsert normalizes and validates doc, stamps LastUpdated and stores it,
// replacing the document with the same id or appending it.
func (r *Reconciler) Upsert(ctx context.Context, doc types.ResumeDocument) ([]types.ResumeDocument, error) {
	normalized := document.NormalizeDocument(doc, r.gen)
	normalized.LastUpdated = r.now().UTC().Format(TimestampLayout)
	if err := document.Validate(&normalized); err != nil {
		return nil, err
	}
	return r.Apply(ctx, normalized.ID, func(*types.ResumeDocument) *types.ResumeDocument {
		return &normalized
	})
}

// Edit applies edit to the freshly loaded document with id, then normalizes,
// stamps and validates it before saving. Nothing is written when the id is
// absent or edit fails.
func (r *Reconciler) Edit(ctx context.Context, id string, edit func(*types.ResumeDocument) error) ([]types.ResumeDocument, error) {
	return r.apply(ctx, id, func(current *types.ResumeDocument) (*types.ResumeDocument, error) {
		if current == nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		if err := edit(current); err != nil {
			return nil, err
		}
		next := document.NormalizeDocument(*current, r.gen)
		next.ID = id
		next.LastUpdated = r.now().UTC().Format(TimestampLayout)
		if err := document.Validate(&next); err != nil {
			return nil, err
		}
		return &next, nil
	})
}

// Delete removes the document with id. Deleting an absent id is a no-op.
func (r *Reconciler) Delete(ctx context.Context, id string) ([]types.ResumeDocument, error) {
	return r.Apply(ctx, id, func(*types.ResumeDocument) *types.ResumeDocument {
		return nil
	})
}

// TogglePin flips the pinned flag of the document with id. Position and
// LastUpdated are unchanged; an absent id is a no-op.
func (r *Reconciler) TogglePin(ctx context.Context, id string) ([]types.ResumeDocument, error) {
	return r.Apply(ctx, id, func(current *types.ResumeDocument) *types.ResumeDocument {
		if current == nil {
			return nil
		}
		current.IsPinned = !current.IsPinned
		return current
	})
}

// Find returns the document with id from docs
func Find(docs []types.ResumeDocument, id string) (types.ResumeDocument, bool) {
	for _, d := range docs {
		if d.ID == id {
			return d, true
		}
	}
	return types.ResumeDocument{}, false
}
