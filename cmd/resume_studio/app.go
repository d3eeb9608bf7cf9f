package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonathan/resume-studio/internal/collection"
	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/logging"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/records"
	"github.com/jonathan/resume-studio/internal/storage"
	"github.com/jonathan/resume-studio/internal/types"
)

// app bundles the components every subcommand works with
type app struct {
	cfg        config.Config
	logger     *slog.Logger
	backend    storage.Backend
	store      *records.Store
	reconciler *collection.Reconciler
	closers    []func()
}

// openApp loads configuration and opens the configured slot backend
func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:    cfg,
		logger: logging.New(cfg.LogLevel, cfg.LogFormat),
	}

	switch cfg.Storage {
	case config.StorageMemory:
		a.backend = storage.NewMemory(cfg.QuotaBytes)
	case config.StoragePostgres:
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, err
		}
		a.closers = append(a.closers, database.Close)
		a.backend = db.NewSlots(database, cfg.QuotaBytes)
	default:
		backend, err := storage.NewFile(cfg.DataDir, cfg.QuotaBytes)
		if err != nil {
			return nil, fmt.Errorf("failed to open data directory: %w", err)
		}
		a.backend = backend
	}

	a.logger.Debug("storage opened",
		slog.String("storage", cfg.Storage),
		slog.String("collection_key", cfg.CollectionKey))

	a.useBackend(a.backend)
	return a, nil
}

// useBackend rebuilds the store and reconciler over backend
func (a *app) useBackend(backend storage.Backend) {
	a.store = records.NewStore(backend, records.Options{
		CollectionKey: a.cfg.CollectionKey,
		LegacyKey:     a.cfg.LegacyKey,
		Logger:        a.logger,
	})
	a.reconciler = collection.NewReconciler(a.store, collection.Options{})
}

// Close releases the backend
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// load returns the collection, reporting corruption or migration through p
func (a *app) load(ctx context.Context, p *observability.Printer) (records.LoadResult, error) {
	result, err := a.reconciler.Load(ctx)
	if err != nil {
		return records.LoadResult{}, err
	}
	p.PrintLoadResult(result)
	return result, nil
}

// document returns the document with id or an error naming it
func (a *app) document(ctx context.Context, p *observability.Printer, id string) (types.ResumeDocument, error) {
	result, err := a.load(ctx, p)
	if err != nil {
		return types.ResumeDocument{}, err
	}
	doc, ok := collection.Find(result.Documents, id)
	if !ok {
		return types.ResumeDocument{}, fmt.Errorf("résumé %q not found", id)
	}
	return doc, nil
}
