package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/server"
	"github.com/jonathan/resume-studio/internal/storage"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local preview API",
	Long: "Start an HTTP server that lists, edits and renders résumés from the configured store " +
		"and streams storage changes to connected clients.",
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to the configured port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	port := servePort
	if port == 0 {
		port = a.cfg.Port
	}
	interval, err := a.cfg.PollDuration()
	if err != nil {
		return err
	}

	hub := storage.NewHub()
	var recorders []storage.Recorder
	var poller *storage.Poller
	// Only shared media can change behind the server's back
	if a.cfg.Storage != config.StorageMemory {
		poller = storage.NewPoller(a.backend, hub, interval, a.logger,
			a.store.CollectionKey(), a.store.LegacyKey())
		poller.Check(ctx)
		recorders = append(recorders, poller)
	}
	a.useBackend(storage.NewNotifying(a.backend, hub, server.DefaultOrigin, recorders...))

	srv, err := server.New(server.Config{
		Port:            port,
		Reconciler:      a.reconciler,
		Hub:             hub,
		PDF:             export.NewPDFRenderer(export.PDFOptions{ChromePath: a.cfg.ChromePath}),
		Profile:         a.cfg.Profile,
		DefaultTemplate: a.cfg.DefaultTemplate,
		Logger:          a.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Start(gctx) })
	if poller != nil {
		g.Go(func() error {
			if err := poller.Run(gctx); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
		a.logger.Info("watching storage for external changes", slog.Duration("interval", interval))
	}

	return g.Wait()
}
