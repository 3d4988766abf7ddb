package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/SafalBhandari12/event/internal/app"
	"github.com/SafalBhandari12/event/internal/clock"
	"github.com/SafalBhandari12/event/internal/config"
	"github.com/SafalBhandari12/event/internal/content"
	"github.com/SafalBhandari12/event/internal/storage/postgres"
	"github.com/SafalBhandari12/event/internal/storage/sqlite"
	"github.com/SafalBhandari12/event/internal/telemetry"
	transporthttp "github.com/SafalBhandari12/event/internal/transport/http"
	"github.com/SafalBhandari12/event/internal/ui"
	"github.com/SafalBhandari12/event/migrations"
)

const startupTimeout = 5 * time.Second

func newServeCmd(c *cli) *cobra.Command {
	var galleryScope string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the event pages and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := parseGalleryScope(galleryScope)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), c.cfg, c.logger, scope)
		},
	}
	cmd.Flags().StringVar(&galleryScope, "gallery-scope", "master", "lightbox traversal: master or filtered")
	return cmd
}

func parseGalleryScope(s string) (ui.NavigationScope, error) {
	switch s {
	case "master":
		return ui.ScopeMaster, nil
	case "filtered":
		return ui.ScopeFiltered, nil
	}
	return 0, fmt.Errorf("gallery scope must be master or filtered, got %q", s)
}

// repositories are nil for in-memory storage: orders and sign-ups are then
// validated and confirmed but not kept.
type repositories struct {
	intents       app.IntentRepository
	subscriptions app.SubscriptionRepository
	close         func()
}

func openRepositories(ctx context.Context, cfg config.Config, logger *zap.Logger) (repositories, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		startupCtx, cancel := context.WithTimeout(ctx, startupTimeout)
		defer cancel()

		pool, err := pgxpool.New(startupCtx, cfg.DatabaseURL)
		if err != nil {
			return repositories{}, fmt.Errorf("connect to db: %w", err)
		}
		if err := pool.Ping(startupCtx); err != nil {
			pool.Close()
			return repositories{}, fmt.Errorf("db ping: %w", err)
		}
		applied, err := migrations.Apply(startupCtx, pool)
		if err != nil {
			pool.Close()
			return repositories{}, fmt.Errorf("apply migrations: %w", err)
		}
		if len(applied) > 0 {
			logger.Info("applied migrations", zap.Strings("names", applied))
		}
		return repositories{
			intents:       postgres.NewIntentRepository(pool),
			subscriptions: postgres.NewSubscriptionRepository(pool),
			close:         pool.Close,
		}, nil

	case config.StorageSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return repositories{}, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			intents:       store,
			subscriptions: store,
			close:         func() { _ = store.Close() },
		}, nil
	}

	logger.Warn("STORAGE=memory: orders and subscriptions are not persisted")
	return repositories{close: func() {}}, nil
}

func loadCatalog(dir string) (*content.Catalog, error) {
	if dir == "" {
		return content.LoadEmbedded()
	}
	return content.LoadDir(dir)
}

func serve(ctx context.Context, cfg config.Config, logger *zap.Logger, scope ui.NavigationScope) error {
	shutdownTracing, err := telemetry.Setup(ctx, telemetry.ServiceName, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	catalog, err := loadCatalog(cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	source := content.NewSwappable(catalog)
	logger.Info("content loaded", zap.Strings("events", catalog.Slugs()))

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer repos.close()

	clk := clock.NewSystem()
	handler := transporthttp.NewRouter(transporthttp.RouterConfig{
		Events:       app.NewSiteService(source, cfg.DefaultEvent),
		Orders:       app.NewCheckoutService(repos.intents, clk, logger),
		Newsletter:   app.NewNewsletterService(repos.subscriptions, clk, logger),
		Logger:       logger,
		CORSOrigins:  cfg.CORSOrigins,
		GalleryScope: scope,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", server.Addr), zap.String("storage", cfg.Storage))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})
	if cfg.ContentDir != "" {
		reloader := content.NewReloader(cfg.ContentDir, source, logger)
		g.Go(func() error {
			return reloader.Run(gctx)
		})
	}

	return g.Wait()
}
