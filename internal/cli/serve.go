package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridflow/internal/server"
	"github.com/matzehuels/gridflow/pkg/cache"
	"github.com/matzehuels/gridflow/pkg/pipeline"
	"github.com/matzehuels/gridflow/pkg/store"
)

// serveCommand creates the serve command for the preview HTTP server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		mongoURI  string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve [manifest.toml]",
		Short: "Serve layouts for a section manifest over HTTP",
		Long: `Serve layouts for a section manifest over HTTP.

GET /v1/layout?width=&height= arranges the manifest for the requested
viewport. With --mongo, snapshot endpoints are enabled under /v1/snapshots.
With --redis, arranged layouts are cached in Redis so multiple instances
share each other's work; otherwise the local file cache is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args[0], addr, redisAddr, mongoURI, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for a shared layout cache")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "mongodb URI for snapshot storage")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe wires the cache and store backends and runs the HTTP server
// until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, manifestPath, addr, redisAddr, mongoURI string, noCache bool) error {
	layoutCache, err := c.newServeCache(ctx, redisAddr, noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	var snapshots store.Store
	if mongoURI != "" {
		snapshots, err = store.NewMongoStore(ctx, store.MongoConfig{URI: mongoURI})
		if err != nil {
			return fmt.Errorf("initialize store: %w", err)
		}
		defer func() { _ = snapshots.Close(context.Background()) }()
	}

	runner := pipeline.NewRunner(layoutCache, nil, c.Logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:    addr,
		Handler: server.New(server.Config{
			Runner:       runner,
			ManifestPath: manifestPath,
			Store:        snapshots,
			Logger:       c.Logger,
		}).Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("serving layouts", "addr", addr, "manifest", manifestPath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// newServeCache picks the cache backend for server mode: Redis when
// configured, the local file cache otherwise.
func (c *CLI) newServeCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
	}
	return newCache(false)
}
