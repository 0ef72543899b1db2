package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchfit/internal/server"
	"github.com/matzehuels/sketchfit/pkg/cache"
	"github.com/matzehuels/sketchfit/pkg/config"
	"github.com/matzehuels/sketchfit/pkg/pipeline"
	"github.com/matzehuels/sketchfit/pkg/sketch"
)

// shutdownTimeout bounds how long in-flight requests may finish after an
// interrupt.
const shutdownTimeout = 10 * time.Second

// defaultServePrefix namespaces the server's keys in a shared cache.
const defaultServePrefix = "serve:"

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr          string // listen address
	dataDir       string // directory of dashboard documents
	configPath    string // default chart options
	noCache       bool   // disable the render cache
	redisAddr     string // share the cache through Redis
	redisPassword string
	redisDB       int
	keyPrefix     string // cache key namespace
}

// serveCommand creates the serve command, which serves fitted charts over
// HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:      ":8080",
		dataDir:   ".",
		keyPrefix: defaultServePrefix,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve fitted charts over HTTP",
		Long: `Serve fitted charts over HTTP.

Charts are rendered from the JSON documents in --data and sized by the
width and height query parameters:

  GET /charts/bar?data=summary&series=week&width=640&height=360
  GET /charts/pie/geometry?width=400&height=300
  GET /healthz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVarP(&opts.dataDir, "data", "d", opts.dataDir, "directory holding <name>.json documents")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "default chart option file (.toml, .yaml or .json)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for a shared render cache (e.g. localhost:6379)")
	cmd.Flags().StringVar(&opts.redisPassword, "redis-password", "", "Redis password")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "Redis database number")
	cmd.Flags().StringVar(&opts.keyPrefix, "cache-prefix", opts.keyPrefix, "cache key namespace")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	var chart *sketch.Options
	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return err
		}
		chart = loaded
	}

	store, err := c.serveCache(ctx, opts)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(
		cache.Instrumented(store, "chart"),
		cache.NewScopedKeyer(nil, opts.keyPrefix),
		logger)
	defer runner.Close()

	srv := server.New(server.Config{
		Address: opts.addr,
		DataDir: opts.dataDir,
		Runner:  runner,
		Chart:   chart,
		Logger:  logger,
	})

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	printInfo("Serving charts on %s", opts.addr)
	printDetail("Documents: %s", opts.dataDir)
	printNextStep("Try", "curl 'http://localhost"+opts.addr+"/charts/pie?width=400&height=300'")

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// serveCache picks the server's cache backend: Redis when configured, the
// file cache otherwise.
func (c *CLI) serveCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redisAddr == "" {
		return newCache(false)
	}
	rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
		Addr:     opts.redisAddr,
		Password: opts.redisPassword,
		DB:       opts.redisDB,
	})
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Info("using redis cache", "addr", opts.redisAddr)
	return rc, nil
}
