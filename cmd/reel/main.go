package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mmcdole/reel/internal/adapter"
	"github.com/mmcdole/reel/internal/adapter/source"
	"github.com/mmcdole/reel/internal/cli"
	"github.com/mmcdole/reel/internal/library"
	"github.com/mmcdole/reel/internal/service"
	"github.com/mmcdole/reel/internal/store"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	var configFile string
	var refresh bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&configFile, "config", "", "path to config file")
	flag.BoolVar(&refresh, "refresh", false, "reparse the catalog, ignoring the cache")
	flag.Parse()

	if showVersion {
		fmt.Printf("reel %s\n", Version)
		return
	}

	if err := run(configFile, refresh); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string, refresh bool) error {
	cfg, err := adapter.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting reel", "version", Version)

	catalogStore, err := store.NewCatalogStore(cfg.Cache.Dir)
	if err != nil {
		logger.Warn("catalog cache unavailable, using memory", "error", err, "dir", cfg.Cache.Dir)
		catalogStore, _ = store.NewCatalogStore("")
	}
	defer catalogStore.Close()

	catalogSource := source.New(cfg.Catalog.Path, logger)
	if refresh {
		logger.Info("invalidating catalog cache", "source", catalogSource.Key())
		catalogStore.Invalidate(catalogSource.Key())
	}

	ctx := context.Background()

	librarySvc := library.NewService(catalogSource, catalogStore, logger)
	catalog, sync := librarySvc.Load(ctx)
	logger.Info("catalog ready", "source", sync.SourceKey, "videos", sync.Count, "cached", sync.FromCache)

	session := service.NewSession(catalog, logger, service.WithSeed(cfg.Session.Seed))
	console := cli.NewConsole(session, os.Stdin, os.Stdout,
		cli.WithPrompt(cfg.UI.Prompt),
		cli.WithLogger(logger),
	)

	if err := console.Run(ctx); err != nil {
		logger.Error("console error", "error", err)
		return fmt.Errorf("console error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
