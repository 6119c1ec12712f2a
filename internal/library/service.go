package library

import (
	"context"
	"log/slog"

	"github.com/mmcdole/reel/internal/domain"
)

// SyncResult summarizes how a catalog was loaded.
type SyncResult struct {
	SourceKey string
	FromCache bool
	Count     int
}

// Service loads catalogs from a source through the catalog store.
type Service struct {
	source domain.CatalogSource
	store  domain.CatalogStore
	logger *slog.Logger
}

// NewService creates a new library service.
func NewService(source domain.CatalogSource, store domain.CatalogStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{source: source, store: store, logger: logger}
}

// Load returns a fresh Catalog. Source failures are not fatal: the error is
// logged and an empty catalog is returned.
func (s *Service) Load(ctx context.Context) (*Catalog, SyncResult) {
	videos, result := s.sync(ctx)
	return NewCatalog(videos), result
}

func (s *Service) sync(ctx context.Context) ([]domain.Video, SyncResult) {
	key := s.source.Key()
	result := SyncResult{SourceKey: key}

	if err := ctx.Err(); err != nil {
		s.logger.Warn("catalog load cancelled", "error", err)
		return nil, result
	}

	// 1. Freshness check
	version, err := s.source.Version()
	if err != nil {
		s.logger.Warn("catalog source unavailable, starting with an empty catalog", "error", err, "source", key)
		return nil, result
	}
	if version > 0 && s.store.IsValid(key, version) {
		if videos, ok := s.store.GetVideos(key); ok {
			s.logger.Debug("cache fresh", "source", key, "count", len(videos))
			result.FromCache = true
			result.Count = len(videos)
			return videos, result
		}
	}

	// 2. Parse the source
	s.logger.Debug("cache stale, parsing", "source", key)
	videos, err := s.source.Videos()
	if err != nil {
		s.logger.Warn("failed to read catalog, starting with an empty catalog", "error", err, "source", key)
		return nil, result
	}

	if version > 0 {
		if err := s.store.SaveVideos(key, videos, version); err != nil {
			s.logger.Error("failed to save catalog", "error", err, "source", key)
		}
	}

	s.logger.Info("loaded catalog", "source", key, "count", len(videos))
	result.Count = len(videos)
	return videos, result
}
