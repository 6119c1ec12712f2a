package service

import (
	"log/slog"
	"math/rand/v2"

	"github.com/mmcdole/reel/internal/library"
	"github.com/mmcdole/reel/internal/playback"
	"github.com/mmcdole/reel/internal/playlist"
)

// Session owns all per-run state: the catalog with its flag overlay, the
// playlist registry and the playback machine. Commands run one at a time and
// each either applies fully or not at all.
type Session struct {
	catalog   *library.Catalog
	playlists *playlist.Registry
	player    *playback.Machine
	rng       *rand.Rand
	logger    *slog.Logger
}

// Option configures a Session
type Option func(*Session)

// WithSeed makes PLAY_RANDOM deterministic. A zero seed is ignored.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		if seed != 0 {
			s.rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
		}
	}
}

// WithRand sets the random source used by PLAY_RANDOM
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// NewSession creates a session over catalog with no playlists and nothing playing
func NewSession(catalog *library.Catalog, logger *slog.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	if catalog == nil {
		catalog = library.NewCatalog(nil)
	}
	s := &Session{
		catalog:   catalog,
		playlists: playlist.NewRegistry(),
		player:    playback.NewMachine(),
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaybackState returns the current playback state
func (s *Session) PlaybackState() playback.State {
	return s.player.State()
}
