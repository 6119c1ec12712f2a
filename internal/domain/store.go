package domain

// CatalogStore caches parsed catalogs (BoltDB + memory).
// Only the read-only video set is stored; flags and playlists never are.
type CatalogStore interface {
	GetVideos(sourceKey string) ([]Video, bool)
	SaveVideos(sourceKey string, videos []Video, sourceTS int64) error

	// IsValid checks if the stored timestamp >= sourceTS
	IsValid(sourceKey string, sourceTS int64) bool

	Invalidate(sourceKey string)
	InvalidateAll()

	Close() error
}

// CatalogSource reads the raw video records of a catalog.
type CatalogSource interface {
	// Key identifies the source for caching, e.g. a file path
	Key() string

	// Version returns a freshness stamp; 0 means "always reload"
	Version() (int64, error)

	// Videos parses and returns every record
	Videos() ([]Video, error)
}
