package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/reel/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketCatalogs = []byte("catalogs")
)

// CatalogStore implements domain.CatalogStore using BoltDB.
type CatalogStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewCatalogStore opens the cache database under cacheDir.
// An empty cacheDir selects memory-only mode.
func NewCatalogStore(cacheDir string) (*CatalogStore, error) {
	if cacheDir == "" {
		return &CatalogStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(cacheDir, "reel.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCatalogs)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &CatalogStore{db: db, cache: make(map[string][]byte)}, nil
}

// hashSourceKey keeps bolt keys short and free of path separators.
func hashSourceKey(sourceKey string) string {
	hash := sha256.Sum256([]byte(sourceKey))
	return hex.EncodeToString(hash[:8])
}

func (s *CatalogStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *CatalogStore) get(key string, dest interface{}) bool {
	s.mu.RLock()
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCatalogs)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *CatalogStore) set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCatalogs).Put([]byte(key), data)
	})
}

func (s *CatalogStore) deletePrefix(prefix string) {
	s.mu.Lock()
	for k := range s.cache {
		if strings.HasPrefix(k, prefix) {
			delete(s.cache, k)
		}
	}
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCatalogs)
		if b == nil {
			return nil
		}
		var keys [][]byte
		c := b.Cursor()
		for k, _ := c.Seek([]byte(prefix)); k != nil && strings.HasPrefix(string(k), prefix); k, _ = c.Next() {
			keys = append(keys, append([]byte(nil), k...))
		}
		for _, k := range keys {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

// === Catalogs (key: src:{hash}:videos, src:{hash}:ts) ===

func (s *CatalogStore) GetVideos(sourceKey string) ([]domain.Video, bool) {
	var videos []domain.Video
	ok := s.get("src:"+hashSourceKey(sourceKey)+":videos", &videos)
	return videos, ok
}

func (s *CatalogStore) SaveVideos(sourceKey string, videos []domain.Video, sourceTS int64) error {
	prefix := "src:" + hashSourceKey(sourceKey)
	if err := s.set(prefix+":videos", videos); err != nil {
		return err
	}
	// Save timestamp separately for freshness checks
	return s.set(prefix+":ts", sourceTS)
}

func (s *CatalogStore) IsValid(sourceKey string, sourceTS int64) bool {
	var storedTS int64
	if !s.get("src:"+hashSourceKey(sourceKey)+":ts", &storedTS) {
		return false
	}
	return storedTS >= sourceTS
}

// Invalidate wipes the cached videos and timestamp of one source
func (s *CatalogStore) Invalidate(sourceKey string) {
	s.deletePrefix("src:" + hashSourceKey(sourceKey) + ":")
}

func (s *CatalogStore) InvalidateAll() {
	s.deletePrefix("src:")
}
