package library

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/store"
)

type fakeSource struct {
	key     string
	version int64
	videos  []domain.Video
	err     error
	reads   int
}

func (f *fakeSource) Key() string { return f.key }

func (f *fakeSource) Version() (int64, error) { return f.version, f.err }

func (f *fakeSource) Videos() ([]domain.Video, error) {
	f.reads++
	return f.videos, f.err
}

func newMemoryStore(t *testing.T) *store.CatalogStore {
	t.Helper()
	s, err := store.NewCatalogStore("")
	if err != nil {
		t.Fatalf("NewCatalogStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadCachesVersionedSource(t *testing.T) {
	src := &fakeSource{
		key:     "/srv/videos.txt",
		version: 100,
		videos:  []domain.Video{{ID: "a", Title: "A", Tags: []string{}}},
	}
	svc := NewService(src, newMemoryStore(t), nil)

	catalog, result := svc.Load(context.Background())
	if result.FromCache || result.Count != 1 || catalog.Len() != 1 {
		t.Fatalf("first load = %+v, len %d", result, catalog.Len())
	}

	_, result = svc.Load(context.Background())
	if !result.FromCache || src.reads != 1 {
		t.Errorf("second load = %+v, reads %d; expected cache hit", result, src.reads)
	}

	src.version = 200
	_, result = svc.Load(context.Background())
	if result.FromCache || src.reads != 2 {
		t.Errorf("load after change = %+v, reads %d; expected reparse", result, src.reads)
	}
}

func TestLoadUnversionedSourceAlwaysParses(t *testing.T) {
	src := &fakeSource{key: "builtin", videos: []domain.Video{{ID: "a", Title: "A"}}}
	svc := NewService(src, newMemoryStore(t), nil)

	svc.Load(context.Background())
	_, result := svc.Load(context.Background())
	if result.FromCache || src.reads != 2 {
		t.Errorf("result = %+v, reads %d", result, src.reads)
	}
}

func TestLoadSourceErrorYieldsEmptyCatalog(t *testing.T) {
	src := &fakeSource{key: "/missing", err: errors.New("no such file")}
	catalog, result := NewService(src, newMemoryStore(t), nil).Load(context.Background())
	if catalog.Len() != 0 || result.Count != 0 {
		t.Errorf("catalog len %d, result %+v", catalog.Len(), result)
	}
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &fakeSource{key: "k", version: 1, videos: []domain.Video{{ID: "a"}}}
	catalog, _ := NewService(src, newMemoryStore(t), nil).Load(ctx)
	if catalog.Len() != 0 || src.reads != 0 {
		t.Errorf("cancelled load read the source")
	}
}

func TestCatalogDuplicateIDReplacesInPlace(t *testing.T) {
	c := NewCatalog([]domain.Video{
		{ID: "a", Title: "First"},
		{ID: "b", Title: "B"},
		{ID: "a", Title: "Second"},
	})
	if c.Len() != 2 {
		t.Fatalf("Len() = %d", c.Len())
	}
	all := c.AllVideos()
	if all[0].ID != "a" || all[0].Title != "Second" {
		t.Errorf("AllVideos()[0] = %+v", all[0])
	}
}

func TestCatalogFlagOverlay(t *testing.T) {
	c := NewCatalog([]domain.Video{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}})
	c.Flag("a", "spam")

	if reason, ok := c.FlagReason("a"); !ok || reason != "spam" {
		t.Errorf("FlagReason(a) = %q, %v", reason, ok)
	}
	var allowed []string
	for _, v := range c.AllowedVideos() {
		allowed = append(allowed, v.ID)
	}
	if !slices.Equal(allowed, []string{"b"}) {
		t.Errorf("AllowedVideos() = %v", allowed)
	}
	if d := c.Describe(domain.Video{ID: "a", Title: "A"}); !d.Flagged || d.Reason != "spam" {
		t.Errorf("Describe(a) = %+v", d)
	}

	c.Allow("a")
	if c.IsFlagged("a") || len(c.AllowedVideos()) != 2 {
		t.Error("Allow did not clear the flag")
	}
}
