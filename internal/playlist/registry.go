package playlist

import (
	"slices"

	"github.com/mmcdole/reel/internal/domain"
	"golang.org/x/text/cases"
)

// Registry maps case-folded playlist names to playlists.
// Lookups ignore case; each playlist keeps the casing it was created with.
type Registry struct {
	playlists map[string]*Playlist
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{playlists: make(map[string]*Playlist)}
}

// foldKey normalizes a name for identity comparison
func foldKey(name string) string {
	return cases.Fold().String(name)
}

// Create stores a new playlist under the given casing.
func (r *Registry) Create(name string) (*Playlist, error) {
	key := foldKey(name)
	if _, exists := r.playlists[key]; exists {
		return nil, domain.ErrPlaylistExists
	}
	p := New(name)
	r.playlists[key] = p
	return p, nil
}

func (r *Registry) Exists(name string) bool {
	_, ok := r.playlists[foldKey(name)]
	return ok
}

// Get looks up a playlist ignoring case
func (r *Registry) Get(name string) (*Playlist, bool) {
	p, ok := r.playlists[foldKey(name)]
	return p, ok
}

func (r *Registry) Delete(name string) error {
	key := foldKey(name)
	if _, ok := r.playlists[key]; !ok {
		return domain.ErrPlaylistNotFound
	}
	delete(r.playlists, key)
	return nil
}

func (r *Registry) Len() int {
	return len(r.playlists)
}

// Names returns the stored names sorted case-insensitively.
func (r *Registry) Names() []string {
	keys := make([]string, 0, len(r.playlists))
	for key := range r.playlists {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = r.playlists[key].Name()
	}
	return names
}
