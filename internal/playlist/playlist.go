package playlist

import (
	"slices"

	"github.com/mmcdole/reel/internal/domain"
)

// Playlist is a named, ordered list of video ids.
// Add does not dedupe; callers check Contains first.
type Playlist struct {
	name     string
	videoIDs []string
}

// New creates an empty playlist
func New(name string) *Playlist {
	return &Playlist{name: name, videoIDs: []string{}}
}

// Name returns the name as given at creation
func (p *Playlist) Name() string { return p.name }

func (p *Playlist) Contains(videoID string) bool {
	return slices.Contains(p.videoIDs, videoID)
}

// Add appends videoID
func (p *Playlist) Add(videoID string) {
	p.videoIDs = append(p.videoIDs, videoID)
}

// Remove deletes the first occurrence of videoID, keeping the order of the rest.
func (p *Playlist) Remove(videoID string) {
	if i := slices.Index(p.videoIDs, videoID); i >= 0 {
		p.videoIDs = slices.Delete(p.videoIDs, i, i+1)
	}
}

// Clear empties the playlist; the playlist itself survives.
func (p *Playlist) Clear() {
	p.videoIDs = p.videoIDs[:0]
}

// VideoIDs returns a copy of the member ids in insertion order
func (p *Playlist) VideoIDs() []string {
	return slices.Clone(p.videoIDs)
}

// Snapshot returns a read-only view
func (p *Playlist) Snapshot() domain.Playlist {
	return domain.Playlist{Name: p.name, VideoIDs: p.VideoIDs()}
}
