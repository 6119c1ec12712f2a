package domain

import (
	"fmt"
	"strings"
)

// Video is a catalog entry. Videos are built once at load time and never
// mutated afterwards.
type Video struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

// String renders the video as "title (id) [tag1 tag2]".
func (v Video) String() string {
	return fmt.Sprintf("%s (%s) [%s]", v.Title, v.ID, strings.Join(v.Tags, " "))
}

// TagList renders the tag collection as a bracketed, comma separated list,
// e.g. "[#cat, #animal]". Tag search matches against this form.
func (v Video) TagList() string {
	return "[" + strings.Join(v.Tags, ", ") + "]"
}

// TitleOrder compares videos by title. Use with slices.SortStableFunc so ties
// keep their input order.
func TitleOrder(a, b Video) int {
	return strings.Compare(a.Title, b.Title)
}

// Playlist is a read-only view of a user playlist.
type Playlist struct {
	Name     string   // Name as given at creation
	VideoIDs []string // Member ids in insertion order
}

// Len returns the number of videos in the playlist
func (p Playlist) Len() int { return len(p.VideoIDs) }

// FlaggedVideo pairs a video with its moderation state for listings.
type FlaggedVideo struct {
	Video
	Flagged bool
	Reason  string
}
