package library

import (
	"github.com/mmcdole/reel/internal/domain"
)

// Catalog holds the immutable video set plus a mutable flag overlay.
// Flag and Allow do no validation; callers pre-check existence and flag state.
type Catalog struct {
	videos map[string]domain.Video
	order  []string          // load order, used for stable listings
	flags  map[string]string // video id -> flag reason
}

// NewCatalog builds a catalog from videos. A later record with a repeated id
// replaces the earlier one in place.
func NewCatalog(videos []domain.Video) *Catalog {
	c := &Catalog{
		videos: make(map[string]domain.Video, len(videos)),
		order:  make([]string, 0, len(videos)),
		flags:  make(map[string]string),
	}
	for _, v := range videos {
		if _, exists := c.videos[v.ID]; !exists {
			c.order = append(c.order, v.ID)
		}
		c.videos[v.ID] = v
	}
	return c
}

// Len returns the number of videos regardless of flag state
func (c *Catalog) Len() int {
	return len(c.order)
}

// AllVideos returns every video in load order.
func (c *Catalog) AllVideos() []domain.Video {
	all := make([]domain.Video, 0, len(c.order))
	for _, id := range c.order {
		all = append(all, c.videos[id])
	}
	return all
}

// AllowedVideos returns the videos with no flag, in load order.
func (c *Catalog) AllowedVideos() []domain.Video {
	allowed := make([]domain.Video, 0, len(c.order))
	for _, id := range c.order {
		if _, flagged := c.flags[id]; !flagged {
			allowed = append(allowed, c.videos[id])
		}
	}
	return allowed
}

// Video looks up a video by id.
func (c *Catalog) Video(id string) (domain.Video, bool) {
	v, ok := c.videos[id]
	return v, ok
}

func (c *Catalog) IsFlagged(id string) bool {
	_, ok := c.flags[id]
	return ok
}

// FlagReason returns the stored reason and whether the video is flagged.
func (c *Catalog) FlagReason(id string) (string, bool) {
	reason, ok := c.flags[id]
	return reason, ok
}

// Flag inserts or overwrites the flag entry for id.
func (c *Catalog) Flag(id, reason string) {
	c.flags[id] = reason
}

// Allow removes the flag entry for id; no-op if absent.
func (c *Catalog) Allow(id string) {
	delete(c.flags, id)
}

// Describe pairs a video with its flag state.
func (c *Catalog) Describe(v domain.Video) domain.FlaggedVideo {
	reason, flagged := c.flags[v.ID]
	return domain.FlaggedVideo{Video: v, Flagged: flagged, Reason: reason}
}
