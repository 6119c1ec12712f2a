package service

import (
	"slices"

	"github.com/mmcdole/reel/internal/domain"
)

// NumberOfVideos returns the catalog size, flagged videos included
func (s *Session) NumberOfVideos() int {
	return s.catalog.Len()
}

// ShowAllVideos returns every video with its flag state, sorted by title
func (s *Session) ShowAllVideos() []domain.FlaggedVideo {
	videos := s.catalog.AllVideos()
	slices.SortStableFunc(videos, domain.TitleOrder)

	listing := make([]domain.FlaggedVideo, len(videos))
	for i, v := range videos {
		listing[i] = s.catalog.Describe(v)
	}
	return listing
}
