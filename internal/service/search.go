package service

import (
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/search"
)

// SearchResult holds the matches for Term. Flagged videos never appear.
type SearchResult struct {
	Term   string
	Videos []domain.Video
}

// Empty reports whether nothing matched
func (r SearchResult) Empty() bool {
	return len(r.Videos) == 0
}

// SearchVideos matches term against titles, case-insensitively
func (s *Session) SearchVideos(term string) SearchResult {
	return s.searchField(search.FieldTitle, term)
}

// SearchVideosWithTag matches term against the rendered tag list, so a
// partial tag or the separator itself can match.
func (s *Session) SearchVideosWithTag(term string) SearchResult {
	return s.searchField(search.FieldTags, term)
}

func (s *Session) searchField(field search.Field, term string) SearchResult {
	matches := search.Match(s.catalog.AllowedVideos(), field, term)
	s.logger.Debug("search", "field", field, "term", term, "results", len(matches))
	return SearchResult{Term: term, Videos: matches}
}

// FindVideos ranks allowed videos by fuzzy title similarity to query
func (s *Session) FindVideos(query string) SearchResult {
	matches := search.Rank(s.catalog.AllowedVideos(), query)
	s.logger.Debug("find", "query", query, "results", len(matches))
	return SearchResult{Term: query, Videos: matches}
}

// PlaySearchResult plays the n-th (1-based) video of result. Any n outside
// 1..len(result.Videos) is a decline and leaves playback untouched.
func (s *Session) PlaySearchResult(result SearchResult, n int) (PlayResult, bool, error) {
	if n < 1 || n > len(result.Videos) {
		s.logger.Debug("search selection declined", "term", result.Term, "selection", n)
		return PlayResult{}, false, nil
	}
	res, err := s.PlayVideo(result.Videos[n-1].ID)
	return res, true, err
}
