package search

import (
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/reel/internal/domain"
)

// Field selects what a substring query is matched against
type Field int

const (
	// FieldTitle matches against the video title
	FieldTitle Field = iota

	// FieldTags matches against the rendered tag list ("[#a, #b]"), not per tag,
	// so brackets and separators can match too.
	FieldTags
)

func (f Field) String() string {
	if f == FieldTags {
		return "tags"
	}
	return "title"
}

func (f Field) text(v domain.Video) string {
	if f == FieldTags {
		return v.TagList()
	}
	return v.Title
}

// Match returns the videos whose field contains term, ignoring case,
// sorted by title.
func Match(videos []domain.Video, field Field, term string) []domain.Video {
	needle := strings.ToLower(term)

	var results []domain.Video
	for _, v := range videos {
		if strings.Contains(strings.ToLower(field.text(v)), needle) {
			results = append(results, v)
		}
	}

	slices.SortStableFunc(results, domain.TitleOrder)
	return results
}

// Rank performs a fuzzy title search, best match first. Ties are ordered by title.
func Rank(videos []domain.Video, query string) []domain.Video {
	query = strings.TrimSpace(query)
	if query == "" || len(videos) == 0 {
		return nil
	}

	titles := make([]string, len(videos))
	for i, v := range videos {
		titles[i] = v.Title
	}

	matches := fuzzy.RankFindFold(query, titles)
	slices.SortStableFunc(matches, func(a, b fuzzy.Rank) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		return domain.TitleOrder(videos[a.OriginalIndex], videos[b.OriginalIndex])
	})

	results := make([]domain.Video, 0, len(matches))
	for _, m := range matches {
		results = append(results, videos[m.OriginalIndex])
	}
	return results
}
