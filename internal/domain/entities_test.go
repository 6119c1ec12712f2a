package domain

import (
	"errors"
	"slices"
	"testing"
)

func TestVideo_String(t *testing.T) {
	tests := []struct {
		video    Video
		expected string
	}{
		{Video{ID: "a", Title: "Amazing Cats", Tags: []string{"#cat", "#animal"}}, "Amazing Cats (a) [#cat #animal]"},
		{Video{ID: "n", Title: "Nothing"}, "Nothing (n) []"},
	}

	for _, test := range tests {
		if got := test.video.String(); got != test.expected {
			t.Errorf("Video.String() = %q, expected %q", got, test.expected)
		}
	}
}

func TestVideo_TagList(t *testing.T) {
	v := Video{Tags: []string{"#cat", "#animal"}}
	if got := v.TagList(); got != "[#cat, #animal]" {
		t.Errorf("TagList() = %q", got)
	}
	if got := (Video{}).TagList(); got != "[]" {
		t.Errorf("empty TagList() = %q", got)
	}
}

func TestTitleOrder(t *testing.T) {
	videos := []Video{
		{ID: "3", Title: "b"},
		{ID: "1", Title: "a"},
		{ID: "2", Title: "B"},
		{ID: "4", Title: "a"},
	}
	slices.SortStableFunc(videos, TitleOrder)

	var ids []string
	for _, v := range videos {
		ids = append(ids, v.ID)
	}
	// Uppercase sorts before lowercase; equal titles keep input order.
	if !slices.Equal(ids, []string{"2", "1", "4", "3"}) {
		t.Errorf("sorted ids = %v", ids)
	}
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		err  error
		kind error
	}{
		{ErrVideoNotFound, ErrNotFound},
		{ErrPlaylistNotFound, ErrNotFound},
		{ErrPlaylistExists, ErrAlreadyExists},
		{ErrNothingPlaying, ErrInvalidState},
		{ErrNotPaused, ErrInvalidState},
		{ErrVideoAlreadyAdded, ErrDuplicateMembership},
		{ErrVideoNotInPlaylist, ErrAbsentMembership},
		{ErrNoVideosAvailable, ErrEmptyPool},
		{&FlaggedError{VideoID: "x", Reason: "r"}, ErrFlagged},
	}

	for _, test := range tests {
		if !errors.Is(test.err, test.kind) {
			t.Errorf("errors.Is(%v, %v) = false", test.err, test.kind)
		}
	}

	if errors.Is(ErrVideoNotFound, ErrPlaylistNotFound) {
		t.Error("video and playlist not-found errors must be distinct")
	}
}

func TestFlagReason(t *testing.T) {
	reason, ok := FlagReason(&FlaggedError{VideoID: "x", Reason: "dont_like"})
	if !ok || reason != "dont_like" {
		t.Errorf("FlagReason() = %q, %v", reason, ok)
	}
	if _, ok := FlagReason(ErrVideoNotFound); ok {
		t.Error("FlagReason() should not match unrelated errors")
	}
}
