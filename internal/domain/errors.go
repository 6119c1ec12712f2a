package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every command failure matches exactly one of these via errors.Is.
var (
	// ErrNotFound indicates the referenced video or playlist does not exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a playlist name collision
	ErrAlreadyExists = errors.New("already exists")

	// ErrFlagged indicates the operation was blocked by an active flag
	ErrFlagged = errors.New("video is flagged")

	// ErrInvalidState indicates the operation is invalid for the current playback state
	ErrInvalidState = errors.New("invalid playback state")

	// ErrAlreadyFlagged indicates the video already carries a flag
	ErrAlreadyFlagged = errors.New("video is already flagged")

	// ErrNotFlagged indicates the video carries no flag
	ErrNotFlagged = errors.New("video is not flagged")

	// ErrDuplicateMembership indicates the video is already in the playlist
	ErrDuplicateMembership = errors.New("duplicate playlist membership")

	// ErrAbsentMembership indicates the video is not in the playlist
	ErrAbsentMembership = errors.New("absent playlist membership")

	// ErrEmptyPool indicates no allowed video is available
	ErrEmptyPool = errors.New("empty video pool")
)

// Specific sentinels, each wrapping its kind.
var (
	ErrVideoNotFound      = fmt.Errorf("video does not exist: %w", ErrNotFound)
	ErrPlaylistNotFound   = fmt.Errorf("playlist does not exist: %w", ErrNotFound)
	ErrPlaylistExists     = fmt.Errorf("playlist with the same name: %w", ErrAlreadyExists)
	ErrNothingPlaying     = fmt.Errorf("no video is currently playing: %w", ErrInvalidState)
	ErrNotPaused          = fmt.Errorf("video is not paused: %w", ErrInvalidState)
	ErrVideoAlreadyAdded  = fmt.Errorf("video already added: %w", ErrDuplicateMembership)
	ErrVideoNotInPlaylist = fmt.Errorf("video is not in playlist: %w", ErrAbsentMembership)
	ErrNoVideosAvailable  = fmt.Errorf("no videos available: %w", ErrEmptyPool)
)

// DefaultFlagReason is recorded when a video is flagged without a reason.
const DefaultFlagReason = "Not supplied"

// FlaggedError is returned when a flagged video is played or added to a playlist.
type FlaggedError struct {
	VideoID string
	Reason  string
}

func (e *FlaggedError) Error() string {
	return fmt.Sprintf("video %s is currently flagged (reason: %s)", e.VideoID, e.Reason)
}

// Is reports whether target is ErrFlagged.
func (e *FlaggedError) Is(target error) bool {
	return target == ErrFlagged
}

// FlagReason extracts the flag reason from err, if any.
func FlagReason(err error) (string, bool) {
	var fe *FlaggedError
	if errors.As(err, &fe) {
		return fe.Reason, true
	}
	return "", false
}
