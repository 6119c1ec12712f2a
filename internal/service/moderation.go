package service

import (
	"github.com/mmcdole/reel/internal/domain"
)

// FlagResult reports a successful flag. Events holds the implicit stop when
// the flagged video was playing or paused.
type FlagResult struct {
	Video  domain.Video
	Reason string
	Events []domain.Event
}

// FlagVideo marks id as flagged. An empty reason is recorded as
// domain.DefaultFlagReason.
func (s *Session) FlagVideo(id, reason string) (FlagResult, error) {
	if reason == "" {
		reason = domain.DefaultFlagReason
	}

	video, ok := s.catalog.Video(id)
	if !ok {
		s.logger.Debug("flag rejected", "videoID", id, "error", domain.ErrVideoNotFound)
		return FlagResult{}, domain.ErrVideoNotFound
	}
	if s.catalog.IsFlagged(id) {
		s.logger.Debug("flag rejected", "videoID", id, "error", domain.ErrAlreadyFlagged)
		return FlagResult{}, domain.ErrAlreadyFlagged
	}

	var events []domain.Event
	if s.player.IsCurrent(id) {
		events = s.player.StopIfActive()
	}

	s.catalog.Flag(id, reason)
	s.logger.Info("flagged video", "videoID", id, "reason", reason)
	return FlagResult{Video: video, Reason: reason, Events: events}, nil
}

// AllowVideo removes the flag from id
func (s *Session) AllowVideo(id string) (domain.Video, error) {
	video, ok := s.catalog.Video(id)
	if !ok {
		s.logger.Debug("allow rejected", "videoID", id, "error", domain.ErrVideoNotFound)
		return domain.Video{}, domain.ErrVideoNotFound
	}
	if !s.catalog.IsFlagged(id) {
		s.logger.Debug("allow rejected", "videoID", id, "error", domain.ErrNotFlagged)
		return domain.Video{}, domain.ErrNotFlagged
	}

	s.catalog.Allow(id)
	s.logger.Info("allowed video", "videoID", id)
	return video, nil
}
