package service

import (
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/playback"
)

// PlayResult lists the playback notifications of a command in order
type PlayResult struct {
	Events []domain.Event
}

// Started returns the video that began playing, if any
func (r PlayResult) Started() (domain.Video, bool) {
	for _, ev := range r.Events {
		if ev.Kind == domain.EventStarted {
			return ev.Video, true
		}
	}
	return domain.Video{}, false
}

// PauseResult reports the paused video. AlreadyPaused is a note, not an error.
type PauseResult struct {
	Video         domain.Video
	AlreadyPaused bool
}

// NowPlaying describes the current video
type NowPlaying struct {
	Video  domain.Video
	Paused bool
}

// PlayVideo plays id, stopping the current video first.
func (s *Session) PlayVideo(id string) (PlayResult, error) {
	video, ok := s.catalog.Video(id)
	if !ok {
		s.logger.Debug("play rejected", "videoID", id, "error", domain.ErrVideoNotFound)
		return PlayResult{}, domain.ErrVideoNotFound
	}
	if reason, flagged := s.catalog.FlagReason(id); flagged {
		s.logger.Debug("play rejected", "videoID", id, "reason", reason)
		return PlayResult{}, &domain.FlaggedError{VideoID: id, Reason: reason}
	}

	events := s.player.Switch(video)
	s.logger.Info("playing video", "videoID", id)
	return PlayResult{Events: events}, nil
}

// StopVideo stops the current video
func (s *Session) StopVideo() (domain.Event, error) {
	ev, err := s.player.Stop()
	if err != nil {
		s.logger.Debug("stop rejected", "error", err)
		return domain.Event{}, err
	}
	s.logger.Info("stopped video", "videoID", ev.Video.ID)
	return ev, nil
}

// PlayRandomVideo plays a random allowed video. Any current video is stopped
// before the pool is checked, so an empty pool still reports the stop.
func (s *Session) PlayRandomVideo() (PlayResult, error) {
	events := s.player.StopIfActive()

	pool := s.catalog.AllowedVideos()
	if len(pool) == 0 {
		s.logger.Debug("random play rejected", "error", domain.ErrNoVideosAvailable)
		return PlayResult{Events: events}, domain.ErrNoVideosAvailable
	}

	video := pool[s.rng.IntN(len(pool))]
	events = append(events, s.player.Switch(video)...)
	s.logger.Info("playing random video", "videoID", video.ID, "pool", len(pool))
	return PlayResult{Events: events}, nil
}

// PauseVideo pauses the current video
func (s *Session) PauseVideo() (PauseResult, error) {
	video, already, err := s.player.Pause()
	if err != nil {
		s.logger.Debug("pause rejected", "error", err)
		return PauseResult{}, err
	}
	if !already {
		s.logger.Info("paused video", "videoID", video.ID)
	}
	return PauseResult{Video: video, AlreadyPaused: already}, nil
}

// ContinueVideo resumes a paused video. A video that is not paused is
// reported before an idle player is.
func (s *Session) ContinueVideo() (domain.Video, error) {
	video, err := s.player.Continue()
	if err != nil {
		s.logger.Debug("continue rejected", "error", err)
		return domain.Video{}, err
	}
	s.logger.Info("continued video", "videoID", video.ID)
	return video, nil
}

// ShowPlaying returns the current video, or false when idle
func (s *Session) ShowPlaying() (NowPlaying, bool) {
	video, ok := s.player.Current()
	if !ok {
		return NowPlaying{}, false
	}
	return NowPlaying{Video: video, Paused: s.player.State() == playback.StatePaused}, true
}
