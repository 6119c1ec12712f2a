package service

import (
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/playlist"
)

// PlaylistView is a playlist with its members resolved against the catalog
type PlaylistView struct {
	Name   string
	Videos []domain.FlaggedVideo
}

// CreatePlaylist registers an empty playlist. Names compare case-insensitively.
func (s *Session) CreatePlaylist(name string) error {
	if _, err := s.playlists.Create(name); err != nil {
		s.logger.Debug("create playlist rejected", "playlist", name, "error", err)
		return err
	}
	s.logger.Info("created playlist", "playlist", name)
	return nil
}

// PlaylistExists reports whether a playlist matches name
func (s *Session) PlaylistExists(name string) bool {
	return s.playlists.Exists(name)
}

// AddVideoToPlaylist appends id to the named playlist. Checks run in order:
// playlist, video, flag, membership.
func (s *Session) AddVideoToPlaylist(name, id string) (domain.Video, error) {
	p, err := s.lookupPlaylist(name)
	if err != nil {
		return domain.Video{}, err
	}
	video, ok := s.catalog.Video(id)
	if !ok {
		s.logger.Debug("add to playlist rejected", "playlist", name, "videoID", id, "error", domain.ErrVideoNotFound)
		return domain.Video{}, domain.ErrVideoNotFound
	}
	if reason, flagged := s.catalog.FlagReason(id); flagged {
		s.logger.Debug("add to playlist rejected", "playlist", name, "videoID", id, "reason", reason)
		return domain.Video{}, &domain.FlaggedError{VideoID: id, Reason: reason}
	}
	if p.Contains(id) {
		s.logger.Debug("add to playlist rejected", "playlist", name, "videoID", id, "error", domain.ErrVideoAlreadyAdded)
		return domain.Video{}, domain.ErrVideoAlreadyAdded
	}

	p.Add(id)
	s.logger.Info("added video to playlist", "playlist", p.Name(), "videoID", id)
	return video, nil
}

// ShowAllPlaylists returns playlist names, as created, in case-insensitive order
func (s *Session) ShowAllPlaylists() []string {
	return s.playlists.Names()
}

// ShowPlaylist returns the playlist's members in insertion order with their
// current flag state.
func (s *Session) ShowPlaylist(name string) (PlaylistView, error) {
	p, err := s.lookupPlaylist(name)
	if err != nil {
		return PlaylistView{}, err
	}

	view := PlaylistView{Name: p.Name()}
	for _, id := range p.VideoIDs() {
		video, ok := s.catalog.Video(id)
		if !ok {
			continue
		}
		view.Videos = append(view.Videos, s.catalog.Describe(video))
	}
	return view, nil
}

// RemoveFromPlaylist removes id from the named playlist
func (s *Session) RemoveFromPlaylist(name, id string) (domain.Video, error) {
	p, err := s.lookupPlaylist(name)
	if err != nil {
		return domain.Video{}, err
	}
	video, ok := s.catalog.Video(id)
	if !ok {
		s.logger.Debug("remove from playlist rejected", "playlist", name, "videoID", id, "error", domain.ErrVideoNotFound)
		return domain.Video{}, domain.ErrVideoNotFound
	}
	if !p.Contains(id) {
		s.logger.Debug("remove from playlist rejected", "playlist", name, "videoID", id, "error", domain.ErrVideoNotInPlaylist)
		return domain.Video{}, domain.ErrVideoNotInPlaylist
	}

	p.Remove(id)
	s.logger.Info("removed video from playlist", "playlist", p.Name(), "videoID", id)
	return video, nil
}

// ClearPlaylist empties the named playlist, keeping it registered
func (s *Session) ClearPlaylist(name string) error {
	p, err := s.lookupPlaylist(name)
	if err != nil {
		return err
	}
	p.Clear()
	s.logger.Info("cleared playlist", "playlist", p.Name())
	return nil
}

// DeletePlaylist unregisters the named playlist
func (s *Session) DeletePlaylist(name string) error {
	if err := s.playlists.Delete(name); err != nil {
		s.logger.Debug("delete playlist rejected", "playlist", name, "error", err)
		return err
	}
	s.logger.Info("deleted playlist", "playlist", name)
	return nil
}

func (s *Session) lookupPlaylist(name string) (*playlist.Playlist, error) {
	p, ok := s.playlists.Get(name)
	if !ok {
		s.logger.Debug("playlist lookup failed", "playlist", name)
		return nil, domain.ErrPlaylistNotFound
	}
	return p, nil
}
