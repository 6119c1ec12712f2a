package playback

import (
	"github.com/mmcdole/reel/internal/domain"
)

// State represents the current state of playback.
type State int

const (
	// StateIdle indicates no video is loaded.
	StateIdle State = iota

	// StatePlaying indicates the current video is playing.
	StatePlaying

	// StatePaused indicates the current video is paused and can be continued.
	StatePaused
)

// String returns a human-readable label for the playback state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Machine tracks the single current video. The video is only meaningful in
// StatePlaying and StatePaused.
type Machine struct {
	state   State
	current domain.Video
}

// NewMachine returns a machine in StateIdle
func NewMachine() *Machine {
	return &Machine{}
}

func (m *Machine) State() State { return m.state }

// Current returns the playing or paused video.
func (m *Machine) Current() (domain.Video, bool) {
	if m.state == StateIdle {
		return domain.Video{}, false
	}
	return m.current, true
}

// IsPaused reports whether continuing is allowed by the paused flag.
// Idle counts as paused: there is no active video to be "not paused".
func (m *Machine) IsPaused() bool {
	return m.state != StatePlaying
}

// IsCurrent reports whether id is the playing or paused video
func (m *Machine) IsCurrent(id string) bool {
	return m.state != StateIdle && m.current.ID == id
}

// Switch stops any current video and starts v.
// Events: [Stopped(old)] Started(v).
func (m *Machine) Switch(v domain.Video) []domain.Event {
	events := m.StopIfActive()
	m.state = StatePlaying
	m.current = v
	return append(events, domain.Event{Kind: domain.EventStarted, Video: v})
}

// StopIfActive stops the current video if there is one.
func (m *Machine) StopIfActive() []domain.Event {
	if m.state == StateIdle {
		return nil
	}
	stopped := m.current
	m.state = StateIdle
	m.current = domain.Video{}
	return []domain.Event{{Kind: domain.EventStopped, Video: stopped}}
}

// Stop moves to StateIdle.
func (m *Machine) Stop() (domain.Event, error) {
	if m.state == StateIdle {
		return domain.Event{}, domain.ErrNothingPlaying
	}
	return m.StopIfActive()[0], nil
}

// Pause moves Playing to Paused. Pausing a paused video is not an error;
// already reports that case.
func (m *Machine) Pause() (v domain.Video, already bool, err error) {
	switch m.state {
	case StateIdle:
		return domain.Video{}, false, domain.ErrNothingPlaying
	case StatePaused:
		return m.current, true, nil
	default:
		m.state = StatePaused
		return m.current, false, nil
	}
}

// Continue moves Paused to Playing. The not-paused check runs first, so
// Idle (which counts as paused) reports ErrNothingPlaying.
func (m *Machine) Continue() (domain.Video, error) {
	if !m.IsPaused() {
		return domain.Video{}, domain.ErrNotPaused
	}
	if m.state == StateIdle {
		return domain.Video{}, domain.ErrNothingPlaying
	}
	m.state = StatePlaying
	return m.current, nil
}
