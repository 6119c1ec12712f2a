package playback

import (
	"errors"
	"testing"

	"github.com/mmcdole/reel/internal/domain"
)

var (
	cats = domain.Video{ID: "amazing_cats_video_id", Title: "Amazing Cats"}
	dogs = domain.Video{ID: "funny_dogs_video_id", Title: "Funny Dogs"}
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateIdle, "Idle"},
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{State(42), "Unknown"},
	}
	for _, test := range tests {
		if got := test.state.String(); got != test.expected {
			t.Errorf("State(%d).String() = %s, expected %s", test.state, got, test.expected)
		}
	}
}

func TestMachine_SwitchStopsPrevious(t *testing.T) {
	m := NewMachine()

	events := m.Switch(cats)
	if len(events) != 1 || events[0].Kind != domain.EventStarted || events[0].Video.ID != cats.ID {
		t.Fatalf("first Switch events = %+v", events)
	}

	events = m.Switch(dogs)
	if len(events) != 2 {
		t.Fatalf("expected stop+start, got %+v", events)
	}
	if events[0].Kind != domain.EventStopped || events[0].Video.ID != cats.ID {
		t.Errorf("events[0] = %+v, expected Stopped(cats)", events[0])
	}
	if events[1].Kind != domain.EventStarted || events[1].Video.ID != dogs.ID {
		t.Errorf("events[1] = %+v, expected Started(dogs)", events[1])
	}

	current, ok := m.Current()
	if !ok || current.ID != dogs.ID || m.State() != StatePlaying {
		t.Errorf("Current() = %+v, %v in %s", current, ok, m.State())
	}
}

func TestMachine_PauseContinue(t *testing.T) {
	m := NewMachine()

	if _, _, err := m.Pause(); !errors.Is(err, domain.ErrNothingPlaying) {
		t.Errorf("Pause on idle = %v", err)
	}

	m.Switch(cats)
	if _, err := m.Continue(); !errors.Is(err, domain.ErrNotPaused) {
		t.Errorf("Continue while playing = %v, expected ErrNotPaused", err)
	}

	v, already, err := m.Pause()
	if err != nil || already || v.ID != cats.ID {
		t.Errorf("first Pause = %+v, %v, %v", v, already, err)
	}
	v, already, err = m.Pause()
	if err != nil || !already || v.ID != cats.ID {
		t.Errorf("second Pause = %+v, %v, %v", v, already, err)
	}
	if m.State() != StatePaused {
		t.Errorf("State() = %s", m.State())
	}

	v, err = m.Continue()
	if err != nil || v.ID != cats.ID || m.State() != StatePlaying {
		t.Errorf("Continue = %+v, %v in %s", v, err, m.State())
	}
}

func TestMachine_ContinueIdle(t *testing.T) {
	m := NewMachine()
	if !m.IsPaused() {
		t.Error("idle machine counts as paused")
	}
	if _, err := m.Continue(); !errors.Is(err, domain.ErrNothingPlaying) {
		t.Errorf("Continue on idle = %v, expected ErrNothingPlaying", err)
	}
}

func TestMachine_Stop(t *testing.T) {
	m := NewMachine()
	if _, err := m.Stop(); !errors.Is(err, domain.ErrNothingPlaying) {
		t.Errorf("Stop on idle = %v", err)
	}

	m.Switch(cats)
	m.Pause()
	ev, err := m.Stop()
	if err != nil || ev.Kind != domain.EventStopped || ev.Video.ID != cats.ID {
		t.Errorf("Stop = %+v, %v", ev, err)
	}
	if m.State() != StateIdle || m.IsCurrent(cats.ID) {
		t.Error("machine should be idle after stop")
	}
	if events := m.StopIfActive(); events != nil {
		t.Errorf("StopIfActive on idle = %+v", events)
	}
}
