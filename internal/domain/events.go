package domain

// EventKind identifies a playback notification
type EventKind int

const (
	EventStopped EventKind = iota
	EventStarted
	EventPaused
	EventResumed
)

// String returns a human-readable label for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStopped:
		return "Stopped"
	case EventStarted:
		return "Started"
	case EventPaused:
		return "Paused"
	case EventResumed:
		return "Resumed"
	default:
		return "Unknown"
	}
}

// Event is a playback notification. Commands return events in the order
// they happened, e.g. Stopped(A) before Started(B).
type Event struct {
	Kind  EventKind
	Video Video
}
