package cli

import (
	"errors"
	"fmt"

	"github.com/mmcdole/reel/internal/domain"
)

const invalidCommandMsg = "Please enter a valid command, type HELP for a list of available commands."

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format+"\n", a...)
}

// videoLine renders a listing entry with its flag suffix
func videoLine(fv domain.FlaggedVideo) string {
	if fv.Flagged {
		return fmt.Sprintf("%s - FLAGGED (reason: %s)", fv.Video, fv.Reason)
	}
	return fv.Video.String()
}

func (c *Console) printEvents(events []domain.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case domain.EventStopped:
			c.printf("Stopping video: %s", ev.Video.Title)
		case domain.EventStarted:
			c.printf("Playing video: %s", ev.Video.Title)
		case domain.EventPaused:
			c.printf("Pausing video: %s", ev.Video.Title)
		case domain.EventResumed:
			c.printf("Continuing video: %s", ev.Video.Title)
		}
	}
}

func (c *Console) printPlayError(err error) {
	if reason, ok := domain.FlagReason(err); ok {
		c.printf("Cannot play video: Video is currently flagged (reason: %s)", reason)
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		c.println("Cannot play video: Video does not exist")
		return
	}
	c.printf("Cannot play video: %v", err)
}

// printPlaylistError renders playlist failures; action reads like
// "add video to" or "remove video from".
func (c *Console) printPlaylistError(action, name string, err error) {
	prefix := fmt.Sprintf("Cannot %s %s", action, name)
	if reason, ok := domain.FlagReason(err); ok {
		c.printf("%s: Video is currently flagged (reason: %s)", prefix, reason)
		return
	}
	switch {
	case errors.Is(err, domain.ErrPlaylistNotFound):
		c.printf("%s: Playlist does not exist", prefix)
	case errors.Is(err, domain.ErrVideoNotFound):
		c.printf("%s: Video does not exist", prefix)
	case errors.Is(err, domain.ErrDuplicateMembership):
		c.printf("%s: Video already added", prefix)
	case errors.Is(err, domain.ErrAbsentMembership):
		c.printf("%s: Video is not in playlist", prefix)
	default:
		c.printf("%s: %v", prefix, err)
	}
}
