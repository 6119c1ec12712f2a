package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/service"
)

// usageError carries the hint printed when a command lacks arguments
type usageError struct {
	hint string
}

func (e *usageError) Error() string { return e.hint }

// minArgs requires at least n arguments. Extra arguments are ignored.
func minArgs(n int, hint string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < n {
			return &usageError{hint: hint}
		}
		return nil
	}
}

// buildRoot wires every console command into a cobra tree. Flag parsing is
// disabled everywhere so ids and reasons starting with "-" pass through.
func (c *Console) buildRoot() *cobra.Command {
	root := &cobra.Command{
		Use:                "reel",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		DisableFlagParsing: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(c.out)
	root.SetErr(c.out)
	root.SetHelpFunc(func(*cobra.Command, []string) { c.printHelp() })

	c.commands = []*cobra.Command{
		c.command("NUMBER_OF_VIDEOS", "", "Shows how many videos are in the library.", 0, "", c.numberOfVideos),
		c.command("SHOW_ALL_VIDEOS", "", "Lists all videos from the library.", 0, "", c.showAllVideos),
		c.command("PLAY", "<video_id>", "Plays specified video.", 1,
			"Please enter PLAY command followed by video_id.", c.play),
		c.command("PLAY_RANDOM", "", "Plays a random video from the library.", 0, "", c.playRandom),
		c.command("STOP", "", "Stop the current video.", 0, "", c.stop),
		c.command("PAUSE", "", "Pause the current video.", 0, "", c.pause),
		c.command("CONTINUE", "", "Resume the current paused video.", 0, "", c.continueVideo),
		c.command("SHOW_PLAYING", "", "Displays the title, id, tags and paused status of the current video.", 0, "", c.showPlaying),
		c.command("CREATE_PLAYLIST", "<playlist_name>", "Creates a new (empty) playlist with the provided name.", 1,
			"Please enter CREATE_PLAYLIST command followed by a playlist name.", c.createPlaylist),
		c.command("ADD_TO_PLAYLIST", "<playlist_name> <video_id>", "Adds the requested video to the playlist.", 2,
			"Please enter ADD_TO_PLAYLIST command followed by a playlist name and video_id to add.", c.addToPlaylist),
		c.command("REMOVE_FROM_PLAYLIST", "<playlist_name> <video_id>", "Removes the specified video from the specified playlist.", 2,
			"Please enter REMOVE_FROM_PLAYLIST command followed by a playlist name and video_id to remove.", c.removeFromPlaylist),
		c.command("CLEAR_PLAYLIST", "<playlist_name>", "Removes all videos from the playlist.", 1,
			"Please enter CLEAR_PLAYLIST command followed by a playlist name.", c.clearPlaylist),
		c.command("DELETE_PLAYLIST", "<playlist_name>", "Deletes the playlist.", 1,
			"Please enter DELETE_PLAYLIST command followed by a playlist name.", c.deletePlaylist),
		c.command("SHOW_PLAYLIST", "<playlist_name>", "List all the videos in this playlist.", 1,
			"Please enter SHOW_PLAYLIST command followed by a playlist name.", c.showPlaylist),
		c.command("SHOW_ALL_PLAYLISTS", "", "Display all the available playlists.", 0, "", c.showAllPlaylists),
		c.command("SEARCH_VIDEOS", "<search_term>", "Display all the videos whose titles contain the search_term.", 1,
			"Please enter SEARCH_VIDEOS command followed by a search term.", c.searchVideos),
		c.command("SEARCH_VIDEOS_WITH_TAG", "<tag_name>", "Display all videos whose tags contain the provided tag.", 1,
			"Please enter SEARCH_VIDEOS_WITH_TAG command followed by a tag.", c.searchVideosWithTag),
		c.command("FIND", "<query>", "Display allowed videos ranked by how closely their titles match the query.", 1,
			"Please enter FIND command followed by a query.", c.find),
		c.command("FLAG_VIDEO", "<video_id> [flag_reason]", "Mark a video as flagged.", 1,
			"Please enter FLAG_VIDEO command followed by a video_id and an optional flag reason.", c.flagVideo),
		c.command("ALLOW_VIDEO", "<video_id>", "Removes a flag from a video.", 1,
			"Please enter ALLOW_VIDEO command followed by a video_id.", c.allowVideo),
		c.command("HELP", "", "Displays help.", 0, "", func([]string) { c.printHelp() }),
		c.command("EXIT", "", "Terminates the program execution.", 0, "", c.exit),
	}

	for _, cmd := range c.commands {
		if cmd.Name() == "HELP" {
			root.SetHelpCommand(cmd)
			continue
		}
		root.AddCommand(cmd)
	}
	return root
}

func (c *Console) command(name, args, short string, n int, hint string, run func([]string)) *cobra.Command {
	use := name
	if args != "" {
		use += " " + args
	}
	return &cobra.Command{
		Use:                use,
		Short:              short,
		Args:               minArgs(n, hint),
		DisableFlagParsing: true,
		Run: func(_ *cobra.Command, args []string) {
			run(args)
		},
	}
}

// printHelp lists commands in console order
func (c *Console) printHelp() {
	c.println(c.styles.Title.Render("Available commands:"))
	for _, cmd := range c.commands {
		line := "    " + c.styles.HelpKey.Render(cmd.Name())
		if _, args, ok := strings.Cut(cmd.Use, " "); ok {
			line += " " + c.styles.HelpArgs.Render(args)
		}
		c.println(line + " - " + c.styles.HelpDesc.Render(cmd.Short))
	}
}

func (c *Console) exit([]string) {
	c.println("Reel has now terminated its execution. Thank you and goodbye!")
	c.done = true
}

func (c *Console) numberOfVideos([]string) {
	c.printf("%d videos in the library", c.session.NumberOfVideos())
}

func (c *Console) showAllVideos([]string) {
	c.println("Here's a list of all available videos:")
	for _, fv := range c.session.ShowAllVideos() {
		c.println("  " + videoLine(fv))
	}
}

func (c *Console) play(args []string) {
	res, err := c.session.PlayVideo(args[0])
	if err != nil {
		c.printPlayError(err)
		return
	}
	c.printEvents(res.Events)
}

func (c *Console) playRandom([]string) {
	res, err := c.session.PlayRandomVideo()
	c.printEvents(res.Events)
	if err != nil {
		c.println("No videos available")
	}
}

func (c *Console) stop([]string) {
	ev, err := c.session.StopVideo()
	if err != nil {
		c.println("Cannot stop video: No video is currently playing")
		return
	}
	c.printEvents([]domain.Event{ev})
}

func (c *Console) pause([]string) {
	res, err := c.session.PauseVideo()
	switch {
	case err != nil:
		c.println("Cannot pause video: No video is currently playing")
	case res.AlreadyPaused:
		c.printf("Video already paused: %s", res.Video.Title)
	default:
		c.printf("Pausing video: %s", res.Video.Title)
	}
}

func (c *Console) continueVideo([]string) {
	v, err := c.session.ContinueVideo()
	switch {
	case errors.Is(err, domain.ErrNotPaused):
		c.println("Cannot continue video: Video is not paused")
	case err != nil:
		c.println("Cannot continue video: No video is currently playing")
	default:
		c.printf("Continuing video: %s", v.Title)
	}
}

func (c *Console) showPlaying([]string) {
	now, ok := c.session.ShowPlaying()
	if !ok {
		c.println("No video is currently playing")
		return
	}
	line := "Currently playing: " + now.Video.String()
	if now.Paused {
		line += " - PAUSED"
	}
	c.println(line)
}

func (c *Console) createPlaylist(args []string) {
	if err := c.session.CreatePlaylist(args[0]); err != nil {
		c.println("Cannot create playlist: A playlist with the same name already exists")
		return
	}
	c.printf("Successfully created new playlist: %s", args[0])
}

func (c *Console) addToPlaylist(args []string) {
	name := args[0]
	v, err := c.session.AddVideoToPlaylist(name, args[1])
	if err != nil {
		c.printPlaylistError("add video to", name, err)
		return
	}
	c.printf("Added video to %s: %s", name, v.Title)
}

func (c *Console) removeFromPlaylist(args []string) {
	name := args[0]
	v, err := c.session.RemoveFromPlaylist(name, args[1])
	if err != nil {
		c.printPlaylistError("remove video from", name, err)
		return
	}
	c.printf("Removed video from %s: %s", name, v.Title)
}

func (c *Console) clearPlaylist(args []string) {
	if err := c.session.ClearPlaylist(args[0]); err != nil {
		c.printf("Cannot clear playlist %s: Playlist does not exist", args[0])
		return
	}
	c.printf("Successfully removed all videos from %s", args[0])
}

func (c *Console) deletePlaylist(args []string) {
	if err := c.session.DeletePlaylist(args[0]); err != nil {
		c.printf("Cannot delete playlist %s: Playlist does not exist", args[0])
		return
	}
	c.printf("Deleted playlist: %s", args[0])
}

func (c *Console) showPlaylist(args []string) {
	view, err := c.session.ShowPlaylist(args[0])
	if err != nil {
		c.printf("Cannot show playlist %s: Playlist does not exist", args[0])
		return
	}
	c.printf("Showing playlist: %s", args[0])
	if len(view.Videos) == 0 {
		c.println("  No videos here yet")
		return
	}
	for _, fv := range view.Videos {
		c.println("  " + videoLine(fv))
	}
}

func (c *Console) showAllPlaylists([]string) {
	names := c.session.ShowAllPlaylists()
	if len(names) == 0 {
		c.println("No playlists exist yet")
		return
	}
	c.println("Showing all playlists:")
	for _, name := range names {
		c.println("  " + name)
	}
}

func (c *Console) searchVideos(args []string) {
	c.offerResults(c.session.SearchVideos(args[0]))
}

func (c *Console) searchVideosWithTag(args []string) {
	c.offerResults(c.session.SearchVideosWithTag(args[0]))
}

func (c *Console) find(args []string) {
	c.offerResults(c.session.FindVideos(strings.Join(args, " ")))
}

// offerResults prints search results and reads the play-by-number answer
func (c *Console) offerResults(result service.SearchResult) {
	if result.Empty() {
		c.printf("No search results for %s", result.Term)
		return
	}

	c.printf("Here are the results for %s:", result.Term)
	for i, v := range result.Videos {
		c.printf("  %d) %s", i+1, v)
	}
	c.println("Would you like to play any of the above? If yes, specify the number of the video.")
	c.println("If your answer is not a valid number, we will assume it's a no.")

	n, ok := c.readSelection()
	if !ok {
		return
	}
	res, played, err := c.session.PlaySearchResult(result, n)
	if !played {
		return
	}
	if err != nil {
		c.printPlayError(err)
		return
	}
	c.printEvents(res.Events)
}

func (c *Console) flagVideo(args []string) {
	reason := strings.Join(args[1:], " ")
	res, err := c.session.FlagVideo(args[0], reason)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.println("Cannot flag video: Video does not exist")
	case errors.Is(err, domain.ErrAlreadyFlagged):
		c.println("Cannot flag video: Video is already flagged")
	case err != nil:
		c.printf("Cannot flag video: %v", err)
	default:
		c.printEvents(res.Events)
		c.printf("Successfully flagged video: %s (reason: %s)", res.Video.Title, res.Reason)
	}
}

func (c *Console) allowVideo(args []string) {
	v, err := c.session.AllowVideo(args[0])
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.println("Cannot remove flag from video: Video does not exist")
	case errors.Is(err, domain.ErrNotFlagged):
		c.println("Cannot remove flag from video: Video is not flagged")
	case err != nil:
		c.printf("Cannot remove flag from video: %v", err)
	default:
		c.printf("Successfully removed flag from video: %s", v.Title)
	}
}
