package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/reel/internal/service"
)

func init() {
	cobra.EnableCaseInsensitive = true
}

// Console is a line-oriented front end over a Session. Each input line is one
// command; search commands read one extra line as the play-by-number answer.
type Console struct {
	session     *service.Session
	in          *bufio.Scanner
	out         io.Writer
	prompt      string
	interactive bool
	styles      styles
	logger      *slog.Logger

	root     *cobra.Command
	commands []*cobra.Command
	done     bool
}

// Option configures a Console
type Option func(*Console)

// WithPrompt sets the prompt shown before each command on a terminal
func WithPrompt(prompt string) Option {
	return func(c *Console) { c.prompt = prompt }
}

// WithLogger sets the console logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Console) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewConsole creates a console reading commands from in and writing to out
func NewConsole(session *service.Session, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		session:     session,
		in:          bufio.NewScanner(in),
		out:         out,
		prompt:      "> ",
		interactive: isTerminal(in),
		styles:      newStyles(out),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.root = c.buildRoot()
	return c
}

// isTerminal reports whether r is a terminal; prompts are only shown there
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run executes commands until EXIT, end of input or ctx is cancelled.
// End of input is not an error.
func (c *Console) Run(ctx context.Context) error {
	c.println("Hello and welcome to Reel, what would you like to do?")
	c.println("Enter HELP for list of available commands or EXIT to terminate.")

	for !c.done {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.interactive {
			io.WriteString(c.out, c.prompt)
		}

		line, ok := c.readLine()
		if !ok {
			return c.in.Err()
		}
		c.Execute(ctx, line)
	}
	return nil
}

// Execute runs a single command line
func (c *Console) Execute(ctx context.Context, line string) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return
	}
	c.logger.Debug("command", "name", strings.ToUpper(args[0]), "args", len(args)-1)

	c.root.SetArgs(args)
	if err := c.root.ExecuteContext(ctx); err != nil {
		var usage *usageError
		if errors.As(err, &usage) {
			c.println(usage.hint)
			return
		}
		c.logger.Debug("invalid command", "input", args[0], "error", err)
		c.println(invalidCommandMsg)
		c.suggest(args[0])
	}
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// readSelection reads the play-by-number answer. Anything that is not an
// integer, including end of input, counts as no selection.
func (c *Console) readSelection() (int, bool) {
	line, ok := c.readLine()
	if !ok {
		return 0, false
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	return n, true
}

// suggest prints the closest command name for an unknown command
func (c *Console) suggest(input string) {
	names := make([]string, len(c.commands))
	for i, cmd := range c.commands {
		names[i] = cmd.Name()
	}
	matches := fuzzy.Find(strings.ToUpper(input), names)
	if len(matches) > 0 {
		c.printf("Did you mean %s?", matches[0].Str)
	}
}
