package source

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mmcdole/reel/internal/domain"
)

//go:embed videos.txt
var builtinCatalog string

// BuiltinKey identifies the embedded catalog
const BuiltinKey = "builtin:videos.txt"

// FileSource reads a catalog from a text file with one record per line:
//
//	title | id | tag1, tag2
//
// The tags segment is optional.
type FileSource struct {
	path   string
	logger *slog.Logger
}

// NewFileSource creates a source for the catalog file at path
func NewFileSource(path string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSource{path: path, logger: logger}
}

func (s *FileSource) Key() string { return s.path }

// Version returns the file's modification time in nanoseconds
func (s *FileSource) Version() (int64, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return 0, fmt.Errorf("stat catalog: %w", err)
	}
	return info.ModTime().UnixNano(), nil
}

func (s *FileSource) Videos() ([]domain.Video, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f, s.logger)
}

// BuiltinSource serves the catalog compiled into the binary
type BuiltinSource struct {
	logger *slog.Logger
}

// NewBuiltinSource creates a source for the embedded catalog
func NewBuiltinSource(logger *slog.Logger) *BuiltinSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &BuiltinSource{logger: logger}
}

func (s *BuiltinSource) Key() string { return BuiltinKey }

// Version is always 0: the embedded catalog is parsed on every run
func (s *BuiltinSource) Version() (int64, error) { return 0, nil }

func (s *BuiltinSource) Videos() ([]domain.Video, error) {
	return Parse(strings.NewReader(builtinCatalog), s.logger)
}

// New picks the file source for a non-empty path, the builtin catalog otherwise
func New(path string, logger *slog.Logger) domain.CatalogSource {
	if path == "" {
		return NewBuiltinSource(logger)
	}
	return NewFileSource(path, logger)
}

// Parse reads catalog records from r. Blank lines are ignored; lines without
// both a title and an id are skipped with a warning.
func Parse(r io.Reader, logger *slog.Logger) ([]domain.Video, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var videos []domain.Video
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		video, ok := parseRecord(line)
		if !ok {
			logger.Warn("skipping malformed catalog record", "line", lineNum)
			continue
		}
		videos = append(videos, video)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return videos, nil
}

func parseRecord(line string) (domain.Video, bool) {
	fields := strings.Split(line, "|")
	if len(fields) < 2 {
		return domain.Video{}, false
	}

	title := strings.TrimSpace(fields[0])
	id := strings.TrimSpace(fields[1])
	if id == "" {
		return domain.Video{}, false
	}

	tags := []string{}
	if len(fields) > 2 {
		for _, tag := range strings.Split(fields[2], ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	return domain.Video{ID: id, Title: title, Tags: tags}, true
}
