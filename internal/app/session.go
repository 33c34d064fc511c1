package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// runner is the event loop as seen by startSession.
type runner interface {
	Run(ctx context.Context) error
}

// quitter is the terminal as seen by startSession.
type quitter interface {
	Quit()
}

// startSession runs the event loop on its own goroutine and stops the
// terminal when the loop returns. The loop's error is delivered on the
// returned channel. It returns immediately.
func startSession(ctx context.Context, r runner, term quitter) <-chan error {
	done := make(chan error, 1)
	go func() {
		err := r.Run(ctx)
		if err != nil {
			log.Printf("event loop stopped: %v", err)
		}
		term.Quit()
		done <- err
	}()
	return done
}

// setupLogging sends the standard logger to path, or discards it when path
// is empty. The terminal belongs to the UI, so nothing may go to stderr.
func setupLogging(path string) (func(), error) {
	path = strings.TrimSpace(path)
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := tea.LogToFile(path, "yt-tui")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = file.Close() }, nil
}
