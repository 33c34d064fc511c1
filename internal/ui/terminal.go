package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/yt-tui/internal/state"
)

// ErrClosed is returned by Poll and Draw once the program has exited.
var ErrClosed = errors.New("terminal closed")

const keyBuffer = 64

// Options configures the terminal.
type Options struct {
	Theme     Theme
	OutputDir string // shown after a finished download
}

// Terminal runs a Bubble Tea program as a plain render target and key
// source. Draw and Poll are safe to call from the event loop goroutine while
// Run blocks on another.
type Terminal struct {
	program *tea.Program
	keys    chan state.Key
	done    chan struct{}
}

// NewTerminal builds a Terminal. Nothing is drawn until Run is called.
func NewTerminal(opts Options) *Terminal {
	theme := opts.Theme
	if theme.Name == "" {
		theme = GetTheme("")
	}

	t := &Terminal{
		keys: make(chan state.Key, keyBuffer),
		done: make(chan struct{}),
	}
	t.program = tea.NewProgram(newModel(theme, opts.OutputDir, t.keys), tea.WithAltScreen())
	return t
}

// Run takes over the terminal until Quit is called or the program fails.
// It must be called exactly once.
func (t *Terminal) Run() error {
	defer close(t.done)
	_, err := t.program.Run()
	return err
}

// Quit asks the program to restore the terminal and exit.
func (t *Terminal) Quit() {
	t.program.Quit()
}

// Draw hands one frame to the program.
func (t *Terminal) Draw(view state.View, snap state.Snapshot) error {
	select {
	case <-t.done:
		return ErrClosed
	default:
	}
	t.program.Send(frameMsg{view: view, snap: snap})
	return nil
}

// Poll waits up to timeout for a key press. A zero timeout only checks for
// keys already buffered.
func (t *Terminal) Poll(ctx context.Context, timeout time.Duration) (state.Key, bool, error) {
	select {
	case k := <-t.keys:
		return k, true, nil
	default:
	}

	if timeout <= 0 {
		select {
		case <-t.done:
			return state.Key{}, false, ErrClosed
		default:
			return state.Key{}, false, nil
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case k := <-t.keys:
		return k, true, nil
	case <-timer.C:
		return state.Key{}, false, nil
	case <-ctx.Done():
		return state.Key{}, false, nil
	case <-t.done:
		return state.Key{}, false, ErrClosed
	}
}
