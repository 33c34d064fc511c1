package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/five82/yt-tui/internal/message"
	"github.com/five82/yt-tui/internal/state"
	"github.com/five82/yt-tui/internal/task"
)

const defaultTick = 100 * time.Millisecond

// Input delivers key presses. Poll waits at most timeout for one key and
// reports false when none arrived. An error ends the loop.
type Input interface {
	Poll(ctx context.Context, timeout time.Duration) (state.Key, bool, error)
}

// Renderer draws one frame.
type Renderer interface {
	Draw(view state.View, snap state.Snapshot) error
}

// Launcher starts background jobs that report to out.
type Launcher interface {
	Launch(job task.Job, out message.Sender) string
}

// Options configure a Driver.
type Options struct {
	App      *state.App
	Inbox    *message.Channel
	Launcher Launcher
	Input    Input
	Renderer Renderer
	Tick     time.Duration // spinner interval; zero uses 100ms
}

// Driver ties state, inbox, input and renderer together.
type Driver struct {
	app      *state.App
	inbox    *message.Channel
	launcher Launcher
	input    Input
	renderer Renderer
	tick     time.Duration
}

// New validates opts and returns a Driver.
func New(opts Options) (*Driver, error) {
	switch {
	case opts.App == nil:
		return nil, fmt.Errorf("loop requires application state")
	case opts.Inbox == nil:
		return nil, fmt.Errorf("loop requires an inbox")
	case opts.Launcher == nil:
		return nil, fmt.Errorf("loop requires a launcher")
	case opts.Input == nil:
		return nil, fmt.Errorf("loop requires an input source")
	case opts.Renderer == nil:
		return nil, fmt.Errorf("loop requires a renderer")
	}
	tick := opts.Tick
	if tick <= 0 {
		tick = defaultTick
	}
	return &Driver{
		app:      opts.App,
		inbox:    opts.Inbox,
		launcher: opts.Launcher,
		input:    opts.Input,
		renderer: opts.Renderer,
		tick:     tick,
	}, nil
}

// Run loops until the user quits or ctx is cancelled. Each iteration drains
// the inbox, draws, checks for exit, waits for at most one key (never past
// the next tick) and then advances the spinner if the tick is due. The inbox
// is closed on return so jobs still running stop sending.
func (d *Driver) Run(ctx context.Context) error {
	defer d.inbox.Close()

	nextTick := time.Now().Add(d.tick)
	for {
		for _, msg := range d.inbox.Drain() {
			d.app.Apply(msg)
		}

		if err := d.renderer.Draw(state.Dispatch(d.app.Screen()), d.app.Snapshot()); err != nil {
			return fmt.Errorf("draw: %w", err)
		}

		if d.app.ShouldQuit() || ctx.Err() != nil {
			return nil
		}

		wait := time.Until(nextTick)
		if wait < 0 {
			wait = 0
		}
		key, ok, err := d.input.Poll(ctx, wait)
		if err != nil {
			return fmt.Errorf("poll input: %w", err)
		}
		if ok {
			if job := d.app.HandleKey(key); job != nil {
				d.launcher.Launch(job, d.inbox)
			}
		}

		if now := time.Now(); !now.Before(nextTick) {
			d.app.Tick()
			nextTick = nextTick.Add(d.tick)
			if nextTick.Before(now) {
				// Skip frames missed while a draw or poll overran.
				nextTick = now.Add(d.tick)
			}
		}
	}
}
