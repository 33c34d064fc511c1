// Package ui provides the terminal front end of yt-tui.
//
// # Architecture Overview
//
// The package wraps a Bubble Tea program, but unlike a typical Bubble Tea
// application the program does not own any application state. The event
// loop (package loop) owns state.App and talks to the terminal through two
// narrow methods:
//
//   - Draw: send the current view and snapshot as one frame
//   - Poll: wait a bounded time for the next decoded key
//
// Terminal implements both, so it satisfies loop.Renderer and loop.Input.
//
// # Package Structure
//
//   - terminal.go: Terminal, the bridge between the event loop and tea.Program
//   - model.go: the tea.Model that stores the last frame and forwards keys
//   - views.go: one render function per state.View, built with Lipgloss
//   - keys.go: key bindings (bubbles/key) and key decoding
//   - theme.go: color themes (Nightfox, Kanagawa, Slate) and Lipgloss styles
//   - strings.go: truncation, clock and size formatting helpers
//
// # Views
//
//   - URL input: a bordered prompt; the border is red while editing and
//     green otherwise
//   - Loading: a spinner while metadata is fetched, or a progress bar with
//     the percentage while a download runs
//   - Format select: title, uploader, duration and upload age followed by a
//     scrolling list of formats with their estimated sizes
//   - Result: the error that ended the session, or a download summary
//
// # Key Decoding
//
// ctrl+c and esc always quit, enter submits, backspace deletes. Arrow keys
// and j/k move the selection, except while the URL is being edited, where
// every printable rune (including pasted text) is typed. Whether the prompt
// is being edited is taken from the last frame the loop drew.
//
// # Event Flow
//
//  1. Run starts the program and blocks until Quit or a fatal error
//  2. The event loop calls Draw once per iteration; the frame is delivered
//     to the model with tea.Program.Send and rendered on the next repaint
//  3. Key messages are decoded in Update and pushed to a buffered channel
//  4. Poll reads from that channel, never waiting past its timeout
//  5. Once Run returns, Draw and Poll report ErrClosed
package ui
