// Package state holds the yt-tui application state and its transition rules.
//
// # Overview
//
// App is a small state machine over four screens:
//
//	UrlInput ──submit──> Loading ──MetadataReady──> FormatSelect
//	                        │                           │
//	                 MetadataFailed                   submit
//	                        │                           ↓
//	                        └──────> Normal <──── Loading (downloading)
//	                                   │       DownloadFinished
//	                                 submit
//	                                   ↓
//	                                UrlInput
//
// Two event sources drive it:
//
//   - HandleKey: one decoded key press (Key)
//   - Apply: one message.Message from a background job
//
// A third, Tick, only advances the busy indicator frame.
//
// # Ownership
//
// App has no locks. Exactly one goroutine, the event loop, owns it for the
// life of the process. Background jobs never touch it; their results arrive
// as messages that the loop applies between frames. The renderer receives a
// Snapshot, a copy whose video info is cloned.
//
// # Side Effects
//
// HandleKey never starts work itself. When a transition needs yt-dlp it
// returns a task.Job (Fetch or Download) and the caller launches it. This
// keeps every transition a plain function of (state, event) and testable
// without processes or goroutines.
//
// # Key Rules
//
//   - KeyQuit quits from any screen; a 'q' character also quits everywhere
//     except while the URL is being edited
//   - UrlInput: characters append, pasted text (KeyText) appends in one
//     step without control characters, backspace removes the last rune,
//     submit with a blank buffer does nothing
//   - FormatSelect: up/down move the selection and stop at either end
//   - Normal: submit clears everything and returns to the URL prompt
//
// # Invariants
//
//   - On FormatSelect the selection is a valid index into the formats; a
//     metadata document without formats is reported as an error instead
//   - Progress only changes while a download is running
//
// # Views
//
// Dispatch maps each Screen to the View the renderer should draw. It is
// evaluated on every frame.
package state
