// Package app provides the orchestration layer for the yt-tui application.
//
// # Overview
//
// This package wires together configuration, logging, the yt-dlp client,
// the event loop and the terminal. It is the composition root where all
// dependencies are initialized and connected.
//
// # Architecture
//
//  1. Load ~/.config/yt-tui/config.toml (or the -config path) and apply
//     the -output override
//  2. Point the standard logger at the configured log file
//  3. Build the yt-dlp client, the job launcher and the message channel
//  4. Build the terminal and the event loop driver around state.App
//  5. Run the event loop on a goroutine and the terminal on the caller's
//  6. Stop the terminal as soon as the loop returns
//
// # Components
//
//   - app.go: Run and the dependency graph
//   - session.go: the event loop goroutine and log file setup
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()       Read config.toml
//	       ├─────> setupLogging()      tea.LogToFile or discard
//	       ├─────> ytdlp.NewClient()   Child process adapter
//	       ├─────> task.NewLauncher()  Background jobs
//	       ├─────> loop.New()          Event loop driver
//	       ├─────> startSession()      driver.Run on a goroutine
//	       └─────> ui.Terminal.Run()   Bubble Tea program (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file unreadable or invalid
//   - Log file cannot be created
//   - The terminal fails to start, or input stops working
//
// Recoverable errors are shown on screen or logged:
//   - yt-dlp missing, failing or printing invalid metadata
//   - Download failures
//
// Interrupts and a terminal closed by the program itself count as a normal
// exit.
package app
