// Package message carries events from background jobs to the UI loop.
//
// # Overview
//
// Message is a closed set of four events:
//
//   - MetadataReady: a fetch produced a parsed VideoInfo
//   - MetadataFailed: a fetch failed; Reason is shown to the user
//   - DownloadProgress: one percent value parsed from yt-dlp output
//   - DownloadFinished: the download process ended, successfully or not
//
// # Channel
//
// Channel is the inbox between many producers (job goroutines) and one
// consumer (the loop). Producers call Send; the consumer calls Drain once per
// frame and gets everything queued so far without blocking.
//
// # Ordering
//
// Messages from one producer are drained in the order they were sent. There
// is no ordering across producers.
//
// # Shutdown
//
// Close marks the consumer as gone. Send then returns false instead of
// blocking, so a job that outlives the UI finishes quietly.
package message
