// Package task runs yt-dlp work off the UI loop and reports back through
// message passing only.
//
// # Jobs
//
// The state machine returns a Job when a transition needs yt-dlp:
//
//   - Fetch: read metadata and send MetadataReady or MetadataFailed
//   - Download: run the download, send DownloadProgress for every progress
//     line and DownloadFinished when the process exits
//
// # Launcher
//
// Launcher starts each job on its own goroutine and tags its log lines with
// a random job ID. Jobs never touch application state; a Runner does the
// process work and results travel through a message.Sender.
//
// Jobs are not cancelled when the UI exits. A job whose consumer is gone
// drops its messages and ends when its process does.
//
// Example usage:
//
//	launcher := task.NewLauncher(ctx, ytdlp.NewClient(ytdlp.Options{}))
//	id := launcher.Launch(task.Fetch{URL: url}, inbox)
//	log.Printf("started job %s", id)
package task
