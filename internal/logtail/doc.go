// Package logtail keeps the tail of a process output stream.
//
// # Overview
//
// yt-dlp reports its failures on stderr, usually as a final "ERROR: ..." line
// after an arbitrary amount of warnings. The UI only needs the last few lines
// to explain a failure, so Buffer retains a fixed number of lines no matter
// how much the process writes.
//
// # Ring Buffer
//
// Buffer is an io.Writer suitable for exec.Cmd.Stderr. Completed lines are
// stored in a ring of maxLines slots:
//
//   - One pass over the written bytes
//   - O(maxLines) memory, not O(output size)
//   - Lines returned in chronological order
//   - '\n', "\r\n" and bare '\r' all terminate a line
//   - Blank lines are dropped
//
// A trailing fragment without a line break is kept aside and reported as the
// newest line by Lines.
//
// Example usage:
//
//	stderr := logtail.NewBuffer(8)
//	cmd.Stderr = stderr
//	if err := cmd.Run(); err != nil {
//		log.Printf("yt-dlp failed: %v (%s)", err, strings.Join(stderr.Lines(), "; "))
//	}
//
// # Thread Safety
//
// exec.Cmd copies stderr from its own goroutine, so Buffer guards its state
// with a mutex and may be read while the process is still running.
package logtail
