// Package ytdlp runs the yt-dlp command-line tool and interprets its output.
//
// # Overview
//
// yt-dlp does all of the network work: resolving a page URL, listing the
// available formats and downloading one of them. This package only builds
// its command lines, decodes its metadata document and reads its progress
// output. It knows nothing about the UI.
//
// # Components
//
//   - client.go: Client with FetchInfo and Download
//   - types.go: VideoInfo and Format, decoded from --dump-json
//   - progress.go: ParseProgress for download output lines
//   - errors.go: failure classes
//
// # Client Usage
//
//	client := ytdlp.NewClient(ytdlp.Options{OutputDir: "~/Downloads"})
//
//	info, err := client.FetchInfo(ctx, url)
//	if err != nil {
//		log.Printf("metadata fetch failed: %v", err)
//	}
//
//	err = client.Download(ctx, url, info.Formats[0].ID, func(line string) {
//		if pct, ok := ytdlp.ParseProgress(line); ok {
//			log.Printf("%.1f%%", pct)
//		}
//	})
//
// Download is invoked with --newline so every progress update arrives as its
// own line; a bare '\r' is still accepted as a line break.
//
// # Error Handling
//
// Every failure wraps one of three sentinel errors:
//
//   - ErrSpawn: the executable is missing or could not be started
//   - ErrExit: yt-dlp exited with a non-zero status; the message carries the
//     last "ERROR:" line it wrote to stderr
//   - ErrParse: the metadata document was empty, not JSON, or had no title
//
// Callers check the class with errors.Is and show err.Error() to the user.
package ytdlp
