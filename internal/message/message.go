package message

import "github.com/five82/yt-tui/internal/ytdlp"

// Message is an event produced by a background job. The set of
// implementations is closed; consumers switch on the concrete type.
type Message interface {
	isMessage()
}

// MetadataReady reports a successful metadata fetch.
type MetadataReady struct {
	Info ytdlp.VideoInfo
}

// MetadataFailed reports a failed metadata fetch with a readable cause.
type MetadataFailed struct {
	Reason string
}

// DownloadProgress reports the completion percentage of the running download.
type DownloadProgress struct {
	Percent float64
}

// DownloadFinished is sent once when the download process has exited,
// whatever its outcome.
type DownloadFinished struct{}

func (MetadataReady) isMessage()    {}
func (MetadataFailed) isMessage()   {}
func (DownloadProgress) isMessage() {}
func (DownloadFinished) isMessage() {}
