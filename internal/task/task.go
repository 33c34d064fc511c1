package task

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/five82/yt-tui/internal/message"
	"github.com/five82/yt-tui/internal/ytdlp"
)

// Job describes one unit of background work: Fetch or Download.
type Job interface {
	isJob()
}

// Fetch asks for the metadata of URL.
type Fetch struct {
	URL string
}

// Download asks for one format of the video at URL.
type Download struct {
	URL    string
	Format ytdlp.Format
}

func (Fetch) isJob()    {}
func (Download) isJob() {}

// Runner performs the external work. *ytdlp.Client implements it.
type Runner interface {
	FetchInfo(ctx context.Context, url string) (ytdlp.VideoInfo, error)
	Download(ctx context.Context, url, formatID string, onLine func(string)) error
}

var _ Runner = (*ytdlp.Client)(nil)

// Launcher starts jobs on their own goroutines.
type Launcher struct {
	ctx    context.Context
	runner Runner
}

// NewLauncher returns a Launcher using runner. Jobs inherit ctx's values but
// not its cancellation: once started, a job runs until its process exits.
func NewLauncher(ctx context.Context, runner Runner) *Launcher {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Launcher{ctx: context.WithoutCancel(ctx), runner: runner}
}

// Launch starts job and returns immediately. Results are delivered to out.
// It returns the job's ID.
func (l *Launcher) Launch(job Job, out message.Sender) string {
	id := uuid.NewString()
	switch j := job.(type) {
	case Fetch:
		go l.fetch(id, j, out)
	case Download:
		go l.download(id, j, out)
	default:
		log.Printf("job %s: unknown job type %T", id, job)
	}
	return id
}

func (l *Launcher) fetch(id string, job Fetch, out message.Sender) {
	log.Printf("job %s: fetching metadata for %s", id, job.URL)
	info, err := l.runner.FetchInfo(l.ctx, job.URL)
	if err != nil {
		log.Printf("job %s: metadata fetch failed: %v", id, err)
		send(id, out, message.MetadataFailed{Reason: describe(err)})
		return
	}
	log.Printf("job %s: metadata ready: %q, %d formats", id, info.Title, len(info.Formats))
	send(id, out, message.MetadataReady{Info: info})
}

func (l *Launcher) download(id string, job Download, out message.Sender) {
	log.Printf("job %s: downloading format %s of %s", id, job.Format.ID, job.URL)
	err := l.runner.Download(l.ctx, job.URL, job.Format.ID, func(line string) {
		if pct, ok := ytdlp.ParseProgress(line); ok {
			send(id, out, message.DownloadProgress{Percent: pct})
		}
	})
	if err != nil {
		// Download failures end like successes; only the log records them.
		log.Printf("job %s: download failed: %v", id, err)
	} else {
		log.Printf("job %s: download complete", id)
	}
	send(id, out, message.DownloadFinished{})
}

func send(id string, out message.Sender, msg message.Message) {
	if out.Send(msg) {
		return
	}
	if _, ok := msg.(message.DownloadProgress); !ok {
		log.Printf("job %s: consumer gone, dropping %T", id, msg)
	}
}

func describe(err error) string {
	if errors.Is(err, ytdlp.ErrSpawn) {
		return err.Error() + " (is yt-dlp installed and on PATH?)"
	}
	return err.Error()
}
