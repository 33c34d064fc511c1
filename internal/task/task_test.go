package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/five82/yt-tui/internal/message"
	"github.com/five82/yt-tui/internal/ytdlp"
)

type fakeRunner struct {
	info     ytdlp.VideoInfo
	fetchErr error
	lines    []string
	dlErr    error

	mu       sync.Mutex
	gotURL   string
	gotFmt   string
	ctxAlive bool
}

func (f *fakeRunner) FetchInfo(ctx context.Context, url string) (ytdlp.VideoInfo, error) {
	f.mu.Lock()
	f.gotURL = url
	f.ctxAlive = ctx.Err() == nil
	f.mu.Unlock()
	return f.info, f.fetchErr
}

func (f *fakeRunner) Download(ctx context.Context, url, formatID string, onLine func(string)) error {
	f.mu.Lock()
	f.gotURL = url
	f.gotFmt = formatID
	f.mu.Unlock()
	for _, line := range f.lines {
		onLine(line)
	}
	return f.dlErr
}

// collect drains c until want messages arrived or the deadline passes.
func collect(t *testing.T, c *message.Channel, want int) []message.Message {
	t.Helper()
	var got []message.Message
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < want && time.Now().Before(deadline) {
		got = append(got, c.Drain()...)
		time.Sleep(time.Millisecond)
	}
	if len(got) < want {
		t.Fatalf("received %d messages, want %d: %#v", len(got), want, got)
	}
	// Nothing extra should trail behind.
	time.Sleep(10 * time.Millisecond)
	if extra := c.Drain(); len(extra) > 0 {
		t.Fatalf("unexpected extra messages: %#v", extra)
	}
	return got
}

func TestLauncher_FetchSuccess(t *testing.T) {
	runner := &fakeRunner{info: ytdlp.VideoInfo{Title: "Clip", Formats: []ytdlp.Format{{ID: "18"}}}}
	inbox := message.NewChannel(4)

	id := NewLauncher(context.Background(), runner).Launch(Fetch{URL: "https://example.com/v"}, inbox)
	if id == "" {
		t.Fatal("Launch returned empty job id")
	}

	got := collect(t, inbox, 1)
	ready, ok := got[0].(message.MetadataReady)
	if !ok {
		t.Fatalf("message = %#v, want MetadataReady", got[0])
	}
	if ready.Info.Title != "Clip" {
		t.Fatalf("Title = %q, want Clip", ready.Info.Title)
	}
	if runner.gotURL != "https://example.com/v" {
		t.Fatalf("runner url = %q", runner.gotURL)
	}
}

func TestLauncher_FetchFailure(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		contains string
	}{
		{"spawn", fmt.Errorf("%w: exec: not found", ytdlp.ErrSpawn), "installed"},
		{"exit", fmt.Errorf("%w: exit status 1: ERROR: Unsupported URL", ytdlp.ErrExit), "Unsupported URL"},
		{"parse", fmt.Errorf("%w: empty output", ytdlp.ErrParse), "empty output"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inbox := message.NewChannel(4)
			NewLauncher(context.Background(), &fakeRunner{fetchErr: tc.err}).Launch(Fetch{URL: "u"}, inbox)

			got := collect(t, inbox, 1)
			failed, ok := got[0].(message.MetadataFailed)
			if !ok {
				t.Fatalf("message = %#v, want MetadataFailed", got[0])
			}
			if !strings.Contains(failed.Reason, tc.contains) {
				t.Fatalf("Reason = %q, want it to contain %q", failed.Reason, tc.contains)
			}
		})
	}
}

func TestLauncher_DownloadProgressThenFinished(t *testing.T) {
	runner := &fakeRunner{lines: []string{
		"[youtube] abc: Downloading webpage",
		"[download]   0.0% of 1.00MiB",
		"[download]  42.0% of 1.00MiB",
		"[download] 100% of 1.00MiB",
	}}
	inbox := message.NewChannel(8)

	NewLauncher(context.Background(), runner).Launch(Download{URL: "u", Format: ytdlp.Format{ID: "22"}}, inbox)

	got := collect(t, inbox, 4)
	want := []message.Message{
		message.DownloadProgress{Percent: 0},
		message.DownloadProgress{Percent: 42},
		message.DownloadProgress{Percent: 100},
		message.DownloadFinished{},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("message %d = %#v, want %#v", i, got[i], want[i])
		}
	}
	if runner.gotFmt != "22" {
		t.Fatalf("format = %q, want 22", runner.gotFmt)
	}
}

func TestLauncher_DownloadFailureStillFinishesOnce(t *testing.T) {
	runner := &fakeRunner{
		lines: []string{"[download]  10.0%"},
		dlErr: errors.New("yt-dlp failed: exit status 1"),
	}
	inbox := message.NewChannel(8)

	NewLauncher(context.Background(), runner).Launch(Download{URL: "u", Format: ytdlp.Format{ID: "1"}}, inbox)

	got := collect(t, inbox, 2)
	if got[0] != (message.DownloadProgress{Percent: 10}) {
		t.Fatalf("message 0 = %#v, want progress 10", got[0])
	}
	if got[1] != (message.DownloadFinished{}) {
		t.Fatalf("message 1 = %#v, want DownloadFinished", got[1])
	}
}

func TestLauncher_JobsIgnoreCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &fakeRunner{info: ytdlp.VideoInfo{Title: "t"}}
	inbox := message.NewChannel(1)
	NewLauncher(ctx, runner).Launch(Fetch{URL: "u"}, inbox)

	collect(t, inbox, 1)
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if !runner.ctxAlive {
		t.Fatal("job context was cancelled, want it detached from the caller")
	}
}

func TestLauncher_ClosedInboxEndsQuietly(t *testing.T) {
	inbox := message.NewChannel(1)
	inbox.Close()

	runner := &fakeRunner{lines: []string{"1%", "2%", "3%"}}
	done := make(chan struct{})
	go func() {
		l := NewLauncher(context.Background(), runner)
		l.download("test", Download{URL: "u", Format: ytdlp.Format{ID: "1"}}, inbox)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("download blocked on a closed inbox")
	}
}
