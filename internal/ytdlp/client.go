package ytdlp

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/five82/yt-tui/internal/logtail"
)

const (
	defaultBinary   = "yt-dlp"
	defaultTemplate = "%(title)s [%(id)s].%(ext)s"
	stderrTailLines = 8
)

// Options configure a Client.
type Options struct {
	Binary         string // empty uses "yt-dlp" from PATH
	OutputDir      string // empty lets yt-dlp use the working directory
	OutputTemplate string // empty uses "%(title)s [%(id)s].%(ext)s"
}

// Client runs yt-dlp as a child process.
type Client struct {
	binary    string
	outputDir string
	template  string
}

// NewClient builds a Client, filling blank options with defaults.
func NewClient(opts Options) *Client {
	binary := strings.TrimSpace(opts.Binary)
	if binary == "" {
		binary = defaultBinary
	}
	template := strings.TrimSpace(opts.OutputTemplate)
	if template == "" {
		template = defaultTemplate
	}
	return &Client{
		binary:    binary,
		outputDir: strings.TrimSpace(opts.OutputDir),
		template:  template,
	}
}

// FetchInfo asks yt-dlp for the metadata document of url.
func (c *Client) FetchInfo(ctx context.Context, url string) (VideoInfo, error) {
	if c == nil {
		return VideoInfo{}, fmt.Errorf("client is nil")
	}
	var stdout bytes.Buffer
	stderr := logtail.NewBuffer(stderrTailLines)

	cmd := exec.CommandContext(ctx, c.binary, c.infoArgs(url)...)
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return VideoInfo{}, fmt.Errorf("%w: %w", ErrSpawn, err)
	}
	if err := cmd.Wait(); err != nil {
		return VideoInfo{}, exitError(err, stderr.Lines())
	}
	return DecodeInfo(stdout.Bytes())
}

// Download runs yt-dlp for one format of url and calls onLine for every line
// it prints to stdout. It returns once the process has exited.
func (c *Client) Download(ctx context.Context, url, formatID string, onLine func(string)) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	stderr := logtail.NewBuffer(stderrTailLines)

	cmd := exec.CommandContext(ctx, c.binary, c.downloadArgs(url, formatID)...)
	cmd.Stderr = stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSpawn, err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %w", ErrSpawn, err)
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(scanLines)
	for scanner.Scan() {
		if onLine != nil {
			onLine(scanner.Text())
		}
	}
	scanErr := scanner.Err()
	if scanErr != nil {
		// Keep the pipe drained so the process can still exit.
		_, _ = io.Copy(io.Discard, stdout)
	}

	if err := cmd.Wait(); err != nil {
		return exitError(err, stderr.Lines())
	}
	if scanErr != nil {
		return fmt.Errorf("read output: %w", scanErr)
	}
	return nil
}

func (c *Client) infoArgs(url string) []string {
	return []string{"--dump-json", "--no-playlist", "--no-warnings", "--", url}
}

func (c *Client) downloadArgs(url, formatID string) []string {
	args := []string{"--newline", "--progress", "--no-playlist", "-f", formatID}
	if c.outputDir != "" {
		args = append(args, "-P", c.outputDir)
	}
	return append(args, "-o", c.template, "--", url)
}

// scanLines is bufio.ScanLines that also treats a bare '\r' as a line break,
// which is how progress updates are redrawn in place.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if !atEOF {
			// A '\n' may follow in the next read.
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
