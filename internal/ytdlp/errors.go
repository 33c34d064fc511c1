package ytdlp

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Failure classes reported by Client. Use errors.Is to tell them apart.
var (
	// ErrSpawn means the yt-dlp process could not be started.
	ErrSpawn = errors.New("start yt-dlp")
	// ErrExit means yt-dlp ran but did not exit cleanly.
	ErrExit = errors.New("yt-dlp failed")
	// ErrParse means the metadata document could not be decoded.
	ErrParse = errors.New("parse metadata")
)

// exitError classifies a Wait error and attaches the most useful stderr line.
func exitError(err error, stderr []string) error {
	detail := err.Error()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		detail = fmt.Sprintf("exit status %d", exitErr.ExitCode())
	}
	if line := reportedError(stderr); line != "" {
		return fmt.Errorf("%w: %s: %s", ErrExit, detail, line)
	}
	return fmt.Errorf("%w: %s", ErrExit, detail)
}

// reportedError prefers the last "ERROR:" line yt-dlp printed and falls back
// to the last line of output.
func reportedError(lines []string) string {
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.HasPrefix(lines[i], "ERROR:") {
			return lines[i]
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}
