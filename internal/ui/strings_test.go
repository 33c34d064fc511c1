package ui

import (
	"testing"
	"time"

	"github.com/five82/yt-tui/internal/ytdlp"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"  padded  ", 10, "padded"},
		{"abcdefghij", 8, "abcde..."},
		{"abcdef", 3, "abc"},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", 21, "https://ww…Qw4w9WgXcQ"},
		{"short", 21, "short"},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := truncateMiddle(tt.in, tt.limit); got != tt.want {
			t.Fatalf("truncateMiddle(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{187 * time.Second, "3:07"},
		{3661 * time.Second, "1:01:01"},
		{1500 * time.Millisecond, "0:02"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.in); got != tt.want {
			t.Fatalf("formatClock(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatSize(t *testing.T) {
	exact := 2_000_000.0
	approx := 3_000_000.0
	tests := []struct {
		name string
		f    ytdlp.Format
		want string
	}{
		{"exact", ytdlp.Format{FileSize: &exact}, "2.0 MB"},
		{"approx", ytdlp.Format{FileSizeApprox: &approx}, "~3.0 MB"},
		{"unknown", ytdlp.Format{}, "?"},
	}
	for _, tt := range tests {
		if got := formatSize(tt.f); got != tt.want {
			t.Fatalf("%s: formatSize = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFormatLabel(t *testing.T) {
	if got := formatLabel(ytdlp.Format{ID: "251", Ext: "webm", Note: "medium"}); got != "251 (webm, medium)" {
		t.Fatalf("formatLabel = %q", got)
	}
	if got := formatLabel(ytdlp.Format{ID: "sb0"}); got != "sb0" {
		t.Fatalf("formatLabel bare = %q, want sb0", got)
	}
}
