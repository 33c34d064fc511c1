package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/five82/yt-tui/internal/ytdlp"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle shortens a string by removing characters from the middle,
// preserving both the beginning and end. URLs keep their video id visible.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	ellipsis := []rune("…")
	if limit <= 3 {
		return string(runes[:limit])
	}
	keep := limit - len(ellipsis)
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + string(ellipsis) + string(runes[len(runes)-suffix:])
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}

// formatClock renders a duration as h:mm:ss or m:ss.
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second) / time.Second)
	h, m, s := total/3600, (total/60)%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// formatSize renders a format's size, prefixing estimates with '~'.
func formatSize(f ytdlp.Format) string {
	size, approx, ok := f.Size()
	if !ok {
		return "?"
	}
	text := humanize.Bytes(size)
	if approx {
		return "~" + text
	}
	return text
}

// formatLabel is the one-line description of f used in lists and headers.
func formatLabel(f ytdlp.Format) string {
	parts := []string{}
	for _, part := range []string{f.Ext, f.Resolution, f.Note} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return f.ID
	}
	return f.ID + " (" + strings.Join(parts, ", ") + ")"
}

// videoFacts lists the known metadata of info for the header line under the
// title. Missing fields are left out.
func videoFacts(info ytdlp.VideoInfo, now time.Time) []string {
	var facts []string
	if uploader := strings.TrimSpace(info.Uploader); uploader != "" {
		facts = append(facts, uploader)
	}
	if length, ok := info.Length(); ok {
		facts = append(facts, formatClock(length))
	}
	if uploaded, ok := info.Uploaded(); ok {
		facts = append(facts, "uploaded "+humanize.RelTime(uploaded, now, "ago", "from now"))
	}
	return facts
}
