package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/yt-tui/internal/state"
)

// chromeLines is how many rows the header, footer and spacing take around
// the format list.
const chromeLines = 10

func (m model) renderHeader() string {
	styles := m.styles
	title := styles.Logo.Render("yt-tui")
	subtitle := styles.Header.Foreground(lipgloss.Color(m.theme.Muted)).Render("download videos with yt-dlp")
	header := title + subtitle
	if m.width > 0 {
		return styles.Header.Width(m.width).Render(header)
	}
	return styles.Header.Render(header)
}

func (m model) contentWidth() int {
	if m.width <= 0 {
		return 0
	}
	return maxInt(m.width-4, 10)
}

func (m model) renderURLInput() string {
	snap := m.frame.snap
	styles := m.styles

	label := styles.Text.Bold(true).Render("Enter the video link (press enter)")

	box := styles.NormalBox
	text := snap.Input
	if snap.Mode == state.ModeEditing {
		box = styles.EditingBox
		text += styles.AccentText.Render("█")
	}
	if w := m.contentWidth(); w > 0 {
		box = box.Width(w)
	}

	return lipgloss.JoinVertical(lipgloss.Left, label, box.Render(text))
}

func (m model) renderLoading() string {
	snap := m.frame.snap
	styles := m.styles
	frame := styles.AccentText.Render(spinnerFrame(snap.SpinnerPhase))

	if !snap.Downloading {
		lines := []string{
			frame + " " + styles.Text.Render("Fetching video info"),
			styles.MutedText.Render(truncateMiddle(snap.URL, maxInt(m.contentWidth(), 60))),
		}
		return styles.Panel.Render(strings.Join(lines, "\n"))
	}

	title := "video"
	if snap.Video != nil {
		title = truncate(snap.Video.Title, maxInt(m.contentWidth()-14, 20))
	}
	lines := []string{frame + " " + styles.Text.Bold(true).Render("Downloading ") + styles.Text.Render(title)}
	if f, ok := snap.Format(); ok {
		lines = append(lines, styles.MutedText.Render("format "+formatLabel(f)))
	}
	percent := snap.Progress
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	lines = append(lines, m.bar.ViewAs(percent/100)+" "+styles.Text.Render(fmt.Sprintf("%5.1f%%", snap.Progress)))
	return styles.Panel.Render(strings.Join(lines, "\n"))
}

func (m model) renderFormatSelect() string {
	snap := m.frame.snap
	styles := m.styles
	if snap.Video == nil {
		return styles.MutedText.Render("No video loaded")
	}
	info := snap.Video

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(truncate(info.Title, maxInt(m.contentWidth(), 40))))
	b.WriteString("\n")
	if facts := videoFacts(*info, m.now()); len(facts) > 0 {
		b.WriteString(styles.MutedText.Render(strings.Join(facts, " • ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.FaintText.Render("  " + formatRow("ID", "EXT", "RESOLUTION", "NOTE", "SIZE")))
	b.WriteString("\n")

	start, end := visibleRange(len(info.Formats), snap.SelectedFormat, m.height-chromeLines)
	for i := start; i < end; i++ {
		f := info.Formats[i]
		row := formatRow(f.ID, f.Ext, f.Resolution, f.Note, formatSize(f))
		if i == snap.SelectedFormat {
			b.WriteString(styles.Selected.Render("> " + row))
		} else {
			b.WriteString(styles.Text.Render("  " + row))
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d/%d formats", snap.SelectedFormat+1, len(info.Formats))))
	return b.String()
}

func (m model) renderResult() string {
	snap := m.frame.snap
	styles := m.styles
	width := maxInt(m.contentWidth(), 40)

	var lines []string
	if snap.Err != "" {
		lines = append(lines,
			styles.DangerText.Render("Error"),
			styles.Text.Width(width).Render(snap.Err),
		)
	} else {
		lines = append(lines, styles.SuccessText.Render("Download finished"))
		if snap.Video != nil {
			lines = append(lines, styles.Text.Render(truncate(snap.Video.Title, width)))
		}
		if f, ok := snap.Format(); ok {
			lines = append(lines, styles.MutedText.Render("format "+formatLabel(f)))
		}
		if m.outputDir != "" {
			lines = append(lines, styles.MutedText.Render("saved to "+truncateMiddle(m.outputDir, width)))
		}
	}
	lines = append(lines, "", styles.FaintText.Render("Press enter to download another video"))
	return styles.Panel.Render(strings.Join(lines, "\n"))
}

func formatRow(id, ext, resolution, note, size string) string {
	return padRight(truncate(id, 10), 10) + " " +
		padRight(truncate(ext, 5), 5) + " " +
		padRight(truncate(resolution, 11), 11) + " " +
		padRight(truncate(note, 18), 18) + " " +
		size
}

// visibleRange returns the window [start, end) of n rows that keeps selected
// visible when only limit rows fit. A limit below one shows everything.
func visibleRange(n, selected, limit int) (int, int) {
	if limit < 1 || n <= limit {
		return 0, n
	}
	start := 0
	if selected >= limit {
		start = selected - limit + 1
	}
	return start, start + limit
}

func spinnerFrame(phase int) string {
	frames := busy.Frames
	if len(frames) == 0 {
		return ""
	}
	if phase < 0 {
		phase = 0
	}
	return frames[phase%len(frames)]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
