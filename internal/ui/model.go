package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/yt-tui/internal/state"
)

// busy is the indicator shown while yt-dlp is working. The event loop owns
// the frame index; the model only looks frames up.
var busy = spinner.Dot

// SpinnerFrames is the number of frames in the busy indicator.
func SpinnerFrames() int { return len(busy.Frames) }

// SpinnerInterval is the frame interval the busy indicator was drawn for.
func SpinnerInterval() time.Duration { return busy.FPS }

// frameMsg carries one frame from the event loop into the program.
type frameMsg struct {
	view state.View
	snap state.Snapshot
}

// model is the Bubble Tea side of Terminal. It renders whatever frame the
// event loop sent last and forwards decoded keys; it never changes
// application state.
type model struct {
	theme     Theme
	styles    Styles
	keys      keyMap
	help      help.Model
	bar       progress.Model
	outputDir string
	out       chan<- state.Key
	now       func() time.Time

	frame    frameMsg
	hasFrame bool
	width    int
	height   int
}

func newModel(theme Theme, outputDir string, out chan<- state.Key) model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint))

	bar := progress.New(
		progress.WithGradient(theme.Accent, theme.Success),
		progress.WithoutPercentage(),
	)
	bar.Width = defaultBarWidth

	return model{
		theme:     theme,
		styles:    theme.Styles(),
		keys:      DefaultKeyMap(),
		help:      h,
		bar:       bar,
		outputDir: outputDir,
		out:       out,
		now:       time.Now,
	}
}

const (
	defaultBarWidth = 40
	maxBarWidth     = 80
)

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bar.Width = clampInt(msg.Width-12, 10, maxBarWidth)
		return m, nil

	case frameMsg:
		m.frame = msg
		m.hasFrame = true
		return m, nil

	case tea.KeyMsg:
		for _, k := range m.keys.decode(msg, m.editing()) {
			m.forward(k)
		}
		return m, nil
	}
	return m, nil
}

// editing reports whether the last drawn frame was the URL prompt in editing
// mode. Before the first frame this matches the start state.
func (m model) editing() bool {
	return m.frame.view == state.ViewURLInput && m.frame.snap.Mode == state.ModeEditing
}

func (m model) forward(k state.Key) {
	select {
	case m.out <- k:
	default:
		log.Printf("ui: key buffer full, dropping %s key %q", k.Kind, keyLabel(k))
	}
}

// keyLabel is the typed text of k, if any, for log lines.
func keyLabel(k state.Key) string {
	switch k.Kind {
	case state.KeyChar:
		return string(k.Rune)
	case state.KeyText:
		return k.Text
	}
	return ""
}

// View implements tea.Model.
func (m model) View() string {
	if !m.hasFrame {
		return "Loading..."
	}

	var body string
	switch m.frame.view {
	case state.ViewLoading:
		body = m.renderLoading()
	case state.ViewFormatSelect:
		body = m.renderFormatSelect()
	case state.ViewResult:
		body = m.renderResult()
	default:
		body = m.renderURLInput()
	}

	footer := m.styles.Footer.Render(m.help.ShortHelpView(m.keys.helpFor(m.frame.view)))
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), "", body, "", footer)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
