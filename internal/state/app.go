package state

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/five82/yt-tui/internal/message"
	"github.com/five82/yt-tui/internal/task"
	"github.com/five82/yt-tui/internal/ytdlp"
)

// Screen selects the view and the active key bindings.
type Screen int

const (
	ScreenURLInput Screen = iota
	ScreenLoading
	ScreenFormatSelect
	ScreenNormal
)

func (s Screen) String() string {
	switch s {
	case ScreenURLInput:
		return "UrlInput"
	case ScreenLoading:
		return "Loading"
	case ScreenFormatSelect:
		return "FormatSelect"
	case ScreenNormal:
		return "Normal"
	default:
		return "Unknown"
	}
}

// InputMode controls whether character keys edit the URL buffer.
type InputMode int

const (
	ModeEditing InputMode = iota
	ModeNormal
)

// App is the application state. It is owned by the event loop and must not
// be shared with other goroutines; hand out Snapshots instead.
type App struct {
	shouldQuit    bool
	input         string
	mode          InputMode
	screen        Screen
	url           string
	video         *ytdlp.VideoInfo
	selected      int
	downloading   bool
	progress      float64
	spinnerPhase  int
	spinnerFrames int
	err           string
}

// New returns the start state: an empty URL prompt in editing mode.
// spinnerFrames is the size of the busy indicator's frame set.
func New(spinnerFrames int) *App {
	if spinnerFrames <= 0 {
		spinnerFrames = 1
	}
	return &App{
		mode:          ModeEditing,
		screen:        ScreenURLInput,
		spinnerFrames: spinnerFrames,
	}
}

// ShouldQuit reports whether the user asked to exit.
func (a *App) ShouldQuit() bool { return a.shouldQuit }

// Screen returns the current screen.
func (a *App) Screen() Screen { return a.screen }

// HandleKey applies one key press. When the transition needs background
// work the job is returned for the caller to launch; otherwise nil.
func (a *App) HandleKey(k Key) task.Job {
	if k.Kind == KeyQuit || (k.Kind == KeyChar && k.Rune == 'q' && !a.editing()) {
		a.shouldQuit = true
		return nil
	}

	switch a.screen {
	case ScreenURLInput:
		return a.handleURLKey(k)
	case ScreenFormatSelect:
		return a.handleFormatKey(k)
	case ScreenNormal:
		a.handleResultKey(k)
	}
	return nil
}

func (a *App) editing() bool {
	return a.screen == ScreenURLInput && a.mode == ModeEditing
}

func (a *App) handleURLKey(k Key) task.Job {
	if a.mode != ModeEditing {
		return nil
	}
	switch k.Kind {
	case KeyChar:
		a.input += string(k.Rune)
	case KeyText:
		a.input += printable(k.Text)
	case KeyBackspace:
		if a.input != "" {
			_, size := utf8.DecodeLastRuneInString(a.input)
			a.input = a.input[:len(a.input)-size]
		}
	case KeySubmit:
		url := strings.TrimSpace(a.input)
		if url == "" {
			return nil
		}
		a.url = url
		a.mode = ModeNormal
		a.screen = ScreenLoading
		a.err = ""
		return task.Fetch{URL: url}
	}
	return nil
}

// printable drops control characters such as the line breaks a paste may
// carry.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

func (a *App) handleFormatKey(k Key) task.Job {
	if a.video == nil || len(a.video.Formats) == 0 {
		return nil
	}
	last := len(a.video.Formats) - 1
	switch k.Kind {
	case KeyUp:
		if a.selected > 0 {
			a.selected--
		}
	case KeyDown:
		if a.selected < last {
			a.selected++
		}
	case KeySubmit:
		a.screen = ScreenLoading
		a.downloading = true
		a.progress = 0
		return task.Download{URL: a.url, Format: a.video.Formats[a.selected]}
	}
	return nil
}

// handleResultKey starts over from an empty URL prompt on submit.
func (a *App) handleResultKey(k Key) {
	if k.Kind != KeySubmit {
		return
	}
	a.input = ""
	a.url = ""
	a.mode = ModeEditing
	a.screen = ScreenURLInput
	a.video = nil
	a.selected = 0
	a.progress = 0
	a.err = ""
}

// Apply folds one background message into the state.
func (a *App) Apply(msg message.Message) {
	switch m := msg.(type) {
	case message.MetadataReady:
		info := m.Info
		a.video = &info
		a.selected = 0
		if len(info.Formats) == 0 {
			a.screen = ScreenNormal
			a.err = "no downloadable formats for " + info.Title
			return
		}
		a.screen = ScreenFormatSelect
	case message.MetadataFailed:
		a.screen = ScreenNormal
		a.err = m.Reason
	case message.DownloadProgress:
		if a.downloading {
			a.progress = m.Percent
		}
	case message.DownloadFinished:
		a.downloading = false
		a.screen = ScreenNormal
	}
}

// Tick advances the busy indicator by one frame.
func (a *App) Tick() {
	a.spinnerPhase = (a.spinnerPhase + 1) % a.spinnerFrames
}

// Snapshot is a read-only copy of App for rendering.
type Snapshot struct {
	ShouldQuit     bool
	Input          string
	Mode           InputMode
	Screen         Screen
	URL            string
	Video          *ytdlp.VideoInfo
	SelectedFormat int
	Downloading    bool
	Progress       float64
	SpinnerPhase   int
	Err            string
}

// Snapshot copies the state. The video info is cloned so the copy never
// aliases loop-owned memory.
func (a *App) Snapshot() Snapshot {
	snap := Snapshot{
		ShouldQuit:     a.shouldQuit,
		Input:          a.input,
		Mode:           a.mode,
		Screen:         a.screen,
		URL:            a.url,
		SelectedFormat: a.selected,
		Downloading:    a.downloading,
		Progress:       a.progress,
		SpinnerPhase:   a.spinnerPhase,
		Err:            a.err,
	}
	if a.video != nil {
		info := a.video.Clone()
		snap.Video = &info
	}
	return snap
}

// Format returns the highlighted format, if any.
func (s Snapshot) Format() (ytdlp.Format, bool) {
	if s.Video == nil || s.SelectedFormat < 0 || s.SelectedFormat >= len(s.Video.Formats) {
		return ytdlp.Format{}, false
	}
	return s.Video.Formats[s.SelectedFormat], true
}
