package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/yt-tui/internal/state"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	Quit      key.Binding
	QuitChar  key.Binding
	Submit    key.Binding
	Backspace key.Binding
	Up        key.Binding
	Down      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		// 'q' reaches the state machine as a character; it only appears
		// here so the help line can show it.
		QuitChar: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

// helpFor returns the bindings worth showing on view.
func (k keyMap) helpFor(view state.View) []key.Binding {
	switch view {
	case state.ViewURLInput:
		return []key.Binding{k.Submit, k.Backspace, k.Quit}
	case state.ViewFormatSelect:
		return []key.Binding{k.Up, k.Down, k.Submit, k.QuitChar}
	case state.ViewResult:
		submit := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new video"))
		return []key.Binding{submit, k.QuitChar}
	default:
		return []key.Binding{k.QuitChar, k.Quit}
	}
}

// decode turns one terminal key event into zero or more state keys. While
// the URL is being edited every printable rune is text, so j and k type
// instead of moving.
func (k keyMap) decode(msg tea.KeyMsg, editing bool) []state.Key {
	switch {
	case key.Matches(msg, k.Quit):
		return []state.Key{{Kind: state.KeyQuit}}
	case key.Matches(msg, k.Submit):
		return []state.Key{{Kind: state.KeySubmit}}
	case key.Matches(msg, k.Backspace):
		return []state.Key{{Kind: state.KeyBackspace}}
	}

	if !editing {
		switch {
		case key.Matches(msg, k.Up):
			return []state.Key{{Kind: state.KeyUp}}
		case key.Matches(msg, k.Down):
			return []state.Key{{Kind: state.KeyDown}}
		}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []state.Key{state.Char(' ')}
	case tea.KeyRunes:
		// A paste arrives as one message; keep it whole so it cannot
		// overflow the key buffer.
		if msg.Paste || len(msg.Runes) > 1 {
			return []state.Key{state.Text(string(msg.Runes))}
		}
		keys := make([]state.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, state.Char(r))
		}
		return keys
	}
	return nil
}
