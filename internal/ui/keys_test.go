package ui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/yt-tui/internal/state"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDecode(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name    string
		msg     tea.KeyMsg
		editing bool
		want    []state.Key
	}{
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, true, []state.Key{{Kind: state.KeyQuit}}},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, false, []state.Key{{Kind: state.KeyQuit}}},
		{"enter submits", tea.KeyMsg{Type: tea.KeyEnter}, true, []state.Key{{Kind: state.KeySubmit}}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, true, []state.Key{{Kind: state.KeyBackspace}}},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, false, []state.Key{{Kind: state.KeyUp}}},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, false, []state.Key{{Kind: state.KeyDown}}},
		{"j moves outside prompt", runes("j"), false, []state.Key{{Kind: state.KeyDown}}},
		{"k moves outside prompt", runes("k"), false, []state.Key{{Kind: state.KeyUp}}},
		{"j types while editing", runes("j"), true, []state.Key{state.Char('j')}},
		{"q is a character", runes("q"), false, []state.Key{state.Char('q')}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, true, []state.Key{state.Char(' ')}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab"), Paste: true}, true, []state.Key{state.Text("ab")}},
		{"single rune paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q"), Paste: true}, false, []state.Key{state.Text("q")}},
		{"burst of runes", runes("abc"), true, []state.Key{state.Text("abc")}},
		{"tab ignored", tea.KeyMsg{Type: tea.KeyTab}, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keys.decode(tt.msg, tt.editing)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("decode = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestHelpFor(t *testing.T) {
	keys := DefaultKeyMap()
	for _, view := range []state.View{state.ViewURLInput, state.ViewLoading, state.ViewFormatSelect, state.ViewResult} {
		if len(keys.helpFor(view)) == 0 {
			t.Fatalf("helpFor(%v) is empty", view)
		}
	}
}
