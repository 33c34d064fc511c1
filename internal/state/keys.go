package state

// KeyKind is the decoded meaning of a key press.
type KeyKind int

const (
	KeyChar KeyKind = iota
	KeyBackspace
	KeySubmit
	KeyUp
	KeyDown
	KeyQuit
	KeyText
)

func (k KeyKind) String() string {
	switch k {
	case KeyChar:
		return "Char"
	case KeyBackspace:
		return "Backspace"
	case KeySubmit:
		return "Submit"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyQuit:
		return "Quit"
	case KeyText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Key is a key press as seen by the state machine. Rune is set for KeyChar,
// Text for KeyText.
type Key struct {
	Kind KeyKind
	Rune rune
	Text string
}

// Char returns the key for typing r.
func Char(r rune) Key {
	return Key{Kind: KeyChar, Rune: r}
}

// Text returns the key for pasting s in one step.
func Text(s string) Key {
	return Key{Kind: KeyText, Text: s}
}
