package state

// View identifies which screen layout the renderer draws.
type View int

const (
	ViewURLInput View = iota
	ViewLoading
	ViewFormatSelect
	ViewResult
)

// Dispatch maps a screen to the view that draws it.
func Dispatch(s Screen) View {
	switch s {
	case ScreenLoading:
		return ViewLoading
	case ScreenFormatSelect:
		return ViewFormatSelect
	case ScreenNormal:
		return ViewResult
	default:
		return ViewURLInput
	}
}
