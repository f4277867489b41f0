package input

// Action is the base interface for viewer commands.
type Action interface{}

type ScrollUpAction struct{}
type ScrollDownAction struct{}
type ScrollPageUpAction struct{}
type ScrollPageDownAction struct{}
type ScrollTopAction struct{}
type ScrollBottomAction struct{}

// ToggleLinkURLsAction switches between showing and hiding link targets.
type ToggleLinkURLsAction struct{}

type ResizeAction struct {
	Width  int
	Height int
}

type SuspendAction struct{}
type QuitAction struct{}
