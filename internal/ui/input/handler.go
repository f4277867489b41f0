package input

import (
	"github.com/gdamore/tcell/v2"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan Action
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the event asked the viewer to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := Translate(ev)
		if action == nil {
			return true
		}
		ih.actionChan <- action
		_, quit := action.(QuitAction)
		return !quit
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- ResizeAction{Width: w, Height: h}
		return true
	case *tcell.EventMouse:
		switch buttons := ev.Buttons(); {
		case buttons&tcell.WheelUp != 0:
			ih.actionChan <- ScrollUpAction{}
		case buttons&tcell.WheelDown != 0:
			ih.actionChan <- ScrollDownAction{}
		}
		return true
	default:
		return true
	}
}

// Translate maps one key press to an Action, or nil when the key is unbound.
func Translate(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return QuitAction{}
	case tcell.KeyCtrlZ:
		return SuspendAction{}
	case tcell.KeyUp:
		return ScrollUpAction{}
	case tcell.KeyDown, tcell.KeyEnter:
		return ScrollDownAction{}
	case tcell.KeyPgUp:
		return ScrollPageUpAction{}
	case tcell.KeyPgDn:
		return ScrollPageDownAction{}
	case tcell.KeyHome:
		return ScrollTopAction{}
	case tcell.KeyEnd:
		return ScrollBottomAction{}
	case tcell.KeyRune:
		return translateRune(ev.Rune())
	}
	return nil
}

func translateRune(r rune) Action {
	switch r {
	case 'q', 'Q':
		return QuitAction{}
	case 'k':
		return ScrollUpAction{}
	case 'j':
		return ScrollDownAction{}
	case 'b':
		return ScrollPageUpAction{}
	case ' ', 'f':
		return ScrollPageDownAction{}
	case 'g':
		return ScrollTopAction{}
	case 'G':
		return ScrollBottomAction{}
	case 'u':
		return ToggleLinkURLsAction{}
	}
	return nil
}
