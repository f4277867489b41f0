package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/chatmd/internal/markdown"
	"github.com/kk-code-lab/chatmd/internal/ui/input"
	"github.com/kk-code-lab/chatmd/internal/ui/pager"
	"github.com/kk-code-lab/chatmd/internal/ui/render"
)

// Application represents the running viewer.
type Application struct {
	screen     tcell.Screen
	renderer   *render.Renderer
	pager      *pager.Pager
	input      *input.InputHandler
	actionCh   chan input.Action
	shouldQuit bool
}

// NewApplication opens the terminal and lays doc out for it.
func NewApplication(doc markdown.Document, opts render.Options, title string) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	// Parse mouse sequences so wheel scrolling doesn't leak as key events.
	screen.EnableMouse()
	return newApplication(screen, doc, opts, title), nil
}

func newApplication(screen tcell.Screen, doc markdown.Document, opts render.Options, title string) *Application {
	actionCh := make(chan input.Action, 10)
	renderer := render.NewRenderer(screen)
	w, h := screen.Size()
	debugf("viewer start size=%dx%d blocks=%d", w, h, len(doc.Nodes))
	return &Application{
		screen:   screen,
		renderer: renderer,
		pager:    pager.NewPager(renderer, doc, opts, title, w, h),
		input:    input.NewInputHandler(actionCh),
		actionCh: actionCh,
	}
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	app.screen.Fini()
	discardPendingInput()
	return nil
}
