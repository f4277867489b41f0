package app

import (
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/chatmd/internal/ui/input"
)

// Run draws the document and processes events until the viewer quits.
func (app *Application) Run() {
	app.draw()

	eventChan := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		redraw := false
		select {
		case ev := <-eventChan:
			redraw = app.handleEvent(ev)
		case action := <-app.actionCh:
			redraw = app.handleAction(action)
		case <-sigContCh:
			redraw = app.resumeAfterStop()
		}

		if app.processActions() {
			redraw = true
		}
		if redraw && !app.shouldQuit {
			app.draw()
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize, *tcell.EventMouse:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		return false
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

// processActions drains queued actions without blocking.
func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action input.Action) bool {
	switch a := action.(type) {
	case input.QuitAction:
		app.shouldQuit = true
		return false
	case input.SuspendAction:
		debugf("suspend")
		app.suspendToShell()
		return false
	case input.ResizeAction:
		// Queued resize events may be stale; lay out for the current size.
		app.screen.Sync()
		if w, h := app.screen.Size(); w > 0 && h > 0 {
			a.Width, a.Height = w, h
		}
		debugf("resize %dx%d", a.Width, a.Height)
		action = a
	}
	return app.pager.Apply(action)
}

func (app *Application) draw() {
	app.pager.Draw()
	app.screen.Show()
}
