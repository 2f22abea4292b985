// Package app wires the selection engine to a tcell-backed terminal
// host: it owns the event loop, clipboard commits, logging, and
// configuration plumbing.
package app

import (
	"github.com/atotto/clipboard"

	"github.com/dshills/markmode/internal/config"
	"github.com/dshills/markmode/internal/geometry"
	"github.com/dshills/markmode/internal/grid"
	"github.com/dshills/markmode/internal/input/key"
	"github.com/dshills/markmode/internal/selection"
)

// Application runs the interactive selection host over a text buffer.
type Application struct {
	cfg    config.Settings
	logger *Logger
	screen *Screen
	buffer *grid.Buffer
	engine *selection.Engine

	// dragging tracks the primary button across mouse reports so press,
	// drag, and release can be told apart.
	dragging bool
}

// NewApplication builds the host: terminal, engine, and collaborators.
func NewApplication(cfg config.Settings, buffer *grid.Buffer, logger *Logger) (*Application, error) {
	if logger == nil {
		logger = NullLogger
	}

	screen, err := NewScreen(buffer, selection.MakeAttr(7, 0))
	if err != nil {
		return nil, err
	}

	app := &Application{
		cfg:    cfg,
		logger: logger,
		screen: screen,
		buffer: buffer,
	}
	app.engine = app.buildEngine(screen)
	return app, nil
}

// buildEngine assembles the selection engine from the configuration,
// with the screen serving every display-side port.
func (app *Application) buildEngine(screen *Screen) *selection.Engine {
	opts := []selection.Option{
		selection.WithPainter(screen),
		selection.WithViewportHeightFunc(screen.ViewportHeight),
		selection.WithLineModeDefault(app.cfg.Selection.LineModeDefault),
	}
	if app.cfg.Selection.EnableColorSelection {
		opts = append(opts, selection.WithColorSelection(screen, screen))
	}
	if app.cfg.Words.Delimiters != "" {
		opts = append(opts, selection.WithWordDelimiters(app.cfg.Words.Delimiters))
	}
	return selection.NewEngine(app.buffer, nil, screen, screen, opts...)
}

// Run drives the event loop until the user quits. The terminal is
// restored before returning.
func (app *Application) Run() error {
	defer app.screen.Fini()

	app.logger.Info("starting, buffer %dx%d",
		app.buffer.Edges().Width(), app.buffer.Edges().Height())
	app.screen.Render()

	for {
		ev := app.screen.PollEvent()
		switch ev.Type {
		case EventKey:
			if app.handleKey(ev.Key) {
				return nil
			}
		case EventMouse:
			app.handleMouse(ev.Mouse)
		case EventResize:
			// Sync already happened in PollEvent
		case EventNone:
			return nil
		}
		app.screen.Render()
	}
}

// handleKey routes a key event. Returns true when the application
// should exit.
func (app *Application) handleKey(ev key.Event) bool {
	if app.engine.IsSelecting() || app.engine.IsMouseButtonDown() {
		switch app.engine.HandleKeyEvent(ev) {
		case selection.Handled:
			return false
		case selection.CopyToClipboard:
			app.copySelection()
			return false
		}
		// NotHandled falls through to the application bindings
	}

	switch {
	case ev.Rune == ' ' && ev.Modifiers.HasCtrl():
		app.logger.Debug("mark mode at %v", app.screen.Position())
		app.engine.BeginKeyboardMark()
	case ev.Rune == 'q' && ev.Modifiers.IsEmpty(),
		ev.Rune == 'q' && ev.Modifiers.HasCtrl():
		return true
	}
	return false
}

// copySelection commits the selected text to the system clipboard and
// clears the selection, mirroring console hosts where Enter ends the
// selection by copying it.
func (app *Application) copySelection() {
	text := app.engine.SelectedText()
	if text != "" {
		if err := clipboard.WriteAll(text); err != nil {
			app.logger.Error("clipboard write failed: %v", err)
		} else {
			app.logger.Debug("copied %d bytes", len(text))
		}
	}
	app.engine.Clear()
}

// handleMouse translates button reports into selection calls: press
// anchors, motion with the button held extends, release keeps the
// selection active for the keyboard.
func (app *Application) handleMouse(ev MouseEvent) {
	pos := app.buffer.Edges().Clamp(ev.Pos)

	switch {
	case ev.Primary && !app.dragging:
		app.dragging = true
		app.engine.Clear()
		app.engine.BeginMouseSelection(pos)
		app.screen.SetPosition(pos)
	case ev.Primary && app.dragging:
		app.engine.ExtendTo(pos)
	case !ev.Primary && app.dragging:
		app.dragging = false
		app.engine.MouseButtonUp()
	}
}

// Cursor returns the host cursor position; exposed for the command-line
// front end to seed it.
func (app *Application) Cursor() geometry.Coord {
	return app.screen.Position()
}

// SetCursor moves the host cursor.
func (app *Application) SetCursor(pos geometry.Coord) {
	app.screen.SetPosition(app.buffer.Edges().Clamp(pos))
}
