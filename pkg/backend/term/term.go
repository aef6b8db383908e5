// Package term runs a window on a terminal using tcell. Every metric
// is one character cell; pair it with theme.Cells.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geom"
	"github.com/go-loom/loom/pkg/theme"
	"github.com/go-loom/loom/pkg/window"
)

func backendError(op string, err error) *errors.LoomError {
	return &errors.LoomError{Op: op, Kind: errors.KindBackend, Err: err, Timestamp: time.Now()}
}

// mouseButtons are the tcell button bits translated into press sources,
// in dispatch order.
var mouseButtons = []tcell.ButtonMask{tcell.Button1, tcell.Button2, tcell.Button3}

// App drives one window on a terminal screen: it owns the tcell event
// loop, translates raw input into events and presents frames.
type App struct {
	screen tcell.Screen
	win    window.Loop
	colors theme.Colors

	lastButtons tcell.ButtonMask
	lastMouse   geom.Coord
}

// NewApp initializes the terminal and binds it to the window loop.
func NewApp(win window.Loop, colors theme.Colors) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, backendError("term.NewApp", err)
	}
	if err := screen.Init(); err != nil {
		return nil, backendError("term.NewApp", err)
	}
	screen.EnableMouse()
	return &App{screen: screen, win: win, colors: colors}, nil
}

// Run blocks until the user quits (Escape or Ctrl+C) or Stop is
// called, alternating between dispatching input and drawing frames.
// The terminal is restored before it returns.
func (a *App) Run() error {
	defer a.screen.Fini()

	width, height := a.screen.Size()
	a.win.Resize(geom.Size{Width: width, Height: height})

	for {
		if a.win.NeedsFrame() {
			a.drawFrame()
		}
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if quit := a.handleEvent(ev); quit {
			return nil
		}
	}
}

// Stop wakes the event loop and makes Run return.
func (a *App) Stop() {
	a.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (a *App) drawFrame() {
	a.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(a.colors.Background)))
	a.win.DrawFrame(&surface{screen: a.screen, colors: a.colors})
	a.screen.Show()
}

func (a *App) handleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		return true
	case *tcell.EventResize:
		a.screen.Sync()
		width, height := ev.Size()
		a.win.Resize(geom.Size{Width: width, Height: height})
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		a.win.Dispatch(event.Activate{})
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			a.win.Dispatch(event.Activate{})
		} else {
			a.win.Dispatch(event.Key{Rune: ev.Rune()})
		}
	default:
		a.win.Dispatch(event.Key{Name: ev.Name()})
	}
	return false
}

// handleMouse turns tcell's stateless button mask into press
// transitions: a bit newly set starts a gesture, a bit newly cleared
// ends it, and motion with a bit held moves it.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	coord := geom.Coord{X: x, Y: y}
	buttons := ev.Buttons() & tcell.ButtonMask(0xff)
	moved := coord != a.lastMouse

	for i, mask := range mouseButtons {
		held := buttons&mask != 0
		was := a.lastButtons&mask != 0
		src := event.MouseButton(i)
		switch {
		case held && !was:
			a.win.Dispatch(event.PressStart{Source: src, Coord: coord})
		case !held && was:
			a.win.Dispatch(event.PressEnd{Source: src, Coord: coord})
		case held && moved:
			a.win.Dispatch(event.PressMove{Source: src, Coord: coord, Delta: coord.Sub(a.lastMouse)})
		}
	}
	if buttons == 0 && moved {
		a.win.Motion(coord)
	}

	a.lastButtons = buttons
	a.lastMouse = coord
}
