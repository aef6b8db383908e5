// Package main runs the Loom widget gallery in a terminal: a counter,
// a check box and a scroll bar wired through typed messages.
//
// Usage:
//
//	gallery [-theme config.yaml]
//
// Escape or Ctrl+C quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-loom/loom/pkg/backend/term"
	"github.com/go-loom/loom/pkg/event"
	"github.com/go-loom/loom/pkg/geom"
	"github.com/go-loom/loom/pkg/layout"
	"github.com/go-loom/loom/pkg/theme"
	"github.com/go-loom/loom/pkg/widgets"
	"github.com/go-loom/loom/pkg/window"
)

// action is the gallery's message type; every interactive widget is
// adapted into it.
type action interface{ isAction() }

type increment struct{ by int }
type toggled struct{ on bool }
type scrolled struct{ value int }

func (increment) isAction() {}
func (toggled) isAction()   {}
func (scrolled) isAction()  {}

func main() {
	themePath := flag.String("theme", "", "path to a theme config file")
	flag.Parse()

	colors := theme.DefaultColors()
	if *themePath != "" {
		cfg, err := theme.LoadConfig(*themePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gallery: %v\n", err)
			os.Exit(1)
		}
		colors = cfg.Palette()
	}

	count := widgets.NewLabel("count: 0")
	status := widgets.NewLabel("ready")
	bar := widgets.NewScrollBar(geom.Horizontal)
	bar.SetLengths(500, 50)

	root := widgets.NewColumn[action](
		widgets.NewFrame[action](event.IgnoreMsg[event.NoMsg, action](widgets.NewLabel("loom gallery"))),
		event.IgnoreMsg[event.NoMsg, action](count),
		widgets.NewRow[action](
			event.Adapt(widgets.NewTextButton("-", -1), func(d int) action { return increment{by: d} }),
			event.Adapt(widgets.NewTextButton("+", +1), func(d int) action { return increment{by: d} }),
			event.IgnoreMsg[event.NoMsg, action](widgets.NewFiller(layout.StretchLow)),
			event.Adapt(widgets.NewCheckBox(false), func(on bool) action { return toggled{on: on} }),
		),
		event.Adapt(bar, func(v int) action { return scrolled{value: v} }),
		event.IgnoreMsg[event.NoMsg, action](widgets.NewFiller(layout.StretchHigh)),
		event.IgnoreMsg[event.NoMsg, action](status),
	)

	counter := 0
	var win *window.Window[action]
	win = window.New(root, theme.Cells{}, func(a action) {
		switch a := a.(type) {
		case increment:
			counter += a.by
			count.SetText(fmt.Sprintf("count: %d", counter))
		case toggled:
			status.SetText(fmt.Sprintf("check box: %v", a.on))
		case scrolled:
			status.SetText(fmt.Sprintf("scrolled to %d of %d", a.value, bar.MaxValue()))
		}
		// Label widths changed; rules must be recomputed.
		win.Manager().RequestResize()
	})

	app, err := term.NewApp(win, colors)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gallery: %v\n", err)
		os.Exit(1)
	}
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "gallery: %v\n", err)
		os.Exit(1)
	}
}
