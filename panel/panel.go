// Package panel is the GTK control window shown next to an exercise's render
// window. It talks to the render loop only through a link.Endpoint.
package panel

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
	"github.com/stewi1014/glexercises/link"
)

// Config describes the panel window.
type Config struct {
	// ID is the GTK application ID, unique per program.
	ID            string
	Title         string
	Width, Height int
}

// BuildFunc fills the panel window.
type BuildFunc func(win *gtk.ApplicationWindow) (gtk.IWidget, error)

// Run shows a window filled by build and runs GTK until ctx is done or the
// window is closed. It locks the calling goroutine to its OS thread, so it
// is meant to run on a goroutine of its own.
func Run(ctx context.Context, cfg Config, build BuildFunc) error {
	runtime.LockOSThread()

	gtk.Init(&os.Args)
	app, err := gtk.ApplicationNew(cfg.ID, glib.APPLICATION_FLAGS_NONE)
	if err != nil {
		return fmt.Errorf("gtk.ApplicationNew failed: %w", err)
	}

	appContext, appQuit := context.WithCancelCause(ctx)
	defer appQuit(nil)

	app.Connect("activate", func() {
		defer link.CatchPanic(appQuit)

		win, err := gtk.ApplicationWindowNew(app)
		if err != nil {
			appQuit(fmt.Errorf("gtk.ApplicationWindowNew: %w", err))
			return
		}
		win.SetTitle(cfg.Title)
		win.SetDefaultSize(cfg.Width, cfg.Height)
		win.Connect("destroy", func() {
			appQuit(nil)
		})

		content, err := build(win)
		if err != nil {
			appQuit(err)
			return
		}

		win.Add(content)
		win.ShowAll()
	})

	go func() {
		<-appContext.Done()
		glib.IdleAdd(app.Quit)
	}()
	app.Run(nil)

	err = context.Cause(appContext)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pump applies Status messages from ep to status on the GTK thread until
// ep's messages end.
func pump(ep *link.Endpoint, win *gtk.ApplicationWindow, status *statusView) {
	for v := range ep.Messages() {
		msg, ok := v.(link.Status)
		if !ok {
			continue
		}
		glib.IdleAdd(func() {
			status.update(msg)
			if msg.Error != "" {
				NewErrorDialog(win, msg.Error)
			}
		})
	}
}
