package panel

import (
	"log"

	"github.com/gotk3/gotk3/gtk"
	"github.com/stewi1014/glexercises/link"
)

// NewErrorDialog shows message in a modal error dialog with selectable text.
func NewErrorDialog(parent *gtk.ApplicationWindow, message string) {
	dialog := gtk.MessageDialogNew(
		parent,
		gtk.DIALOG_DESTROY_WITH_PARENT,
		gtk.MESSAGE_ERROR,
		gtk.BUTTONS_CLOSE,
		"%s",
		message,
	)

	dialog.Connect("response", dialog.Destroy)

	messageArea, err := dialog.GetMessageArea()
	if err != nil {
		log.Println(err)

	} else {
		messageArea.GetChildren().Foreach(func(item interface{}) {
			if widget, ok := item.(*gtk.Widget); ok {
				l, err := gtk.WidgetToLabel(widget)
				if err != nil {
					return
				}

				l.SetSelectable(true)
			}
		})
	}

	dialog.SetKeepAbove(true)
	dialog.Run()
}

// statusView shows the last Status sent by the render loop.
type statusView struct {
	*gtk.Box
	label    *gtk.Label
	progress *gtk.ProgressBar
}

func newStatusView() (*statusView, error) {
	box, err := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 4)
	if err != nil {
		return nil, err
	}
	label, err := gtk.LabelNew("")
	if err != nil {
		return nil, err
	}
	label.SetLineWrap(true)
	label.SetSelectable(true)

	progress, err := gtk.ProgressBarNew()
	if err != nil {
		return nil, err
	}
	progress.SetShowText(true)
	progress.SetNoShowAll(true)

	box.PackStart(label, false, false, 0)
	box.PackStart(progress, false, false, 0)
	return &statusView{Box: box, label: label, progress: progress}, nil
}

func (s *statusView) update(msg link.Status) {
	s.label.SetText(msg.Text)
	if msg.Progress > 0 && msg.Progress < 1 {
		s.progress.SetFraction(msg.Progress)
		s.progress.Show()
	} else {
		s.progress.Hide()
	}
}
