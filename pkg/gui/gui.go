package gui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/fenview/pkg"
	"github.com/rivo/tview"
)

// Viewer shows the latest snapshot of a store in the terminal.
type Viewer struct {
	App    *tview.Application
	Board  *tview.Table
	Status *tview.TextView
	Layout *tview.Grid

	address string
	clock   *pkg.FrameClock
	theme   Theme
}

func NewViewer(store *pkg.Store, clock *pkg.FrameClock, address string, theme Theme) *Viewer {
	app := tview.NewApplication()
	board := tview.NewTable()
	status := tview.NewTextView().
		SetTextAlign(tview.AlignCenter)

	layout := tview.NewGrid().
		SetRows(-1, 10, 1, -1).
		SetColumns(-1, 28, -1).
		AddItem(board, 1, 1, 1, 1, 0, 0, true).
		AddItem(status, 2, 0, 1, 3, 0, 0, false)

	v := &Viewer{
		App:     app,
		Board:   board,
		Status:  status,
		Layout:  layout,
		address: address,
		clock:   clock,
		theme:   theme,
	}

	board.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			app.Stop()
		}
	})
	app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return ev
	})

	v.Draw(store.Read())
	return v
}

// Draw renders one snapshot. It must run on the application goroutine once the
// application is running.
func (v *Viewer) Draw(snap pkg.Snapshot) {
	RenderTable(v.Board, snap.Grid, v.theme)
	color := v.theme.Status
	if snap.State == pkg.NoClient {
		color = v.theme.Idle
	}
	v.Status.SetTextColor(color)
	v.Status.SetText(StatusText(snap, v.address))
}

// Run blocks until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go v.clock.Run(ctx, func(snap pkg.Snapshot) {
		v.App.QueueUpdateDraw(func() {
			v.Draw(snap)
		})
	})
	go func() {
		<-ctx.Done()
		v.App.Stop()
	}()

	return v.App.SetRoot(v.Layout, true).Run()
}
