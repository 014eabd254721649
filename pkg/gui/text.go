package gui

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/qnkhuat/fenview/pkg"
)

var (
	lightSquare = color.New(color.BgHiWhite, color.FgBlack)
	darkSquare  = color.New(color.BgGreen, color.FgBlack)
	labelColor  = color.New(color.FgHiBlack)
	idleColor   = color.New(color.FgYellow, color.Bold)
)

func init() {
	// Colors are decided per writer, not by whether stdout is a terminal.
	for _, c := range []*color.Color{lightSquare, darkSquare, labelColor, idleColor} {
		c.EnableColor()
	}
}

// WriteBoard writes the snapshot as text. Colored output uses ANSI escapes; plain
// output marks empty squares with dots.
func WriteBoard(w io.Writer, snap pkg.Snapshot, address string, colored bool) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < numrows; r++ {
		label(bw, colored, fmt.Sprintf("%d ", numrows-r))
		for f := 0; f < numcols; f++ {
			c := snap.Grid.At(r, f)
			if !colored {
				if c.Empty() {
					bw.WriteString(". ")
				} else {
					fmt.Fprintf(bw, "%c ", c.Letter())
				}
				continue
			}
			sq := darkSquare
			if isLight(r, f) {
				sq = lightSquare
			}
			sq.Fprint(bw, glyph(c.Piece()))
		}
		bw.WriteString("\r\n")
	}
	label(bw, colored, "  a b c d e f g h")
	bw.WriteString("\r\n")

	status := StatusText(snap, address)
	if snap.State == pkg.NoClient && colored {
		idleColor.Fprint(bw, status)
	} else {
		bw.WriteString(status)
	}
	bw.WriteString("\r\n")
	return bw.Flush()
}

func label(w io.Writer, colored bool, s string) {
	if colored {
		labelColor.Fprint(w, s)
		return
	}
	io.WriteString(w, s)
}

// Stream writes every changed snapshot to w until ctx is done or a write fails.
// clearFirst prefixes each frame with an ANSI clear-screen.
func Stream(ctx context.Context, clock *pkg.FrameClock, w io.Writer, address string, colored, clearFirst bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var err error
	clock.Run(ctx, func(snap pkg.Snapshot) {
		if clearFirst {
			if _, err = io.WriteString(w, clearScreen); err != nil {
				cancel()
				return
			}
		}
		if err = WriteBoard(w, snap, address, colored); err != nil {
			cancel()
		}
	})
	return err
}
