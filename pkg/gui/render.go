package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
	"github.com/qnkhuat/fenview/pkg"
	"github.com/rivo/tview"
)

const (
	numrows = 8
	numcols = 8
)

var files = []string{"a", "b", "c", "d", "e", "f", "g", "h"}

// isLight reports whether the square at row, col is a light square. a8 is light.
func isLight(row, col int) bool {
	return (row+col)%2 == 0
}

// squareBg returns the theme's color corresponding to the square
func squareBg(row, col int, t Theme) tcell.Color {
	if isLight(row, col) {
		return t.SquareLight
	}
	return t.SquareDark
}

// pieceFg returns the theme's color for a piece
func pieceFg(p chess.Piece, t Theme) tcell.Color {
	if p.Color() == chess.White {
		return t.White
	}
	return t.Black
}

// glyph renders a piece two columns wide so squares look square
func glyph(p chess.Piece) string {
	if p == chess.NoPiece {
		return "  "
	}
	return fmt.Sprintf("%s ", p)
}

// RenderTable draws the grid into table. Column 0 holds the ranks and the last row
// holds the files.
func RenderTable(table *tview.Table, grid pkg.BoardGrid, t Theme) {
	for r := 0; r < numrows; r++ {
		rank := tview.NewTableCell(fmt.Sprint(numrows - r)).
			SetAlign(tview.AlignCenter).
			SetTextColor(t.Rank).
			SetSelectable(false)
		table.SetCell(r, 0, rank)
	}

	board := grid.ChessBoard()
	for sq := chess.A1; sq <= chess.H8; sq++ {
		r, f := pkg.SquareToGrid(sq)
		p := board.Piece(sq)
		cell := tview.NewTableCell(glyph(p)).
			SetAlign(tview.AlignCenter).
			SetBackgroundColor(squareBg(r, f, t)).
			SetSelectable(false)
		if p != chess.NoPiece {
			cell.SetTextColor(pieceFg(p, t))
		}
		table.SetCell(r, f+1, cell)
	}

	table.SetCell(numrows, 0, tview.NewTableCell("").SetSelectable(false))
	for f := 0; f < numcols; f++ {
		file := tview.NewTableCell(files[f]).
			SetAlign(tview.AlignCenter).
			SetTextColor(t.File).
			SetSelectable(false)
		table.SetCell(numrows, f+1, file)
	}
}

// StatusText describes the connection state for the status bar.
func StatusText(snap pkg.Snapshot, address string) string {
	if snap.State == pkg.NoClient {
		return fmt.Sprintf("Waiting for a client on %s", address)
	}
	return fmt.Sprintf("Client connected, position #%d: %s", snap.Version, snap.Grid.FEN())
}
