package gui

import (
	"strings"
	"testing"

	"github.com/notnil/chess"
	"github.com/qnkhuat/fenview/pkg"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable(t *testing.T) {
	table := tview.NewTable()
	RenderTable(table, pkg.DefaultGrid(), ThemeBasic)

	assert.Equal(t, numrows+1, table.GetRowCount())
	assert.Equal(t, numcols+1, table.GetColumnCount())

	assert.Equal(t, "8", table.GetCell(0, 0).Text)
	assert.Equal(t, "1", table.GetCell(7, 0).Text)
	assert.Equal(t, "a", table.GetCell(numrows, 1).Text)
	assert.Equal(t, "h", table.GetCell(numrows, numcols).Text)

	assert.Equal(t, chess.BlackRook.String(), strings.TrimSpace(table.GetCell(0, 1).Text))
	assert.Equal(t, chess.WhiteKing.String(), strings.TrimSpace(table.GetCell(7, 5).Text))
	assert.Equal(t, "", strings.TrimSpace(table.GetCell(4, 4).Text))

	assert.Equal(t, ThemeBasic.SquareLight, table.GetCell(0, 1).BackgroundColor)
	assert.Equal(t, ThemeBasic.SquareDark, table.GetCell(0, 2).BackgroundColor)
}

func TestStatusText(t *testing.T) {
	snap := pkg.Snapshot{Grid: pkg.DefaultGrid(), State: pkg.NoClient}
	assert.Equal(t, "Waiting for a client on 127.0.0.1:8888", StatusText(snap, "127.0.0.1:8888"))

	snap.State = pkg.ClientConnected
	snap.Version = 3
	assert.Contains(t, StatusText(snap, "127.0.0.1:8888"), "#3: "+pkg.DefaultFEN)
}

func TestFindTheme(t *testing.T) {
	theme, err := FindTheme("classic")
	require.NoError(t, err)
	assert.Equal(t, ThemeClassic, theme)

	_, err = FindTheme("neon")
	assert.Error(t, err)
}
