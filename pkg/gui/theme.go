package gui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette is available here
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for coloring the board
type Theme struct {
	Name        string
	SquareDark  tcell.Color
	SquareLight tcell.Color
	White       tcell.Color
	Black       tcell.Color
	Rank        tcell.Color
	File        tcell.Color
	Status      tcell.Color
	Idle        tcell.Color
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	Name:        "basic",
	SquareDark:  tcell.Color188,
	SquareLight: tcell.Color230,
	White:       tcell.Color232,
	Black:       tcell.Color232,
	Rank:        tcell.Color247,
	File:        tcell.Color247,
	Status:      tcell.Color247,
	Idle:        tcell.Color160,
}

// ThemeClassic mimics a wooden board
var ThemeClassic = Theme{
	Name:        "classic",
	SquareDark:  tcell.NewHexColor(0xb58863),
	SquareLight: tcell.NewHexColor(0xf0d9b5),
	White:       tcell.ColorWhite,
	Black:       tcell.ColorBlack,
	Rank:        tcell.ColorDefault,
	File:        tcell.ColorDefault,
	Status:      tcell.ColorDefault,
	Idle:        tcell.ColorYellow,
}

var Themes = []Theme{ThemeBasic, ThemeClassic}

// FindTheme returns the built-in theme called want.
func FindTheme(want string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}
	return Theme{}, errors.New("theme: no theme found")
}
