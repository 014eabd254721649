package pkg

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidChar = errors.New("invalid placement character")
	ErrIncomplete  = errors.New("placement covers fewer than 64 squares")
	ErrOverflow    = errors.New("placement covers more than 64 squares")
)

// ParseError describes why a placement string was refused.
type ParseError struct {
	Err    error
	Input  string
	Offset int
	Char   byte
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrInvalidChar) {
		return fmt.Sprintf("%s %q at offset %d in %q", e.Err, e.Char, e.Offset, e.Input)
	}
	return fmt.Sprintf("%s: %q", e.Err, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse converts a placement string into a grid. Each rank must hold exactly eight
// files; shorter input is ErrIncomplete and longer input is ErrOverflow.
func Parse(b []byte) (BoardGrid, error) {
	var grid BoardGrid
	h := head(b)

	// First pass counts squares and checks every rank.
	total, rank, files := 0, 0, 0
	for i, c := range h {
		switch {
		case c == '/':
			if files < numcols {
				return grid, &ParseError{Err: ErrIncomplete, Input: string(h), Offset: i}
			}
			rank++
			files = 0
			if rank >= numrows {
				return grid, &ParseError{Err: ErrOverflow, Input: string(h), Offset: i}
			}
			continue
		case c >= '1' && c <= '8':
			files += int(c - '0')
			total += int(c - '0')
		default:
			if _, ok := pieceFromByte(c); !ok {
				return grid, &ParseError{Err: ErrInvalidChar, Input: string(h), Offset: i, Char: c}
			}
			files++
			total++
		}
		if files > numcols {
			return grid, &ParseError{Err: ErrOverflow, Input: string(h), Offset: i}
		}
	}
	if total < numOfSquaresInBoard {
		return grid, &ParseError{Err: ErrIncomplete, Input: string(h), Offset: len(h)}
	}

	// Second pass fills the grid.
	row, col := 0, 0
	for _, c := range h {
		if c == '/' {
			row++
			col = 0
			continue
		}
		if c >= '1' && c <= '8' {
			for j := 0; j < int(c-'0'); j++ {
				grid[row*numcols+col] = Cell{}
				col++
			}
			continue
		}
		cell, _ := pieceFromByte(c)
		grid[row*numcols+col] = cell
		col++
	}
	return grid, nil
}

// ParseOrDefault parses b and falls back to the starting position when b is refused.
// The error is returned alongside the fallback grid so callers can log it.
func ParseOrDefault(b []byte) (BoardGrid, error) {
	grid, err := Parse(b)
	if err != nil {
		return DefaultGrid(), err
	}
	return grid, nil
}
