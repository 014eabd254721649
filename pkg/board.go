package pkg

import (
	"bytes"
	"strconv"

	"github.com/notnil/chess"
)

const (
	numrows             = 8
	numcols             = 8
	numOfSquaresInBoard = numrows * numcols

	// DefaultFEN is the standard starting placement. It is shown before any client
	// sends a position and whenever a received position fails to parse.
	DefaultFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
)

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}

type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "Empty"
	}
}

// kindFromUpper maps an uppercase piece letter to its kind.
func kindFromUpper(c byte) PieceKind {
	switch c {
	case 'P':
		return Pawn
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	default:
		return NoKind
	}
}

// pieceFromByte classifies a piece letter. The case of the letter decides the color.
func pieceFromByte(c byte) (Cell, bool) {
	color := White
	if c >= 'a' && c <= 'z' {
		c -= 32
		color = Black
	}
	kind := kindFromUpper(c)
	if kind == NoKind {
		return Cell{}, false
	}
	return Cell{Kind: kind, Color: color}, true
}

// Cell is one square of a BoardGrid. The zero value is an empty square.
type Cell struct {
	Kind  PieceKind
	Color Color
}

func (c Cell) Empty() bool {
	return c.Kind == NoKind
}

// Letter returns the FEN letter of the piece, or 0 for an empty cell.
func (c Cell) Letter() byte {
	var l byte
	switch c.Kind {
	case Pawn:
		l = 'P'
	case Knight:
		l = 'N'
	case Bishop:
		l = 'B'
	case Rook:
		l = 'R'
	case Queen:
		l = 'Q'
	case King:
		l = 'K'
	default:
		return 0
	}
	if c.Color == Black {
		l += 32
	}
	return l
}

// Piece converts the cell to its notnil/chess equivalent.
func (c Cell) Piece() chess.Piece {
	if c.Empty() {
		return chess.NoPiece
	}
	white := c.Color == White
	switch c.Kind {
	case Pawn:
		if white {
			return chess.WhitePawn
		}
		return chess.BlackPawn
	case Knight:
		if white {
			return chess.WhiteKnight
		}
		return chess.BlackKnight
	case Bishop:
		if white {
			return chess.WhiteBishop
		}
		return chess.BlackBishop
	case Rook:
		if white {
			return chess.WhiteRook
		}
		return chess.BlackRook
	case Queen:
		if white {
			return chess.WhiteQueen
		}
		return chess.BlackQueen
	case King:
		if white {
			return chess.WhiteKing
		}
		return chess.BlackKing
	}
	return chess.NoPiece
}

func (c Cell) String() string {
	if c.Empty() {
		return "Empty"
	}
	return c.Color.String() + " " + c.Kind.String()
}

// BoardGrid holds 64 cells in row-major order. Row 0 is the eighth rank, column 0 is the
// a-file, which is the order squares appear in a placement string.
type BoardGrid [numOfSquaresInBoard]Cell

// At returns the cell at row, col.
func (g BoardGrid) At(row, col int) Cell {
	return g[row*numcols+col]
}

// count returns the number of pieces of the given color.
func (g BoardGrid) count(color Color) int {
	n := 0
	for _, c := range g {
		if !c.Empty() && c.Color == color {
			n++
		}
	}
	return n
}

// FEN encodes the grid as a piece-placement string.
func (g BoardGrid) FEN() string {
	var sb bytes.Buffer
	for row := 0; row < numrows; row++ {
		empty := 0
		for col := 0; col < numcols; col++ {
			c := g.At(row, col)
			if c.Empty() {
				empty++
				continue
			}
			if empty != 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(c.Letter())
		}
		if empty != 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row != numrows-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// ChessBoard builds a notnil/chess board holding the same pieces.
func (g BoardGrid) ChessBoard() *chess.Board {
	m := make(map[chess.Square]chess.Piece)
	for i, c := range g {
		if c.Empty() {
			continue
		}
		m[gridToSquare(i/numcols, i%numcols)] = c.Piece()
	}
	return chess.NewBoard(m)
}

var defaultGrid = mustParse(DefaultFEN)

// DefaultGrid returns the standard starting position.
func DefaultGrid() BoardGrid {
	return defaultGrid
}

func mustParse(fen string) BoardGrid {
	g, err := Parse([]byte(fen))
	if err != nil {
		panic(err)
	}
	return g
}
