package pkg

import (
	"log"
	"os"

	"github.com/notnil/chess"
)

// gridToSquare maps a grid cursor to a chess square. Row 0 is the eighth rank.
func gridToSquare(row, col int) chess.Square {
	return chess.Square((numrows-row-1)*8 + col)
}

// SquareToGrid is the inverse of gridToSquare. A1 is square 0.
func SquareToGrid(sq chess.Square) (row, col int) {
	return numrows - int(sq.Rank()) - 1, int(sq.File())
}

// InitLog sends the standard logger to dest. An empty dest keeps stderr.
func InitLog(dest, prefix string) {
	log.SetPrefix(prefix)
	if dest == "" {
		return
	}
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
}
