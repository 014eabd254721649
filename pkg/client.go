package pkg

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"net"
	"strings"
	"time"

	"github.com/notnil/chess"
)

// DefaultSendDelay keeps consecutive records apart so each one arrives in its own read.
const DefaultSendDelay = 100 * time.Millisecond

// Client sends placement records to a server.
type Client struct {
	Conn  net.Conn
	Delay time.Duration

	sent int
}

func Connect(address string) (*Client, error) {
	log.Printf("Connecting to %s", address)
	conn, err := net.Dial("tcp", address)
	if err != nil {
		return nil, err
	}
	return &Client{Conn: conn, Delay: DefaultSendDelay}, nil
}

// Send writes one record, newline terminated.
func (cl *Client) Send(fen string) error {
	if cl.sent > 0 && cl.Delay > 0 {
		time.Sleep(cl.Delay)
	}
	b := []byte(fen)
	if len(b) == 0 || b[len(b)-1] != '\n' {
		b = append(b, '\n')
	}
	if _, err := cl.Conn.Write(b); err != nil {
		return fmt.Errorf("send %q: %w", fen, err)
	}
	cl.sent++
	log.Printf("Sent %s", strings.TrimSpace(fen))
	return nil
}

// SendAll sends every record in order.
func (cl *Client) SendAll(fens []string) error {
	for _, fen := range fens {
		if err := cl.Send(fen); err != nil {
			return err
		}
	}
	return nil
}

func (cl *Client) Close() error {
	return cl.Conn.Close()
}

// ReadLines returns the non-empty lines of r.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// ReplayPGN returns the placement of every position of the first game in r,
// starting with the initial one.
func ReplayPGN(r io.Reader) ([]string, error) {
	pgn, err := chess.PGN(r)
	if err != nil {
		return nil, err
	}
	return placements(chess.NewGame(pgn)), nil
}

// ReplayMoves plays UCI moves such as "e2e4" from the starting position.
func ReplayMoves(moves []string) ([]string, error) {
	game := chess.NewGame(chess.UseNotation(chess.UCINotation{}))
	for _, m := range moves {
		if err := game.MoveStr(m); err != nil {
			return nil, fmt.Errorf("move %s: %w", m, err)
		}
	}
	return placements(game), nil
}

func placements(game *chess.Game) []string {
	positions := game.Positions()
	fens := make([]string, 0, len(positions))
	for _, pos := range positions {
		fens = append(fens, pos.Board().String())
	}
	return fens
}
