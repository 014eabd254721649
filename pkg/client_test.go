package pkg

import (
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayMoves(t *testing.T) {
	fens, err := ReplayMoves([]string{"e2e4", "e7e5", "g1f3"})
	require.NoError(t, err)
	require.Len(t, fens, 4)

	assert.Equal(t, DefaultFEN, fens[0])
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR", fens[1])
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R", fens[3])

	for _, fen := range fens {
		assert.True(t, Validate([]byte(fen)), fen)
		_, err := Parse([]byte(fen))
		assert.NoError(t, err, fen)
	}
}

func TestReplayMovesIllegal(t *testing.T) {
	_, err := ReplayMoves([]string{"e2e5"})
	assert.Error(t, err)
}

const testPGN = `[Event "Casual"]
[Site "?"]
[Date "2021.03.01"]
[Round "1"]
[White "A"]
[Black "B"]
[Result "*"]

1. d4 d5 2. c4 *
`

func TestReplayPGN(t *testing.T) {
	fens, err := ReplayPGN(strings.NewReader(testPGN))
	require.NoError(t, err)
	require.Len(t, fens, 4)
	assert.Equal(t, "rnbqkbnr/ppp1pppp/8/3p4/2PP4/8/PP2PPPP/RNBQKBNR", fens[3])
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader(DefaultFEN + "\n\n  8/8/8/8/8/8/8/8  \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultFEN, "8/8/8/8/8/8/8/8"}, lines)
}

func TestClientSend(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	cl := &Client{Conn: client}

	got := make(chan string, 2)
	go func() {
		buf := make([]byte, BufferSize)
		for i := 0; i < 2; i++ {
			n, err := server.Read(buf)
			if err != nil {
				return
			}
			got <- string(buf[:n])
		}
	}()

	require.NoError(t, cl.SendAll([]string{DefaultFEN, "8/8/8/8/8/8/8/8\n"}))
	assert.Equal(t, DefaultFEN+"\n", <-got)
	assert.Equal(t, "8/8/8/8/8/8/8/8\n", <-got)
	require.NoError(t, cl.Close())
}
