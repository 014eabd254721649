package pkg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"runtime"

	petname "github.com/dustinkirkland/golang-petname"
)

// BufferSize is the largest record a single read can deliver.
const BufferSize = 1024

// SessionIOError ends one session. The server keeps accepting after it.
type SessionIOError struct {
	Session string
	Err     error
}

func (e *SessionIOError) Error() string {
	return fmt.Sprintf("session %s: read failed: %s", e.Session, e.Err)
}

func (e *SessionIOError) Unwrap() error {
	return e.Err
}

// Session reads placement records from one client and publishes them to the store.
// Every read is treated as one record.
type Session struct {
	Name string
	Conn net.Conn

	Accepted  int
	Rejected  int
	Fallbacks int

	store *Store
	buf   []byte
}

func NewSession(conn net.Conn, store *Store) *Session {
	return &Session{
		Name:  petname.Generate(2, "-"),
		Conn:  conn,
		store: store,
		buf:   make([]byte, BufferSize),
	}
}

// Run reads until the client closes the stream. A clean close returns nil.
func (s *Session) Run(ctx context.Context) error {
	for {
		n, err := s.Conn.Read(s.buf)
		if n > 0 {
			s.handle(s.buf[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			return &SessionIOError{Session: s.Name, Err: err}
		}
		if n == 0 {
			return nil
		}

		runtime.Gosched()
	}
}

func (s *Session) handle(record []byte) {
	if !Validate(record) {
		s.Rejected++
		log.Printf("Session %s: ignored record %q", s.Name, head(record))
		return
	}

	grid, err := ParseOrDefault(record)
	if err != nil {
		s.Fallbacks++
		log.Printf("Session %s: %v, showing starting position", s.Name, err)
	} else {
		s.Accepted++
		log.Printf("Session %s: position %s", s.Name, grid.FEN())
	}
	s.store.Publish(grid)
}
