package pkg

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 8888

	acceptRetryDelay = 50 * time.Millisecond
)

// BindError means the service could not be opened at all.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("failed to listen on %s: %s", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Server accepts one client at a time and feeds its records into Store.
type Server struct {
	Address string
	Store   *Store

	listener net.Listener
	sync.Mutex
}

func NewServer(address string, store *Store) *Server {
	return &Server{Address: address, Store: store}
}

// Listen binds the listening socket.
func (s *Server) Listen() error {
	lc := net.ListenConfig{Control: reuseAddrControl}
	listener, err := lc.Listen(context.Background(), "tcp", s.Address)
	if err != nil {
		return &BindError{Addr: s.Address, Err: err}
	}

	s.Lock()
	s.listener = listener
	s.Unlock()

	log.Printf("Listening at %s", listener.Addr())
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.Lock()
	defer s.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve runs the accept loop until ctx is done or StopListening is called.
func (s *Server) Serve(ctx context.Context) error {
	s.Lock()
	listener := s.listener
	s.Unlock()
	if listener == nil {
		return errors.New("server is not listening")
	}

	stop := context.AfterFunc(ctx, s.StopListening)
	defer stop()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				return nil
			}
			log.Printf("Failed to accept: %v", err)
			time.Sleep(acceptRetryDelay)
			continue
		}

		s.handleConn(ctx, conn)
	}
}

// ListenAndServe binds and serves.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

func (s *Server) StopListening() {
	s.Lock()
	defer s.Unlock()
	if s.listener != nil {
		s.listener.Close()
	}
}

// handleConn runs one session to completion before the next accept.
func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	session := NewSession(conn, s.Store)
	log.Printf("Session %s: connected from %s", session.Name, conn.RemoteAddr())
	s.Store.SetConnection(ClientConnected)

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	g.Go(func() error {
		defer close(done)
		return session.Run(gctx)
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
			// Unblocks the pending read.
			conn.Close()
		case <-done:
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Printf("Session %s: %v", session.Name, err)
	}

	s.Store.SetConnection(NoClient)
	log.Printf("Session %s: disconnected (%d accepted, %d rejected, %d fallbacks)",
		session.Name, session.Accepted, session.Rejected, session.Fallbacks)
}

// Address joins host and port, using the defaults for empty values.
func Address(host string, port int) string {
	if host == "" {
		host = DefaultHost
	}
	if port == 0 {
		port = DefaultPort
	}
	return net.JoinHostPort(host, fmt.Sprint(port))
}
