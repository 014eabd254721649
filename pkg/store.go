package pkg

import (
	"sync"
	"sync/atomic"
)

type ConnectionState int32

const (
	NoClient ConnectionState = iota
	ClientConnected
)

func (s ConnectionState) String() string {
	switch s {
	case NoClient:
		return "NoClient"
	case ClientConnected:
		return "ClientConnected"
	default:
		return "Unknown ConnectionState"
	}
}

// Snapshot is what a consumer sees in one frame. Grid and State are read
// independently and are not guaranteed to belong to the same moment.
type Snapshot struct {
	Grid    BoardGrid
	State   ConnectionState
	Version uint64
}

type published struct {
	grid    BoardGrid
	version uint64
}

// Store holds the latest published grid and the connection flag. Readers never block
// and always see a grid that was published whole.
type Store struct {
	mu      sync.Mutex // serializes publishers
	current atomic.Pointer[published]
	state   atomic.Int32
}

// NewStore returns a store holding the starting position.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(&published{grid: DefaultGrid()})
	return s
}

// Publish replaces the grid.
func (s *Store) Publish(grid BoardGrid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.current.Load()
	s.current.Store(&published{grid: grid, version: prev.version + 1})
}

func (s *Store) SetConnection(state ConnectionState) {
	s.state.Store(int32(state))
}

func (s *Store) Connection() ConnectionState {
	return ConnectionState(s.state.Load())
}

// Version counts publishes since the store was created.
func (s *Store) Version() uint64 {
	return s.current.Load().version
}

// Read returns a copy of the current grid with the connection flag.
func (s *Store) Read() Snapshot {
	p := s.current.Load()
	return Snapshot{
		Grid:    p.grid,
		State:   s.Connection(),
		Version: p.version,
	}
}
