package gui

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"io"
	"log"
	"time"

	"github.com/gliderlabs/ssh"
	"github.com/qnkhuat/fenview/pkg"
	gossh "golang.org/x/crypto/ssh"
)

const (
	SSHIdleTimeout = 30 * time.Minute
	clearScreen    = "\x1b[H\x1b[2J"
)

// SSHServer lets remote terminals watch the board. Viewers are read-only; any
// number of them may be attached.
type SSHServer struct {
	*ssh.Server

	store    *pkg.Store
	address  string
	interval time.Duration
}

// NewSSHServer prepares a server on addr. address is the ingestion address shown in
// the idle banner. An empty hostKeyFile generates a fresh ed25519 key.
func NewSSHServer(addr, hostKeyFile, address string, store *pkg.Store, interval time.Duration) (*SSHServer, error) {
	srv := &SSHServer{store: store, address: address, interval: interval}
	srv.Server = &ssh.Server{
		Addr:        addr,
		IdleTimeout: SSHIdleTimeout,
		Handler:     srv.handle,
	}

	if hostKeyFile != "" {
		if err := srv.SetOption(ssh.HostKeyFile(hostKeyFile)); err != nil {
			return nil, err
		}
		return srv, nil
	}

	signer, err := GenerateHostKey()
	if err != nil {
		return nil, err
	}
	srv.AddHostKey(signer)
	return srv, nil
}

// GenerateHostKey creates an ephemeral ed25519 host key.
func GenerateHostKey() (ssh.Signer, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return gossh.NewSignerFromKey(priv)
}

func (srv *SSHServer) handle(s ssh.Session) {
	_, _, isPty := s.Pty()
	log.Printf("SSH viewer %s@%s attached", s.User(), s.RemoteAddr())
	defer log.Printf("SSH viewer %s@%s detached", s.User(), s.RemoteAddr())

	ctx, cancel := context.WithCancel(s.Context())
	defer cancel()

	// Any input ends the session.
	go func() {
		defer cancel()
		buf := make([]byte, 1)
		if _, err := s.Read(buf); err != nil && !errors.Is(err, io.EOF) {
			log.Printf("SSH viewer %s@%s: read: %v", s.User(), s.RemoteAddr(), err)
		}
	}()

	clock := pkg.NewFrameClock(srv.store, srv.interval)
	if err := Stream(ctx, clock, s, srv.address, isPty, isPty); err != nil {
		log.Printf("SSH viewer %s@%s: write: %v", s.User(), s.RemoteAddr(), err)
		s.Exit(1)
		return
	}
	s.Exit(0)
}
