package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/gliderlabs/ssh"
	"github.com/qnkhuat/fenview/pkg"
	"github.com/qnkhuat/fenview/pkg/gui"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

var config = pkg.DefaultConfig()

func init() {
	flag.StringVar(&config.Host, "host", config.Host, "address to accept positions on")
	flag.IntVar(&config.Port, "port", config.Port, "port to accept positions on")
	flag.StringVar(&config.LogPath, "log", config.LogPath, "path to log file, empty for stderr")
	flag.StringVar(&config.SSHAddr, "ssh", "", "serve read-only board viewers over SSH on this address")
	flag.StringVar(&config.HostKey, "hostkey", "", "SSH host key file, generated when empty")
	flag.DurationVar(&config.Frame, "frame", config.Frame, "how often viewers poll for a new position")
	flag.BoolVar(&config.Headless, "headless", false, "print positions as text instead of the board UI")
}

func main() {
	themeName := flag.String("theme", gui.ThemeBasic.Name, "board theme (basic, classic)")
	flag.Parse()

	if !config.Headless && !term.IsTerminal(int(os.Stdout.Fd())) {
		config.Headless = true
	}
	if config.Headless && config.LogPath == "./log" {
		config.LogPath = ""
	}
	pkg.InitLog(config.LogPath, "SERVER: ")
	log.Println("Server started")

	theme, err := gui.FindTheme(*themeName)
	if err != nil {
		fatal(err)
	}

	store := pkg.NewStore()
	server := pkg.NewServer(config.Address(), store)
	if err := server.Listen(); err != nil {
		fatal(err)
	}

	var sshServer *gui.SSHServer
	if config.SSHAddr != "" {
		sshServer, err = gui.NewSSHServer(config.SSHAddr, config.HostKey, config.Address(), store, config.Frame)
		if err != nil {
			fatal(err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, server, sshServer, theme); err != nil {
		fatal(err)
	}
	log.Println("Server stopped")
}

func run(ctx context.Context, server *pkg.Server, sshServer *gui.SSHServer, theme gui.Theme) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Serve(ctx)
	})

	if sshServer != nil {
		g.Go(func() error {
			log.Printf("SSH viewers at %s", sshServer.Addr)
			err := sshServer.ListenAndServe()
			if errors.Is(err, ssh.ErrServerClosed) {
				return nil
			}
			return err
		})
		g.Go(func() error {
			<-ctx.Done()
			return sshServer.Close()
		})
	}

	clock := pkg.NewFrameClock(server.Store, config.Frame)
	g.Go(func() error {
		// The viewer ending stops everything else.
		defer cancel()
		if config.Headless {
			if err := gui.Stream(ctx, clock, os.Stdout, config.Address(), false, false); err != nil {
				log.Printf("Failed to print board: %v", err)
				return err
			}
			return nil
		}
		viewer := gui.NewViewer(server.Store, clock, config.Address(), theme)
		return viewer.Run(ctx)
	})

	return g.Wait()
}

func fatal(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "fenview: %v\n", err)
	log.Printf("fatal: %v", err)
	os.Exit(1)
}
