package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/qnkhuat/fenview/pkg"
	"golang.org/x/term"
)

func main() {
	config := pkg.DefaultConfig()
	flag.StringVar(&config.Host, "host", config.Host, "server address")
	flag.IntVar(&config.Port, "port", config.Port, "server port")
	logPath := flag.String("log", "", "path to log file, empty for stderr")
	pgnPath := flag.String("pgn", "", "replay every position of the game in this PGN file")
	moves := flag.String("moves", "", "replay space separated UCI moves, e.g. \"e2e4 e7e5\"")
	delay := flag.Duration("delay", pkg.DefaultSendDelay, "pause between positions")
	flag.Parse()

	pkg.InitLog(*logPath, "FENSEND: ")

	fens, err := positions(*pgnPath, *moves, flag.Args())
	if err != nil {
		fatal(err)
	}
	if len(fens) == 0 {
		fatal(fmt.Errorf("nothing to send"))
	}

	cl, err := pkg.Connect(config.Address())
	if err != nil {
		fatal(err)
	}
	defer cl.Close()
	cl.Delay = *delay

	if err := cl.SendAll(fens); err != nil {
		fatal(err)
	}
	log.Printf("Sent %d positions to %s", len(fens), config.Address())
}

// positions picks the records to send: a PGN file, a move list, the arguments,
// or lines from stdin, in that order.
func positions(pgnPath, moves string, args []string) ([]string, error) {
	switch {
	case pgnPath != "":
		f, err := os.Open(pgnPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return pkg.ReplayPGN(f)
	case moves != "":
		return pkg.ReplayMoves(strings.Fields(moves))
	case len(args) > 0:
		return args, nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Reading positions from stdin, one per line")
	}
	return pkg.ReadLines(os.Stdin)
}

func fatal(err error) {
	color.New(color.FgRed).Fprintf(os.Stderr, "fensend: %v\n", err)
	os.Exit(1)
}
