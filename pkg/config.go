package pkg

import (
	"os"
	"strconv"
	"time"
)

// Config holds the settings of the server command.
type Config struct {
	Host     string
	Port     int
	LogPath  string
	SSHAddr  string
	HostKey  string
	Frame    time.Duration
	Headless bool
}

// DefaultConfig returns the defaults, overridden by FENVIEW_HOST and FENVIEW_PORT.
func DefaultConfig() Config {
	c := Config{
		Host:    DefaultHost,
		Port:    DefaultPort,
		LogPath: "./log",
		Frame:   DefaultFrameInterval,
	}
	if host := os.Getenv("FENVIEW_HOST"); host != "" {
		c.Host = host
	}
	if port, err := strconv.Atoi(os.Getenv("FENVIEW_PORT")); err == nil && port > 0 {
		c.Port = port
	}
	return c
}

func (c Config) Address() string {
	return Address(c.Host, c.Port)
}
