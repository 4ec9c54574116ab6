package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings holds values shared by the server and client commands
type Settings struct {
	Socket     string `env:"PUZZLE_SOCKET"`      // Queue socket path, derived from RuntimeDir when empty.
	RuntimeDir string `env:"PUZZLE_RUNTIME_DIR"` // Directory for the socket.
	Debug      bool   `env:"PUZZLE_DEBUG" envDefault:"false"`
}

// Load reads an optional .env file from the working directory and then the
// environment. A missing .env file is not an error.
func Load(logger *slog.Logger) (*Settings, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("error loading .env file", "error", err)
		}
	} else {
		logger.Debug("loaded environment variables from .env file")
	}

	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if s.Socket == "" {
		s.Socket = Socket(s.RuntimeDir)
	}

	return &s, nil
}
