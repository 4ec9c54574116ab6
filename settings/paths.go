package settings

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// Name used for directory naming.
	appName = "rotpuzzle"

	// File name of the queue socket.
	socketName = "queues.sock"
)

// Runtime returns the default directory for runtime files.
//
//	Linux:   $XDG_RUNTIME_DIR/rotpuzzle or /run/user/<uid>/rotpuzzle
//	macOS:   ~/Library/Caches/rotpuzzle/run
func Runtime() string {
	if xdg.RuntimeDir != "" {
		return filepath.Join(xdg.RuntimeDir, appName)
	}
	return filepath.Join(xdg.CacheHome, appName, "run")
}

// Socket returns the default path of the queue socket inside dir, or inside
// Runtime when dir is empty
func Socket(dir string) string {
	if dir == "" {
		dir = Runtime()
	}
	return filepath.Join(dir, socketName)
}
