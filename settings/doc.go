// Package settings loads configuration shared by the puzzle commands.
//
// Values come from the environment, optionally seeded from a .env file in
// the working directory. Command line flags override them.
//
//	PUZZLE_SOCKET       path of the queue socket
//	PUZZLE_RUNTIME_DIR  directory holding the socket when PUZZLE_SOCKET is unset
//	PUZZLE_DEBUG        enable debug logging
//
// The default socket lives in the XDG runtime directory, so stale sockets
// from a crashed server vanish on logout.
package settings
