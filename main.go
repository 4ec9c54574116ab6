// Command puzzle-server holds a rotation puzzle and serves moves from
// puzzle clients until it is interrupted.
//
// The grid is loaded from PUZZLE-FILE. Requests and responses travel over
// two single-slot queues hosted on a Unix socket. On SIGINT or SIGTERM the
// server prints a blank line and the final grid to stdout and destroys the
// queues.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/rotpuzzle/game/config"
	"github.com/wricardo/rotpuzzle/server"
	"github.com/wricardo/rotpuzzle/settings"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Rotation Puzzle Server"
)

// openChannels creates the queues; tests replace it to observe startup
var openChannels = server.OpenChannels

// main builds the command and exits non-zero on any failure
func main() {
	if err := newCommand(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newCommand returns the server command writing the final grid to stdout
// and logs to stderr
func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "puzzle-server",
		Usage:     AppName,
		Version:   Version,
		ArgsUsage: "PUZZLE-FILE",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "socket",
				Usage: "queue socket path (default $PUZZLE_SOCKET or the XDG runtime dir)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runServer(ctx, cmd, stdout, stderr)
		},
	}
}

// runServer loads the puzzle, opens the queues and runs the loop until
// ctx is done or a shutdown signal arrives
func runServer(ctx context.Context, cmd *cli.Command, stdout, stderr io.Writer) error {
	if cmd.NArg() != 1 {
		return cli.Exit("usage: server PUZZLE-FILE", 1)
	}
	path := cmd.Args().First()

	logger := settings.NewLogger(stderr, cmd.Bool("debug"))
	cfg, err := settings.Load(logger)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if cfg.Debug && !cmd.Bool("debug") {
		logger = settings.NewLogger(stderr, true)
	}

	socketPath := cmd.String("socket")
	if socketPath == "" {
		socketPath = cfg.Socket
	}

	grid, err := config.Load(path)
	if err != nil {
		logger.Debug("puzzle rejected", "path", path, "error", err)
		return cli.Exit(fmt.Sprintf("Invalid input file: %s", path), 1)
	}

	// Watch for signals before the socket exists so an early interrupt
	// still removes it
	token := server.NewToken()
	stop := token.NotifyOn(os.Interrupt, syscall.SIGTERM)
	defer stop()
	// The command context ends the loop as a signal would
	stopCtx := context.AfterFunc(ctx, token.Request)
	defer stopCtx()

	channels, err := openChannels(socketPath, logger)
	if err != nil {
		logger.Error("queue setup failed", "path", socketPath, "error", err)
		return cli.Exit("Can't create the needed message queues", 1)
	}

	loop := server.NewLoop(grid, channels, token,
		server.WithOutput(stdout),
		server.WithLogger(logger),
	)
	if err := loop.Run(); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}
