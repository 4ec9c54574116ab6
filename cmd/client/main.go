// Command puzzle sends one command to a running puzzle server and prints
// the reply.
//
//	puzzle clockwise ROW COL
//	puzzle counter ROW COL
//	puzzle show
//	puzzle mcp
//
// Rotations print OK or solved. A rejected command prints error and exits
// with status 1. The mcp subcommand serves the same operations as MCP tools
// over stdio.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/rotpuzzle/api"
	"github.com/wricardo/rotpuzzle/game/service"
	"github.com/wricardo/rotpuzzle/settings"
	"github.com/wricardo/rotpuzzle/transport/mcp"
	"github.com/wricardo/rotpuzzle/transport/queue"
)

// Version information
const Version = "1.0.0"

// Printed for malformed invocations and rejected commands
const usageError = service.ReplyError

func main() {
	if err := newCommand(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "puzzle",
		Usage:     "rotation puzzle client",
		Version:   Version,
		ArgsUsage: "clockwise|counter ROW COL | show",
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
		Commands: []*cli.Command{
			{
				Name:      service.WordClockwise,
				Usage:     "rotate the 2x2 block at ROW COL clockwise",
				ArgsUsage: "ROW COL",
				// Negative coordinates are arguments, the server rejects them
				SkipFlagParsing: true,
				Action:          rotateAction(service.WordClockwise, stdout, stderr),
			},
			{
				Name:            service.WordCounter,
				Usage:           "rotate the 2x2 block at ROW COL counterclockwise",
				ArgsUsage:       "ROW COL",
				SkipFlagParsing: true,
				Action:          rotateAction(service.WordCounter, stdout, stderr),
			},
			{
				Name:  service.WordShow,
				Usage: "print the grid",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() != 0 {
						return cli.Exit(usageError, 1)
					}
					reply, err := exchange(ctx, cmd, stderr, service.WordShow)
					if err != nil {
						return err
					}
					fmt.Fprint(stdout, reply)
					return nil
				},
			},
			{
				Name:  "mcp",
				Usage: "serve rotate and show as MCP tools over stdio",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					client, err := newAPIClient(cmd, stderr)
					if err != nil {
						return err
					}
					return server.ServeStdio(mcp.NewClient(client, Version).GetMCPServer())
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return cli.Exit("usage: puzzle clockwise|counter ROW COL | show", 1)
			}
			// Unknown command word
			return cli.Exit(usageError, 1)
		},
	}
}

// rotateAction sends "<word> ROW COL" as given. The server validates the
// coordinates.
func rotateAction(word string, stdout, stderr io.Writer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if cmd.NArg() != 2 {
			return cli.Exit(usageError, 1)
		}

		request := fmt.Sprintf("%s %s %s", word, cmd.Args().Get(0), cmd.Args().Get(1))
		reply, err := exchange(ctx, cmd, stderr, request)
		if err != nil {
			return err
		}

		if reply != service.ReplyOK && reply != service.ReplySolved {
			fmt.Fprintln(stdout, usageError)
			return cli.Exit("", 1)
		}
		fmt.Fprintln(stdout, reply)
		return nil
	}
}

func newAPIClient(cmd *cli.Command, stderr io.Writer) (*api.Client, error) {
	logger := settings.NewLogger(stderr, cmd.Bool("debug"))
	cfg, err := settings.Load(logger)
	if err != nil {
		return nil, cli.Exit(err.Error(), 1)
	}

	socketPath := cmd.String("socket")
	if socketPath == "" {
		socketPath = cfg.Socket
	}
	logger.Debug("using queue socket", "path", socketPath)

	return api.NewClient(socketPath), nil
}

// exchange opens both queues, attaches to the reply queue, sends request
// and waits for the reply. Each leg fails with its own message.
func exchange(ctx context.Context, cmd *cli.Command, stderr io.Writer, request string) (string, error) {
	client, err := newAPIClient(cmd, stderr)
	if err != nil {
		return "", err
	}

	requests, err := client.Open(ctx, queue.ServerQueue)
	if err != nil {
		return "", exitf("Unable to open server queue", err)
	}
	responses, err := client.Open(ctx, queue.ClientQueue)
	if err != nil {
		return "", exitf("Unable to open client queue", err)
	}

	// Attached before sending so a reply posted during shutdown still arrives
	sub, err := responses.Subscribe(ctx)
	if err != nil {
		return "", exitf("Unable to open client queue", err)
	}
	defer sub.Close()

	if err := requests.Send(ctx, request); err != nil {
		return "", exitf("Failed to send message to server", err)
	}

	reply, err := sub.Receive(ctx)
	if err != nil {
		return "", exitf("Failed to receive response from server", err)
	}

	return reply, nil
}

// exitf adds the cause to message when it says more than the message does
func exitf(message string, err error) error {
	if errors.Is(err, queue.ErrNotFound) {
		return cli.Exit(message+": is the server running?", 1)
	}
	return cli.Exit(fmt.Sprintf("%s: %v", message, err), 1)
}
