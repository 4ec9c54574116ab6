// Command bruteforcer solves the puzzle held by a running server. It reads
// the grid with show, searches breadth-first for a shortest sequence of
// rotations and plays it one request at a time.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/rotpuzzle/api"
	"github.com/wricardo/rotpuzzle/game/service"
	"github.com/wricardo/rotpuzzle/settings"
)

func main() {
	cmd := &cli.Command{
		Name:  "bruteforcer",
		Usage: "solve the puzzle held by a running server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "socket", Usage: "queue socket path"},
			&cli.IntFlag{Name: "max-states", Value: 2_000_000, Usage: "grids to explore before giving up"},
			&cli.BoolFlag{Name: "dry-run", Usage: "print the plan without sending moves"},
			&cli.BoolFlag{Name: "v", Usage: "verbose output"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	logger := settings.NewLogger(os.Stderr, cmd.Bool("v"))
	cfg, err := settings.Load(logger)
	if err != nil {
		return err
	}

	socketPath := cmd.String("socket")
	if socketPath == "" {
		socketPath = cfg.Socket
	}

	client := api.NewClient(socketPath)
	logger.Info("connecting to puzzle server", "socket", socketPath)

	plan, err := solve(ctx, client, int(cmd.Int("max-states")))
	if err != nil {
		return err
	}
	logger.Info("plan found", "moves", len(plan))

	if cmd.Bool("dry-run") {
		for _, move := range plan {
			fmt.Println(move.Request())
		}
		return nil
	}

	return play(ctx, client, plan, logger.Debug)
}

// solve reads the current grid from the server and plans a solution
func solve(ctx context.Context, client *api.Client, maxStates int) ([]Move, error) {
	render, err := client.Request(ctx, service.WordShow)
	if err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}

	grid, err := parseRender(render)
	if err != nil {
		return nil, fmt.Errorf("parse grid: %w", err)
	}

	return BFS(grid, maxStates)
}

// play sends each move and checks the server agrees with the plan
func play(ctx context.Context, client *api.Client, plan []Move, debug func(string, ...any)) error {
	for i, move := range plan {
		reply, err := client.Request(ctx, move.Request())
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		debug("move played", "n", i+1, "request", move.Request(), "reply", reply)

		last := i == len(plan)-1
		switch {
		case reply == service.ReplySolved && last:
			fmt.Printf("🎉 Solved in %d moves\n", len(plan))
			return nil
		case reply == service.ReplyOK && !last:
		default:
			return fmt.Errorf("move %d (%s): unexpected reply %q, was the grid changed meanwhile?", i+1, move.Request(), reply)
		}
	}

	fmt.Println("✅ Already solved")
	return nil
}
