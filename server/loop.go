package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/wricardo/rotpuzzle/game/engine"
	"github.com/wricardo/rotpuzzle/game/service"
	"github.com/wricardo/rotpuzzle/transport/queue"
)

// Loop serves puzzle requests until shutdown is requested
type Loop struct {
	grid     *engine.Grid
	channels ChannelPair
	token    *Token
	out      io.Writer
	logger   *slog.Logger
	state    atomic.Int32
}

// Option configures a Loop
type Option func(*Loop)

// WithOutput sets where the final grid is printed. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(l *Loop) {
		l.out = w
	}
}

// WithLogger sets the loop logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// NewLoop creates a loop in the Running state. The loop owns grid from now
// on and closes channels when it returns.
func NewLoop(grid *engine.Grid, channels ChannelPair, token *Token, opts ...Option) *Loop {
	l := &Loop{
		grid:     grid,
		channels: channels,
		token:    token,
		out:      os.Stdout,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.state.Store(int32(Running))
	return l
}

// State returns the current lifecycle phase
func (l *Loop) State() State {
	s := State(l.state.Load())
	if s == Running && l.token.Requested() {
		return Draining
	}
	return s
}

// Run serves one request per cycle until the token is requested.
//
// On a clean shutdown it prints a blank line and the final grid, closes the
// channels and returns nil. A receive failure other than an interruption,
// or any send failure, closes the channels without printing the grid and
// returns the error.
func (l *Loop) Run() error {
	l.logger.Info("server running", "rows", l.grid.Rows(), "cols", l.grid.Cols(),
		"solved", l.grid.IsSolved())

	for !l.token.Requested() {
		request, err := l.channels.ReceiveRequest(l.token.Context())
		if errors.Is(err, queue.ErrInterrupted) {
			continue
		}
		if err != nil {
			return l.fail(fmt.Errorf("receive request: %w", err))
		}

		id := uuid.NewString()
		reply := service.Interpret(request, l.grid)
		l.logger.Debug("request handled", "request_id", id, "request", request,
			"reply_bytes", len(reply), "solved", l.grid.IsSolved())

		if err := l.channels.SendResponse(reply); err != nil {
			return l.fail(fmt.Errorf("send response %s: %w", id, err))
		}
	}

	l.logger.Info("shutdown requested", "state", l.State())

	fmt.Fprint(l.out, "\n"+l.grid.Render())

	if err := l.channels.Close(); err != nil {
		l.logger.Warn("closing channels", "error", err)
	}
	l.state.Store(int32(Stopped))
	l.logger.Info("server stopped", "state", Stopped)

	return nil
}

func (l *Loop) fail(err error) error {
	l.logger.Error("channel failure", "error", err)

	if cerr := l.channels.Close(); cerr != nil {
		l.logger.Warn("closing channels", "error", cerr)
	}
	l.state.Store(int32(Stopped))

	return err
}
