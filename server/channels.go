package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/wricardo/rotpuzzle/api"
	"github.com/wricardo/rotpuzzle/transport/queue"
	"golang.org/x/sync/errgroup"
)

const (
	// Time allowed for a posted response to be collected and for in-flight
	// deliveries to finish when the host stops.
	shutdownTimeout = 5 * time.Second

	// How often Close checks whether the response has been collected.
	collectInterval = 10 * time.Millisecond
)

// ChannelPair is the server's view of the request and response queues
type ChannelPair interface {
	// ReceiveRequest blocks for the next request. It returns
	// queue.ErrInterrupted when ctx is cancelled first.
	ReceiveRequest(ctx context.Context) (string, error)

	// SendResponse posts a response without blocking.
	SendResponse(text string) error

	// Close destroys both queues.
	Close() error
}

// Channels owns both puzzle queues and the host that exposes them
type Channels struct {
	registry   *queue.Registry
	requests   *queue.Queue
	responses  *queue.Queue
	socketPath string
	host       *api.Server
	httpServer *http.Server
	group      *errgroup.Group
	logger     *slog.Logger
	closeOnce  sync.Once
	closeErr   error
}

// OpenChannels creates both queues and starts serving them on socketPath.
// Stale queues and sockets from an earlier run are replaced.
func OpenChannels(socketPath string, logger *slog.Logger) (*Channels, error) {
	registry := queue.NewRegistry()

	requests, err := registry.Create(queue.ServerQueue, queue.DefaultAttr())
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", queue.ServerQueue, err)
	}
	responses, err := registry.Create(queue.ClientQueue, queue.DefaultAttr())
	if err != nil {
		registry.UnlinkAll()
		return nil, fmt.Errorf("create %s: %w", queue.ClientQueue, err)
	}

	listener, err := api.Listen(socketPath)
	if err != nil {
		registry.UnlinkAll()
		return nil, err
	}

	host := api.NewServer(registry, logger)
	c := &Channels{
		registry:   registry,
		requests:   requests,
		responses:  responses,
		socketPath: socketPath,
		host:       host,
		httpServer: &http.Server{
			Handler:           host,
			ReadHeaderTimeout: 10 * time.Second,
		},
		group:  &errgroup.Group{},
		logger: logger,
	}

	c.group.Go(func() error {
		if err := c.httpServer.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve queues: %w", err)
		}
		return nil
	})

	logger.Info("queues listening on socket", "path", socketPath,
		"requests", queue.ServerQueue, "responses", queue.ClientQueue)

	return c, nil
}

// SocketPath returns the path the queues are served on
func (c *Channels) SocketPath() string {
	return c.socketPath
}

// ReceiveRequest blocks for the next request and returns its text
func (c *Channels) ReceiveRequest(ctx context.Context) (string, error) {
	msg, err := c.requests.Receive(ctx)
	if err != nil {
		return "", err
	}
	return queue.Decode(msg, queue.MessageLimit), nil
}

// SendResponse posts text as one NUL-terminated response
func (c *Channels) SendResponse(text string) error {
	if err := c.responses.Send(queue.Encode(text)); err != nil {
		return fmt.Errorf("send %s: %w", queue.ClientQueue, err)
	}
	return nil
}

// Close waits for a posted response to be collected, then unlinks both
// queues, stops the host and removes the socket. It is safe to call more
// than once.
func (c *Channels) Close() error {
	c.closeOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		c.awaitCollection(ctx)

		// Waiting receivers see a going-away close before the host stops
		c.registry.UnlinkAll()

		if err := c.httpServer.Shutdown(ctx); err != nil {
			c.logger.Warn("queue host shutdown", "error", err)
			c.httpServer.Close()
		}
		if err := c.host.Wait(ctx); err != nil {
			c.logger.Warn("receive still in flight at shutdown", "error", err)
		}
		c.closeErr = c.group.Wait()

		if err := os.Remove(c.socketPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			c.logger.Warn("failed to remove socket", "path", c.socketPath, "error", err)
		}

		c.logger.Debug("queues destroyed", "path", c.socketPath)
	})

	return c.closeErr
}

// awaitCollection blocks while the response queue holds an unread message
func (c *Channels) awaitCollection(ctx context.Context) {
	if c.responses.Len() == 0 {
		return
	}

	ticker := time.NewTicker(collectInterval)
	defer ticker.Stop()

	for c.responses.Len() > 0 {
		select {
		case <-ctx.Done():
			c.logger.Warn("response not collected before shutdown", "queue", queue.ClientQueue)
			return
		case <-ticker.C:
		}
	}
}
