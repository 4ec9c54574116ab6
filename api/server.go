package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/gorilla/mux"
	"github.com/wricardo/rotpuzzle/transport/queue"
	"github.com/wricardo/rotpuzzle/transport/websocket"
)

const (
	// Directory mode for the socket's parent directory.
	dirMode = 0o700

	// Only the owner may connect.
	socketMode = 0o600
)

// Error codes carried in error bodies
const (
	CodeFull       = "full"
	CodeTooLarge   = "too_large"
	CodeNotFound   = "not_found"
	CodeClosed     = "closed"
	CodeBadRequest = "bad_request"
)

// ErrorBody is the JSON body of every failed request
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// QueueInfo describes a hosted queue
type QueueInfo struct {
	Name    string     `json:"name"`
	Attr    queue.Attr `json:"attr"`
	Pending int        `json:"pending"`
}

// Server exposes a queue registry over HTTP
type Server struct {
	registry  *queue.Registry
	logger    *slog.Logger
	router    *mux.Router
	receivers sync.WaitGroup // Upgraded receives, which http.Server.Shutdown does not track.
}

// NewServer creates a new queue host
func NewServer(registry *queue.Registry, logger *slog.Logger) *Server {
	s := &Server{
		registry: registry,
		logger:   logger,
		router:   mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all queue routes
func (s *Server) setupRoutes() {
	s.router.HandleFunc("/queues", s.handleListQueues).Methods("GET")
	s.router.HandleFunc("/queues/{name}", s.handleGetQueue).Methods("GET")
	s.router.HandleFunc("/queues/{name}/messages", s.handleSend).Methods("POST")
	// Blocking receive, upgraded to a WebSocket
	s.router.HandleFunc("/queues/{name}/messages", s.handleReceive).Methods("GET")
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Wait blocks until every upgraded receive has finished or ctx is done.
// Call it after http.Server.Shutdown so no new receive can start.
func (s *Server) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.receivers.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Listen creates the Unix socket listener, removing any stale socket left by
// an earlier run, and restricts it to the owner
func Listen(socketPath string) (net.Listener, error) {
	if err := os.MkdirAll(filepath.Dir(socketPath), dirMode); err != nil {
		return nil, fmt.Errorf("create socket directory: %w", err)
	}

	os.Remove(socketPath)

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", socketPath, err)
	}

	if err := os.Chmod(socketPath, socketMode); err != nil {
		listener.Close()
		return nil, fmt.Errorf("chmod socket %s: %w", socketPath, err)
	}

	return listener, nil
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, code string, message string) {
	respondJSON(w, status, ErrorBody{Error: message, Code: code})
}

// respondQueueError maps a queue error to its status and code
func respondQueueError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, queue.ErrNotFound):
		respondError(w, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, queue.ErrFull):
		respondError(w, http.StatusConflict, CodeFull, err.Error())
	case errors.Is(err, queue.ErrMessageTooLarge):
		respondError(w, http.StatusRequestEntityTooLarge, CodeTooLarge, err.Error())
	case errors.Is(err, queue.ErrClosed):
		respondError(w, http.StatusGone, CodeClosed, err.Error())
	default:
		respondError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
	}
}

func (s *Server) openQueue(w http.ResponseWriter, r *http.Request) (*queue.Queue, bool) {
	name := mux.Vars(r)["name"]

	q, err := s.registry.Open(name)
	if err != nil {
		respondQueueError(w, fmt.Errorf("%w: %s", err, name))
		return nil, false
	}
	return q, true
}

// Queue Handlers

func (s *Server) handleListQueues(w http.ResponseWriter, r *http.Request) {
	names := s.registry.Names()
	queues := make([]QueueInfo, 0, len(names))
	for _, name := range names {
		if q, err := s.registry.Open(name); err == nil {
			queues = append(queues, queueInfo(q))
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":  len(queues),
		"queues": queues,
	})
}

func (s *Server) handleGetQueue(w http.ResponseWriter, r *http.Request) {
	q, ok := s.openQueue(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, queueInfo(q))
}

func (s *Server) handleSend(w http.ResponseWriter, r *http.Request) {
	q, ok := s.openQueue(w, r)
	if !ok {
		return
	}

	// One byte over the limit is enough to reject the message
	limit := int64(q.Attr().MessageSize) + 1
	msg, err := io.ReadAll(io.LimitReader(r.Body, limit))
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body")
		return
	}

	if err := q.Send(msg); err != nil {
		s.logger.Debug("send rejected", "queue", q.Name(), "bytes", len(msg), "error", err)
		respondQueueError(w, err)
		return
	}

	s.logger.Debug("message queued", "queue", q.Name(), "bytes", len(msg))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReceive(w http.ResponseWriter, r *http.Request) {
	q, ok := s.openQueue(w, r)
	if !ok {
		return
	}

	s.receivers.Add(1)
	defer s.receivers.Done()

	websocket.ServeReceive(w, r, q, s.logger)
}

func queueInfo(q *queue.Queue) QueueInfo {
	return QueueInfo{Name: q.Name(), Attr: q.Attr(), Pending: q.Len()}
}
