package server

import (
	"context"
	"os"
	"os/signal"
	"sync/atomic"
)

// Token carries a shutdown request from a signal watcher to the loop.
//
// Request only stores a flag and cancels a context, so it is safe to call
// from any goroutine, any number of times.
type Token struct {
	requested atomic.Bool
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewToken creates a token with no shutdown requested
func NewToken() *Token {
	ctx, cancel := context.WithCancel(context.Background())
	return &Token{ctx: ctx, cancel: cancel}
}

// Request asks the loop to shut down
func (t *Token) Request() {
	t.requested.Store(true)
	t.cancel()
}

// Requested reports whether shutdown was asked for
func (t *Token) Requested() bool {
	return t.requested.Load()
}

// Context is cancelled once shutdown is requested. Blocking receives use it
// to return early.
func (t *Token) Context() context.Context {
	return t.ctx
}

// NotifyOn requests shutdown when one of sigs arrives. The returned stop
// function detaches the watcher.
func (t *Token) NotifyOn(sigs ...os.Signal) (stop func()) {
	sigChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigChan, sigs...)

	go func() {
		select {
		case <-sigChan:
			t.Request()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}
