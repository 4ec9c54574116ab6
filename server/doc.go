// Package server runs the puzzle server loop.
//
// The loop owns the Grid. Each cycle it blocks on the request queue, feeds
// the request to the command interpreter and posts the reply into the
// response queue. Exactly one command is handled per cycle, so at most one
// message is ever in flight in each direction.
//
// Core Types:
//
//   - Loop: the run/shutdown state machine
//   - Token: shutdown request shared with the signal watcher
//   - Channels: the request/response queues, hosted on a Unix socket
//
// States:
//
//	Running --Token.Request--> Draining --loop exits--> Stopped
//	Running --channel failure------------------------> Stopped
//
// Shutdown:
//
// A signal handler only calls Token.Request, which sets a flag and cancels
// the token context. A receive blocked at that moment returns
// queue.ErrInterrupted, the loop sees the flag and exits, prints the final
// grid and destroys the queues.
//
// Usage:
//
//	channels, err := server.OpenChannels(socketPath, logger)
//	token := server.NewToken()
//	stop := token.NotifyOn(os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	err = server.NewLoop(grid, channels, token).Run()
package server
