// Package api hosts the puzzle queues for other processes.
//
// The server process owns every queue. It serves them on a Unix domain
// socket so that short-lived clients can post requests and wait for
// responses without sharing memory with it.
//
// Endpoints:
//
//   - GET /queues - List hosted queues
//   - GET /queues/{name} - Queue attributes, 404 when the queue is absent
//   - POST /queues/{name}/messages - Send the raw request body as one message
//   - GET /queues/{name}/messages - Blocking receive, upgraded to a WebSocket
//
// Status Codes:
//
// A send answers 204 on success. Failures carry a JSON body of the form
// {"error": "...", "code": "..."}:
//
//   - 404 not_found: no such queue
//   - 409 full: the queue already holds an unread message
//   - 413 too_large: the message exceeds the queue's size limit
//   - 410 closed: the queue was destroyed
//
// Client:
//
// Client is the counterpart used by the puzzle command. It maps error codes
// back to the sentinel errors of package queue, so callers can use
// errors.Is(err, queue.ErrFull) regardless of the transport.
//
// Usage:
//
//	listener, err := api.Listen(socketPath)
//	srv := &http.Server{Handler: api.NewServer(registry, logger)}
//	go srv.Serve(listener)
//
//	client := api.NewClient(socketPath)
//	reply, err := client.Request(ctx, "clockwise 0 0")
package api
