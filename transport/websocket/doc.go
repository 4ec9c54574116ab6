// Package websocket provides the blocking receive leg of the puzzle queues.
//
// Sending into a queue is a plain HTTP request, but a receive may block for
// as long as no client writes. The receive is therefore carried over a
// WebSocket: the host upgrades the request, waits on the queue and writes
// exactly one binary frame before closing normally.
//
// Close codes:
//
//   - 1000 (normal): one message was delivered.
//   - 1001 (going away): the queue was destroyed, the receiver sees
//     queue.ErrClosed.
//
// A receiver that disconnects before a message arrives cancels the wait on
// the host, and no message is consumed.
//
// Usage:
//
//	// Host side, inside an HTTP handler
//	websocket.ServeReceive(w, r, q, logger)
//
//	// Client side
//	rx := websocket.NewReceiver(dialUnix)
//	msg, err := rx.Receive(ctx, "ws://unix/queues/puzzle-client-queue/messages", queue.MessageLimit)
//
//	// Attach first when the message is triggered by a later request
//	sub, err := rx.Connect(ctx, url, queue.MessageLimit)
//	defer sub.Close()
//	// ... send the request ...
//	msg, err := sub.Read(ctx)
package websocket
