// Package queue provides named, bounded, single-slot message queues.
//
// A Queue holds at most Attr.MaxMessages undelivered messages (one for the
// puzzle channels) of at most Attr.MessageSize bytes. Sending never blocks:
// a send into a full queue fails with ErrFull and an oversized message fails
// with ErrMessageTooLarge. Receiving blocks until a message arrives, the
// context is cancelled (ErrInterrupted) or the queue is unlinked
// (ErrClosed).
//
// Queues are kept by name in a Registry. Creating a name that already exists
// destroys the old instance first, so stale queues from an earlier run never
// leak messages into a new one.
//
// Messages are NUL-terminated text on the wire. Encode appends the
// terminator and Decode cuts a received payload at the first NUL and at the
// size limit.
//
// Example usage:
//
//	reg := queue.NewRegistry()
//	q, err := reg.Create("puzzle-server-queue", queue.DefaultAttr())
//	if err != nil {
//	    return err
//	}
//	defer reg.Unlink("puzzle-server-queue")
//
//	msg, err := q.Receive(ctx)
//	if errors.Is(err, queue.ErrInterrupted) {
//	    // ctx was cancelled, re-check shutdown state
//	}
package queue
