package queue

import (
	"bytes"
	"context"
	"fmt"
	"sync"
)

const (
	// Maximum length of a message, terminator included.
	MessageLimit = 1024

	// Number of undelivered messages a puzzle queue can hold.
	SingleSlot = 1
)

// Well-known queue names
const (
	ServerQueue = "puzzle-server-queue" // Requests, client to server.
	ClientQueue = "puzzle-client-queue" // Responses, server to client.
)

// Attr holds the capacity settings of a queue
type Attr struct {
	MaxMessages int `json:"max_messages"` // Undelivered messages the queue can hold.
	MessageSize int `json:"message_size"` // Maximum message length in bytes.
}

// DefaultAttr returns the attributes used by the puzzle channels
func DefaultAttr() Attr {
	return Attr{MaxMessages: SingleSlot, MessageSize: MessageLimit}
}

func (a Attr) validate() error {
	if a.MaxMessages < 1 {
		return fmt.Errorf("%w: max_messages must be positive, got %d", ErrInvalidAttr, a.MaxMessages)
	}
	if a.MessageSize < 1 {
		return fmt.Errorf("%w: message_size must be positive, got %d", ErrInvalidAttr, a.MessageSize)
	}
	return nil
}

// Queue is a named, bounded message queue
type Queue struct {
	name   string
	attr   Attr
	slots  chan []byte   // Buffered to attr.MaxMessages.
	closed chan struct{} // Closed once when the queue is unlinked.
	once   sync.Once
}

// New creates a standalone queue. Most callers go through Registry.Create.
func New(name string, attr Attr) (*Queue, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if err := attr.validate(); err != nil {
		return nil, err
	}

	return &Queue{
		name:   name,
		attr:   attr,
		slots:  make(chan []byte, attr.MaxMessages),
		closed: make(chan struct{}),
	}, nil
}

// Name returns the queue name
func (q *Queue) Name() string {
	return q.name
}

// Attr returns the queue attributes
func (q *Queue) Attr() Attr {
	return q.attr
}

// Len returns the number of undelivered messages
func (q *Queue) Len() int {
	return len(q.slots)
}

// Send posts one message without blocking.
//
// The message is copied. Fails with ErrMessageTooLarge if it exceeds the
// size limit, ErrFull if the queue already holds MaxMessages unread
// messages, and ErrClosed once the queue has been unlinked.
func (q *Queue) Send(msg []byte) error {
	if len(msg) > q.attr.MessageSize {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrMessageTooLarge, len(msg), q.attr.MessageSize)
	}

	select {
	case <-q.closed:
		return ErrClosed
	default:
	}

	select {
	case q.slots <- bytes.Clone(msg):
		return nil
	default:
		return ErrFull
	}
}

// Receive blocks until a message is available and removes it from the
// queue.
//
// It returns ErrInterrupted when ctx is cancelled first, and no message is
// consumed in that case. A message posted before the queue was unlinked is
// still delivered; after that Receive returns ErrClosed.
func (q *Queue) Receive(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ErrInterrupted
	default:
	}

	select {
	case msg := <-q.slots:
		return msg, nil
	case <-q.closed:
		return q.drain()
	case <-ctx.Done():
		return nil, ErrInterrupted
	}
}

// drain returns a message left behind by an unlinked queue
func (q *Queue) drain() ([]byte, error) {
	select {
	case msg := <-q.slots:
		return msg, nil
	default:
		return nil, ErrClosed
	}
}

// close marks the queue destroyed. Sends fail from then on and blocked
// receivers return ErrClosed once no message is left.
func (q *Queue) close() {
	q.once.Do(func() { close(q.closed) })
}

// Closed reports whether the queue has been unlinked
func (q *Queue) Closed() bool {
	select {
	case <-q.closed:
		return true
	default:
		return false
	}
}

// Encode returns the wire form of a text message: the text followed by a NUL
func Encode(text string) []byte {
	msg := make([]byte, len(text)+1)
	copy(msg, text)
	return msg
}

// Decode returns the text of a wire message, cut at the first NUL and at
// limit bytes
func Decode(msg []byte, limit int) string {
	if limit >= 0 && len(msg) > limit {
		msg = msg[:limit]
	}
	if i := bytes.IndexByte(msg, 0); i >= 0 {
		msg = msg[:i]
	}
	return string(msg)
}
