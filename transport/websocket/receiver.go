package websocket

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/wricardo/rotpuzzle/transport/queue"
)

// ErrBadHandshake is returned when the host refuses the upgrade
var ErrBadHandshake = errors.New("websocket handshake refused")

// HandshakeError carries the host's reply to a refused upgrade. Its body
// holds at most the first kilobyte of the response.
type HandshakeError struct {
	Response *http.Response
}

func (e *HandshakeError) Error() string {
	return fmt.Sprintf("%v: %s", ErrBadHandshake, e.Response.Status)
}

func (e *HandshakeError) Unwrap() error {
	return ErrBadHandshake
}

// DialFunc opens the transport connection under a WebSocket
type DialFunc func(ctx context.Context, network, addr string) (net.Conn, error)

// Receiver performs blocking receives against a queue host
type Receiver struct {
	dialer *websocket.Dialer
}

// NewReceiver creates a receiver. A nil dial uses plain TCP.
func NewReceiver(dial DialFunc) *Receiver {
	return &Receiver{
		dialer: &websocket.Dialer{
			NetDialContext:   dial,
			HandshakeTimeout: 45 * time.Second,
			ReadBufferSize:   queue.MessageLimit,
			WriteBufferSize:  queue.MessageLimit,
		},
	}
}

// Subscription is an open receive waiting on the host
type Subscription struct {
	conn *websocket.Conn
}

// Connect attaches to the queue at url and returns once the host has
// accepted the receive. Messages longer than limit are rejected.
//
// It returns queue.ErrInterrupted when ctx is cancelled and a
// *HandshakeError when the upgrade is refused.
func (r *Receiver) Connect(ctx context.Context, url string, limit int) (*Subscription, error) {
	conn, resp, err := r.dialer.DialContext(ctx, url, nil)
	if err != nil {
		if errors.Is(err, websocket.ErrBadHandshake) && resp != nil {
			return nil, &HandshakeError{Response: resp}
		}
		if ctx.Err() != nil {
			return nil, queue.ErrInterrupted
		}
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}

	conn.SetReadLimit(int64(limit))
	return &Subscription{conn: conn}, nil
}

// Receive connects to url and blocks until the host delivers one message
func (r *Receiver) Receive(ctx context.Context, url string, limit int) ([]byte, error) {
	sub, err := r.Connect(ctx, url, limit)
	if err != nil {
		return nil, err
	}
	defer sub.Close()

	return sub.Read(ctx)
}

// Read blocks until the host delivers the message.
//
// It returns queue.ErrInterrupted when ctx is cancelled and queue.ErrClosed
// when the host destroys the queue. A subscription delivers one message.
func (s *Subscription) Read(ctx context.Context) ([]byte, error) {
	stop := context.AfterFunc(ctx, func() {
		// Unblocks ReadMessage
		s.conn.Close()
	})
	defer stop()

	typ, msg, err := s.conn.ReadMessage()
	if err != nil {
		if ctx.Err() != nil {
			return nil, queue.ErrInterrupted
		}
		if websocket.IsCloseError(err, websocket.CloseGoingAway) {
			return nil, queue.ErrClosed
		}
		if errors.Is(err, websocket.ErrReadLimit) {
			return nil, queue.ErrMessageTooLarge
		}
		return nil, fmt.Errorf("receive: %w", err)
	}
	if typ != websocket.BinaryMessage {
		return nil, fmt.Errorf("receive: unexpected frame type %d", typ)
	}

	s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))

	return msg, nil
}

// Close drops the subscription. The host stops waiting without consuming
// a message.
func (s *Subscription) Close() error {
	return s.conn.Close()
}
