package websocket

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/wricardo/rotpuzzle/transport/queue"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Maximum control frame size accepted from the receiving peer.
	maxPeerMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  queue.MessageLimit,
	WriteBufferSize: queue.MessageLimit,
	CheckOrigin: func(r *http.Request) bool {
		// Only local processes reach the socket
		return true
	},
}

// ServeReceive upgrades the request and delivers one message from q.
//
// The handler blocks until a message arrives, the queue is destroyed or the
// peer goes away. A message is written as a single binary frame followed by
// a normal close. A destroyed queue is reported with a going-away close.
func ServeReceive(w http.ResponseWriter, r *http.Request, q *queue.Queue, logger *slog.Logger) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "queue", q.Name(), "error", err)
		return
	}
	defer conn.Close()

	// A hijacked connection no longer cancels r.Context on disconnect, so the
	// read side watches for the peer leaving.
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go readPump(conn, cancel)

	msg, err := q.Receive(ctx)
	switch {
	case errors.Is(err, queue.ErrClosed):
		writeClose(conn, websocket.CloseGoingAway, "queue closed")
		return
	case err != nil:
		logger.Debug("receiver left before a message arrived", "queue", q.Name())
		return
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
		logger.Warn("message lost, receiver went away during delivery",
			"queue", q.Name(), "bytes", len(msg), "error", err)
		return
	}
	writeClose(conn, websocket.CloseNormalClosure, "")
}

// readPump drains the connection and cancels the receive once the peer is gone
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(maxPeerMessageSize)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeClose(conn *websocket.Conn, code int, text string) {
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(code, text),
		time.Now().Add(writeWait))
}
