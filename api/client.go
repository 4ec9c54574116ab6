package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/wricardo/rotpuzzle/transport/queue"
	"github.com/wricardo/rotpuzzle/transport/websocket"
)

// Host placeholder for requests that travel over the Unix socket
const socketHost = "unix"

// Client opens queues hosted by a puzzle server
type Client struct {
	baseURL    string
	wsURL      string
	httpClient *http.Client
	receiver   *websocket.Receiver
}

// NewClient creates a client that reaches the host over socketPath
func NewClient(socketPath string) *Client {
	dial := func(ctx context.Context, _, _ string) (net.Conn, error) {
		var d net.Dialer
		return d.DialContext(ctx, "unix", socketPath)
	}

	// No timeout: a receive blocks until the server answers
	httpClient := &http.Client{
		Transport: &http.Transport{DialContext: dial},
	}

	return newClient("http://"+socketHost, httpClient, websocket.NewReceiver(dial))
}

func newClient(baseURL string, httpClient *http.Client, receiver *websocket.Receiver) *Client {
	u, _ := url.Parse(baseURL)
	ws := *u
	ws.Scheme = "ws"
	if u.Scheme == "https" {
		ws.Scheme = "wss"
	}

	return &Client{
		baseURL:    baseURL,
		wsURL:      ws.String(),
		httpClient: httpClient,
		receiver:   receiver,
	}
}

// Handle is an open queue
type Handle struct {
	client *Client
	name   string
	attr   queue.Attr
}

// Open opens the named queue, failing with queue.ErrNotFound when the host
// does not have it
func (c *Client) Open(ctx context.Context, name string) (*Handle, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.queuePath(name), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open %s: %w", name, decodeError(resp))
	}

	var info QueueInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("open %s: decode attributes: %w", name, err)
	}

	return &Handle{client: c, name: name, attr: info.Attr}, nil
}

// Name returns the queue name
func (h *Handle) Name() string {
	return h.name
}

// Attr returns the attributes reported by the host
func (h *Handle) Attr() queue.Attr {
	return h.attr
}

// Send posts text as one NUL-terminated message
func (h *Handle) Send(ctx context.Context, text string) error {
	msg := queue.Encode(text)
	if len(msg) > h.attr.MessageSize {
		return fmt.Errorf("send %s: %w", h.name, queue.ErrMessageTooLarge)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", h.client.queuePath(h.name)+"/messages", bytes.NewReader(msg))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := h.client.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send %s: %w", h.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("send %s: %w", h.name, decodeError(resp))
	}

	return nil
}

// Receive blocks until a message arrives and returns its text
func (h *Handle) Receive(ctx context.Context) (string, error) {
	sub, err := h.Subscribe(ctx)
	if err != nil {
		return "", err
	}
	defer sub.Close()

	return sub.Receive(ctx)
}

// Subscription is a receive attached to a queue before its message is sent
type Subscription struct {
	handle *Handle
	sub    *websocket.Subscription
}

// Subscribe attaches a receive to the queue. A message posted from then on
// is delivered to the subscription even if the host destroys the queue
// right after.
func (h *Handle) Subscribe(ctx context.Context) (*Subscription, error) {
	u := h.client.wsURL + "/queues/" + url.PathEscape(h.name) + "/messages"

	sub, err := h.client.receiver.Connect(ctx, u, h.attr.MessageSize)
	if err != nil {
		var hsErr *websocket.HandshakeError
		if errors.As(err, &hsErr) {
			err = decodeError(hsErr.Response)
		}
		return nil, fmt.Errorf("receive %s: %w", h.name, err)
	}

	return &Subscription{handle: h, sub: sub}, nil
}

// Receive blocks until the message arrives and returns its text
func (s *Subscription) Receive(ctx context.Context) (string, error) {
	msg, err := s.sub.Read(ctx)
	if err != nil {
		return "", fmt.Errorf("receive %s: %w", s.handle.name, err)
	}

	return queue.Decode(msg, s.handle.attr.MessageSize), nil
}

// Close drops the subscription
func (s *Subscription) Close() error {
	return s.sub.Close()
}

// Request performs one exchange: it opens both well-known queues, attaches
// to the response queue, sends text to the server and blocks for the single
// response
func (c *Client) Request(ctx context.Context, text string) (string, error) {
	requests, err := c.Open(ctx, queue.ServerQueue)
	if err != nil {
		return "", err
	}
	responses, err := c.Open(ctx, queue.ClientQueue)
	if err != nil {
		return "", err
	}

	sub, err := responses.Subscribe(ctx)
	if err != nil {
		return "", err
	}
	defer sub.Close()

	if err := requests.Send(ctx, text); err != nil {
		return "", err
	}

	return sub.Receive(ctx)
}

func (c *Client) queuePath(name string) string {
	return c.baseURL + "/queues/" + url.PathEscape(name)
}

// decodeError turns an error response back into a queue error
func decodeError(resp *http.Response) error {
	var body ErrorBody
	json.NewDecoder(resp.Body).Decode(&body)

	switch body.Code {
	case CodeNotFound:
		return queue.ErrNotFound
	case CodeFull:
		return queue.ErrFull
	case CodeTooLarge:
		return queue.ErrMessageTooLarge
	case CodeClosed:
		return queue.ErrClosed
	}

	if body.Error != "" {
		return fmt.Errorf("%s", body.Error)
	}
	return fmt.Errorf("API error: %d", resp.StatusCode)
}
