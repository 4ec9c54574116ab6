package queue

import "errors"

var (
	ErrFull            = errors.New("queue full")
	ErrMessageTooLarge = errors.New("message too large")
	ErrInterrupted     = errors.New("receive interrupted")
	ErrClosed          = errors.New("queue closed")
	ErrNotFound        = errors.New("queue not found")
	ErrInvalidName     = errors.New("invalid queue name")
	ErrInvalidAttr     = errors.New("invalid queue attributes")
)
