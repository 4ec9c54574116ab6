package server

import (
	"syscall"
	"testing"
	"time"
)

func TestToken_Request(t *testing.T) {
	token := NewToken()

	if token.Requested() {
		t.Error("New token should not be requested")
	}
	if token.Context().Err() != nil {
		t.Error("New token context should be live")
	}

	token.Request()
	token.Request()

	if !token.Requested() {
		t.Error("Expected token to be requested")
	}
	select {
	case <-token.Context().Done():
	default:
		t.Error("Token context should be cancelled")
	}
}

func TestToken_NotifyOn(t *testing.T) {
	token := NewToken()
	stop := token.NotifyOn(syscall.SIGUSR1)
	defer stop()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGUSR1); err != nil {
		t.Fatalf("Failed to signal self: %v", err)
	}

	select {
	case <-token.Context().Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Signal did not request shutdown")
	}
	if !token.Requested() {
		t.Error("Expected token to be requested")
	}
}
