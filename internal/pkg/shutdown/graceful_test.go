package shutdown_test

import (
	"context"
	"syscall"
	"testing"
	"time"

	"fooddelivery/internal/pkg/shutdown"

	"github.com/stretchr/testify/assert"
)

func TestWithSignals_CancelOnSignal(t *testing.T) {
	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	assert.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context was not canceled by SIGTERM")
	}
}

func TestWithSignals_CancelFunc(t *testing.T) {
	ctx, cancel := shutdown.WithSignals(context.Background())
	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not canceled")
	}
}
