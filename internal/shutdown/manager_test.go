package shutdown

import (
	"context"
	"testing"
	"time"

	"image-transcriber/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownRunsStepsInReverseOnce(t *testing.T) {
	m := NewManager(logger.NewNop())
	var order []string
	m.Register("log file", Func(func() { order = append(order, "log file") }))
	m.Register("session", Func(func() { order = append(order, "session") }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"session", "log file"}, order)
	select {
	case <-m.Done():
	default:
		t.Fatal("Done channel not closed")
	}
}

func TestShutdownAbandonsSlowStep(t *testing.T) {
	m := NewManager(logger.NewNop())
	m.SetStepTimeout(10 * time.Millisecond)
	block := make(chan struct{})
	defer close(block)
	ran := false
	m.Register("fast", Func(func() { ran = true }))
	m.Register("stuck", Func(func() { <-block }))

	m.Shutdown()

	assert.True(t, ran)
}

func TestWatchCallsOnCancel(t *testing.T) {
	m := NewManager(logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	called := make(chan struct{})

	m.Watch(ctx, func() { close(called) })
	cancel()

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("onCancel not called")
	}
}

func TestWatchStopsAfterShutdown(t *testing.T) {
	m := NewManager(logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	called := make(chan struct{}, 1)

	m.Watch(ctx, func() { called <- struct{}{} })
	m.Shutdown()
	time.Sleep(10 * time.Millisecond)
	cancel()
	time.Sleep(10 * time.Millisecond)

	require.Empty(t, called)
}
