package shutdown

import (
	"context"
	"sync"
	"time"

	"image-transcriber/internal/logger"
)

const component = "ShutdownManager"

// Shutdownable is anything that needs to release resources when the app exits
type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable
type Func func()

func (f Func) Shutdown() { f() }

type entry struct {
	name      string
	component Shutdownable
}

// Manager runs registered shutdown steps once, in reverse registration order
type Manager struct {
	components []entry
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	done       chan struct{}
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		logger:  log,
		timeout: 10 * time.Second,
		done:    make(chan struct{}),
	}
}

// SetStepTimeout bounds how long a single step may take before it is abandoned
func (m *Manager) SetStepTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeout = d
}

func (m *Manager) Register(name string, c Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, entry{name: name, component: c})
}

// Watch calls onCancel when ctx ends before Shutdown has run. It is used to turn
// an interrupt signal into a request to close the window.
func (m *Manager) Watch(ctx context.Context, onCancel func()) {
	go func() {
		select {
		case <-ctx.Done():
			m.logger.Info(component, "shutdown signal received", map[string]interface{}{
				"cause": context.Cause(ctx).Error(),
			})
			onCancel()
		case <-m.done:
		}
	}()
}

// Shutdown runs every registered step. Calls after the first are no-ops.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info(component, "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	for i := len(m.components) - 1; i >= 0; i-- {
		step := m.components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			step.component.Shutdown()
		}()

		select {
		case <-finished:
			m.logger.Debug(component, "shutdown step completed", map[string]interface{}{
				"step": step.name,
			})
		case <-time.After(m.timeout):
			m.logger.Warning(component, "shutdown step timeout", map[string]interface{}{
				"step": step.name,
			})
		}
	}

	m.logger.Info(component, "shutdown sequence completed", nil)
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
