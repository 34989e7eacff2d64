// internal/event/manager.go
package event

import (
	"sync"

	"github.com/driftedit/drift/internal/logger"
)

// Handler is the function signature for event subscribers. The boolean
// return is reserved for consumption semantics; dispatch currently ignores
// it and calls every handler.
type Handler func(e Event) bool

// Manager maps event types to subscriber lists and dispatches synchronously.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates an empty event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for an event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.Debugf("event: handler subscribed to type %v", eventType)
}

// Dispatch sends an event to all handlers registered for its type. Handlers
// run synchronously on the caller's goroutine; a copy of the subscriber list
// is taken so a handler may subscribe during dispatch without racing.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	m.mu.RLock()
	handlers := m.handlers[eventType]
	handlersCopy := make([]Handler, len(handlers))
	copy(handlersCopy, handlers)
	m.mu.RUnlock()

	if len(handlersCopy) == 0 {
		return
	}

	ev := Event{Type: eventType, Data: data}
	for _, handler := range handlersCopy {
		handler(ev)
	}
}
