// Package notify fans out support events to in-process subscribers and external brokers.
// Delivery is best effort: a failing or panicking subscriber never affects the publisher.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-booking/internal/domain/support"
)

const deliveryTimeout = 5 * time.Second

// Handler is an alias, not a defined type.
type Handler = func(ctx context.Context, ev support.MessageAppended) error

type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[uint64]namedHandler
	logger *slog.Logger
	wg     sync.WaitGroup
}

type namedHandler struct {
	name string
	fn   Handler
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		subs:   make(map[uint64]namedHandler),
		logger: logger,
	}
}

// Subscribe registers fn and returns a function that removes it again.
func (h *Hub) Subscribe(name string, fn Handler) (unsubscribe func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = namedHandler{name: name, fn: fn}
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Publish hands ev to every subscriber on its own goroutine and returns immediately.
func (h *Hub) Publish(ctx context.Context, ev support.MessageAppended) {
	h.mu.RLock()
	targets := make([]namedHandler, 0, len(h.subs))
	for _, s := range h.subs {
		targets = append(targets, s)
	}
	h.mu.RUnlock()

	base := context.WithoutCancel(ctx)
	for _, s := range targets {
		h.wg.Add(1)
		go h.deliver(base, s, ev)
	}
}

func (h *Hub) deliver(ctx context.Context, s namedHandler, ev support.MessageAppended) {
	defer h.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("support event subscriber panicked",
				slog.String("subscriber", s.name),
				slog.String("thread_id", ev.ThreadID),
				slog.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()

	if err := s.fn(ctx, ev); err != nil {
		h.logger.Warn("support event delivery failed",
			slog.String("subscriber", s.name),
			slog.String("thread_id", ev.ThreadID),
			slog.String("error", err.Error()))
	}
}

// Wait blocks until in-flight deliveries finish. Used on shutdown and in tests.
func (h *Hub) Wait() {
	h.wg.Wait()
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
