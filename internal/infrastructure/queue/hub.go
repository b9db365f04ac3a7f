package queue

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/unicampus/campus-portal/internal/core/domain"
)

const (
	inboundBuffer    = 256
	subscriberBuffer = 32
)

var subscribersGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "campus",
	Name:      "directory_subscribers",
	Help:      "Open user directory event subscriptions.",
})

// Hub fans user directory events out to every subscriber. A single
// goroutine started by Start delivers events, so subscribers see them in
// publish order.
type Hub struct {
	inbound chan domain.DirectoryEvent
	log     zerolog.Logger

	mu     sync.Mutex
	subs   map[chan domain.DirectoryEvent]struct{}
	closed bool
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		inbound: make(chan domain.DirectoryEvent, inboundBuffer),
		subs:    make(map[chan domain.DirectoryEvent]struct{}),
		log:     log,
	}
}

// Start launches the fan-out loop. All subscriptions are closed when ctx is cancelled.
func (h *Hub) Start(ctx context.Context) {
	go h.run(ctx)
}

// Publish never blocks; events are dropped when the inbound buffer is full.
func (h *Hub) Publish(event domain.DirectoryEvent) {
	select {
	case h.inbound <- event:
	default:
		h.log.Warn().Str("event", string(event.Type)).Msg("directory hub full, event dropped")
	}
}

// Subscribe returns a channel of future events and a func that ends the subscription.
func (h *Hub) Subscribe() (<-chan domain.DirectoryEvent, func()) {
	ch := make(chan domain.DirectoryEvent, subscriberBuffer)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	subscribersGauge.Inc()

	var once sync.Once
	return ch, func() {
		once.Do(func() { h.remove(ch) })
	}
}

func (h *Hub) remove(ch chan domain.DirectoryEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[ch]; !ok {
		return
	}
	delete(h.subs, ch)
	close(ch)
	subscribersGauge.Dec()
}

func (h *Hub) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case event := <-h.inbound:
			h.deliver(event)
		}
	}
}

func (h *Hub) deliver(event domain.DirectoryEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- event:
		default:
			h.log.Warn().Str("event", string(event.Type)).Msg("slow directory subscriber, event dropped")
		}
	}
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for ch := range h.subs {
		delete(h.subs, ch)
		close(ch)
		subscribersGauge.Dec()
	}
}
