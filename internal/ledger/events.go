package ledger

import (
	"context"
	"sync"

	applog "harcama/internal/log"
)

// Notifier fans mutation events out to in-process subscribers over
// buffered channels. It replaces the original design's fixed-interval
// re-read of persisted state: consumers subscribe once and are told
// about each committed mutation instead of polling for it.
type Notifier struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	closed bool
	logger *applog.Logger
}

func NewNotifier(logger *applog.Logger) *Notifier {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Notifier{
		subs:   make(map[int]chan Event),
		logger: logger.WithComponent(applog.ComponentLedger),
	}
}

// Subscribe registers a consumer with the given channel buffer and
// returns the event channel plus a cancel function. The channel is
// closed on cancel or when the notifier shuts down.
func (n *Notifier) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		close(ch)
		return ch, func() {}
	}
	id := n.nextID
	n.nextID++
	n.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			if _, ok := n.subs[id]; ok {
				delete(n.subs, id)
				close(ch)
			}
		})
	}
	return ch, cancel
}

// Publish delivers the event to every subscriber without blocking the
// mutation path: a subscriber whose buffer is full misses the event
// and a warning is logged. Implements EventSink.
func (n *Notifier) Publish(ctx context.Context, ev Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return nil
	}
	for id, ch := range n.subs {
		select {
		case ch <- ev:
		default:
			n.logger.WarnContext(ctx, "Dropping ledger event for slow subscriber",
				"subscriber", id,
				applog.FieldTransactionID, ev.Transaction.ID,
				"kind", string(ev.Kind))
		}
	}
	return nil
}

// Close shuts the notifier down and closes all subscriber channels.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	for id, ch := range n.subs {
		delete(n.subs, id)
		close(ch)
	}
}
