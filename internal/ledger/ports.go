package ledger

import (
	"context"
	"errors"
	"time"

	"harcama/internal/core"
)

var (
	// ErrCorruptState marks persisted state that is present but cannot
	// be parsed. It is surfaced to the caller; the store never treats
	// corrupt state as an empty ledger.
	ErrCorruptState = errors.New("corrupt ledger state")

	// ErrPersist wraps a failed snapshot write. The in-memory ledger is
	// rolled back, so memory never runs ahead of storage.
	ErrPersist = errors.New("ledger persistence failed")
)

// Snapshotter persists and reloads the full ledger. Each successful
// Save supersedes the prior snapshot in full; there is no partial
// update. A missing snapshot loads as an empty ledger, nil error.
type Snapshotter interface {
	Load(ctx context.Context) ([]core.Transaction, error)
	Save(ctx context.Context, txs []core.Transaction) error
	Close() error
}

// EventKind discriminates ledger mutation events.
type EventKind string

const (
	EventAdded   EventKind = "added"
	EventRemoved EventKind = "removed"
)

// Event describes one committed ledger mutation. Events are published
// only after the mutation's snapshot has been durably written.
type Event struct {
	Kind        EventKind        `json:"kind"`
	Transaction core.Transaction `json:"transaction"`
	At          time.Time        `json:"at"`
}

// EventSink receives mutation events. Sink failures are logged by the
// store and never fail the mutation itself.
type EventSink interface {
	Publish(ctx context.Context, ev Event) error
}
