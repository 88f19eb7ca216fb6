// Package ledger owns the canonical transaction list. All mutations go
// through the Store, which serializes writers, persists a full
// snapshot after every mutation, and publishes events for committed
// mutations.
package ledger

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"harcama/internal/category"
	"harcama/internal/core"
	applog "harcama/internal/log"
)

const defaultPersistTimeout = 5 * time.Second

// Store is the single writer over the ledger. The in-memory list is
// newest-first; mutations are committed to memory only after the
// snapshot write succeeds.
type Store struct {
	mu       sync.Mutex
	txs      []core.Transaction
	snap     Snapshotter
	registry *category.Registry
	sinks    []EventSink
	logger   *applog.Logger

	persistTimeout time.Duration
	lastID         int64
	lastPersistErr error
}

func NewStore(snap Snapshotter, registry *category.Registry, logger *applog.Logger) *Store {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Store{
		snap:           snap,
		registry:       registry,
		logger:         logger.WithComponent(applog.ComponentLedger),
		persistTimeout: defaultPersistTimeout,
	}
}

// SetPersistTimeout bounds a single snapshot write. The zero duration
// restores the default.
func (s *Store) SetPersistTimeout(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d <= 0 {
		d = defaultPersistTimeout
	}
	s.persistTimeout = d
}

// AttachSink registers an event sink. Sinks are invoked after each
// committed mutation; a failing sink is logged and skipped.
func (s *Store) AttachSink(sink EventSink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sinks = append(s.sinks, sink)
}

// Load reads the persisted snapshot into memory. A missing snapshot
// yields an empty ledger; an unparseable one surfaces ErrCorruptState
// and leaves the store unloaded so callers can decide what to do with
// the corrupt slot.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.snap.Load(ctx)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}

	s.txs = txs
	s.lastID = maxNumericID(txs)
	s.logger.InfoContext(ctx, "Ledger loaded",
		applog.FieldOperation, applog.OpLoad,
		applog.FieldCount, len(txs))
	return nil
}

// Add validates the input, creates a transaction with a fresh
// monotonic id and the current UTC time, prepends it, persists the
// full ledger, and publishes an added event. Validation failures are
// reported through the core sentinel errors; a persist failure rolls
// the mutation back and wraps ErrPersist.
func (s *Store) Add(ctx context.Context, amount core.Money, description string, cat core.Category, typ core.TransactionType) (core.Transaction, error) {
	if err := typ.Validate(); err != nil {
		return core.Transaction{}, err
	}
	if err := amount.Validate(); err != nil {
		return core.Transaction{}, err
	}
	if cat.ID == "" {
		return core.Transaction{}, core.ErrMissingCategory
	}

	// Embed the registry's current definition, not the caller's copy.
	registered, err := s.registry.FindByID(cat.ID)
	if err != nil {
		return core.Transaction{}, err
	}
	if !s.registry.Contains(typ, registered.ID) {
		return core.Transaction{}, fmt.Errorf("category %q is not in the %s set: %w", registered.Name, typ, core.ErrCategoryMismatch)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := core.Transaction{
		ID:          s.nextID(),
		Amount:      amount,
		Description: description,
		Category:    registered,
		Type:        typ,
		Date:        time.Now().UTC(),
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	next := make([]core.Transaction, 0, len(s.txs)+1)
	next = append(next, tx)
	next = append(next, s.txs...)

	if err := s.persist(ctx, next); err != nil {
		return core.Transaction{}, err
	}
	s.txs = next

	s.logger.InfoContext(ctx, "Transaction added",
		applog.FieldOperation, applog.OpAdd,
		applog.FieldTransactionID, tx.ID,
		applog.FieldAmountCents, tx.Amount.Cents,
		applog.FieldCategory, tx.Category.Name,
		applog.FieldType, string(tx.Type))

	s.publish(ctx, Event{Kind: EventAdded, Transaction: tx, At: time.Now().UTC()})
	return tx, nil
}

// Remove deletes the transaction with the given id. Removal is
// idempotent: an absent id is a no-op, not an error, and nothing is
// persisted or published for it.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, tx := range s.txs {
		if tx.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.Debug("Remove of unknown transaction id is a no-op",
			applog.FieldOperation, applog.OpRemove,
			applog.FieldTransactionID, id)
		return nil
	}

	removed := s.txs[idx]
	next := make([]core.Transaction, 0, len(s.txs)-1)
	next = append(next, s.txs[:idx]...)
	next = append(next, s.txs[idx+1:]...)

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.txs = next

	s.logger.InfoContext(ctx, "Transaction removed",
		applog.FieldOperation, applog.OpRemove,
		applog.FieldTransactionID, id)

	s.publish(ctx, Event{Kind: EventRemoved, Transaction: removed, At: time.Now().UTC()})
	return nil
}

// List returns a snapshot copy of the ledger, newest-first.
func (s *Store) List() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.txs...)
}

// Len returns the number of transactions in the ledger.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.txs)
}

// LastPersistErr reports the outcome of the most recent snapshot
// write, nil when it succeeded. Callers use it to warn the user that
// the ledger could not be saved.
func (s *Store) LastPersistErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPersistErr
}

// Close releases the underlying snapshotter.
func (s *Store) Close() error {
	if s.snap == nil {
		return nil
	}
	return s.snap.Close()
}

// persist writes the full snapshot under the configured timeout and
// records the outcome. Callers hold s.mu.
func (s *Store) persist(ctx context.Context, txs []core.Transaction) error {
	ctx, cancel := context.WithTimeout(ctx, s.persistTimeout)
	defer cancel()

	if err := s.snap.Save(ctx, txs); err != nil {
		s.lastPersistErr = err
		s.logger.ErrorContext(ctx, "Snapshot write failed",
			applog.FieldOperation, applog.OpPersist,
			applog.FieldError, err)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	s.lastPersistErr = nil
	return nil
}

// publish fans the event out to attached sinks. Callers hold s.mu.
func (s *Store) publish(ctx context.Context, ev Event) {
	for _, sink := range s.sinks {
		if err := sink.Publish(ctx, ev); err != nil {
			s.logger.WarnContext(ctx, "Event sink failed",
				applog.FieldOperation, applog.OpPublish,
				applog.FieldTransactionID, ev.Transaction.ID,
				applog.FieldError, err)
		}
	}
}

// nextID derives an id from the current time in milliseconds, bumped
// past the previous id so same-millisecond inserts stay unique and
// strictly increasing. Callers hold s.mu.
func (s *Store) nextID() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func maxNumericID(txs []core.Transaction) int64 {
	var max int64
	for _, tx := range txs {
		if v, err := strconv.ParseInt(tx.ID, 10, 64); err == nil && v > max {
			max = v
		}
	}
	return max
}
