// Package memory provides a slice-backed snapshotter for tests and
// ephemeral runs. Snapshots live only as long as the process.
package memory

import (
	"context"
	"sync"

	"harcama/internal/core"
)

type Snapshotter struct {
	mu  sync.Mutex
	txs []core.Transaction
	set bool

	// FailSaves makes every Save return this error; used by store
	// tests to exercise the persistence failure path.
	FailSaves error
}

func New() *Snapshotter {
	return &Snapshotter{}
}

func (s *Snapshotter) Load(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return nil, nil
	}
	return append([]core.Transaction(nil), s.txs...), nil
}

func (s *Snapshotter) Save(_ context.Context, txs []core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSaves != nil {
		return s.FailSaves
	}
	s.txs = append([]core.Transaction(nil), txs...)
	s.set = true
	return nil
}

func (s *Snapshotter) Close() error {
	return nil
}
