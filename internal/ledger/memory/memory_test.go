package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"harcama/internal/core"
)

func TestLoadBeforeFirstSaveIsEmpty(t *testing.T) {
	s := New()
	txs, err := s.Load(context.Background())
	if err != nil || len(txs) != 0 {
		t.Fatalf("expected empty ledger, got %d (err=%v)", len(txs), err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	ctx := context.Background()
	s := New()
	in := []core.Transaction{{
		ID:       "1",
		Amount:   core.Money{Cents: 100},
		Category: core.Category{ID: "1", Name: "Market"},
		Type:     core.Expense,
		Date:     time.Now().UTC(),
	}}
	if err := s.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil || len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("load mismatch: %+v err=%v", got, err)
	}

	// The snapshot is a copy, not the caller's slice.
	in[0].ID = "mutated"
	got, _ = s.Load(ctx)
	if got[0].ID != "1" {
		t.Fatal("snapshotter must copy on save")
	}
}

func TestFailSaves(t *testing.T) {
	s := New()
	s.FailSaves = errors.New("boom")
	err := s.Save(context.Background(), nil)
	if !errors.Is(err, s.FailSaves) {
		t.Fatalf("expected injected error, got %v", err)
	}
}
