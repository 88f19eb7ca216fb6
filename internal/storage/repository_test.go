package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"harcama/internal/core"
	"harcama/internal/ledger"
)

func newRepo(t *testing.T) *SQLiteSnapshotter {
	t.Helper()
	repo, err := NewSQLiteSnapshotter(filepath.Join(t.TempDir(), "harcama.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func sampleLedger() []core.Transaction {
	return []core.Transaction{
		{
			ID:          "1700000000001",
			Amount:      core.Money{Cents: 20000},
			Description: "pazar",
			Category:    core.Category{ID: "1", Name: "Market", Icon: "cart", Color: "#FF6B6B"},
			Type:        core.Expense,
			Date:        time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:          "1700000000000",
			Amount:      core.Money{Cents: 100000},
			Description: "",
			Category:    core.Category{ID: "9", Name: "Maaş", Icon: "cash", Color: "#00D2D3"},
			Type:        core.Income,
			Date:        time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestEmptyDatabaseLoadsEmpty(t *testing.T) {
	repo := newRepo(t)
	txs, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("expected empty ledger, got %d", len(txs))
	}
}

func TestRoundTripPreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	want := sampleLedger()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		w, g := want[i], got[i]
		if g.ID != w.ID || g.Amount != w.Amount || g.Description != w.Description ||
			g.Category != w.Category || g.Type != w.Type || !g.Date.Equal(w.Date) {
			t.Fatalf("row %d mismatch:\n  want %+v\n  have %+v", i, w, g)
		}
	}
}

func TestSaveReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	if err := repo.Save(ctx, sampleLedger()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("empty snapshot should supersede prior rows, got %d", len(got))
	}
}

func TestCorruptRowSurfacesError(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	// Bypass Save and plant a row that violates the data model.
	_, err := repo.db.ExecContext(ctx, `
		INSERT INTO transactions (
			position, id, amount_cents, description,
			category_id, category_name, category_icon, category_color,
			type, date
		) VALUES (0, 'bad', 100, '', '1', 'Market', 'cart', '#FF6B6B', 'expense', 'not-a-date')`)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if _, err := repo.Load(ctx); !errors.Is(err, ledger.ErrCorruptState) {
		t.Fatalf("expected ErrCorruptState, got %v", err)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "harcama.db")
	repo, err := NewSQLiteSnapshotter(dbPath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	repo.Close()

	// Reopening runs migrations again; ErrNoChange must be swallowed.
	repo, err = NewSQLiteSnapshotter(dbPath)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	repo.Close()
}
