// Package storage provides the SQLite-backed ledger snapshotter. The
// snapshot contract matches the file slot: every Save replaces the
// whole transaction set inside one database transaction.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"harcama/internal/core"
	"harcama/internal/ledger"

	_ "modernc.org/sqlite"
)

type SQLiteSnapshotter struct {
	db *sql.DB
}

func NewSQLiteSnapshotter(dbPath string) (*SQLiteSnapshotter, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteSnapshotter{db: db}, nil
}

func (s *SQLiteSnapshotter) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the full ledger ordered by position (newest first, same
// order the store keeps in memory). Rows that fail to parse surface
// ledger.ErrCorruptState.
func (s *SQLiteSnapshotter) Load(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, amount_cents, description,
		       category_id, category_name, category_icon, category_color,
		       type, date
		FROM transactions
		ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var (
			tx      core.Transaction
			typ     string
			rawDate string
		)
		if err := rows.Scan(
			&tx.ID, &tx.Amount.Cents, &tx.Description,
			&tx.Category.ID, &tx.Category.Name, &tx.Category.Icon, &tx.Category.Color,
			&typ, &rawDate,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Type = core.TransactionType(typ)
		tx.Date, err = time.Parse(time.RFC3339Nano, rawDate)
		if err != nil {
			return nil, fmt.Errorf("%w: transaction %q date %q: %v", ledger.ErrCorruptState, tx.ID, rawDate, err)
		}
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("%w: transaction %q: %v", ledger.ErrCorruptState, tx.ID, err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

// Save replaces the stored snapshot with txs in a single database
// transaction: delete everything, reinsert in order.
func (s *SQLiteSnapshotter) Save(ctx context.Context, txs []core.Transaction) error {
	dbtx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer dbtx.Rollback()

	if _, err := dbtx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}

	stmt, err := dbtx.PrepareContext(ctx, `
		INSERT INTO transactions (
			position, id, amount_cents, description,
			category_id, category_name, category_icon, category_color,
			type, date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, tx := range txs {
		_, err := stmt.ExecContext(ctx,
			i, tx.ID, tx.Amount.Cents, tx.Description,
			tx.Category.ID, tx.Category.Name, tx.Category.Icon, tx.Category.Color,
			string(tx.Type), tx.Date.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("insert transaction %q: %w", tx.ID, err)
		}
	}

	if err := dbtx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}
