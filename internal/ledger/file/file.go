// Package file persists the ledger as a single JSON slot on disk: one
// file holding the full transaction array, newest-first, with the
// original snapshot field names. Writes replace the slot atomically
// via a temp file and rename.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"harcama/internal/core"
	"harcama/internal/ledger"
)

type Snapshotter struct {
	path string
}

func New(path string) (*Snapshotter, error) {
	if path == "" {
		return nil, fmt.Errorf("empty ledger path")
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create ledger directory: %w", err)
		}
	}
	return &Snapshotter{path: path}, nil
}

// Load reads the slot. A missing file is an empty ledger; an
// unparseable file surfaces ledger.ErrCorruptState and the slot is
// left untouched so the caller can back it up.
func (s *Snapshotter) Load(_ context.Context) ([]core.Transaction, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger slot %s: %w", s.path, err)
	}

	var txs []core.Transaction
	if err := json.Unmarshal(data, &txs); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ledger.ErrCorruptState, s.path, err)
	}
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("%w: transaction %q: %v", ledger.ErrCorruptState, tx.ID, err)
		}
	}
	return txs, nil
}

// Save writes the full snapshot to a temp file in the slot's directory
// and renames it into place, so the prior snapshot is superseded in
// full or not at all.
func (s *Snapshotter) Save(ctx context.Context, txs []core.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if txs == nil {
		txs = []core.Transaction{}
	}
	data, err := json.MarshalIndent(txs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp slot: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp slot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp slot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp slot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace ledger slot: %w", err)
	}
	return nil
}

func (s *Snapshotter) Close() error {
	return nil
}
