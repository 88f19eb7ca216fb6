package core

import (
	"errors"
	"time"
)

const (
	Expense TransactionType = "expense"
	Income  TransactionType = "income"
)

type (
	TransactionType string

	Money struct {
		Cents int64
	}

	// Category is an immutable classification tag. Transactions embed a
	// copy of the category they were created with, not a reference into
	// the registry.
	Category struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Icon  string `json:"icon"`
		Color string `json:"color"`
	}

	Transaction struct {
		ID          string          `json:"id"`
		Amount      Money           `json:"amount"`
		Description string          `json:"description"`
		Category    Category        `json:"category"`
		Type        TransactionType `json:"type"`
		Date        time.Time       `json:"date"`
	}
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrMissingCategory    = errors.New("missing category")
	ErrInvalidType        = errors.New("invalid transaction type")
	ErrCategoryMismatch   = errors.New("category does not match transaction type")
	ErrDescriptionTooLong = errors.New("description too long (max 200 characters)")
)

func (t TransactionType) Validate() error {
	switch t {
	case Expense, Income:
		return nil
	}
	return ErrInvalidType
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// IsZero reports whether the amount is exactly zero cents.
func (m Money) IsZero() bool {
	return m.Cents == 0
}

func (c Category) Validate() error {
	if c.ID == "" || c.Name == "" {
		return ErrMissingCategory
	}
	return nil
}

func (tx Transaction) Validate() error {
	if tx.ID == "" {
		return errors.New("empty transaction id")
	}
	if err := tx.Amount.Validate(); err != nil {
		return err
	}
	if len(tx.Description) > 200 {
		return ErrDescriptionTooLong
	}
	if err := tx.Category.Validate(); err != nil {
		return err
	}
	if err := tx.Type.Validate(); err != nil {
		return err
	}
	if tx.Date.IsZero() {
		return errors.New("zero transaction date")
	}
	return nil
}
