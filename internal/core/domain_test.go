package core

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTransactionTypeValidate(t *testing.T) {
	if err := Expense.Validate(); err != nil {
		t.Fatalf("expense: %v", err)
	}
	if err := Income.Validate(); err != nil {
		t.Fatalf("income: %v", err)
	}
	if err := TransactionType("transfer").Validate(); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 0}).Validate(); err != nil {
		t.Fatalf("zero should be valid: %v", err)
	}
	if err := (Money{Cents: -1}).Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		ID:          "1700000000000",
		Amount:      Money{Cents: 5000},
		Description: "haftalık alışveriş",
		Category:    Category{ID: "1", Name: "Market", Icon: "cart", Color: "#FF6B6B"},
		Type:        Expense,
		Date:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	// Empty description is fine: it is optional in the ledger.
	noDesc := good
	noDesc.Description = ""
	if err := noDesc.Validate(); err != nil {
		t.Fatalf("empty description should be valid: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Transaction)
		want   error
	}{
		{"negative amount", func(tx *Transaction) { tx.Amount.Cents = -1 }, ErrInvalidAmount},
		{"missing category", func(tx *Transaction) { tx.Category = Category{} }, ErrMissingCategory},
		{"bad type", func(tx *Transaction) { tx.Type = "refund" }, ErrInvalidType},
		{"long description", func(tx *Transaction) { tx.Description = strings.Repeat("a", 201) }, ErrDescriptionTooLong},
	}
	for _, tc := range cases {
		tx := good
		tc.mutate(&tx)
		if err := tx.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	noID := good
	noID.ID = ""
	if err := noID.Validate(); err == nil {
		t.Fatal("empty id should be rejected")
	}
	noDate := good
	noDate.Date = time.Time{}
	if err := noDate.Validate(); err == nil {
		t.Fatal("zero date should be rejected")
	}
}
