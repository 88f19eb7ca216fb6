package amqp

import (
	"testing"
	"time"

	"harcama/internal/core"
	"harcama/internal/ledger"
)

func TestLedgerEventMessageRoundTrip(t *testing.T) {
	ev := ledger.Event{
		Kind: ledger.EventAdded,
		Transaction: core.Transaction{
			ID:          "1700000000000",
			Amount:      core.Money{Cents: 5000},
			Description: "pazar alışverişi",
			Category:    core.Category{ID: "1", Name: "Market", Icon: "cart", Color: "#FF6B6B"},
			Type:        core.Expense,
			Date:        time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
		},
		At: time.Date(2025, 6, 1, 10, 30, 1, 0, time.UTC),
	}

	msg := NewLedgerEventMessage(ev)
	if msg.Kind != "added" || msg.TransactionID != "1700000000000" || msg.AmountCents != 5000 {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if msg.CategoryID != "1" || msg.CategoryName != "Market" || msg.Type != "expense" {
		t.Fatalf("category fields wrong: %+v", msg)
	}

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := LedgerEventMessageFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if *back != *msg {
		t.Fatalf("round trip mismatch:\n  in:  %+v\n  out: %+v", msg, back)
	}
}

func TestLedgerEventMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := LedgerEventMessageFromJSON([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
