package amqp

import (
	"encoding/json"
	"time"

	"harcama/internal/ledger"
)

// LedgerEventMessage is the wire form of a committed ledger mutation.
// It carries enough for a consumer to mirror the change without
// re-reading the snapshot.
type LedgerEventMessage struct {
	Kind          string    `json:"kind"`
	TransactionID string    `json:"transaction_id"`
	AmountCents   int64     `json:"amount_cents"`
	CategoryID    string    `json:"category_id"`
	CategoryName  string    `json:"category_name"`
	Type          string    `json:"type"`
	Date          time.Time `json:"date"`
	At            time.Time `json:"at"`
}

func NewLedgerEventMessage(ev ledger.Event) *LedgerEventMessage {
	return &LedgerEventMessage{
		Kind:          string(ev.Kind),
		TransactionID: ev.Transaction.ID,
		AmountCents:   ev.Transaction.Amount.Cents,
		CategoryID:    ev.Transaction.Category.ID,
		CategoryName:  ev.Transaction.Category.Name,
		Type:          string(ev.Transaction.Type),
		Date:          ev.Transaction.Date,
		At:            ev.At,
	}
}

func (m *LedgerEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func LedgerEventMessageFromJSON(data []byte) (*LedgerEventMessage, error) {
	var msg LedgerEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
