package core

import "math"

// NeutralColor is the display fallback used when a breakdown entry's
// category cannot be resolved against the live registry.
const NeutralColor = "#C0C0C0"

// ColorLookup resolves a display color for a category. Implemented by
// the category registry; resolution is by id first, name second.
type ColorLookup interface {
	ColorFor(id, name string) (string, bool)
}

// CategoryShare is one entry of the expense breakdown: the summed
// amount of a category plus the color to render it with.
type CategoryShare struct {
	CategoryID string
	Name       string
	Amount     Money
	Color      string
}

// TotalBalance sums the ledger signed by type: income adds, expense
// subtracts.
func TotalBalance(txs []Transaction) Money {
	var cents int64
	for _, tx := range txs {
		if tx.Type == Income {
			cents += tx.Amount.Cents
		} else {
			cents -= tx.Amount.Cents
		}
	}
	return Money{Cents: cents}
}

// TotalByType sums the amounts of transactions matching typ. An empty
// match set yields zero, not an error.
func TotalByType(txs []Transaction, typ TransactionType) Money {
	var cents int64
	for _, tx := range txs {
		if tx.Type == typ {
			cents += tx.Amount.Cents
		}
	}
	return Money{Cents: cents}
}

// Breakdown groups expense transactions by category name, summing
// amounts per group. Entry order is the first-appearance order of each
// name in the ledger sequence, kept explicit with an index slice
// rather than map iteration. Each entry carries the category id of the
// group's first transaction; colors resolve through the lookup with
// NeutralColor as the display fallback. A nil lookup yields the
// fallback for every entry.
func Breakdown(txs []Transaction, colors ColorLookup) []CategoryShare {
	byName := make(map[string]int)
	var shares []CategoryShare
	for _, tx := range txs {
		if tx.Type != Expense {
			continue
		}
		name := tx.Category.Name
		if i, ok := byName[name]; ok {
			shares[i].Amount.Cents += tx.Amount.Cents
			continue
		}
		byName[name] = len(shares)
		shares = append(shares, CategoryShare{
			CategoryID: tx.Category.ID,
			Name:       name,
			Amount:     tx.Amount,
		})
	}
	for i := range shares {
		shares[i].Color = NeutralColor
		if colors == nil {
			continue
		}
		if c, ok := colors.ColorFor(shares[i].CategoryID, shares[i].Name); ok {
			shares[i].Color = c
		}
	}
	return shares
}

// Percentage returns part's share of total as a percentage rounded to
// one decimal place. A zero total yields 0, never NaN or infinity.
func Percentage(part, total Money) float64 {
	if total.Cents == 0 {
		return 0
	}
	pct := float64(part.Cents) / float64(total.Cents) * 100
	return math.Round(pct*10) / 10
}
