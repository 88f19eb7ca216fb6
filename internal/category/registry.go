// Package category provides the fixed catalog of transaction
// categories, partitioned into expense and income sets. The registry
// is constructed once at startup, never mutated, and safe to share
// across goroutines read-only.
package category

import (
	"errors"
	"fmt"

	"harcama/internal/core"
)

var ErrNotFound = errors.New("category not found")

type Registry struct {
	expense []core.Category
	income  []core.Category
	byID    map[string]core.Category
	byName  map[string]core.Category
}

// New builds a registry from ordered expense and income category sets.
// Both sets must be non-empty, every category needs an id and a name,
// and ids must be unique across both sets.
func New(expense, income []core.Category) (*Registry, error) {
	if len(expense) == 0 || len(income) == 0 {
		return nil, errors.New("registry requires at least one expense and one income category")
	}
	r := &Registry{
		expense: append([]core.Category(nil), expense...),
		income:  append([]core.Category(nil), income...),
		byID:    make(map[string]core.Category, len(expense)+len(income)),
		byName:  make(map[string]core.Category, len(expense)+len(income)),
	}
	for _, c := range append(append([]core.Category(nil), expense...), income...) {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("category %q: %w", c.ID, err)
		}
		if _, dup := r.byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate category id %q", c.ID)
		}
		r.byID[c.ID] = c
		if _, dup := r.byName[c.Name]; !dup {
			r.byName[c.Name] = c
		}
	}
	return r, nil
}

// Default returns the stock registry: eight expense and four income
// categories with their icon and color identifiers.
func Default() *Registry {
	expense := []core.Category{
		{ID: "1", Name: "Market", Icon: "cart", Color: "#FF6B6B"},
		{ID: "2", Name: "Ulaşım", Icon: "car", Color: "#4ECDC4"},
		{ID: "3", Name: "Faturalar", Icon: "document-text", Color: "#45B7D1"},
		{ID: "4", Name: "Yemek", Icon: "restaurant", Color: "#96CEB4"},
		{ID: "5", Name: "Eğlence", Icon: "game-controller", Color: "#FECA57"},
		{ID: "6", Name: "Sağlık", Icon: "medical", Color: "#FF9FF3"},
		{ID: "7", Name: "Alışveriş", Icon: "bag", Color: "#54A0FF"},
		{ID: "8", Name: "Diğer", Icon: "ellipsis-horizontal", Color: "#A29BFE"},
	}
	income := []core.Category{
		{ID: "9", Name: "Maaş", Icon: "cash", Color: "#00D2D3"},
		{ID: "10", Name: "Freelance", Icon: "laptop", Color: "#55A3FF"},
		{ID: "11", Name: "Yatırım", Icon: "trending-up", Color: "#5F27CD"},
		{ID: "12", Name: "Diğer", Icon: "add-circle", Color: "#00D2D3"},
	}
	r, err := New(expense, income)
	if err != nil {
		panic(err) // static data, cannot fail
	}
	return r
}

// ExpenseCategories returns the ordered expense set.
func (r *Registry) ExpenseCategories() []core.Category {
	return append([]core.Category(nil), r.expense...)
}

// IncomeCategories returns the ordered income set.
func (r *Registry) IncomeCategories() []core.Category {
	return append([]core.Category(nil), r.income...)
}

// FindByID looks a category up by id. An unknown id means the caller
// holds category data from an unknown or corrupted source; it is an
// error, never silently defaulted.
func (r *Registry) FindByID(id string) (core.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return core.Category{}, fmt.Errorf("category id %q: %w", id, ErrNotFound)
	}
	return c, nil
}

// ForType returns the set the given transaction type draws from.
func (r *Registry) ForType(typ core.TransactionType) []core.Category {
	if typ == core.Income {
		return r.IncomeCategories()
	}
	return r.ExpenseCategories()
}

// Contains reports whether id belongs to the set matching typ.
func (r *Registry) Contains(typ core.TransactionType, id string) bool {
	set := r.expense
	if typ == core.Income {
		set = r.income
	}
	for _, c := range set {
		if c.ID == id {
			return true
		}
	}
	return false
}

// ColorFor resolves a display color by category id, falling back to a
// name match for transactions recorded before ids were stable. The
// second return is false when neither matches; display code applies
// its neutral fallback then. Implements core.ColorLookup.
func (r *Registry) ColorFor(id, name string) (string, bool) {
	if c, ok := r.byID[id]; ok {
		return c.Color, true
	}
	if c, ok := r.byName[name]; ok {
		return c.Color, true
	}
	return "", false
}
