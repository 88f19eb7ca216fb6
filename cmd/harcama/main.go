// Command harcama is the presentation collaborator over the ledger
// core: it renders store contents and aggregation results and invokes
// store mutations. Currency formatting lives here, not in the core.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"harcama/internal/category"
	"harcama/internal/cli"
	"harcama/internal/core"
	"harcama/internal/ledger"
	applog "harcama/internal/log"
)

const usage = `harcama - personal finance ledger

Usage:
  harcama list                                  show the ledger, newest first
  harcama add -amount 12,50 -category 1 [-type expense] [-desc "..."]
  harcama remove -id <transaction-id>
  harcama summary                               balance plus income/expense totals
  harcama breakdown                             expense distribution by category
  harcama categories                            available categories per type
`

func main() {
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := cli.SetupLogger(cfg.LogLevel)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	command := os.Args[1]
	args := os.Args[2:]

	registry := category.Default()

	if command == "categories" {
		// Registry-only command, no store needed.
		printCategories(registry)
		return
	}

	ctx := context.Background()
	store, _, cleanup, err := cli.OpenStore(ctx, cfg, registry, logger)
	if err != nil {
		if errors.Is(err, ledger.ErrCorruptState) {
			fmt.Fprintf(os.Stderr, "ledger state is corrupt: %v\nback the file up before retrying; it was not modified\n", err)
			os.Exit(1)
		}
		logger.Error("Failed to open store", applog.FieldError, err)
		os.Exit(1)
	}
	defer cleanup()

	var cmdErr error
	switch command {
	case "list":
		cmdErr = runList(store)
	case "add":
		cmdErr = runAdd(ctx, store, registry, args)
	case "remove":
		cmdErr = runRemove(ctx, store, args)
	case "summary":
		cmdErr = runSummary(store)
	case "breakdown":
		cmdErr = runBreakdown(store, registry)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if cmdErr != nil {
		fmt.Fprintln(os.Stderr, cmdErr)
		os.Exit(1)
	}
}

func runList(store *ledger.Store) error {
	txs := store.List()
	if len(txs) == 0 {
		fmt.Println("ledger is empty")
		return nil
	}
	for _, tx := range txs {
		sign := "-"
		if tx.Type == core.Income {
			sign = "+"
		}
		desc := tx.Description
		if desc == "" {
			desc = "(no description)"
		}
		fmt.Printf("%s  %s%s  %-12s %s  %s\n",
			tx.ID, sign, formatMoney(tx.Amount), tx.Category.Name, tx.Date.Format("02 Jan 2006 15:04"), desc)
	}
	return nil
}

func runAdd(ctx context.Context, store *ledger.Store, registry *category.Registry, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	amountArg := fs.String("amount", "", "amount, e.g. 12.50 or 12,50")
	catID := fs.String("category", "", "category id (see: harcama categories)")
	typArg := fs.String("type", "expense", "expense or income")
	desc := fs.String("desc", "", "optional description")
	fs.Parse(args)

	amount, err := core.ParseAmountToCents(*amountArg)
	if err != nil {
		return fmt.Errorf("amount %q: %w", *amountArg, err)
	}
	if *catID == "" {
		return core.ErrMissingCategory
	}
	cat, err := registry.FindByID(*catID)
	if err != nil {
		return err
	}

	tx, err := store.Add(ctx, amount, *desc, cat, core.TransactionType(*typArg))
	if err != nil {
		return err
	}
	fmt.Printf("added %s: %s %s (%s)\n", tx.ID, formatMoney(tx.Amount), tx.Category.Name, tx.Type)
	return nil
}

func runRemove(ctx context.Context, store *ledger.Store, args []string) error {
	fs := flag.NewFlagSet("remove", flag.ExitOnError)
	id := fs.String("id", "", "transaction id to remove")
	fs.Parse(args)

	if *id == "" {
		return errors.New("missing -id")
	}
	before := store.Len()
	if err := store.Remove(ctx, *id); err != nil {
		return err
	}
	if store.Len() == before {
		fmt.Printf("no transaction with id %s\n", *id)
	} else {
		fmt.Printf("removed %s\n", *id)
	}
	return nil
}

func runSummary(store *ledger.Store) error {
	txs := store.List()
	fmt.Printf("balance: %s\n", formatMoney(core.TotalBalance(txs)))
	fmt.Printf("income:  %s\n", formatMoney(core.TotalByType(txs, core.Income)))
	fmt.Printf("expense: %s\n", formatMoney(core.TotalByType(txs, core.Expense)))
	return nil
}

func runBreakdown(store *ledger.Store, registry *category.Registry) error {
	txs := store.List()
	shares := core.Breakdown(txs, registry)
	if len(shares) == 0 {
		fmt.Println("no expenses recorded")
		return nil
	}
	total := core.TotalByType(txs, core.Expense)
	for _, s := range shares {
		pct := core.Percentage(s.Amount, total)
		fmt.Printf("%-12s %5.1f%%  %s  %s\n", s.Name, pct, formatMoney(s.Amount), s.Color)
	}
	return nil
}

func printCategories(registry *category.Registry) {
	fmt.Println("expense categories:")
	for _, c := range registry.ExpenseCategories() {
		fmt.Printf("  %-3s %-12s %s\n", c.ID, c.Name, c.Icon)
	}
	fmt.Println("income categories:")
	for _, c := range registry.IncomeCategories() {
		fmt.Printf("  %-3s %-12s %s\n", c.ID, c.Name, c.Icon)
	}
}

func formatMoney(m core.Money) string {
	if m.Cents < 0 {
		return "-₺" + (core.Money{Cents: -m.Cents}).String()
	}
	return "₺" + m.String()
}
