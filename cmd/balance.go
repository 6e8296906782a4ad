package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bookkeeping"
	"github.com/etnz/bookkeeping/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct {
	prefixes multiFlag
	tree     bool
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the balance of every account" }
func (*balanceCmd) Usage() string {
	return `bkp balance [-prefix <account-prefix>]... [-tree] [extra-journal]...

  Displays the balance of every account in the journal. Extra journal
  files given as arguments are merged in.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.prefixes, "prefix", "Restrict the report to accounts under this prefix (repeatable)")
	f.BoolVar(&c.tree, "tree", false, "Display the balance as an account tree")
}

func (c *balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(f.Args()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	balance := bookkeeping.BalanceOf(ledger)

	if c.tree {
		report := renderer.NewTreeReport("Balance", bookkeeping.TreeOf(balance))
		printMarkdown(renderer.TreeMarkdown(report))
		return subcommands.ExitSuccess
	}

	report := renderer.NewBalanceReport("Balance", balance, c.prefixes...)
	printMarkdown(renderer.BalanceMarkdown(report))
	return subcommands.ExitSuccess
}
