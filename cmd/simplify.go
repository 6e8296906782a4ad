package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bookkeeping"
	"github.com/google/subcommands"
)

type simplifyCmd struct {
	trading  bool
	currency string
}

func (*simplifyCmd) Name() string     { return "simplify" }
func (*simplifyCmd) Synopsis() string { return "print the journal as a simplified ledger" }
func (*simplifyCmd) Usage() string {
	return `bkp simplify [-trading] [-currency <code>] [extra-journal]...

  Prints the journal as a simplified ledger: every posting carries an
  explicit amount in its own currency, with omitted amounts resolved and
  price annotations applied.

  With -trading, currency trading postings are added under Trading:Exchange
  so that every transaction balances per currency.
`
}

func (c *simplifyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.trading, "trading", false, "Add currency trading postings under Trading:Exchange")
	f.StringVar(&c.currency, "currency", "USD", "Main currency used to freeze foreign income and expenses")
}

func (c *simplifyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(f.Args()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	simplified, err := bookkeeping.Simplify(ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.trading {
		opts := bookkeeping.TradingOptions{
			IsAsset:      bookkeeping.ByPrefix("Assets"),
			IsIncome:     bookkeeping.ByPrefix("Income"),
			IsExpense:    bookkeeping.ByPrefix("Expenses"),
			MainCurrency: c.currency,
			Prices:       ledger.PriceIndex(),
		}
		if err := bookkeeping.AddTradingPostings(simplified, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if err := bookkeeping.EncodeSimplifiedLedger(os.Stdout, simplified); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
