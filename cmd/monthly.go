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

type monthlyCmd struct {
	prefixes multiFlag
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display a month by month balance report" }
func (*monthlyCmd) Usage() string {
	return `bkp monthly [-prefix <account-prefix>]... [extra-journal]...

  Displays, for each month of the journal, the change over the month and
  the running total per account.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.prefixes, "prefix", "Restrict the report to accounts under this prefix (repeatable)")
}

func (c *monthlyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger(f.Args()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := renderer.NewMonthlyReport("Monthly Report", bookkeeping.MonthlyReportOf(ledger), c.prefixes...)
	printMarkdown(renderer.MonthlyMarkdown(report))
	return subcommands.ExitSuccess
}
