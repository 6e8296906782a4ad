package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bookkeeping"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	write bool
}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite simplified ledger files in canonical form" }
func (*fmtCmd) Usage() string {
	return `bkp fmt [-w] <file>...

  Parses each simplified ledger file and prints it back in canonical
  form. With -w, the file is rewritten in place instead.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.write, "w", false, "Rewrite files in place instead of printing")
}

func (c *fmtCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if len(f.Args()) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no file given")
		return subcommands.ExitUsageError
	}
	for _, file := range f.Args() {
		if err := c.format(file); err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting %q: %v\n", file, err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func (c *fmtCmd) format(file string) error {
	content, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	sl, err := bookkeeping.ParseSimplifiedLedger(string(content))
	if err != nil {
		return err
	}
	if c.write {
		return os.WriteFile(file, []byte(sl.String()), 0644)
	}
	fmt.Print(sl.String())
	return nil
}
