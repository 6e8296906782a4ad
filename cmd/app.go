// Package cmd implements the CLI application to inspect ledger journals.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bookkeeping"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&balanceCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")

	c.Register(&simplifyCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&importRatesCmd{}, "prices")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "journal.ledger", "Path to the ledger journal file")

// multiFlag collects a repeatable string flag.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

// loadLedger parses the journal named by -ledger-file plus any extra files,
// merged into a single ledger.
func loadLedger(extra ...string) (*bookkeeping.Ledger, error) {
	files := append([]string{*ledgerFile}, extra...)
	ledgers := make([]*bookkeeping.Ledger, 0, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("cannot read journal: %w", err)
		}
		l, err := bookkeeping.ParseLedger(string(content))
		if err != nil {
			return nil, fmt.Errorf("in %q: %w", file, err)
		}
		ledgers = append(ledgers, l)
	}
	return bookkeeping.Merge(ledgers...), nil
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Println(md)
		return
	}
	fmt.Println(out)
}
