package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/bookkeeping"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type importRatesCmd struct {
	file  string
	path  string
	base  string
	quote string
	date  string
}

func (*importRatesCmd) Name() string     { return "import-rates" }
func (*importRatesCmd) Synopsis() string { return "extract exchange rates from a JSON document" }
func (*importRatesCmd) Usage() string {
	return `bkp import-rates -file <rates.json> -path <jsonpath> -base <code> [-quote <code>] [-d <date>]

  Extracts exchange rates from a JSON document and prints them as P
  directives ready to paste into a journal.

  The JSONPath expression must select either a single number (the rate
  of one -base unit in -quote) or an object whose keys are quote
  currencies and whose values are rates.
`
}

func (c *importRatesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "JSON document to read rates from")
	f.StringVar(&c.path, "path", "$.rates", "JSONPath expression selecting the rate or rate object")
	f.StringVar(&c.base, "base", "", "Base currency of the rates")
	f.StringVar(&c.quote, "quote", "", "Quote currency, when the path selects a single number")
	f.StringVar(&c.date, "d", "", "Date of the rates (defaults to today)")
}

func (c *importRatesCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.file == "" || c.base == "" {
		fmt.Fprintln(os.Stderr, "Error: -file and -base are required")
		return subcommands.ExitUsageError
	}

	on := bookkeeping.NewDate(time.Now().Date())
	if c.date != "" {
		var err error
		on, err = bookkeeping.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid date %q: %v\n", c.date, err)
			return subcommands.ExitUsageError
		}
	}

	prices, err := c.extract(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, p := range prices {
		fmt.Println(p)
	}
	return subcommands.ExitSuccess
}

func (c *importRatesCmd) extract(on bookkeeping.Date) ([]bookkeeping.Price, error) {
	content, err := os.ReadFile(c.file)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(content, &jobj); err != nil {
		return nil, fmt.Errorf("cannot parse %q: %w", c.file, err)
	}

	jval, err := jsonpath.Get(c.path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", c.path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer, keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	switch val := jval.(type) {
	case float64:
		if c.quote == "" {
			return nil, fmt.Errorf("path %q selects a single rate, -quote is required", c.path)
		}
		return []bookkeeping.Price{{
			Date:  on,
			Base:  c.base,
			Quote: c.quote,
			Rate:  decimal.NewFromFloat(val),
		}}, nil
	case map[string]any:
		var prices []bookkeeping.Price
		for quote, raw := range val {
			rate, ok := raw.(float64)
			if !ok {
				return nil, fmt.Errorf("rate for %q is not a number: %v", quote, raw)
			}
			prices = append(prices, bookkeeping.Price{
				Date:  on,
				Base:  c.base,
				Quote: quote,
				Rate:  decimal.NewFromFloat(rate),
			})
		}
		sort.Slice(prices, func(i, j int) bool { return prices[i].Quote < prices[j].Quote })
		return prices, nil
	default:
		return nil, fmt.Errorf("path %q selects neither a number nor an object: %v", c.path, jval)
	}
}
