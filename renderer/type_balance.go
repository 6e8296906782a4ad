package renderer

import (
	"sort"
	"strings"

	"github.com/etnz/bookkeeping"
)

// AccountRow is one line of a balance report.
type AccountRow struct {
	Account string
	Amounts []string // one "<quantity> <currency>" entry per currency
}

// BalanceReport is the template-friendly view of a Balance.
type BalanceReport struct {
	Title    string
	Accounts []AccountRow
}

// NewBalanceReport builds a report over accounts matching any of the
// prefixes (all accounts when none is given), sorted lexicographically.
func NewBalanceReport(title string, b *bookkeeping.Balance, prefixes ...string) *BalanceReport {
	r := &BalanceReport{Title: title}
	for account := range b.AccountNames() {
		if !matches(account, prefixes) {
			continue
		}
		r.Accounts = append(r.Accounts, AccountRow{
			Account: account,
			Amounts: amountStrings(b.AmountFor(account)),
		})
	}
	sort.Slice(r.Accounts, func(i, j int) bool { return r.Accounts[i].Account < r.Accounts[j].Account })
	return r
}

func matches(account string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(account, p) {
			return true
		}
	}
	return false
}

func amountStrings(m *bookkeeping.MultiAmount) []string {
	var out []string
	for a := range m.Amounts() {
		out = append(out, a.String())
	}
	return out
}

// TreeRow is one line of a hierarchical balance report.
type TreeRow struct {
	Indent  string // two spaces per depth level
	Segment string
	Amounts []string
}

// TreeReport is the template-friendly view of a TreeBalance.
type TreeReport struct {
	Title string
	Rows  []TreeRow
}

// NewTreeReport flattens a balance tree into indented rows, children sorted
// by segment name.
func NewTreeReport(title string, tree *bookkeeping.TreeBalance) *TreeReport {
	r := &TreeReport{Title: title}
	var walk func(node *bookkeeping.TreeBalance, depth int)
	walk = func(node *bookkeeping.TreeBalance, depth int) {
		segments := make([]string, 0, len(node.Children))
		for s := range node.Children {
			segments = append(segments, s)
		}
		sort.Strings(segments)
		for _, s := range segments {
			child := node.Children[s]
			r.Rows = append(r.Rows, TreeRow{
				Indent:  strings.Repeat("  ", depth),
				Segment: s,
				Amounts: amountStrings(child.Total),
			})
			walk(child, depth+1)
		}
	}
	walk(tree, 0)
	return r
}
