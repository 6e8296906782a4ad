package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/bookkeeping"
)

func mustParseLedger(t *testing.T, text string) *bookkeeping.Ledger {
	t.Helper()
	l, err := bookkeeping.ParseLedger(text)
	if err != nil {
		t.Fatalf("ParseLedger() error: %v", err)
	}
	return l
}

const journal = `
2024-01-05 Opening
  Assets:Bank:Checking  100 USD
  Assets:Cash            20 USD
  Equity:Opening       -120 USD

2024-02-10 Groceries
  Expenses:Food   30 USD
  Assets:Cash
`

func TestNewBalanceReport(t *testing.T) {
	b := bookkeeping.BalanceOf(mustParseLedger(t, journal))

	r := NewBalanceReport("Balance", b)
	if r.Title != "Balance" {
		t.Errorf("Title = %q", r.Title)
	}
	var accounts []string
	for _, row := range r.Accounts {
		accounts = append(accounts, row.Account)
	}
	expected := []string{"Assets:Bank:Checking", "Assets:Cash", "Equity:Opening", "Expenses:Food"}
	if len(accounts) != len(expected) {
		t.Fatalf("accounts = %v, want %v", accounts, expected)
	}
	for i := range expected {
		if accounts[i] != expected[i] {
			t.Errorf("accounts[%d] = %q, want %q (sorted)", i, accounts[i], expected[i])
		}
	}

	filtered := NewBalanceReport("Assets", b, "Assets")
	if len(filtered.Accounts) != 2 {
		t.Errorf("prefix filter kept %d accounts, want 2", len(filtered.Accounts))
	}
}

func TestBalanceMarkdown(t *testing.T) {
	b := bookkeeping.BalanceOf(mustParseLedger(t, journal))
	md := BalanceMarkdown(NewBalanceReport("Balance", b))

	for _, want := range []string{"# Balance", "| Assets:Bank:Checking | 100 USD |", "| Equity:Opening | -120 USD |"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown misses %q:\n%s", want, md)
		}
	}
}

func TestTreeMarkdown(t *testing.T) {
	b := bookkeeping.BalanceOf(mustParseLedger(t, journal))
	r := NewTreeReport("Balance", bookkeeping.TreeOf(b))

	if len(r.Rows) == 0 {
		t.Fatal("no rows")
	}
	if r.Rows[0].Segment != "Assets" || r.Rows[0].Indent != "" {
		t.Errorf("first row = %+v, want top level Assets", r.Rows[0])
	}

	md := TreeMarkdown(r)
	for _, want := range []string{"# Balance", "- **Assets**: 90 USD", "  - **Bank**: 100 USD"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown misses %q:\n%s", want, md)
		}
	}
}

func TestMonthlyMarkdown(t *testing.T) {
	l := mustParseLedger(t, journal)
	r := NewMonthlyReport("Monthly Report", bookkeeping.MonthlyReportOf(l))

	if len(r.Months) != 2 {
		t.Fatalf("got %d months, want 2", len(r.Months))
	}
	if r.Months[0].Month != "2024-01" || r.Months[1].Month != "2024-02" {
		t.Errorf("months = %q, %q", r.Months[0].Month, r.Months[1].Month)
	}

	md := MonthlyMarkdown(r)
	for _, want := range []string{"# Monthly Report", "## 2024-01", "## 2024-02", "| Expenses:Food | 30 USD |"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown misses %q:\n%s", want, md)
		}
	}
}
