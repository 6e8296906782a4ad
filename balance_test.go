package bookkeeping

import (
	"slices"
	"testing"
)

func mustParseLedger(t *testing.T, text string) *Ledger {
	t.Helper()
	l, err := ParseLedger(text)
	if err != nil {
		t.Fatalf("ParseLedger() error: %v", err)
	}
	return l
}

func TestBalanceOf(t *testing.T) {
	l := mustParseLedger(t, `
2024-01-01 Opening
  Assets:Bank       100 USD
  Equity:Opening   -100 USD

2024-01-02 Groceries
  Expenses:Food    12.5 USD
  Assets:Bank
`)

	b := BalanceOf(l)
	if got := b.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	if got := b.AmountFor("Assets:Bank").AmountIn("USD"); !got.Equal(USD(87.5)) {
		t.Errorf("Assets:Bank = %v, want %v", got, USD(87.5))
	}
	if got := b.AmountFor("Expenses:Food").AmountIn("USD"); !got.Equal(USD(12.5)) {
		t.Errorf("Expenses:Food = %v, want %v", got, USD(12.5))
	}
	if got := b.AmountFor("Equity:Opening").AmountIn("USD"); !got.Equal(USD(-100)) {
		t.Errorf("Equity:Opening = %v, want %v", got, USD(-100))
	}
}

func TestBalance_pruning(t *testing.T) {
	l := mustParseLedger(t, `
2024-01-01 Fund a pocket
  Assets:Pocket    10 USD
  Assets:Bank     -10 USD

2024-01-02 Empty the pocket
  Assets:Bank      10 USD
  Assets:Pocket   -10 USD
`)

	b := BalanceOf(l)
	names := slices.Collect(b.AccountNames())
	if slices.Contains(names, "Assets:Pocket") {
		t.Errorf("zeroed account still present: %v", names)
	}
	if slices.Contains(names, "Assets:Bank") {
		t.Errorf("zeroed account still present: %v", names)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
	// An absent account reads as an empty MultiAmount.
	if got := b.AmountFor("Assets:Pocket"); !got.IsZero() {
		t.Errorf("AmountFor(absent) = %v, want zero", got)
	}
}

func TestBalance_orderIndependence(t *testing.T) {
	a := mustParseLedger(t, `
2024-01-01 One
  A   10 USD
  B  -10 USD
`)
	b := mustParseLedger(t, `
2024-01-02 Two
  A    5 USD
  C   -5 USD
`)

	if !BalanceOf(a, b).Equal(BalanceOf(b, a)) {
		t.Errorf("final balance depends on ledger order")
	}
}

func TestBalance_multiCurrency(t *testing.T) {
	l := mustParseLedger(t, `
2024-01-02 Buy EUR
  Assets:Wallet   45 EUR @ 2 USD
  Assets:Wallet  -90 USD
  Assets:Bank     90 USD
  Assets:Bank    -45 EUR @ 2 USD
`)

	b := BalanceOf(l)
	wallet := b.AmountFor("Assets:Wallet")
	if got := wallet.AmountIn("EUR"); !got.Equal(EUR(45)) {
		t.Errorf("wallet EUR = %v, want %v", got, EUR(45))
	}
	if got := wallet.AmountIn("USD"); !got.Equal(USD(-90)) {
		t.Errorf("wallet USD = %v, want %v", got, USD(-90))
	}
}

func TestBalance_PrefixTotal(t *testing.T) {
	l := mustParseLedger(t, `
2024-01-01 Opening
  Assets:Bank     100 USD
  Assets:Cash      20 USD
  Liabilities:Card  -5 USD
  Equity:Opening  -115 USD
`)

	b := BalanceOf(l)
	total := b.PrefixTotal("Assets")
	if got := total.AmountIn("USD"); !got.Equal(USD(120)) {
		t.Errorf("PrefixTotal(Assets) = %v, want %v", got, USD(120))
	}
	both := b.PrefixTotal("Assets", "Liabilities")
	if got := both.AmountIn("USD"); !got.Equal(USD(115)) {
		t.Errorf("PrefixTotal(Assets, Liabilities) = %v, want %v", got, USD(115))
	}
}

func TestBalance_AddAllSubAll(t *testing.T) {
	l := mustParseLedger(t, `
2024-01-01 Opening
  A   10 USD
  B  -10 USD
`)
	b := BalanceOf(l)

	c := b.Clone()
	c.SubAll(b)
	if c.Len() != 0 {
		t.Errorf("balance minus itself is not empty: %d accounts", c.Len())
	}

	d := NewBalance()
	d.AddAll(b)
	if !d.Equal(b) {
		t.Errorf("AddAll into empty differs from source")
	}
	// b itself is untouched.
	if got := b.AmountFor("A").AmountIn("USD"); !got.Equal(USD(10)) {
		t.Errorf("source balance mutated: %v", got)
	}
}

func TestTreeOf(t *testing.T) {
	l := mustParseLedger(t, `
2024-01-01 Opening
  Assets:Bank:Checking  100 USD
  Assets:Cash            20 USD
  Equity:Opening       -120 USD
`)

	tree := TreeOf(BalanceOf(l))

	if got := tree.Total.AmountIn("USD"); !got.IsZero() {
		t.Errorf("grand total = %v, want zero", got)
	}
	assets := tree.Children["Assets"]
	if assets == nil {
		t.Fatal("no Assets node")
	}
	if got := assets.Total.AmountIn("USD"); !got.Equal(USD(120)) {
		t.Errorf("Assets subtree total = %v, want %v", got, USD(120))
	}
	checking := assets.Children["Bank"].Children["Checking"]
	if got := checking.Total.AmountIn("USD"); !got.Equal(USD(100)) {
		t.Errorf("leaf total = %v, want %v", got, USD(100))
	}
}
