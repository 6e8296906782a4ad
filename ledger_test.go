package bookkeeping

import (
	"errors"
	"testing"
)

func TestParseLedger(t *testing.T) {
	l, err := ParseLedger(`
P 2024-01-01 EUR 2 USD

; A new year.
2024-01-01 * (1) Opening
  Assets:Bank       100 USD
  Equity:Opening   -100 USD

2024-01-02 ! Groceries
  Expenses:Food    12.5 USD
  Assets:Bank
`)
	if err != nil {
		t.Fatalf("ParseLedger() error: %v", err)
	}

	var txs []Transaction
	for _, tx := range l.Transactions() {
		txs = append(txs, tx)
	}
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}

	opening := txs[0]
	if opening.Date != D("2024-01-01") || opening.Status != Cleared || opening.Code != "1" || opening.Description != "Opening" {
		t.Errorf("opening header = %v", opening)
	}
	if opening.Comment != "A new year." {
		t.Errorf("opening comment = %q, want the preceding top-level comment", opening.Comment)
	}

	groceries := txs[1]
	if groceries.Status != Pending {
		t.Errorf("groceries status = %v, want Pending", groceries.Status)
	}
	// The omitted amount is resolved at parse time.
	if got := groceries.Postings[1].Amount; !got.Equal(USD(-12.5)) {
		t.Errorf("resolved amount = %v, want %v", got, USD(-12.5))
	}

	if len(l.Prices()) != 1 {
		t.Fatalf("got %d price directives, want 1", len(l.Prices()))
	}
	if got := l.OldestTransactionDate(); got != D("2024-01-01") {
		t.Errorf("OldestTransactionDate() = %v", got)
	}
	if got := l.NewestTransactionDate(); got != D("2024-01-02") {
		t.Errorf("NewestTransactionDate() = %v", got)
	}
}

func TestParseLedger_sortsChronologically(t *testing.T) {
	l, err := ParseLedger(`
2024-03-01 Later
  A   1 USD
  B  -1 USD

2024-01-01 Earlier
  A   1 USD
  B  -1 USD
`)
	if err != nil {
		t.Fatalf("ParseLedger() error: %v", err)
	}
	if got := l.OldestTransactionDate(); got != D("2024-01-01") {
		t.Errorf("OldestTransactionDate() = %v, want the reordered first transaction", got)
	}
	for i, tx := range l.Transactions() {
		if i == 0 && tx.Description != "Earlier" {
			t.Errorf("first transaction = %q, want Earlier", tx.Description)
		}
	}
}

func TestParseLedger_syntaxError(t *testing.T) {
	_, err := ParseLedger("  Assets:Bank  100 USD\n")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("ParseLedger() error = %v, want ParseError", err)
	}
}

func TestParseLedger_validation(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		target any
	}{
		{
			name: "unbalanced single currency",
			text: `
2024-01-01 Broken
  A   10 USD
  B   -9 USD
`,
			target: new(*UnbalancedError),
		},
		{
			name: "two omitted amounts",
			text: `
2024-01-01 Broken
  A   10 USD
  B
  C
`,
			target: new(*MultipleOmissionsError),
		},
		{
			name: "omission among mixed currencies",
			text: `
2024-01-01 Broken
  A   10 USD
  B   -9 EUR
  C
`,
			target: new(*AmbiguousOmissionError),
		},
		{
			name: "omission with nothing to infer from",
			text: `
2024-01-01 Broken
  A
`,
			target: new(*AmbiguousOmissionError),
		},
		{
			name: "two currencies and no price anywhere",
			text: `
2024-01-01 Broken
  A   10 USD
  B   -9 EUR
`,
			target: new(*NoPriceError),
		},
		{
			name: "unbalanced across currencies",
			text: `
P 2024-01-01 EUR 2 USD

2024-01-01 Broken
  A   10 USD
  B   -4 EUR
`,
			target: new(*UnbalancedError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLedger(tt.text)
			if err == nil {
				t.Fatal("ParseLedger() did not fail")
			}
			if !errors.As(err, tt.target) {
				t.Errorf("ParseLedger() error = %v (%T), want %T", err, err, tt.target)
			}
		})
	}
}

func TestParseLedger_balancedCases(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "already balanced, no omission",
			text: `
2024-01-01 Plain
  A   10 USD
  B  -10 USD
`,
		},
		{
			name: "self-priced exchange",
			text: `
2024-01-02 Buy EUR
  Assets:EuroAccount   45 EUR @ 2 USD
  Assets:Bank         -90 USD
`,
		},
		{
			name: "total cost annotation",
			text: `
2024-01-02 Buy EUR
  Assets:EuroAccount   45 EUR @@ 90 USD
  Assets:Bank         -90 USD
`,
		},
		{
			name: "cross currency reconciled through a directive",
			text: `
P 2024-01-01 EUR 2 USD

2024-01-02 Exchange
  A   45 EUR
  B  -90 USD
`,
		},
		{
			name: "omission next to an exchange posting",
			text: `
2024-01-02 Buy EUR
  Assets:EuroAccount   45 EUR @ 2 USD
  Assets:Bank
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLedger(tt.text); err != nil {
				t.Errorf("ParseLedger() error: %v", err)
			}
		})
	}
}

func TestParseLedger_reconciliationIsPostingOrderIndependent(t *testing.T) {
	// 1 USD = 3 EUR: the recorded direction is exact, the stored inverse
	// (1/3) is rounded. The transaction balances either way its postings
	// are listed.
	tests := []struct {
		name string
		text string
	}{
		{
			name: "rounded-inverse currency first",
			text: `
P 2024-01-01 USD 3 EUR

2024-01-02 Exchange
  A   -1 USD
  B    3 EUR
`,
		},
		{
			name: "exact-rate currency first",
			text: `
P 2024-01-01 USD 3 EUR

2024-01-02 Exchange
  B    3 EUR
  A   -1 USD
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLedger(tt.text); err != nil {
				t.Errorf("ParseLedger() error: %v", err)
			}
		})
	}
}

func TestParseLedger_omissionNextToExchange(t *testing.T) {
	l, err := ParseLedger(`
2024-01-02 Buy EUR
  Assets:EuroAccount   45 EUR @ 2 USD
  Assets:Bank
`)
	if err != nil {
		t.Fatalf("ParseLedger() error: %v", err)
	}
	for _, tx := range l.Transactions() {
		if got := tx.Postings[1].Amount; !got.Equal(USD(-90)) {
			t.Errorf("resolved amount = %v, want %v (through the attached price)", got, USD(-90))
		}
	}
}

func TestLedger_Append(t *testing.T) {
	l := NewLedger()
	err := l.Append(Transaction{
		Date:        D("2024-01-01"),
		Description: "Opening",
		Postings: []Posting{
			{Account: "Assets:Bank", Amount: USD(100)},
			{Account: "Equity:Opening"},
		},
	})
	if err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	b := BalanceOf(l)
	if got := b.AmountFor("Equity:Opening").AmountIn("USD"); !got.Equal(USD(-100)) {
		t.Errorf("appended omission resolved to %v, want %v", got, USD(-100))
	}

	err = l.Append(Transaction{
		Date:        D("2024-01-02"),
		Description: "Broken",
		Postings: []Posting{
			{Account: "A", Amount: USD(1)},
			{Account: "B", Amount: USD(1)},
		},
	})
	var unbalanced *UnbalancedError
	if !errors.As(err, &unbalanced) {
		t.Errorf("Append() error = %v, want UnbalancedError", err)
	}
}

func TestLedger_Append_priceOnOmittedPosting(t *testing.T) {
	// A price annotation without an amount gives no quantity to apply it to.
	err := NewLedger().Append(Transaction{
		Date:        D("2024-01-01"),
		Description: "Broken",
		Postings: []Posting{
			{Account: "A", Amount: USD(10)},
			{Account: "B", Price: EUR(2)},
		},
	})
	var ambiguous *AmbiguousOmissionError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("Append() error = %v, want AmbiguousOmissionError", err)
	}
	if ambiguous.Account != "B" {
		t.Errorf("AmbiguousOmissionError.Account = %q, want B", ambiguous.Account)
	}
}

func TestMerge(t *testing.T) {
	a, err := ParseLedger(`
P 2024-01-01 EUR 2 USD

2024-02-01 February
  A   1 USD
  B  -1 USD
`)
	if err != nil {
		t.Fatalf("ParseLedger() error: %v", err)
	}
	b, err := ParseLedger(`
2024-01-15 January
  A   1 USD
  B  -1 USD
`)
	if err != nil {
		t.Fatalf("ParseLedger() error: %v", err)
	}

	merged := Merge(a, b)

	var descriptions []string
	for _, tx := range merged.Transactions() {
		descriptions = append(descriptions, tx.Description)
	}
	if len(descriptions) != 2 || descriptions[0] != "January" || descriptions[1] != "February" {
		t.Errorf("merged order = %v, want [January February]", descriptions)
	}
	if len(merged.Prices()) != 1 {
		t.Errorf("merged prices = %d, want 1", len(merged.Prices()))
	}

	// Merge does not mutate its inputs.
	if got := len(a.Prices()); got != 1 {
		t.Errorf("input ledger mutated, %d prices", got)
	}
	for i := range b.Transactions() {
		if i > 0 {
			t.Errorf("input ledger mutated, extra transactions")
		}
	}
}
