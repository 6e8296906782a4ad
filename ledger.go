package bookkeeping

import (
	"iter"
	"sort"

	"github.com/etnz/bookkeeping/parser"
)

// Ledger holds transactions in chronological order together with the price
// directives known to it.
//
// Transactions are validated and their omitted amounts resolved when they
// enter the ledger; afterwards they are immutable. Derived views (Balance,
// SimplifiedLedger, MonthlyReport) never mutate the ledger.
type Ledger struct {
	transactions []Transaction
	prices       []Price
	index        *PriceIndex
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{index: NewPriceIndex()}
}

// ParseLedger parses ledger-cli text and validates every transaction:
// omitted amounts are resolved and each transaction must balance. One invalid
// transaction fails the whole parse, there is no partial result.
func ParseLedger(text string) (*Ledger, error) {
	raw, err := parser.ParseString(text)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return buildLedger(raw)
}

// buildLedger assembles a validated Ledger from raw parser items.
func buildLedger(raw *parser.Ledger) (*Ledger, error) {
	l := NewLedger()

	// Top-level comments attach to the transaction that follows them.
	var comment string
	for _, item := range raw.Items {
		switch v := item.(type) {
		case parser.Comment:
			comment = joinComments(comment, string(v))
		case parser.Price:
			comment = ""
			l.addPrice(Price{
				Date:  NewDate(v.Date.Date()),
				Base:  v.Commodity,
				Quote: v.Amount.Commodity,
				Rate:  v.Amount.Quantity,
			})
		case parser.Transaction:
			tx := newTransaction(v)
			tx.Comment = joinComments(comment, tx.Comment)
			comment = ""
			l.transactions = append(l.transactions, tx)
		}
	}

	for i := range l.transactions {
		if err := resolveTransaction(&l.transactions[i], l.index); err != nil {
			return nil, err
		}
	}

	// With all amounts now explicit, two-posting currency exchanges are rate
	// observations worth indexing.
	for _, p := range inferredPrices(l.transactions) {
		l.index.Insert(p)
	}

	l.stableSort()
	return l, nil
}

// newTransaction maps a raw parser transaction onto the core model.
func newTransaction(v parser.Transaction) Transaction {
	status, _ := ParseStatus(v.Status)
	tx := Transaction{
		Date:        NewDate(v.Date.Date()),
		Status:      status,
		Code:        v.Code,
		Description: v.Description,
		Comment:     v.Comment,
		Tags:        newTags(v.Tags),
	}
	for _, rp := range v.Postings {
		p := Posting{
			Account: rp.Account,
			Comment: rp.Comment,
			Tags:    newTags(rp.Tags),
		}
		if rp.Amount != nil {
			p.Amount = A(rp.Amount.Quantity, rp.Amount.Commodity)
		}
		if rp.Price != nil {
			p.Price = A(rp.Price.Quantity, rp.Price.Commodity)
		}
		tx.Postings = append(tx.Postings, p)
	}
	return tx
}

func newTags(raw []parser.Tag) []Tag {
	if len(raw) == 0 {
		return nil
	}
	tags := make([]Tag, len(raw))
	for i, t := range raw {
		tags[i] = Tag{Name: t.Name, Value: t.Value}
	}
	return tags
}

func joinComments(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "\n" + b
	}
}

// Append validates transactions and adds them to the ledger, maintaining
// chronological order. Omitted amounts are resolved against the ledger's
// current price index.
func (l *Ledger) Append(txs ...Transaction) error {
	resolved := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if err := resolveTransaction(&tx, l.index); err != nil {
			return err
		}
		resolved = append(resolved, tx)
	}
	l.transactions = append(l.transactions, resolved...)
	for _, p := range inferredPrices(resolved) {
		l.index.Insert(p)
	}
	l.stableSort()
	return nil
}

// AddPrice records a price directive.
func (l *Ledger) AddPrice(p Price) { l.addPrice(p) }

func (l *Ledger) addPrice(p Price) {
	l.prices = append(l.prices, p)
	l.index.Insert(p)
}

// Merge combines several ledgers into a new one without mutating the inputs:
// price directives are unioned and transactions concatenated, then both are
// sorted chronologically (stable, so same-day entries keep their
// caller-supplied order).
func Merge(ledgers ...*Ledger) *Ledger {
	merged := NewLedger()
	for _, l := range ledgers {
		for _, p := range l.prices {
			merged.addPrice(p)
		}
		merged.transactions = append(merged.transactions, l.transactions...)
	}
	for _, p := range inferredPrices(merged.transactions) {
		merged.index.Insert(p)
	}
	sort.SliceStable(merged.prices, func(i, j int) bool {
		return merged.prices[i].Date.Before(merged.prices[j].Date)
	})
	merged.stableSort()
	return merged
}

// stableSort sorts the ledger by transaction date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// Transactions returns an iterator that yields each transaction in
// chronological order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Prices returns a copy of the ledger's price directives, in file order.
func (l *Ledger) Prices() []Price {
	return append([]Price(nil), l.prices...)
}

// PriceIndex returns the ledger's price index: the recorded directives plus
// the rates inferred from currency-exchange transactions.
func (l *Ledger) PriceIndex() *PriceIndex { return l.index }

// OldestTransactionDate returns the date of the earliest transaction in the
// ledger, zero when the ledger is empty.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].Date
}

// NewestTransactionDate returns the date of the latest transaction in the
// ledger, zero when the ledger is empty.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].Date
}
