package bookkeeping

import (
	"fmt"
	"strings"
)

// Status is the clearing state of a transaction.
type Status int

const (
	// NoStatus marks a transaction with no clearing annotation.
	NoStatus Status = iota
	// Pending marks a transaction annotated with '!'.
	Pending
	// Cleared marks a transaction annotated with '*'.
	Cleared
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "!"
	case Cleared:
		return "*"
	default:
		return ""
	}
}

// ParseStatus parses a clearing annotation. The empty string is NoStatus.
func ParseStatus(str string) (Status, error) {
	switch str {
	case "":
		return NoStatus, nil
	case "!":
		return Pending, nil
	case "*":
		return Cleared, nil
	default:
		return NoStatus, fmt.Errorf("unknown transaction status %q", str)
	}
}

// Tag is a piece of transaction or posting metadata: a bare marker
// (`; :travel:`) or a key with a value (`; trip: Berlin`).
type Tag struct {
	Name  string
	Value string
}

// Posting is one account/amount line within a transaction.
type Posting struct {
	// Account is the hierarchical account name, colon-separated
	// (e.g. "Assets:Bank").
	Account string
	// Amount is the posted amount. It is unset (no currency) when the ledger
	// file omitted it; resolution fills it in at construction time.
	Amount Amount
	// Price is the optional per-unit price of the amount in another currency,
	// from an `@` annotation. Unset when absent.
	Price   Amount
	Comment string
	Tags    []Tag
}

// HasAmount reports whether the posting carries an explicit amount.
func (p Posting) HasAmount() bool { return p.Amount.IsSet() }

// HasPrice reports whether the posting carries a per-unit price annotation.
func (p Posting) HasPrice() bool { return p.Price.IsSet() }

// IsExchange reports whether the posting converts between currencies: it has
// a price in a currency different from its amount's.
func (p Posting) IsExchange() bool {
	return p.HasAmount() && p.HasPrice() && p.Price.Currency() != p.Amount.Currency()
}

// balanceAmount returns the posting's contribution to its transaction's
// balance: the amount itself, or the amount converted through the attached
// price when one is present.
func (p Posting) balanceAmount() Amount {
	if !p.IsExchange() {
		return p.Amount
	}
	return p.Price.Mul(p.Amount.Quantity())
}

// Transaction is a dated, balanced group of postings.
type Transaction struct {
	Date        Date
	Status      Status
	Code        string
	Description string
	Comment     string
	Tags        []Tag
	Postings    []Posting
}

// String renders a compact one-line summary, used in logs and errors.
func (t Transaction) String() string {
	var b strings.Builder
	b.WriteString(t.Date.String())
	if t.Status != NoStatus {
		b.WriteString(" " + t.Status.String())
	}
	if t.Code != "" {
		b.WriteString(" (" + t.Code + ")")
	}
	if t.Description != "" {
		b.WriteString(" " + t.Description)
	}
	fmt.Fprintf(&b, " (%d postings)", len(t.Postings))
	return b.String()
}
