package bookkeeping

import (
	"iter"
	"strings"
)

// Balance maps account names to their multi-currency balances.
//
// An account absent from the map has a zero balance by definition: accounts
// are pruned from the map as soon as their balance nets to zero, after every
// transaction, not only at the end of a fold.
type Balance struct {
	accounts map[string]*MultiAmount
}

// NewBalance creates an empty balance.
func NewBalance() *Balance {
	return &Balance{accounts: make(map[string]*MultiAmount)}
}

// BalanceOf folds the transactions of one or more ledgers, in the given
// order, into a per-account balance.
//
// The final balance is independent of transaction order; intermediate states
// observed through incremental Update calls are not, because of pruning.
func BalanceOf(ledgers ...*Ledger) *Balance {
	b := NewBalance()
	for _, l := range ledgers {
		for _, tx := range l.Transactions() {
			b.Update(tx)
		}
	}
	return b
}

// Update folds one transaction into the balance and prunes the accounts that
// netted to zero.
func (b *Balance) Update(tx Transaction) {
	for _, p := range tx.Postings {
		b.add(p.Account, p.Amount)
	}
	b.prune()
}

// Add merges a single amount into an account and prunes it if it nets to zero.
func (b *Balance) Add(account string, a Amount) {
	b.add(account, a)
	b.prune()
}

func (b *Balance) add(account string, a Amount) {
	m, ok := b.accounts[account]
	if !ok {
		m = NewMultiAmount()
		b.accounts[account] = m
	}
	m.Add(a)
}

// AddAll merges another balance into b.
func (b *Balance) AddAll(o *Balance) {
	for account, m := range o.accounts {
		for a := range m.Amounts() {
			b.add(account, a)
		}
	}
	b.prune()
}

// SubAll subtracts another balance from b.
func (b *Balance) SubAll(o *Balance) {
	for account, m := range o.accounts {
		for a := range m.Amounts() {
			b.add(account, a.Neg())
		}
	}
	b.prune()
}

func (b *Balance) prune() {
	for account, m := range b.accounts {
		if m.IsZero() {
			delete(b.accounts, account)
		}
	}
}

// Len returns the number of accounts with a nonzero balance.
func (b *Balance) Len() int { return len(b.accounts) }

// AccountNames yields the accounts with a nonzero balance, in unspecified
// order. Callers sort as needed.
func (b *Balance) AccountNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		for account := range b.accounts {
			if !yield(account) {
				return
			}
		}
	}
}

// AmountFor returns the account's balance, empty if the account is absent.
// The returned value is a copy; mutating it does not affect b.
func (b *Balance) AmountFor(account string) *MultiAmount {
	if m, ok := b.accounts[account]; ok {
		return m.Clone()
	}
	return NewMultiAmount()
}

// PrefixTotal sums the balances of every account whose name starts with any
// of the given prefixes.
func (b *Balance) PrefixTotal(prefixes ...string) *MultiAmount {
	total := NewMultiAmount()
	for account, m := range b.accounts {
		for _, prefix := range prefixes {
			if strings.HasPrefix(account, prefix) {
				total.AddAll(m)
				break
			}
		}
	}
	return total
}

// Clone returns an independent copy of the balance.
func (b *Balance) Clone() *Balance {
	c := NewBalance()
	for account, m := range b.accounts {
		c.accounts[account] = m.Clone()
	}
	return c
}

// Equal reports whether both balances hold the same accounts with the same
// amounts.
func (b *Balance) Equal(o *Balance) bool {
	if len(b.accounts) != len(o.accounts) {
		return false
	}
	for account, m := range b.accounts {
		w, ok := o.accounts[account]
		if !ok || !m.Equal(w) {
			return false
		}
	}
	return true
}
