package bookkeeping

// The ledger simplification transform.
//
// A simplified ledger is a normalized view where every posting holds exactly
// one currency (currency-exchange postings are folded through their attached
// price) and carries its transaction's date, description and tags directly,
// so each posting is self-contained for downstream consumers.

// SimplifiedPosting is a posting with its transaction's metadata denormalized
// onto it. It always carries exactly one currency and no price.
type SimplifiedPosting struct {
	Date        Date
	Status      Status
	Description string
	Account     string
	Amount      Amount
	Comment     string
	Tags        []Tag
}

// SimplifiedTransaction is a transaction whose postings are all plain
// single-currency postings.
type SimplifiedTransaction struct {
	Date        Date
	Status      Status
	Code        string
	Description string
	Comment     string
	Tags        []Tag
	Postings    []SimplifiedPosting
}

// SimplifiedLedger is the ordered sequence of simplified transactions,
// together with the source ledger's price directives.
type SimplifiedLedger struct {
	Prices       []Price
	Transactions []SimplifiedTransaction
}

// Simplify transforms a ledger into its simplified form.
//
// Per transaction: each posting keeps its own amount in its own currency, and
// price annotations are dropped. An exchange posting's converted value is not
// emitted, it is already represented by the offsetting posting of the double
// entry; the price served its purpose during balance validation. Zero-amount
// postings are dropped. Any invalid transaction fails the whole operation.
func Simplify(l *Ledger) (*SimplifiedLedger, error) {
	sl := &SimplifiedLedger{Prices: l.Prices()}
	for _, tx := range l.Transactions() {
		stx, err := simplifyTransaction(tx)
		if err != nil {
			return nil, err
		}
		sl.Transactions = append(sl.Transactions, stx)
	}
	return sl, nil
}

// ParseSimplifiedLedger parses ledger-cli text and simplifies it in one step.
func ParseSimplifiedLedger(text string) (*SimplifiedLedger, error) {
	l, err := ParseLedger(text)
	if err != nil {
		return nil, err
	}
	return Simplify(l)
}

func simplifyTransaction(tx Transaction) (SimplifiedTransaction, error) {
	stx := SimplifiedTransaction{
		Date:        tx.Date,
		Status:      tx.Status,
		Code:        tx.Code,
		Description: tx.Description,
		Comment:     tx.Comment,
		Tags:        tx.Tags,
	}
	for _, p := range tx.Postings {
		if !p.HasAmount() {
			// Ledger construction resolves all omissions; reaching here means
			// the transaction skipped validation.
			return stx, &MultipleOmissionsError{Date: tx.Date, Description: tx.Description}
		}
		if p.Amount.IsZero() {
			continue // a zero leg carries no information
		}
		stx.Postings = append(stx.Postings, SimplifiedPosting{
			Date:        tx.Date,
			Status:      tx.Status,
			Description: tx.Description,
			Account:     p.Account,
			Amount:      p.Amount,
			Comment:     p.Comment,
			Tags:        p.Tags,
		})
	}
	return stx, nil
}

// Balance folds the simplified postings into a per-account balance, with the
// same per-transaction zero-pruning as BalanceOf.
func (sl *SimplifiedLedger) Balance() *Balance {
	b := NewBalance()
	for _, tx := range sl.Transactions {
		for _, p := range tx.Postings {
			b.add(p.Account, p.Amount)
		}
		b.prune()
	}
	return b
}
