package bookkeeping

// Omission resolution and balance validation.
//
// Each transaction goes through resolveTransaction exactly once, at ledger
// construction time. Afterwards every posting carries an explicit amount and
// the transaction is known to balance.

// resolveTransaction fills in the single omitted amount of a transaction, or
// verifies that its postings sum to zero when no amount is omitted.
//
// Postings that carry a price annotation contribute their amount converted
// through that price. When the remaining residual still spans several
// currencies, it is reconciled through the price index at the transaction
// date.
func resolveTransaction(t *Transaction, prices *PriceIndex) error {
	omitted := -1
	for i, p := range t.Postings {
		if p.HasAmount() {
			continue
		}
		if omitted >= 0 {
			return &MultipleOmissionsError{Date: t.Date, Description: t.Description}
		}
		omitted = i
	}

	// Per-currency sums of all explicit postings, prices applied.
	sums := NewMultiAmount()
	for i, p := range t.Postings {
		if i == omitted {
			continue
		}
		sums.Add(p.balanceAmount())
	}

	if omitted >= 0 {
		return fillOmitted(t, omitted, sums)
	}
	return checkBalanced(t, sums, prices)
}

// fillOmitted computes the omitted posting's amount as the negation of the
// others' sum. There is no rule to infer a cross-currency omitted amount, so
// anything but a single-currency remainder is ambiguous. A posting that omits
// its amount but carries a price annotation is ambiguous too: the price gives
// no quantity to apply it to.
func fillOmitted(t *Transaction, omitted int, sums *MultiAmount) error {
	ambiguous := &AmbiguousOmissionError{
		Date:        t.Date,
		Description: t.Description,
		Account:     t.Postings[omitted].Account,
	}
	if t.Postings[omitted].HasPrice() {
		return ambiguous
	}
	switch sums.Len() {
	case 0:
		// No other explicit amount to infer a currency from.
		return ambiguous
	case 1:
		for a := range sums.Amounts() {
			t.Postings[omitted].Amount = a.Neg()
		}
		return nil
	default:
		return ambiguous
	}
}

// checkBalanced verifies that the residual sums to zero. A residual spanning
// several currencies is reconciled through the price index: each residual
// currency is tried as the conversion target, and the transaction balances if
// any of them nets to exactly zero. Only the recorded rate direction is
// exact, its stored inverse is rounded, so the outcome must not depend on
// which currency the postings list first.
func checkBalanced(t *Transaction, sums *MultiAmount, prices *PriceIndex) error {
	if sums.IsZero() {
		return nil
	}
	unbalanced := &UnbalancedError{Date: t.Date, Description: t.Description, Residual: sums}
	if sums.Len() == 1 {
		return unbalanced
	}
	var convErr error
	converted := false
	for a := range sums.Amounts() {
		total, err := sums.ValueIn(a.Currency(), t.Date, prices)
		if err != nil {
			if convErr == nil {
				convErr = err
			}
			continue
		}
		converted = true
		if total.IsZero() {
			return nil
		}
	}
	if !converted {
		return convErr
	}
	return unbalanced
}
