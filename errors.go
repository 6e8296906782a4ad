package bookkeeping

import "fmt"

// The error taxonomy of the package. Every failure surfaced by ledger
// construction, balance reconciliation or simplification is one of these
// types, so callers can dispatch with errors.As.

// ParseError wraps the parser collaborator's failure verbatim.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "parse error: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// UnbalancedError reports a transaction whose postings do not sum to zero.
type UnbalancedError struct {
	Date        Date
	Description string
	Residual    *MultiAmount // the nonzero remainder, for diagnostics
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("unbalanced transaction on %s %q: off by %v", e.Date, e.Description, e.Residual)
}

// AmbiguousOmissionError reports a transaction with exactly one omitted
// amount that cannot be inferred because the remaining postings span several
// currencies.
type AmbiguousOmissionError struct {
	Date        Date
	Description string
	Account     string // the posting whose amount was omitted
}

func (e *AmbiguousOmissionError) Error() string {
	return fmt.Sprintf("cannot infer amount for %q on %s %q: remaining postings span multiple currencies", e.Account, e.Date, e.Description)
}

// MultipleOmissionsError reports a transaction with more than one posting
// lacking an explicit amount.
type MultipleOmissionsError struct {
	Date        Date
	Description string
}

func (e *MultipleOmissionsError) Error() string {
	return fmt.Sprintf("multiple postings without an amount on %s %q", e.Date, e.Description)
}

// NoPriceError reports a currency conversion with no applicable price
// directive.
type NoPriceError struct {
	Base  string
	Quote string
	On    Date
}

func (e *NoPriceError) Error() string {
	return fmt.Sprintf("no price available for %s/%s as of %s", e.Base, e.Quote, e.On)
}
