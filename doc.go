// Package bookkeeping computes balances and simplified transaction views
// from plain-text accounting ledgers in the ledger-cli double-entry format.
//
// The core functionalities include:
//   - Ledger Management: parsing ledger text into a validated, chronological
//     record of transactions, with omitted amounts resolved and every
//     transaction checked to balance.
//   - Price Index: time-ordered exchange-rate directives, queryable by
//     currency pair as of a date, used for all currency conversions.
//   - Balance Reports: folding one or more ledgers into per-account,
//     per-currency balances, with zero-balance accounts pruned as the fold
//     progresses, plus hierarchical and monthly views.
//   - Ledger Simplification: a normalized view where currency-exchange
//     postings are folded into single-currency postings that carry their
//     transaction's date, description and tags directly.
//
// All operations are deterministic, in-memory transforms over immutable
// inputs: the package performs no I/O and keeps no process-wide state. It
// serves as the foundational logic for the `bkp` command-line tool.
package bookkeeping
