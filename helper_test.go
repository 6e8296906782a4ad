package bookkeeping

import "github.com/shopspring/decimal"

// dec is a helper for tests to create exact decimals from a string
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// EUR is a helper for tests to create euro amounts from const
func EUR(v float64) Amount { return A(v, "EUR") }

// USD is a helper for tests to create usd amounts from const
func USD(v float64) Amount { return A(v, "USD") }

// GBP is a helper for tests to create pound amounts from const
func GBP(v float64) Amount { return A(v, "GBP") }

// NO is a helper for tests to create an omitted amount
func NO() Amount { return Amount{} }

// D is a helper for tests to create dates from a string
func D(s string) Date { return MustParseDate(s) }
