package renderer

import (
	"fmt"

	"github.com/etnz/bookkeeping"
)

// MonthRow is one month of a monthly report.
type MonthRow struct {
	Month  string // "2024-01"
	Change []AccountRow
	Total  []AccountRow
}

// MonthlyReport is the template-friendly view of a monthly report.
type MonthlyReport struct {
	Title  string
	Months []MonthRow
}

// NewMonthlyReport builds the view, restricted to accounts matching the
// prefixes when any is given.
func NewMonthlyReport(title string, report *bookkeeping.MonthlyReport, prefixes ...string) *MonthlyReport {
	r := &MonthlyReport{Title: title}
	for _, m := range report.Months {
		r.Months = append(r.Months, MonthRow{
			Month:  fmt.Sprintf("%04d-%02d", m.Year, int(m.Month)),
			Change: NewBalanceReport("", m.Change, prefixes...).Accounts,
			Total:  NewBalanceReport("", m.Total, prefixes...).Accounts,
		})
	}
	return r
}
