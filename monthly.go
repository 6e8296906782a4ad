package bookkeeping

import "time"

// MonthlyBalance is one month's bucket of a MonthlyReport: the balance change
// within the month, and the running total at its end.
type MonthlyBalance struct {
	Year   int
	Month  time.Month
	Change *Balance
	Total  *Balance
}

// MonthlyReport is the sequence of monthly balances of a ledger, in
// chronological order. Months with no transactions are skipped.
type MonthlyReport struct {
	Months []MonthlyBalance
}

// MonthlyReportOf buckets a ledger's transactions by calendar month.
func MonthlyReportOf(l *Ledger) *MonthlyReport {
	report := &MonthlyReport{}

	var current *MonthlyBalance
	change := NewBalance()
	total := NewBalance()

	for _, tx := range l.Transactions() {
		if current == nil || tx.Date.Year() != current.Year || tx.Date.Month() != current.Month {
			if current != nil {
				current.Change = change.Clone()
				current.Total = total.Clone()
				report.Months = append(report.Months, *current)
			}
			current = &MonthlyBalance{Year: tx.Date.Year(), Month: tx.Date.Month()}
			change = NewBalance()
		}
		change.Update(tx)
		total.Update(tx)
	}

	if current != nil {
		current.Change = change.Clone()
		current.Total = total.Clone()
		report.Months = append(report.Months, *current)
	}

	return report
}
