package bookkeeping

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Price is a directive recording that on a given date, one unit of Base was
// worth Rate units of Quote.
type Price struct {
	Date  Date
	Base  string
	Quote string
	Rate  decimal.Decimal
}

func (p Price) String() string {
	return "P " + p.Date.String() + " " + p.Base + " " + p.Rate.String() + " " + p.Quote
}

type currencyPair struct {
	base, quote string
}

type ratePoint struct {
	on   Date
	rate decimal.Decimal
}

// PriceIndex holds exchange-rate directives, indexed by currency pair and
// queryable as of a date.
type PriceIndex struct {
	rates map[currencyPair][]ratePoint // sorted by date, one point per day
}

// NewPriceIndex returns a price index holding the given directives.
func NewPriceIndex(prices ...Price) *PriceIndex {
	px := &PriceIndex{rates: make(map[currencyPair][]ratePoint)}
	for _, p := range prices {
		px.Insert(p)
	}
	return px
}

// Insert records a price directive, together with its inverse so the pair can
// be converted both ways. A zero rate has no inverse and is ignored. When a
// directive for the same pair and date already exists, the new one wins:
// directives are inserted in ledger-file order, which is chronological within
// a day.
func (px *PriceIndex) Insert(p Price) {
	if p.Rate.IsZero() {
		return
	}
	px.insert(p.Base, p.Quote, p.Rate, p.Date)
	px.insert(p.Quote, p.Base, decimal.NewFromInt(1).Div(p.Rate), p.Date)
}

func (px *PriceIndex) insert(base, quote string, rate decimal.Decimal, on Date) {
	pair := currencyPair{base, quote}
	table := px.rates[pair]
	i := sort.Search(len(table), func(i int) bool { return !table[i].on.Before(on) })
	if i < len(table) && table[i].on == on {
		table[i].rate = rate
		return
	}
	table = append(table, ratePoint{})
	copy(table[i+1:], table[i:])
	table[i] = ratePoint{on: on, rate: rate}
	px.rates[pair] = table
}

// Rate returns the most recent rate for the base/quote pair with date ≤ asOf.
func (px *PriceIndex) Rate(base, quote string, asOf Date) (decimal.Decimal, error) {
	if base == quote {
		return decimal.NewFromInt(1), nil
	}
	if px == nil {
		return decimal.Zero, &NoPriceError{Base: base, Quote: quote, On: asOf}
	}
	table := px.rates[currencyPair{base, quote}]
	// index of the first point after asOf; the one before it is the answer.
	i := sort.Search(len(table), func(i int) bool { return table[i].on.After(asOf) })
	if i == 0 {
		return decimal.Zero, &NoPriceError{Base: base, Quote: quote, On: asOf}
	}
	return table[i-1].rate, nil
}

// Convert multiplies the amount's quantity by the base/quote rate as of the
// given date, yielding an amount in the target currency.
func (px *PriceIndex) Convert(a Amount, target string, asOf Date) (Amount, error) {
	if a.Currency() == target {
		return a, nil
	}
	rate, err := px.Rate(a.Currency(), target, asOf)
	if err != nil {
		return Amount{}, err
	}
	return A(a.Quantity().Mul(rate), target), nil
}

// inferredPrices extracts implicit exchange rates from two-posting
// transactions whose legs are in different currencies: such a transaction is a
// currency exchange, and the ratio of its legs is a rate observation.
func inferredPrices(txs []Transaction) []Price {
	var prices []Price
	for _, tx := range txs {
		if len(tx.Postings) != 2 {
			continue
		}
		a, b := tx.Postings[0].Amount, tx.Postings[1].Amount
		if !a.IsSet() || !b.IsSet() || a.Currency() == b.Currency() || a.IsZero() || b.IsZero() {
			continue
		}
		prices = append(prices, Price{
			Date:  tx.Date,
			Base:  a.Currency(),
			Quote: b.Currency(),
			Rate:  b.Quantity().Neg().Div(a.Quantity()),
		})
	}
	return prices
}
