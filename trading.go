package bookkeeping

// Currency trading accounts.
//
// This optional transform implements the "currency trading accounts" method
// of tracking gains and losses on foreign currencies: foreign income and
// expenses are frozen at their main-currency value on the transaction date,
// and every currency movement is mirrored on a Trading:Exchange account whose
// balance is, at any time, the accumulated currency gain or loss.

// TradingAccount is the account collecting the generated offset postings.
const TradingAccount = "Trading:Exchange"

// AccountClassifier reports whether an account name belongs to a class
// (assets, income, expenses), typically by prefix.
type AccountClassifier func(account string) bool

// ByPrefix returns a classifier matching accounts under any of the prefixes.
func ByPrefix(prefixes ...string) AccountClassifier {
	return func(account string) bool {
		for _, p := range prefixes {
			if len(account) >= len(p) && account[:len(p)] == p {
				return true
			}
		}
		return false
	}
}

// TradingOptions configures AddTradingPostings.
type TradingOptions struct {
	IsAsset      AccountClassifier
	IsIncome     AccountClassifier
	IsExpense    AccountClassifier
	MainCurrency string
	Prices       *PriceIndex
}

// AddTradingPostings rewrites the simplified ledger in place, converting
// foreign-currency income and expense postings to the main currency and
// adding offsetting postings on the trading account. Conversion uses the
// price index at each transaction's date; amounts frozen in the main currency
// are rounded to its minor unit.
func AddTradingPostings(sl *SimplifiedLedger, opts TradingOptions) error {
	for i := range sl.Transactions {
		tx := &sl.Transactions[i]
		if err := freezeForeign(tx, opts.IsIncome, opts); err != nil {
			return err
		}
		recordAssetExchange(tx, opts.IsAsset)
		if err := freezeForeign(tx, opts.IsExpense, opts); err != nil {
			return err
		}
	}
	return nil
}

// freezeForeign replaces each matching foreign-currency posting with its
// main-currency value on the transaction date, and records both legs on the
// trading account so the transaction stays balanced per currency.
func freezeForeign(tx *SimplifiedTransaction, match AccountClassifier, opts TradingOptions) error {
	if match == nil {
		return nil
	}
	var generated []SimplifiedPosting
	for i := range tx.Postings {
		p := &tx.Postings[i]
		if !match(p.Account) || p.Amount.Currency() == opts.MainCurrency {
			continue
		}
		foreign := p.Amount
		frozen, err := opts.Prices.Convert(foreign, opts.MainCurrency, tx.Date)
		if err != nil {
			return err
		}
		frozen = frozen.Round()
		p.Amount = frozen

		generated = append(generated,
			tradingPosting(tx, frozen.Neg()),
			tradingPosting(tx, foreign),
		)
	}
	tx.Postings = append(tx.Postings, generated...)
	return nil
}

// recordAssetExchange mirrors a two-posting exchange between asset accounts
// on the trading account, one leg per currency.
func recordAssetExchange(tx *SimplifiedTransaction, isAsset AccountClassifier) {
	if isAsset == nil || len(tx.Postings) != 2 {
		return
	}
	p1, p2 := tx.Postings[0], tx.Postings[1]
	if !isAsset(p1.Account) || !isAsset(p2.Account) {
		return
	}
	if p1.Amount.Currency() == p2.Amount.Currency() {
		return
	}
	tx.Postings = append(tx.Postings,
		tradingPosting(tx, p1.Amount.Neg()),
		tradingPosting(tx, p2.Amount.Neg()),
	)
}

func tradingPosting(tx *SimplifiedTransaction, amount Amount) SimplifiedPosting {
	return SimplifiedPosting{
		Date:        tx.Date,
		Status:      tx.Status,
		Description: tx.Description,
		Account:     TradingAccount,
		Amount:      amount,
		Comment:     "Auto-generated",
	}
}
