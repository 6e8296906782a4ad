// Package parser reads the plain-text ledger-cli format into raw, structured
// items: transactions, price directives and comments.
//
// The parser is deliberately dumb: it performs no balancing, no omitted-amount
// resolution and no currency conversion. Those are the consuming package's
// concern. A posting's amount may therefore be nil here.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Error is a parse failure with the offending line number.
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("line %d: %s", e.Line, e.Msg) }

func errorf(line int, format string, args ...any) *Error {
	return &Error{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Item is one top-level element of a ledger file.
type Item interface{ item() }

// Comment is a top-level comment line, leading ';'/'#' stripped.
type Comment string

func (Comment) item() {}

// Amount is a raw quantity with its commodity.
type Amount struct {
	Quantity  decimal.Decimal
	Commodity string
}

// Tag is posting or transaction metadata from a comment.
type Tag struct {
	Name  string
	Value string
}

// Posting is a raw account line. Amount is nil when the file omitted it.
// Price, when set, is always per-unit: `@@` total-cost annotations are
// normalized at parse time.
type Posting struct {
	Account string
	Amount  *Amount
	Price   *Amount
	Status  string
	Comment string
	Tags    []Tag
}

// Transaction is a raw dated entry with its postings.
type Transaction struct {
	Date          time.Time
	EffectiveDate time.Time // zero when absent
	Status        string    // "", "*" or "!"
	Code          string
	Description   string
	Comment       string
	Tags          []Tag
	Postings      []Posting
}

func (Transaction) item() {}

// Price is a raw `P` directive.
type Price struct {
	Date      time.Time
	Commodity string
	Amount    Amount
}

func (Price) item() {}

// Ledger is the raw parse result, items in file order.
type Ledger struct {
	Items []Item
}

// dateFormats accepted in transaction headers and price directives.
var dateFormats = []string{"2006-01-02", "2006/01/02", "2006-1-2", "2006/1/2"}

func parseDate(s string, line int) (time.Time, error) {
	for _, f := range dateFormats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errorf(line, "invalid date %q", s)
}

// columnSplit separates an account name from its amount: two or more spaces,
// or a tab. A single space stays inside the account name.
var columnSplit = regexp.MustCompile(`\t| {2,}`)

// Parse reads a complete ledger file.
func Parse(r io.Reader) (*Ledger, error) {
	p := &parser{scanner: bufio.NewScanner(r)}
	return p.parse()
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Ledger, error) {
	return Parse(strings.NewReader(s))
}

type parser struct {
	scanner *bufio.Scanner
	line    int
	ledger  Ledger
	tx      *Transaction // transaction being assembled, nil at top level
}

func (p *parser) parse() (*Ledger, error) {
	for p.scanner.Scan() {
		p.line++
		if err := p.consume(p.scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := p.scanner.Err(); err != nil {
		return nil, err
	}
	p.flush()
	return &p.ledger, nil
}

// flush closes the transaction being assembled, if any.
func (p *parser) flush() {
	if p.tx != nil {
		p.ledger.Items = append(p.ledger.Items, *p.tx)
		p.tx = nil
	}
}

func (p *parser) consume(raw string) error {
	if strings.TrimSpace(raw) == "" {
		p.flush()
		return nil
	}

	indented := raw[0] == ' ' || raw[0] == '\t'
	line := strings.TrimRight(raw, " \t")

	if indented {
		if p.tx == nil {
			return errorf(p.line, "posting outside of a transaction: %q", strings.TrimSpace(line))
		}
		return p.consumeIndented(strings.TrimLeft(line, " \t"))
	}

	p.flush()
	switch line[0] {
	case ';', '#', '%', '|':
		p.ledger.Items = append(p.ledger.Items, Comment(strings.TrimSpace(line[1:])))
		return nil
	case 'P':
		return p.consumePrice(line)
	default:
		return p.consumeHeader(line)
	}
}

// consumeHeader starts a new transaction from a
// `DATE[=EDATE] [*|!] [(CODE)] DESCRIPTION` line.
func (p *parser) consumeHeader(line string) error {
	head, rest, _ := strings.Cut(line, " ")

	var tx Transaction
	dateStr, effStr, hasEff := strings.Cut(head, "=")
	date, err := parseDate(dateStr, p.line)
	if err != nil {
		return err
	}
	tx.Date = date
	if hasEff {
		if tx.EffectiveDate, err = parseDate(effStr, p.line); err != nil {
			return err
		}
	}

	rest = strings.TrimSpace(rest)
	if rest != "" && (rest[0] == '*' || rest[0] == '!') {
		tx.Status = rest[:1]
		rest = strings.TrimSpace(rest[1:])
	}
	if strings.HasPrefix(rest, "(") {
		if end := strings.Index(rest, ")"); end > 0 {
			tx.Code = rest[1:end]
			rest = strings.TrimSpace(rest[end+1:])
		}
	}
	tx.Description = rest
	p.tx = &tx
	return nil
}

// consumeIndented handles a posting or comment line inside a transaction.
func (p *parser) consumeIndented(line string) error {
	if line[0] == ';' {
		comment, tags := parseCommentText(strings.TrimSpace(line[1:]))
		if len(p.tx.Postings) == 0 {
			p.tx.Comment = joinComment(p.tx.Comment, comment)
			p.tx.Tags = append(p.tx.Tags, tags...)
		} else {
			last := &p.tx.Postings[len(p.tx.Postings)-1]
			last.Comment = joinComment(last.Comment, comment)
			last.Tags = append(last.Tags, tags...)
		}
		return nil
	}

	posting, err := p.parsePosting(line)
	if err != nil {
		return err
	}
	p.tx.Postings = append(p.tx.Postings, posting)
	return nil
}

func (p *parser) parsePosting(line string) (Posting, error) {
	var posting Posting

	if line[0] == '*' || line[0] == '!' {
		posting.Status = line[:1]
		line = strings.TrimSpace(line[1:])
	}

	// Inline comment, possibly holding tags.
	if body, comment, ok := strings.Cut(line, ";"); ok {
		line = strings.TrimRight(body, " \t")
		posting.Comment, posting.Tags = parseCommentText(strings.TrimSpace(comment))
	}

	cols := columnSplit.Split(line, 2)
	posting.Account = strings.TrimSpace(cols[0])
	if posting.Account == "" {
		return posting, errorf(p.line, "posting without an account: %q", line)
	}
	if len(cols) == 1 {
		return posting, nil // omitted amount
	}

	expr := strings.TrimSpace(cols[1])
	if expr == "" {
		return posting, nil
	}

	amountStr, priceStr, total := cutPrice(expr)
	amount, err := parseAmount(amountStr, p.line)
	if err != nil {
		return posting, err
	}
	posting.Amount = &amount

	if priceStr != "" {
		price, err := parseAmount(priceStr, p.line)
		if err != nil {
			return posting, err
		}
		if total {
			// Normalize a total cost into a per-unit price.
			if amount.Quantity.IsZero() {
				return posting, errorf(p.line, "total cost on a zero amount: %q", expr)
			}
			price.Quantity = price.Quantity.Div(amount.Quantity.Abs())
		}
		posting.Price = &price
	}
	return posting, nil
}

// cutPrice splits an amount expression on its `@` or `@@` annotation.
func cutPrice(expr string) (amount, price string, total bool) {
	if a, p, ok := strings.Cut(expr, "@@"); ok {
		return strings.TrimSpace(a), strings.TrimSpace(p), true
	}
	if a, p, ok := strings.Cut(expr, "@"); ok {
		return strings.TrimSpace(a), strings.TrimSpace(p), false
	}
	return expr, "", false
}

// parseAmount reads "<quantity> <commodity>" or symbol-prefixed forms like
// "$1.20" and "$-40". Thousands separators are tolerated.
func parseAmount(s string, line int) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, errorf(line, "empty amount")
	}

	var neg bool
	if s[0] == '-' {
		neg, s = true, strings.TrimSpace(s[1:])
	}

	var commodity, number string
	if i := strings.IndexAny(s, "-0123456789."); i > 0 {
		// Commodity on the left: "$1.20", "€ 5".
		commodity = strings.TrimSpace(s[:i])
		number = strings.TrimSpace(s[i:])
	} else {
		// Commodity on the right: "1.20 USD", "2000 ADA".
		fields := strings.Fields(s)
		switch len(fields) {
		case 2:
			number, commodity = fields[0], fields[1]
		default:
			return Amount{}, errorf(line, "invalid amount %q: want \"<quantity> <commodity>\"", s)
		}
	}

	number = strings.ReplaceAll(number, ",", "")
	quantity, err := decimal.NewFromString(number)
	if err != nil {
		return Amount{}, errorf(line, "invalid quantity %q: %v", number, err)
	}
	if neg {
		quantity = quantity.Neg()
	}
	return Amount{Quantity: quantity, Commodity: commodity}, nil
}

// parseCommentText extracts tags out of a comment. A `:A:B:` run yields bare
// tags, a `key: value` form yields one valued tag, anything else is plain
// comment text.
func parseCommentText(s string) (comment string, tags []Tag) {
	if strings.HasPrefix(s, ":") && strings.HasSuffix(s, ":") && len(s) > 1 {
		for _, name := range strings.Split(strings.Trim(s, ":"), ":") {
			if name != "" {
				tags = append(tags, Tag{Name: name})
			}
		}
		return "", tags
	}
	if key, value, ok := strings.Cut(s, ": "); ok && !strings.ContainsAny(key, " \t") {
		return "", []Tag{{Name: key, Value: strings.TrimSpace(value)}}
	}
	return s, nil
}

func joinComment(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "\n" + b
	}
}

// consumePrice reads a `P DATE [TIME] COMMODITY QUANTITY CUR` directive.
func (p *parser) consumePrice(line string) error {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return errorf(p.line, "invalid price directive: %q", line)
	}
	date, err := parseDate(fields[1], p.line)
	if err != nil {
		return err
	}
	rest := fields[2:]
	if strings.Contains(rest[0], ":") {
		// Optional time of day, ignored: prices have day granularity.
		rest = rest[1:]
	}
	if len(rest) < 2 {
		return errorf(p.line, "invalid price directive: %q", line)
	}
	commodity := rest[0]
	amount, err := parseAmount(strings.Join(rest[1:], " "), p.line)
	if err != nil {
		return err
	}
	p.ledger.Items = append(p.ledger.Items, Price{Date: date, Commodity: commodity, Amount: amount})
	return nil
}
