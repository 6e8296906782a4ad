package bookkeeping

import (
	"fmt"
	"io"
	"strings"
)

// Serialization of simplified ledgers back into ledger-cli text.
//
// The output is normalized: price directives first, then transactions in
// chronological order, every posting with an explicit single-currency amount.

const indent = "  "

// EncodeSimplifiedLedger writes the ledger as ledger-cli text.
func EncodeSimplifiedLedger(w io.Writer, sl *SimplifiedLedger) error {
	first := true
	for _, p := range sl.Prices {
		first = false
		if _, err := fmt.Fprintln(w, p.String()); err != nil {
			return err
		}
	}
	for _, tx := range sl.Transactions {
		if !first {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		first = false
		if err := encodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// String renders the whole ledger as ledger-cli text.
func (sl *SimplifiedLedger) String() string {
	var b strings.Builder
	EncodeSimplifiedLedger(&b, sl)
	return b.String()
}

func encodeTransaction(w io.Writer, tx SimplifiedTransaction) error {
	var b strings.Builder
	b.WriteString(tx.Date.String())
	if tx.Status != NoStatus {
		b.WriteString(" " + tx.Status.String())
	}
	if tx.Code != "" {
		b.WriteString(" (" + tx.Code + ")")
	}
	if tx.Description != "" {
		b.WriteString(" " + tx.Description)
	}
	b.WriteByte('\n')

	if tx.Comment != "" {
		for line := range strings.SplitSeq(tx.Comment, "\n") {
			b.WriteString(indent + "; " + line + "\n")
		}
	}
	for _, tag := range tagLines(tx.Tags) {
		b.WriteString(indent + "; " + tag + "\n")
	}

	for _, p := range tx.Postings {
		encodePosting(&b, p)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func encodePosting(b *strings.Builder, p SimplifiedPosting) {
	b.WriteString(indent + p.Account + indent + p.Amount.String())

	var annotations []string
	if p.Comment != "" {
		annotations = append(annotations, strings.Split(p.Comment, "\n")...)
	}
	annotations = append(annotations, tagLines(p.Tags)...)

	for i, a := range annotations {
		if i == 0 {
			b.WriteString(indent + "; " + a)
		} else {
			b.WriteString("\n" + indent + "; " + a)
		}
	}
	b.WriteByte('\n')
}

// tagLines renders tags as comment bodies: bare tags as one ":A:B:" run,
// valued tags one "key: value" line each.
func tagLines(tags []Tag) []string {
	var bare []string
	var lines []string
	for _, t := range tags {
		if t.Value == "" {
			bare = append(bare, t.Name)
		} else {
			lines = append(lines, t.Name+": "+t.Value)
		}
	}
	if len(bare) > 0 {
		lines = append([]string{":" + strings.Join(bare, ":") + ":"}, lines...)
	}
	return lines
}
