package bookkeeping

import "strings"

// TreeBalance is a Balance arranged as a tree of account segments.
//
// Each node carries the total of its whole subtree, so the root holds the
// grand total and "Assets" holds the sum of "Assets:Bank", "Assets:Cash", etc.
type TreeBalance struct {
	Total    *MultiAmount
	Children map[string]*TreeBalance
}

// NewTreeBalance returns an empty tree node.
func NewTreeBalance() *TreeBalance {
	return &TreeBalance{
		Total:    NewMultiAmount(),
		Children: make(map[string]*TreeBalance),
	}
}

// TreeOf arranges a balance as a tree keyed on the colon-separated segments
// of the account names.
func TreeOf(b *Balance) *TreeBalance {
	root := NewTreeBalance()
	for account := range b.AccountNames() {
		m := b.AmountFor(account)
		node := root
		node.Total.AddAll(m)
		for _, segment := range strings.Split(account, ":") {
			child, ok := node.Children[segment]
			if !ok {
				child = NewTreeBalance()
				node.Children[segment] = child
			}
			node = child
			node.Total.AddAll(m)
		}
	}
	return root
}
