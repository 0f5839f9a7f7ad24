package finbook

import (
	"sort"
	"strings"
)

// Filter returns the transactions whose note, description, category, account,
// toAccount, fromAccount, or decimal-string amount contains the query,
// case-insensitively. An empty or whitespace query returns the full
// collection. The result is in canonical order.
func (l *Ledger) Filter(query string) []Transaction {
	matched := l.Entries()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return matched
	}
	contains := func(s string) bool {
		return strings.Contains(strings.ToLower(s), query)
	}
	n := 0
	for _, tx := range matched {
		if contains(tx.Note) || contains(tx.Description) ||
			contains(tx.Category) || contains(tx.Account) ||
			contains(tx.ToAccount) || contains(tx.FromAccount) ||
			strings.Contains(tx.Amount.String(), query) {
			matched[n] = tx
			n++
		}
	}
	return matched[:n]
}

// sortCanonical restores the canonical order: date descending, tie-broken by
// the display label compared case-insensitively, descending. The sort is
// stable, so entries equal under both keys keep their relative order.
// Freshly imported batches get the same order as live mutations.
func (l *Ledger) sortCanonical() {
	sortCanonical(l.transactions)
}

func sortCanonical(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if txs[i].Date != txs[j].Date {
			return txs[j].Date.Before(txs[i].Date)
		}
		a, b := strings.ToLower(txs[i].Label()), strings.ToLower(txs[j].Label())
		return b < a
	})
}
