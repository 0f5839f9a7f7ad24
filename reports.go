package finbook

import (
	"sort"
	"time"
)

// Read-side views. Everything in this file is a pure function of the current
// transaction collection: nothing here mutates the ledger.

// AccountBalance is the derived state of one account: its balance, and its
// entries in canonical order.
type AccountBalance struct {
	Account string
	Balance Amount
	Entries []Transaction
}

// AccountBalances derives the balance of every account in the registry:
// the sum of income entries posting against the account minus the sum of its
// expense entries. Accounts with no entries appear with a zero balance and
// an empty list. Entries referencing no registered account are ignored.
func (l *Ledger) AccountBalances() map[string]AccountBalance {
	balances := make(map[string]AccountBalance, len(l.accounts))
	for _, account := range l.accounts {
		balances[account] = AccountBalance{Account: account}
	}
	for _, tx := range l.transactions {
		b, ok := balances[tx.Account]
		if !ok {
			continue
		}
		switch tx.Type {
		case Income:
			b.Balance = b.Balance.Add(tx.Amount)
		case Expense:
			b.Balance = b.Balance.Sub(tx.Amount)
		}
		b.Entries = append(b.Entries, tx)
		balances[tx.Account] = b
	}
	// The ledger is kept in canonical order, so each per-account list
	// inherits it; no re-sort needed.
	return balances
}

// MonthlySummary is the derived activity of one calendar month.
// Income and Expenses exclude transfer legs: a transfer is balance-neutral
// across the ledger and only moves money between accounts.
type MonthlySummary struct {
	Income   Amount
	Expenses Amount
	Balance  Amount // Income - Expenses
	Entries  []Transaction
}

// Summarize derives the income, expense, and balance totals for the given
// month, along with the month's entries (transfer legs included in the list,
// excluded from the sums) in canonical order.
func (l *Ledger) Summarize(year int, month time.Month) MonthlySummary {
	var s MonthlySummary
	for _, tx := range l.transactions {
		if !tx.Date.In(year, month) {
			continue
		}
		s.Entries = append(s.Entries, tx)
		if tx.IsTransfer() {
			continue
		}
		switch tx.Type {
		case Income:
			s.Income = s.Income.Add(tx.Amount)
		case Expense:
			s.Expenses = s.Expenses.Add(tx.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expenses)
	return s
}

// CategoryTotal is the summed activity of one category within a month.
type CategoryTotal struct {
	Category string
	Type     TxType
	Amount   Amount
}

// CategoryBreakdown holds the top categories of a month, per side.
type CategoryBreakdown struct {
	Income  []CategoryTotal
	Expense []CategoryTotal
}

// topCategories is how many categories each side of the breakdown keeps.
const topCategories = 5

// BreakdownByCategory groups the month's entries by (type, category), sums
// the amounts per group, and returns the top five per side sorted by summed
// amount descending. Transfer legs are excluded from both sides, and the
// reserved Carry Over category is excluded from the income side.
func (l *Ledger) BreakdownByCategory(year int, month time.Month) CategoryBreakdown {
	incomeTotals := make(map[string]Amount)
	expenseTotals := make(map[string]Amount)
	for _, tx := range l.transactions {
		if !tx.Date.In(year, month) || tx.IsTransfer() {
			continue
		}
		switch tx.Type {
		case Income:
			incomeTotals[tx.Category] = incomeTotals[tx.Category].Add(tx.Amount)
		case Expense:
			expenseTotals[tx.Category] = expenseTotals[tx.Category].Add(tx.Amount)
		}
	}
	delete(incomeTotals, CategoryCarryOver)
	return CategoryBreakdown{
		Income:  topTotals(incomeTotals, Income),
		Expense: topTotals(expenseTotals, Expense),
	}
}

// topTotals ranks the per-category sums descending and keeps the top five.
// Equal sums are ordered by category name for a deterministic result.
func topTotals(totals map[string]Amount, typ TxType) []CategoryTotal {
	ranked := make([]CategoryTotal, 0, len(totals))
	for category, amount := range totals {
		ranked = append(ranked, CategoryTotal{Category: category, Type: typ, Amount: amount})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if c := ranked[i].Amount.Cmp(ranked[j].Amount); c != 0 {
			return c > 0
		}
		return ranked[i].Category < ranked[j].Category
	})
	if len(ranked) > topCategories {
		ranked = ranked[:topCategories]
	}
	return ranked
}
