package finbook

import (
	"fmt"

	"github.com/google/uuid"
)

// TxType is a typed string identifying which side of the ledger an entry posts to.
type TxType string

// The two entry types. A transfer is not a third type: it is a pair of one
// expense-typed and one income-typed entry whose category is CategoryTransfer.
const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// Valid reports whether t is one of the known entry types.
func (t TxType) Valid() bool { return t == Income || t == Expense }

// Reserved category names.
const (
	// CategoryTransfer is the structural marker carried by both legs of a
	// transfer. It is never a member of either category registry.
	CategoryTransfer = "Transfer"
	// CategoryCarryOver may exist in the income registry but is excluded
	// from category-breakdown aggregation.
	CategoryCarryOver = "Carry Over"
)

// Transaction is a single ledger entry: money moving into or out of one account.
//
// A plain entry has Type, Category, and Account set. A transfer leg carries
// CategoryTransfer and exactly one of ToAccount (expense leg, the destination)
// or FromAccount (income leg, the source), plus a PairID shared with its
// counterpart leg.
type Transaction struct {
	ID          string `json:"id"`
	PairID      string `json:"pairId,omitempty"` // links the two legs of a transfer
	Date        Date   `json:"date"`
	Amount      Amount `json:"amount"`
	Type        TxType `json:"type"`
	Category    string `json:"category"`
	Account     string `json:"account"`
	ToAccount   string `json:"toAccount,omitempty"`
	FromAccount string `json:"fromAccount,omitempty"`
	Note        string `json:"note,omitempty"`
	Description string `json:"description,omitempty"`
}

// NewIncome creates a plain income entry. The id is assigned by the ledger on Add.
func NewIncome(day Date, amount Amount, category, account, note, description string) Transaction {
	return Transaction{
		Date:        day,
		Amount:      amount,
		Type:        Income,
		Category:    category,
		Account:     account,
		Note:        note,
		Description: description,
	}
}

// NewExpense creates a plain expense entry. The id is assigned by the ledger on Add.
func NewExpense(day Date, amount Amount, category, account, note, description string) Transaction {
	return Transaction{
		Date:        day,
		Amount:      amount,
		Type:        Expense,
		Category:    category,
		Account:     account,
		Note:        note,
		Description: description,
	}
}

// IsTransfer reports whether the entry is one leg of a transfer pair.
func (t Transaction) IsTransfer() bool { return t.Category == CategoryTransfer }

// CounterpartAccount returns the account on the other side of a transfer leg:
// the destination for the expense leg, the source for the income leg.
// Empty for plain entries.
func (t Transaction) CounterpartAccount() string {
	if t.ToAccount != "" {
		return t.ToAccount
	}
	return t.FromAccount
}

// Label returns the primary display text of the entry: the note if present,
// a synthesized "Transfer from X" / "Transfer to Y" for transfer legs,
// otherwise the category. The canonical sort tie-breaks on this value.
func (t Transaction) Label() string {
	if t.Note != "" {
		return t.Note
	}
	if t.IsTransfer() {
		if t.Type == Income {
			return fmt.Sprintf("Transfer from %s", t.CounterpartAccount())
		}
		return fmt.Sprintf("Transfer to %s", t.CounterpartAccount())
	}
	return t.Category
}

// pairsWith reports whether o could be t's counterpart leg under the legacy
// matching rule: same amount, same date, category Transfer on both, and a
// reciprocal account relationship. Used as a fallback for entries that carry
// no PairID (imported or hand-edited data).
func (t Transaction) pairsWith(o Transaction) bool {
	if !t.IsTransfer() || !o.IsTransfer() || t.ID == o.ID {
		return false
	}
	if !t.Amount.Equal(o.Amount) || t.Date != o.Date {
		return false
	}
	return (o.FromAccount == t.Account && o.Account == t.ToAccount) ||
		(o.FromAccount == t.ToAccount && o.Account == t.FromAccount)
}

// newID returns a fresh unique transaction id. UUIDv7 ids are time-ordered,
// so ids allocated later sort after earlier ones.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}
