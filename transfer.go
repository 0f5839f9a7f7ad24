package finbook

import (
	"fmt"
	"slices"
	"strings"
)

// Transfer coordination. A transfer between two accounts is represented as a
// linked pair of entries sharing one PairID: the expense leg posts against
// the source account with ToAccount set, the income leg posts against the
// destination account with FromAccount set. Create, edit, and delete keep
// both legs synchronized as one logical operation.

// AddTransfer creates the two legs of a transfer from account to toAccount,
// inserting both with fresh distinct ids and a shared pair id. It is a no-op
// when the amount is negative, either account is blank, or both accounts are
// the same. When note is empty each leg gets its default
// ("Transfer to {toAccount}" / "Transfer from {account}").
// It reports whether the ledger changed.
func (l *Ledger) AddTransfer(day Date, amount Amount, account, toAccount, note, description string) bool {
	if amount.IsNegative() {
		return false
	}
	if strings.TrimSpace(account) == "" || strings.TrimSpace(toAccount) == "" || account == toAccount {
		return false
	}
	out, in := newTransferPair(day, amount, account, toAccount, note, description)
	l.transactions = append([]Transaction{out, in}, l.transactions...)
	l.sortCanonical()
	return true
}

// newTransferPair builds both legs with fresh ids and a shared pair id.
func newTransferPair(day Date, amount Amount, account, toAccount, note, description string) (out, in Transaction) {
	pairID := newID()
	outNote, inNote := note, note
	if note == "" {
		outNote = fmt.Sprintf("Transfer to %s", toAccount)
		inNote = fmt.Sprintf("Transfer from %s", account)
	}
	out = Transaction{
		ID:          newID(),
		PairID:      pairID,
		Date:        day,
		Amount:      amount,
		Type:        Expense,
		Category:    CategoryTransfer,
		Account:     account,
		ToAccount:   toAccount,
		Note:        outNote,
		Description: description,
	}
	in = Transaction{
		ID:          newID(),
		PairID:      pairID,
		Date:        day,
		Amount:      amount,
		Type:        Income,
		Category:    CategoryTransfer,
		Account:     toAccount,
		FromAccount: account,
		Note:        inNote,
		Description: description,
	}
	return out, in
}

// counterpart locates the other leg of the transfer tx belongs to. It matches
// on the shared PairID when tx carries one, and falls back to the legacy rule
// (same amount and date, reciprocal accounts) for entries without a pair id.
func (l *Ledger) counterpart(tx Transaction) (Transaction, bool) {
	if tx.PairID != "" {
		for _, t := range l.transactions {
			if t.PairID == tx.PairID && t.ID != tx.ID {
				return t, true
			}
		}
		// A pair id with no partner is an orphan; do not fall through to the
		// legacy match, it could capture a leg of an unrelated transfer.
		return Transaction{}, false
	}
	for _, t := range l.transactions {
		if tx.pairsWith(t) {
			return t, true
		}
	}
	return Transaction{}, false
}

// updateTransfer rewrites the transfer pair that the entry matching id
// belongs to. The counterpart is located using the pre-edit values of the
// edited entry; both old legs are removed and both sides re-created from the
// new field values, preserving the edited entry's id and the counterpart's
// id when it was found. If the counterpart cannot be located the edit
// proceeds on the single known leg, which may leave an orphaned leg behind.
func (l *Ledger) updateTransfer(id string, fields Transaction) bool {
	i := slices.IndexFunc(l.transactions, func(t Transaction) bool { return t.ID == id })
	if i < 0 {
		return false
	}
	if fields.Amount.IsNegative() {
		return false
	}
	account, toAccount := fields.Account, fields.ToAccount
	if strings.TrimSpace(account) == "" || strings.TrimSpace(toAccount) == "" || account == toAccount {
		return false
	}

	edited := l.transactions[i]
	other, found := l.counterpart(edited)

	l.transactions = slices.DeleteFunc(l.transactions, func(t Transaction) bool {
		return t.ID == edited.ID || (found && t.ID == other.ID)
	})

	out, in := newTransferPair(fields.Date, fields.Amount, account, toAccount, fields.Note, fields.Description)
	out.ID = id
	if found {
		in.ID = other.ID
	}
	l.transactions = append([]Transaction{out, in}, l.transactions...)
	l.sortCanonical()
	return true
}

// deleteTransferPair removes the given transfer leg and, when it can be
// located, its counterpart. An un-locatable counterpart is not an error: the
// single known leg is removed and the ledger may keep an orphaned leg.
func (l *Ledger) deleteTransferPair(tx Transaction) {
	other, found := l.counterpart(tx)
	l.transactions = slices.DeleteFunc(l.transactions, func(t Transaction) bool {
		return t.ID == tx.ID || (found && t.ID == other.ID)
	})
}
