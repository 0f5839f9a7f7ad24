package finbook

import (
	"iter"
	"slices"
	"strings"
)

// Ledger owns the canonical transaction collection, the category and account
// registries, and the persisted display preferences. It is the single
// mutation surface of the tracker: every operation validates its input,
// rewrites dependent transactions where a rename or delete cascades, and
// restores the canonical sort order before returning.
//
// Operations with malformed or incomplete input are silent no-ops; they
// report whether anything changed so callers can refresh views, but never
// return errors across the ledger boundary.
type Ledger struct {
	transactions      []Transaction
	incomeCategories  []string
	expenseCategories []string
	accounts          []string
	prefs             Preferences
}

// Preferences are the display settings persisted alongside the ledger.
// The core only round-trips them; interpretation is the presentation
// layer's concern.
type Preferences struct {
	ActiveTab         string
	ShowDescriptions  bool
	CollapsedAccounts []string
}

// DefaultActiveTab is the tab shown on first run.
const DefaultActiveTab = "transactions"

// Seed registries for a first run with no persisted state.
var (
	defaultIncomeCategories  = []string{"Salary", "Gift", CategoryCarryOver, "Other"}
	defaultExpenseCategories = []string{"Food", "Transportation", "Offering & Tithe", "Other"}
	defaultAccounts          = []string{"My Cash", "PocketApp", "PalmPay", "Cowrywise", "Kuda"}
)

// NewLedger creates an empty ledger with empty registries.
func NewLedger() *Ledger {
	return &Ledger{prefs: Preferences{ActiveTab: DefaultActiveTab}}
}

// DefaultLedger creates an empty ledger seeded with the default categories
// and accounts, the state of a first run.
func DefaultLedger() *Ledger {
	l := NewLedger()
	l.incomeCategories = slices.Clone(defaultIncomeCategories)
	l.expenseCategories = slices.Clone(defaultExpenseCategories)
	l.accounts = slices.Clone(defaultAccounts)
	return l
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Get returns the transaction with the given id.
func (l *Ledger) Get(id string) (Transaction, bool) {
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// Transactions returns an iterator over the transactions in canonical order.
// When filters are given, a transaction is yielded if any filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Entries returns a copy of the transaction collection in canonical order.
func (l *Ledger) Entries() []Transaction {
	return slices.Clone(l.transactions)
}

// IncomeCategories returns a copy of the income category registry.
func (l *Ledger) IncomeCategories() []string { return slices.Clone(l.incomeCategories) }

// ExpenseCategories returns a copy of the expense category registry.
func (l *Ledger) ExpenseCategories() []string { return slices.Clone(l.expenseCategories) }

// Accounts returns a copy of the account registry.
func (l *Ledger) Accounts() []string { return slices.Clone(l.accounts) }

func (l *Ledger) categories(typ TxType) *[]string {
	if typ == Income {
		return &l.incomeCategories
	}
	return &l.expenseCategories
}

// AddTransaction validates and inserts a plain income or expense entry,
// assigning it a fresh id, and re-sorts the collection. It is a no-op when
// the amount is negative or the category or account is missing. Transfers
// are created through AddTransfer, never here.
// It reports whether the ledger changed.
func (l *Ledger) AddTransaction(tx Transaction) bool {
	if tx.Amount.IsNegative() || !tx.Type.Valid() {
		return false
	}
	if strings.TrimSpace(tx.Account) == "" || strings.TrimSpace(tx.Category) == "" {
		return false
	}
	if tx.Category == CategoryTransfer {
		return false
	}
	tx.ID = newID()
	tx.PairID, tx.ToAccount, tx.FromAccount = "", "", ""
	l.transactions = append([]Transaction{tx}, l.transactions...)
	l.sortCanonical()
	return true
}

// UpdateTransaction replaces the entry matching id with the given field
// values, preserving the id, and re-sorts. When the new values describe a
// transfer (category CategoryTransfer), the edit is delegated to the
// transfer coordination path, which regenerates both legs.
// It reports whether the ledger changed.
func (l *Ledger) UpdateTransaction(id string, fields Transaction) bool {
	if fields.Category == CategoryTransfer {
		return l.updateTransfer(id, fields)
	}
	i := slices.IndexFunc(l.transactions, func(t Transaction) bool { return t.ID == id })
	if i < 0 {
		return false
	}
	if fields.Amount.IsNegative() || !fields.Type.Valid() {
		return false
	}
	if strings.TrimSpace(fields.Account) == "" || strings.TrimSpace(fields.Category) == "" {
		return false
	}
	fields.ID = id
	fields.PairID, fields.ToAccount, fields.FromAccount = "", "", ""
	l.transactions[i] = fields
	l.sortCanonical()
	return true
}

// DeleteTransaction removes the entry matching id. When the entry is a
// transfer leg its counterpart is removed with it. It reports whether the
// ledger changed.
func (l *Ledger) DeleteTransaction(id string) bool {
	tx, ok := l.Get(id)
	if !ok {
		return false
	}
	if tx.IsTransfer() {
		l.deleteTransferPair(tx)
	} else {
		l.transactions = slices.DeleteFunc(l.transactions, func(t Transaction) bool { return t.ID == id })
	}
	l.sortCanonical()
	return true
}

// DeleteAllTransactions clears the entire collection. Irreversible; the
// caller is expected to have confirmed the operation.
func (l *Ledger) DeleteAllTransactions() {
	l.transactions = nil
}

// AddCategory appends a new category name to the registry of the given type.
// Blank names and duplicates are no-ops. It reports whether the registry changed.
func (l *Ledger) AddCategory(name string, typ TxType) bool {
	if strings.TrimSpace(name) == "" || !typ.Valid() {
		return false
	}
	reg := l.categories(typ)
	if slices.Contains(*reg, name) {
		return false
	}
	*reg = append(*reg, name)
	return true
}

// RenameCategory renames a registry entry and rewrites the category on every
// transaction matching (oldName, typ). No-op when the new name is blank,
// unchanged, already present, or (for income) the reserved Carry Over name.
// It reports whether anything changed.
func (l *Ledger) RenameCategory(oldName, newName string, typ TxType) bool {
	if strings.TrimSpace(newName) == "" || newName == oldName || !typ.Valid() {
		return false
	}
	if typ == Income && newName == CategoryCarryOver {
		return false
	}
	reg := l.categories(typ)
	if slices.Contains(*reg, newName) {
		return false
	}
	i := slices.Index(*reg, oldName)
	if i < 0 {
		return false
	}
	(*reg)[i] = newName
	for j, tx := range l.transactions {
		if tx.Category == oldName && tx.Type == typ {
			l.transactions[j].Category = newName
		}
	}
	l.sortCanonical()
	return true
}

// DeleteCategory removes the name from the registry of the given type and
// cascades deletion of every transaction whose type and category match.
func (l *Ledger) DeleteCategory(name string, typ TxType) {
	if !typ.Valid() {
		return
	}
	reg := l.categories(typ)
	*reg = slices.DeleteFunc(*reg, func(c string) bool { return c == name })
	l.transactions = slices.DeleteFunc(l.transactions, func(t Transaction) bool {
		return t.Type == typ && t.Category == name
	})
	l.sortCanonical()
}

// AddAccount appends a new account name to the registry. Blank names and
// duplicates are no-ops. It reports whether the registry changed.
func (l *Ledger) AddAccount(name string) bool {
	if strings.TrimSpace(name) == "" || slices.Contains(l.accounts, name) {
		return false
	}
	l.accounts = append(l.accounts, name)
	return true
}

// RenameAccount renames a registry entry and rewrites every account,
// toAccount, and fromAccount field referencing the old name, atomically with
// the registry change. It reports whether anything changed.
func (l *Ledger) RenameAccount(oldName, newName string) bool {
	if strings.TrimSpace(newName) == "" || newName == oldName {
		return false
	}
	if slices.Contains(l.accounts, newName) {
		return false
	}
	i := slices.Index(l.accounts, oldName)
	if i < 0 {
		return false
	}
	l.accounts[i] = newName
	for j, tx := range l.transactions {
		if tx.Account == oldName {
			l.transactions[j].Account = newName
		}
		if tx.ToAccount == oldName {
			l.transactions[j].ToAccount = newName
		}
		if tx.FromAccount == oldName {
			l.transactions[j].FromAccount = newName
		}
	}
	l.sortCanonical()
	return true
}

// DeleteAccount removes the name from the registry and cascades deletion of
// every transaction referencing it as account, toAccount, or fromAccount,
// including both legs of any transfer touching the account.
func (l *Ledger) DeleteAccount(name string) {
	l.accounts = slices.DeleteFunc(l.accounts, func(a string) bool { return a == name })
	l.transactions = slices.DeleteFunc(l.transactions, func(t Transaction) bool {
		return t.Account == name || t.ToAccount == name || t.FromAccount == name
	})
	l.sortCanonical()
}

// Preferences returns the persisted display preferences.
func (l *Ledger) Preferences() Preferences {
	p := l.prefs
	p.CollapsedAccounts = slices.Clone(p.CollapsedAccounts)
	return p
}

// SetActiveTab records the tab the presentation layer last displayed.
func (l *Ledger) SetActiveTab(tab string) { l.prefs.ActiveTab = tab }

// SetShowDescriptions records the description-visibility flag.
func (l *Ledger) SetShowDescriptions(show bool) { l.prefs.ShowDescriptions = show }

// ToggleCollapsed flips the collapsed state of an account in the accounts view.
func (l *Ledger) ToggleCollapsed(account string) {
	if i := slices.Index(l.prefs.CollapsedAccounts, account); i >= 0 {
		l.prefs.CollapsedAccounts = slices.Delete(l.prefs.CollapsedAccounts, i, i+1)
		return
	}
	l.prefs.CollapsedAccounts = append(l.prefs.CollapsedAccounts, account)
}
