package finbook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kolade/finbook/kvstore"
)

// Persisted state layout: the named entries of the key-value store. Each
// holds one JSON document, read once at load time (with a default when
// absent) and rewritten in full on save.
const (
	keyActiveTab         = "activeTab"
	keyTransactions      = "transactions"
	keyShowDescriptions  = "showDescriptions"
	keyCollapsedAccounts = "collapsedAccounts"
	keyIncomeCategories  = "incomeCategories"
	keyExpenseCategories = "expenseCategories"
	keyAccounts          = "accounts"
)

// Load reads the persisted ledger state from the store. Absent entries get
// their first-run defaults (seed registries, empty collection); an entry
// that exists but does not parse is an error. The transaction collection is
// restored to canonical order regardless of how it was stored.
func Load(ctx context.Context, s kvstore.Store) (*Ledger, error) {
	l := DefaultLedger()

	if err := loadJSON(ctx, s, keyTransactions, &l.transactions); err != nil {
		return nil, err
	}
	if err := loadJSON(ctx, s, keyIncomeCategories, &l.incomeCategories); err != nil {
		return nil, err
	}
	if err := loadJSON(ctx, s, keyExpenseCategories, &l.expenseCategories); err != nil {
		return nil, err
	}
	if err := loadJSON(ctx, s, keyAccounts, &l.accounts); err != nil {
		return nil, err
	}
	if err := loadJSON(ctx, s, keyShowDescriptions, &l.prefs.ShowDescriptions); err != nil {
		return nil, err
	}
	if err := loadJSON(ctx, s, keyCollapsedAccounts, &l.prefs.CollapsedAccounts); err != nil {
		return nil, err
	}

	// The active tab is stored as a bare string, not JSON.
	if tab, ok, err := s.Get(ctx, keyActiveTab); err != nil {
		return nil, fmt.Errorf("load %s: %w", keyActiveTab, err)
	} else if ok && tab != "" {
		l.prefs.ActiveTab = tab
	}

	l.sortCanonical()
	return l, nil
}

// loadJSON reads one entry and unmarshals it into v, leaving v untouched
// when the entry is absent.
func loadJSON(ctx context.Context, s kvstore.Store, key string, v any) error {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("parse persisted %s: %w", key, err)
	}
	return nil
}

// Save writes the full ledger state to the store, one entry per key.
func (l *Ledger) Save(ctx context.Context, s kvstore.Store) error {
	entries := []struct {
		key   string
		value any
	}{
		{keyTransactions, l.transactions},
		{keyIncomeCategories, l.incomeCategories},
		{keyExpenseCategories, l.expenseCategories},
		{keyAccounts, l.accounts},
		{keyShowDescriptions, l.prefs.ShowDescriptions},
		{keyCollapsedAccounts, l.prefs.CollapsedAccounts},
	}
	for _, e := range entries {
		data, err := json.Marshal(e.value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", e.key, err)
		}
		if err := s.Set(ctx, e.key, string(data)); err != nil {
			return fmt.Errorf("save %s: %w", e.key, err)
		}
	}
	if err := s.Set(ctx, keyActiveTab, l.prefs.ActiveTab); err != nil {
		return fmt.Errorf("save %s: %w", keyActiveTab, err)
	}
	return nil
}
