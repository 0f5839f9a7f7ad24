package finbook

import "testing"

func newFilterLedger() *Ledger {
	l := DefaultLedger()
	l.AddTransaction(NewIncome(MustParse("2024-01-05"), A(5000), "Salary", "My Cash", "january pay", "monthly salary"))
	l.AddTransaction(NewExpense(MustParse("2024-01-07"), A(1250.5), "Food", "Kuda", "groceries", ""))
	l.AddTransfer(MustParse("2024-01-09"), A(300), "My Cash", "PalmPay", "", "")
	return l
}

func TestFilter(t *testing.T) {
	l := newFilterLedger()
	testCases := []struct {
		name  string
		query string
		want  int
	}{
		{"empty query returns everything", "", 4},
		{"whitespace query returns everything", "   ", 4},
		{"note match", "groceries", 1},
		{"description match", "monthly", 1},
		{"category match", "salary", 1},
		{"account match case-insensitive", "KUDA", 1},
		{"counterpart account of a transfer", "palmpay", 2},
		{"amount substring", "1250.5", 1},
		{"default transfer note", "transfer from", 1},
		{"no match", "zzz", 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.Filter(tc.query); len(got) != tc.want {
				t.Errorf("Filter(%q) matched %d, want %d", tc.query, len(got), tc.want)
			}
		})
	}
}

func TestFilter_DoesNotMutateLedger(t *testing.T) {
	l := newFilterLedger()
	before := l.Len()
	l.Filter("groceries")
	if l.Len() != before {
		t.Errorf("Len changed from %d to %d", before, l.Len())
	}
}

func TestCanonicalOrder(t *testing.T) {
	l := DefaultLedger()
	l.AddTransaction(NewExpense(MustParse("2024-01-05"), A(10), "Food", "My Cash", "apple", ""))
	l.AddTransaction(NewIncome(MustParse("2024-01-10"), A(10), "Salary", "My Cash", "", ""))
	l.AddTransaction(NewExpense(MustParse("2024-01-05"), A(10), "Food", "My Cash", "Banana", ""))

	var got []string
	for _, tx := range l.Entries() {
		got = append(got, tx.Label())
	}
	if len(got) != 3 {
		t.Fatalf("got %d entries", len(got))
	}
	// Newest date first; same-day entries ordered by label descending,
	// compared case-insensitively.
	if got[0] != "Salary" {
		t.Errorf("first = %q, want the newest entry (Salary)", got[0])
	}
	if got[1] != "Banana" || got[2] != "apple" {
		t.Errorf("same-day order = %q, %q, want Banana then apple", got[1], got[2])
	}
}
