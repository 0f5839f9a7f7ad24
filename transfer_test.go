package finbook

import (
	"testing"
	"time"
)

func TestAddTransfer(t *testing.T) {
	day := MustParse("2024-03-10")

	t.Run("creates a linked pair", func(t *testing.T) {
		l := DefaultLedger()
		if !l.AddTransfer(day, A(2000), "My Cash", "Kuda", "", "") {
			t.Fatal("AddTransfer failed")
		}
		if l.Len() != 2 {
			t.Fatalf("Len = %d, want 2", l.Len())
		}
		var out, in Transaction
		for _, tx := range l.Entries() {
			switch tx.Type {
			case Expense:
				out = tx
			case Income:
				in = tx
			}
		}
		if out.PairID == "" || out.PairID != in.PairID {
			t.Errorf("legs do not share a pair id: %q vs %q", out.PairID, in.PairID)
		}
		if out.ID == in.ID {
			t.Error("legs share an id")
		}
		if out.Account != "My Cash" || out.ToAccount != "Kuda" {
			t.Errorf("expense leg = %+v", out)
		}
		if in.Account != "Kuda" || in.FromAccount != "My Cash" {
			t.Errorf("income leg = %+v", in)
		}
		if out.Note != "Transfer to Kuda" || in.Note != "Transfer from My Cash" {
			t.Errorf("default notes = %q / %q", out.Note, in.Note)
		}
		if out.Category != CategoryTransfer || in.Category != CategoryTransfer {
			t.Error("legs must carry the Transfer category")
		}
	})

	t.Run("custom note used verbatim on both legs", func(t *testing.T) {
		l := DefaultLedger()
		l.AddTransfer(day, A(500), "My Cash", "Kuda", "rent share", "")
		for _, tx := range l.Entries() {
			if tx.Note != "rent share" {
				t.Errorf("note = %q, want rent share", tx.Note)
			}
		}
	})

	t.Run("invalid input is a no-op", func(t *testing.T) {
		l := DefaultLedger()
		invalid := []struct {
			name     string
			amount   Amount
			from, to string
		}{
			{"negative amount", A(-10), "My Cash", "Kuda"},
			{"blank source", A(10), " ", "Kuda"},
			{"blank destination", A(10), "My Cash", ""},
			{"same account", A(10), "Kuda", "Kuda"},
		}
		for _, in := range invalid {
			if l.AddTransfer(day, in.amount, in.from, in.to, "", "") {
				t.Errorf("%s: AddTransfer should be a no-op", in.name)
			}
		}
		if l.Len() != 0 {
			t.Errorf("Len = %d, want 0", l.Len())
		}
	})
}

func TestTransfer_BalancesAndSummary(t *testing.T) {
	l := DefaultLedger()
	day := MustParse("2024-03-10")
	l.AddTransfer(day, A(2000), "My Cash", "Kuda", "", "")

	balances := l.AccountBalances()
	if got := balances["My Cash"].Balance.String(); got != "-2000" {
		t.Errorf("My Cash balance = %s, want -2000", got)
	}
	if got := balances["Kuda"].Balance.String(); got != "2000" {
		t.Errorf("Kuda balance = %s, want 2000", got)
	}

	// Transfers move money between accounts without being income or spending.
	sum := l.Summarize(2024, time.March)
	if !sum.Income.IsZero() || !sum.Expenses.IsZero() {
		t.Errorf("summary income = %s, expenses = %s, want both zero", sum.Income, sum.Expenses)
	}
	if len(sum.Entries) != 2 {
		t.Errorf("summary lists %d entries, want both legs", len(sum.Entries))
	}

	breakdown := l.BreakdownByCategory(2024, time.March)
	if len(breakdown.Income) != 0 || len(breakdown.Expense) != 0 {
		t.Errorf("breakdown should exclude transfers, got %+v", breakdown)
	}
}

func TestDeleteTransaction_RemovesBothTransferLegs(t *testing.T) {
	for _, leg := range []TxType{Expense, Income} {
		t.Run("delete "+string(leg)+" leg", func(t *testing.T) {
			l := DefaultLedger()
			day := MustParse("2024-03-10")
			l.AddTransaction(NewExpense(day, A(75), "Food", "My Cash", "", ""))
			l.AddTransfer(day, A(2000), "My Cash", "Kuda", "", "")

			var id string
			for _, tx := range l.Entries() {
				if tx.IsTransfer() && tx.Type == leg {
					id = tx.ID
				}
			}
			if !l.DeleteTransaction(id) {
				t.Fatal("delete failed")
			}
			if l.Len() != 1 {
				t.Fatalf("Len = %d, want only the plain expense left", l.Len())
			}
			if l.Entries()[0].IsTransfer() {
				t.Error("a transfer leg survived")
			}
		})
	}
}

func TestUpdateTransfer(t *testing.T) {
	l := DefaultLedger()
	day := MustParse("2024-03-10")
	l.AddTransfer(day, A(2000), "My Cash", "Kuda", "", "")

	var out, in Transaction
	for _, tx := range l.Entries() {
		if tx.Type == Expense {
			out = tx
		} else {
			in = tx
		}
	}

	fields := Transaction{
		Date:      MustParse("2024-03-12"),
		Amount:    A(2500),
		Category:  CategoryTransfer,
		Account:   "My Cash",
		ToAccount: "PalmPay",
	}
	if !l.UpdateTransaction(out.ID, fields) {
		t.Fatal("update failed")
	}
	if l.Len() != 2 {
		t.Fatalf("Len = %d, want 2", l.Len())
	}

	got, ok := l.Get(out.ID)
	if !ok {
		t.Fatal("edited leg lost its id")
	}
	if got.ToAccount != "PalmPay" || got.Amount.String() != "2500" {
		t.Errorf("edited leg = %+v", got)
	}
	if got.Note != "Transfer to PalmPay" {
		t.Errorf("default note not regenerated: %q", got.Note)
	}

	counter, ok := l.Get(in.ID)
	if !ok {
		t.Fatal("counterpart lost its id")
	}
	if counter.Account != "PalmPay" || counter.FromAccount != "My Cash" {
		t.Errorf("counterpart = %+v", counter)
	}
	if counter.PairID != got.PairID {
		t.Error("rebuilt legs do not share a pair id")
	}
}

func TestTransfer_LegacyPairMatching(t *testing.T) {
	// Entries imported from older data have no pair id; the counterpart is
	// found by amount, date, and reciprocal accounts.
	l := DefaultLedger()
	day := MustParse("2024-03-10")
	out := Transaction{
		ID: newID(), Date: day, Amount: A(300), Type: Expense,
		Category: CategoryTransfer, Account: "My Cash", ToAccount: "Kuda",
	}
	in := Transaction{
		ID: newID(), Date: day, Amount: A(300), Type: Income,
		Category: CategoryTransfer, Account: "Kuda", FromAccount: "My Cash",
	}
	l.transactions = []Transaction{out, in}

	if !l.DeleteTransaction(out.ID) {
		t.Fatal("delete failed")
	}
	if l.Len() != 0 {
		t.Errorf("Len = %d, legacy counterpart not removed", l.Len())
	}
}

func TestTransfer_OrphanedLeg(t *testing.T) {
	// A leg whose pair id matches nothing must not latch onto an unrelated
	// transfer through the legacy rule.
	l := DefaultLedger()
	day := MustParse("2024-03-10")
	l.AddTransfer(day, A(300), "My Cash", "Kuda", "", "")

	orphan := Transaction{
		ID: newID(), PairID: newID(), Date: day, Amount: A(300), Type: Expense,
		Category: CategoryTransfer, Account: "My Cash", ToAccount: "Kuda",
	}
	l.transactions = append(l.transactions, orphan)

	if !l.DeleteTransaction(orphan.ID) {
		t.Fatal("delete failed")
	}
	if l.Len() != 2 {
		t.Errorf("Len = %d, want the intact pair untouched", l.Len())
	}
}
