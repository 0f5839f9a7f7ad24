package finbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"
)

// This file contains the import/export format: a comma-delimited, double
// quote escaped text document with one row per transaction. It should remain
// readable by spreadsheet tools and round-trip the ledger losslessly.

// csvHeader is the exact header row of the import/export format. Import
// rejects documents whose header does not match it field for field.
var csvHeader = []string{"Date", "Type", "Amount (₦)", "Category", "Account", "To Account", "Note", "Description"}

// Row type values of the export format. A transfer leg is written as
// "Transfer" regardless of which side it is; the two sides are told apart
// again on import (see reconcileTransfers).
const (
	rowIncome   = "Income"
	rowExpense  = "Expense"
	rowTransfer = "Transfer"
)

// ExportFilename returns the canonical download name for an export produced
// on the given day: "financial-transactions-<ISO-date>.csv".
func ExportFilename(day Date) string {
	return fmt.Sprintf("financial-transactions-%s.csv", day)
}

// ExportCSV writes the transaction collection to w in the import/export
// format: every cell double-quoted, dates as MM/DD/YYYY, amounts as plain
// numbers, the To Account column holding the transfer counterpart account
// (destination or source, whichever side the leg is).
func (l *Ledger) ExportCSV(w io.Writer) error {
	if err := writeRow(w, csvHeader); err != nil {
		return err
	}
	for _, tx := range l.transactions {
		typ := rowTransfer
		if !tx.IsTransfer() {
			if tx.Type == Income {
				typ = rowIncome
			} else {
				typ = rowExpense
			}
		}
		row := []string{
			tx.Date.Format(USDateFormat),
			typ,
			tx.Amount.String(),
			tx.Category,
			tx.Account,
			tx.CounterpartAccount(),
			tx.Note,
			tx.Description,
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

// writeRow writes one CSV row with every cell quoted, embedded quotes doubled.
func writeRow(w io.Writer, cells []string) error {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}
	if _, err := io.WriteString(w, strings.Join(quoted, ",")+"\n"); err != nil {
		return fmt.Errorf("cannot write export row: %w", err)
	}
	return nil
}

// ImportResult is the aggregate outcome of an import.
type ImportResult struct {
	Imported int // rows turned into transactions
	Skipped  int // malformed rows silently dropped
}

// ImportCSV parses an export-format document from r and loads it into the
// ledger: the transaction collection is replaced wholesale, while the
// account and category registries are merged (new names appended, existing
// retained, Carry Over stripped from the income registry).
//
// A missing or empty document or a mismatched header aborts the import with
// an error and no state change. Individually malformed rows (bad date, bad
// type, negative or unparseable amount, short row) are skipped without
// aborting the batch.
func (l *Ledger) ImportCSV(r io.Reader) (ImportResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	records, err := cr.ReadAll()
	if err != nil {
		return ImportResult{}, fmt.Errorf("cannot parse import document: %w", err)
	}
	if len(records) == 0 {
		return ImportResult{}, fmt.Errorf("empty import document")
	}

	header := records[0]
	if len(header) < len(csvHeader) {
		return ImportResult{}, fmt.Errorf("invalid header, want: %s", strings.Join(csvHeader, ", "))
	}
	for i, want := range csvHeader {
		if strings.TrimSpace(header[i]) != want {
			return ImportResult{}, fmt.Errorf("invalid header, want: %s", strings.Join(csvHeader, ", "))
		}
	}

	var result ImportResult
	var plain []Transaction   // decoded income/expense entries
	var staged []Transaction  // transfer rows awaiting pair reconciliation
	accounts := slices.Clone(l.accounts)
	incomeCategories := slices.Clone(l.incomeCategories)
	expenseCategories := slices.Clone(l.expenseCategories)
	addAccount := func(name string) {
		if name != "" && !slices.Contains(accounts, name) {
			accounts = append(accounts, name)
		}
	}

	for _, row := range records[1:] {
		if len(row) < len(csvHeader) {
			result.Skipped++
			continue
		}
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
		date, typ, amount, category := row[0], row[1], row[2], row[3]
		account, toAccount, note, description := row[4], row[5], row[6], row[7]

		day, err := ParseUSDate(date)
		if err != nil {
			result.Skipped++
			continue
		}
		if typ != rowIncome && typ != rowExpense && typ != rowTransfer {
			result.Skipped++
			continue
		}
		value, err := ParseAmount(amount)
		if err != nil || value.IsNegative() {
			result.Skipped++
			continue
		}

		addAccount(account)
		addAccount(toAccount)
		if category != "" && category != CategoryTransfer {
			if typ == rowIncome && !slices.Contains(incomeCategories, category) {
				incomeCategories = append(incomeCategories, category)
			}
			if typ == rowExpense && !slices.Contains(expenseCategories, category) {
				expenseCategories = append(expenseCategories, category)
			}
		}

		tx := Transaction{
			ID:          newID(),
			Date:        day,
			Amount:      value,
			Category:    category,
			Account:     account,
			Note:        note,
			Description: description,
		}
		switch {
		case typ == rowTransfer || category == CategoryTransfer:
			// Transfer legs: the To Account column holds the counterpart
			// account; which side the row is gets decided in reconciliation.
			tx.Category = CategoryTransfer
			tx.ToAccount = toAccount
			if typ == rowIncome {
				// Legacy shape: income-typed transfer row. The counterpart
				// column is the source account.
				tx.Type = Income
				tx.FromAccount = toAccount
				tx.ToAccount = ""
				plain = append(plain, tx)
				continue
			}
			if typ == rowExpense {
				tx.Type = Expense
				plain = append(plain, tx)
				continue
			}
			staged = append(staged, tx)
		case typ == rowIncome && category != "":
			tx.Type = Income
			plain = append(plain, tx)
		case typ == rowExpense && category != "":
			tx.Type = Expense
			plain = append(plain, tx)
		default:
			result.Skipped++
			continue
		}
	}

	txs := append(plain, reconcileTransfers(staged)...)
	result.Imported = len(txs)
	if result.Skipped > 0 {
		log.Printf("import: skipped %d malformed row(s)", result.Skipped)
	}

	sortCanonical(txs)
	l.transactions = txs
	l.accounts = accounts
	l.incomeCategories = slices.DeleteFunc(incomeCategories, func(c string) bool { return c == CategoryCarryOver })
	l.expenseCategories = expenseCategories
	return result, nil
}

// reconcileTransfers resolves "Transfer"-typed rows into expense and income
// legs. Two rows with the same date and amount and mirrored account columns
// are one transfer: they get a shared pair id, and the side of each leg is
// decided by the default note marker ("Transfer from ..." names the income
// leg) or, with custom notes, by file order (first row is the expense leg).
// A row with no complement becomes a single leg on its own, income or
// expense by the same note heuristic.
func reconcileTransfers(staged []Transaction) []Transaction {
	legs := make([]Transaction, 0, len(staged))
	consumed := make([]bool, len(staged))
	fromMarker := func(t Transaction) bool { return strings.HasPrefix(t.Note, "Transfer from ") }

	for i, r := range staged {
		if consumed[i] {
			continue
		}
		consumed[i] = true

		pair := -1
		for j := i + 1; j < len(staged); j++ {
			c := staged[j]
			if consumed[j] || !r.Amount.Equal(c.Amount) || r.Date != c.Date {
				continue
			}
			if c.Account == r.ToAccount && c.ToAccount == r.Account {
				pair = j
				break
			}
		}

		if pair < 0 {
			if fromMarker(r) {
				r.Type = Income
				r.FromAccount = r.ToAccount
				r.ToAccount = ""
			} else {
				r.Type = Expense
			}
			legs = append(legs, r)
			continue
		}

		consumed[pair] = true
		out, in := r, staged[pair]
		if fromMarker(out) && !fromMarker(in) {
			out, in = in, out
		}
		pairID := newID()
		out.Type = Expense
		out.PairID = pairID
		in.Type = Income
		in.PairID = pairID
		in.FromAccount = in.ToAccount
		in.ToAccount = ""
		legs = append(legs, out, in)
	}
	return legs
}
