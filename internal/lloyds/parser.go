package lloyds

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ofx-dev/lloyds2ofx/internal/model"
)

const (
	// Lloyds exports use day-first dates.
	dateFormat = "02/01/2006"

	numFields  = 8
	colDate    = 0
	colType    = 1
	colAccount = 3
	colDesc    = 4
	colDebit   = 5
	colCredit  = 6
	colBalance = 7
)

// Accumulator folds statement rows, newest first, into a Statement.
// One instance serves exactly one statement and is not safe for
// concurrent use.
type Accumulator struct {
	stmt    model.Statement
	seen    map[string]struct{}
	started bool
}

// NewAccumulator creates an Accumulator. The currency is an opaque
// pass-through value supplied by the caller.
func NewAccumulator(currency string) *Accumulator {
	return &Accumulator{
		stmt: model.Statement{Currency: currency},
		seen: make(map[string]struct{}),
	}
}

// Add processes one tokenized statement row. The first row latches the
// account id and closing balance/date; every row overwrites the opening
// balance/date so the final values come from the earliest row.
func (a *Accumulator) Add(row []string) error {
	if len(row) != numFields {
		return fmt.Errorf("expected %d fields, got %d", numFields, len(row))
	}

	date, err := time.Parse(dateFormat, strings.TrimSpace(row[colDate]))
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", row[colDate], err)
	}

	amount, debit, credit, err := ResolveAmount(row[colDebit], row[colCredit])
	if err != nil {
		return err
	}

	balance, err := decimal.NewFromString(strings.TrimSpace(row[colBalance]))
	if err != nil {
		return fmt.Errorf("parsing balance %q: %w", row[colBalance], err)
	}

	typeCode := strings.TrimSpace(row[colType])
	payee, memo := Classify(row[colDesc], typeCode)
	if memo != "" {
		memo = typeCode + " " + memo
	}

	id, err := nextTransactionID(a.seen, date, amount)
	if err != nil {
		return err
	}

	if !a.started {
		a.stmt.AccountID = cleanAccountID(row[colAccount])
		a.stmt.ClosingBalance = balance
		a.stmt.ClosingDate = date
		a.started = true
	}

	// Undo this row's effect to recover the balance before it. After
	// the last (chronologically earliest) row this is the statement
	// opening balance.
	a.stmt.OpeningBalance = balance.Add(debit).Sub(credit)
	a.stmt.OpeningDate = date

	a.stmt.Transactions = append(a.stmt.Transactions, model.Transaction{
		ID:     id,
		Date:   date,
		Amount: amount,
		Type:   MapType(typeCode, debit, credit),
		Payee:  payee,
		Memo:   memo,
	})
	return nil
}

// Statement returns the accumulated result. With no rows added, the
// summary fields stay at their zero values and the transaction list is
// empty; an empty statement is valid output.
func (a *Accumulator) Statement() *model.Statement {
	return &a.stmt
}

// cleanAccountID strips surrounding whitespace and at most one leading
// quote, which the export prepends to defeat spreadsheet auto-formatting.
// Interior characters are never touched.
func cleanAccountID(field string) string {
	s := strings.TrimSpace(field)
	s = strings.TrimPrefix(s, "'")
	return strings.TrimSpace(s)
}

// Parser parses Lloyds current-account CSV exports.
type Parser struct {
	Currency string
}

// Format returns the parser name.
func (p *Parser) Format() string { return "lloyds" }

// Parse reads a Lloyds CSV export (header line included) and returns
// the converted statement. An export with no data rows yields an empty
// statement, not an error.
func (p *Parser) Parse(r io.Reader) (*model.Statement, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading lloyds CSV: %w", err)
	}

	acc := NewAccumulator(p.Currency)
	if len(records) <= 1 {
		return acc.Statement(), nil
	}

	for i, rec := range records[1:] {
		if err := acc.Add(rec); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	return acc.Statement(), nil
}
