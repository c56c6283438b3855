// Package export writes converted statements as normalized CSV for
// the downstream OFX serializer.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ofx-dev/lloyds2ofx/internal/model"
)

// Header is the CSV header for normalized statement lines.
const Header = "id,date,type,payee,memo,amount"

const (
	numFields  = 6
	dateFormat = "2006-01-02"
	colID      = 0
	colDate    = 1
	colType    = 2
	colPayee   = 3
	colMemo    = 4
	colAmount  = 5
)

// WriteStatement writes the statement's transactions (including the
// header row) in the order they were parsed.
func WriteStatement(w io.Writer, st *model.Statement) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range st.Transactions {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = t.ID
	row[colDate] = t.Date.Format(dateFormat)
	row[colType] = string(t.Type)
	row[colPayee] = t.Payee
	row[colMemo] = t.Memo
	row[colAmount] = t.Amount.String()
	return row
}

// Summary returns a one-line description of a converted statement for
// CLI output.
func Summary(st *model.Statement) string {
	if len(st.Transactions) == 0 {
		return "0 transactions"
	}
	return fmt.Sprintf("account %s: %d transactions, %s on %s to %s on %s",
		st.AccountID,
		len(st.Transactions),
		st.OpeningBalance.StringFixed(2),
		st.OpeningDate.Format(dateFormat),
		st.ClosingBalance.StringFixed(2),
		st.ClosingDate.Format(dateFormat),
	)
}
