package lloyds

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// maxIDSeq bounds the fixed-format collision counter. Two rows with
// the same date and amount get distinct sequence suffixes; the space
// is exhausted deterministically rather than retried randomly.
const maxIDSeq = 999

// FormatTransactionID returns an id like "20240114--8.99-001".
func FormatTransactionID(date time.Time, amount decimal.Decimal, seq int) string {
	return fmt.Sprintf("%s-%s-%03d", date.Format("20060102"), amount.String(), seq)
}

// nextTransactionID returns the first unused id for (date, amount) and
// records it in seen.
func nextTransactionID(seen map[string]struct{}, date time.Time, amount decimal.Decimal) (string, error) {
	for seq := 1; seq <= maxIDSeq; seq++ {
		id := FormatTransactionID(date, amount, seq)
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			return id, nil
		}
	}
	return "", fmt.Errorf("transaction id space exhausted for %s %s", date.Format("20060102"), amount)
}
