package lloyds

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ResolveAmount turns the separate debit/credit columns into a signed
// amount (credit minus debit) plus both raw magnitudes. An empty column
// is zero; any other malformed text means the input format has degraded
// and the error is surfaced rather than recovered per row.
func ResolveAmount(debitText, creditText string) (amount, debit, credit decimal.Decimal, err error) {
	debit, err = parseMagnitude("debit", debitText)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, decimal.Decimal{}, err
	}
	credit, err = parseMagnitude("credit", creditText)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, decimal.Decimal{}, err
	}
	return credit.Sub(debit), debit, credit, nil
}

func parseMagnitude(name, text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing %s %q: %w", name, text, err)
	}
	return d, nil
}
