package lloyds

import (
	"github.com/shopspring/decimal"

	"github.com/ofx-dev/lloyds2ofx/internal/model"
)

// trnTypes maps Lloyds transaction-type codes to OFX TRNTYPE categories.
var trnTypes = map[string]model.TransactionType{
	"BGC": model.TypeCredit,
	"BP":  model.TypeDebit,
	"CD":  model.TypeDebit,
	"CHQ": model.TypeCheck,
	"COR": model.TypeOther,
	"CPT": model.TypeATM,
	"CR":  model.TypeCredit,
	"DD":  model.TypeDirectDebit,
	"DEB": model.TypeDebit,
	"DEP": model.TypeDeposit,
	"FEE": model.TypeServiceFee,
	"FPI": model.TypeCredit,
	"FPO": model.TypeDebit,
	"PAY": model.TypePayment,
	"SO":  model.TypeRepeatPmt,
	"TFR": model.TypeTransfer,
}

// MapType returns the normalized category for a Lloyds type code. A
// code outside the fixed table is not an error: it degrades to a
// direction-only classification based on the resolved magnitudes.
func MapType(typeCode string, debit, credit decimal.Decimal) model.TransactionType {
	if t, ok := trnTypes[typeCode]; ok {
		return t
	}
	if !credit.IsZero() {
		return model.TypeCredit
	}
	return model.TypeDebit
}
