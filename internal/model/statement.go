package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the normalized OFX TRNTYPE category.
type TransactionType string

const (
	TypeCredit      TransactionType = "CREDIT"
	TypeDebit       TransactionType = "DEBIT"
	TypeCheck       TransactionType = "CHECK"
	TypeOther       TransactionType = "OTHER"
	TypeATM         TransactionType = "ATM"
	TypeDirectDebit TransactionType = "DIRECTDEBIT"
	TypeDeposit     TransactionType = "DEP"
	TypeServiceFee  TransactionType = "SRVCHG"
	TypePayment     TransactionType = "PAYMENT"
	TypeRepeatPmt   TransactionType = "REPEATPMT"
	TypeTransfer    TransactionType = "XFER"
)

// Transaction represents one normalized statement line.
type Transaction struct {
	ID     string
	Date   time.Time
	Amount decimal.Decimal // negative = outflow
	Type   TransactionType
	Payee  string
	Memo   string
}

// Statement is the converted output for one bank export: summary
// fields plus transactions in the order the bank emitted them
// (newest first).
type Statement struct {
	AccountID      string
	Currency       string // supplied by the caller, never derived
	OpeningBalance decimal.Decimal
	OpeningDate    time.Time
	ClosingBalance decimal.Decimal
	ClosingDate    time.Time
	Transactions   []Transaction
}
