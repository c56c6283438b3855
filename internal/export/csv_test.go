package export

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofx-dev/lloyds2ofx/internal/model"
)

func sampleStatement() *model.Statement {
	return &model.Statement{
		AccountID:      "1515152252",
		Currency:       "GBP",
		OpeningBalance: decimal.RequireFromString("5926.70"),
		OpeningDate:    time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
		ClosingBalance: decimal.RequireFromString("5917.71"),
		ClosingDate:    time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
		Transactions: []model.Transaction{
			{
				ID:     "20240114--8.99-001",
				Date:   time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
				Amount: decimal.RequireFromString("-8.99"),
				Type:   model.TypeDebit,
				Payee:  "ACME STORE",
				Memo:   "DEB CD 1417    14JAN24",
			},
			{
				ID:     "20240109--5.97-001",
				Date:   time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
				Amount: decimal.RequireFromString("-5.97"),
				Type:   model.TypeDirectDebit,
				Payee:  "INS2",
				Memo:   "DD 01000011/010011110010",
			},
		},
	}
}

func TestWriteStatement(t *testing.T) {
	var sb strings.Builder
	err := WriteStatement(&sb, sampleStatement())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "20240114--8.99-001,2024-01-14,DEBIT,ACME STORE,DEB CD 1417    14JAN24,-8.99", lines[1])
	assert.Equal(t, "20240109--5.97-001,2024-01-09,DIRECTDEBIT,INS2,DD 01000011/010011110010,-5.97", lines[2])
}

func TestWriteStatement_Empty(t *testing.T) {
	var sb strings.Builder
	err := WriteStatement(&sb, &model.Statement{})
	require.NoError(t, err)
	assert.Equal(t, Header+"\n", sb.String())
}

func TestMarshalTransaction(t *testing.T) {
	row := MarshalTransaction(sampleStatement().Transactions[0])
	assert.Equal(t, []string{
		"20240114--8.99-001", "2024-01-14", "DEBIT", "ACME STORE",
		"DEB CD 1417    14JAN24", "-8.99",
	}, row)
}

func TestSummary(t *testing.T) {
	got := Summary(sampleStatement())
	assert.Contains(t, got, "account 1515152252")
	assert.Contains(t, got, "2 transactions")
	assert.Contains(t, got, "5926.70 on 2024-01-09")
	assert.Contains(t, got, "5917.71 on 2024-01-14")
}

func TestSummary_Empty(t *testing.T) {
	assert.Equal(t, "0 transactions", Summary(&model.Statement{}))
}
