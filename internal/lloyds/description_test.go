package lloyds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Shapes(t *testing.T) {
	tests := []struct {
		name      string
		desc      string
		typeCode  string
		wantPayee string
		wantMemo  string
	}{
		{
			name:      "card payment",
			desc:      "ACME STORE CD 1417    14JAN24",
			typeCode:  "DEB",
			wantPayee: "ACME STORE",
			wantMemo:  "CD 1417    14JAN24",
		},
		{
			name:      "card payment without date",
			desc:      "CORNER SHOP CD 1417",
			typeCode:  "DEB",
			wantPayee: "CORNER SHOP",
			wantMemo:  "CD 1417",
		},
		{
			name:      "fx purchase",
			desc:      "OUiog dollaros 202.40 VISAXR 1.16168 CD 1417",
			typeCode:  "DEB",
			wantPayee: "OUiog dollaros",
			wantMemo:  "202.40 VISAXR 1.16168 CD 1417",
		},
		{
			name:      "fx purchase with country code and date",
			desc:      "AMAZON MKTPLACE US 34.10 VISAXR 1.2576 CD 1417 15JAN24",
			typeCode:  "DEB",
			wantPayee: "AMAZON MKTPLACE",
			wantMemo:  "34.10 VISAXR 1.2576 CD 1417 15JAN24",
		},
		{
			name:      "fx fee",
			desc:      "NON-GBP TRANS FEE 2.99% CD 1417",
			typeCode:  "FEE",
			wantPayee: FXFeePayee,
			wantMemo:  "2.99% CD 1417",
		},
		{
			name:      "fx fee with date",
			desc:      "NON-GBP TRANS FEE 2.99% CD 1417 15JAN24",
			typeCode:  "FEE",
			wantPayee: FXFeePayee,
			wantMemo:  "2.99% CD 1417 15JAN24",
		},
		{
			name:      "faster payment in",
			desc:      "JOHN SMITH 0123456789 11JAN24 18:44",
			typeCode:  "FPI",
			wantPayee: "JOHN SMITH",
			wantMemo:  "0123456789 11JAN24 18:44",
		},
		{
			name:      "bank giro credit with routing tag",
			desc:      "EMPLOYER LTD FP1 0123456789012 08JAN24 09:01",
			typeCode:  "BGC",
			wantPayee: "EMPLOYER LTD",
			wantMemo:  "FP1 0123456789012 08JAN24 09:01",
		},
		{
			name:      "service charge",
			desc:      "ACCOUNT FEE REF : 1234567",
			typeCode:  "CHG",
			wantPayee: "ACCOUNT FEE",
			wantMemo:  "REF : 1234567",
		},
		{
			name:      "direct debit",
			desc:      "INS2 01000011/010011110010",
			typeCode:  "DD",
			wantPayee: "INS2",
			wantMemo:  "01000011/010011110010",
		},
		{
			name:      "standing order",
			desc:      "LANDLORD LTD RENT-00112233",
			typeCode:  "SO",
			wantPayee: "LANDLORD LTD",
			wantMemo:  "RENT-00112233",
		},
		{
			name:      "fallback keeps memo empty",
			desc:      "SOME UNKNOWN NARRATIVE",
			typeCode:  "TFR",
			wantPayee: "SOME UNKNOWN NARRATIVE",
			wantMemo:  "",
		},
		{
			name:      "surrounding whitespace trimmed",
			desc:      "  ACME STORE CD 1417  ",
			typeCode:  "DEB",
			wantPayee: "ACME STORE",
			wantMemo:  "CD 1417",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payee, memo := Classify(tt.desc, tt.typeCode)
			assert.Equal(t, tt.wantPayee, payee)
			assert.Equal(t, tt.wantMemo, memo)
		})
	}
}

// A description ending in "CD nnnn" matches both the FX-purchase and
// the card-payment shapes; the FX rule must win.
func TestClassify_FXPurchaseBeforeCardPayment(t *testing.T) {
	payee, memo := Classify("OUiog dollaros 202.40 VISAXR 1.16168 CD 1417", "DEB")
	assert.Equal(t, "OUiog dollaros", payee)
	assert.Equal(t, "202.40 VISAXR 1.16168 CD 1417", memo)
	assert.NotEqual(t, "CD 1417", memo)
}

func TestClassify_TypeCodeGates(t *testing.T) {
	// The mandate reference shape only applies to DD/SO rows; the same
	// text under another code falls through to the fallback.
	payee, memo := Classify("INS2 01000011/010011110010", "TFR")
	assert.Equal(t, "INS2 01000011/010011110010", payee)
	assert.Empty(t, memo)

	// Likewise the faster-payment shape is gated to FPI/FPO/BGC.
	payee, memo = Classify("JOHN SMITH 0123456789 11JAN24 18:44", "DEB")
	assert.Equal(t, "JOHN SMITH 0123456789 11JAN24 18:44", payee)
	assert.Empty(t, memo)
}

func TestClassify_PreservesMemoWhitespace(t *testing.T) {
	_, memo := Classify("ACME STORE CD 1417    14JAN24", "DEB")
	assert.Equal(t, "CD 1417    14JAN24", memo)
}

func TestClassify_Idempotent(t *testing.T) {
	p1, m1 := Classify("ACME STORE CD 1417    14JAN24", "DEB")
	p2, m2 := Classify("ACME STORE CD 1417    14JAN24", "DEB")
	assert.Equal(t, p1, p2)
	assert.Equal(t, m1, m2)
}
