package lloyds

import (
	"regexp"
	"strings"
)

// FXFeePayee is the fixed payee label for non-GBP transaction fees.
const FXFeePayee = "Non-GBP Transaction Fee"

// Description shape patterns, most specific first. Several shapes share
// the trailing "CD nnnn" card suffix, so order matters: the FX fee and
// FX purchase forms must be tried before the generic card-payment form
// or they would never match. All patterns are anchored at both ends;
// whitespace inside a captured memo is kept verbatim because the memo
// is matched against bank reconciliation strings downstream.
var (
	// NON-GBP TRANS FEE 2.99% CD 1417 [14JAN24]
	fxFeeRe = regexp.MustCompile(`^NON-GBP TRANS FEE (\d+(?:\.\d+)?% CD \d{4}(?:\s+\d{2}[A-Z]{3}\d{2})?)$`)

	// OUiog dollaros [USD] 202.40 VISAXR 1.16168 CD 1417 [14JAN24]
	fxPurchaseRe = regexp.MustCompile(`^(.+?)(?:\s[A-Z]{2,3})?\s(\d[\d,]*(?:\.\d+)? VISAXR \d+(?:\.\d+)? CD \d{4}(?:\s+\d{2}[A-Z]{3}\d{2})?)$`)

	// ACME STORE CD 1417 [14JAN24]
	cardRe = regexp.MustCompile(`^(.+?)\s(CD \d{4}(?:\s+\d{2}[A-Z]{3}\d{2})?)$`)

	// JOHN SMITH [FP1] 0123456789 11JAN24 18:44
	// The routing tag needs a digit so that a short trailing word of
	// the counterparty name ("LTD") is not mistaken for one.
	fasterRe = regexp.MustCompile(`^(.+?)\s((?:[A-Z]{1,3}\d+\s)?\d{8,}\s+\d{2}[A-Z]{3}\d{2} \d{2}:\d{2})$`)

	// ACCOUNT FEE REF : 1234567
	serviceRe = regexp.MustCompile(`^(.+?)\s(REF : \d+)$`)

	// INS2 01000011/010011110010
	mandateRe = regexp.MustCompile(`^(.+?)\s([0-9A-Z/-]{8,})$`)
)

// Type-code gates: the faster-payment and mandate shapes are loose
// enough to misfire on other rows, so they are only tried for the
// codes that actually produce them.
var (
	fasterCodes  = map[string]bool{"FPI": true, "FPO": true, "BGC": true}
	mandateCodes = map[string]bool{"DD": true, "SO": true}
)

// Classify splits a Lloyds free-text description into a payee and a
// memo by trying the known description shapes in order and returning
// the first match. When nothing matches, the whole trimmed description
// becomes the payee and the memo stays empty, so the same text is not
// duplicated into both fields.
func Classify(description, typeCode string) (payee, memo string) {
	desc := strings.TrimSpace(description)

	if m := fxFeeRe.FindStringSubmatch(desc); m != nil {
		return FXFeePayee, m[1]
	}
	if m := fxPurchaseRe.FindStringSubmatch(desc); m != nil {
		return m[1], m[2]
	}
	if m := cardRe.FindStringSubmatch(desc); m != nil {
		return m[1], m[2]
	}
	if fasterCodes[typeCode] {
		if m := fasterRe.FindStringSubmatch(desc); m != nil {
			return m[1], m[2]
		}
	}
	if m := serviceRe.FindStringSubmatch(desc); m != nil {
		return m[1], m[2]
	}
	if mandateCodes[typeCode] {
		if m := mandateRe.FindStringSubmatch(desc); m != nil {
			return m[1], m[2]
		}
	}
	return desc, ""
}
