package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Placeholder is shown for empty or unresolved labels
const Placeholder = "-"

// SingleInstallment is shown when a payable has no parcela
const SingleInstallment = "Única"

// OrPlaceholder returns s or the placeholder when s is blank
func OrPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

// InstallmentLabel renders the parcela column
func (v PayableView) InstallmentLabel() string {
	if strings.TrimSpace(v.Installment) == "" {
		return SingleInstallment
	}
	return v.Installment
}

// FormatTaxID masks 11 digits as CPF and 14 digits as CNPJ; anything else
// is returned unchanged.
func FormatTaxID(doc string) string {
	digits := make([]byte, 0, len(doc))
	for i := 0; i < len(doc); i++ {
		if doc[i] >= '0' && doc[i] <= '9' {
			digits = append(digits, doc[i])
		}
	}
	d := string(digits)
	switch len(d) {
	case 11:
		return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
	case 14:
		return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
	default:
		return doc
	}
}

// FormatBRL renders an amount as Brazilian currency, e.g. R$ 1.234,56
func FormatBRL(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	s := amount.Abs().StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-2:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}
