package cusdec

import (
	"regexp"
	"strings"
)

// InvoiceRef is the invoice reference triple printed in the customs
// reference cage, e.g. "S 52194 30/09/2025" carries prefix S, number
// 52194 and year 2025. The zero value means not found.
type InvoiceRef struct {
	Prefix string
	Number string
	Year   string
}

// Found reports whether all three components were extracted.
func (r InvoiceRef) Found() bool {
	return r.Prefix != "" && r.Number != "" && r.Year != ""
}

var (
	// Strict form: one uppercase letter, digits, then a dd/mm/yyyy date
	// whose year doubles as the invoice year.
	invoiceRefPattern = regexp.MustCompile(`([A-Z])\s+(\d+)\s+(\d{2}/\d{2}/(\d{4}))`)

	// Loose form for drifted layouts: a letter, 4-6 digits, then any
	// 4-digit run taken as the year.
	invoiceRefLoosePattern = regexp.MustCompile(`([A-Z])\s*(\d{4,6})\s*.*?(\d{4})`)

	datePattern = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
)

// ParseInvoiceRef extracts the invoice reference triple from a cage's
// lines, trying the strict pattern first and the loose one only when the
// strict one misses.
func ParseInvoiceRef(lines []string) InvoiceRef {
	fullText := strings.Join(lines, " ")

	if m := invoiceRefPattern.FindStringSubmatch(fullText); m != nil {
		return InvoiceRef{Prefix: m[1], Number: m[2], Year: m[4]}
	}

	if m := invoiceRefLoosePattern.FindStringSubmatch(fullText); m != nil {
		return InvoiceRef{Prefix: m[1], Number: m[2], Year: m[3]}
	}

	return InvoiceRef{}
}

// ParseInvoiceDate returns the first dd/mm/yyyy occurrence in the cage's
// lines, or "" when none is present.
func ParseInvoiceDate(lines []string) string {
	return datePattern.FindString(strings.Join(lines, " "))
}
