package cusdec

import (
	"regexp"
	"strings"
)

// A tax-table row reads "VAT 1,749,003 18.00 314,821 1": tax type, tax
// base, rate, amount, then a trailing binary inclusion flag. The flag is a
// business rule, not a parsing artifact: a printed VAT row with flag 0 is
// present but explicitly excluded from this claim type, so its amount
// counts as zero.
var vatRowPattern = regexp.MustCompile(`(?:VAT|VTD)\s+[\d,.]+\s+[\d,.]+\s+([\d,]+)\s*([01])`)

// ParseVATFromTaxTable extracts the claimable VAT amount from a tax-table
// cage's lines.
//
// Primary tier: the row pattern above; the amount is returned only when
// the trailing flag is 1, a flag of 0 yields 0 outright. Fallback tier:
// scan line by line for a VAT/VTD row and pull its numeric tokens; with
// four or more tokens the third is the amount and the fourth the flag
// under the same 0/1 gating, with exactly three the amount is assumed
// included since no flag is present. Returns 0 when every tier misses.
func ParseVATFromTaxTable(lines []string) float64 {
	fullText := strings.Join(lines, " ")

	if m := vatRowPattern.FindStringSubmatch(fullText); m != nil {
		if m[2] != "1" {
			return 0
		}
		if v, err := parseGroupedNumber(m[1]); err == nil {
			return v
		}
	}

	for _, line := range lines {
		upper := strings.ToUpper(line)
		if !strings.Contains(upper, "VAT") && !strings.Contains(upper, "VTD") {
			continue
		}

		numbers := numberPattern.FindAllString(line, -1)
		switch {
		case len(numbers) >= 4:
			if numbers[3] != "1" {
				return 0
			}
			if v, err := parseGroupedNumber(numbers[2]); err == nil {
				return v
			}
		case len(numbers) == 3:
			if v, err := parseGroupedNumber(numbers[2]); err == nil {
				return v
			}
		}
	}

	return 0
}

// ParseVATFromSummary extracts the VAT amount from a "Summary of Taxes"
// cage: the first line mentioning VAT yields its first numeric token.
// Returns 0 when no such line parses.
func ParseVATFromSummary(lines []string) float64 {
	for _, line := range lines {
		if !strings.Contains(strings.ToUpper(line), "VAT") {
			continue
		}
		if numbers := numberPattern.FindAllString(line, -1); len(numbers) > 0 {
			if v, err := parseGroupedNumber(numbers[0]); err == nil {
				return v
			}
		}
	}
	return 0
}
