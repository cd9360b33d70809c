package cusdec

import "strings"

// CompanyAlias maps one spelling of a company name, short or full legal
// form, to its canonical name.
type CompanyAlias struct {
	Alias     string
	Canonical string
}

// DefaultCompanyAliases returns the known consignee companies. Full legal
// names come first so they win over their short forms when both appear.
func DefaultCompanyAliases() []CompanyAlias {
	return []CompanyAlias{
		{Alias: "MAS CAPITAL PVT LTD", Canonical: "MAS CAPITAL PVT LTD"},
		{Alias: "BODYLINE PVT LTD", Canonical: "BODYLINE PVT LTD"},
		{Alias: "UNICHELA PVT LTD", Canonical: "UNICHELA PVT LTD"},
		{Alias: "MAS CAPITAL", Canonical: "MAS CAPITAL PVT LTD"},
		{Alias: "BODYLINE", Canonical: "BODYLINE PVT LTD"},
		{Alias: "UNICHELA", Canonical: "UNICHELA PVT LTD"},
	}
}

// ParseCompanyName extracts the consignee company from a cage's lines.
//
// Primary tier: match a known alias against the joined, upper-cased text
// and return its canonical name. Fallback tier: return the first line
// following a line that contains "CONSIGNEE", which on this form is where
// the company name is printed. Returns "" when both tiers miss.
func ParseCompanyName(lines []string, aliases []CompanyAlias) string {
	fullText := strings.ToUpper(strings.Join(lines, " "))

	for _, a := range aliases {
		if strings.Contains(fullText, a.Alias) {
			return a.Canonical
		}
	}

	for i, line := range lines {
		if strings.Contains(strings.ToUpper(line), "CONSIGNEE") && i+1 < len(lines) {
			return strings.TrimSpace(lines[i+1])
		}
	}

	return ""
}
