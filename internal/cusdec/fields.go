// Package cusdec extracts structured business fields from a printed
// customs declaration (CUSDEC) rendered as positioned text. Each field is
// parsed from the text of a label's cage by an ordered chain of strategies;
// the first strategy that succeeds wins and later ones are never consulted.
package cusdec

// Field keys of the extraction result. The key set is fixed; a key absent
// from the mapping means the field could not be determined.
const (
	KeyCompanyName   = "company_name"
	KeyOfficeCode    = "office_code"
	KeyInvoicePrefix = "invoice_prefix"
	KeyInvoiceNumber = "invoice_number"
	KeyInvoiceYear   = "invoice_year"
	KeyInvoiceDate   = "invoice_date"
	KeyGrossValue    = "gross_value"
	KeyVATAmount     = "vat_amount"
)

// Fields is the extraction result: a mapping from field key to value.
// Text, code and date fields are strings; monetary amounts are float64.
// No nil placeholders are ever stored.
type Fields map[string]any

// RequiredKeys lists every key a fully extracted declaration carries, in a
// stable order useful for reporting which fields are still missing.
func RequiredKeys() []string {
	return []string{
		KeyCompanyName,
		KeyOfficeCode,
		KeyInvoicePrefix,
		KeyInvoiceNumber,
		KeyInvoiceYear,
		KeyInvoiceDate,
		KeyGrossValue,
		KeyVATAmount,
	}
}

// Missing returns the required keys not present in f, in RequiredKeys order.
func (f Fields) Missing() []string {
	var missing []string
	for _, k := range RequiredKeys() {
		if _, ok := f[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}

// String returns the string value stored under key, or "" when the key is
// absent or holds a non-string value.
func (f Fields) String(key string) string {
	if v, ok := f[key].(string); ok {
		return v
	}
	return ""
}

// Amount returns the float64 value stored under key, or 0 when the key is
// absent or holds a non-numeric value.
func (f Fields) Amount(key string) float64 {
	if v, ok := f[key].(float64); ok {
		return v
	}
	return 0
}
