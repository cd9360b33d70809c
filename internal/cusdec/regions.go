package cusdec

// Pads is the rightward and downward reach of a label's cage, in page
// units. Pads differ per field group: a short single-line value sits just
// right of its label while a tax summary spans several rows.
type Pads struct {
	Right float64
	Down  float64
}

// Regions holds the cage padding for every label the pipeline searches.
// It is plain configuration: swapping pads requires no change to any
// locator or parser.
type Regions struct {
	Consignee        Pads
	CustomsRef       Pads
	TotalDeclaration Pads
	SummaryOfTaxes   Pads
	TaxTable         Pads
}

// DefaultRegions returns the pads tuned for the CUSDEC print layout.
func DefaultRegions() Regions {
	return Regions{
		Consignee:        Pads{Right: 80, Down: 50},
		CustomsRef:       Pads{Right: 150, Down: 50},
		TotalDeclaration: Pads{Right: 100, Down: 50},
		SummaryOfTaxes:   Pads{Right: 150, Down: 150},
		TaxTable:         Pads{Right: 200, Down: 100},
	}
}

// Label keyword sets. Matching is case-insensitive substring, so a single
// alias suffices unless the form varies its wording.
var (
	consigneeKeywords      = []string{"Consignee"}
	customsRefKeywords     = []string{"Customs Reference Number"}
	totalDeclKeywords      = []string{"Total Declaration"}
	summaryOfTaxesKeywords = []string{"Summary of Taxes"}
	taxTableKeywords       = []string{"Amount", "Rate", "Tax Base"}
)
