package cusdec

import (
	"context"

	"github.com/payreqgen/cusdec-extract/internal/layout"
)

// DefaultMaxPages bounds how many pages a single extraction scans for any
// label. CUSDEC prints run a handful of pages; the cap keeps label search
// linear even on adversarially large documents.
const DefaultMaxPages = 50

// CageRegion is the expanded capture area for one label together with its
// reconstructed text, produced and consumed within a single extraction.
type CageRegion struct {
	PageIndex int
	Rect      layout.Rect
	Label     string
	Lines     []string
}

// Pipeline orchestrates label location, cage expansion, line
// reconstruction and field parsing across a document. It holds only
// immutable configuration, so one Pipeline may serve concurrent
// extractions of distinct documents.
type Pipeline struct {
	regions  Regions
	aliases  []CompanyAlias
	maxPages int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRegions overrides the cage padding configuration.
func WithRegions(r Regions) Option {
	return func(p *Pipeline) { p.regions = r }
}

// WithCompanyAliases overrides the consignee alias table.
func WithCompanyAliases(aliases []CompanyAlias) Option {
	return func(p *Pipeline) { p.aliases = aliases }
}

// WithMaxPages overrides the page scan bound.
func WithMaxPages(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.maxPages = n
		}
	}
}

// NewPipeline returns a pipeline with the default regions, alias table and
// scan bound, adjusted by any options.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		regions:  DefaultRegions(),
		aliases:  DefaultCompanyAliases(),
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Extract runs every field group against the document and returns the
// accumulated mapping. Each group is independent: a label that cannot be
// located or a value that cannot be parsed leaves its keys out of the
// result without disturbing the other groups. The context bounds the page
// scans; once it is done, remaining groups are skipped and whatever was
// already extracted is returned.
//
// Extract never mutates the document, and running it twice on the same
// document yields an identical mapping.
func (p *Pipeline) Extract(ctx context.Context, doc layout.Document) Fields {
	fields := Fields{}

	if cage := p.findCage(ctx, doc, consigneeKeywords, p.regions.Consignee); cage != nil {
		if name := ParseCompanyName(cage.Lines, p.aliases); name != "" {
			fields[KeyCompanyName] = name
		}
	}

	if cage := p.findCage(ctx, doc, customsRefKeywords, p.regions.CustomsRef); cage != nil {
		if code := ParseOfficeCode(cage.Lines, DefaultOfficeCode); code != "" {
			fields[KeyOfficeCode] = code
		}
		if ref := ParseInvoiceRef(cage.Lines); ref.Found() {
			fields[KeyInvoicePrefix] = ref.Prefix
			fields[KeyInvoiceNumber] = ref.Number
			fields[KeyInvoiceYear] = ref.Year
		}
		if date := ParseInvoiceDate(cage.Lines); date != "" {
			fields[KeyInvoiceDate] = date
		}
	}

	if cage := p.findCage(ctx, doc, totalDeclKeywords, p.regions.TotalDeclaration); cage != nil {
		if gross := ParseGrossValue(cage.Lines); gross > 0 {
			fields[KeyGrossValue] = gross
		}
	}

	// The whole-document summary tier runs first; the tax-table tier is
	// consulted only when no summary yields a positive amount.
	if vat := p.vatFromSummaries(ctx, doc); vat > 0 {
		fields[KeyVATAmount] = vat
	} else if cage := p.findCage(ctx, doc, taxTableKeywords, p.regions.TaxTable); cage != nil {
		if vat := ParseVATFromTaxTable(cage.Lines); vat > 0 {
			fields[KeyVATAmount] = vat
		}
	}

	return fields
}

// findCage scans pages in order for the first one where the label
// locates, then expands the label box and reconstructs the cage's lines.
// Returns nil when the label appears on no scanned page.
func (p *Pipeline) findCage(ctx context.Context, doc layout.Document, keywords []string, pads Pads) *CageRegion {
	for _, page := range doc.Pages {
		if ctx.Err() != nil || page.Index >= p.maxPages {
			return nil
		}

		match := layout.LocateLabel(page, keywords)
		if match == nil {
			continue
		}

		cage := layout.ExpandCage(match.Rect, page, pads.Right, pads.Down)
		return &CageRegion{
			PageIndex: page.Index,
			Rect:      cage,
			Label:     match.Text,
			Lines:     layout.LinesInCage(page, cage),
		}
	}
	return nil
}

// vatFromSummaries scans every page for a "Summary of Taxes" cage and
// returns the first positive VAT amount found in one.
func (p *Pipeline) vatFromSummaries(ctx context.Context, doc layout.Document) float64 {
	for _, page := range doc.Pages {
		if ctx.Err() != nil || page.Index >= p.maxPages {
			return 0
		}

		match := layout.LocateLabel(page, summaryOfTaxesKeywords)
		if match == nil {
			continue
		}

		cage := layout.ExpandCage(match.Rect, page, p.regions.SummaryOfTaxes.Right, p.regions.SummaryOfTaxes.Down)
		if vat := ParseVATFromSummary(layout.LinesInCage(page, cage)); vat > 0 {
			return vat
		}
	}
	return 0
}
