// Package payreq turns extracted CUSDEC fields into payment requisition
// records: one line per accepted declaration plus a totals line, with the
// company-dependent accounting codes resolved from configuration tables.
package payreq

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/payreqgen/cusdec-extract/internal/cusdec"
)

// Fixed accounting defaults for customs VAT requisitions.
const (
	DefaultVendorCode     = "0000400554"
	DefaultVendorName     = "Director General of Customs"
	DefaultGLAccount      = "17003030"
	DefaultFunctionalArea = "Z016"
	DefaultDescription    = "VAT Claimable"
	DefaultSerial         = "S"
	DefaultYear           = "2025"
)

// Silent defaults applied when a company is not in the profile table.
// Deliberately kept: flagging unknown companies is an acceptance-test
// concern, the record build must not fail on one.
const (
	fallbackCostCenter = "B051ADMN01"
	fallbackShortCode  = "PRF"
)

var (
	// ErrNotVATOnly rejects a declaration whose gross value differs from
	// its VAT amount: only pure VAT claims may enter a requisition.
	ErrNotVATOnly = errors.New("gross value does not equal VAT amount, only VAT claims allowed")

	// ErrInsufficientData rejects a declaration from which nothing useful
	// could be extracted.
	ErrInsufficientData = errors.New("insufficient data extracted from declaration")
)

// CompanyProfile carries the accounting codes tied to one consignee
// company.
type CompanyProfile struct {
	// PlantCode identifies the company in the requisition sheet.
	PlantCode string
	// CostCenter is the requisition cost center.
	CostCenter string
	// WCCostCenter is the working-capital form's cost center variant.
	WCCostCenter string
	// ShortCode names generated files, e.g. PRF-52194-BPL.pdf.
	ShortCode string
}

// DefaultCompanyProfiles returns the known consignee companies keyed by
// canonical name.
func DefaultCompanyProfiles() map[string]CompanyProfile {
	return map[string]CompanyProfile{
		"BODYLINE PVT LTD": {
			PlantCode:    "B050",
			CostCenter:   "B050COMN01",
			WCCostCenter: "B051ADMN01",
			ShortCode:    "BPL",
		},
		"UNICHELA PVT LTD": {
			PlantCode:    "A050",
			CostCenter:   "A050COMN01",
			WCCostCenter: "A051ADMN01",
			ShortCode:    "UPL",
		},
		"MAS CAPITAL PVT LTD": {
			PlantCode:    "MCAP",
			CostCenter:   "MCAPCOMN01",
			WCCostCenter: "MCAP051ADMN01",
			ShortCode:    "MCPL",
		},
	}
}

// Row is one declaration's entry in a requisition, before the
// company-level codes are applied.
type Row struct {
	InvoiceDate    string  `json:"invoice_date"`
	OfficeCode     string  `json:"office_code"`
	Year           string  `json:"year"`
	Serial         string  `json:"serial"`
	Cusdec         string  `json:"cusdec"`
	Amount         float64 `json:"amount"`
	GLAccount      string  `json:"gl_account"`
	FunctionalArea string  `json:"functional_area"`
}

// InvoiceNumber assembles the requisition invoice number from the row's
// serial, CUSDEC number and year.
func (r Row) InvoiceNumber() string {
	if r.Cusdec == "" {
		return r.Serial + r.Year
	}
	return r.Serial + r.Cusdec + r.Year
}

// RowFromFields builds a requisition row from one declaration's extracted
// fields.
//
// A declaration qualifies only when its gross value equals its VAT
// amount; anything else is a mixed claim and is rejected with
// ErrNotVATOnly. Missing components fall back to the customary defaults
// (serial S, current year conventions, today's date, office CBBI1).
func RowFromFields(f cusdec.Fields) (Row, error) {
	if len(f) == 0 {
		return Row{}, ErrInsufficientData
	}

	gross := f.Amount(cusdec.KeyGrossValue)
	vat := f.Amount(cusdec.KeyVATAmount)
	if gross != vat {
		return Row{}, fmt.Errorf("%w: gross %.2f, VAT %.2f", ErrNotVATOnly, gross, vat)
	}

	row := Row{
		InvoiceDate:    f.String(cusdec.KeyInvoiceDate),
		OfficeCode:     f.String(cusdec.KeyOfficeCode),
		Year:           f.String(cusdec.KeyInvoiceYear),
		Serial:         f.String(cusdec.KeyInvoicePrefix),
		Cusdec:         f.String(cusdec.KeyInvoiceNumber),
		Amount:         vat,
		GLAccount:      DefaultGLAccount,
		FunctionalArea: DefaultFunctionalArea,
	}

	if row.InvoiceDate == "" {
		row.InvoiceDate = time.Now().Format("02/01/2006")
	}
	if row.OfficeCode == "" {
		row.OfficeCode = cusdec.DefaultOfficeCode
	}
	if row.Serial == "" {
		row.Serial = DefaultSerial
	}
	if row.Year == "" {
		row.Year = DefaultYear
	}

	return row, nil
}

// Line is one fully resolved requisition sheet line.
type Line struct {
	InvoiceDate    string `json:"invoice_date"`
	InvoiceNumber  string `json:"invoice_number"`
	Vendor         string `json:"vendor"`
	GLAccount      string `json:"gl_account"`
	Text           string `json:"text"`
	CostCenter     string `json:"cost_center"`
	Assignment     string `json:"assignment"`
	FunctionalArea string `json:"functional_area"`
	Plant          string `json:"plant"`
	Amount         string `json:"amount"`
	Total          string `json:"total"`
	OfficeCode     string `json:"office_code"`
	Year           string `json:"year"`
	Serial         string `json:"serial"`
	Cusdec         string `json:"cusdec"`
}

// Requisition is the assembled payment requisition for one company: the
// per-declaration lines followed by a totals line.
type Requisition struct {
	Company     string  `json:"company"`
	PlantCode   string  `json:"plant_code"`
	VendorCode  string  `json:"vendor_code"`
	Description string  `json:"description"`
	Lines       []Line  `json:"lines"`
	TotalAmount float64 `json:"total_amount"`
}

// Builder resolves company-level codes while assembling requisitions. Its
// profile table is plain configuration so new companies need no code
// change.
type Builder struct {
	profiles map[string]CompanyProfile
}

// NewBuilder returns a builder over the given profile table, or the
// default table when nil.
func NewBuilder(profiles map[string]CompanyProfile) *Builder {
	if profiles == nil {
		profiles = DefaultCompanyProfiles()
	}
	return &Builder{profiles: profiles}
}

// CostCenterFor returns the requisition cost center for a company, or the
// fixed fallback when the company is unknown.
func (b *Builder) CostCenterFor(company string) string {
	if p, ok := b.profiles[company]; ok {
		return p.CostCenter
	}
	return fallbackCostCenter
}

// WCCostCenterFor returns the working-capital cost center for a company,
// or the fixed fallback when the company is unknown.
func (b *Builder) WCCostCenterFor(company string) string {
	if p, ok := b.profiles[company]; ok {
		return p.WCCostCenter
	}
	return fallbackCostCenter
}

// ShortCodeFor returns the filename short code for a company, or the
// generic fallback when the company is unknown.
func (b *Builder) ShortCodeFor(company string) string {
	if p, ok := b.profiles[company]; ok {
		return p.ShortCode
	}
	return fallbackShortCode
}

// Assignment derives the sheet assignment from the company name by
// stripping the legal suffix.
func Assignment(company string) string {
	return strings.TrimSpace(strings.ReplaceAll(strings.ToUpper(company), " PVT LTD", ""))
}

// Build assembles the requisition for one company from its accepted rows.
func (b *Builder) Build(company string, rows []Row) Requisition {
	profile := b.profiles[company]

	req := Requisition{
		Company:     company,
		PlantCode:   profile.PlantCode,
		VendorCode:  DefaultVendorCode,
		Description: DefaultDescription,
	}

	for _, row := range rows {
		req.Lines = append(req.Lines, Line{
			InvoiceDate:    row.InvoiceDate,
			InvoiceNumber:  row.InvoiceNumber(),
			Vendor:         DefaultVendorCode,
			GLAccount:      row.GLAccount,
			Text:           DefaultDescription,
			CostCenter:     b.CostCenterFor(company),
			Assignment:     Assignment(company),
			FunctionalArea: row.FunctionalArea,
			Plant:          profile.PlantCode,
			Amount:         FormatAmount(row.Amount),
			Total:          FormatAmount(row.Amount),
			OfficeCode:     row.OfficeCode,
			Year:           row.Year,
			Serial:         row.Serial,
			Cusdec:         row.Cusdec,
		})
		req.TotalAmount += row.Amount
	}

	if len(req.Lines) > 0 {
		req.Lines = append(req.Lines, Line{
			Amount: FormatAmount(req.TotalAmount),
			Total:  FormatAmount(req.TotalAmount),
		})
	}

	return req
}
