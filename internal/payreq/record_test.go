package payreq

import (
	"errors"
	"testing"
	"time"

	"github.com/payreqgen/cusdec-extract/internal/cusdec"
)

func vatOnlyFields() cusdec.Fields {
	return cusdec.Fields{
		cusdec.KeyCompanyName:   "BODYLINE PVT LTD",
		cusdec.KeyOfficeCode:    "CBBI2",
		cusdec.KeyInvoicePrefix: "S",
		cusdec.KeyInvoiceNumber: "52194",
		cusdec.KeyInvoiceYear:   "2025",
		cusdec.KeyInvoiceDate:   "30/09/2025",
		cusdec.KeyGrossValue:    314821.0,
		cusdec.KeyVATAmount:     314821.0,
	}
}

func TestRowFromFields(t *testing.T) {
	row, err := RowFromFields(vatOnlyFields())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if row.Cusdec != "52194" {
		t.Errorf("Cusdec = %q, want %q", row.Cusdec, "52194")
	}
	if row.Serial != "S" {
		t.Errorf("Serial = %q, want %q", row.Serial, "S")
	}
	if row.Year != "2025" {
		t.Errorf("Year = %q, want %q", row.Year, "2025")
	}
	if row.Amount != 314821 {
		t.Errorf("Amount = %v, want 314821", row.Amount)
	}
	if row.GLAccount != DefaultGLAccount {
		t.Errorf("GLAccount = %q, want %q", row.GLAccount, DefaultGLAccount)
	}
	if row.FunctionalArea != DefaultFunctionalArea {
		t.Errorf("FunctionalArea = %q, want %q", row.FunctionalArea, DefaultFunctionalArea)
	}
	if got := row.InvoiceNumber(); got != "S521942025" {
		t.Errorf("InvoiceNumber() = %q, want %q", got, "S521942025")
	}
}

func TestRowFromFields_RejectsMixedClaim(t *testing.T) {
	f := vatOnlyFields()
	f[cusdec.KeyGrossValue] = 499180.0

	_, err := RowFromFields(f)
	if !errors.Is(err, ErrNotVATOnly) {
		t.Fatalf("expected ErrNotVATOnly, got %v", err)
	}
}

func TestRowFromFields_RejectsEmptyFields(t *testing.T) {
	_, err := RowFromFields(cusdec.Fields{})
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestRowFromFields_Defaults(t *testing.T) {
	// Both amounts absent read as zero, which still qualifies as VAT-only;
	// every missing component falls back to its customary default.
	row, err := RowFromFields(cusdec.Fields{
		cusdec.KeyCompanyName: "BODYLINE PVT LTD",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if row.Serial != DefaultSerial {
		t.Errorf("Serial = %q, want %q", row.Serial, DefaultSerial)
	}
	if row.Year != DefaultYear {
		t.Errorf("Year = %q, want %q", row.Year, DefaultYear)
	}
	if row.OfficeCode != cusdec.DefaultOfficeCode {
		t.Errorf("OfficeCode = %q, want %q", row.OfficeCode, cusdec.DefaultOfficeCode)
	}
	if want := time.Now().Format("02/01/2006"); row.InvoiceDate != want {
		t.Errorf("InvoiceDate = %q, want today %q", row.InvoiceDate, want)
	}
	if got := row.InvoiceNumber(); got != DefaultSerial+DefaultYear {
		t.Errorf("InvoiceNumber() = %q, want %q", got, DefaultSerial+DefaultYear)
	}
}

func TestBuilder_ProfileLookups(t *testing.T) {
	b := NewBuilder(nil)

	tests := []struct {
		company    string
		costCenter string
		wcCenter   string
		shortCode  string
	}{
		{"BODYLINE PVT LTD", "B050COMN01", "B051ADMN01", "BPL"},
		{"UNICHELA PVT LTD", "A050COMN01", "A051ADMN01", "UPL"},
		{"MAS CAPITAL PVT LTD", "MCAPCOMN01", "MCAP051ADMN01", "MCPL"},
		// Unknown companies get the silent fallbacks.
		{"ACME TRADING LTD", fallbackCostCenter, fallbackCostCenter, fallbackShortCode},
	}

	for _, tt := range tests {
		t.Run(tt.company, func(t *testing.T) {
			if got := b.CostCenterFor(tt.company); got != tt.costCenter {
				t.Errorf("CostCenterFor() = %q, want %q", got, tt.costCenter)
			}
			if got := b.WCCostCenterFor(tt.company); got != tt.wcCenter {
				t.Errorf("WCCostCenterFor() = %q, want %q", got, tt.wcCenter)
			}
			if got := b.ShortCodeFor(tt.company); got != tt.shortCode {
				t.Errorf("ShortCodeFor() = %q, want %q", got, tt.shortCode)
			}
		})
	}
}

func TestAssignment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BODYLINE PVT LTD", "BODYLINE"},
		{"Unichela Pvt Ltd", "UNICHELA"},
		{"ACME", "ACME"},
	}

	for _, tt := range tests {
		if got := Assignment(tt.in); got != tt.want {
			t.Errorf("Assignment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder(nil)

	rows := []Row{
		{
			InvoiceDate: "30/09/2025", OfficeCode: "CBBI2", Year: "2025",
			Serial: "S", Cusdec: "52194", Amount: 314821,
			GLAccount: DefaultGLAccount, FunctionalArea: DefaultFunctionalArea,
		},
		{
			InvoiceDate: "01/10/2025", OfficeCode: "CBBI1", Year: "2025",
			Serial: "S", Cusdec: "52201", Amount: 90000,
			GLAccount: DefaultGLAccount, FunctionalArea: DefaultFunctionalArea,
		},
	}

	req := b.Build("BODYLINE PVT LTD", rows)

	if req.PlantCode != "B050" {
		t.Errorf("PlantCode = %q, want B050", req.PlantCode)
	}
	if req.VendorCode != DefaultVendorCode {
		t.Errorf("VendorCode = %q, want %q", req.VendorCode, DefaultVendorCode)
	}
	if req.TotalAmount != 404821 {
		t.Errorf("TotalAmount = %v, want 404821", req.TotalAmount)
	}

	// Two declaration lines plus the totals line.
	if len(req.Lines) != 3 {
		t.Fatalf("len(Lines) = %d, want 3", len(req.Lines))
	}

	first := req.Lines[0]
	if first.InvoiceNumber != "S521942025" {
		t.Errorf("InvoiceNumber = %q, want S521942025", first.InvoiceNumber)
	}
	if first.CostCenter != "B050COMN01" {
		t.Errorf("CostCenter = %q, want B050COMN01", first.CostCenter)
	}
	if first.Assignment != "BODYLINE" {
		t.Errorf("Assignment = %q, want BODYLINE", first.Assignment)
	}
	if first.Amount != "314,821.00" {
		t.Errorf("Amount = %q, want 314,821.00", first.Amount)
	}

	totals := req.Lines[2]
	if totals.Amount != "404,821.00" || totals.Total != "404,821.00" {
		t.Errorf("totals line = %q/%q, want 404,821.00", totals.Amount, totals.Total)
	}
	if totals.InvoiceNumber != "" {
		t.Errorf("totals line carries an invoice number: %q", totals.InvoiceNumber)
	}
}

func TestBuilder_BuildEmptyRows(t *testing.T) {
	req := NewBuilder(nil).Build("BODYLINE PVT LTD", nil)

	if len(req.Lines) != 0 {
		t.Errorf("len(Lines) = %d, want 0", len(req.Lines))
	}
	if req.TotalAmount != 0 {
		t.Errorf("TotalAmount = %v, want 0", req.TotalAmount)
	}
}
