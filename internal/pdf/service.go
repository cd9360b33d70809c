package pdf

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/payreqgen/cusdec-extract/internal/cusdec"
	"github.com/payreqgen/cusdec-extract/internal/payreq"
)

// Service handles CUSDEC file operations by orchestrating the loader,
// the extraction pipeline and the requisition builder.
type Service struct {
	maxFileSize   int64
	loader        *Loader
	validator     *Validator
	search        *Search
	pathValidator *PathValidator
	pipeline      *cusdec.Pipeline
	builder       *payreq.Builder
}

// NewService creates a new CUSDEC service with all components.
func NewService(maxFileSize int64, declarationsDir string, opts ...cusdec.Option) (*Service, error) {
	pathValidator, err := NewPathValidator(declarationsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create path validator: %w", err)
	}

	return &Service{
		maxFileSize:   maxFileSize,
		loader:        NewLoader(maxFileSize),
		validator:     NewValidator(maxFileSize),
		search:        NewSearch(maxFileSize),
		pathValidator: pathValidator,
		pipeline:      cusdec.NewPipeline(opts...),
		builder:       payreq.NewBuilder(nil),
	}, nil
}

// ExtractFile loads one CUSDEC PDF and runs field extraction over it.
// Missing fields are reported in the result, not as errors; only an
// unreadable file fails the call.
func (s *Service) ExtractFile(ctx context.Context, req ExtractFileRequest) (*ExtractFileResult, error) {
	if err := s.pathValidator.ValidatePath(req.Path); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}

	doc, err := s.loader.LoadDocument(req.Path)
	if err != nil {
		return nil, err
	}

	fields := s.pipeline.Extract(ctx, doc)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &ExtractFileResult{
		Path:          req.Path,
		Pages:         doc.PageCount(),
		Fields:        fields,
		MissingFields: fields.Missing(),
	}, nil
}

// PayreqRow extracts fields from one CUSDEC PDF and derives a payment
// requisition row from them. A declaration that does not qualify (not
// VAT-only, or too little extracted) comes back with Accepted=false and
// the reason, not an error.
func (s *Service) PayreqRow(ctx context.Context, req PayreqRowRequest) (*PayreqRowResult, error) {
	extracted, err := s.ExtractFile(ctx, ExtractFileRequest{Path: req.Path})
	if err != nil {
		return nil, err
	}

	result := &PayreqRowResult{
		Path:   req.Path,
		Fields: extracted.Fields,
	}

	row, err := payreq.RowFromFields(extracted.Fields)
	if err != nil {
		if errors.Is(err, payreq.ErrNotVATOnly) || errors.Is(err, payreq.ErrInsufficientData) {
			result.Reason = err.Error()
			return result, nil
		}
		return nil, err
	}

	company := extracted.Fields.String(cusdec.KeyCompanyName)
	result.Accepted = true
	result.Row = &row
	result.InvoiceNumber = row.InvoiceNumber()
	result.CostCenter = s.builder.CostCenterFor(company)
	result.ShortCode = s.builder.ShortCodeFor(company)
	return result, nil
}

// ValidateFile performs validation on a PDF file.
func (s *Service) ValidateFile(req ValidateFileRequest) (*ValidateFileResult, error) {
	if err := s.pathValidator.ValidatePath(req.Path); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	return s.validator.ValidateFile(req)
}

// SearchDirectory searches for PDF files in a directory.
func (s *Service) SearchDirectory(req SearchDirectoryRequest) (*SearchDirectoryResult, error) {
	if req.Directory == "" {
		req.Directory = s.pathValidator.DeclarationsDir()
	}

	if err := s.pathValidator.ValidatePath(req.Directory); err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}

	return s.search.SearchDirectory(req)
}

// GetMaxFileSize returns the maximum file size limit.
func (s *Service) GetMaxFileSize() int64 {
	return s.maxFileSize
}

// IsValidPDF performs a quick validation check on a file.
func (s *Service) IsValidPDF(filePath string) bool {
	return s.validator.IsValidPDF(filePath)
}

// ServerInfo returns server information and usage guidance.
func (s *Service) ServerInfo(serverName, version string) (*ServerInfoResult, error) {
	declarationsDir := s.pathValidator.DeclarationsDir()

	// Scan the declarations directory with a timeout so a slow network
	// mount cannot hang the info call. Limit to the first 100 files.
	directoryContents := []FileInfo{}
	resultChan := make(chan []FileInfo, 1)
	go func() {
		files, err := s.search.FindPDFsInDirectoryLimited(declarationsDir, 100)
		if err != nil {
			resultChan <- nil
			return
		}
		resultChan <- files
	}()
	select {
	case files := <-resultChan:
		if files != nil {
			directoryContents = files
		}
	case <-time.After(5 * time.Second):
	}

	availableTools := []ToolInfo{
		{
			Name:        "cusdec_extract_file",
			Description: "Extract payment fields from a CUSDEC customs declaration PDF",
			Usage: "Use this tool to pull the company name, invoice reference, office code, " +
				"gross value and VAT amount out of a customs declaration.",
			Parameters: "path (required): Full absolute path to the PDF file",
		},
		{
			Name:        "cusdec_payreq_row",
			Description: "Build a payment requisition row from a CUSDEC PDF",
			Usage: "Use this tool to turn a VAT-only declaration into a requisition row. " +
				"Declarations whose gross value does not equal the VAT amount are rejected.",
			Parameters: "path (required): Full absolute path to the PDF file",
		},
		{
			Name:        "cusdec_validate_file",
			Description: "Validate if a file is a readable PDF",
			Usage:       "Use this tool to check if a file is a valid PDF before attempting extraction.",
			Parameters:  "path (required): Full absolute path to the PDF file",
		},
		{
			Name:        "cusdec_search_directory",
			Description: "Search for PDF files in a directory with optional fuzzy search",
			Usage: "Use this tool to find declaration PDFs in the default directory or any " +
				"specified directory. Supports fuzzy search by filename.",
			Parameters: "directory (optional): Directory path to search (uses default if empty), " +
				"query (optional): Search query for fuzzy matching",
		},
		{
			Name:        "cusdec_server_info",
			Description: "Get server information and usage guidance",
			Usage:       "Use this tool to discover server capabilities and the configured directory.",
			Parameters:  "none",
		},
	}

	usageGuidance := `CUSDEC Extraction Server Usage Guide:

1. START WITH DISCOVERY:
   - Use 'cusdec_search_directory' to find available declaration PDFs

2. VALIDATE FILES:
   - Use 'cusdec_validate_file' to check if a file is readable before processing

3. EXTRACT FIELDS:
   - Use 'cusdec_extract_file' to get the field mapping for a declaration
   - Check 'missing_fields' in the response: extraction is best-effort and
     a field the document does not carry is simply absent

4. BUILD REQUISITION ROWS:
   - Use 'cusdec_payreq_row' for declarations that should become payment
     requisition rows
   - Only VAT-only declarations qualify: the gross value must equal the
     VAT amount, otherwise the response carries 'accepted: false' and a reason

IMPORTANT NOTES:
- Always use absolute file paths
- The server can handle files up to ` + fmt.Sprintf("%d", s.maxFileSize/(1024*1024)) + `MB
- Scanned declarations without a text layer yield no fields; OCR is not performed`

	return &ServerInfoResult{
		ServerName:        serverName,
		Version:           version,
		DefaultDirectory:  declarationsDir,
		MaxFileSize:       s.maxFileSize,
		AvailableTools:    availableTools,
		DirectoryContents: directoryContents,
		UsageGuidance:     usageGuidance,
	}, nil
}

// ValidateConfiguration validates the service configuration.
func (s *Service) ValidateConfiguration() error {
	if s.maxFileSize <= 0 {
		return fmt.Errorf("maxFileSize must be greater than 0")
	}
	if s.maxFileSize > 1024*1024*1024 {
		return fmt.Errorf("maxFileSize cannot exceed 1GB")
	}
	return nil
}
