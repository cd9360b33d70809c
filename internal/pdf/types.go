package pdf

import (
	"github.com/payreqgen/cusdec-extract/internal/cusdec"
	"github.com/payreqgen/cusdec-extract/internal/payreq"
)

// FileInfo describes a PDF file found on disk.
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// Request types

// ExtractFileRequest asks for field extraction from one CUSDEC PDF.
type ExtractFileRequest struct {
	Path string `json:"path"`
}

// PayreqRowRequest asks for a payment requisition row built from one
// CUSDEC PDF.
type PayreqRowRequest struct {
	Path string `json:"path"`
}

// ValidateFileRequest asks whether a file is a readable PDF.
type ValidateFileRequest struct {
	Path string `json:"path"`
}

// SearchDirectoryRequest asks for PDF files in a directory, optionally
// filtered by a fuzzy filename query.
type SearchDirectoryRequest struct {
	Directory string `json:"directory"`
	Query     string `json:"query"`
}

// Result types

// ExtractFileResult carries the extracted field mapping for one
// declaration together with which required fields are still missing.
type ExtractFileResult struct {
	Path          string        `json:"path"`
	Pages         int           `json:"pages"`
	Fields        cusdec.Fields `json:"fields"`
	MissingFields []string      `json:"missing_fields,omitempty"`
}

// PayreqRowResult carries the requisition row derived from one
// declaration, or the reason the declaration was rejected.
type PayreqRowResult struct {
	Path          string        `json:"path"`
	Fields        cusdec.Fields `json:"fields"`
	Accepted      bool          `json:"accepted"`
	Reason        string        `json:"reason,omitempty"`
	Row           *payreq.Row   `json:"row,omitempty"`
	InvoiceNumber string        `json:"invoice_number,omitempty"`
	CostCenter    string        `json:"cost_center,omitempty"`
	ShortCode     string        `json:"short_code,omitempty"`
}

// ValidateFileResult reports the outcome of PDF validation.
type ValidateFileResult struct {
	Valid   bool   `json:"valid"`
	Path    string `json:"path"`
	Message string `json:"message,omitempty"`
}

// SearchDirectoryResult lists the PDF files matching a directory search.
type SearchDirectoryResult struct {
	Files       []FileInfo `json:"files"`
	TotalCount  int        `json:"total_count"`
	Directory   string     `json:"directory"`
	SearchQuery string     `json:"search_query,omitempty"`
}

// ToolInfo describes one available tool for server info responses.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
	Parameters  string `json:"parameters"`
}

// ServerInfoResult carries server information and usage guidance.
type ServerInfoResult struct {
	ServerName        string     `json:"server_name"`
	Version           string     `json:"version"`
	DefaultDirectory  string     `json:"default_directory"`
	MaxFileSize       int64      `json:"max_file_size"`
	AvailableTools    []ToolInfo `json:"available_tools"`
	DirectoryContents []FileInfo `json:"directory_contents"`
	UsageGuidance     string     `json:"usage_guidance"`
}
