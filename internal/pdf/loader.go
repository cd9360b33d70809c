// Package pdf opens CUSDEC PDF files and turns their positioned text into
// the immutable page snapshots the extraction pipeline consumes. It also
// provides the file validation, directory search and path confinement the
// server surface needs. Nothing in this package is touched again once a
// document has been handed to the pipeline.
package pdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/payreqgen/cusdec-extract/internal/layout"
)

const (
	// Fallback page size when the media box cannot be read (US Letter).
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0

	// ledongthuc/pdf reports no glyph height, so the font size stands in.
	defaultWordHeight = 12.0

	// Upper bound on words kept per page. Label search is linear in word
	// count; the cap bounds it on adversarially dense documents.
	defaultMaxWordsPerPage = 20000
)

// Loader reads a PDF file into a layout.Document.
type Loader struct {
	maxFileSize     int64
	maxWordsPerPage int
	validator       *Validator
}

// NewLoader creates a loader with the specified file size constraint.
func NewLoader(maxFileSize int64) *Loader {
	return &Loader{
		maxFileSize:     maxFileSize,
		maxWordsPerPage: defaultMaxWordsPerPage,
		validator:       NewValidator(maxFileSize),
	}
}

// LoadDocument parses the file at path into an immutable page snapshot.
// The returned document owns no file handle; the caller may process it
// long after this call returns. A file that cannot be parsed as a PDF is
// the one fatal error of an extraction run.
func (l *Loader) LoadDocument(path string) (layout.Document, error) {
	if path == "" {
		return layout.Document{}, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return layout.Document{}, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return layout.Document{}, fmt.Errorf("cannot access file: %w", err)
	}
	if err := l.validator.ValidateFileInfo(path, fileInfo); err != nil {
		return layout.Document{}, err
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return layout.Document{}, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	// Media box dimensions come from pdfcpu; ledongthuc/pdf does not
	// expose page geometry. Best effort: a failure falls back to the
	// default page size rather than aborting the load.
	dims, err := api.PageDimsFile(path)
	if err != nil {
		dims = nil
	}

	pages := make([]layout.Page, 0, reader.NumPage())
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		width, height := defaultPageWidth, defaultPageHeight
		if pageNum <= len(dims) && dims[pageNum-1].Width > 0 && dims[pageNum-1].Height > 0 {
			width = dims[pageNum-1].Width
			height = dims[pageNum-1].Height
		}
		pages = append(pages, l.loadPage(reader.Page(pageNum), pageNum-1, width, height))
	}

	return layout.Document{Pages: pages}, nil
}

// loadPage builds one page snapshot. Malformed content streams can panic
// inside the parser; a panic leaves the page with whatever was decoded
// before it, mirroring how other pages survive a single bad one.
func (l *Loader) loadPage(p pdf.Page, index int, width, height float64) (out layout.Page) {
	out = layout.Page{
		Index:  index,
		Bounds: layout.Rect{X1: width, Y1: height},
	}

	defer func() {
		_ = recover()
	}()

	if p.V.IsNull() {
		return out
	}

	out.Words = l.pageWords(p, height)
	out.Blocks = pageBlocks(p, height)
	return out
}

// pageWords converts the page's text runs into words with top-left-origin
// boxes. PDF text coordinates grow upward from the bottom of the page;
// layout space grows downward, so the vertical axis is flipped here once
// and nowhere else.
func (l *Loader) pageWords(p pdf.Page, pageHeight float64) []layout.Word {
	content := p.Content()

	words := make([]layout.Word, 0, len(content.Text))
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		if l.maxWordsPerPage > 0 && len(words) >= l.maxWordsPerPage {
			break
		}
		words = append(words, layout.Word{Rect: textRect(t, pageHeight), Text: t.S})
	}
	return words
}

// pageBlocks groups the page's text runs into row blocks. A block's box
// is the union of its runs' boxes and its text their left-to-right join,
// which on printed forms usually reassembles a whole labeled cell.
func pageBlocks(p pdf.Page, pageHeight float64) []layout.Block {
	rows, err := p.GetTextByRow()
	if err != nil {
		return nil
	}

	blocks := make([]layout.Block, 0, len(rows))
	for _, row := range rows {
		if row == nil || len(row.Content) == 0 {
			continue
		}

		var rect layout.Rect
		parts := make([]string, 0, len(row.Content))
		for _, t := range row.Content {
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			r := textRect(t, pageHeight)
			if len(parts) == 0 {
				rect = r
			} else {
				rect = rect.Union(r)
			}
			parts = append(parts, t.S)
		}
		if len(parts) == 0 {
			continue
		}

		blocks = append(blocks, layout.Block{Rect: rect, Text: strings.Join(parts, " ")})
	}
	return blocks
}

func textRect(t pdf.Text, pageHeight float64) layout.Rect {
	height := t.FontSize
	if height == 0 {
		height = defaultWordHeight
	}
	top := pageHeight - (t.Y + height)
	if top < 0 {
		top = 0
	}
	return layout.NewRect(t.X, top, t.X+t.W, pageHeight-t.Y)
}
