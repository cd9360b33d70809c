package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTestPDF drops a file that passes the cheap file-info checks; the
// search layer never opens file contents.
func writeTestPDF(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("%PDF-1.4 test"), 0o600); err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
	return path
}

func TestSearch_SearchDirectory(t *testing.T) {
	search := NewSearch(1024 * 1024)
	tempDir := t.TempDir()

	writeTestPDF(t, tempDir, "cusdec_52194.pdf")
	writeTestPDF(t, tempDir, "cusdec_52201.PDF")
	writeTestPDF(t, tempDir, "invoice.pdf")
	if err := os.WriteFile(filepath.Join(tempDir, "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("failed to create text file: %v", err)
	}

	result, err := search.SearchDirectory(SearchDirectoryRequest{Directory: tempDir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalCount != 3 {
		t.Errorf("TotalCount = %d, want 3", result.TotalCount)
	}
	for _, f := range result.Files {
		if f.Size == 0 || f.Name == "" || f.ModifiedTime == "" {
			t.Errorf("incomplete file info: %+v", f)
		}
	}
}

func TestSearch_SearchDirectoryWithQuery(t *testing.T) {
	search := NewSearch(1024 * 1024)
	tempDir := t.TempDir()

	writeTestPDF(t, tempDir, "cusdec_52194.pdf")
	writeTestPDF(t, tempDir, "invoice.pdf")

	result, err := search.SearchDirectory(SearchDirectoryRequest{
		Directory: tempDir,
		Query:     "52194",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalCount != 1 {
		t.Fatalf("TotalCount = %d, want 1", result.TotalCount)
	}
	if result.Files[0].Name != "cusdec_52194.pdf" {
		t.Errorf("Name = %q, want cusdec_52194.pdf", result.Files[0].Name)
	}
	if result.SearchQuery != "52194" {
		t.Errorf("SearchQuery = %q, want 52194", result.SearchQuery)
	}
}

func TestSearch_SearchDirectoryErrors(t *testing.T) {
	search := NewSearch(1024 * 1024)

	if _, err := search.SearchDirectory(SearchDirectoryRequest{}); err == nil {
		t.Errorf("expected error for empty directory")
	}
	if _, err := search.SearchDirectory(SearchDirectoryRequest{Directory: "/non/existent"}); err == nil {
		t.Errorf("expected error for missing directory")
	}
}

func TestSearch_SkipsOversizedFiles(t *testing.T) {
	search := NewSearch(10) // 10 byte limit
	tempDir := t.TempDir()

	writeTestPDF(t, tempDir, "big.pdf") // 13 bytes, over the limit

	result, err := search.SearchDirectory(SearchDirectoryRequest{Directory: tempDir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalCount != 0 {
		t.Errorf("TotalCount = %d, want 0", result.TotalCount)
	}
}

func TestSearch_FindPDFsInDirectoryLimited(t *testing.T) {
	search := NewSearch(1024 * 1024)
	tempDir := t.TempDir()

	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		writeTestPDF(t, tempDir, name)
	}

	files, err := search.FindPDFsInDirectoryLimited(tempDir, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("len(files) = %d, want 2", len(files))
	}

	all, err := search.FindPDFsInDirectoryLimited(tempDir, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, want 3", len(all))
	}
}

func TestMatchesQuery(t *testing.T) {
	tests := []struct {
		filename string
		query    string
		want     bool
	}{
		{"cusdec_52194.pdf", "52194", true},
		{"cusdec_52194.pdf", "cusdec", true},
		{"Cusdec_52194.pdf", "CUSDEC", true},
		{"cusdec_52194.pdf", "cusdec 52194", true},
		{"cusdec_52194.pdf", "invoice", false},
		{"cusdec_52194.pdf", "", true},
	}

	for _, tt := range tests {
		if got := matchesQuery(tt.filename, tt.query); got != tt.want {
			t.Errorf("matchesQuery(%q, %q) = %v, want %v", tt.filename, tt.query, got, tt.want)
		}
	}
}

func TestSplitIntoWords(t *testing.T) {
	got := splitIntoWords("Cusdec_52194-final (copy).pdf")
	want := map[string]bool{"cusdec": true, "52194": true, "final": true, "copy": true, "pdf": true}

	if len(got) != len(want) {
		t.Fatalf("splitIntoWords() = %v, want words %v", got, want)
	}
	for _, w := range got {
		if !want[w] {
			t.Errorf("unexpected word %q in %v", w, got)
		}
	}
}

func TestIsPDFFile(t *testing.T) {
	if !isPDFFile("a.pdf") || !isPDFFile("A.PDF") {
		t.Errorf("pdf extensions should match")
	}
	if isPDFFile("a.txt") || isPDFFile("pdf") {
		t.Errorf("non-pdf names should not match")
	}
}
