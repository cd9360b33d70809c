package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidator_ValidateFile(t *testing.T) {
	validator := NewValidator(1024 * 1024) // 1MB limit

	tests := []struct {
		name        string
		req         ValidateFileRequest
		expectValid bool
	}{
		{
			name:        "empty path",
			req:         ValidateFileRequest{Path: ""},
			expectValid: false,
		},
		{
			name:        "non-existent file",
			req:         ValidateFileRequest{Path: "/non/existent/file.pdf"},
			expectValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := validator.ValidateFile(tt.req)
			// Validation failures land in the result, not the error.
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result == nil {
				t.Fatalf("result should not be nil")
			}

			if result.Valid != tt.expectValid {
				t.Errorf("expected Valid=%v but got %v", tt.expectValid, result.Valid)
			}
			if result.Path != tt.req.Path {
				t.Errorf("expected Path=%s but got %s", tt.req.Path, result.Path)
			}
			if !tt.expectValid && result.Message == "" {
				t.Errorf("expected validation message for invalid file")
			}
		})
	}
}

func TestValidator_ValidateFileInfo(t *testing.T) {
	validator := NewValidator(100) // tiny limit for the size case

	tempDir := t.TempDir()

	smallPDF := filepath.Join(tempDir, "small.pdf")
	if err := os.WriteFile(smallPDF, []byte("x"), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	largePDF := filepath.Join(tempDir, "large.pdf")
	if err := os.WriteFile(largePDF, make([]byte, 200), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	emptyPDF := filepath.Join(tempDir, "empty.pdf")
	if err := os.WriteFile(emptyPDF, nil, 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	notPDF := filepath.Join(tempDir, "notes.txt")
	if err := os.WriteFile(notPDF, []byte("text"), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "valid small pdf", path: smallPDF, wantErr: false},
		{name: "directory", path: tempDir, wantErr: true},
		{name: "not a pdf extension", path: notPDF, wantErr: true},
		{name: "empty file", path: emptyPDF, wantErr: true},
		{name: "too large", path: largePDF, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := os.Stat(tt.path)
			if err != nil {
				t.Fatalf("stat failed: %v", err)
			}

			err = validator.ValidateFileInfo(tt.path, info)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFileInfo() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidator_IsValidPDF(t *testing.T) {
	validator := NewValidator(1024)

	if validator.IsValidPDF("") {
		t.Errorf("empty path should not be valid")
	}
	if validator.IsValidPDF("/non/existent/file.pdf") {
		t.Errorf("non-existent file should not be valid")
	}

	// A file with the right extension but garbage content fails the
	// structural check.
	tempDir := t.TempDir()
	fake := filepath.Join(tempDir, "fake.pdf")
	if err := os.WriteFile(fake, []byte("not a pdf"), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	if validator.IsValidPDF(fake) {
		t.Errorf("garbage content should not be valid")
	}
}
