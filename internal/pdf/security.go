package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathValidator confines file access to the configured declarations
// directory. Tool handlers receive arbitrary paths over the wire, so
// every path is resolved and checked before a file is opened.
type PathValidator struct {
	declarationsDir string
}

// NewPathValidator creates a path validator rooted at the given
// directory. The directory does not need to exist yet; confinement is
// skipped until it does.
func NewPathValidator(declarationsDir string) (*PathValidator, error) {
	if declarationsDir == "" {
		return nil, fmt.Errorf("declarations directory cannot be empty")
	}
	return &PathValidator{declarationsDir: declarationsDir}, nil
}

// DeclarationsDir returns the configured declarations directory.
func (v *PathValidator) DeclarationsDir() string {
	return v.declarationsDir
}

// ValidatePath checks that a path stays within the declarations
// directory.
func (v *PathValidator) ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	// A not-yet-created declarations directory cannot confine anything.
	if _, err := os.Stat(v.declarationsDir); os.IsNotExist(err) {
		return nil
	}

	within, err := v.isWithinDeclarationsDir(path)
	if err != nil {
		return fmt.Errorf("path validation failed: %w", err)
	}
	if !within {
		return fmt.Errorf("path is outside configured directory: %s", path)
	}
	return nil
}

// NormalizePath resolves a path to an absolute path inside the
// declarations directory. Relative paths are taken relative to the
// declarations directory.
func (v *PathValidator) NormalizePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(v.declarationsDir, path)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	if err := v.ValidatePath(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

// isWithinDeclarationsDir reports whether path, after cleaning and
// symlink resolution, stays under the declarations directory. Both the
// literal and the resolved form of the path must be confined, so a
// symlink inside the directory cannot escape it.
func (v *PathValidator) isWithinDeclarationsDir(path string) (bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("failed to resolve path: %w", err)
	}
	absDir, err := filepath.Abs(v.declarationsDir)
	if err != nil {
		return false, fmt.Errorf("failed to resolve configured directory: %w", err)
	}

	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(absDir)

	realPath := cleanPath
	if info, err := os.Lstat(cleanPath); err == nil && info.Mode()&os.ModeSymlink != 0 {
		if resolved, err := filepath.EvalSymlinks(cleanPath); err == nil {
			realPath = resolved
		}
	}

	realDir := cleanDir
	if resolved, err := filepath.EvalSymlinks(cleanDir); err == nil {
		realDir = resolved
	}

	return pathUnder(cleanPath, cleanDir, realDir) && pathUnder(realPath, cleanDir, realDir), nil
}

func pathUnder(path string, dirs ...string) bool {
	for _, dir := range dirs {
		withSep := dir
		if !strings.HasSuffix(withSep, string(filepath.Separator)) {
			withSep += string(filepath.Separator)
		}
		if path == dir || strings.HasPrefix(path, withSep) {
			return true
		}
	}
	return false
}
