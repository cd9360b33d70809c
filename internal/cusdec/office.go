package cusdec

import (
	"regexp"
	"strings"
)

// DefaultOfficeCode is the customs office assumed when no code can be read
// from the declaration.
const DefaultOfficeCode = "CBBI1"

// Office codes look like "CBBI2" followed by the office's name, e.g.
// "CBBI2 Colombo Boi Imports(Air". The trailing letter requirement keeps
// bare numeric runs from matching.
var officeCodePattern = regexp.MustCompile(`([A-Z]{3,4}\d{1,2})\s+[A-Za-z]`)

// ParseOfficeCode extracts the customs office code from a cage's lines,
// returning fallback when no code-shaped token is found.
func ParseOfficeCode(lines []string, fallback string) string {
	fullText := strings.Join(lines, " ")

	if m := officeCodePattern.FindStringSubmatch(fullText); m != nil {
		return m[1]
	}

	return fallback
}
