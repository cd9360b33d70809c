package cusdec

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	grossValuePattern = regexp.MustCompile(`([\d,]+)\s*Total Declaration`)
	numberPattern     = regexp.MustCompile(`[\d,]+`)
)

// ParseGrossValue extracts the declared gross value from a cage's lines.
//
// Primary tier: the comma-grouped number printed immediately before the
// literal phrase "Total Declaration". Fallback tier: the first
// comma-grouped number on the line preceding any line that mentions the
// phrase. Returns 0 when neither tier yields a parseable number.
func ParseGrossValue(lines []string) float64 {
	fullText := strings.Join(lines, " ")

	if m := grossValuePattern.FindStringSubmatch(fullText); m != nil {
		if v, err := parseGroupedNumber(m[1]); err == nil {
			return v
		}
	}

	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), "total declaration") || i == 0 {
			continue
		}
		if numbers := numberPattern.FindAllString(lines[i-1], -1); len(numbers) > 0 {
			if v, err := parseGroupedNumber(numbers[0]); err == nil {
				return v
			}
		}
	}

	return 0
}

// parseGroupedNumber parses a digit run that may carry comma grouping.
func parseGroupedNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
