package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	datePattern          = regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b`)
	totalForItemsPattern = regexp.MustCompile(`(?i)Total\s+for\s+\d+\s+items:\s*\$?(\d+\.\d{2})`)
	bareAmountPattern    = regexp.MustCompile(`^\d+\.\d{2}$`)
)

// ExtractStoreName returns the first line containing one of the profile's
// store keywords (case-insensitive). When no line matches, the profile's
// fallback policy decides between the last line of the document and the
// "Unknown" sentinel. An empty sequence always resolves to the sentinel.
func ExtractStoreName(lines []string, profile *Profile) string {
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, keyword := range profile.StoreKeywords {
			if strings.Contains(lower, keyword) {
				return strings.TrimSpace(line)
			}
		}
	}
	if profile.StoreNameFallback == FallbackLastLine && len(lines) > 0 {
		return strings.TrimSpace(lines[len(lines)-1])
	}
	return UnknownStore
}

// ExtractDate returns the first word-bounded DD/MM/YYYY token in the
// sequence, as found in the source text. It is never reparsed into a
// calendar value. Returns "" when no line matches.
func ExtractDate(lines []string) string {
	for _, line := range lines {
		if m := datePattern.FindString(line); m != "" {
			return m
		}
	}
	return ""
}

// ExtractTotal applies two rules in priority order: a "Total for N items:
// $X.XX" phrase anywhere in the sequence, then a line containing TOTAL whose
// next line is a bare amount (optionally currency-prefixed). The first rule
// is exhausted across the whole sequence before the second is tried.
// Returns nil when neither matches.
func ExtractTotal(lines []string) *float64 {
	for _, line := range lines {
		if m := totalForItemsPattern.FindStringSubmatch(line); m != nil {
			if total, err := strconv.ParseFloat(m[1], 64); err == nil {
				return &total
			}
		}
	}
	for i, line := range lines {
		if !strings.Contains(strings.ToUpper(line), "TOTAL") || i+1 >= len(lines) {
			continue
		}
		next := strings.TrimSpace(strings.ReplaceAll(lines[i+1], "$", ""))
		if !bareAmountPattern.MatchString(next) {
			continue
		}
		if total, err := strconv.ParseFloat(next, 64); err == nil {
			return &total
		}
	}
	return nil
}
