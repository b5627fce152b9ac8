package parsing

import "strings"

// NormalizeLine collapses runs of whitespace to single spaces and trims the
// ends. It is idempotent and never fails; an empty or all-whitespace line
// normalizes to "".
func NormalizeLine(line string) string {
	return strings.Join(strings.Fields(line), " ")
}

// NormalizeLines normalizes every line in the sequence, preserving order and
// count so that line-adjacency rules (e.g. the TOTAL / amount pair) still see
// neighbouring lines at neighbouring indices.
func NormalizeLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = NormalizeLine(line)
	}
	return out
}
