package scanning

import "strings"

// transcriptLines splits a raw OCR or vision-model transcript into ordered,
// trimmed, non-empty lines. Vision models sometimes wrap their output in
// markdown code fences despite instructions; those are stripped here so the
// parsing engine only ever sees receipt text.
func transcriptLines(text string) []string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```text")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
