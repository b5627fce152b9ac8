package parsing

// captureState is the segmenter's position relative to the item section.
type captureState int

const (
	notCapturing captureState = iota
	capturing
	stopped
)

// SegmentItems slices the item-candidate lines out of the full sequence.
// Capture begins after the first line containing a section-start keyword
// (that line is discarded), emits every non-blank line, and halts permanently
// on the first line matching a section-end marker — lines after that are
// never inspected, even if they contain another start keyword. A sequence
// without a start keyword yields no candidates, which is a valid result.
func SegmentItems(lines []string, profile *Profile) []string {
	state := notCapturing
	candidates := make([]string, 0, len(lines))

	for _, line := range lines {
		switch state {
		case notCapturing:
			if profile.isSectionStart(line) {
				state = capturing
			}
		case capturing:
			if profile.isSectionEnd(line) {
				state = stopped
				continue
			}
			if line != "" {
				candidates = append(candidates, line)
			}
		case stopped:
			return candidates
		}
	}
	return candidates
}
