// Package scanning turns uploaded receipt documents (images and PDFs) into
// the ordered plain-text line sequences the parsing engine consumes. Line
// sources are interchangeable: a Gemini vision model, a local Ollama model,
// or a local tesseract install.
package scanning

// Scanner extracts the text of a receipt document as ordered lines.
type Scanner interface {
	// ScanLines returns the recognized text lines in reading order.
	ScanLines(imageData []byte, contentType string) ([]string, error)
	// Close closes the scanner and releases resources
	Close() error
}
