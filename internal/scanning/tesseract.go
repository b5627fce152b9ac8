package scanning

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract implements the Scanner interface using a local tesseract
// install via gosseract. It needs no network or API key, at the cost of
// noisier output than the vision models.
type Tesseract struct {
	language string
}

// NewTesseract creates a new Tesseract Scanner instance. language is a
// "+"-separated tesseract language string (e.g. "eng+fra"); empty means
// tesseract's default (eng).
func NewTesseract(language string) (*Tesseract, error) {
	return &Tesseract{language: language}, nil
}

// ScanLines runs OCR on the receipt and returns its text lines in reading
// order. A fresh gosseract client is used per call; the client is not safe
// for concurrent use.
func (t *Tesseract) ScanLines(imageData []byte, contentType string) ([]string, error) {
	pngData, err := normalizeToPNG(imageData, contentType)
	if err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if t.language != "" {
		if err := client.SetLanguage(t.language); err != nil {
			return nil, fmt.Errorf("setting OCR language: %w", err)
		}
	}

	if err := client.SetImageFromBytes(pngData); err != nil {
		return nil, fmt.Errorf("setting OCR image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("running OCR: %w", err)
	}

	return transcriptLines(text), nil
}

// Close releases OCR resources (no-op; clients are per call).
func (t *Tesseract) Close() error {
	return nil
}
