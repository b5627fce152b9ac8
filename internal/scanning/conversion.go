package scanning

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/gen2brain/heic"
)

// transcriptPrompt is the shared prompt used by the vision-model line
// sources. The parsing engine does all interpretation itself, so the model
// is asked for a verbatim transcript rather than extracted fields.
const transcriptPrompt = `You are transcribing a retail receipt. Read every piece of text in the image from top to bottom and return it verbatim.

Rules:
- Output exactly one line of text per physical line on the receipt, in reading order.
- Preserve the original wording, numbers, currency symbols, punctuation and casing.
- Do not merge, reorder, omit or invent lines. Include headers, totals and promotional lines.
- Do not add commentary, explanations or markdown formatting of any kind.`

// pdfToPNG renders the first page of a PDF as a PNG image. Receipts are
// effectively always single page.
func pdfToPNG(pdfData []byte) ([]byte, error) {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	img, err := doc.Image(0)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF page: %w", err)
	}

	return encodePNG(img)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// isHEIC detects HEIC/HEIF content, either by the ftyp box brand in the data
// or by MIME type. iPhones upload receipts in this format and Go's standard
// image package cannot decode it.
func isHEIC(data []byte, mimeType string) bool {
	if strings.Contains(mimeType, "heic") || strings.Contains(mimeType, "heif") {
		return true
	}
	if len(data) >= 12 && string(data[4:8]) == "ftyp" {
		switch string(data[8:12]) {
		case "heic", "heif", "mif1", "msf1":
			return true
		}
	}
	return false
}

// normalizeToPNG converts any supported upload (PDF, JPEG, PNG, GIF,
// HEIC/HEIF) to PNG so every scanner sees one input format.
func normalizeToPNG(data []byte, contentType string) ([]byte, error) {
	mimeType := strings.ToLower(strings.TrimSpace(contentType))

	switch {
	case mimeType == "application/pdf":
		return pdfToPNG(data)
	case isHEIC(data, mimeType):
		img, err := heic.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding HEIC/HEIF image: %w", err)
		}
		return encodePNG(img)
	case mimeType == "image/png":
		return data, nil
	default:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding image (supported: JPEG, PNG, GIF, HEIC, HEIF, PDF): %w", err)
		}
		return encodePNG(img)
	}
}
