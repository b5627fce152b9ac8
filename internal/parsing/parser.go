// Package parsing reconstructs a structured receipt from the ordered,
// unstructured text lines produced by an OCR or document-understanding
// service. Extraction degrades gracefully: a missing store name, date or
// total resolves to an absent value, never an error, and an empty line
// sequence yields an empty receipt.
package parsing

import "fmt"

// ParsedReceipt is the structured result of one parse. StoreName defaults to
// the "Unknown" sentinel; Date holds the DD/MM/YYYY token exactly as it
// appeared in the source text, "" when none was found; TotalAmount is nil
// when neither total rule matched. Items preserves source order.
type ParsedReceipt struct {
	StoreName   string   `json:"store_name"`
	Date        string   `json:"date,omitempty"`
	TotalAmount *float64 `json:"total_amount,omitempty"`
	Items       []Item   `json:"items"`
}

// Parse extracts a receipt from the ordered line sequence using the given
// store profile. Lines are normalized once, up front, so every extractor and
// the segmenter match against the same text.
func Parse(lines []string, profile *Profile) (*ParsedReceipt, error) {
	if profile == nil {
		return nil, fmt.Errorf("parsing receipt: nil profile")
	}

	normalized := NormalizeLines(lines)

	return &ParsedReceipt{
		StoreName:   ExtractStoreName(normalized, profile),
		Date:        ExtractDate(normalized),
		TotalAmount: ExtractTotal(normalized),
		Items:       assembleItems(SegmentItems(normalized, profile), profile),
	}, nil
}
