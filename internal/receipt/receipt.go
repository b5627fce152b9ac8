package receipt

import (
	"time"

	"github.com/rvalanki/receipt-service/internal/parsing"
)

// Receipt is a processed receipt: the structured extraction result together
// with the upload's metadata. StoreName falls back to "Unknown", Date keeps
// the DD/MM/YYYY token as printed on the receipt, and TotalAmount is nil
// when no total was detected.
type Receipt struct {
	ID          string         `json:"id"`
	StoreName   string         `json:"store_name"`
	Date        string         `json:"date,omitempty"`
	TotalAmount *float64       `json:"total_amount,omitempty"`
	Items       []parsing.Item `json:"items"`
	Profile     string         `json:"profile"`
	Filename    string         `json:"filename"`
	ContentType string         `json:"content_type"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
