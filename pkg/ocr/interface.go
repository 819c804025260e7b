package ocr

import "context"

// PageResult is the extraction outcome for one stored image.
// A per-image failure keeps its slot in the batch: empty text, zero
// confidence and the Error marker set.
type PageResult struct {
	Key        string  `json:"s3_key"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Error      string  `json:"error,omitempty"`
}

// Extractor is the interface for the external OCR service.
type Extractor interface {
	// ExtractText submits all image keys in one call and returns one
	// PageResult per key, preserving submission order. An error is returned
	// only for transport or service level failures, never for an individual
	// image that could not be read.
	ExtractText(ctx context.Context, keys []string) ([]PageResult, error)
}
