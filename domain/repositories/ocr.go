package repositories

import "context"

// TextDetector abstracts optical character recognition services
type TextDetector interface {
	// DetectText returns the annotations found in the encoded image. By
	// convention the first annotation aggregates all text on the page.
	DetectText(ctx context.Context, image []byte) ([]TextAnnotation, error)
}

// TextAnnotation is a piece of text found in an image
type TextAnnotation struct {
	Description string `json:"description"`
	Locale      string `json:"locale,omitempty"`
}
