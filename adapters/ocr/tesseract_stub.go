//go:build !tesseract

package ocr

import (
	"errors"

	"go.uber.org/zap"

	"github.com/satriahrh/alihbahasa/domain/repositories"
)

// NewTesseractDetector reports that this binary was built without Tesseract support
func NewTesseractDetector(logger *zap.Logger, languages ...string) (repositories.TextDetector, error) {
	return nil, errors.New("tesseract support not compiled in; rebuild with -tags tesseract")
}
