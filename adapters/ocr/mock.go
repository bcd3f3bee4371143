package ocr

import (
	"context"

	"go.uber.org/zap"

	"github.com/satriahrh/alihbahasa/domain/repositories"
)

// MockTextDetector is a placeholder implementation for text detection
type MockTextDetector struct {
	logger *zap.Logger
}

// NewMockTextDetector creates a new mock text detector
func NewMockTextDetector(logger *zap.Logger) *MockTextDetector {
	return &MockTextDetector{logger: logger}
}

// DetectText implements repositories.TextDetector
func (m *MockTextDetector) DetectText(ctx context.Context, image []byte) ([]repositories.TextAnnotation, error) {
	m.logger.Info("Processing text detection", zap.Int("imageSize", len(image)))

	if len(image) == 0 {
		return nil, nil
	}

	// Full-page aggregate first, then the individual words
	return []repositories.TextAnnotation{
		{Description: "Selamat datang", Locale: "id"},
		{Description: "Selamat"},
		{Description: "datang"},
	}, nil
}
