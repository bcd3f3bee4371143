package translate

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// MockTranslator is a placeholder implementation for translation. It tags the
// text with the target language so output stays deterministic offline.
type MockTranslator struct {
	logger *zap.Logger
}

// NewMockTranslator creates a new mock translator
func NewMockTranslator(logger *zap.Logger) *MockTranslator {
	return &MockTranslator{logger: logger}
}

// Translate implements repositories.Translator
func (m *MockTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	m.logger.Info("Processing translation",
		zap.Int("textLength", len(text)),
		zap.String("target", targetLanguage))

	return fmt.Sprintf("[%s] %s", targetLanguage, text), nil
}
