package translate

import (
	"context"
	"fmt"

	translate "cloud.google.com/go/translate"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleTranslator implements Translator with the Cloud Translation v2 API
type GoogleTranslator struct {
	client *translate.Client
	logger *zap.Logger
}

// NewGoogleTranslator creates a Cloud Translation client
func NewGoogleTranslator(ctx context.Context, logger *zap.Logger, opts ...option.ClientOption) (*GoogleTranslator, error) {
	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translate client: %w", err)
	}

	return &GoogleTranslator{
		client: client,
		logger: logger,
	}, nil
}

// Translate implements repositories.Translator
func (g *GoogleTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	target, err := language.Parse(targetLanguage)
	if err != nil {
		return "", fmt.Errorf("invalid target language %q: %w", targetLanguage, err)
	}

	translations, err := g.client.Translate(ctx, []string{text}, target, nil)
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}
	if len(translations) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	g.logger.Debug("Translation completed",
		zap.String("target", targetLanguage),
		zap.String("detectedSource", translations[0].Source.String()))

	return translations[0].Text, nil
}

// Close releases the client
func (g *GoogleTranslator) Close() error {
	return g.client.Close()
}
