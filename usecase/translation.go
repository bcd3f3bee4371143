package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/satriahrh/alihbahasa/domain"
	"github.com/satriahrh/alihbahasa/domain/repositories"
)

// ImageTargetLanguage is the only target of the image flow; other languages
// are requested separately through the translate endpoint.
const ImageTargetLanguage = "en"

// DefaultTargets are the languages the audio flow always produces
var DefaultTargets = []string{"en", "hi", "te"}

// TranslationService relays recognized text to the translation capability
type TranslationService struct {
	translator repositories.Translator
	timeout    time.Duration
	logger     *zap.Logger
}

// NewTranslationService creates a new translation service
func NewTranslationService(translator repositories.Translator, timeout time.Duration, logger *zap.Logger) *TranslationService {
	return &TranslationService{
		translator: translator,
		timeout:    timeout,
		logger:     logger,
	}
}

// Translate performs one translation call
func (s *TranslationService) Translate(ctx context.Context, text, target string) (string, error) {
	if _, err := language.Parse(target); err != nil {
		return "", domain.InvalidLanguage(target, err)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	translated, err := s.translator.Translate(ctx, text, target)
	if err != nil {
		s.logger.Warn("Translation call failed", zap.String("target", target), zap.Error(err))
		return "", domain.TranslationFailure(err)
	}

	return translated, nil
}

// TranslateAll translates text into every target, one call at a time and in
// order. The first failure aborts the whole operation; no partial map is
// returned.
func (s *TranslationService) TranslateAll(ctx context.Context, text string, targets []string) (map[string]string, error) {
	for _, target := range targets {
		if _, err := language.Parse(target); err != nil {
			return nil, domain.InvalidLanguage(target, err)
		}
	}

	translations := make(map[string]string, len(targets))
	for _, target := range targets {
		translated, err := s.Translate(ctx, text, target)
		if err != nil {
			return nil, err
		}
		translations[target] = translated
	}

	s.logger.Info("Translations completed", zap.Strings("targets", targets))
	return translations, nil
}
