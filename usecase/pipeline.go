package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/satriahrh/alihbahasa/domain/entities"
)

// RecognizeFunc turns the raw bytes of an upload into text
type RecognizeFunc func(ctx context.Context, upload *entities.Upload, content []byte) (string, error)

// TranslateFunc turns recognized text into the response payload
type TranslateFunc[T any] func(ctx context.Context, text string) (T, error)

// MediaService runs the recognize-then-translate pipeline for uploads
type MediaService struct {
	recognition *RecognitionService
	translation *TranslationService
	logger      *zap.Logger
}

// NewMediaService creates a new media service
func NewMediaService(recognition *RecognitionService, translation *TranslationService, logger *zap.Logger) *MediaService {
	return &MediaService{
		recognition: recognition,
		translation: translation,
		logger:      logger,
	}
}

// TranslateImage extracts the text of an image and translates it to English
func (s *MediaService) TranslateImage(ctx context.Context, upload *entities.Upload) (string, error) {
	recognize := func(ctx context.Context, _ *entities.Upload, content []byte) (string, error) {
		return s.recognition.RecognizeImage(ctx, content)
	}
	translate := func(ctx context.Context, text string) (string, error) {
		return s.translation.Translate(ctx, text, ImageTargetLanguage)
	}
	return run(ctx, s.logger, upload, recognize, translate)
}

// TranslateAudio transcribes a clip in its declared language and translates
// the transcript into every default target
func (s *MediaService) TranslateAudio(ctx context.Context, upload *entities.Upload) (map[string]string, error) {
	recognize := func(ctx context.Context, u *entities.Upload, content []byte) (string, error) {
		return s.recognition.RecognizeAudio(ctx, content, u.Extension, u.SourceLanguage)
	}
	translate := func(ctx context.Context, text string) (map[string]string, error) {
		return s.translation.TranslateAll(ctx, text, DefaultTargets)
	}
	return run(ctx, s.logger, upload, recognize, translate)
}

func run[T any](ctx context.Context, logger *zap.Logger, upload *entities.Upload, recognize RecognizeFunc, translate TranslateFunc[T]) (T, error) {
	var zero T
	start := time.Now()

	content, err := upload.ReadAll()
	if err != nil {
		return zero, fmt.Errorf("failed to load upload: %w", err)
	}

	text, err := recognize(ctx, upload, content)
	if err != nil {
		return zero, err
	}

	result, err := translate(ctx, text)
	if err != nil {
		return zero, err
	}

	logger.Info("Pipeline completed",
		zap.String("kind", string(upload.Kind)),
		zap.String("filename", upload.Filename),
		zap.Int("size", len(content)),
		zap.Duration("elapsed", time.Since(start)))

	return result, nil
}
