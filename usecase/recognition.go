package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/satriahrh/alihbahasa/domain"
	"github.com/satriahrh/alihbahasa/domain/repositories"
)

// SampleRateHertz is declared to the recognizer for every clip
const SampleRateHertz = 16000

// RecognitionService dispatches uploads to the text detector or the speech recognizer
type RecognitionService struct {
	textDetector repositories.TextDetector
	speechToText repositories.SpeechToText
	timeout      time.Duration
	logger       *zap.Logger
}

// NewRecognitionService creates a new recognition service. A zero timeout
// leaves calls bounded only by the caller's context.
func NewRecognitionService(
	detector repositories.TextDetector,
	stt repositories.SpeechToText,
	timeout time.Duration,
	logger *zap.Logger,
) *RecognitionService {
	return &RecognitionService{
		textDetector: detector,
		speechToText: stt,
		timeout:      timeout,
		logger:       logger,
	}
}

// RecognizeImage returns the first annotation's text, which the detector
// reports as the whole-image aggregate.
func (s *RecognitionService) RecognizeImage(ctx context.Context, content []byte) (string, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	annotations, err := s.textDetector.DetectText(ctx, content)
	if err != nil {
		return "", domain.RecognitionFailure(err)
	}
	if len(annotations) == 0 {
		return "", domain.ErrNoTextFound
	}

	s.logger.Info("Text detection completed",
		zap.Int("annotations", len(annotations)),
		zap.Int("textLength", len(annotations[0].Description)))

	return annotations[0].Description, nil
}

// RecognizeAudio transcribes a clip whose codec is implied by its extension.
// The language tag is passed to the recognizer unchanged.
func (s *RecognitionService) RecognizeAudio(ctx context.Context, content []byte, extension, language string) (string, error) {
	encoding, ok := repositories.EncodingForExtension(extension)
	if !ok {
		return "", domain.ErrUnsupportedFormat
	}

	config := repositories.AudioConfig{
		SampleRate: SampleRateHertz,
		Encoding:   encoding,
		Language:   language,
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	results, err := s.speechToText.Recognize(ctx, content, config)
	if err != nil {
		return "", domain.RecognitionFailure(err)
	}
	if len(results) == 0 || len(results[0].Alternatives) == 0 {
		return "", domain.ErrNoSpeechDetected
	}

	transcript := results[0].Alternatives[0].Transcript
	s.logger.Info("Transcription completed",
		zap.String("language", language),
		zap.String("encoding", string(encoding)),
		zap.Int("results", len(results)),
		zap.String("text", transcript))

	return transcript, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
