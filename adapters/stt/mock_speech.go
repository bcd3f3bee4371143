package stt

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/satriahrh/alihbahasa/domain/repositories"
)

// MockSpeechToText is a placeholder implementation for speech recognition
type MockSpeechToText struct {
	logger *zap.Logger
}

// NewMockSpeechToText creates a new mock speech-to-text service
func NewMockSpeechToText(logger *zap.Logger) *MockSpeechToText {
	return &MockSpeechToText{
		logger: logger,
	}
}

// Recognize implements repositories.SpeechToText
func (s *MockSpeechToText) Recognize(ctx context.Context, audioData []byte, config repositories.AudioConfig) ([]repositories.SpeechResult, error) {
	s.logger.Info("Processing speech-to-text",
		zap.Int("audioSize", len(audioData)),
		zap.Int("sampleRate", config.SampleRate),
		zap.String("encoding", string(config.Encoding)),
		zap.String("language", config.Language))

	if len(audioData) == 0 {
		return nil, nil
	}

	// Mock transcription based on audio size
	var transcript string
	switch {
	case len(audioData) > 10000:
		transcript = "Selamat pagi, apa kabar? Saya ingin bercerita tentang hari ini."
	case len(audioData) > 5000:
		transcript = "Terima kasih sudah mendengarkan."
	case len(audioData) > 1000:
		transcript = "Halo semuanya!"
	default:
		transcript = "Halo"
	}

	return []repositories.SpeechResult{
		{Alternatives: []repositories.SpeechAlternative{
			{Transcript: transcript, Confidence: 0.9},
			{Transcript: fmt.Sprintf("%s (%s)", transcript, config.Language), Confidence: 0.4},
		}},
	}, nil
}
