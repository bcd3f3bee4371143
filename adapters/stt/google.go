package stt

import (
	"context"
	"fmt"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/satriahrh/alihbahasa/domain/repositories"
)

// GoogleSpeechToText implements SpeechToText for Google Cloud
type GoogleSpeechToText struct {
	client *speech.Client
	logger *zap.Logger
}

// NewGoogleSpeechToText creates a Google Cloud Speech client. Credentials come
// from the ambient environment unless opts override them.
func NewGoogleSpeechToText(ctx context.Context, logger *zap.Logger, opts ...option.ClientOption) (*GoogleSpeechToText, error) {
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}

	return &GoogleSpeechToText{
		client: client,
		logger: logger,
	}, nil
}

// Recognize performs a synchronous recognize call with the whole clip inline
func (g *GoogleSpeechToText) Recognize(ctx context.Context, audioData []byte, config repositories.AudioConfig) ([]repositories.SpeechResult, error) {
	encoding, err := getAudioEncoding(config.Encoding)
	if err != nil {
		return nil, err
	}

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        encoding,
			SampleRateHertz: int32(config.SampleRate),
			LanguageCode:    config.Language,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audioData},
		},
	}

	g.logger.Debug("Sending recognize request",
		zap.Int("audioSize", len(audioData)),
		zap.String("encoding", string(config.Encoding)),
		zap.String("language", config.Language))

	resp, err := g.client.Recognize(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("speech recognize failed: %w", err)
	}

	results := make([]repositories.SpeechResult, 0, len(resp.GetResults()))
	for _, r := range resp.GetResults() {
		alternatives := make([]repositories.SpeechAlternative, 0, len(r.GetAlternatives()))
		for _, alt := range r.GetAlternatives() {
			alternatives = append(alternatives, repositories.SpeechAlternative{
				Transcript: alt.GetTranscript(),
				Confidence: alt.GetConfidence(),
			})
		}
		results = append(results, repositories.SpeechResult{Alternatives: alternatives})
	}

	return results, nil
}

// Close releases the underlying gRPC connection
func (g *GoogleSpeechToText) Close() error {
	return g.client.Close()
}

// getAudioEncoding converts the domain encoding to the Google Speech API enum
func getAudioEncoding(encoding repositories.AudioEncoding) (speechpb.RecognitionConfig_AudioEncoding, error) {
	switch encoding {
	case repositories.EncodingLinear16:
		return speechpb.RecognitionConfig_LINEAR16, nil
	case repositories.EncodingFLAC:
		return speechpb.RecognitionConfig_FLAC, nil
	case repositories.EncodingMP3:
		return speechpb.RecognitionConfig_MP3, nil
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, fmt.Errorf("unsupported encoding: %s", encoding)
	}
}
