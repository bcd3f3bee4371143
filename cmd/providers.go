package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/satriahrh/alihbahasa/adapters/ocr"
	"github.com/satriahrh/alihbahasa/adapters/stt"
	"github.com/satriahrh/alihbahasa/adapters/translate"
	"github.com/satriahrh/alihbahasa/domain/repositories"
	"github.com/satriahrh/alihbahasa/internal/config"
)

// providers holds the capability clients selected by config
type providers struct {
	detector   repositories.TextDetector
	stt        repositories.SpeechToText
	translator repositories.Translator
	closers    []io.Closer
}

func (p *providers) Close(logger *zap.Logger) {
	for _, c := range p.closers {
		if err := c.Close(); err != nil {
			logger.Warn("Failed to close client", zap.Error(err))
		}
	}
}

func googleOptions(cfg *config.Config) []option.ClientOption {
	if cfg.Google.CredentialsFile == "" {
		return nil
	}
	return []option.ClientOption{option.WithCredentialsFile(cfg.Google.CredentialsFile)}
}

func newProviders(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*providers, error) {
	p := &providers{}

	detector, err := newTextDetector(ctx, cfg, logger, p)
	if err != nil {
		p.Close(logger)
		return nil, err
	}
	p.detector = detector

	recognizer, err := newSpeechToText(ctx, cfg, logger, p)
	if err != nil {
		p.Close(logger)
		return nil, err
	}
	p.stt = recognizer

	translator, err := newTranslator(ctx, cfg, logger, p)
	if err != nil {
		p.Close(logger)
		return nil, err
	}
	p.translator = translator

	logger.Info("Providers initialized",
		zap.String("ocr", cfg.OCR.Provider),
		zap.String("stt", cfg.STT.Provider),
		zap.String("translate", cfg.Translate.Provider))

	return p, nil
}

func newTextDetector(ctx context.Context, cfg *config.Config, logger *zap.Logger, p *providers) (repositories.TextDetector, error) {
	switch cfg.OCR.Provider {
	case "google":
		client, err := ocr.NewGoogleVision(ctx, logger, googleOptions(cfg)...)
		if err != nil {
			return nil, err
		}
		p.closers = append(p.closers, client)
		return client, nil
	case "tesseract":
		return ocr.NewTesseractDetector(logger)
	case "mock":
		return ocr.NewMockTextDetector(logger), nil
	default:
		return nil, fmt.Errorf("unknown ocr provider %q", cfg.OCR.Provider)
	}
}

func newSpeechToText(ctx context.Context, cfg *config.Config, logger *zap.Logger, p *providers) (repositories.SpeechToText, error) {
	switch cfg.STT.Provider {
	case "google":
		client, err := stt.NewGoogleSpeechToText(ctx, logger, googleOptions(cfg)...)
		if err != nil {
			return nil, err
		}
		p.closers = append(p.closers, client)
		return client, nil
	case "mock":
		return stt.NewMockSpeechToText(logger), nil
	default:
		return nil, fmt.Errorf("unknown stt provider %q", cfg.STT.Provider)
	}
}

func newTranslator(ctx context.Context, cfg *config.Config, logger *zap.Logger, p *providers) (repositories.Translator, error) {
	switch cfg.Translate.Provider {
	case "google":
		client, err := translate.NewGoogleTranslator(ctx, logger, googleOptions(cfg)...)
		if err != nil {
			return nil, err
		}
		p.closers = append(p.closers, client)
		return client, nil
	case "gemini":
		return translate.NewGeminiTranslator(ctx, translate.GeminiConfig{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			BaseURL: cfg.Gemini.BaseURL,
		}, logger)
	case "openai":
		return translate.NewOpenAITranslator(translate.OpenAIConfig{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
		}, logger)
	case "mock":
		return translate.NewMockTranslator(logger), nil
	default:
		return nil, fmt.Errorf("unknown translate provider %q", cfg.Translate.Provider)
	}
}

// newTranslatorOnly builds just the translation client, for the translate subcommand
func newTranslatorOnly(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*providers, error) {
	p := &providers{}
	translator, err := newTranslator(ctx, cfg, logger, p)
	if err != nil {
		p.Close(logger)
		return nil, err
	}
	p.translator = translator
	return p, nil
}
