package main

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/satriahrh/alihbahasa/internal/config"
)

func mockConfig() *config.Config {
	return &config.Config{
		OCR:       config.ProviderConfig{Provider: "mock"},
		STT:       config.ProviderConfig{Provider: "mock"},
		Translate: config.ProviderConfig{Provider: "mock"},
	}
}

func TestNewProviders_Mock(t *testing.T) {
	p, err := newProviders(context.Background(), mockConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("newProviders failed: %v", err)
	}
	defer p.Close(zap.NewNop())

	if p.detector == nil || p.stt == nil || p.translator == nil {
		t.Error("Expected every capability to be set")
	}
	if len(p.closers) != 0 {
		t.Errorf("Mock providers hold no clients, got %d closers", len(p.closers))
	}
}

func TestNewProviders_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"unknown ocr", func(c *config.Config) { c.OCR.Provider = "abbyy" }},
		{"unknown stt", func(c *config.Config) { c.STT.Provider = "whisper" }},
		{"gemini without key", func(c *config.Config) { c.Translate.Provider = "gemini" }},
		{"openai without key", func(c *config.Config) { c.Translate.Provider = "openai" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := mockConfig()
			tt.mutate(cfg)
			if _, err := newProviders(context.Background(), cfg, zap.NewNop()); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(config.LogConfig{Level: "debug", Development: true})
	if err != nil {
		t.Fatalf("newLogger failed: %v", err)
	}
	if !logger.Core().Enabled(zap.DebugLevel) {
		t.Error("Expected debug level to be enabled")
	}

	if _, err := newLogger(config.LogConfig{Level: "loud"}); err == nil {
		t.Error("Expected error for unknown level")
	}
}
