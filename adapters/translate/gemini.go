package translate

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiConfig holds configuration for the Gemini translator
type GeminiConfig struct {
	APIKey string // Required
	Model  string // Optional, defaults to gemini-2.0-flash
	// BaseURL overrides the API endpoint, mostly for tests
	BaseURL string
}

// GeminiTranslator implements Translator by prompting a Gemini model
type GeminiTranslator struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiTranslator creates a Gemini-backed translator
func NewGeminiTranslator(ctx context.Context, config GeminiConfig, logger *zap.Logger) (*GeminiTranslator, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	model := config.Model
	if model == "" {
		model = defaultGeminiModel
		logger.Info("Using default Gemini model", zap.String("model", model))
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTranslator{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Translate implements repositories.Translator
func (g *GeminiTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr(float32(0.1)),
	}

	contents := []*genai.Content{
		genai.NewContentFromText(userPrompt(text, targetLanguage), genai.RoleUser),
	}

	response, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return "", fmt.Errorf("no translation returned")
	}

	var sb strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}

	translated := cleanCompletion(sb.String())
	if translated == "" {
		return "", fmt.Errorf("no translation returned")
	}

	g.logger.Debug("Gemini translation completed",
		zap.String("target", targetLanguage),
		zap.String("model", g.model))

	return translated, nil
}
