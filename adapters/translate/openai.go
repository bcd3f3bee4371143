package translate

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIConfig holds configuration for the OpenAI translator
type OpenAIConfig struct {
	APIKey  string // Required
	Model   string // Optional, defaults to gpt-4o-mini
	BaseURL string // Optional, for compatible gateways
}

// OpenAITranslator implements Translator with chat completions
type OpenAITranslator struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewOpenAITranslator creates an OpenAI-backed translator
func NewOpenAITranslator(config OpenAIConfig, logger *zap.Logger) (*OpenAITranslator, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found")
	}

	model := config.Model
	if model == "" {
		model = openai.GPT4oMini
		logger.Info("Using default OpenAI model", zap.String("model", model))
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAITranslator{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		logger: logger,
	}, nil
}

// Translate implements repositories.Translator
func (o *OpenAITranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(text, targetLanguage)},
		},
		Temperature: 0.1,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	translated := cleanCompletion(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", fmt.Errorf("no translation returned")
	}

	o.logger.Debug("OpenAI translation completed",
		zap.String("target", targetLanguage),
		zap.String("model", o.model))

	return translated, nil
}
