package repositories

import "context"

// Translator abstracts machine translation services
type Translator interface {
	// Translate renders text in the target language. The source language is
	// left for the service to infer.
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}
