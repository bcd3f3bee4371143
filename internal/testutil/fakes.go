package testutil

import (
	"context"
	"sync"

	"github.com/satriahrh/alihbahasa/domain/repositories"
)

// FakeTextDetector returns canned annotations and records every call
type FakeTextDetector struct {
	Annotations []repositories.TextAnnotation
	Err         error

	mu    sync.Mutex
	calls int
}

// DetectText implements repositories.TextDetector
func (f *FakeTextDetector) DetectText(ctx context.Context, image []byte) ([]repositories.TextAnnotation, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Annotations, nil
}

// Calls returns how many times DetectText was invoked
func (f *FakeTextDetector) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// FakeSpeechToText returns canned results and remembers the last config
type FakeSpeechToText struct {
	Results []repositories.SpeechResult
	Err     error

	mu         sync.Mutex
	calls      int
	lastConfig repositories.AudioConfig
	lastAudio  []byte
}

// Recognize implements repositories.SpeechToText
func (f *FakeSpeechToText) Recognize(ctx context.Context, audioData []byte, config repositories.AudioConfig) ([]repositories.SpeechResult, error) {
	f.mu.Lock()
	f.calls++
	f.lastConfig = config
	f.lastAudio = append([]byte(nil), audioData...)
	f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Results, nil
}

// Calls returns how many times Recognize was invoked
func (f *FakeSpeechToText) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// LastConfig returns the config of the most recent call
func (f *FakeSpeechToText) LastConfig() repositories.AudioConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastConfig
}

// LastAudio returns a copy of the bytes of the most recent call
func (f *FakeSpeechToText) LastAudio() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastAudio
}

// FakeTranslator delegates to Fn, defaulting to the identity translation.
// FailOn makes the n-th call (1-based) return FailErr.
type FakeTranslator struct {
	Fn      func(text, target string) string
	FailOn  int
	FailErr error

	mu      sync.Mutex
	targets []string
}

// Translate implements repositories.Translator
func (f *FakeTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	f.mu.Lock()
	f.targets = append(f.targets, targetLanguage)
	n := len(f.targets)
	f.mu.Unlock()

	if f.FailOn > 0 && n == f.FailOn {
		return "", f.FailErr
	}
	if f.Fn == nil {
		return text, nil
	}
	return f.Fn(text, targetLanguage), nil
}

// Targets returns the target languages requested so far, in call order
func (f *FakeTranslator) Targets() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.targets...)
}

// SuffixTarget is a translation function producing "<text>-<target>"
func SuffixTarget(text, target string) string {
	return text + "-" + target
}

// Transcript builds a single-result speech response
func Transcript(text string) []repositories.SpeechResult {
	return []repositories.SpeechResult{
		{Alternatives: []repositories.SpeechAlternative{{Transcript: text, Confidence: 0.92}}},
	}
}
