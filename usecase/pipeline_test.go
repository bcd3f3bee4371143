package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/satriahrh/alihbahasa/domain"
	"github.com/satriahrh/alihbahasa/domain/entities"
	"github.com/satriahrh/alihbahasa/domain/repositories"
	"github.com/satriahrh/alihbahasa/internal/testutil"
)

func newTestUpload(t *testing.T, name string, kind entities.MediaKind, content []byte) *entities.Upload {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	testutil.CreateTestFile(t, path, content)
	return &entities.Upload{
		Filename:  name,
		Path:      path,
		Extension: entities.ExtensionOf(name),
		Kind:      kind,
		Size:      int64(len(content)),
	}
}

func TestMediaService_TranslateImage(t *testing.T) {
	detector := &testutil.FakeTextDetector{Annotations: []repositories.TextAnnotation{{Description: "HELLO"}}}
	translator := &testutil.FakeTranslator{}
	recognition := NewRecognitionService(detector, &testutil.FakeSpeechToText{}, time.Second, zap.NewNop())
	translation := NewTranslationService(translator, time.Second, zap.NewNop())
	svc := NewMediaService(recognition, translation, zap.NewNop())

	upload := newTestUpload(t, "sign.png", entities.MediaKindImage, []byte("png"))
	got, err := svc.TranslateImage(context.Background(), upload)
	if err != nil {
		t.Fatalf("TranslateImage failed: %v", err)
	}
	if got != "HELLO" {
		t.Errorf("Expected 'HELLO', got %q", got)
	}
	if !reflect.DeepEqual(translator.Targets(), []string{"en"}) {
		t.Errorf("Image flow should translate to English only, got %v", translator.Targets())
	}
}

func TestMediaService_TranslateAudio(t *testing.T) {
	stt := &testutil.FakeSpeechToText{Results: testutil.Transcript("bonjour")}
	translator := &testutil.FakeTranslator{Fn: testutil.SuffixTarget}
	recognition := NewRecognitionService(&testutil.FakeTextDetector{}, stt, time.Second, zap.NewNop())
	translation := NewTranslationService(translator, time.Second, zap.NewNop())
	svc := NewMediaService(recognition, translation, zap.NewNop())

	upload := newTestUpload(t, "clip.flac", entities.MediaKindAudio, []byte("flac"))
	upload.SourceLanguage = "fr-FR"

	got, err := svc.TranslateAudio(context.Background(), upload)
	if err != nil {
		t.Fatalf("TranslateAudio failed: %v", err)
	}
	want := map[string]string{"en": "bonjour-en", "hi": "bonjour-hi", "te": "bonjour-te"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if string(stt.LastAudio()) != "flac" {
		t.Errorf("Recognizer should receive the stored bytes, got %q", stt.LastAudio())
	}
}

func TestMediaService_RecognitionErrorSkipsTranslation(t *testing.T) {
	translator := &testutil.FakeTranslator{}
	recognition := NewRecognitionService(&testutil.FakeTextDetector{}, &testutil.FakeSpeechToText{}, time.Second, zap.NewNop())
	translation := NewTranslationService(translator, time.Second, zap.NewNop())
	svc := NewMediaService(recognition, translation, zap.NewNop())

	upload := newTestUpload(t, "blank.png", entities.MediaKindImage, []byte("png"))
	_, err := svc.TranslateImage(context.Background(), upload)
	if !errors.Is(err, domain.ErrNoTextFound) {
		t.Fatalf("Expected ErrNoTextFound, got %v", err)
	}
	if len(translator.Targets()) != 0 {
		t.Error("Translator should not be called when recognition fails")
	}
}

func TestMediaService_MissingFile(t *testing.T) {
	recognition := NewRecognitionService(&testutil.FakeTextDetector{}, &testutil.FakeSpeechToText{}, time.Second, zap.NewNop())
	translation := NewTranslationService(&testutil.FakeTranslator{}, time.Second, zap.NewNop())
	svc := NewMediaService(recognition, translation, zap.NewNop())

	upload := &entities.Upload{Filename: "gone.png", Path: filepath.Join(t.TempDir(), "gone.png"), Kind: entities.MediaKindImage}
	if _, err := svc.TranslateImage(context.Background(), upload); err == nil {
		t.Error("Expected error when the stored file is missing")
	}
}
