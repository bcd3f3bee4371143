package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/satriahrh/alihbahasa/domain"
	"github.com/satriahrh/alihbahasa/internal/testutil"
)

func TestTranslate_Single(t *testing.T) {
	translator := &testutil.FakeTranslator{Fn: testutil.SuffixTarget}
	svc := NewTranslationService(translator, time.Second, zap.NewNop())

	got, err := svc.Translate(context.Background(), "hi", "fr")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "hi-fr" {
		t.Errorf("Expected 'hi-fr', got %q", got)
	}
}

func TestTranslate_InvalidLanguage(t *testing.T) {
	translator := &testutil.FakeTranslator{}
	svc := NewTranslationService(translator, time.Second, zap.NewNop())

	_, err := svc.Translate(context.Background(), "hi", "not a language")
	if domain.KindOf(err) != domain.KindInvalidLanguage {
		t.Errorf("Expected invalid language, got %v", err)
	}
	if len(translator.Targets()) != 0 {
		t.Error("Translator should not be called for an invalid code")
	}
}

func TestTranslate_Failure(t *testing.T) {
	translator := &testutil.FakeTranslator{FailOn: 1, FailErr: errors.New("quota exceeded")}
	svc := NewTranslationService(translator, time.Second, zap.NewNop())

	_, err := svc.Translate(context.Background(), "hi", "fr")
	if domain.KindOf(err) != domain.KindTranslationFailure {
		t.Fatalf("Expected translation failure, got %v", err)
	}
	if err.Error() != "quota exceeded" {
		t.Errorf("Expected underlying message, got %q", err.Error())
	}
}

func TestTranslateAll_Sequential(t *testing.T) {
	translator := &testutil.FakeTranslator{Fn: testutil.SuffixTarget}
	svc := NewTranslationService(translator, time.Second, zap.NewNop())

	got, err := svc.TranslateAll(context.Background(), "bonjour", DefaultTargets)
	if err != nil {
		t.Fatalf("TranslateAll failed: %v", err)
	}

	want := map[string]string{"en": "bonjour-en", "hi": "bonjour-hi", "te": "bonjour-te"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if !reflect.DeepEqual(translator.Targets(), []string{"en", "hi", "te"}) {
		t.Errorf("Expected calls in order en, hi, te; got %v", translator.Targets())
	}
}

func TestTranslateAll_FailureAborts(t *testing.T) {
	translator := &testutil.FakeTranslator{Fn: testutil.SuffixTarget, FailOn: 2, FailErr: errors.New("backend unavailable")}
	svc := NewTranslationService(translator, time.Second, zap.NewNop())

	got, err := svc.TranslateAll(context.Background(), "bonjour", DefaultTargets)
	if err == nil {
		t.Fatal("Expected error when second call fails")
	}
	if got != nil {
		t.Errorf("Expected no partial mapping, got %v", got)
	}
	if domain.StatusCode(err) != 500 {
		t.Errorf("Expected status 500, got %d", domain.StatusCode(err))
	}
	if len(translator.Targets()) != 2 {
		t.Errorf("Expected the third call to be skipped, got calls %v", translator.Targets())
	}
}
