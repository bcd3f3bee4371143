package domain

import (
	"errors"
	"net/http"
)

// ErrorKind classifies failures surfaced to the browser
type ErrorKind string

const (
	KindMissingFile        ErrorKind = "missing_file"
	KindMissingLanguage    ErrorKind = "missing_language"
	KindMissingField       ErrorKind = "missing_field"
	KindUnsupportedFormat  ErrorKind = "unsupported_format"
	KindInvalidLanguage    ErrorKind = "invalid_language"
	KindNoTextFound        ErrorKind = "no_text_found"
	KindNoSpeechDetected   ErrorKind = "no_speech_detected"
	KindRecognitionFailure ErrorKind = "recognition_failure"
	KindTranslationFailure ErrorKind = "translation_failure"
	KindNotImplemented     ErrorKind = "not_implemented"
)

// Error is a classified failure. Message is what the caller sees; Err, when
// set, is the underlying cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNoTextFound)
// works regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons; messages follow what the web pages display.
var (
	ErrNoFilePart        = &Error{Kind: KindMissingFile, Message: "No file part"}
	ErrNoSelectedFile    = &Error{Kind: KindMissingFile, Message: "No selected file"}
	ErrMissingLanguage   = &Error{Kind: KindMissingLanguage, Message: "No source language selected"}
	ErrUnsupportedFormat = &Error{Kind: KindUnsupportedFormat, Message: "Unsupported audio format"}
	ErrNoTextFound       = &Error{Kind: KindNoTextFound, Message: "No text found in image"}
	ErrNoSpeechDetected  = &Error{Kind: KindNoSpeechDetected, Message: "No speech detected in audio"}
	ErrVideoNotSupported = &Error{Kind: KindNotImplemented, Message: "Video translation is not implemented"}
)

// MissingField reports an absent form field
func MissingField(name string) *Error {
	return &Error{Kind: KindMissingField, Message: "Missing form field: " + name}
}

// InvalidLanguage reports a language code that is not a valid BCP-47 tag
func InvalidLanguage(code string, err error) *Error {
	return &Error{Kind: KindInvalidLanguage, Message: "Invalid language code: " + code, Err: err}
}

// RecognitionFailure wraps an error returned by a recognition capability
func RecognitionFailure(err error) *Error {
	return &Error{Kind: KindRecognitionFailure, Message: err.Error(), Err: err}
}

// TranslationFailure wraps an error returned by the translation capability
func TranslationFailure(err error) *Error {
	return &Error{Kind: KindTranslationFailure, Message: err.Error(), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// StatusCode maps an error to the HTTP status returned to the browser
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindMissingFile, KindMissingLanguage, KindMissingField,
		KindUnsupportedFormat, KindInvalidLanguage,
		KindNoTextFound, KindNoSpeechDetected:
		return http.StatusBadRequest
	case KindNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
