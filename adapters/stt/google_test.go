package stt_test

import (
	"github.com/satriahrh/alihbahasa/adapters/stt"
	"github.com/satriahrh/alihbahasa/domain/repositories"
)

var _ repositories.SpeechToText = &stt.GoogleSpeechToText{}
var _ repositories.SpeechToText = &stt.MockSpeechToText{}
