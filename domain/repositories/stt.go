package repositories

import "context"

// SpeechToText abstracts speech recognition services
type SpeechToText interface {
	// Recognize sends the whole clip in one request and returns the service's
	// results in order, each with its alternatives ranked best first.
	Recognize(ctx context.Context, audioData []byte, config AudioConfig) ([]SpeechResult, error)
}

// AudioEncoding names the audio codec declared to the recognizer
type AudioEncoding string

const (
	EncodingMP3      AudioEncoding = "MP3"
	EncodingLinear16 AudioEncoding = "LINEAR16"
	EncodingFLAC     AudioEncoding = "FLAC"
)

// AudioConfig represents audio configuration for speech recognition
type AudioConfig struct {
	SampleRate int           `json:"sample_rate"`
	Encoding   AudioEncoding `json:"encoding"`
	Language   string        `json:"language"`
}

// SpeechResult is one recognized segment of the clip
type SpeechResult struct {
	Alternatives []SpeechAlternative `json:"alternatives"`
}

// SpeechAlternative is one candidate transcript for a segment
type SpeechAlternative struct {
	Transcript string  `json:"transcript"`
	Confidence float32 `json:"confidence"`
}

var extensionEncodings = map[string]AudioEncoding{
	"mp3":  EncodingMP3,
	"wav":  EncodingLinear16,
	"flac": EncodingFLAC,
}

// EncodingForExtension maps a lowercase file extension to its audio encoding
func EncodingForExtension(ext string) (AudioEncoding, bool) {
	encoding, ok := extensionEncodings[ext]
	return encoding, ok
}

// SupportedAudioExtensions lists the accepted audio extensions
func SupportedAudioExtensions() []string {
	return []string{"mp3", "wav", "flac"}
}
