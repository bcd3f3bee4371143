package api

import "time"

// TranslationResponse is the success body of every translation route. The
// payload is a string for image and text requests and a language keyed map
// for audio requests.
type TranslationResponse struct {
	TranslatedText interface{} `json:"translated_text"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// TokenResponse describes a minted access token
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	ClientID  string    `json:"client_id"`
}
