package entities

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// MediaKind identifies which upload endpoint received a file
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindAudio MediaKind = "audio"
	MediaKindVideo MediaKind = "video"
)

// Upload is a file received in a single request. It lives on disk only until
// Cleanup is called at the end of that request.
type Upload struct {
	// Filename is the sanitized client filename
	Filename string `json:"filename"`
	// Path is where the bytes were written
	Path      string    `json:"path"`
	Extension string    `json:"extension"`
	Kind      MediaKind `json:"kind"`
	Size      int64     `json:"size"`
	// SourceLanguage is the caller-declared language tag (audio only)
	SourceLanguage string `json:"source_language,omitempty"`
}

// ExtensionOf returns the lowercase text after the final dot, or "" if the name has none.
func ExtensionOf(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

// ReadAll reads the stored upload back from disk
func (u *Upload) ReadAll() ([]byte, error) {
	data, err := os.ReadFile(u.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload %s: %w", u.Filename, err)
	}
	return data, nil
}

// Cleanup removes the stored file. Removing an already-removed file is not an error.
func (u *Upload) Cleanup() error {
	if u == nil || u.Path == "" {
		return nil
	}
	if err := os.Remove(u.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove upload %s: %w", u.Path, err)
	}
	return nil
}

func (u *Upload) Validate() error {
	if u.Filename == "" {
		return errors.New("filename is required")
	}
	if u.Path == "" {
		return errors.New("path is required")
	}
	switch u.Kind {
	case MediaKindImage, MediaKindAudio, MediaKindVideo:
	default:
		return fmt.Errorf("unknown media kind %q", u.Kind)
	}
	return nil
}
