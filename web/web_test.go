package web

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderer_AllPages(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	page := Page{
		Title:   "Audio Translator",
		Accept:  AcceptAudio([]string{"mp3", "wav"}),
		Sources: SourceLanguages,
		Targets: TargetOptions([]string{"en", "hi", "te"}),
	}

	tests := []struct {
		name string
		want string
	}{
		{HomePage, `href="/image_text_translator"`},
		{ImagePage, `fetch('/upload'`},
		{AudioPage, `<option value="mr-IN">Marathi</option>`},
		{VideoPage, `action="/upload-video"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := renderer.Render(&buf, tt.name, page, nil); err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			out := buf.String()
			if !strings.Contains(out, "<title>Audio Translator</title>") {
				t.Error("Expected page title in output")
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("Expected output to contain %q", tt.want)
			}
		})
	}
}

func TestRenderer_AudioAccept(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	var buf bytes.Buffer
	page := Page{Title: "Audio", Accept: AcceptAudio([]string{"mp3", "wav", "flac"})}
	if err := renderer.Render(&buf, AudioPage, page, nil); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), `accept=".mp3,.wav,.flac"`) {
		t.Error("Expected accept attribute listing supported extensions")
	}
}

func TestTargetOptions(t *testing.T) {
	options := TargetOptions([]string{"en", "fr"})

	if len(options) != 2 {
		t.Fatalf("Expected 2 options, got %d", len(options))
	}
	if !options[0].Selected || options[1].Selected {
		t.Error("Expected only the first option to be selected")
	}
	if options[0].Name != "English" {
		t.Errorf("Expected English, got %s", options[0].Name)
	}
	if options[1].Name != "fr" {
		t.Errorf("Expected unknown code to fall back to itself, got %s", options[1].Name)
	}
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, "missing.html", Page{}, nil); err == nil {
		t.Error("Expected error for unknown template")
	}
}
