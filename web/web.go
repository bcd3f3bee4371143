// Package web holds the browser pages and renders them through echo.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names accepted by Render
const (
	HomePage  = "home.html"
	ImagePage = "image.html"
	AudioPage = "audio.html"
	VideoPage = "video.html"
)

// Option is an entry of a language selector
type Option struct {
	Code     string
	Name     string
	Selected bool
}

// Page is the data every template receives
type Page struct {
	Title   string
	Accept  string
	Sources []Option
	Targets []Option
}

// Renderer implements echo.Renderer over the embedded templates
type Renderer struct {
	templates *template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render executes the named template
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// SourceLanguages are the spoken languages offered for audio uploads
var SourceLanguages = []Option{
	{Code: "en-US", Name: "English"},
	{Code: "hi-IN", Name: "Hindi"},
	{Code: "te-IN", Name: "Telugu"},
	{Code: "ta-IN", Name: "Tamil"},
	{Code: "ml-IN", Name: "Malayalam"},
	{Code: "kn-IN", Name: "Kannada"},
	{Code: "bn-IN", Name: "Bengali"},
	{Code: "gu-IN", Name: "Gujarati"},
	{Code: "mr-IN", Name: "Marathi"},
}

var targetNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"te": "Telugu",
}

// TargetOptions builds the output-language selector for the given codes,
// selecting the first one
func TargetOptions(codes []string) []Option {
	options := make([]Option, 0, len(codes))
	for i, code := range codes {
		name, ok := targetNames[code]
		if !ok {
			name = code
		}
		options = append(options, Option{Code: code, Name: name, Selected: i == 0})
	}
	return options
}

// AcceptAudio renders extensions as the accept attribute of a file input
func AcceptAudio(extensions []string) string {
	parts := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		parts = append(parts, "."+ext)
	}
	return strings.Join(parts, ",")
}
