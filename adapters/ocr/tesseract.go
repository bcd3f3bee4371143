//go:build tesseract

package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"

	"github.com/satriahrh/alihbahasa/domain/repositories"
)

// TesseractDetector implements TextDetector with a local Tesseract install.
// It needs cgo and libtesseract, so it is only compiled with -tags tesseract.
type TesseractDetector struct {
	languages     []string
	clientFactory func() *gosseract.Client
	logger        *zap.Logger
}

// NewTesseractDetector creates a detector using the given trained-data languages (e.g. "eng", "hin")
func NewTesseractDetector(logger *zap.Logger, languages ...string) (repositories.TextDetector, error) {
	return &TesseractDetector{
		languages:     languages,
		clientFactory: gosseract.NewClient,
		logger:        logger,
	}, nil
}

// DetectText implements repositories.TextDetector. The page text is returned
// first, followed by one annotation per recognized word, mirroring the cloud
// detector's layout.
func (t *TesseractDetector) DetectText(ctx context.Context, image []byte) ([]repositories.TextAnnotation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := t.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(image); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}
	if len(t.languages) > 0 {
		if err := c.SetLanguage(t.languages...); err != nil {
			return nil, fmt.Errorf("set languages: %w", err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return nil, fmt.Errorf("recognize text: %w", err)
	}
	plain := strings.TrimSpace(text)
	if plain == "" {
		return nil, nil
	}

	annotations := []repositories.TextAnnotation{{Description: plain}}

	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		t.logger.Warn("Failed to extract word boxes", zap.Error(err))
		return annotations, nil
	}
	for _, b := range boxes {
		annotations = append(annotations, repositories.TextAnnotation{Description: b.Word})
	}

	return annotations, nil
}
