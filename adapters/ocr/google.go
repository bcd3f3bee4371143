package ocr

import (
	"context"
	"fmt"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/satriahrh/alihbahasa/domain/repositories"
)

// GoogleVision implements TextDetector using the Cloud Vision TEXT_DETECTION feature
type GoogleVision struct {
	client *vision.ImageAnnotatorClient
	logger *zap.Logger
}

// NewGoogleVision creates an image annotator client
func NewGoogleVision(ctx context.Context, logger *zap.Logger, opts ...option.ClientOption) (*GoogleVision, error) {
	client, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}

	return &GoogleVision{
		client: client,
		logger: logger,
	}, nil
}

// DetectText implements repositories.TextDetector
func (g *GoogleVision) DetectText(ctx context.Context, image []byte) ([]repositories.TextAnnotation, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image:    &visionpb.Image{Content: image},
				Features: []*visionpb.Feature{{Type: visionpb.Feature_TEXT_DETECTION}},
			},
		},
	}

	g.logger.Debug("Sending text detection request", zap.Int("imageSize", len(image)))

	resp, err := g.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("text detection failed: %w", err)
	}

	if len(resp.GetResponses()) == 0 {
		return nil, nil
	}

	annotated := resp.GetResponses()[0]
	if status := annotated.GetError(); status != nil && status.GetCode() != 0 {
		return nil, fmt.Errorf("text detection failed: %s (code %d)", status.GetMessage(), status.GetCode())
	}

	annotations := make([]repositories.TextAnnotation, 0, len(annotated.GetTextAnnotations()))
	for _, a := range annotated.GetTextAnnotations() {
		annotations = append(annotations, repositories.TextAnnotation{
			Description: a.GetDescription(),
			Locale:      a.GetLocale(),
		})
	}

	return annotations, nil
}

// Close releases the underlying gRPC connection
func (g *GoogleVision) Close() error {
	return g.client.Close()
}
