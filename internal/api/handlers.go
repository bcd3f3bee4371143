package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/alihbahasa/domain"
	"github.com/satriahrh/alihbahasa/domain/entities"
	"github.com/satriahrh/alihbahasa/internal/intake"
	"github.com/satriahrh/alihbahasa/usecase"
)

// Form fields of the translate route
const (
	TextField     = "text"
	LanguageField = "language"
)

// Handler serves the translation routes
type Handler struct {
	intake      *intake.Intake
	media       *usecase.MediaService
	translation *usecase.TranslationService
	logger      *zap.Logger
}

// NewHandler creates a new handler
func NewHandler(in *intake.Intake, media *usecase.MediaService, translation *usecase.TranslationService, logger *zap.Logger) *Handler {
	return &Handler{
		intake:      in,
		media:       media,
		translation: translation,
		logger:      logger,
	}
}

// UploadImage extracts the text of an uploaded image and translates it to English
func (h *Handler) UploadImage(c echo.Context) error {
	upload, err := h.intake.Receive(c, entities.MediaKindImage)
	if err != nil {
		return h.respondError(c, err)
	}
	defer h.cleanup(upload)

	translated, err := h.media.TranslateImage(c.Request().Context(), upload)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, TranslationResponse{TranslatedText: translated})
}

// UploadAudio transcribes an uploaded clip and translates the transcript
// into every default target
func (h *Handler) UploadAudio(c echo.Context) error {
	upload, err := h.intake.Receive(c, entities.MediaKindAudio)
	if err != nil {
		return h.respondError(c, err)
	}
	defer h.cleanup(upload)

	translations, err := h.media.TranslateAudio(c.Request().Context(), upload)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, TranslationResponse{TranslatedText: translations})
}

// UploadVideo is not implemented; it never reads the body
func (h *Handler) UploadVideo(c echo.Context) error {
	return h.respondError(c, domain.ErrVideoNotSupported)
}

// TranslateText relays submitted text to the translator
func (h *Handler) TranslateText(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return h.respondError(c, domain.MissingField(TextField))
	}

	texts, ok := form[TextField]
	if !ok || len(texts) == 0 {
		return h.respondError(c, domain.MissingField(TextField))
	}
	target := form.Get(LanguageField)
	if target == "" {
		return h.respondError(c, domain.MissingField(LanguageField))
	}

	translated, err := h.translation.Translate(c.Request().Context(), texts[0], target)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, TranslationResponse{TranslatedText: translated})
}

func (h *Handler) cleanup(upload *entities.Upload) {
	if err := upload.Cleanup(); err != nil {
		h.logger.Warn("Failed to remove upload",
			zap.String("path", upload.Path),
			zap.Error(err))
	}
}

// respondError writes err as the JSON error body with its mapped status.
// Errors raised by echo itself keep their own status.
func (h *Handler) respondError(c echo.Context, err error) error {
	status, body := errorBody(err)

	fields := []zap.Field{
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.String("kind", body.Code),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", fields...)
	} else {
		h.logger.Warn("Request rejected", fields...)
	}

	return c.JSON(status, body)
}
