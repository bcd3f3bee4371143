package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/alihbahasa/domain/repositories"
	"github.com/satriahrh/alihbahasa/internal/auth"
	"github.com/satriahrh/alihbahasa/usecase"
	"github.com/satriahrh/alihbahasa/web"
)

// ServiceName is reported by the health check
const ServiceName = "alihbahasa"

// InitRoutes initializes all routes. When issuer is nil the translation
// routes are public.
func InitRoutes(e *echo.Echo, h *Handler, issuer *auth.TokenIssuer, logger *zap.Logger) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{
			Status:  "ok",
			Service: ServiceName,
		})
	})

	// Pages
	e.GET("/", page(web.HomePage, web.Page{Title: "Home - Translator App"}))
	e.GET("/image_text_translator", page(web.ImagePage, web.Page{
		Title:   "Image Translator",
		Targets: web.TargetOptions(usecase.DefaultTargets),
	}))
	e.GET("/audio_text_translator", page(web.AudioPage, web.Page{
		Title:   "Audio Translator",
		Accept:  web.AcceptAudio(repositories.SupportedAudioExtensions()),
		Sources: web.SourceLanguages,
		Targets: web.TargetOptions(usecase.DefaultTargets),
	}))
	e.GET("/video_text_translator", page(web.VideoPage, web.Page{Title: "Video Translator"}))

	// Translation APIs
	var middlewares []echo.MiddlewareFunc
	if issuer != nil {
		middlewares = append(middlewares, RequireToken(issuer, logger))
	}
	e.POST("/upload", h.UploadImage, middlewares...)
	e.POST("/translate", h.TranslateText, middlewares...)
	e.POST("/upload-audio", h.UploadAudio, middlewares...)
	e.POST("/upload-video", h.UploadVideo, middlewares...)

	logger.Info("Routes registered",
		zap.Bool("auth", issuer != nil),
		zap.String("audio_formats", strings.Join(repositories.SupportedAudioExtensions(), ",")))
}

func page(name string, data web.Page) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, name, data)
	}
}
