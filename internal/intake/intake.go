package intake

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/alihbahasa/domain"
	"github.com/satriahrh/alihbahasa/domain/entities"
	"github.com/satriahrh/alihbahasa/domain/repositories"
)

const (
	// FileField is the multipart field carrying the upload
	FileField = "file"
	// SourceLanguageField carries the spoken language of an audio upload
	SourceLanguageField = "source_language"

	fallbackFilename = "upload"
)

// Intake validates multipart uploads and stores them under a directory for
// the duration of a request
type Intake struct {
	dir    string
	logger *zap.Logger
}

// New creates the upload directory if needed
func New(dir string, logger *zap.Logger) (*Intake, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &Intake{dir: dir, logger: logger}, nil
}

// Dir returns the upload directory
func (in *Intake) Dir() string {
	return in.dir
}

// Receive validates the request's upload for the given kind and writes it to
// disk. The caller owns the returned upload and must call Cleanup on it.
func (in *Intake) Receive(c echo.Context, kind entities.MediaKind) (*entities.Upload, error) {
	header, err := c.FormFile(FileField)
	if err != nil {
		return nil, in.missingFileError(c, err)
	}
	if header.Filename == "" {
		return nil, domain.ErrNoSelectedFile
	}

	var sourceLanguage string
	if kind == entities.MediaKindAudio {
		sourceLanguage = c.FormValue(SourceLanguageField)
		if sourceLanguage == "" {
			return nil, domain.ErrMissingLanguage
		}
	}

	filename := SecureFilename(header.Filename)
	if filename == "" {
		filename = fallbackFilename
	}
	extension := entities.ExtensionOf(filename)

	if kind == entities.MediaKindAudio {
		if _, ok := repositories.EncodingForExtension(extension); !ok {
			in.logger.Warn("Rejected audio upload",
				zap.String("filename", filename),
				zap.String("extension", extension))
			return nil, domain.ErrUnsupportedFormat
		}
	}

	path := filepath.Join(in.dir, requestKey(c)+"-"+filename)
	size, err := store(header, path)
	if err != nil {
		return nil, err
	}

	upload := &entities.Upload{
		Filename:       filename,
		Path:           path,
		Extension:      extension,
		Kind:           kind,
		Size:           size,
		SourceLanguage: sourceLanguage,
	}
	if err := upload.Validate(); err != nil {
		upload.Cleanup()
		return nil, fmt.Errorf("invalid upload: %w", err)
	}

	in.logger.Info("Upload received",
		zap.String("kind", string(kind)),
		zap.String("filename", filename),
		zap.Int64("size", size))

	return upload, nil
}

// missingFileError tells an absent file field apart from one submitted with
// an empty filename, which the multipart reader files under values instead.
// Errors raised by middleware while the body is read, such as the body limit,
// are returned unchanged so they keep their status. Any other parse failure
// means the request carried no usable file part.
func (in *Intake) missingFileError(c echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	if !errors.Is(err, http.ErrMissingFile) {
		in.logger.Debug("Unreadable multipart form", zap.Error(err))
	}
	if form := c.Request().MultipartForm; form != nil {
		if _, ok := form.Value[FileField]; ok {
			return domain.ErrNoSelectedFile
		}
	}
	return domain.ErrNoFilePart
}

func requestKey(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	return uuid.NewString()
}

func store(header *multipart.FileHeader, path string) (int64, error) {
	src, err := header.Open()
	if err != nil {
		return 0, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}

	size, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return size, nil
}
