package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/satriahrh/alihbahasa/domain"
)

// NewEcho creates an echo instance with the gateway middleware stack and
// the given page renderer. Request bodies above maxBytes are rejected with
// 413 before any handler runs.
func NewEcho(renderer echo.Renderer, maxBytes int64) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.HTTPErrorHandler = errorHandler(e)

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.BodyLimit(strconv.FormatInt(maxBytes, 10)))

	return e
}

// errorHandler writes errors that escape handlers, including those raised by
// routing and middleware, in the same body shape as the translation routes
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := errorBody(err)
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			e.Logger.Error(err)
		}
	}
}

// errorBody maps err to a status and ErrorResponse. Classified domain errors
// use their kind; echo errors use their own code and message.
func errorBody(err error) (int, ErrorResponse) {
	if kind := domain.KindOf(err); kind != "" {
		return domain.StatusCode(err), ErrorResponse{Error: err.Error(), Code: string(kind)}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if httpErr.Message != nil {
			message = fmt.Sprint(httpErr.Message)
		}
		return httpErr.Code, ErrorResponse{Error: message, Code: statusCode(httpErr.Code)}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Error: err.Error(),
		Code:  statusCode(http.StatusInternalServerError),
	}
}

func statusCode(status int) string {
	return strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "_")
}
