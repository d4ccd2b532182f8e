// Package handler contains the HTTP handlers for the application.
package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"board/internal/delivery/api/response"
	deliverycontext "board/internal/delivery/context"
	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.SuccessWithMessage(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// identityFrom returns the identity stored by the auth middleware.
func identityFrom(c echo.Context) (*entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("identity not found in context")
	}

	return identity, nil
}

// invalidInput logs the bind failure and answers 400 with the invalid input code.
func invalidInput(c echo.Context, logger *slog.Logger, err error, message string) error {
	logger.DebugContext(c.Request().Context(), message,
		slog.String("path", c.Path()),
		slog.Any("error", err),
	)

	return response.BindingError(c, domainerrors.ErrInvalidInput.ErrorCode(), message)
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// readUpload loads an optional multipart file. A missing file yields nil.
func readUpload(c echo.Context, field string) (*usecase.Upload, error) {
	if !isMultipart(c) {
		return nil, nil
	}

	fileHeader, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read multipart file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open multipart file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read multipart file")
	}

	return &usecase.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}
