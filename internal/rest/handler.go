package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oilquip/site-api/config"
	"github.com/oilquip/site-api/internal/cms"
)

// Uploader is the object-storage surface the upload handler needs.
// Implemented by storage.MinIO; tests substitute a memory fake.
type Uploader interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	PublicURL(key string) string
}

type Handler struct {
	uc       *cms.Manager
	uploader Uploader
	authCfg  config.Auth
	log      *slog.Logger
}

func NewHandler(uc *cms.Manager, uploader Uploader, authCfg config.Auth, log *slog.Logger) *Handler {
	return &Handler{
		uc:       uc,
		uploader: uploader,
		authCfg:  authCfg,
		log:      log,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// writeManagerError maps the cms error taxonomy onto the HTTP contract:
// validation failures are 400, missing records 404, anything else is a 500
// carrying the backend's message.
func (h *Handler) writeManagerError(c echo.Context, err error) error {
	var vErr *cms.ValidationError
	switch {
	case errors.As(err, &vErr):
		return h.handleError(c, err, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, cms.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		return h.handleError(c, err, http.StatusInternalServerError, err.Error())
	}
}
