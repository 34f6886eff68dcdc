package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oilquip/site-api/internal/storage"
)

// Upload handles POST /api/upload
// @Summary Upload a file to the resources bucket
// @Description Accepts a multipart form with a "file" field and an optional "folder" field ("thumbnails" places the object under the thumbnails/ prefix). Returns the object's public URL and metadata
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to store"
// @Param folder formData string false "Optional sub-folder (thumbnails)"
// @Success 200 {object} rest.UploadResponse
// @Failure 400,401,500 {object} map[string]string
// @Router /api/upload [post]
func (h *Handler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No file provided"})
	}

	folder := c.FormValue("folder")
	if folder != "" && folder != storage.ThumbnailFolder {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid folder"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, err.Error())
	}
	defer src.Close()

	key := storage.ObjectKey(fileHeader.Filename, folder)
	contentType := fileHeader.Header.Get("Content-Type")

	if err := h.uploader.Upload(c.Request().Context(), key, src, fileHeader.Size, contentType); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, UploadResponse{
		URL:  h.uploader.PublicURL(key),
		Path: key,
		Size: fileHeader.Size,
		Type: contentType,
	})
}
