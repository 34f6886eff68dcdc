package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Resources handles GET /api/resources
// @Summary List downloadable resources
// @Description Retrieves resources with their joined category, ordered by display_order. Supports published and category-slug filters
// @Tags resources
// @Produce json
// @Param published query bool false "Only published resources"
// @Param category query string false "Category slug filter"
// @Success 200 {array} rest.Resource
// @Failure 500 {object} map[string]string
// @Router /api/resources [get]
func (h *Handler) Resources(c echo.Context) error {
	publishedOnly := c.QueryParam("published") == "true"
	categorySlug := c.QueryParam("category")

	resources, err := h.uc.Resources(c.Request().Context(), publishedOnly, categorySlug)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, Map(resources, NewResource))
}

// ResourceByID handles GET /api/resources/:id
// @Summary Get a resource by ID
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} rest.Resource
// @Failure 404,500 {object} map[string]string
// @Router /api/resources/{id} [get]
func (h *Handler) ResourceByID(c echo.Context) error {
	resource, err := h.uc.ResourceByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, err.Error())
	}
	if resource == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}

	return c.JSON(http.StatusOK, NewResource(*resource))
}

// ResourceDownload handles POST /api/resources/:id/download
// @Summary Record a resource download
// @Description Atomically increments the download counter. Best-effort: failures are logged and the response is still 200 so the actual file download is never blocked
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} map[string]bool
// @Router /api/resources/{id}/download [post]
func (h *Handler) ResourceDownload(c echo.Context) error {
	if err := h.uc.IncrementDownload(c.Request().Context(), c.Param("id")); err != nil {
		h.log.Error("failed to record download", "error", err, "id", c.Param("id"))
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// CreateResource handles POST /api/resources
// @Summary Create a resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.ResourceBody true "Resource fields"
// @Success 200 {object} rest.Resource
// @Failure 400,401,500 {object} map[string]string
// @Router /api/resources [post]
func (h *Handler) CreateResource(c echo.Context) error {
	var body ResourceBody
	if _, err := decodeBody(c, &body); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	created, err := h.uc.CreateResource(c.Request().Context(), body.toDB(""))
	if err != nil {
		return h.writeManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewResource(*created))
}

// UpdateResource handles PUT /api/resources/:id
// @Summary Update a resource
// @Description Partial update: absent fields keep their values, explicit nulls clear optional fields
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body rest.ResourceBody true "Changed fields"
// @Success 200 {object} rest.Resource
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/resources/{id} [put]
func (h *Handler) UpdateResource(c echo.Context) error {
	var body ResourceBody
	raw, err := decodeBody(c, &body)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.uc.UpdateResource(c.Request().Context(), body.toDB(c.Param("id")), presentColumns(raw, resourceColumns))
	if err != nil {
		return h.writeManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewResource(*updated))
}

// DeleteResource handles DELETE /api/resources/:id
// @Summary Delete a resource
// @Description Idempotent; the stored file is not removed from the bucket
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} map[string]bool
// @Failure 401,500 {object} map[string]string
// @Router /api/resources/{id} [delete]
func (h *Handler) DeleteResource(c echo.Context) error {
	if err := h.uc.DeleteResource(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
