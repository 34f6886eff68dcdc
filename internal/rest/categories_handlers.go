package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Categories handles GET /api/categories
// @Summary List resource categories
// @Description Retrieves categories ordered by display_order
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, Map(categories, NewCategory))
}

// CreateCategory handles POST /api/categories
// @Summary Create a resource category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.CategoryBody true "Category fields"
// @Success 200 {object} rest.Category
// @Failure 400,401,500 {object} map[string]string
// @Router /api/categories [post]
func (h *Handler) CreateCategory(c echo.Context) error {
	var body CategoryBody
	if _, err := decodeBody(c, &body); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	created, err := h.uc.CreateCategory(c.Request().Context(), body.toDB(""))
	if err != nil {
		return h.writeManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewCategory(*created))
}

// UpdateCategory handles PUT /api/categories/:id
// @Summary Update a resource category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param request body rest.CategoryBody true "Changed fields"
// @Success 200 {object} rest.Category
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/categories/{id} [put]
func (h *Handler) UpdateCategory(c echo.Context) error {
	var body CategoryBody
	raw, err := decodeBody(c, &body)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.uc.UpdateCategory(c.Request().Context(), body.toDB(c.Param("id")), presentColumns(raw, categoryColumns))
	if err != nil {
		return h.writeManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewCategory(*updated))
}

// DeleteCategory handles DELETE /api/categories/:id
// @Summary Delete a resource category
// @Description Resources referencing the category keep existing with a cleared category_id
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]bool
// @Failure 401,500 {object} map[string]string
// @Router /api/categories/{id} [delete]
func (h *Handler) DeleteCategory(c echo.Context) error {
	if err := h.uc.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
