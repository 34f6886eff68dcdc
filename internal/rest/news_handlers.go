package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// News handles GET /api/news
// @Summary List news articles
// @Description Retrieves articles sorted by creation time descending. Pass published=true to exclude drafts
// @Tags news
// @Produce json
// @Param published query bool false "Only published articles"
// @Success 200 {array} rest.News
// @Failure 500 {object} map[string]string
// @Router /api/news [get]
func (h *Handler) News(c echo.Context) error {
	publishedOnly := c.QueryParam("published") == "true"

	articles, err := h.uc.News(c.Request().Context(), publishedOnly)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, Map(articles, NewNews))
}

// NewsByID handles GET /api/news/:id
// @Summary Get a news article by ID
// @Tags news
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} rest.News
// @Failure 404,500 {object} map[string]string
// @Router /api/news/{id} [get]
func (h *Handler) NewsByID(c echo.Context) error {
	article, err := h.uc.NewsByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, err.Error())
	}
	if article == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}

	return c.JSON(http.StatusOK, NewNews(*article))
}

// NewsBySlug handles GET /api/news/slug/:slug
// @Summary Get a news article by slug
// @Tags news
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} rest.News
// @Failure 404,500 {object} map[string]string
// @Router /api/news/slug/{slug} [get]
func (h *Handler) NewsBySlug(c echo.Context) error {
	article, err := h.uc.NewsBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, err.Error())
	}
	if article == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}

	return c.JSON(http.StatusOK, NewNews(*article))
}

// CreateNews handles POST /api/news
// @Summary Create a news article
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.NewsBody true "Article fields"
// @Success 200 {object} rest.News
// @Failure 400,401,500 {object} map[string]string
// @Router /api/news [post]
func (h *Handler) CreateNews(c echo.Context) error {
	var body NewsBody
	if _, err := decodeBody(c, &body); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	created, err := h.uc.CreateNews(c.Request().Context(), body.toDB(""))
	if err != nil {
		return h.writeManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewNews(*created))
}

// UpdateNews handles PUT /api/news/:id
// @Summary Update a news article
// @Description Partial update: absent fields keep their values, explicit nulls clear optional fields
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Param request body rest.NewsBody true "Changed fields"
// @Success 200 {object} rest.News
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/news/{id} [put]
func (h *Handler) UpdateNews(c echo.Context) error {
	var body NewsBody
	raw, err := decodeBody(c, &body)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.uc.UpdateNews(c.Request().Context(), body.toDB(c.Param("id")), presentColumns(raw, newsColumns))
	if err != nil {
		return h.writeManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewNews(*updated))
}

// DeleteNews handles DELETE /api/news/:id
// @Summary Delete a news article
// @Description Idempotent; deleting an absent ID still succeeds. Referenced images are not removed from storage
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} map[string]bool
// @Failure 401,500 {object} map[string]string
// @Router /api/news/{id} [delete]
func (h *Handler) DeleteNews(c echo.Context) error {
	if err := h.uc.DeleteNews(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
