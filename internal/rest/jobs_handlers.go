package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Jobs handles GET /api/careers
// @Summary List job postings
// @Description Retrieves postings sorted by creation time descending. Pass published=true to exclude drafts
// @Tags careers
// @Produce json
// @Param published query bool false "Only published postings"
// @Success 200 {array} rest.Job
// @Failure 500 {object} map[string]string
// @Router /api/careers [get]
func (h *Handler) Jobs(c echo.Context) error {
	publishedOnly := c.QueryParam("published") == "true"

	jobs, err := h.uc.Jobs(c.Request().Context(), publishedOnly)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, Map(jobs, NewJob))
}

// JobByID handles GET /api/careers/:id
// @Summary Get a job posting by ID
// @Tags careers
// @Produce json
// @Param id path string true "Posting ID"
// @Success 200 {object} rest.Job
// @Failure 404,500 {object} map[string]string
// @Router /api/careers/{id} [get]
func (h *Handler) JobByID(c echo.Context) error {
	job, err := h.uc.JobByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, err.Error())
	}
	if job == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}

	return c.JSON(http.StatusOK, NewJob(*job))
}

// JobBySlug handles GET /api/careers/slug/:slug
// @Summary Get a job posting by slug
// @Tags careers
// @Produce json
// @Param slug path string true "Posting slug"
// @Success 200 {object} rest.Job
// @Failure 404,500 {object} map[string]string
// @Router /api/careers/slug/{slug} [get]
func (h *Handler) JobBySlug(c echo.Context) error {
	job, err := h.uc.JobBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, err.Error())
	}
	if job == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}

	return c.JSON(http.StatusOK, NewJob(*job))
}

// CreateJob handles POST /api/careers
// @Summary Create a job posting
// @Tags careers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.JobBody true "Posting fields"
// @Success 200 {object} rest.Job
// @Failure 400,401,500 {object} map[string]string
// @Router /api/careers [post]
func (h *Handler) CreateJob(c echo.Context) error {
	var body JobBody
	if _, err := decodeBody(c, &body); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	created, err := h.uc.CreateJob(c.Request().Context(), body.toDB(""))
	if err != nil {
		return h.writeManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewJob(*created))
}

// UpdateJob handles PUT /api/careers/:id
// @Summary Update a job posting
// @Description Partial update: absent fields keep their values, explicit nulls clear optional fields
// @Tags careers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Posting ID"
// @Param request body rest.JobBody true "Changed fields"
// @Success 200 {object} rest.Job
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/careers/{id} [put]
func (h *Handler) UpdateJob(c echo.Context) error {
	var body JobBody
	raw, err := decodeBody(c, &body)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.uc.UpdateJob(c.Request().Context(), body.toDB(c.Param("id")), presentColumns(raw, jobColumns))
	if err != nil {
		return h.writeManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewJob(*updated))
}

// DeleteJob handles DELETE /api/careers/:id
// @Summary Delete a job posting
// @Tags careers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Posting ID"
// @Success 200 {object} map[string]bool
// @Failure 401,500 {object} map[string]string
// @Router /api/careers/{id} [delete]
func (h *Handler) DeleteJob(c echo.Context) error {
	if err := h.uc.DeleteJob(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
