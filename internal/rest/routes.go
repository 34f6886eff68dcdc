package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"

	_ "github.com/oilquip/site-api/docs"
)

// RegisterRoutes registers all routes for the handler
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(h.loggingMiddleware)

	e.GET("/health", h.Health)
	e.GET("/swagger/doc.json", h.SwaggerSpec)

	api := e.Group("/api")

	api.POST("/auth/login", h.Login)
	api.GET("/admin/stats", h.Stats, h.requireAuth)
	api.POST("/upload", h.Upload, h.requireAuth)

	news := api.Group("/news")
	news.GET("", h.News)
	news.GET("/:id", h.NewsByID)
	news.GET("/slug/:slug", h.NewsBySlug)
	news.POST("", h.CreateNews, h.requireAuth)
	news.PUT("/:id", h.UpdateNews, h.requireAuth)
	news.DELETE("/:id", h.DeleteNews, h.requireAuth)

	careers := api.Group("/careers")
	careers.GET("", h.Jobs)
	careers.GET("/:id", h.JobByID)
	careers.GET("/slug/:slug", h.JobBySlug)
	careers.POST("", h.CreateJob, h.requireAuth)
	careers.PUT("/:id", h.UpdateJob, h.requireAuth)
	careers.DELETE("/:id", h.DeleteJob, h.requireAuth)

	resources := api.Group("/resources")
	resources.GET("", h.Resources)
	resources.GET("/:id", h.ResourceByID)
	resources.POST("/:id/download", h.ResourceDownload)
	resources.POST("", h.CreateResource, h.requireAuth)
	resources.PUT("/:id", h.UpdateResource, h.requireAuth)
	resources.DELETE("/:id", h.DeleteResource, h.requireAuth)

	categories := api.Group("/categories")
	categories.GET("", h.Categories)
	categories.POST("", h.CreateCategory, h.requireAuth)
	categories.PUT("/:id", h.UpdateCategory, h.requireAuth)
	categories.DELETE("/:id", h.DeleteCategory, h.requireAuth)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SwaggerSpec serves the generated OpenAPI document.
func (h *Handler) SwaggerSpec(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "swagger spec unavailable")
	}
	return c.Blob(http.StatusOK, "application/json", []byte(doc))
}

func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.Request().RemoteAddr,
		)

		return nil
	}
}
