package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/oilquip/site-api/internal/auth"
)

// Login handles POST /api/auth/login
// @Summary Authenticate an admin
// @Description Exchanges admin credentials for a bearer token used on all mutating endpoints
// @Tags auth
// @Accept json
// @Produce json
// @Param request body rest.LoginRequest true "Credentials"
// @Success 200 {object} rest.LoginResponse
// @Failure 400,401,500 {object} map[string]string
// @Router /api/auth/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email and password are required"})
	}

	admin, err := h.uc.AdminByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if admin == nil || !auth.CheckPassword(admin.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
	}

	token, err := auth.IssueToken(h.authCfg.Secret, admin.Email, h.authCfg.TokenTTL)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// Stats handles GET /api/admin/stats
// @Summary Dashboard counters
// @Description Returns total and published counts for news, jobs and resources
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} cms.Stats
// @Failure 401,500 {object} map[string]string
// @Router /api/admin/stats [get]
func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, stats)
}

// requireAuth rejects requests without a valid admin token. The token is
// taken from the Authorization header or, failing that, the session cookie.
func (h *Handler) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie("session"); err == nil {
				token = cookie.Value
			}
		}
		if token == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}

		email, err := auth.ParseToken(h.authCfg.Secret, token)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}

		c.Set("admin_email", email)
		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
