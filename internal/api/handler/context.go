package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/altfolio/portfolio-api/internal/core/domain"
)

// ctxActor reconstructs the acting user from the auth claims injected by the
// Auth middleware and performs a fast-fail check before any service call:
// both the subject id and the role must be present — their absence means the
// middleware did not run or the token is structurally unusable.
func ctxActor(c echo.Context) (*domain.User, error) {
	id, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if id == "" || role == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get("email").(string)
	return &domain.User{ID: id, Email: email, Role: role, IsActive: true}, nil
}
