package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/rail-booking/internal/service"
)

// AuthHandler bundles dependencies for the registration and login
// endpoints.  Rejected credentials and duplicate emails are ordinary
// outcomes: they answer 200 with success=false.
type AuthHandler struct {
	Auth *service.AuthService
	Log  *zap.Logger
}

func NewAuthHandler(a *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{Auth: a, Log: log}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	err := h.Auth.Register(ctx, req.Name, req.Email, req.Password)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Registration successful"})
	case errors.Is(err, service.ErrMissingFields):
		return fail(c, http.StatusBadRequest, "Missing registration fields")
	case errors.Is(err, service.ErrDuplicateEmail):
		return fail(c, http.StatusOK, "Email already exists")
	default:
		return internalError(c, h.Log, "Could not register user", err)
	}
}

// Login handles POST /login and returns the user's id, name and email.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Auth.Login(ctx, req.Email, req.Password)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"user":    userView{ID: u.ID, Name: u.Name, Email: u.Email},
		})
	case errors.Is(err, service.ErrMissingFields):
		return fail(c, http.StatusBadRequest, "Missing login fields")
	case errors.Is(err, service.ErrInvalidCredentials):
		return fail(c, http.StatusOK, "Invalid email or password")
	default:
		return internalError(c, h.Log, "Could not login", err)
	}
}
