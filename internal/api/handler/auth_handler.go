package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopcraft/backoffice/internal/api/metrics"
	"github.com/shopcraft/backoffice/internal/core/domain"
	"github.com/shopcraft/backoffice/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// userSummary is the identity shape returned by login and register. The
// credential hash never leaves the service layer.
type userSummary struct {
	UUID  string `json:"uuid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type authResponse struct {
	User         userSummary `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}

func summarize(u *domain.User) userSummary {
	return userSummary{UUID: u.UUID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Login authenticates a user and returns an access/refresh token pair.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		case domain.ErrAccountInactive:
			metrics.LoginsTotal.WithLabelValues("inactive").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return respond(c, http.StatusOK, authResponse{
		User:         summarize(result.User),
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
	}, "Login successful")
}

// Register creates a customer account and logs it in.
//
// @Summary      Register a new customer account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if err == domain.ErrEmailTaken {
			metrics.RegistrationsTotal.WithLabelValues("email_taken").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return respond(c, http.StatusCreated, authResponse{
		User:         summarize(result.User),
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
	}, "Registration successful")
}

// Refresh rotates a refresh token: the supplied token is consumed and a new
// pair is issued.
//
// @Summary      Rotate a refresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  domain.TokenPair
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/refresh-token [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	tokens, err := h.authService.Rotate(c.Request().Context(), req.RefreshToken)
	if err != nil {
		metrics.TokenRotationsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	metrics.TokenRotationsTotal.WithLabelValues("success").Inc()
	return respond(c, http.StatusOK, tokens, "Token refreshed successfully")
}

// Logout revokes the supplied refresh session. Always succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  false  "Refresh token"
// @Success      200   {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshRequest
	_ = c.Bind(&req)

	_ = h.authService.Logout(c.Request().Context(), req.RefreshToken)
	return respond(c, http.StatusOK, nil, "Logout successful")
}

// Me returns the authenticated identity.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}

	current, err := h.authService.CurrentUser(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]any{"user": current}, "")
}
