package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unicampus/campus-portal/internal/api/metrics"
	"github.com/unicampus/campus-portal/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,pwdpolicy"`
	Role       string `json:"role" validate:"omitempty,campusrole"`
	Department string `json:"department,omitempty"`
	Year       string `json:"year,omitempty"`
	RollNumber string `json:"roll_number,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,pwdpolicy"`
}

// Register creates a new user account and signs it in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  ports.Session
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sess, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		Department: req.Department,
		Year:       req.Year,
		RollNumber: req.RollNumber,
		EmployeeID: req.EmployeeID,
	})
	metrics.AuthAttemptsTotal.WithLabelValues("register", metrics.Result(err, "ok", "failed")).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sess)
}

// Login authenticates a demo or registered account and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  ports.Session
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sess, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	metrics.AuthAttemptsTotal.WithLabelValues("login", metrics.Result(err, "ok", "failed")).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sess)
}

// Logout revokes the caller's token.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401   {object}  errorResponse
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	err = h.authService.Logout(c.Request().Context(), claims)
	metrics.AuthAttemptsTotal.WithLabelValues("logout", metrics.Result(err, "ok", "failed")).Inc()
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the session identity.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  domain.Identity
// @Failure      401   {object}  errorResponse
// @Router       /v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, who)
}

// ChangePassword replaces the caller's password. Demo accounts are read-only.
//
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "New password"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/auth/password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	who, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.authService.ChangePassword(c.Request().Context(), who, req.NewPassword)
	metrics.AuthAttemptsTotal.WithLabelValues("password", metrics.Result(err, "ok", "failed")).Inc()
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
