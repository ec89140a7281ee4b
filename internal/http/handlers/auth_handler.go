// Authentication endpoints.
//
//   - POST /auth/login   (exchange credentials for a bearer token)
//   - POST /auth/logout  (revoke the current session)
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/parkview/go-grievance-backend/internal/domain"
	"github.com/parkview/go-grievance-backend/internal/i18n"
	"github.com/parkview/go-grievance-backend/internal/services"
)

// LoginRequest is the JSON payload for a login attempt. All three factors
// are required; the area code is the per-account second factor citizens
// receive during provisioning.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"resident"`
	Password string `json:"password" binding:"required" example:"password"`
	AreaCode string `json:"area_code" binding:"required" example:"1234"`
}

// LoginResponse carries the issued bearer token and the account it belongs
// to.
type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Login godoc
// @ID          login
// @Summary     Log in
// @Description Exchanges username, password, and area code for a bearer token.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
//
// @Success     200  {object}  handlers.LoginResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     401  {object}  handlers.ErrorResponse  "Invalid credentials or area code"
// @Failure     403  {object}  handlers.ErrorResponse  "Account outside service region"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username, password, and area_code are required")
		return
	}

	user, err := h.authSvc.Authenticate(c.Request.Context(), req.Username, req.Password, req.AreaCode)
	if err != nil {
		l := lang(c)
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			fail(c, http.StatusUnauthorized, ErrCodeInvalidCredentials, i18n.T(l, "auth_invalid_credentials"))
		case errors.Is(err, services.ErrAreaCodeMismatch):
			fail(c, http.StatusUnauthorized, ErrCodeAreaCodeMismatch, i18n.T(l, "auth_area_code_mismatch"))
		case errors.Is(err, services.ErrRegionMismatch):
			fail(c, http.StatusForbidden, ErrCodeRegionMismatch, i18n.T(l, "auth_region_mismatch"))
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	token, _, err := h.sessions.Issue(*user)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not establish session")
		return
	}
	ok(c, http.StatusOK, LoginResponse{Token: token, User: *user})
}

// Logout godoc
// @ID          logout
// @Summary     Log out
// @Description Revokes the session behind the presented bearer token.
// @Tags        Auth
// @Produce     json
//
// @Param       Authorization  header  string  false  "Bearer token"
//
// @Success     204  {string}  string  "No Content"
// @Router      /auth/logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	auth := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		h.sessions.Revoke(strings.TrimSpace(auth[len(prefix):]))
	}
	noContent(c)
}
