package handlers

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/folio/folio/pkg/api/middleware"
	"github.com/folio/folio/pkg/api/models"
	"github.com/folio/folio/pkg/api/response"
	"github.com/folio/folio/pkg/auth"
	"github.com/folio/folio/pkg/logger"
)

// Authenticator checks credentials and issues tokens.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*auth.LoginResult, error)
}

// Throttle limits attempts per client.
type Throttle interface {
	Allow(clientID string) (bool, time.Duration)
}

// AuthHandler serves /login.
type AuthHandler struct {
	auth      Authenticator
	throttle  Throttle
	validator *validator.Validate
	logger    logger.Logger
}

// NewAuthHandler creates a login handler. A nil throttle disables throttling.
func NewAuthHandler(a Authenticator, throttle Throttle, log logger.Logger) *AuthHandler {
	return &AuthHandler{auth: a, throttle: throttle, validator: newValidator(), logger: log}
}

// Login handles POST /login
// @Summary Log in as the site admin
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Admin credentials"
// @Success 200 {object} auth.LoginResult
// @Failure 401 {object} response.ErrorResponse "Invalid password"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Failure 429 {object} response.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.throttle != nil {
		if ok, wait := h.throttle.Allow(middleware.GetClientIP(ctx)); !ok {
			secs := int(math.Ceil(wait.Seconds()))
			if secs < 1 {
				secs = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			response.Error(w, http.StatusTooManyRequests, response.ErrCodeRateLimited,
				"Too many login attempts. Please try again later.", getRequestID(ctx))
			return
		}
	}

	var req models.LoginRequest
	if !bind(w, r, h.validator, h.logger, &req) {
		return
	}

	res, err := h.auth.Login(ctx, strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		writeError(w, r, h.logger, "login failed", err)
		return
	}

	h.logger.InfoContext(ctx, "admin logged in", "email", res.Email)
	response.JSON(w, http.StatusOK, res)
}
