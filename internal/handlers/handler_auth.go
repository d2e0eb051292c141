package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
	"github.com/zein-l/Currency-exchange-backend/internal/dto"
	"github.com/zein-l/Currency-exchange-backend/internal/middleware"
)

// authHandler handles authentication related requests.
type authHandler struct {
	userService   portssvc.UserSvcFacade
	tokenService  portssvc.TokenSvcFacade
	googleService portssvc.GoogleAuthSvcFacade
}

func newAuthHandler(services *portssvc.ServiceContainer) *authHandler {
	return &authHandler{
		userService:   services.User,
		tokenService:  services.Token,
		googleService: services.GoogleAuth,
	}
}

// registerAuthRoutes sets up the public routes for authentication.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services)

	// Credential endpoints are brute-forceable, rate limit per IP.
	rate := limiter.Rate{Period: time.Minute, Limit: 5}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/google/exchange-code", limitMiddleware, h.exchangeGoogleCode)
	}
}

// register godoc
// @Summary Register new user
// @Description Creates a new local account and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register user")
		return
	}

	h.respondWithToken(c, logger, user, http.StatusCreated)
}

// login godoc
// @Summary User login
// @Description Authenticates a user with email and password and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Always 401 for credential failures, never 403/404.
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		return
	}

	h.respondWithToken(c, logger, user, http.StatusOK)
}

// exchangeGoogleCode godoc
// @Summary Google sign-in
// @Description Exchanges a Google authorization code for a local JWT token, creating the account on first sight.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *authHandler) exchangeGoogleCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	info, err := h.googleService.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to exchange authorization code")
		return
	}

	user, err := h.userService.FindOrCreateByGoogleID(c.Request.Context(), info.Subject, info.Email, info.Name)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to sign in with external identity")
		return
	}

	h.respondWithToken(c, logger, user, http.StatusOK)
}

func (h *authHandler) respondWithToken(c *gin.Context, logger *slog.Logger, user *domain.User, status int) {
	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(status, dto.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	})
}
