package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	appAuth "github.com/yigit/collegeportal/internal/app/auth"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/app/services"
	"github.com/yigit/collegeportal/internal/middleware"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	"github.com/yigit/collegeportal/internal/pkg/logger"
	"github.com/yigit/collegeportal/internal/pkg/session"
)

// AuthController handles login and logout
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Index sends a logged-in user to their dashboard and renders the login
// page for everyone else
func (c *AuthController) Index(ctx *gin.Context) {
	identity := session.Current(ctx)
	if identity.Authenticated() && identity.UserType.Valid() {
		ctx.Redirect(http.StatusFound, appAuth.LandingPath(identity.UserType))
		return
	}

	ctx.HTML(http.StatusOK, "login.html", dto.LoginView{Flash: flashFrom(ctx)})
}

// Login checks the posted credentials and starts a session
func (c *AuthController) Login(ctx *gin.Context) {
	var form dto.LoginForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		c.renderLoginError(ctx, "Invalid credentials")
		return
	}

	identity, err := c.authService.Login(ctx.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			logger.Ctx(ctx.Request.Context()).Info().Str("username", form.Username).Msg("Failed login attempt")
			c.renderLoginError(ctx, "Invalid credentials")
			return
		}
		logger.Ctx(ctx.Request.Context()).Error().Err(err).Msg("Login failed")
		c.renderLoginError(ctx, "Login failed. Please try again.")
		return
	}

	if err := session.Establish(ctx, *identity); err != nil {
		logger.Ctx(ctx.Request.Context()).Error().Err(err).Msg("Error saving session")
		c.renderLoginError(ctx, "Login failed. Please try again.")
		return
	}

	logger.Ctx(ctx.Request.Context()).Info().
		Int64("userID", identity.UserID).
		Str("userType", string(identity.UserType)).
		Msg("User logged in")
	ctx.Redirect(http.StatusFound, appAuth.LandingPath(identity.UserType))
}

// Logout ends the session
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := session.Destroy(ctx); err != nil {
		logger.Ctx(ctx.Request.Context()).Warn().Err(err).Msg("Error destroying session")
	}
	ctx.Redirect(http.StatusFound, appAuth.LoginPath)
}

func (c *AuthController) renderLoginError(ctx *gin.Context, message string) {
	ctx.HTML(http.StatusOK, "login.html", dto.LoginView{Flash: dto.Flash{Error: message}})
}
