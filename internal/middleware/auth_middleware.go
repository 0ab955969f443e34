package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	appAuth "github.com/yigit/collegeportal/internal/app/auth"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/pkg/logger"
	"github.com/yigit/collegeportal/internal/pkg/session"
)

// identityKey is the gin context key for the authorized identity
const identityKey = "identity"

// AuthMiddleware gates routes on the session identity's role
type AuthMiddleware struct{}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{}
}

// RequireRole lets the request through only for a logged-in user of role.
// Everyone else is redirected to the login page before any handler runs.
func (m *AuthMiddleware) RequireRole(role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := session.Current(c)

		decision := appAuth.Authorize(identity, role)
		if !decision.Allowed {
			logger.Ctx(c.Request.Context()).Debug().
				Int64("userID", identity.UserID).
				Str("userType", string(identity.UserType)).
				Str("required", string(role)).
				Str("path", c.Request.URL.Path).
				Msg("Access denied, redirecting to login")
			c.Redirect(http.StatusFound, decision.RedirectTo)
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// CurrentIdentity returns the identity RequireRole authorized for this request,
// falling back to the raw session.
func CurrentIdentity(c *gin.Context) appAuth.Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(appAuth.Identity); ok {
			return identity
		}
	}
	return session.Current(c)
}
