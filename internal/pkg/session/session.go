// Package session keeps the logged-in identity in a gin-contrib/sessions
// store under the keys userId, userType and username.
package session

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	appAuth "github.com/yigit/collegeportal/internal/app/auth"
	"github.com/yigit/collegeportal/internal/app/models"
)

const (
	keyUserID   = "userId"
	keyUserType = "userType"
	keyUsername = "username"
)

// Options configures the session store
type Options struct {
	Name   string
	Secret string
	// Store is "cookie" or "memory"
	Store  string
	MaxAge int
	Secure bool
}

// NewStore builds the configured store. Cookie stores keep the session in a
// signed cookie; memory stores keep it in process and only the id in the cookie.
func NewStore(opts Options) (sessions.Store, error) {
	var store sessions.Store
	switch opts.Store {
	case "", "cookie":
		store = cookie.NewStore([]byte(opts.Secret))
	case "memory":
		store = newMemoryStore([]byte(opts.Secret))
	default:
		return nil, fmt.Errorf("unknown session store %q", opts.Store)
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   opts.MaxAge,
		Secure:   opts.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}

// Middleware attaches the session to every request
func Middleware(name string, store sessions.Store) gin.HandlerFunc {
	return sessions.Sessions(name, store)
}

// Current returns the identity in the request session. An anonymous or
// malformed session yields the zero Identity.
func Current(c *gin.Context) appAuth.Identity {
	s := sessions.Default(c)

	userID, _ := s.Get(keyUserID).(int64)
	userType, _ := s.Get(keyUserType).(string)
	username, _ := s.Get(keyUsername).(string)

	return appAuth.Identity{
		UserID:   userID,
		UserType: models.RoleType(userType),
		Username: username,
	}
}

// Establish stores identity in a fresh session. A server-side session
// that already has an id gets a new one.
func Establish(c *gin.Context, identity appAuth.Identity) error {
	s := sessions.Default(c)
	s.Clear()
	if s.ID() != "" {
		s.Set(rotateKey, true)
	}
	s.Set(keyUserID, identity.UserID)
	s.Set(keyUserType, string(identity.UserType))
	s.Set(keyUsername, identity.Username)
	return s.Save()
}

// SetUsername refreshes the cached username after a profile change
func SetUsername(c *gin.Context, username string) error {
	s := sessions.Default(c)
	s.Set(keyUsername, username)
	return s.Save()
}

// Destroy clears the session and expires its cookie
func Destroy(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	return s.Save()
}
