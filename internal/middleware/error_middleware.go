package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	"github.com/yigit/collegeportal/internal/pkg/logger"
)

// Query flags carrying the outcome of a form post
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// SafeReferer returns the path and query of the Referer header when it points
// at this site, and "" otherwise.
func SafeReferer(c *gin.Context) string {
	ref := c.GetHeader("Referer")
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if u.Host != "" && u.Host != c.Request.Host {
		return ""
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return ""
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}

// RefererOr is SafeReferer with a fallback
func RefererOr(c *gin.Context, fallback string) string {
	if ref := SafeReferer(c); ref != "" {
		return ref
	}
	return fallback
}

// RedirectWithFlash redirects to target with key=message in the query,
// replacing any earlier outcome flag. An empty message redirects plainly.
func RedirectWithFlash(c *gin.Context, target, key, message string) {
	u, err := url.Parse(target)
	if err != nil {
		u = &url.URL{Path: "/"}
	}
	q := u.Query()
	q.Del(FlashSuccess)
	q.Del(FlashError)
	if message != "" {
		q.Set(key, message)
	}
	u.RawQuery = q.Encode()
	c.Redirect(http.StatusFound, u.String())
}

// HandleWebError logs err and redirects to target with an error flag. Only
// validation, duplicate and not-found errors show their own message; every
// other error shows fallback.
func HandleWebError(c *gin.Context, target string, err error, fallback string) {
	event := logger.Ctx(c.Request.Context()).Error()
	if apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrDuplicateValue, apperrors.ErrNotFound) {
		event = logger.Ctx(c.Request.Context()).Info()
	}
	event.Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")

	RedirectWithFlash(c, target, FlashError, apperrors.UserMessage(err, fallback))
}
