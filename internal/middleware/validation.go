package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
	"github.com/yigit/collegeportal/internal/pkg/logger"
)

// BindForm binds the posted form into obj. Values that do not parse into
// the field type (a letter in a score, say) become a validation error with a
// user-readable message.
func BindForm(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBind(obj); err != nil {
		logger.Ctx(c.Request.Context()).Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Form binding failed")
		return apperrors.NewValidationError("Please check the form values and try again")
	}
	return nil
}
