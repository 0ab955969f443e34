package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/middleware"
)

// Route defaults for post-redirect-get
const (
	adminPath      = "/admin"
	studentPath    = "/student"
	staffPath      = "/admin/staff"
	facultyPath    = "/admin/faculty"
	studentPageURL = "/admin/student/"
)

// flashFrom reads the outcome flags a previous redirect put in the query
func flashFrom(ctx *gin.Context) dto.Flash {
	return dto.Flash{
		Success: ctx.Query(middleware.FlashSuccess),
		Error:   ctx.Query(middleware.FlashError),
	}
}

// studentPageOrAdmin returns the referer when it is a student detail page,
// and the admin dashboard otherwise. Marks and placement forms live on the
// detail page.
func studentPageOrAdmin(ctx *gin.Context) string {
	if ref := middleware.SafeReferer(ctx); strings.HasPrefix(ref, studentPageURL) {
		return ref
	}
	return adminPath
}

// parseID parses a positive path parameter
func parseID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
