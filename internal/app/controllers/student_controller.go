package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/app/services"
	"github.com/yigit/collegeportal/internal/middleware"
	"github.com/yigit/collegeportal/internal/pkg/logger"
	"github.com/yigit/collegeportal/internal/pkg/session"
)

// StudentController serves the student's own pages
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// Dashboard renders the logged-in student's dashboard. A store failure
// still renders the page, empty, with an error banner.
func (c *StudentController) Dashboard(ctx *gin.Context) {
	identity := middleware.CurrentIdentity(ctx)

	view, err := c.studentService.Dashboard(ctx.Request.Context(), identity)
	if err != nil {
		logger.Ctx(ctx.Request.Context()).Error().Err(err).Int64("userID", identity.UserID).Msg("Error loading student dashboard")
		view = &dto.StudentDashboardView{Username: identity.Username}
		view.Error = "Failed to load your records"
	}
	if view.Error == "" {
		view.Flash = flashFrom(ctx)
	}

	ctx.HTML(http.StatusOK, "student_dashboard.html", view)
}

// UpdatePersonalInfo applies the student's profile form
func (c *StudentController) UpdatePersonalInfo(ctx *gin.Context) {
	var form dto.PersonalInfoForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		middleware.HandleWebError(ctx, studentPath, err, "")
		return
	}

	identity := middleware.CurrentIdentity(ctx)
	result, err := c.studentService.UpdatePersonalInfo(ctx.Request.Context(), identity, form)
	if err != nil {
		middleware.HandleWebError(ctx, studentPath, err, "Failed to update personal information")
		return
	}
	if !result.Changed {
		middleware.RedirectWithFlash(ctx, studentPath, middleware.FlashError, "No changes were made")
		return
	}

	if err := session.SetUsername(ctx, result.Username); err != nil {
		logger.Ctx(ctx.Request.Context()).Warn().Err(err).Msg("Error refreshing session username")
	}
	middleware.RedirectWithFlash(ctx, studentPath, middleware.FlashSuccess, "Personal information and credentials updated successfully")
}
