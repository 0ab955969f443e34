package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/app/services"
	"github.com/yigit/collegeportal/internal/middleware"
	"github.com/yigit/collegeportal/internal/pkg/logger"
)

// AdminController serves the student administration pages
type AdminController struct {
	studentService services.StudentService
}

// NewAdminController creates a new AdminController
func NewAdminController(studentService services.StudentService) *AdminController {
	return &AdminController{
		studentService: studentService,
	}
}

// Dashboard lists all students
func (c *AdminController) Dashboard(ctx *gin.Context) {
	view, err := c.studentService.AdminDashboard(ctx.Request.Context())
	if err != nil {
		logger.Ctx(ctx.Request.Context()).Error().Err(err).Msg("Error loading admin dashboard")
		view = &dto.AdminDashboardView{}
		view.Error = "Failed to load students"
	} else {
		view.Flash = flashFrom(ctx)
	}
	view.Username = middleware.CurrentIdentity(ctx).Username

	ctx.HTML(http.StatusOK, "admin.html", view)
}

// StudentDetail shows one student with marks, placements and figures
func (c *AdminController) StudentDetail(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		middleware.RedirectWithFlash(ctx, adminPath, middleware.FlashError, "Student not found")
		return
	}

	view, err := c.studentService.StudentDetail(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleWebError(ctx, adminPath, err, "Failed to load student details")
		return
	}
	view.Flash = flashFrom(ctx)

	ctx.HTML(http.StatusOK, "student_detail.html", view)
}

// AddStudent creates a student and their login
func (c *AdminController) AddStudent(ctx *gin.Context) {
	var form dto.AddStudentForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		middleware.HandleWebError(ctx, adminPath, err, "")
		return
	}

	if _, err := c.studentService.AddStudent(ctx.Request.Context(), form); err != nil {
		middleware.HandleWebError(ctx, adminPath, err, "Failed to add student")
		return
	}
	middleware.RedirectWithFlash(ctx, adminPath, middleware.FlashSuccess, "Student added successfully")
}

// UpdateStudent applies a partial edit and returns to the page it came from
func (c *AdminController) UpdateStudent(ctx *gin.Context) {
	target := middleware.RefererOr(ctx, adminPath)

	var form dto.UpdateStudentForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		middleware.HandleWebError(ctx, target, err, "")
		return
	}

	if err := c.studentService.UpdateStudent(ctx.Request.Context(), form); err != nil {
		middleware.HandleWebError(ctx, target, err, "Failed to update student")
		return
	}
	middleware.RedirectWithFlash(ctx, target, middleware.FlashSuccess, "Student updated successfully")
}

// DeleteStudent removes a student with their login, marks and placements
func (c *AdminController) DeleteStudent(ctx *gin.Context) {
	var form dto.DeleteByIDForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		middleware.HandleWebError(ctx, adminPath, err, "")
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), form.ID); err != nil {
		middleware.HandleWebError(ctx, adminPath, err, "Failed to delete student")
		return
	}
	middleware.RedirectWithFlash(ctx, adminPath, middleware.FlashSuccess, "Student deleted successfully")
}
