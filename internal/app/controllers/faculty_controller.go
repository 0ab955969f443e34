package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/app/services"
	"github.com/yigit/collegeportal/internal/middleware"
	"github.com/yigit/collegeportal/internal/pkg/logger"
)

// FacultyController handles faculty-related operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// List renders the faculty page
func (c *FacultyController) List(ctx *gin.Context) {
	view := &dto.FacultyView{Flash: flashFrom(ctx)}

	faculty, err := c.facultyService.ListFaculty(ctx.Request.Context())
	if err != nil {
		logger.Ctx(ctx.Request.Context()).Error().Err(err).Msg("Error listing faculty")
		faculty = []*models.Faculty{}
		view.Error = "Failed to load faculty"
	}
	view.Faculty = faculty

	ctx.HTML(http.StatusOK, "faculty.html", view)
}

// Create adds a faculty member
func (c *FacultyController) Create(ctx *gin.Context) {
	var form dto.FacultyForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		middleware.HandleWebError(ctx, facultyPath, err, "")
		return
	}

	if _, err := c.facultyService.CreateFaculty(ctx.Request.Context(), form); err != nil {
		middleware.HandleWebError(ctx, facultyPath, err, "Failed to add faculty member")
		return
	}
	middleware.RedirectWithFlash(ctx, facultyPath, middleware.FlashSuccess, "Faculty member added successfully")
}

// Update rewrites a faculty member
func (c *FacultyController) Update(ctx *gin.Context) {
	var form dto.FacultyForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		middleware.HandleWebError(ctx, facultyPath, err, "")
		return
	}

	if err := c.facultyService.UpdateFaculty(ctx.Request.Context(), form); err != nil {
		middleware.HandleWebError(ctx, facultyPath, err, "Failed to update faculty member")
		return
	}
	middleware.RedirectWithFlash(ctx, facultyPath, middleware.FlashSuccess, "Faculty member updated successfully")
}

// Delete removes a faculty member
func (c *FacultyController) Delete(ctx *gin.Context) {
	var form dto.DeleteByIDForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		middleware.HandleWebError(ctx, facultyPath, err, "")
		return
	}

	if err := c.facultyService.DeleteFaculty(ctx.Request.Context(), form.ID); err != nil {
		middleware.HandleWebError(ctx, facultyPath, err, "Failed to delete faculty member")
		return
	}
	middleware.RedirectWithFlash(ctx, facultyPath, middleware.FlashSuccess, "Faculty member deleted successfully")
}
