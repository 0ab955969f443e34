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

// StaffController handles staff-related operations
type StaffController struct {
	staffService services.StaffService
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService services.StaffService) *StaffController {
	return &StaffController{
		staffService: staffService,
	}
}

// List renders the staff page
func (c *StaffController) List(ctx *gin.Context) {
	view := &dto.StaffView{Flash: flashFrom(ctx)}

	staff, err := c.staffService.ListStaff(ctx.Request.Context())
	if err != nil {
		logger.Ctx(ctx.Request.Context()).Error().Err(err).Msg("Error listing staff")
		staff = []*models.Staff{}
		view.Error = "Failed to load staff"
	}
	view.Staff = staff

	ctx.HTML(http.StatusOK, "staff.html", view)
}

// Create adds a staff member
func (c *StaffController) Create(ctx *gin.Context) {
	var form dto.StaffForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		middleware.HandleWebError(ctx, staffPath, err, "")
		return
	}

	if _, err := c.staffService.CreateStaff(ctx.Request.Context(), form); err != nil {
		middleware.HandleWebError(ctx, staffPath, err, "Failed to add staff member")
		return
	}
	middleware.RedirectWithFlash(ctx, staffPath, middleware.FlashSuccess, "Staff member added successfully")
}

// Update rewrites a staff member
func (c *StaffController) Update(ctx *gin.Context) {
	var form dto.StaffForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		middleware.HandleWebError(ctx, staffPath, err, "")
		return
	}

	if err := c.staffService.UpdateStaff(ctx.Request.Context(), form); err != nil {
		middleware.HandleWebError(ctx, staffPath, err, "Failed to update staff member")
		return
	}
	middleware.RedirectWithFlash(ctx, staffPath, middleware.FlashSuccess, "Staff member updated successfully")
}

// Delete removes a staff member
func (c *StaffController) Delete(ctx *gin.Context) {
	var form dto.DeleteByIDForm
	if err := middleware.BindForm(ctx, &form); err != nil {
		middleware.HandleWebError(ctx, staffPath, err, "")
		return
	}

	if err := c.staffService.DeleteStaff(ctx.Request.Context(), form.ID); err != nil {
		middleware.HandleWebError(ctx, staffPath, err, "Failed to delete staff member")
		return
	}
	middleware.RedirectWithFlash(ctx, staffPath, middleware.FlashSuccess, "Staff member deleted successfully")
}
