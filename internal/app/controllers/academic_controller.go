package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/app/services"
	"github.com/yigit/collegeportal/internal/middleware"
)

// AcademicController handles the marks and placement forms of the student
// detail page. Every action returns to that page when it came from there,
// and to the admin dashboard otherwise.
type AcademicController struct {
	academicService services.AcademicService
}

// NewAcademicController creates a new AcademicController
func NewAcademicController(academicService services.AcademicService) *AcademicController {
	return &AcademicController{
		academicService: academicService,
	}
}

// mutate binds form, runs apply and redirects with the outcome
func (c *AcademicController) mutate(ctx *gin.Context, form interface{}, apply func() error, success, failure string) {
	target := studentPageOrAdmin(ctx)

	if err := middleware.BindForm(ctx, form); err != nil {
		middleware.HandleWebError(ctx, target, err, "")
		return
	}
	if err := apply(); err != nil {
		middleware.HandleWebError(ctx, target, err, failure)
		return
	}
	middleware.RedirectWithFlash(ctx, target, middleware.FlashSuccess, success)
}

// AddMark records a mark
func (c *AcademicController) AddMark(ctx *gin.Context) {
	var form dto.AddMarkForm
	c.mutate(ctx, &form, func() error {
		_, err := c.academicService.AddMark(ctx.Request.Context(), form)
		return err
	}, "Mark added successfully", "Failed to add mark")
}

// UpdateMark rewrites a mark
func (c *AcademicController) UpdateMark(ctx *gin.Context) {
	var form dto.UpdateMarkForm
	c.mutate(ctx, &form, func() error {
		return c.academicService.UpdateMark(ctx.Request.Context(), form)
	}, "Mark updated successfully", "Failed to update mark")
}

// DeleteMark removes a mark
func (c *AcademicController) DeleteMark(ctx *gin.Context) {
	var form dto.DeleteMarkForm
	c.mutate(ctx, &form, func() error {
		return c.academicService.DeleteMark(ctx.Request.Context(), form.MarkID)
	}, "Mark deleted successfully", "Failed to delete mark")
}

// AddPlacement records a placement
func (c *AcademicController) AddPlacement(ctx *gin.Context) {
	var form dto.AddPlacementForm
	c.mutate(ctx, &form, func() error {
		_, err := c.academicService.AddPlacement(ctx.Request.Context(), form)
		return err
	}, "Placement added successfully", "Failed to add placement")
}

// UpdatePlacement rewrites the offer details of a placement
func (c *AcademicController) UpdatePlacement(ctx *gin.Context) {
	var form dto.UpdatePlacementForm
	c.mutate(ctx, &form, func() error {
		return c.academicService.UpdatePlacement(ctx.Request.Context(), form)
	}, "Placement updated successfully", "Failed to update placement")
}

// UpdatePlacementAccepted toggles the accepted offer
func (c *AcademicController) UpdatePlacementAccepted(ctx *gin.Context) {
	var form dto.PlacementAcceptedForm
	c.mutate(ctx, &form, func() error {
		return c.academicService.SetPlacementAccepted(ctx.Request.Context(), form)
	}, "Placement status updated", "Failed to update placement status")
}

// DeletePlacement removes a placement
func (c *AcademicController) DeletePlacement(ctx *gin.Context) {
	var form dto.DeletePlacementForm
	c.mutate(ctx, &form, func() error {
		return c.academicService.DeletePlacement(ctx.Request.Context(), form.PlacementID)
	}, "Placement deleted successfully", "Failed to delete placement")
}
