package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeportal/internal/app/services"
	"github.com/yigit/collegeportal/internal/middleware"
)

// ExportController serves the CSV downloads
type ExportController struct {
	exportService services.ExportService
}

// NewExportController creates a new ExportController
func NewExportController(exportService services.ExportService) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

// Students downloads students.csv
func (c *ExportController) Students(ctx *gin.Context) {
	c.send(ctx, "students.csv", adminPath, c.exportService.Students)
}

// Staff downloads staff.csv
func (c *ExportController) Staff(ctx *gin.Context) {
	c.send(ctx, "staff.csv", staffPath, c.exportService.Staff)
}

// Faculty downloads faculty.csv
func (c *ExportController) Faculty(ctx *gin.Context) {
	c.send(ctx, "faculty.csv", facultyPath, c.exportService.Faculty)
}

func (c *ExportController) send(ctx *gin.Context, filename, fallback string, render func(context.Context) ([]byte, error)) {
	data, err := render(ctx.Request.Context())
	if err != nil {
		middleware.HandleWebError(ctx, fallback, err, "Export failed")
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+filename)
	ctx.Data(http.StatusOK, "text/csv", data)
}
