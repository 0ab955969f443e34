package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeportal/internal/app/controllers"
	"github.com/yigit/collegeportal/internal/app/models"
	"github.com/yigit/collegeportal/internal/middleware"
)

// Controllers groups the handlers the router mounts
type Controllers struct {
	Auth     *controllers.AuthController
	Student  *controllers.StudentController
	Admin    *controllers.AdminController
	Academic *controllers.AcademicController
	Staff    *controllers.StaffController
	Faculty  *controllers.FacultyController
	Export   *controllers.ExportController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	// --- Public routes ---
	router.GET("/", c.Auth.Index)
	router.POST("/login", c.Auth.Login)
	router.GET("/logout", c.Auth.Logout)

	// --- Student routes ---
	student := router.Group("/student")
	student.Use(authMiddleware.RequireRole(models.RoleStudent))
	{
		student.GET("", c.Student.Dashboard)
		student.POST("/update-personal-info", c.Student.UpdatePersonalInfo)
	}

	// --- Admin routes ---
	// Every admin route, mutations included, sits behind the role check.
	admin := router.Group("/admin")
	admin.Use(authMiddleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("", c.Admin.Dashboard)
		admin.GET("/student/:id", c.Admin.StudentDetail)
		admin.POST("/add-student", c.Admin.AddStudent)
		admin.POST("/update-student", c.Admin.UpdateStudent)
		admin.POST("/delete-student", c.Admin.DeleteStudent)

		admin.POST("/add-marks", c.Academic.AddMark)
		admin.POST("/update-mark", c.Academic.UpdateMark)
		admin.POST("/delete-mark", c.Academic.DeleteMark)

		admin.POST("/add-placement", c.Academic.AddPlacement)
		admin.POST("/update-placement", c.Academic.UpdatePlacement)
		admin.POST("/update-placement-accepted", c.Academic.UpdatePlacementAccepted)
		admin.POST("/delete-placement", c.Academic.DeletePlacement)

		admin.GET("/staff", c.Staff.List)
		admin.POST("/add-staff", c.Staff.Create)
		admin.POST("/update-staff", c.Staff.Update)
		admin.POST("/delete-staff", c.Staff.Delete)

		admin.GET("/faculty", c.Faculty.List)
		admin.POST("/add-faculty", c.Faculty.Create)
		admin.POST("/update-faculty", c.Faculty.Update)
		admin.POST("/delete-faculty", c.Faculty.Delete)

		admin.GET("/export-students", c.Export.Students)
		admin.GET("/export-staff", c.Export.Staff)
		admin.GET("/export-faculty", c.Export.Faculty)
	}
}
