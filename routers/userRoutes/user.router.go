package userRoutes

import (
	userControllers "learnhub/controllers/user"
	"learnhub/middleware"
	"learnhub/models"
	courseValidators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, ctl *userControllers.Controller) {
	userGroup := app.Group("/api/users")

	userGroup.Patch("/update-me", middleware.JWTMiddleware, ctl.UpdateMe)
	userGroup.Get("/enrolled-courses", middleware.JWTMiddleware, ctl.EnrolledCourses)
	userGroup.Post("/enroll/:courseId", middleware.JWTMiddleware, courseValidators.IDParam("courseId", "courseID"), ctl.Enroll)

	// Admin only
	userGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), ctl.GetAllUsers)
	userGroup.Get("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), courseValidators.IDParam("id", "targetUserID"), ctl.GetUser)
}
