package courseRoutes

import (
	courseControllers "learnhub/controllers/course"
	courseValidators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public course-discovery routes.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	courseGroup.Get("/", courseValidators.CourseList(), courseControllers.GetAllCourses)
	courseGroup.Get("/:id", courseValidators.IDParam("id", "courseID"), courseControllers.GetCourseDetails)
}
