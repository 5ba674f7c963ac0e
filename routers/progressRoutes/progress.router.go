package progressRoutes

import (
	progressControllers "learnhub/controllers/progress"
	"learnhub/middleware"
	courseValidators "learnhub/validators/course"
	progressValidators "learnhub/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// SetupProgressRoutes sets up the chapter-content, submission and
// course-progress routes.
func SetupProgressRoutes(app *fiber.App, ctl *progressControllers.Controller) {
	group := app.Group("/api/courses/:courseId", middleware.JWTMiddleware, courseValidators.IDParam("courseId", "courseID"))

	group.Get("/chapters/:chapterId", courseValidators.IDParam("chapterId", "chapterID"), ctl.GetChapterContent)
	group.Post("/chapters/:chapterId/submit", courseValidators.IDParam("chapterId", "chapterID"), progressValidators.SubmitAnswers(), ctl.SubmitAnswers)
	group.Get("/progress", ctl.GetCourseProgress)
}
