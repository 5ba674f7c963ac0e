package courseRoutes

import (
	courseControllers "learnhub/controllers/course"
	"learnhub/middleware"
	"learnhub/models"
	courseValidators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up the content-management routes. The JWT and
// admin-role checks are attached per route so the /api prefix stays open to
// learner traffic.
func SetupAdminCourseRoutes(app *fiber.App) {
	admin := app.Group("/api")

	jwtAuth := middleware.JWTMiddleware
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	// Courses
	admin.Post("/courses", jwtAuth, adminOnly, courseValidators.CreateCourse(), courseControllers.AdminCreateCourse)
	admin.Patch("/courses/:id", jwtAuth, adminOnly, courseValidators.IDParam("id", "courseID"), courseValidators.UpdateCourse(), courseControllers.AdminUpdateCourse)
	admin.Delete("/courses/:id", jwtAuth, adminOnly, courseValidators.IDParam("id", "courseID"), courseControllers.AdminDeleteCourse)

	// Sections
	admin.Post("/courses/:courseId/sections", jwtAuth, adminOnly, courseValidators.IDParam("courseId", "courseID"), courseValidators.OrderedContainer("validatedSection"), courseControllers.AdminCreateSection)
	admin.Patch("/sections/:sectionId", jwtAuth, adminOnly, courseValidators.IDParam("sectionId", "sectionID"), courseValidators.OrderedContainer("validatedSection"), courseControllers.AdminUpdateSection)
	admin.Delete("/sections/:sectionId", jwtAuth, adminOnly, courseValidators.IDParam("sectionId", "sectionID"), courseControllers.AdminDeleteSection)

	// Units
	admin.Post("/sections/:sectionId/units", jwtAuth, adminOnly, courseValidators.IDParam("sectionId", "sectionID"), courseValidators.OrderedContainer("validatedUnit"), courseControllers.AdminCreateUnit)
	admin.Patch("/units/:unitId", jwtAuth, adminOnly, courseValidators.IDParam("unitId", "unitID"), courseValidators.OrderedContainer("validatedUnit"), courseControllers.AdminUpdateUnit)
	admin.Delete("/units/:unitId", jwtAuth, adminOnly, courseValidators.IDParam("unitId", "unitID"), courseControllers.AdminDeleteUnit)

	// Chapters
	admin.Post("/units/:unitId/chapters", jwtAuth, adminOnly, courseValidators.IDParam("unitId", "unitID"), courseValidators.Chapter(), courseControllers.AdminCreateChapter)
	admin.Patch("/chapters/:chapterId", jwtAuth, adminOnly, courseValidators.IDParam("chapterId", "chapterID"), courseValidators.Chapter(), courseControllers.AdminUpdateChapter)
	admin.Delete("/chapters/:chapterId", jwtAuth, adminOnly, courseValidators.IDParam("chapterId", "chapterID"), courseControllers.AdminDeleteChapter)

	// Questions
	admin.Post("/chapters/:chapterId/questions", jwtAuth, adminOnly, courseValidators.IDParam("chapterId", "chapterID"), courseValidators.Question(), courseControllers.AdminCreateQuestion)
	admin.Patch("/questions/:questionId", jwtAuth, adminOnly, courseValidators.IDParam("questionId", "questionID"), courseValidators.Question(), courseControllers.AdminUpdateQuestion)
	admin.Delete("/questions/:questionId", jwtAuth, adminOnly, courseValidators.IDParam("questionId", "questionID"), courseControllers.AdminDeleteQuestion)

	// Media upload
	admin.Post("/media", jwtAuth, adminOnly, courseControllers.AdminUploadMedia)
}
