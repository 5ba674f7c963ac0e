package progressController

import (
	"errors"
	"log"

	"learnhub/middleware"
	"learnhub/progress"

	"github.com/gofiber/fiber/v2"
)

// Controller serves the chapter-content, submission and progress routes.
type Controller struct {
	Manager *progress.Manager
}

func NewController(manager *progress.Manager) *Controller {
	return &Controller{Manager: manager}
}

// GetChapterContent returns a chapter with its questions. Reading content
// also moves the caller's last-accessed pointer, best effort.
func (ctl *Controller) GetChapterContent(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	chapterID := c.Locals("chapterID").(uint)

	var caller *uint
	if userID, ok := c.Locals("userId").(uint); ok {
		caller = &userID
	}

	content, err := ctl.Manager.GetChapterContent(caller, courseID, chapterID)
	if err != nil {
		if errors.Is(err, progress.ErrChapterNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
		}
		log.Printf("Fetching chapter %d failed: %v", chapterID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter fetched successfully!", content)
}

// SubmitAnswers grades the caller's answers for a chapter and stores the
// resulting completion entry.
func (ctl *Controller) SubmitAnswers(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	chapterID := c.Locals("chapterID").(uint)
	answers := c.Locals("validatedAnswers").(map[uint]string)

	result, err := ctl.Manager.SubmitAnswers(userID, courseID, chapterID, answers)
	if err != nil {
		switch {
		case errors.Is(err, progress.ErrNotEnrolled):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
		case errors.Is(err, progress.ErrChapterNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
		}
		log.Printf("Submission failed for user %d chapter %d: %v", userID, chapterID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit answers!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answers submitted successfully!", result)
}

// GetCourseProgress returns the caller's progress record for a course.
func (ctl *Controller) GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	record, err := ctl.Manager.GetCourseProgress(userID, courseID)
	if err != nil {
		if errors.Is(err, progress.ErrProgressNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No progress found for this course!", nil)
		}
		log.Printf("Fetching progress failed for user %d course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", record)
}
