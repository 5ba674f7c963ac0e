package courseController

import (
	"encoding/json"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	courseValidators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateCourse creates a new course with the caller as creator.
func AdminCreateCourse(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidators.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	tags, _ := json.Marshal(reqData.Tags)

	level := reqData.Level
	if level == "" {
		level = "BEGINNER"
	}

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Thumbnail:   reqData.Thumbnail,
		CreatorID:   user.ID,
		Level:       level,
		Tags:        tags,
		Duration:    reqData.Duration,
		IsPublished: false,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates an existing course. Only the creator or an
// admin may modify it.
func AdminUpdateCourse(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.CreatorID != user.ID && !user.Role.CanManageContent() {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to update this course!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidators.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Thumbnail != "" {
		course.Thumbnail = reqData.Thumbnail
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}
	if reqData.Tags != nil {
		tags, _ := json.Marshal(reqData.Tags)
		course.Tags = tags
	}
	if reqData.Duration > 0 {
		course.Duration = reqData.Duration
	}
	if reqData.IsPublished != nil {
		course.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse soft deletes a course. Sections, units, chapters and
// progress records are left in place; nothing cascades.
func AdminDeleteCourse(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.CreatorID != user.ID && !user.Role.CanManageContent() {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to delete this course!", nil)
	}

	course.IsDeleted = true
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
