package courseController

import (
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
	courseValidators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateSection adds a section to a course.
func AdminCreateSection(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedSection").(*courseValidators.OrderedContainerRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	section := models.Section{
		CourseID:    courseID,
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

// AdminUpdateSection updates a section's title, description or order.
func AdminUpdateSection(c *fiber.Ctx) error {
	sectionID := c.Locals("sectionID").(uint)

	var section models.Section
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", sectionID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	reqData, ok := c.Locals("validatedSection").(*courseValidators.OrderedContainerRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	section.Title = reqData.Title
	section.Description = reqData.Description
	section.OrderIndex = reqData.OrderIndex

	if err := database.Database.Db.Save(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully!", section)
}

// AdminDeleteSection soft deletes a section.
func AdminDeleteSection(c *fiber.Ctx) error {
	sectionID := c.Locals("sectionID").(uint)

	var section models.Section
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", sectionID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	section.IsDeleted = true
	if err := database.Database.Db.Save(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", nil)
}

// AdminCreateUnit adds a unit to a section.
func AdminCreateUnit(c *fiber.Ctx) error {
	sectionID := c.Locals("sectionID").(uint)

	var section models.Section
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", sectionID, false).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	reqData, ok := c.Locals("validatedUnit").(*courseValidators.OrderedContainerRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	unit := models.Unit{
		SectionID:   sectionID,
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&unit).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create unit!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Unit created successfully!", unit)
}

// AdminUpdateUnit updates a unit's title, description or order.
func AdminUpdateUnit(c *fiber.Ctx) error {
	unitID := c.Locals("unitID").(uint)

	var unit models.Unit
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", unitID, false).First(&unit).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Unit not found!", nil)
	}

	reqData, ok := c.Locals("validatedUnit").(*courseValidators.OrderedContainerRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	unit.Title = reqData.Title
	unit.Description = reqData.Description
	unit.OrderIndex = reqData.OrderIndex

	if err := database.Database.Db.Save(&unit).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update unit!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unit updated successfully!", unit)
}

// AdminDeleteUnit soft deletes a unit.
func AdminDeleteUnit(c *fiber.Ctx) error {
	unitID := c.Locals("unitID").(uint)

	var unit models.Unit
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", unitID, false).First(&unit).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Unit not found!", nil)
	}

	unit.IsDeleted = true
	if err := database.Database.Db.Save(&unit).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete unit!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unit deleted successfully!", nil)
}

// AdminCreateChapter adds a chapter to a unit.
func AdminCreateChapter(c *fiber.Ctx) error {
	unitID := c.Locals("unitID").(uint)

	var unit models.Unit
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", unitID, false).First(&unit).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Unit not found!", nil)
	}

	reqData, ok := c.Locals("validatedChapter").(*courseValidators.ChapterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	mediaType := reqData.MediaType
	if mediaType == "" {
		mediaType = "NONE"
	}

	chapter := models.Chapter{
		UnitID:     unitID,
		Title:      reqData.Title,
		Content:    reqData.Content,
		OrderIndex: reqData.OrderIndex,
		MediaType:  mediaType,
		MediaURL:   reqData.MediaURL,
		Duration:   reqData.Duration,
	}

	if err := database.Database.Db.Create(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create chapter!", nil)
	}

	go utils.CheckMediaURL(reqData.MediaURL)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Chapter created successfully!", chapter)
}

// AdminUpdateChapter updates a chapter.
func AdminUpdateChapter(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(uint)

	var chapter models.Chapter
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	reqData, ok := c.Locals("validatedChapter").(*courseValidators.ChapterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	chapter.Title = reqData.Title
	chapter.Content = reqData.Content
	chapter.OrderIndex = reqData.OrderIndex
	if reqData.MediaType != "" {
		chapter.MediaType = reqData.MediaType
	}
	chapter.MediaURL = reqData.MediaURL
	chapter.Duration = reqData.Duration

	if err := database.Database.Db.Save(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update chapter!", nil)
	}

	go utils.CheckMediaURL(reqData.MediaURL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter updated successfully!", chapter)
}

// AdminDeleteChapter soft deletes a chapter. Existing completion entries
// for the chapter are kept.
func AdminDeleteChapter(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(uint)

	var chapter models.Chapter
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	chapter.IsDeleted = true
	if err := database.Database.Db.Save(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter deleted successfully!", nil)
}

// AdminCreateQuestion adds a question (with inline MCQ options) to a chapter.
func AdminCreateQuestion(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(uint)

	var chapter models.Chapter
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*courseValidators.QuestionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	mediaType := reqData.MediaType
	if mediaType == "" {
		mediaType = "NONE"
	}

	question := models.Question{
		ChapterID:     chapterID,
		Text:          reqData.Text,
		Type:          reqData.Type,
		CorrectAnswer: reqData.CorrectAnswer,
		Points:        reqData.Points,
		MediaType:     mediaType,
		MediaURL:      reqData.MediaURL,
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	for _, opt := range reqData.Options {
		option := models.QuestionOption{
			QuestionID: question.ID,
			Text:       opt.Text,
			IsCorrect:  opt.IsCorrect,
			OrderIndex: opt.OrderIndex,
		}
		if err := database.Database.Db.Create(&option).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question options!", nil)
		}
	}

	go utils.CheckMediaURL(reqData.MediaURL)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", question)
}

// AdminUpdateQuestion replaces a question's fields and, when options are
// provided, its option set.
func AdminUpdateQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(uint)

	var question models.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuestion").(*courseValidators.QuestionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	question.Text = reqData.Text
	question.Type = reqData.Type
	question.CorrectAnswer = reqData.CorrectAnswer
	question.Points = reqData.Points
	if reqData.MediaType != "" {
		question.MediaType = reqData.MediaType
	}
	question.MediaURL = reqData.MediaURL

	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	if len(reqData.Options) > 0 {
		if err := database.Database.Db.Model(&models.QuestionOption{}).
			Where("question_id = ?", questionID).
			Update("is_deleted", true).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question options!", nil)
		}
		for _, opt := range reqData.Options {
			option := models.QuestionOption{
				QuestionID: question.ID,
				Text:       opt.Text,
				IsCorrect:  opt.IsCorrect,
				OrderIndex: opt.OrderIndex,
			}
			if err := database.Database.Db.Create(&option).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question options!", nil)
			}
		}
	}

	go utils.CheckMediaURL(reqData.MediaURL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

// AdminDeleteQuestion soft deletes a question and its options.
func AdminDeleteQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(uint)

	var question models.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	question.IsDeleted = true
	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	if err := database.Database.Db.Model(&models.QuestionOption{}).
		Where("question_id = ?", questionID).
		Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question options!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
