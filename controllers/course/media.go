package courseController

import (
	"learnhub/config"
	"learnhub/middleware"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminUploadMedia stores an uploaded media file (chapter or question
// audio/image) under the upload dir and returns its public URL.
func AdminUploadMedia(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A file is required!", nil)
	}

	url, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save file!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "File uploaded successfully!", fiber.Map{
		"url": url,
	})
}
