package progressValidator

import (
	"strconv"

	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// SubmitAnswersRequest maps question ids to the submitted answer text.
// Keys arrive as JSON strings and are validated as positive integers.
type SubmitAnswersRequest struct {
	Answers map[string]string `json:"answers"`
}

func SubmitAnswers() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitAnswersRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Answers == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "answers is required!", nil)
		}

		answers := make(map[uint]string, len(reqData.Answers))
		for key, value := range reqData.Answers {
			id, err := strconv.ParseUint(key, 10, 64)
			if err != nil || id == 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question id in answers!", nil)
			}
			answers[uint(id)] = value
		}

		c.Locals("validatedAnswers", answers)
		return c.Next()
	}
}
