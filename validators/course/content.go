package courseValidator

import (
	"strings"

	"learnhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderedContainerRequest is the shared payload for sections and units.
type OrderedContainerRequest struct {
	Title       string `json:"title" validate:"required,min=1"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" validate:"gte=0"`
}

// ChapterRequest is the validated chapter payload.
type ChapterRequest struct {
	Title      string `json:"title" validate:"required,min=1"`
	Content    string `json:"content" validate:"required"`
	OrderIndex int    `json:"order_index" validate:"gte=0"`
	MediaType  string `json:"media_type" validate:"omitempty,oneof=NONE IMAGE VIDEO AUDIO"`
	MediaURL   string `json:"media_url" validate:"omitempty,url"`
	Duration   int    `json:"duration" validate:"gte=0"`
}

// QuestionOptionRequest is one inline MCQ option.
type QuestionOptionRequest struct {
	Text       string `json:"text" validate:"required"`
	IsCorrect  bool   `json:"is_correct"`
	OrderIndex int    `json:"order_index" validate:"gte=0"`
}

// QuestionRequest is the validated question payload. Options are only
// meaningful for MCQ questions, CorrectAnswer for TEXT and FILL_BLANK.
type QuestionRequest struct {
	Text          string                  `json:"text" validate:"required"`
	Type          string                  `json:"type" validate:"required,oneof=MCQ FILL_BLANK TEXT AUDIO"`
	CorrectAnswer string                  `json:"correct_answer"`
	Points        int                     `json:"points" validate:"gte=0"`
	MediaType     string                  `json:"media_type" validate:"omitempty,oneof=NONE IMAGE AUDIO"`
	MediaURL      string                  `json:"media_url" validate:"omitempty,url"`
	Options       []QuestionOptionRequest `json:"options" validate:"dive"`
}

func OrderedContainer(localsKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(OrderedContainerRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title is required!"})
		}

		c.Locals(localsKey, reqData)
		return c.Next()
	}
}

func Chapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChapterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.MediaType = strings.ToUpper(strings.TrimSpace(reqData.MediaType))

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Title":
					errors["title"] = "Title is required!"
				case "Content":
					errors["content"] = "Content is required!"
				case "MediaType":
					errors["media_type"] = "Media type must be NONE, IMAGE, VIDEO or AUDIO!"
				case "MediaURL":
					errors["media_url"] = "Media URL must be a valid URL!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChapter", reqData)
		return c.Next()
	}
}

func Question() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(QuestionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Type = strings.ToUpper(strings.TrimSpace(reqData.Type))
		reqData.MediaType = strings.ToUpper(strings.TrimSpace(reqData.MediaType))
		if reqData.Points == 0 {
			reqData.Points = 1
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question payload!", nil)
		}

		errors := make(map[string]string)
		switch reqData.Type {
		case "MCQ":
			if len(reqData.Options) < 2 {
				errors["options"] = "MCQ questions need at least two options!"
			}
		case "TEXT", "FILL_BLANK":
			if strings.TrimSpace(reqData.CorrectAnswer) == "" {
				errors["correct_answer"] = "A correct answer is required for this question type!"
			}
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}
