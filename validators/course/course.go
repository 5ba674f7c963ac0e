package courseValidator

import (
	"strconv"
	"strings"

	"learnhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateCourseRequest is the validated admin course-creation payload.
type CreateCourseRequest struct {
	Title       string   `json:"title" validate:"required,min=3"`
	Description string   `json:"description" validate:"required,min=5"`
	Thumbnail   string   `json:"thumbnail"`
	Level       string   `json:"level" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	Tags        []string `json:"tags"`
	Duration    int64    `json:"duration" validate:"gte=0"`
}

// UpdateCourseRequest carries optional course fields; empty values are skipped.
type UpdateCourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	Level       string   `json:"level" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	Tags        []string `json:"tags"`
	Duration    int64    `json:"duration" validate:"gte=0"`
	IsPublished *bool    `json:"is_published"`
}

// IDParam validates the named route parameter as a positive integer and
// stores it under localsKey.
func IDParam(paramName, localsKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(paramName))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing id parameter!", nil)
		}

		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid id parameter!", nil)
		}

		c.Locals(localsKey, uint(id))
		return c.Next()
	}
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)
		reqData.Level = strings.ToUpper(strings.TrimSpace(reqData.Level))

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Title":
					errors["title"] = "Title must be at least 3 characters long!"
				case "Description":
					errors["description"] = "Description must be at least 5 characters long!"
				case "Level":
					errors["level"] = "Level must be BEGINNER, INTERMEDIATE or ADVANCED!"
				case "Duration":
					errors["duration"] = "Duration must not be negative!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)
		reqData.Level = strings.ToUpper(strings.TrimSpace(reqData.Level))

		if err := validate.Struct(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course fields!", nil)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Published string `query:"published"`
			Level     string `query:"level"`
			Tags      string `query:"tags"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.Published != "" && reqData.Published != "true" && reqData.Published != "false" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "published must be true or false!", nil)
		}

		c.Locals("courseFilters", reqData)
		return c.Next()
	}
}
