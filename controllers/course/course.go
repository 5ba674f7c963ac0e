package courseController

import (
	"strings"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"

	"github.com/gofiber/fiber/v2"
)

// ChapterSummary is a chapter without its questions, for course detail.
type ChapterSummary struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	OrderIndex int    `json:"order_index"`
	MediaType  string `json:"media_type"`
	Duration   int    `json:"duration"`
}

// UnitTree is a unit with its chapters.
type UnitTree struct {
	models.Unit
	Chapters []ChapterSummary `json:"chapters"`
}

// SectionTree is a section with its units.
type SectionTree struct {
	models.Section
	Units []UnitTree `json:"units"`
}

// CourseTree is the full nested course payload. Questions are excluded;
// they are only served through the chapter-content endpoint.
type CourseTree struct {
	models.Course
	Sections []SectionTree `json:"sections"`
}

// GetAllCourses lists courses with optional published/level/tags filters.
func GetAllCourses(c *fiber.Ctx) error {
	filters, _ := c.Locals("courseFilters").(*struct {
		Published string `query:"published"`
		Level     string `query:"level"`
		Tags      string `query:"tags"`
	})

	db := database.Database.Db.Model(&models.Course{}).Where("is_deleted = ?", false)

	if filters != nil {
		if filters.Published != "" {
			db = db.Where("is_published = ?", filters.Published == "true")
		}
		if filters.Level != "" {
			db = db.Where("level = ?", strings.ToUpper(filters.Level))
		}
		if filters.Tags != "" {
			// Tags live in a JSON column; a LIKE per tag keeps the
			// filter portable across the supported dialects.
			for _, tag := range strings.Split(filters.Tags, ",") {
				tag = strings.TrimSpace(tag)
				if tag != "" {
					db = db.Where("tags LIKE ?", "%\""+tag+"\"%")
				}
			}
		}
	}

	var courses []models.Course
	if err := db.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"results": len(courses),
		"courses": courses,
	})
}

// GetCourseDetails returns one course with its nested sections, units and
// chapters (questions excluded).
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	tree := CourseTree{Course: course}

	var sections []models.Section
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&sections).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course content!", nil)
	}

	for _, section := range sections {
		sectionTree := SectionTree{Section: section}

		var units []models.Unit
		if err := database.Database.Db.Where("section_id = ? AND is_deleted = ?", section.ID, false).Order("order_index asc").Find(&units).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course content!", nil)
		}

		for _, unit := range units {
			unitTree := UnitTree{Unit: unit}

			var chapters []models.Chapter
			if err := database.Database.Db.Where("unit_id = ? AND is_deleted = ?", unit.ID, false).Order("order_index asc").Find(&chapters).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course content!", nil)
			}

			for _, chapter := range chapters {
				unitTree.Chapters = append(unitTree.Chapters, ChapterSummary{
					ID:         chapter.ID,
					Title:      chapter.Title,
					OrderIndex: chapter.OrderIndex,
					MediaType:  chapter.MediaType,
					Duration:   chapter.Duration,
				})
			}
			sectionTree.Units = append(sectionTree.Units, unitTree)
		}
		tree.Sections = append(tree.Sections, sectionTree)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", tree)
}
