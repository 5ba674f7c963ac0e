package userController

import (
	"errors"
	"log"
	"strings"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/progress"
	"learnhub/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

// Controller serves account and enrollment routes. Enrollment goes through
// the progress manager, which owns the two-write enroll sequence.
type Controller struct {
	Manager *progress.Manager
}

func NewController(manager *progress.Manager) *Controller {
	return &Controller{Manager: manager}
}

// UpdateMe updates the caller's own profile. Password changes are not
// accepted here.
func (ctl *Controller) UpdateMe(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData := new(struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Avatar    string `json:"avatar"`
		Password  string `json:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Password != "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This route is not for password updates!", nil)
	}

	// Whitelisted fields only
	if reqData.FirstName != "" {
		user.FirstName = reqData.FirstName
	}
	if reqData.LastName != "" {
		user.LastName = reqData.LastName
	}
	if reqData.Email != "" {
		// Emails are stored lowercased so the unique index stays
		// case-insensitive.
		email := strings.ToLower(strings.TrimSpace(reqData.Email))
		if err := validate.Var(email, "email"); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid email address!", nil)
		}
		user.Email = email
	}
	if reqData.Avatar != "" {
		user.Avatar = reqData.Avatar
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}

// Enroll enrolls the caller in a course and creates the initial progress
// record.
func (ctl *Controller) Enroll(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	enrollment, err := ctl.Manager.Enroll(userID, courseID)
	if err != nil {
		switch {
		case errors.Is(err, progress.ErrUserNotFound):
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		case errors.Is(err, progress.ErrCourseNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
		case errors.Is(err, progress.ErrAlreadyEnrolled):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this course!", nil)
		}
		log.Printf("Enroll failed for user %d course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	go func() {
		var user models.User
		var course models.Course
		if database.Database.Db.First(&user, userID).Error == nil &&
			database.Database.Db.First(&course, courseID).Error == nil {
			utils.SendEnrollmentEmail(user.Email, user.FirstName, course.Title)
		}
	}()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// EnrolledCourses lists the caller's enrollments with course details.
func (ctl *Controller) EnrolledCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("user_id = ?", userID).Preload("Course").Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"results":     len(enrollments),
		"enrollments": enrollments,
	})
}

// GetAllUsers lists accounts. Admin only.
func (ctl *Controller) GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Where("is_deleted = ?", false).Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"results": len(users),
		"users":   users,
	})
}

// GetUser returns one account by id. Admin only.
func (ctl *Controller) GetUser(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No user found with that ID!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}
