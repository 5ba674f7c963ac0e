package userController

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"learnhub/config"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/progress"
	courseValidators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupEnrollApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		JWTExpiry: 1,
		SaltRound: 4,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Enrollment{},
		&models.UserProgress{},
		&models.ChapterCompletion{},
	))
	database.Database = database.DbInstance{Db: db}

	ctl := NewController(progress.NewManager(db))

	app := fiber.New()
	app.Post("/api/users/enroll/:courseId", middleware.JWTMiddleware, courseValidators.IDParam("courseId", "courseID"), ctl.Enroll)
	app.Get("/api/users/enrolled-courses", middleware.JWTMiddleware, ctl.EnrolledCourses)
	app.Patch("/api/users/update-me", middleware.JWTMiddleware, ctl.UpdateMe)
	return app, db
}

func updateMeRequest(t *testing.T, app *fiber.App, token, body string) int {
	t.Helper()

	req := httptest.NewRequest("PATCH", "/api/users/update-me", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func enrollRequest(t *testing.T, app *fiber.App, token string, courseID uint) int {
	t.Helper()

	req := httptest.NewRequest("POST", fmt.Sprintf("/api/users/enroll/%d", courseID), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestEnrollEndpoint(t *testing.T) {
	app, db := setupEnrollApp(t)

	user := models.User{FirstName: "Ada", Email: "ada@example.com", Password: "hash", Role: models.RoleLearner, IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	course := models.Course{Title: "Intro to X", Description: "basics", CreatorID: 1, IsPublished: true}
	require.NoError(t, db.Create(&course).Error)

	token, err := middleware.GenerateJWT(user.ID, string(user.Role), user.Email)
	require.NoError(t, err)

	require.Equal(t, fiber.StatusOK, enrollRequest(t, app, token, course.ID))
	require.Equal(t, fiber.StatusConflict, enrollRequest(t, app, token, course.ID))
	require.Equal(t, fiber.StatusNotFound, enrollRequest(t, app, token, 9999))

	// Exactly one progress record for the pair
	var count int64
	db.Model(&models.UserProgress{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count)
	require.EqualValues(t, 1, count)

	// The enrollment shows up in the list
	req := httptest.NewRequest("GET", "/api/users/enrolled-courses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed struct {
		Data struct {
			Results int `json:"results"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	require.Equal(t, 1, parsed.Data.Results)
}

func TestUpdateMe_NormalizesEmail(t *testing.T) {
	app, db := setupEnrollApp(t)

	user := models.User{FirstName: "Ada", Email: "ada@example.com", Password: "hash", Role: models.RoleLearner, IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, string(user.Role), user.Email)
	require.NoError(t, err)

	status := updateMeRequest(t, app, token, `{"email":"  Ada.New@Example.COM  "}`)
	require.Equal(t, fiber.StatusOK, status)

	var saved models.User
	require.NoError(t, db.First(&saved, user.ID).Error)
	require.Equal(t, "ada.new@example.com", saved.Email)
}

func TestUpdateMe_RejectsInvalidEmail(t *testing.T) {
	app, db := setupEnrollApp(t)

	user := models.User{FirstName: "Ada", Email: "ada@example.com", Password: "hash", Role: models.RoleLearner, IsActive: true}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, string(user.Role), user.Email)
	require.NoError(t, err)

	require.Equal(t, fiber.StatusBadRequest, updateMeRequest(t, app, token, `{"email":"not-an-email"}`))

	var saved models.User
	require.NoError(t, db.First(&saved, user.ID).Error)
	require.Equal(t, "ada@example.com", saved.Email)
}

func TestUpdateMe_DuplicateEmailConflicts(t *testing.T) {
	app, db := setupEnrollApp(t)

	ada := models.User{FirstName: "Ada", Email: "ada@example.com", Password: "hash", Role: models.RoleLearner, IsActive: true}
	require.NoError(t, db.Create(&ada).Error)
	grace := models.User{FirstName: "Grace", Email: "grace@example.com", Password: "hash", Role: models.RoleLearner, IsActive: true}
	require.NoError(t, db.Create(&grace).Error)

	token, err := middleware.GenerateJWT(ada.ID, string(ada.Role), ada.Email)
	require.NoError(t, err)

	// A case variant of another account's email must not slip past the
	// unique index.
	require.Equal(t, fiber.StatusConflict, updateMeRequest(t, app, token, `{"email":"Grace@Example.COM"}`))
}
