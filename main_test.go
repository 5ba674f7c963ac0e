package main

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"learnhub/config"
	progressControllers "learnhub/controllers/progress"
	userControllers "learnhub/controllers/user"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/progress"
	"learnhub/routers/authRoutes"
	"learnhub/routers/courseRoutes"
	"learnhub/routers/progressRoutes"
	"learnhub/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupFullApp registers every route group in the same order main does, so
// the tests exercise the real registration, not a per-test mini app.
func setupFullApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		JWTExpiry: 1,
		SaltRound: 4,
		DBDialect: "sqlite",
		DBName:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}

	db := database.ConnectDb(config.AppConfig)

	app := fiber.New()
	manager := progress.NewManager(db)

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app, userControllers.NewController(manager))
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	progressRoutes.SetupProgressRoutes(app, progressControllers.NewController(manager))

	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path, token, body string) int {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func signToken(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := middleware.GenerateJWT(user.ID, string(user.Role), user.Email)
	require.NoError(t, err)
	return token
}

func TestLearnerReachesProgressRoutes(t *testing.T) {
	app, db := setupFullApp(t)

	learner := models.User{FirstName: "Ada", Email: "ada@example.com", Password: "hash", Role: models.RoleLearner, IsActive: true}
	require.NoError(t, db.Create(&learner).Error)

	course := models.Course{Title: "Intro to X", Description: "basics", CreatorID: 1, IsPublished: true}
	require.NoError(t, db.Create(&course).Error)
	chapter := models.Chapter{UnitID: 1, Title: "Basics", Content: "read me", OrderIndex: 0, MediaType: "NONE"}
	require.NoError(t, db.Create(&chapter).Error)

	token := signToken(t, &learner)

	status := doRequest(t, app, "POST", fmt.Sprintf("/api/users/enroll/%d", course.ID), token, "")
	require.Equal(t, fiber.StatusOK, status)

	// A learner must pass the admin route registration on the same /api
	// prefix untouched.
	status = doRequest(t, app, "GET", fmt.Sprintf("/api/courses/%d/chapters/%d", course.ID, chapter.ID), token, "")
	require.Equal(t, fiber.StatusOK, status)

	status = doRequest(t, app, "POST", fmt.Sprintf("/api/courses/%d/chapters/%d/submit", course.ID, chapter.ID), token, `{"answers":{}}`)
	require.Equal(t, fiber.StatusOK, status)

	status = doRequest(t, app, "GET", fmt.Sprintf("/api/courses/%d/progress", course.ID), token, "")
	require.Equal(t, fiber.StatusOK, status)
}

func TestLearnerBlockedFromAdminRoutes(t *testing.T) {
	app, db := setupFullApp(t)

	learner := models.User{FirstName: "Ada", Email: "ada@example.com", Password: "hash", Role: models.RoleLearner, IsActive: true}
	require.NoError(t, db.Create(&learner).Error)
	admin := models.User{FirstName: "Root", Email: "root@example.com", Password: "hash", Role: models.RoleAdmin, IsActive: true}
	require.NoError(t, db.Create(&admin).Error)

	body := `{"title":"New Course","description":"full details"}`

	status := doRequest(t, app, "POST", "/api/courses", signToken(t, &learner), body)
	require.Equal(t, fiber.StatusForbidden, status)

	status = doRequest(t, app, "POST", "/api/courses", signToken(t, &admin), body)
	require.Equal(t, fiber.StatusCreated, status)

	// User listing is admin only too
	require.Equal(t, fiber.StatusForbidden, doRequest(t, app, "GET", "/api/users/", signToken(t, &learner), ""))
	require.Equal(t, fiber.StatusOK, doRequest(t, app, "GET", "/api/users/", signToken(t, &admin), ""))
}
