package progress

import (
	"fmt"
	"testing"
	"time"

	"learnhub/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Section{},
		&models.Unit{},
		&models.Chapter{},
		&models.Question{},
		&models.QuestionOption{},
		&models.Enrollment{},
		&models.UserProgress{},
		&models.ChapterCompletion{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		FirstName: "Ada",
		LastName:  "Learner",
		Email:     fmt.Sprintf("ada+%s@example.com", t.Name()),
		Password:  "hashed",
		Role:      models.RoleLearner,
		IsActive:  true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCourse(t *testing.T, db *gorm.DB, published bool) *models.Course {
	t.Helper()
	course := &models.Course{
		Title:       "Intro to X",
		Description: "The fundamentals",
		CreatorID:   1,
		Level:       "BEGINNER",
		IsPublished: published,
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

func seedChapter(t *testing.T, db *gorm.DB) *models.Chapter {
	t.Helper()
	chapter := &models.Chapter{
		UnitID:  1,
		Title:   "Chapter One",
		Content: "Learning material",
	}
	require.NoError(t, db.Create(chapter).Error)
	return chapter
}

func TestEnroll_CreatesEnrollmentAndProgress(t *testing.T) {
	db := newTestDB(t)
	mgr := NewManager(db)
	user := seedUser(t, db)
	course := seedCourse(t, db, true)

	enrollment, err := mgr.Enroll(user.ID, course.ID)
	require.NoError(t, err)
	require.Equal(t, "ENROLLED", enrollment.Status)

	var record models.UserProgress
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&record).Error)
	require.Zero(t, record.CompletionPercentage)
	require.Zero(t, record.OverallScore)
	require.Nil(t, record.LastAccessedChapterID)

	var completions int64
	db.Model(&models.ChapterCompletion{}).Where("user_progress_id = ?", record.ID).Count(&completions)
	require.Zero(t, completions)
}

func TestEnroll_TwiceYieldsAlreadyEnrolled(t *testing.T) {
	db := newTestDB(t)
	mgr := NewManager(db)
	user := seedUser(t, db)
	course := seedCourse(t, db, true)

	_, err := mgr.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	_, err = mgr.Enroll(user.ID, course.ID)
	require.ErrorIs(t, err, ErrAlreadyEnrolled)

	// Exactly one progress record exists for the pair
	var count int64
	db.Model(&models.UserProgress{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestEnroll_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	mgr := NewManager(db)
	course := seedCourse(t, db, true)

	_, err := mgr.Enroll(9999, course.ID)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestEnroll_MissingOrUnpublishedCourse(t *testing.T) {
	db := newTestDB(t)
	mgr := NewManager(db)
	user := seedUser(t, db)
	draft := seedCourse(t, db, false)

	_, err := mgr.Enroll(user.ID, 9999)
	require.ErrorIs(t, err, ErrCourseNotFound)

	_, err = mgr.Enroll(user.ID, draft.ID)
	require.ErrorIs(t, err, ErrCourseNotFound)
}

func TestGetChapterContent_TouchesLastAccessed(t *testing.T) {
	db := newTestDB(t)
	mgr := NewManager(db)
	user := seedUser(t, db)
	course := seedCourse(t, db, true)
	chapter := seedChapter(t, db)

	_, err := mgr.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	before := time.Now().Add(-time.Second)
	content, err := mgr.GetChapterContent(&user.ID, course.ID, chapter.ID)
	require.NoError(t, err)
	require.Equal(t, chapter.ID, content.Chapter.ID)

	var record models.UserProgress
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&record).Error)
	require.NotNil(t, record.LastAccessedChapterID)
	require.Equal(t, chapter.ID, *record.LastAccessedChapterID)
	require.True(t, record.LastAccessedAt.After(before))
}

func TestGetChapterContent_IgnoresMissingProgress(t *testing.T) {
	db := newTestDB(t)
	mgr := NewManager(db)
	user := seedUser(t, db)
	chapter := seedChapter(t, db)

	// Not enrolled anywhere; the read still succeeds
	content, err := mgr.GetChapterContent(&user.ID, 42, chapter.ID)
	require.NoError(t, err)
	require.Equal(t, chapter.Title, content.Chapter.Title)
}

func TestGetChapterContent_AnonymousCaller(t *testing.T) {
	db := newTestDB(t)
	mgr := NewManager(db)
	chapter := seedChapter(t, db)

	content, err := mgr.GetChapterContent(nil, 1, chapter.ID)
	require.NoError(t, err)
	require.Empty(t, content.Questions)
}

func TestGetChapterContent_MissingChapter(t *testing.T) {
	db := newTestDB(t)
	mgr := NewManager(db)

	_, err := mgr.GetChapterContent(nil, 1, 9999)
	require.ErrorIs(t, err, ErrChapterNotFound)
}

func TestGetCourseProgress(t *testing.T) {
	db := newTestDB(t)
	mgr := NewManager(db)
	user := seedUser(t, db)
	course := seedCourse(t, db, true)

	_, err := mgr.GetCourseProgress(user.ID, course.ID)
	require.ErrorIs(t, err, ErrProgressNotFound)

	_, err = mgr.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	record, err := mgr.GetCourseProgress(user.ID, course.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, record.UserID)
	require.Empty(t, record.CompletedChapters)
}
