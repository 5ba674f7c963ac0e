package utils

import (
	"fmt"
	"testing"

	"learnhub/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestReconcileEnrollmentCounts(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Course{}, &models.Enrollment{}))

	course := models.Course{Title: "Intro to X", Description: "basics", CreatorID: 1, IsPublished: true}
	require.NoError(t, db.Create(&course).Error)

	for i := 0; i < 3; i++ {
		user := models.User{Email: fmt.Sprintf("u%d@example.com", i), Password: "hash", IsActive: true}
		require.NoError(t, db.Create(&user).Error)
		require.NoError(t, db.Create(&models.Enrollment{UserID: user.ID, CourseID: course.ID}).Error)
	}

	// Enrollment never increments the counter; only the job does
	var before models.Course
	require.NoError(t, db.First(&before, course.ID).Error)
	require.Zero(t, before.EnrollmentCount)

	ReconcileEnrollmentCounts(db)

	var after models.Course
	require.NoError(t, db.First(&after, course.ID).Error)
	require.Equal(t, 3, after.EnrollmentCount)
}
