package utils

import (
	"log"
	"time"

	"learnhub/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

func logScheduler(message string) {
	log.Printf("[ENROLL-STATS %s] %s", time.Now().Format(time.RFC3339), message)
}

// ReconcileEnrollmentCounts recomputes Course.EnrollmentCount from the
// enrollment table. Enrollment itself never touches the counter; this job
// is its only writer.
func ReconcileEnrollmentCounts(db *gorm.DB) {
	var courses []models.Course
	if err := db.Where("is_deleted = ?", false).Find(&courses).Error; err != nil {
		logScheduler("failed to list courses: " + err.Error())
		return
	}

	updated := 0
	for i := range courses {
		course := &courses[i]

		var count int64
		if err := db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&count).Error; err != nil {
			logScheduler("failed to count enrollments for course " + course.Title + ": " + err.Error())
			continue
		}

		if course.EnrollmentCount == int(count) {
			continue
		}

		if err := db.Model(&models.Course{}).Where("id = ?", course.ID).
			Update("enrollment_count", count).Error; err != nil {
			logScheduler("failed to update course " + course.Title + ": " + err.Error())
			continue
		}
		updated++
	}

	if updated > 0 {
		logScheduler("reconciled enrollment counts")
	}
}

// StartEnrollmentStatsScheduler runs the reconciliation on the configured
// cron spec and returns the scheduler for shutdown.
func StartEnrollmentStatsScheduler(db *gorm.DB, spec string) *cron.Cron {
	scheduler := cron.New()
	_, err := scheduler.AddFunc(spec, func() {
		ReconcileEnrollmentCounts(db)
	})
	if err != nil {
		log.Printf("Invalid ENROLL_STATS_CRON spec %q: %v", spec, err)
		return scheduler
	}

	scheduler.Start()
	logScheduler("scheduler started with spec " + spec)
	return scheduler
}
