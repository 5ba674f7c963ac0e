package models

import "gorm.io/gorm"

// Enrollment links a user to a course. The composite unique index makes
// the storage layer the final arbiter on concurrent first-time enrollments.
type Enrollment struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_enroll_user_course"`
	CourseID uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_enroll_user_course"`
	Status   string `json:"status" gorm:"default:'ENROLLED'"`
	User     User   `json:"-" gorm:"foreignKey:UserID"`
	Course   Course `json:"course" gorm:"foreignKey:CourseID"`
}
