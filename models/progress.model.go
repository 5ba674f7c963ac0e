package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserProgress is the per-(user, course) aggregate of completed chapters.
// Exactly one record exists per pair, created at enrollment time.
// CompletionPercentage and OverallScore are written once at creation and
// never recomputed by any operation.
type UserProgress struct {
	gorm.Model
	UserID                uint                `json:"user_id" gorm:"not null;uniqueIndex:idx_progress_user_course"`
	CourseID              uint                `json:"course_id" gorm:"not null;uniqueIndex:idx_progress_user_course"`
	LastAccessedChapterID *uint               `json:"last_accessed_chapter_id"`
	LastAccessedAt        time.Time           `json:"last_accessed_at"`
	CompletionPercentage  float64             `json:"completion_percentage" gorm:"default:0"`
	OverallScore          int                 `json:"overall_score" gorm:"default:0"`
	CompletedChapters     []ChapterCompletion `json:"completed_chapters" gorm:"foreignKey:UserProgressID"`
}

// ChapterCompletion records the latest submission for one chapter.
// Resubmitting replaces the entry in place; only the last score survives.
type ChapterCompletion struct {
	gorm.Model
	UserProgressID     uint           `json:"user_progress_id" gorm:"not null;uniqueIndex:idx_completion_progress_chapter"`
	ChapterID          uint           `json:"chapter_id" gorm:"not null;uniqueIndex:idx_completion_progress_chapter"`
	Score              int            `json:"score" gorm:"default:0"`
	TotalPossibleScore int            `json:"total_possible_score" gorm:"default:0"`
	CompletedAt        time.Time      `json:"completed_at"`
	Answers            datatypes.JSON `json:"answers"`
}

// AnswerRecord is one per-question outcome inside ChapterCompletion.Answers.
type AnswerRecord struct {
	QuestionID   uint   `json:"question_id"`
	UserAnswer   string `json:"user_answer"`
	IsCorrect    bool   `json:"is_correct"`
	PointsEarned int    `json:"points_earned"`
}
