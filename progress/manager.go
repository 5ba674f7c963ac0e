// Package progress implements the enrollment manager and the
// progress/scoring engine on top of an explicit gorm handle.
package progress

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"learnhub/models"

	"gorm.io/gorm"
)

// Manager owns enrollment state and per-chapter scoring. It never touches
// ambient globals; callers hand it the database at construction time.
type Manager struct {
	db *gorm.DB
}

func NewManager(db *gorm.DB) *Manager {
	return &Manager{db: db}
}

// Enroll links a user to a course and creates the initial progress record.
//
// The enrollment row and the progress record are two separate writes with
// no transaction between them; a crash in between leaves the pair half
// enrolled. The composite unique indexes on both tables are the safety net
// for concurrent first-time enrollments: the loser's duplicate-key error is
// reported as ErrAlreadyEnrolled.
func (m *Manager) Enroll(userID, courseID uint) (*models.Enrollment, error) {
	var user models.User
	if err := m.db.Where("id = ? AND is_deleted = ? AND is_active = ?", userID, false, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var course models.Course
	if err := m.db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	var existing models.Enrollment
	if err := m.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return nil, ErrAlreadyEnrolled
	}

	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Status:   "ENROLLED",
	}
	if err := m.db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}

	record := models.UserProgress{
		UserID:         userID,
		CourseID:       courseID,
		LastAccessedAt: time.Now(),
	}
	if err := m.db.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}

	return &enrollment, nil
}

// SubmitResult is the outcome of one chapter submission.
type SubmitResult struct {
	Score         int `json:"score"`
	TotalPossible int `json:"total_possible"`
	Percentage    int `json:"percentage"`
}

// SubmitAnswers grades a learner's answers for one chapter and upserts the
// chapter's completion entry. answers maps question id to the submitted text.
//
// Only questions that were actually answered contribute to TotalPossible, so
// a partially answered chapter is graded against the answered subset, not
// the whole chapter. Percentage is 0 when nothing gradable was submitted.
func (m *Manager) SubmitAnswers(userID, courseID, chapterID uint, answers map[uint]string) (*SubmitResult, error) {
	// Reject before grading: no partial credit is ever persisted for
	// users without a progress record.
	var record models.UserProgress
	if err := m.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEnrolled
		}
		return nil, err
	}

	var chapter models.Chapter
	if err := m.db.Where("id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChapterNotFound
		}
		return nil, err
	}

	var questions []models.Question
	if err := m.db.Where("chapter_id = ? AND is_deleted = ?", chapterID, false).Find(&questions).Error; err != nil {
		return nil, err
	}

	score := 0
	totalPossible := 0
	results := make([]models.AnswerRecord, 0, len(answers))

	for i := range questions {
		question := &questions[i]
		userAnswer, ok := answers[question.ID]
		if !ok {
			continue
		}

		totalPossible += question.Points

		correct, err := m.grade(question, userAnswer)
		if err != nil {
			return nil, err
		}

		earned := 0
		if correct {
			earned = question.Points
			score += earned
		}

		results = append(results, models.AnswerRecord{
			QuestionID:   question.ID,
			UserAnswer:   userAnswer,
			IsCorrect:    correct,
			PointsEarned: earned,
		})
	}

	answersJSON, err := json.Marshal(results)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	// Upsert by (progress, chapter): only the latest submission survives.
	var completion models.ChapterCompletion
	err = m.db.Where("user_progress_id = ? AND chapter_id = ?", record.ID, chapterID).First(&completion).Error
	switch {
	case err == nil:
		completion.Score = score
		completion.TotalPossibleScore = totalPossible
		completion.CompletedAt = now
		completion.Answers = answersJSON
		if err := m.db.Save(&completion).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		completion = models.ChapterCompletion{
			UserProgressID:     record.ID,
			ChapterID:          chapterID,
			Score:              score,
			TotalPossibleScore: totalPossible,
			CompletedAt:        now,
			Answers:            answersJSON,
		}
		if err := m.db.Create(&completion).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	percentage := 0
	if totalPossible > 0 {
		percentage = int(math.Round(float64(score) / float64(totalPossible) * 100))
	}

	return &SubmitResult{
		Score:         score,
		TotalPossible: totalPossible,
		Percentage:    percentage,
	}, nil
}

// grade checks one submitted answer against the question.
func (m *Manager) grade(question *models.Question, userAnswer string) (bool, error) {
	switch question.Type {
	case models.QuestionMCQ:
		var options []models.QuestionOption
		if err := m.db.Where("question_id = ? AND is_deleted = ?", question.ID, false).Find(&options).Error; err != nil {
			return false, err
		}
		// The submitted value may be an option id or the option's
		// literal text. No match means incorrect.
		needle := strings.TrimSpace(userAnswer)
		for _, option := range options {
			if strconv.FormatUint(uint64(option.ID), 10) == needle || option.Text == userAnswer {
				return option.IsCorrect, nil
			}
		}
		return false, nil
	case models.QuestionAudio:
		// No canonical answer exists for audio questions; they cannot
		// be auto-graded.
		return false, nil
	default:
		canonical := strings.TrimSpace(question.CorrectAnswer)
		if canonical == "" {
			return false, nil
		}
		return strings.EqualFold(strings.TrimSpace(userAnswer), canonical), nil
	}
}

// ChapterContent is a chapter plus its questions and MCQ options.
type ChapterContent struct {
	Chapter   models.Chapter        `json:"chapter"`
	Questions []QuestionWithOptions `json:"questions"`
}

type QuestionWithOptions struct {
	models.Question
	Options []models.QuestionOption `json:"options,omitempty"`
}

// GetChapterContent loads a chapter with its questions. When a caller
// identity is present the user's last-accessed pointer is updated as a
// best-effort side effect; a missing progress record is silently ignored.
func (m *Manager) GetChapterContent(userID *uint, courseID, chapterID uint) (*ChapterContent, error) {
	var chapter models.Chapter
	if err := m.db.Where("id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChapterNotFound
		}
		return nil, err
	}

	var questions []models.Question
	if err := m.db.Where("chapter_id = ? AND is_deleted = ?", chapterID, false).Order("id asc").Find(&questions).Error; err != nil {
		return nil, err
	}

	content := &ChapterContent{Chapter: chapter, Questions: make([]QuestionWithOptions, len(questions))}
	for i, question := range questions {
		content.Questions[i] = QuestionWithOptions{Question: question}
		if question.Type != models.QuestionMCQ {
			continue
		}
		var options []models.QuestionOption
		if err := m.db.Where("question_id = ? AND is_deleted = ?", question.ID, false).Order("order_index asc").Find(&options).Error; err != nil {
			return nil, err
		}
		content.Questions[i].Options = options
	}

	if userID != nil {
		m.touchLastAccessed(*userID, courseID, chapterID)
	}

	return content, nil
}

// touchLastAccessed is a write triggered by a read; failures are dropped.
func (m *Manager) touchLastAccessed(userID, courseID, chapterID uint) {
	m.db.Model(&models.UserProgress{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Updates(map[string]interface{}{
			"last_accessed_chapter_id": chapterID,
			"last_accessed_at":         time.Now(),
		})
}

// GetCourseProgress returns the progress record for (user, course) with its
// completed-chapter entries.
func (m *Manager) GetCourseProgress(userID, courseID uint) (*models.UserProgress, error) {
	var record models.UserProgress
	err := m.db.Preload("CompletedChapters").
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgressNotFound
		}
		return nil, err
	}
	return &record, nil
}
