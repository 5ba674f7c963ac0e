package models

import "gorm.io/gorm"

// Question kinds.
const (
	QuestionMCQ       = "MCQ"
	QuestionFillBlank = "FILL_BLANK"
	QuestionText      = "TEXT"
	QuestionAudio     = "AUDIO"
)

// Question belongs to exactly one chapter. CorrectAnswer is the canonical
// answer for TEXT and FILL_BLANK questions; MCQ correctness lives on the
// options and AUDIO questions carry no canonical answer at all.
type Question struct {
	gorm.Model
	ChapterID     uint   `json:"chapter_id" gorm:"index;not null"`
	Text          string `json:"text" gorm:"type:text"`
	Type          string `json:"type" gorm:"not null"`
	CorrectAnswer string `json:"-"`
	Points        int    `json:"points" gorm:"default:1"`
	MediaType     string `json:"media_type" gorm:"default:'NONE'"` // NONE, IMAGE, AUDIO
	MediaURL      string `json:"media_url"`
	IsDeleted     bool   `json:"-" gorm:"default:false"`
}

// QuestionOption is one selectable answer of an MCQ question.
type QuestionOption struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"-" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}
