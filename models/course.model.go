package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course is the root of the content hierarchy. Sections, units and
// chapters reference their parent by id; nothing cascades on delete.
type Course struct {
	gorm.Model
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Thumbnail       string         `json:"thumbnail"`
	CreatorID       uint           `json:"creator_id" gorm:"index;not null"`
	Level           string         `json:"level" gorm:"default:'BEGINNER'"` // BEGINNER, INTERMEDIATE, ADVANCED
	Tags            datatypes.JSON `json:"tags"`
	Duration        int64          `json:"duration" gorm:"default:0"` // total duration in minutes
	IsPublished     bool           `json:"is_published" gorm:"default:false"`
	EnrollmentCount int            `json:"enrollment_count" gorm:"default:0"`
	IsDeleted       bool           `json:"-" gorm:"default:false"`
}

// Section groups units inside a course. OrderIndex orders siblings;
// neither contiguity nor uniqueness is enforced.
type Section struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}

// Unit groups chapters inside a section.
type Unit struct {
	gorm.Model
	SectionID   uint   `json:"section_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}

// Chapter is the leaf content unit holding learning material and questions.
type Chapter struct {
	gorm.Model
	UnitID     uint   `json:"unit_id" gorm:"index;not null"`
	Title      string `json:"title"`
	Content    string `json:"content" gorm:"type:text"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	MediaType  string `json:"media_type" gorm:"default:'NONE'"` // NONE, IMAGE, VIDEO, AUDIO
	MediaURL   string `json:"media_url"`
	Duration   int    `json:"duration" gorm:"default:0"` // minutes
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}
