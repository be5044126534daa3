package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LessonContent is the lesson payload shared by draft lessons and published
// snapshots. Exercises holds the exercise references copied by value from the
// catalog at authoring time (id, name, media_url, parameters), so later
// catalog edits never change authored content.
type LessonContent struct {
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	VideoURL    string         `json:"video_url"`
	Exercises   datatypes.JSON `json:"exercises"`
}

// Lesson is the mutable draft row owned by a course while authoring.
// Position is the 0-based ordinal within the course.
type Lesson struct {
	gorm.Model
	CourseID      uint `json:"course_id" gorm:"not null;uniqueIndex:idx_course_position"`
	Position      int  `json:"position" gorm:"not null;uniqueIndex:idx_course_position"`
	LessonContent `gorm:"embedded"`
}

func (Lesson) TableName() string {
	return "lessons"
}
