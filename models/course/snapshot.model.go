package course

import "time"

// LessonSnapshot is the immutable copy of a draft lesson frozen at publish
// time. Rows are only ever inserted, never updated or deleted; the full set
// for a (course_id, version) pair is exactly the draft set that existed at
// the instant of that publish. No UpdatedAt/DeletedAt on purpose.
type LessonSnapshot struct {
	ID            uint `json:"id" gorm:"primaryKey"`
	CourseID      uint `json:"course_id" gorm:"not null;uniqueIndex:idx_course_version_lesson"`
	Version       int  `json:"version" gorm:"not null;uniqueIndex:idx_course_version_lesson"`
	LessonID      uint `json:"lesson_id" gorm:"not null;uniqueIndex:idx_course_version_lesson"`
	Position      int  `json:"position" gorm:"not null"`
	LessonContent `gorm:"embedded"`
	CreatedAt     time.Time `json:"created_at"`
}

func (LessonSnapshot) TableName() string {
	return "lesson_snapshots"
}
