package course

import "time"

// Completion records one completed lesson per enrollment. Append-only: the
// unique index on (enrollment_id, lesson_id) makes concurrent duplicate
// inserts resolve to exactly one success. LessonID is scoped to the snapshot
// generation referenced by the enrollment's EnrolledVersion.
type Completion struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	EnrollmentID uint      `json:"enrollment_id" gorm:"not null;uniqueIndex:idx_enrollment_lesson"`
	LessonID     uint      `json:"lesson_id" gorm:"not null;uniqueIndex:idx_enrollment_lesson"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Completion) TableName() string {
	return "completions"
}
