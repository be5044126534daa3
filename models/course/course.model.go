package course

import "gorm.io/gorm"

// CourseStatus enum values
const (
	StatusDraft    = "DRAFT"
	StatusActive   = "ACTIVE"
	StatusArchived = "ARCHIVED"
)

// UnlockMode enum values
const (
	UnlockSequential = "SEQUENTIAL"
	UnlockAllAtOnce  = "ALL_AT_ONCE"
)

// Course is the master entity for a therapist-authored course.
// Version starts at 0 and is bumped on every publish, so version > 0 means
// at least one snapshot generation exists. ARCHIVED is terminal.
type Course struct {
	gorm.Model
	TherapistID   uint    `json:"therapist_id" gorm:"index;not null"`
	Title         string  `json:"title" gorm:"not null"`
	Description   string  `json:"description" gorm:"type:text"`
	Status        string  `json:"status" gorm:"not null;type:varchar(20);default:'DRAFT'"` // DRAFT, ACTIVE, ARCHIVED
	Version       int     `json:"version" gorm:"not null;default:0"`
	UnlockMode    string  `json:"unlock_mode" gorm:"not null;type:varchar(20);default:'SEQUENTIAL'"` // SEQUENTIAL, ALL_AT_ONCE
	InviteToken   *string `json:"invite_token,omitempty" gorm:"uniqueIndex"`
	InviteEnabled bool    `json:"invite_enabled" gorm:"default:false"`
	IsDeleted     bool    `gorm:"default:false"`
}

func (Course) TableName() string {
	return "courses"
}
