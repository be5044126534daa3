package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Exercise is a catalog entry therapists pick from while authoring lessons.
// Its values are copied into lesson content at authoring time, so editing the
// catalog never changes already-authored or published lessons.
type Exercise struct {
	gorm.Model
	Name          string         `json:"name" gorm:"not null"`
	Description   string         `json:"description" gorm:"type:text"`
	MediaURL      string         `json:"media_url"`
	DefaultParams datatypes.JSON `json:"default_params"` // e.g. {"sets": 3, "reps": 12, "hold_seconds": 0}
	IsDeleted     bool           `gorm:"default:false"`
}

func (Exercise) TableName() string {
	return "exercises"
}
