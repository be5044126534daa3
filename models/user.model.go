package models

import (
	"time"

	"gorm.io/gorm"
)

// Role enum values
const (
	RolePatient   = "PATIENT"
	RoleTherapist = "THERAPIST"
	RoleAdmin     = "ADMIN"
)

type User struct {
	gorm.Model
	ProfileImage string    `gorm:"default:''"`
	Name         string    `gorm:"default:''"`
	Email        string    `gorm:"unique;not null"`
	Mobile       string    `gorm:"default:''"`
	Role         string    `gorm:"default:'PATIENT'"` // PATIENT, THERAPIST, ADMIN
	Password     string    `gorm:"not null" json:"-"`
	LastLogin    time.Time `gorm:"default:NULL"`
	IsDeleted    bool      `gorm:"default:false"`
}
