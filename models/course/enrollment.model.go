package course

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// EnrollmentStatus enum values
const (
	EnrollmentActive    = "ACTIVE"
	EnrollmentCompleted = "COMPLETED"
	EnrollmentCancelled = "CANCELLED"
)

// Enrollment pins one patient to one course generation. There is at most one
// row per (course, patient); status changes in place rather than creating new
// rows. EnrolledVersion always refers to an existing snapshot generation.
type Enrollment struct {
	gorm.Model
	CourseID        uint       `json:"course_id" gorm:"not null;uniqueIndex:idx_course_patient"`
	PatientID       uint       `json:"patient_id" gorm:"not null;uniqueIndex:idx_course_patient"`
	EnrolledVersion int        `json:"enrolled_version" gorm:"not null"`
	Status          string     `json:"status" gorm:"not null;type:varchar(20);default:'ACTIVE'"` // ACTIVE, COMPLETED, CANCELLED
	EnrolledAt      time.Time  `json:"enrolled_at"`
	CompletedAt     *time.Time `json:"completed_at"`
	CancelledAt     *time.Time `json:"cancelled_at"`

	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// legal status transitions: ACTIVE may complete or cancel, and a finished
// enrollment may be re-activated (re-enroll).
var enrollmentTransitions = map[string][]string{
	EnrollmentActive:    {EnrollmentCompleted, EnrollmentCancelled},
	EnrollmentCompleted: {EnrollmentActive},
	EnrollmentCancelled: {EnrollmentActive},
}

// TransitionTo moves the enrollment to the next status, rejecting any edge
// not in the state machine.
func (e *Enrollment) TransitionTo(next string) error {
	for _, allowed := range enrollmentTransitions[e.Status] {
		if allowed == next {
			e.Status = next
			return nil
		}
	}
	return fmt.Errorf("illegal enrollment transition %s -> %s", e.Status, next)
}
