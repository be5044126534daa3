package course

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseModels "praxis/models/course"
)

// Enroll creates a patient's enrollment pinned to the course's current
// version, or re-activates a completed/cancelled one. Re-enrolling re-pins to
// the current version and discards every prior completion in the same
// transaction: old completion rows reference lesson ids whose meaning is
// scoped to the old generation, so carrying them forward would corrupt the
// unlock computation.
func Enroll(db *gorm.DB, courseID, patientID uint) (*courseModels.Enrollment, *Error) {
	var enrollment courseModels.Enrollment

	err := db.Transaction(func(tx *gorm.DB) error {
		var crs courseModels.Course
		if err := lockForUpdate(tx).Where("id = ? AND is_deleted = ?", courseID, false).First(&crs).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fail(fiber.StatusNotFound, "Course not found!")
			}
			return err
		}

		if crs.Status == courseModels.StatusArchived {
			return fail(fiber.StatusUnprocessableEntity, "Course is archived!")
		}
		if crs.Status != courseModels.StatusActive || crs.Version < 1 {
			return fail(fiber.StatusUnprocessableEntity, "Course is not published yet!")
		}

		now := time.Now()

		var existing courseModels.Enrollment
		err := tx.Where("course_id = ? AND patient_id = ?", crs.ID, patientID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			enrollment = courseModels.Enrollment{
				CourseID:        crs.ID,
				PatientID:       patientID,
				EnrolledVersion: crs.Version,
				Status:          courseModels.EnrollmentActive,
				EnrolledAt:      now,
			}
			return tx.Create(&enrollment).Error
		}
		if err != nil {
			return err
		}

		if existing.Status == courseModels.EnrollmentActive {
			return fail(fiber.StatusConflict, "Patient is already enrolled in this course!")
		}

		// Re-enroll: re-pin to the current version, clear terminal timestamps
		// and drop stale completions. Status flip and cascade delete commit
		// together or not at all.
		if err := existing.TransitionTo(courseModels.EnrollmentActive); err != nil {
			return fail(fiber.StatusConflict, "Enrollment cannot be re-activated!")
		}
		existing.EnrolledVersion = crs.Version
		existing.EnrolledAt = now
		existing.CompletedAt = nil
		existing.CancelledAt = nil

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		if err := tx.Where("enrollment_id = ?", existing.ID).Delete(&courseModels.Completion{}).Error; err != nil {
			return err
		}

		enrollment = existing
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	return &enrollment, nil
}

// Cancel moves an active enrollment to CANCELLED. Any other source status is
// a conflict.
func Cancel(db *gorm.DB, enrollmentID uint) (*courseModels.Enrollment, *Error) {
	var enrollment courseModels.Enrollment
	if err := db.Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fail(fiber.StatusNotFound, "Enrollment not found!")
		}
		return nil, asServiceError(err)
	}

	if err := enrollment.TransitionTo(courseModels.EnrollmentCancelled); err != nil {
		return nil, fail(fiber.StatusConflict, "Only an active enrollment can be cancelled!")
	}
	now := time.Now()
	enrollment.CancelledAt = &now

	if err := db.Save(&enrollment).Error; err != nil {
		return nil, asServiceError(err)
	}

	return &enrollment, nil
}
