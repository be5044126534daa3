package course

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseModels "praxis/models/course"
)

// LessonState is one lesson of the enrollment's pinned generation with its
// per-enrollment completion and unlock flags.
type LessonState struct {
	courseModels.LessonSnapshot
	IsCompleted bool `json:"is_completed"`
	IsUnlocked  bool `json:"is_unlocked"`
}

// CompleteResult carries the inserted completion plus whether this insert was
// the one that finished the whole enrollment.
type CompleteResult struct {
	Completion       courseModels.Completion `json:"completion"`
	CourseCompleted  bool                    `json:"course_completed"`
	CompletedLessons int64                   `json:"completed_lessons"`
	TotalLessons     int64                   `json:"total_lessons"`
}

// CompleteLesson records a lesson completion for the caller's active
// enrollment. Membership is checked against the enrollment's own pinned
// generation, the sequential gate against the immediately preceding position,
// and the auto-completion comparison runs in the same transaction as the
// insert, exactly once per successful insert.
func CompleteLesson(db *gorm.DB, enrollmentID, lessonID, callerPatientID uint) (*CompleteResult, *Error) {
	var result CompleteResult

	err := db.Transaction(func(tx *gorm.DB) error {
		var enrollment courseModels.Enrollment
		if err := lockForUpdate(tx).Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fail(fiber.StatusNotFound, "Enrollment not found!")
			}
			return err
		}
		// Fold "someone else's enrollment" into not-found rather than
		// leaking its existence.
		if enrollment.PatientID != callerPatientID {
			return fail(fiber.StatusNotFound, "Enrollment not found!")
		}
		if enrollment.Status != courseModels.EnrollmentActive {
			return fail(fiber.StatusConflict, "Enrollment is not active!")
		}

		var crs courseModels.Course
		if err := tx.Where("id = ?", enrollment.CourseID).First(&crs).Error; err != nil {
			return err
		}

		var snapshot courseModels.LessonSnapshot
		if err := tx.Where("course_id = ? AND version = ? AND lesson_id = ?",
			enrollment.CourseID, enrollment.EnrolledVersion, lessonID).First(&snapshot).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fail(fiber.StatusNotFound, "Lesson not found in this enrollment!")
			}
			return err
		}

		if crs.UnlockMode == courseModels.UnlockSequential && snapshot.Position > 0 {
			var previous courseModels.LessonSnapshot
			if err := tx.Where("course_id = ? AND version = ? AND position = ?",
				enrollment.CourseID, enrollment.EnrolledVersion, snapshot.Position-1).First(&previous).Error; err != nil {
				return err
			}
			var done int64
			if err := tx.Model(&courseModels.Completion{}).
				Where("enrollment_id = ? AND lesson_id = ?", enrollment.ID, previous.LessonID).
				Count(&done).Error; err != nil {
				return err
			}
			if done == 0 {
				return fail(fiber.StatusUnprocessableEntity, "Previous lesson must be completed first!")
			}
		}

		completion := courseModels.Completion{
			EnrollmentID: enrollment.ID,
			LessonID:     lessonID,
		}
		if err := tx.Create(&completion).Error; err != nil {
			// The unique index on (enrollment_id, lesson_id) turns a
			// concurrent duplicate into exactly one success and one conflict.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fail(fiber.StatusConflict, "Lesson already completed!")
			}
			return err
		}

		var completed, total int64
		if err := tx.Model(&courseModels.Completion{}).
			Where("enrollment_id = ?", enrollment.ID).Count(&completed).Error; err != nil {
			return err
		}
		if err := tx.Model(&courseModels.LessonSnapshot{}).
			Where("course_id = ? AND version = ?", enrollment.CourseID, enrollment.EnrolledVersion).
			Count(&total).Error; err != nil {
			return err
		}

		result = CompleteResult{Completion: completion, CompletedLessons: completed, TotalLessons: total}

		if completed == total {
			if err := enrollment.TransitionTo(courseModels.EnrollmentCompleted); err != nil {
				return err
			}
			now := time.Now()
			enrollment.CompletedAt = &now
			if err := tx.Save(&enrollment).Error; err != nil {
				return err
			}
			result.CourseCompleted = true
		}

		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	return &result, nil
}

// LessonStates computes the read-path unlock view for the caller's
// enrollment: every lesson of the pinned generation in order, flagged with
// is_completed and is_unlocked. No mutation.
func LessonStates(db *gorm.DB, enrollmentID, callerPatientID uint) (*courseModels.Enrollment, []LessonState, *Error) {
	var enrollment courseModels.Enrollment
	if err := db.Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fail(fiber.StatusNotFound, "Enrollment not found!")
		}
		return nil, nil, asServiceError(err)
	}
	if enrollment.PatientID != callerPatientID {
		return nil, nil, fail(fiber.StatusNotFound, "Enrollment not found!")
	}

	var crs courseModels.Course
	if err := db.Where("id = ?", enrollment.CourseID).First(&crs).Error; err != nil {
		return nil, nil, asServiceError(err)
	}

	snapshots, svcErr := Snapshots(db, enrollment.CourseID, enrollment.EnrolledVersion)
	if svcErr != nil {
		return nil, nil, svcErr
	}

	var completions []courseModels.Completion
	if err := db.Where("enrollment_id = ?", enrollment.ID).Find(&completions).Error; err != nil {
		return nil, nil, asServiceError(err)
	}
	completedSet := make(map[uint]bool, len(completions))
	for _, completion := range completions {
		completedSet[completion.LessonID] = true
	}

	states := make([]LessonState, len(snapshots))
	for i, snapshot := range snapshots {
		unlocked := crs.UnlockMode == courseModels.UnlockAllAtOnce ||
			snapshot.Position == 0 ||
			(i > 0 && completedSet[snapshots[i-1].LessonID])
		states[i] = LessonState{
			LessonSnapshot: snapshot,
			IsCompleted:    completedSet[snapshot.LessonID],
			IsUnlocked:     unlocked,
		}
	}

	return &enrollment, states, nil
}
