package course

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	courseModels "praxis/models/course"
)

// lockForUpdate takes an exclusive row lock so concurrent publishes (and
// enrolls racing a publish) serialize on the course row. SQLite has no
// FOR UPDATE but serializes writers on its own.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// Publish freezes the course's draft lessons into a new immutable snapshot
// generation and bumps the version. Everything happens in one transaction:
// a crash mid-publish leaves the prior generation as the only visible one,
// and no reader ever observes a partially written generation.
func Publish(db *gorm.DB, courseID uint) (*courseModels.Course, *Error) {
	var published courseModels.Course

	err := db.Transaction(func(tx *gorm.DB) error {
		var crs courseModels.Course
		if err := lockForUpdate(tx).Where("id = ? AND is_deleted = ?", courseID, false).First(&crs).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fail(fiber.StatusNotFound, "Course not found!")
			}
			return err
		}

		if crs.Status == courseModels.StatusArchived {
			return fail(fiber.StatusUnprocessableEntity, "Course is archived and can no longer be published!")
		}

		var lessons []courseModels.Lesson
		if err := tx.Where("course_id = ?", crs.ID).Order("position asc").Find(&lessons).Error; err != nil {
			return err
		}
		if len(lessons) == 0 {
			return fail(fiber.StatusUnprocessableEntity, "Cannot publish a course with no lessons!")
		}

		nextVersion := crs.Version + 1

		snapshots := make([]courseModels.LessonSnapshot, 0, len(lessons))
		for _, lesson := range lessons {
			snapshots = append(snapshots, courseModels.LessonSnapshot{
				CourseID:      crs.ID,
				Version:       nextVersion,
				LessonID:      lesson.ID,
				Position:      lesson.Position,
				LessonContent: lesson.LessonContent,
			})
		}

		// One batched insert, not per-row inserts with early returns: the
		// whole generation lands or none of it does.
		if err := tx.Create(&snapshots).Error; err != nil {
			return err
		}

		if err := tx.Model(&crs).Updates(map[string]interface{}{
			"version": nextVersion,
			"status":  courseModels.StatusActive,
		}).Error; err != nil {
			return err
		}

		crs.Version = nextVersion
		crs.Status = courseModels.StatusActive
		published = crs
		return nil
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	return &published, nil
}

// Archive is terminal: no further publish or enroll once a course is archived.
func Archive(db *gorm.DB, courseID uint) (*courseModels.Course, *Error) {
	var crs courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&crs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fail(fiber.StatusNotFound, "Course not found!")
		}
		return nil, asServiceError(err)
	}

	if crs.Status == courseModels.StatusArchived {
		return nil, fail(fiber.StatusUnprocessableEntity, "Course is already archived!")
	}

	if err := db.Model(&crs).Update("status", courseModels.StatusArchived).Error; err != nil {
		return nil, asServiceError(err)
	}
	crs.Status = courseModels.StatusArchived

	return &crs, nil
}
