package course

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	courseModels "praxis/models/course"
)

// LessonInput is one draft lesson in a bulk ordered replace. Position comes
// from the slice order, not from the client.
type LessonInput struct {
	Title       string         `json:"title" validate:"required,min=3"`
	Description string         `json:"description"`
	VideoURL    string         `json:"video_url" validate:"omitempty,url"`
	Exercises   datatypes.JSON `json:"exercises"`
}

// ReplaceLessons swaps the course's entire draft lesson set for the given
// ordered list in one transaction. Draft edits never touch published
// snapshots; already-enrolled patients keep seeing their pinned generation.
func ReplaceLessons(db *gorm.DB, courseID uint, inputs []LessonInput) ([]courseModels.Lesson, *Error) {
	var lessons []courseModels.Lesson

	err := db.Transaction(func(tx *gorm.DB) error {
		var crs courseModels.Course
		if err := lockForUpdate(tx).Where("id = ? AND is_deleted = ?", courseID, false).First(&crs).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fail(fiber.StatusNotFound, "Course not found!")
			}
			return err
		}

		if crs.Status == courseModels.StatusArchived {
			return fail(fiber.StatusUnprocessableEntity, "Course is archived and can no longer be edited!")
		}

		// Hard delete so the (course_id, position) unique index frees up for
		// the replacement rows.
		if err := tx.Unscoped().Where("course_id = ?", crs.ID).Delete(&courseModels.Lesson{}).Error; err != nil {
			return err
		}

		lessons = make([]courseModels.Lesson, 0, len(inputs))
		for i, input := range inputs {
			lessons = append(lessons, courseModels.Lesson{
				CourseID: crs.ID,
				Position: i,
				LessonContent: courseModels.LessonContent{
					Title:       input.Title,
					Description: input.Description,
					VideoURL:    input.VideoURL,
					Exercises:   input.Exercises,
				},
			})
		}
		if len(lessons) == 0 {
			return nil
		}

		return tx.Create(&lessons).Error
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	return lessons, nil
}

// Snapshots returns the immutable lesson set of one generation in order.
func Snapshots(db *gorm.DB, courseID uint, version int) ([]courseModels.LessonSnapshot, *Error) {
	var snapshots []courseModels.LessonSnapshot
	if err := db.Where("course_id = ? AND version = ?", courseID, version).
		Order("position asc").Find(&snapshots).Error; err != nil {
		return nil, asServiceError(err)
	}
	return snapshots, nil
}
