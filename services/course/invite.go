package course

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseModels "praxis/models/course"
	"praxis/utils"
)

// GenerateOrGetInvite returns the course's self-enrollment token, creating
// one only if none exists yet. Calling it again while the link is enabled is
// idempotent; calling it after a disable re-enables the same token so
// previously shared URLs stay valid.
func GenerateOrGetInvite(db *gorm.DB, courseID uint) (*courseModels.Course, *Error) {
	var crs courseModels.Course

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).Where("id = ? AND is_deleted = ?", courseID, false).First(&crs).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fail(fiber.StatusNotFound, "Course not found!")
			}
			return err
		}

		if crs.Status == courseModels.StatusArchived {
			return fail(fiber.StatusUnprocessableEntity, "Course is archived!")
		}
		if crs.Version < 1 {
			return fail(fiber.StatusUnprocessableEntity, "Course is not published yet!")
		}

		if crs.InviteToken != nil && crs.InviteEnabled {
			return nil
		}

		if crs.InviteToken == nil {
			token := utils.GenerateInviteToken()
			crs.InviteToken = &token
		}
		crs.InviteEnabled = true

		return tx.Save(&crs).Error
	})
	if err != nil {
		return nil, asServiceError(err)
	}

	return &crs, nil
}

// DisableInvite revokes the link but keeps the token value, so a later
// re-enable hands out the same URL instead of invalidating shared ones.
func DisableInvite(db *gorm.DB, courseID uint) (*courseModels.Course, *Error) {
	var crs courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&crs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fail(fiber.StatusNotFound, "Course not found!")
		}
		return nil, asServiceError(err)
	}

	if crs.InviteToken == nil {
		return nil, fail(fiber.StatusNotFound, "No invite link exists for this course!")
	}

	if err := db.Model(&crs).Update("invite_enabled", false).Error; err != nil {
		return nil, asServiceError(err)
	}
	crs.InviteEnabled = false

	return &crs, nil
}

// ResolveSelfEnroll enrolls the calling patient via an invite token. A
// revoked link or archived course answers 410: the link existed and is gone,
// which is different from never having existed (404) or being forbidden.
func ResolveSelfEnroll(db *gorm.DB, token string, patientID uint) (*courseModels.Enrollment, *Error) {
	var crs courseModels.Course
	if err := db.Where("invite_token = ? AND is_deleted = ?", token, false).First(&crs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fail(fiber.StatusNotFound, "Invite link not found!")
		}
		return nil, asServiceError(err)
	}

	if !crs.InviteEnabled {
		return nil, fail(fiber.StatusGone, "This invite link has been revoked!")
	}
	if crs.Status == courseModels.StatusArchived {
		return nil, fail(fiber.StatusGone, "This course is no longer available!")
	}
	if crs.Version < 1 {
		return nil, fail(fiber.StatusUnprocessableEntity, "Course is not published yet!")
	}

	return Enroll(db, crs.ID, patientID)
}
