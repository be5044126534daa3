package controllers

import (
	"github.com/gofiber/fiber/v2"

	"praxis/database"
	"praxis/middleware"
	"praxis/models"
	courseModels "praxis/models/course"
	courseService "praxis/services/course"
)

// AdminEnrollPatient enrolls (or re-enrolls) a patient on the staff's behalf
func AdminEnrollPatient(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	crs, errResp := loadOwnedCourse(c, courseID)
	if crs == nil {
		return errResp
	}

	reqData, ok := c.Locals("validatedEnrollPatient").(*struct {
		PatientID uint `json:"patient_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var patient models.User
	if err := database.Database.Db.Where("id = ? AND role = ? AND is_deleted = ?",
		reqData.PatientID, models.RolePatient, false).First(&patient).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Patient not found!", nil)
	}

	enrollment, svcErr := courseService.Enroll(database.Database.Db, crs.ID, patient.ID)
	if svcErr != nil {
		return middleware.JsonResponse(c, svcErr.Status, false, svcErr.Message, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Patient enrolled successfully!", enrollment)
}

// AdminListEnrollments lists a course's enrollments with optional status filter
func AdminListEnrollments(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	crs, errResp := loadOwnedCourse(c, courseID)
	if crs == nil {
		return errResp
	}

	reqData, _ := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Enrollment{}).Where("course_id = ?", crs.ID)

	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	db.Count(&total)

	var enrollments []courseModels.Enrollment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	response := map[string]interface{}{
		"enrollments": enrollments,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", response)
}

// AdminCancelEnrollment cancels an active enrollment
func AdminCancelEnrollment(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(uint)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	// Ownership runs through the course
	if crs, errResp := loadOwnedCourse(c, enrollment.CourseID); crs == nil {
		return errResp
	}

	cancelled, svcErr := courseService.Cancel(database.Database.Db, enrollment.ID)
	if svcErr != nil {
		return middleware.JsonResponse(c, svcErr.Status, false, svcErr.Message, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment cancelled successfully!", cancelled)
}
