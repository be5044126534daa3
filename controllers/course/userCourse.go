package controllers

import (
	"github.com/gofiber/fiber/v2"

	"praxis/database"
	"praxis/middleware"
	courseModels "praxis/models/course"
	courseService "praxis/services/course"
	"praxis/utils"
)

// JoinViaInvite self-enrolls the caller using an invite token
func JoinViaInvite(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	token := c.Locals("inviteToken").(string)

	enrollment, svcErr := courseService.ResolveSelfEnroll(database.Database.Db, token, userID)
	if svcErr != nil {
		return middleware.JsonResponse(c, svcErr.Status, false, svcErr.Message, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// GetMyEnrollments lists the caller's enrollments
func GetMyEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
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

	db := database.Database.Db.Model(&courseModels.Enrollment{}).Where("patient_id = ?", userID).Preload("Course")

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

// GetEnrollmentDetail returns the caller's enrollment with its pinned
// generation's lessons and per-lesson completion/unlock state
func GetEnrollmentDetail(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(uint)

	enrollment, states, svcErr := courseService.LessonStates(database.Database.Db, enrollmentID, userID)
	if svcErr != nil {
		return middleware.JsonResponse(c, svcErr.Status, false, svcErr.Message, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", fiber.Map{
		"enrollment": enrollment,
		"lessons":    states,
	})
}

// CompleteLesson marks one lesson of the caller's enrollment as completed
func CompleteLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(uint)
	lessonID := c.Locals("lessonID").(uint)

	result, svcErr := courseService.CompleteLesson(database.Database.Db, enrollmentID, lessonID, userID)
	if svcErr != nil {
		return middleware.JsonResponse(c, svcErr.Status, false, svcErr.Message, nil)
	}

	if result.CourseCompleted {
		go utils.SendPush(userID, "Course completed!", "You finished every lesson. Well done!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson marked as completed!", result)
}
