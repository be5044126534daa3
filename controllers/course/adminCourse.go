package controllers

import (
	"github.com/gofiber/fiber/v2"

	"praxis/database"
	"praxis/middleware"
	"praxis/models"
	courseModels "praxis/models/course"
	courseService "praxis/services/course"
)

// loadOwnedCourse fetches the course and folds "someone else's course" into
// not-found so staff cannot probe for other therapists' course ids. Admins
// see everything.
func loadOwnedCourse(c *fiber.Ctx, courseID uint) (*courseModels.Course, error) {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var crs courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&crs).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if user.Role != models.RoleAdmin && crs.TherapistID != user.ID {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return &crs, nil
}

// AdminCreateCourse creates a new draft course owned by the caller
func AdminCreateCourse(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		UnlockMode  string `json:"unlock_mode"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	crs := courseModels.Course{
		TherapistID: user.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		UnlockMode:  reqData.UnlockMode,
		Status:      courseModels.StatusDraft,
	}

	if err := database.Database.Db.Create(&crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", crs)
}

// AdminUpdateCourse updates draft metadata of an existing course
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	crs, errResp := loadOwnedCourse(c, courseID)
	if crs == nil {
		return errResp
	}

	if crs.Status == courseModels.StatusArchived {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Course is archived and can no longer be edited!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		UnlockMode  string `json:"unlock_mode"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Title != "" {
		crs.Title = reqData.Title
	}
	if reqData.Description != "" {
		crs.Description = reqData.Description
	}
	if reqData.UnlockMode != "" {
		crs.UnlockMode = reqData.UnlockMode
	}

	if err := database.Database.Db.Save(crs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", crs)
}

// AdminGetAllCourses lists the caller's courses (all courses for admins)
func AdminGetAllCourses(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
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

	db := database.Database.Db.Model(&courseModels.Course{}).Where("is_deleted = ?", false)
	if user.Role != models.RoleAdmin {
		db = db.Where("therapist_id = ?", user.ID)
	}

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := map[string]interface{}{
		"courses": courses,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// AdminGetCourseDetails returns the authoring view: course plus ordered draft lessons
func AdminGetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	crs, errResp := loadOwnedCourse(c, courseID)
	if crs == nil {
		return errResp
	}

	var lessons []courseModels.Lesson
	if err := database.Database.Db.Where("course_id = ?", crs.ID).Order("position asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":  crs,
		"lessons": lessons,
	})
}

// AdminReplaceLessons replaces the full ordered draft lesson set
func AdminReplaceLessons(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	crs, errResp := loadOwnedCourse(c, courseID)
	if crs == nil {
		return errResp
	}

	inputs, ok := c.Locals("validatedLessons").([]courseService.LessonInput)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lessons, svcErr := courseService.ReplaceLessons(database.Database.Db, crs.ID, inputs)
	if svcErr != nil {
		return middleware.JsonResponse(c, svcErr.Status, false, svcErr.Message, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons replaced successfully!", lessons)
}

// AdminPublishCourse freezes the draft into a new immutable generation
func AdminPublishCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	crs, errResp := loadOwnedCourse(c, courseID)
	if crs == nil {
		return errResp
	}

	published, svcErr := courseService.Publish(database.Database.Db, crs.ID)
	if svcErr != nil {
		return middleware.JsonResponse(c, svcErr.Status, false, svcErr.Message, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", published)
}

// AdminArchiveCourse archives a course; terminal, no further publish or enroll
func AdminArchiveCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	crs, errResp := loadOwnedCourse(c, courseID)
	if crs == nil {
		return errResp
	}

	archived, svcErr := courseService.Archive(database.Database.Db, crs.ID)
	if svcErr != nil {
		return middleware.JsonResponse(c, svcErr.Status, false, svcErr.Message, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course archived successfully!", archived)
}
