package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"praxis/database"
	"praxis/middleware"
	"praxis/models"
)

// AdminCreateExercise adds a catalog exercise
func AdminCreateExercise(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedExercise").(*struct {
		Name          string         `json:"name"`
		Description   string         `json:"description"`
		MediaURL      string         `json:"media_url"`
		DefaultParams datatypes.JSON `json:"default_params"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	exercise := models.Exercise{
		Name:          reqData.Name,
		Description:   reqData.Description,
		MediaURL:      reqData.MediaURL,
		DefaultParams: reqData.DefaultParams,
	}

	if err := database.Database.Db.Create(&exercise).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create exercise!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Exercise created successfully!", exercise)
}

// GetExercises lists catalog exercises for authoring
func GetExercises(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Exercise{}).Where("is_deleted = ?", false)

	if search := c.Query("search"); search != "" {
		db = db.Where("name ILIKE ?", "%"+search+"%")
	}

	var exercises []models.Exercise
	if err := db.Order("name asc").Find(&exercises).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch exercises!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exercises fetched successfully!", exercises)
}
