package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"praxis/database"
	"praxis/middleware"
	courseService "praxis/services/course"
	"praxis/utils"
)

// AdminGenerateInvite creates or returns the course's self-enrollment link
func AdminGenerateInvite(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	crs, errResp := loadOwnedCourse(c, courseID)
	if crs == nil {
		return errResp
	}

	updated, svcErr := courseService.GenerateOrGetInvite(database.Database.Db, crs.ID)
	if svcErr != nil {
		return middleware.JsonResponse(c, svcErr.Status, false, svcErr.Message, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Invite link ready!", fiber.Map{
		"invite_token":   *updated.InviteToken,
		"invite_enabled": updated.InviteEnabled,
		"join_url":       utils.JoinURL(*updated.InviteToken),
	})
}

// AdminDisableInvite revokes the link without discarding the token
func AdminDisableInvite(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	crs, errResp := loadOwnedCourse(c, courseID)
	if crs == nil {
		return errResp
	}

	updated, svcErr := courseService.DisableInvite(database.Database.Db, crs.ID)
	if svcErr != nil {
		return middleware.JsonResponse(c, svcErr.Status, false, svcErr.Message, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Invite link disabled!", fiber.Map{
		"invite_enabled": updated.InviteEnabled,
	})
}

// AdminEmailInvite mails the join link to a patient address
func AdminEmailInvite(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	crs, errResp := loadOwnedCourse(c, courseID)
	if crs == nil {
		return errResp
	}

	reqData, ok := c.Locals("validatedInviteEmail").(*struct {
		Email string `json:"email" validate:"required,email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	updated, svcErr := courseService.GenerateOrGetInvite(database.Database.Db, crs.ID)
	if svcErr != nil {
		return middleware.JsonResponse(c, svcErr.Status, false, svcErr.Message, nil)
	}

	go func(email, title, joinURL string) {
		if err := utils.SendInviteEmail(email, title, joinURL); err != nil {
			log.Printf("[INVITE] Failed to email invite for course %d: %v", crs.ID, err)
		}
	}(reqData.Email, updated.Title, utils.JoinURL(*updated.InviteToken))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Invite email queued!", nil)
}
