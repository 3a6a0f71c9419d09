package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DennisWallner/HostDesk/app/models"
	"github.com/DennisWallner/HostDesk/app/repository"
	"github.com/DennisWallner/HostDesk/internal/pkg/database"
)

// HandleGetSettings returns the current application settings.
func HandleGetSettings(c *fiber.Ctx) error {
	settings := models.GetAppSettings()
	if settings == nil {
		if err := models.LoadSettings(database.GetDB()); err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load settings")
		}
		settings = models.GetAppSettings()
	}
	return c.JSON(settings)
}

// HandleUpdateSettings replaces the application settings.
func HandleUpdateSettings(c *fiber.Ctx) error {
	var settings models.AppSettings
	if err := c.BodyParser(&settings); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	if err := repository.GetGlobalFactory().GetSettingRepository().Save(&settings); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}
	return c.JSON(&settings)
}
