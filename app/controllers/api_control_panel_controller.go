package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DennisWallner/HostDesk/app/models"
	"github.com/DennisWallner/HostDesk/app/repository"
)

// HandleListControlPanels returns all configured control panels.
func HandleListControlPanels(c *fiber.Ctx) error {
	panels, err := repository.GetGlobalFactory().GetControlPanelRepository().GetAll()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load control panels")
	}
	return c.JSON(fiber.Map{"control_panels": panels, "total": len(panels)})
}

// HandleGetControlPanel returns one control panel by id.
func HandleGetControlPanel(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid control panel id")
	}

	panel, err := repository.GetGlobalFactory().GetControlPanelRepository().GetByID(id)
	if err != nil {
		return handleRepoError(c, err, "control panel")
	}
	return c.JSON(panel)
}

// HandleCreateControlPanel registers a new control panel.
func HandleCreateControlPanel(c *fiber.Ctx) error {
	var panel models.ControlPanel
	if err := c.BodyParser(&panel); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	panel.ID = 0
	if panel.Type == "" {
		panel.Type = models.ControlPanelTypeEnhance
	}
	if panel.Type != models.ControlPanelTypeEnhance {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", "Unsupported control panel type")
	}

	if err := repository.GetGlobalFactory().GetControlPanelRepository().Create(&panel); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create control panel")
	}
	return c.Status(fiber.StatusCreated).JSON(panel)
}

// HandleUpdateControlPanel updates a control panel configuration.
func HandleUpdateControlPanel(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid control panel id")
	}

	repo := repository.GetGlobalFactory().GetControlPanelRepository()
	panel, err := repo.GetByID(id)
	if err != nil {
		return handleRepoError(c, err, "control panel")
	}

	if err := c.BodyParser(panel); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	panel.ID = id
	if panel.Type != models.ControlPanelTypeEnhance {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", "Unsupported control panel type")
	}

	if err := repo.Update(panel); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update control panel")
	}
	return c.JSON(panel)
}

// HandleDeleteControlPanel removes a control panel configuration.
func HandleDeleteControlPanel(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid control panel id")
	}

	if err := repository.GetGlobalFactory().GetControlPanelRepository().Delete(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete control panel")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
