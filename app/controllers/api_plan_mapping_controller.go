package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DennisWallner/HostDesk/app/models"
	"github.com/DennisWallner/HostDesk/app/repository"
)

// HandleListPlanMappings returns all plan mappings of a control panel.
func HandleListPlanMappings(c *fiber.Ctx) error {
	panelID, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid control panel id")
	}

	mappings, err := repository.GetGlobalFactory().GetPlanMappingRepository().GetByPanelID(panelID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load plan mappings")
	}
	return c.JSON(fiber.Map{"plan_mappings": mappings, "total": len(mappings)})
}

// HandleCreatePlanMapping creates a plan mapping for a control panel. A local
// plan may have at most one mapping per panel.
func HandleCreatePlanMapping(c *fiber.Ctx) error {
	panelID, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid control panel id")
	}

	var mapping models.ControlPanelPlanMapping
	if err := c.BodyParser(&mapping); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	mapping.ID = 0
	mapping.ControlPanelID = panelID

	if mapping.LocalPlanType != models.PlanTypeHosting && mapping.LocalPlanType != models.PlanTypeVPS {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", "local_plan_type must be hosting or vps")
	}
	if mapping.LocalPlanID == 0 || mapping.ExternalPlanID == "" {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", "local_plan_id and external_plan_id are required")
	}

	repo := repository.GetGlobalFactory().GetPlanMappingRepository()
	exists, err := repo.LocalMappingExists(panelID, mapping.LocalPlanType, mapping.LocalPlanID, 0)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to check plan mapping")
	}
	if exists {
		return jsonError(c, fiber.StatusConflict, "conflict", "A mapping for this local plan already exists")
	}

	if err := repo.Create(&mapping); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create plan mapping")
	}
	return c.Status(fiber.StatusCreated).JSON(mapping)
}

// HandleUpdatePlanMapping updates an existing plan mapping.
func HandleUpdatePlanMapping(c *fiber.Ctx) error {
	mappingID, err := parseIDParam(c, "mappingId")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid plan mapping id")
	}

	repo := repository.GetGlobalFactory().GetPlanMappingRepository()
	mapping, err := repo.GetByID(mappingID)
	if err != nil {
		return handleRepoError(c, err, "plan mapping")
	}

	panelID := mapping.ControlPanelID
	if err := c.BodyParser(mapping); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	mapping.ID = mappingID
	mapping.ControlPanelID = panelID

	if mapping.LocalPlanType != models.PlanTypeHosting && mapping.LocalPlanType != models.PlanTypeVPS {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", "local_plan_type must be hosting or vps")
	}
	if mapping.LocalPlanID == 0 || mapping.ExternalPlanID == "" {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", "local_plan_id and external_plan_id are required")
	}

	exists, err := repo.LocalMappingExists(panelID, mapping.LocalPlanType, mapping.LocalPlanID, mappingID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to check plan mapping")
	}
	if exists {
		return jsonError(c, fiber.StatusConflict, "conflict", "A mapping for this local plan already exists")
	}

	if err := repo.Update(mapping); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update plan mapping")
	}
	return c.JSON(mapping)
}

// HandleDeletePlanMapping removes a plan mapping.
func HandleDeletePlanMapping(c *fiber.Ctx) error {
	mappingID, err := parseIDParam(c, "mappingId")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid plan mapping id")
	}

	if err := repository.GetGlobalFactory().GetPlanMappingRepository().Delete(mappingID); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete plan mapping")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
