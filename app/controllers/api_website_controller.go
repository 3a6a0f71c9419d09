package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DennisWallner/HostDesk/app/models"
	"github.com/DennisWallner/HostDesk/app/repository"
)

// HandleListWebsites returns a paginated list of websites.
func HandleListWebsites(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetWebsiteRepository()

	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	websites, err := repo.List(offset, limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load websites")
	}
	total, err := repo.Count()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to count websites")
	}

	return c.JSON(fiber.Map{"websites": websites, "total": total})
}

// HandleGetWebsite returns one website by id.
func HandleGetWebsite(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid website id")
	}

	website, err := repository.GetGlobalFactory().GetWebsiteRepository().GetByID(id)
	if err != nil {
		return handleRepoError(c, err, "website")
	}
	return c.JSON(website)
}

// HandleCreateWebsite creates a new website record.
func HandleCreateWebsite(c *fiber.Ctx) error {
	var website models.Website
	if err := c.BodyParser(&website); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	website.ID = 0
	website.SyncStatus = models.SyncStatusNotSynced
	website.ExternalAccountID = ""
	website.ExternalWebsiteID = ""
	website.LastSyncedAt = nil

	if err := repository.GetGlobalFactory().GetWebsiteRepository().Create(&website); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create website")
	}
	return c.Status(fiber.StatusCreated).JSON(website)
}

// HandleUpdateWebsite updates a website record. Sync-owned columns are not
// writable through this endpoint.
func HandleUpdateWebsite(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid website id")
	}

	repo := repository.GetGlobalFactory().GetWebsiteRepository()
	website, err := repo.GetByID(id)
	if err != nil {
		return handleRepoError(c, err, "website")
	}

	keepAccount := website.ExternalAccountID
	keepWebsiteID := website.ExternalWebsiteID
	keepStatus := website.SyncStatus
	keepSyncedAt := website.LastSyncedAt

	if err := c.BodyParser(website); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	website.ID = id
	website.ExternalAccountID = keepAccount
	website.ExternalWebsiteID = keepWebsiteID
	website.SyncStatus = keepStatus
	website.LastSyncedAt = keepSyncedAt

	if err := repo.Update(website); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update website")
	}
	return c.JSON(website)
}

// HandleDeleteWebsite soft deletes a website record.
func HandleDeleteWebsite(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid website id")
	}

	if err := repository.GetGlobalFactory().GetWebsiteRepository().Delete(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete website")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
