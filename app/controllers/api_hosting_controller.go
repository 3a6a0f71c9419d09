package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DennisWallner/HostDesk/app/models"
	"github.com/DennisWallner/HostDesk/app/repository"
)

// HandleListHostings returns a paginated list of hosting instances.
func HandleListHostings(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetHostingRepository()

	if status := c.Query("sync_status"); status != "" {
		hostings, err := repo.ListBySyncStatus(status)
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load hostings")
		}
		return c.JSON(fiber.Map{"hostings": hostings, "total": len(hostings)})
	}

	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	hostings, err := repo.List(offset, limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load hostings")
	}
	total, err := repo.Count()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to count hostings")
	}

	return c.JSON(fiber.Map{"hostings": hostings, "total": total})
}

// HandleGetHosting returns one hosting instance by id.
func HandleGetHosting(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid hosting id")
	}

	hosting, err := repository.GetGlobalFactory().GetHostingRepository().GetByID(id)
	if err != nil {
		return handleRepoError(c, err, "hosting")
	}
	return c.JSON(hosting)
}

// HandleCreateHosting creates a new hosting instance.
func HandleCreateHosting(c *fiber.Ctx) error {
	var hosting models.Hosting
	if err := c.BodyParser(&hosting); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	hosting.ID = 0
	hosting.SyncStatus = models.SyncStatusNotSynced
	hosting.SyncMetadata = ""
	hosting.ExternalAccountID = ""
	hosting.LastSyncedAt = nil

	if err := repository.GetGlobalFactory().GetHostingRepository().Create(&hosting); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create hosting")
	}
	return c.Status(fiber.StatusCreated).JSON(hosting)
}

// HandleUpdateHosting updates a hosting instance. Sync-owned columns are not
// writable through this endpoint.
func HandleUpdateHosting(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid hosting id")
	}

	repo := repository.GetGlobalFactory().GetHostingRepository()
	hosting, err := repo.GetByID(id)
	if err != nil {
		return handleRepoError(c, err, "hosting")
	}

	keepAccount := hosting.ExternalAccountID
	keepStatus := hosting.SyncStatus
	keepMeta := hosting.SyncMetadata
	keepSyncedAt := hosting.LastSyncedAt

	if err := c.BodyParser(hosting); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	hosting.ID = id
	hosting.ExternalAccountID = keepAccount
	hosting.SyncStatus = keepStatus
	hosting.SyncMetadata = keepMeta
	hosting.LastSyncedAt = keepSyncedAt

	if err := repo.Update(hosting); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update hosting")
	}
	return c.JSON(hosting)
}

// HandleDeleteHosting soft deletes a hosting instance.
func HandleDeleteHosting(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid hosting id")
	}

	if err := repository.GetGlobalFactory().GetHostingRepository().Delete(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete hosting")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
