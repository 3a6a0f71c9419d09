package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DennisWallner/HostDesk/app/models"
	"github.com/DennisWallner/HostDesk/app/repository"
)

// HandleListVPS returns a paginated list of VPS instances.
func HandleListVPS(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetVPSRepository()

	if status := c.Query("sync_status"); status != "" {
		servers, err := repo.ListBySyncStatus(status)
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load vps list")
		}
		return c.JSON(fiber.Map{"vps": servers, "total": len(servers)})
	}

	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	servers, err := repo.List(offset, limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load vps list")
	}
	total, err := repo.Count()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to count vps")
	}

	return c.JSON(fiber.Map{"vps": servers, "total": total})
}

// HandleGetVPS returns one VPS instance by id.
func HandleGetVPS(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid vps id")
	}

	vps, err := repository.GetGlobalFactory().GetVPSRepository().GetByID(id)
	if err != nil {
		return handleRepoError(c, err, "vps")
	}
	return c.JSON(vps)
}

// HandleCreateVPS creates a new VPS instance.
func HandleCreateVPS(c *fiber.Ctx) error {
	var vps models.VPS
	if err := c.BodyParser(&vps); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	vps.ID = 0
	vps.SyncStatus = models.SyncStatusNotSynced
	vps.SyncMetadata = ""
	vps.ExternalAccountID = ""
	vps.LastSyncedAt = nil

	if err := repository.GetGlobalFactory().GetVPSRepository().Create(&vps); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create vps")
	}
	return c.Status(fiber.StatusCreated).JSON(vps)
}

// HandleUpdateVPS updates a VPS instance. Sync-owned columns are not writable
// through this endpoint.
func HandleUpdateVPS(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid vps id")
	}

	repo := repository.GetGlobalFactory().GetVPSRepository()
	vps, err := repo.GetByID(id)
	if err != nil {
		return handleRepoError(c, err, "vps")
	}

	keepAccount := vps.ExternalAccountID
	keepStatus := vps.SyncStatus
	keepMeta := vps.SyncMetadata
	keepSyncedAt := vps.LastSyncedAt

	if err := c.BodyParser(vps); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	vps.ID = id
	vps.ExternalAccountID = keepAccount
	vps.SyncStatus = keepStatus
	vps.SyncMetadata = keepMeta
	vps.LastSyncedAt = keepSyncedAt

	if err := repo.Update(vps); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update vps")
	}
	return c.JSON(vps)
}

// HandleDeleteVPS soft deletes a VPS instance.
func HandleDeleteVPS(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid vps id")
	}

	if err := repository.GetGlobalFactory().GetVPSRepository().Delete(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete vps")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
