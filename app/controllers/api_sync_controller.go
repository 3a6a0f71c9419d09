package controllers

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/DennisWallner/HostDesk/internal/pkg/controlpanel"
	"github.com/DennisWallner/HostDesk/internal/pkg/database"
)

var (
	syncService     *controlpanel.Service
	syncServiceOnce sync.Once
)

func getSyncService() *controlpanel.Service {
	syncServiceOnce.Do(func() {
		syncService = controlpanel.NewServiceFromDB(database.GetDB())
	})
	return syncService
}

// HandleSyncHosting pushes one hosting instance to its control panel.
func HandleSyncHosting(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid hosting id")
	}

	result, err := getSyncService().SyncHosting(c.UserContext(), id)
	if err != nil {
		return syncErrorResponse(c, err, "hosting")
	}

	return c.JSON(fiber.Map{
		"account_id":      result.AccountID,
		"subscription_id": result.SubscriptionID,
		"action":          result.Action,
		"warnings":        result.Warnings,
	})
}

// HandleSyncVPS pushes one VPS instance to its control panel.
func HandleSyncVPS(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid vps id")
	}

	result, err := getSyncService().SyncVPS(c.UserContext(), id)
	if err != nil {
		return syncErrorResponse(c, err, "vps")
	}

	return c.JSON(fiber.Map{
		"account_id":      result.AccountID,
		"subscription_id": result.SubscriptionID,
		"action":          result.Action,
		"warnings":        result.Warnings,
	})
}

// HandleSyncWebsite pushes one website to its control panel.
func HandleSyncWebsite(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid website id")
	}

	result, err := getSyncService().SyncWebsite(c.UserContext(), id)
	if err != nil {
		return syncErrorResponse(c, err, "website")
	}

	return c.JSON(fiber.Map{
		"account_id":          result.AccountID,
		"external_website_id": result.ExternalWebsiteID,
		"already_existed":     result.AlreadyExisted,
		"domain_updated":      result.DomainUpdated,
		"warnings":            result.Warnings,
	})
}

// syncErrorResponse maps sync failures onto HTTP statuses.
func syncErrorResponse(c *fiber.Ctx, err error, entity string) error {
	status, code := classifySyncError(err)
	if status >= fiber.StatusInternalServerError {
		log.Errorf("Sync of %s failed: %v", entity, err)
	}
	return jsonError(c, status, code, err.Error())
}

func classifySyncError(err error) (int, string) {
	switch {
	case controlpanel.IsNotFound(err):
		return fiber.StatusNotFound, "not_found"
	case controlpanel.IsMappingNotFound(err):
		return fiber.StatusUnprocessableEntity, "mapping_not_found"
	case controlpanel.IsConfigError(err):
		return fiber.StatusUnprocessableEntity, "config_error"
	case controlpanel.IsRemoteConflict(err):
		return fiber.StatusConflict, "remote_conflict"
	case controlpanel.IsRemoteTransient(err):
		return fiber.StatusBadGateway, "remote_unavailable"
	default:
		return fiber.StatusInternalServerError, "sync_failed"
	}
}
