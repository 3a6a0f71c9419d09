package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DennisWallner/HostDesk/app/models"
	"github.com/DennisWallner/HostDesk/app/repository"
	"github.com/DennisWallner/HostDesk/internal/pkg/usercontext"
)

// HandleGetOperatorAccount returns account information for the authenticated operator.
func HandleGetOperatorAccount(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Missing or invalid authentication")
	}

	account, err := repository.GetGlobalFactory().GetUserRepository().GetByID(userCtx.UserID)
	if err != nil {
		return handleRepoError(c, err, "operator")
	}

	return c.JSON(fiber.Map{
		"id":                   account.ID,
		"name":                 account.Name,
		"email":                account.Email,
		"role":                 account.Role,
		"status":               account.Status,
		"api_key_prefix":       account.APIKeyPrefix,
		"api_key_created_at":   formatTimePtr(account.APIKeyCreatedAt),
		"api_key_last_used_at": formatTimePtr(account.APIKeyLastUsedAt),
		"last_login_at":        formatTimePtr(account.LastLoginAt),
	})
}

type createOperatorRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// HandleCreateOperator creates a new operator account. Admin only.
func HandleCreateOperator(c *fiber.Ctx) error {
	var req createOperatorRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}

	user, err := models.CreateUser(req.Name, req.Email, req.Password)
	if err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}
	if req.Role == models.ROLE_ADMIN {
		user.Role = models.ROLE_ADMIN
	}

	if err := repository.GetGlobalFactory().GetUserRepository().Create(user); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create operator")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleIssueAPIKey issues a fresh API key for the authenticated operator. The
// raw key is returned exactly once.
func HandleIssueAPIKey(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Missing or invalid authentication")
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	account, err := repo.GetByID(userCtx.UserID)
	if err != nil {
		return handleRepoError(c, err, "operator")
	}

	rawKey, err := account.IssueAPIKey()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to generate API key")
	}
	if err := repo.Update(account); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to store API key")
	}

	return c.JSON(fiber.Map{
		"api_key":        rawKey,
		"api_key_prefix": account.APIKeyPrefix,
		"created_at":     formatTimePtr(account.APIKeyCreatedAt),
	})
}

// HandleRevokeAPIKey revokes the authenticated operator's API key.
func HandleRevokeAPIKey(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Missing or invalid authentication")
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	account, err := repo.GetByID(userCtx.UserID)
	if err != nil {
		return handleRepoError(c, err, "operator")
	}

	account.RevokeAPIKey()
	if err := repo.Update(account); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to revoke API key")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
