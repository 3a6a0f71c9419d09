package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DennisWallner/HostDesk/app/models"
	"github.com/DennisWallner/HostDesk/app/repository"
)

// HandleListCustomers returns a paginated customer list, optionally filtered by a search query.
func HandleListCustomers(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetCustomerRepository()

	if query := c.Query("q"); query != "" {
		customers, err := repo.Search(query)
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Search failed")
		}
		return c.JSON(fiber.Map{"customers": customers, "total": len(customers)})
	}

	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	customers, err := repo.List(offset, limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load customers")
	}
	total, err := repo.Count()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to count customers")
	}

	return c.JSON(fiber.Map{"customers": customers, "total": total})
}

// HandleGetCustomer returns one customer by id.
func HandleGetCustomer(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid customer id")
	}

	customer, err := repository.GetGlobalFactory().GetCustomerRepository().GetByID(id)
	if err != nil {
		return handleRepoError(c, err, "customer")
	}
	return c.JSON(customer)
}

// HandleCreateCustomer creates a new customer.
func HandleCreateCustomer(c *fiber.Ctx) error {
	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	customer.ID = 0

	if err := customer.Validate(); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	if err := repository.GetGlobalFactory().GetCustomerRepository().Create(&customer); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create customer")
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// HandleUpdateCustomer updates an existing customer.
func HandleUpdateCustomer(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid customer id")
	}

	repo := repository.GetGlobalFactory().GetCustomerRepository()
	customer, err := repo.GetByID(id)
	if err != nil {
		return handleRepoError(c, err, "customer")
	}

	if err := c.BodyParser(customer); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	customer.ID = id

	if err := customer.Validate(); err != nil {
		return jsonError(c, fiber.StatusUnprocessableEntity, "validation_failed", err.Error())
	}

	if err := repo.Update(customer); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update customer")
	}
	return c.JSON(customer)
}

// HandleDeleteCustomer soft deletes a customer.
func HandleDeleteCustomer(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid customer id")
	}

	if err := repository.GetGlobalFactory().GetCustomerRepository().Delete(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete customer")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
