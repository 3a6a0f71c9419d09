package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/DennisWallner/HostDesk/app/models"
	"github.com/DennisWallner/HostDesk/app/repository"
)

// HandleListInvoices returns a paginated list of invoices. With ?overdue=true
// only open invoices past due are returned.
func HandleListInvoices(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetInvoiceRepository()

	if c.QueryBool("overdue", false) {
		invoices, err := repo.ListOverdue()
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load invoices")
		}
		return c.JSON(fiber.Map{"invoices": invoices, "total": len(invoices)})
	}

	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	invoices, err := repo.List(offset, limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load invoices")
	}
	total, err := repo.Count()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to count invoices")
	}

	return c.JSON(fiber.Map{"invoices": invoices, "total": total})
}

// HandleGetInvoice returns one invoice by id.
func HandleGetInvoice(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid invoice id")
	}

	invoice, err := repository.GetGlobalFactory().GetInvoiceRepository().GetByID(id)
	if err != nil {
		return handleRepoError(c, err, "invoice")
	}
	return c.JSON(invoice)
}

// HandleCreateInvoice creates a new invoice.
func HandleCreateInvoice(c *fiber.Ctx) error {
	var invoice models.Invoice
	if err := c.BodyParser(&invoice); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	invoice.ID = 0
	if invoice.Status == "" {
		invoice.Status = models.InvoiceStatusOpen
	}
	invoice.ReminderSentAt = nil
	invoice.ReminderCount = 0

	if err := repository.GetGlobalFactory().GetInvoiceRepository().Create(&invoice); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create invoice")
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// HandleMarkInvoicePaid marks an open invoice as paid.
func HandleMarkInvoicePaid(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid invoice id")
	}

	repo := repository.GetGlobalFactory().GetInvoiceRepository()
	invoice, err := repo.GetByID(id)
	if err != nil {
		return handleRepoError(c, err, "invoice")
	}

	if invoice.Status == models.InvoiceStatusPaid {
		return c.JSON(invoice)
	}
	if invoice.Status == models.InvoiceStatusCanceled {
		return jsonError(c, fiber.StatusConflict, "conflict", "Canceled invoices cannot be marked paid")
	}

	now := time.Now()
	invoice.Status = models.InvoiceStatusPaid
	invoice.PaidAt = &now

	if err := repo.Update(invoice); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update invoice")
	}
	return c.JSON(invoice)
}

// HandleCancelInvoice cancels an open invoice.
func HandleCancelInvoice(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid invoice id")
	}

	repo := repository.GetGlobalFactory().GetInvoiceRepository()
	invoice, err := repo.GetByID(id)
	if err != nil {
		return handleRepoError(c, err, "invoice")
	}

	if invoice.Status == models.InvoiceStatusPaid {
		return jsonError(c, fiber.StatusConflict, "conflict", "Paid invoices cannot be canceled")
	}
	invoice.Status = models.InvoiceStatusCanceled

	if err := repo.Update(invoice); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update invoice")
	}
	return c.JSON(invoice)
}
