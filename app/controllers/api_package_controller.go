package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DennisWallner/HostDesk/app/models"
	"github.com/DennisWallner/HostDesk/app/repository"
)

// HandleListHostingPackages returns all hosting packages.
func HandleListHostingPackages(c *fiber.Ctx) error {
	pkgs, err := repository.GetGlobalFactory().GetPackageRepository().ListHostingPackages()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load hosting packages")
	}
	return c.JSON(fiber.Map{"hosting_packages": pkgs, "total": len(pkgs)})
}

// HandleCreateHostingPackage creates a new hosting package.
func HandleCreateHostingPackage(c *fiber.Ctx) error {
	var pkg models.HostingPackage
	if err := c.BodyParser(&pkg); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	pkg.ID = 0

	if err := repository.GetGlobalFactory().GetPackageRepository().CreateHostingPackage(&pkg); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create hosting package")
	}
	return c.Status(fiber.StatusCreated).JSON(pkg)
}

// HandleUpdateHostingPackage updates an existing hosting package.
func HandleUpdateHostingPackage(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid package id")
	}

	repo := repository.GetGlobalFactory().GetPackageRepository()
	pkg, err := repo.GetHostingPackageByID(id)
	if err != nil {
		return handleRepoError(c, err, "hosting package")
	}

	if err := c.BodyParser(pkg); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	pkg.ID = id

	if err := repo.UpdateHostingPackage(pkg); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update hosting package")
	}
	return c.JSON(pkg)
}

// HandleDeleteHostingPackage removes a hosting package.
func HandleDeleteHostingPackage(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid package id")
	}

	if err := repository.GetGlobalFactory().GetPackageRepository().DeleteHostingPackage(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete hosting package")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListVPSPackages returns all VPS packages.
func HandleListVPSPackages(c *fiber.Ctx) error {
	pkgs, err := repository.GetGlobalFactory().GetPackageRepository().ListVPSPackages()
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to load vps packages")
	}
	return c.JSON(fiber.Map{"vps_packages": pkgs, "total": len(pkgs)})
}

// HandleCreateVPSPackage creates a new VPS package.
func HandleCreateVPSPackage(c *fiber.Ctx) error {
	var pkg models.VPSPackage
	if err := c.BodyParser(&pkg); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	pkg.ID = 0

	if err := repository.GetGlobalFactory().GetPackageRepository().CreateVPSPackage(&pkg); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to create vps package")
	}
	return c.Status(fiber.StatusCreated).JSON(pkg)
}

// HandleUpdateVPSPackage updates an existing VPS package.
func HandleUpdateVPSPackage(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid package id")
	}

	repo := repository.GetGlobalFactory().GetPackageRepository()
	pkg, err := repo.GetVPSPackageByID(id)
	if err != nil {
		return handleRepoError(c, err, "vps package")
	}

	if err := c.BodyParser(pkg); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid request body")
	}
	pkg.ID = id

	if err := repo.UpdateVPSPackage(pkg); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to update vps package")
	}
	return c.JSON(pkg)
}

// HandleDeleteVPSPackage removes a VPS package.
func HandleDeleteVPSPackage(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "bad_request", "Invalid package id")
	}

	if err := repository.GetGlobalFactory().GetPackageRepository().DeleteVPSPackage(id); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", "Failed to delete vps package")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
