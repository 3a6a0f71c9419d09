package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/DennisWallner/HostDesk/app/controllers"
	"github.com/DennisWallner/HostDesk/internal/pkg/middleware"
	"github.com/DennisWallner/HostDesk/internal/pkg/ratelimit"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		Storage:    ratelimit.NewStorage(),
	}))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "HostDesk API",
		})
	})

	// All v1 routes require an operator API key.
	v1 := api.Group("/v1", middleware.APIKeyAuthMiddleware())

	// Operator account
	v1.Get("/account", controllers.HandleGetOperatorAccount)
	v1.Post("/account/api-key", controllers.HandleIssueAPIKey)
	v1.Delete("/account/api-key", controllers.HandleRevokeAPIKey)
	v1.Post("/operators", middleware.RequireAdmin, controllers.HandleCreateOperator)

	// Customers
	v1.Get("/customers", controllers.HandleListCustomers)
	v1.Post("/customers", controllers.HandleCreateCustomer)
	v1.Get("/customers/:id", controllers.HandleGetCustomer)
	v1.Put("/customers/:id", controllers.HandleUpdateCustomer)
	v1.Delete("/customers/:id", controllers.HandleDeleteCustomer)

	// Hosting instances
	v1.Get("/hostings", controllers.HandleListHostings)
	v1.Post("/hostings", controllers.HandleCreateHosting)
	v1.Get("/hostings/:id", controllers.HandleGetHosting)
	v1.Put("/hostings/:id", controllers.HandleUpdateHosting)
	v1.Delete("/hostings/:id", controllers.HandleDeleteHosting)
	v1.Post("/hostings/:id/sync", controllers.HandleSyncHosting)

	// VPS instances
	v1.Get("/vps", controllers.HandleListVPS)
	v1.Post("/vps", controllers.HandleCreateVPS)
	v1.Get("/vps/:id", controllers.HandleGetVPS)
	v1.Put("/vps/:id", controllers.HandleUpdateVPS)
	v1.Delete("/vps/:id", controllers.HandleDeleteVPS)
	v1.Post("/vps/:id/sync", controllers.HandleSyncVPS)

	// Websites
	v1.Get("/websites", controllers.HandleListWebsites)
	v1.Post("/websites", controllers.HandleCreateWebsite)
	v1.Get("/websites/:id", controllers.HandleGetWebsite)
	v1.Put("/websites/:id", controllers.HandleUpdateWebsite)
	v1.Delete("/websites/:id", controllers.HandleDeleteWebsite)
	v1.Post("/websites/:id/sync", controllers.HandleSyncWebsite)

	// Control panels and plan mappings (admin only)
	v1.Get("/control-panels", controllers.HandleListControlPanels)
	v1.Post("/control-panels", middleware.RequireAdmin, controllers.HandleCreateControlPanel)
	v1.Get("/control-panels/:id", controllers.HandleGetControlPanel)
	v1.Put("/control-panels/:id", middleware.RequireAdmin, controllers.HandleUpdateControlPanel)
	v1.Delete("/control-panels/:id", middleware.RequireAdmin, controllers.HandleDeleteControlPanel)
	v1.Get("/control-panels/:id/plan-mappings", controllers.HandleListPlanMappings)
	v1.Post("/control-panels/:id/plan-mappings", middleware.RequireAdmin, controllers.HandleCreatePlanMapping)
	v1.Put("/plan-mappings/:mappingId", middleware.RequireAdmin, controllers.HandleUpdatePlanMapping)
	v1.Delete("/plan-mappings/:mappingId", middleware.RequireAdmin, controllers.HandleDeletePlanMapping)

	// Packages
	v1.Get("/hosting-packages", controllers.HandleListHostingPackages)
	v1.Post("/hosting-packages", middleware.RequireAdmin, controllers.HandleCreateHostingPackage)
	v1.Put("/hosting-packages/:id", middleware.RequireAdmin, controllers.HandleUpdateHostingPackage)
	v1.Delete("/hosting-packages/:id", middleware.RequireAdmin, controllers.HandleDeleteHostingPackage)
	v1.Get("/vps-packages", controllers.HandleListVPSPackages)
	v1.Post("/vps-packages", middleware.RequireAdmin, controllers.HandleCreateVPSPackage)
	v1.Put("/vps-packages/:id", middleware.RequireAdmin, controllers.HandleUpdateVPSPackage)
	v1.Delete("/vps-packages/:id", middleware.RequireAdmin, controllers.HandleDeleteVPSPackage)

	// Invoices
	v1.Get("/invoices", controllers.HandleListInvoices)
	v1.Post("/invoices", controllers.HandleCreateInvoice)
	v1.Get("/invoices/:id", controllers.HandleGetInvoice)
	v1.Post("/invoices/:id/pay", controllers.HandleMarkInvoicePaid)
	v1.Post("/invoices/:id/cancel", controllers.HandleCancelInvoice)

	// Settings (admin only)
	v1.Get("/settings", controllers.HandleGetSettings)
	v1.Put("/settings", middleware.RequireAdmin, controllers.HandleUpdateSettings)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
