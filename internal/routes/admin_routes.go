package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MdSponx/cifan-2025-film-festival/internal/controllers"
	"github.com/MdSponx/cifan-2025-film-festival/internal/permissions"
)

func SetupAdmin(app *fiber.App, ac *controllers.AdminController) {
	admin := app.Group("/admin")

	admin.Get("/access", ac.GetAccess)
	admin.Post("/access/refresh", ac.RefreshAccess)
	admin.Post("/admins", ac.RequirePermission(permissions.ManageUsers), ac.GrantAccess)

	// Dashboard pages gate on the single permission their content needs.
	dashboard := admin.Group("/dashboard", ac.RequirePermission(permissions.ViewDashboard))
	dashboard.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
}
