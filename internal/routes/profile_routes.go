package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MdSponx/cifan-2025-film-festival/internal/controllers"
)

func SetupProfile(app *fiber.App, pc *controllers.ProfileController) {
	profile := app.Group("/profile")

	profile.Get("/me", pc.GetMe)
	profile.Put("/me", pc.UpdateMe)
}
