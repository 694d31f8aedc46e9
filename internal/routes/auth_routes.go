package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MdSponx/cifan-2025-film-festival/internal/controllers"
)

func SetupAuth(app *fiber.App, ac *controllers.AuthController) {
	auth := app.Group("/auth")

	auth.Post("/register", ac.Register)
	auth.Post("/login", ac.Login)
	auth.Post("/logout", ac.Logout)
	auth.Post("/verify-email", ac.VerifyEmail)
	auth.Post("/session/establish", ac.EstablishSession)
}
