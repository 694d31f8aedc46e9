package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MdSponx/cifan-2025-film-festival/internal/controllers"
)

func SetupSubmissions(app *fiber.App, sc *controllers.SubmissionController) {
	sub := app.Group("/submissions")

	// Static paths before the dynamic ones
	sub.Get("/categories", sc.Categories)
	sub.Get("/:category/eligibility", sc.Eligibility)
	sub.Post("/:category", sc.CreateDraft)

	sub.Get("/:id", sc.GetOne)
	sub.Patch("/:id", sc.Patch)
	sub.Put("/:id/nationality", sc.Nationality)
	sub.Post("/:id/validate", sc.Validate)
	sub.Post("/:id/submit", sc.Submit)

	app.Get("/my-applications", sc.ListMine)
}
