// @title CIFAN 2025 Film Submission API
// @version 1.0
// @description Backend for the CIFAN 2025 short film competition: accounts, profiles, admin access and the three category submission forms.
// @host localhost:8000
// @BasePath /

package main

import (
	"context"
	"log"

	_ "github.com/MdSponx/cifan-2025-film-festival/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	"github.com/MdSponx/cifan-2025-film-festival/bootstrap"
	"github.com/MdSponx/cifan-2025-film-festival/config"
	"github.com/MdSponx/cifan-2025-film-festival/database"
	"github.com/MdSponx/cifan-2025-film-festival/internal/access"
	"github.com/MdSponx/cifan-2025-film-festival/internal/controllers"
	"github.com/MdSponx/cifan-2025-film-festival/internal/logger"
	"github.com/MdSponx/cifan-2025-film-festival/internal/middleware"
	"github.com/MdSponx/cifan-2025-film-festival/internal/models"
	"github.com/MdSponx/cifan-2025-film-festival/internal/navigation"
	repo "github.com/MdSponx/cifan-2025-film-festival/internal/repository"
	"github.com/MdSponx/cifan-2025-film-festival/internal/routes"
	"github.com/MdSponx/cifan-2025-film-festival/internal/services"
	"github.com/MdSponx/cifan-2025-film-festival/internal/session"
	"github.com/MdSponx/cifan-2025-film-festival/internal/storage"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET is required")
	}

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zlog.Sync()

	client := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer database.DisconnectMongo(client)

	db := client.Database(cfg.MongoDB)

	if err := bootstrap.EnsureProfileIndexes(db); err != nil {
		log.Fatalf("ensure profile indexes failed: %v", err)
	}
	if err := bootstrap.EnsureSubmissionIndexes(db); err != nil {
		log.Fatalf("ensure submission indexes failed: %v", err)
	}
	if err := bootstrap.EnsureSessionIndexes(db); err != nil {
		log.Fatalf("ensure session indexes failed: %v", err)
	}
	if err := bootstrap.EnsureAdminIndexes(db); err != nil {
		log.Fatalf("ensure admin indexes failed: %v", err)
	}

	uploader, err := storage.NewS3Uploader(context.Background(), cfg.S3Bucket, cfg.S3Region)
	if err != nil {
		log.Fatalf("s3 setup failed: %v", err)
	}

	profiles := repo.NewProfileRepository(db)
	admins := repo.NewAdminRepository(db)
	submissions := repo.NewSubmissionRepository(db)
	sessions := repo.NewSessionRepository(db)

	accessProvider := access.NewProvider(profiles, admins,
		models.ParseAdminLevel(cfg.AdminFallbackLevel), zlog)
	sessionProvider := session.NewProvider(profiles, sessions, navigation.Noop{}, zlog)

	authService := services.NewAuthService(profiles, cfg.JWTSecret, zlog)
	submissionService := services.NewSubmissionService(submissions, uploader, zlog)

	authController := controllers.NewAuthController(authService, sessionProvider, zlog)
	profileController := controllers.NewProfileController(profiles, zlog)
	adminController := controllers.NewAdminController(accessProvider, admins, zlog)
	submissionController := controllers.NewSubmissionController(submissionService, profiles, zlog)

	app := fiber.New(fiber.Config{
		BodyLimit: 1 << 30, // film uploads
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	app.Use(middleware.JWTAuth(cfg.JWTSecret))

	routes.SetupAuth(app, authController)
	routes.SetupProfile(app, profileController)
	routes.SetupAdmin(app, adminController)
	routes.SetupSubmissions(app, submissionController)

	zlog.Info("server starting", zap.String("port", cfg.Port))
	log.Fatal(app.Listen(":" + cfg.Port))
}
