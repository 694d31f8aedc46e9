package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/MdSponx/cifan-2025-film-festival/dto"
	"github.com/MdSponx/cifan-2025-film-festival/internal/access"
	"github.com/MdSponx/cifan-2025-film-festival/internal/middleware"
	"github.com/MdSponx/cifan-2025-film-festival/internal/models"
	repo "github.com/MdSponx/cifan-2025-film-festival/internal/repository"
)

type AdminController struct {
	access *access.Provider
	admins *repo.AdminRepository
	log    *zap.Logger
}

func NewAdminController(provider *access.Provider, admins *repo.AdminRepository, log *zap.Logger) *AdminController {
	return &AdminController{access: provider, admins: admins, log: log}
}

// GetAccess godoc
// @Summary Resolve the caller's admin access snapshot
// @Tags admin
// @Produce json
// @Success 200 {object} access.Access
// @Router /admin/access [get]
func (a *AdminController) GetAccess(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	snapshot := a.access.Check(ctx, middleware.MaybeUID(c))
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"access": snapshot,
		"tier":   snapshot.Tier(),
	})
}

// RefreshAccess godoc
// @Summary Re-read the caller's detailed admin record
// @Tags admin
// @Produce json
// @Success 200 {object} access.Access
// @Failure 401 {object} map[string]interface{}
// @Router /admin/access/refresh [post]
func (a *AdminController) RefreshAccess(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cur := a.access.Check(ctx, uid)
	snapshot := a.access.Refresh(ctx, uid, cur)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"access": snapshot,
		"tier":   snapshot.Tier(),
	})
}

// GrantAccess godoc
// @Summary Create or replace a detailed admin record
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.AdminGrantDTO true "Admin grant"
// @Success 200 {object} models.AdminProfile
// @Failure 400 {object} map[string]interface{}
// @Router /admin/admins [post]
func (a *AdminController) GrantAccess(c *fiber.Ctx) error {
	var req dto.AdminGrantDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	record := &models.AdminProfile{
		UID:            req.UID,
		AdminRole:      models.AdminRole(req.AdminRole),
		AdminLevel:     models.ParseAdminLevel(req.AdminLevel),
		Department:     req.Department,
		Responsibility: req.Responsibility,
		AdminSince:     now,
		CreatedAt:      now,
	}
	if err := a.admins.Upsert(ctx, record); err != nil {
		a.log.Error("admin grant failed", zap.Error(err), zap.String("target_uid", req.UID))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store admin record"})
	}
	return c.Status(fiber.StatusOK).JSON(record)
}

// RequirePermission gates a route group on one named permission. The access
// check runs per request so revoked grants take effect immediately.
func (a *AdminController) RequirePermission(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		snapshot := a.access.Check(ctx, middleware.MaybeUID(c))
		if !snapshot.CheckPermission(name) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Insufficient permissions"})
		}
		return c.Next()
	}
}
