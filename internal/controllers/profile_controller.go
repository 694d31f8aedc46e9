package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/MdSponx/cifan-2025-film-festival/dto"
	"github.com/MdSponx/cifan-2025-film-festival/internal/middleware"
	repo "github.com/MdSponx/cifan-2025-film-festival/internal/repository"
)

type ProfileController struct {
	profiles *repo.ProfileRepository
	log      *zap.Logger
}

func NewProfileController(profiles *repo.ProfileRepository, log *zap.Logger) *ProfileController {
	return &ProfileController{profiles: profiles, log: log}
}

// GetMe godoc
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileDTO
// @Failure 404 {object} map[string]interface{}
// @Router /profile/me [get]
func (pc *ProfileController) GetMe(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p, err := pc.profiles.FindByUID(ctx, uid)
	if err != nil {
		pc.log.Error("profile load failed", zap.Error(err), zap.String("uid", uid))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database query failed"})
	}
	if p == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	}
	return c.Status(fiber.StatusOK).JSON(dto.ProfileDTOFromModel(p))
}

// UpdateMe godoc
// @Summary Update the caller's profile
// @Tags profile
// @Accept json
// @Produce json
// @Param body body dto.ProfileUpdateDTO true "Profile fields"
// @Success 200 {object} dto.ProfileDTO
// @Failure 400 {object} map[string]interface{}
// @Router /profile/me [put]
func (pc *ProfileController) UpdateMe(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req dto.ProfileUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	fields := bson.M{}
	if req.FullNameEN != "" {
		fields["fullname_en"] = req.FullNameEN
	}
	if req.FullNameTH != "" {
		fields["fullname_th"] = req.FullNameTH
	}
	if req.BirthDate != nil {
		fields["birth_date"] = *req.BirthDate
		fields["age"] = ageFromBirthDate(*req.BirthDate)
	}
	if req.PhoneNumber != "" {
		fields["phone_number"] = req.PhoneNumber
	}
	if req.PhotoURL != "" {
		fields["photo_url"] = req.PhotoURL
	}
	if len(fields) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No fields to update"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := pc.profiles.Update(ctx, uid, fields); err != nil {
		pc.log.Error("profile update failed", zap.Error(err), zap.String("uid", uid))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	p, err := pc.profiles.FindByUID(ctx, uid)
	if err != nil || p == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to reload profile"})
	}
	return c.Status(fiber.StatusOK).JSON(dto.ProfileDTOFromModel(p))
}

func ageFromBirthDate(birth time.Time) int {
	now := time.Now()
	age := now.Year() - birth.Year()
	if now.YearDay() < birth.YearDay() {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
