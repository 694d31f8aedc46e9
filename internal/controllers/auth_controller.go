package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/MdSponx/cifan-2025-film-festival/dto"
	"github.com/MdSponx/cifan-2025-film-festival/internal/middleware"
	"github.com/MdSponx/cifan-2025-film-festival/internal/navigation"
	"github.com/MdSponx/cifan-2025-film-festival/internal/services"
	"github.com/MdSponx/cifan-2025-film-festival/internal/session"
)

var validate = validator.New()

type AuthController struct {
	auth     *services.AuthService
	sessions *session.Provider
	log      *zap.Logger
}

func NewAuthController(auth *services.AuthService, sessions *session.Provider, log *zap.Logger) *AuthController {
	return &AuthController{auth: auth, sessions: sessions, log: log}
}

// Register godoc
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body dto.RegisterDTO true "Register Request"
// @Success 201 {object} dto.ProfileDTO
// @Failure 400 {object} map[string]interface{}
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p, err := ac.auth.Register(ctx, req.Email, req.Password, req.FullNameEN)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already exists"})
		}
		ac.log.Error("register failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ProfileDTOFromModel(p))
}

// Login godoc
// @Summary Exchange credentials for a token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body dto.LoginDTO true "Login Request"
// @Success 200 {object} dto.LoginResponseDTO
// @Failure 401 {object} map[string]interface{}
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	token, p, err := ac.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
		}
		ac.log.Error("login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database query failed"})
	}

	if err := ac.sessions.Begin(ctx, p.UID); err != nil {
		ac.log.Warn("session start failed", zap.Error(err), zap.String("uid", p.UID))
	}

	return c.Status(fiber.StatusOK).JSON(dto.LoginResponseDTO{
		Token: token,
		User:  dto.ProfileDTOFromModel(p),
	})
}

// VerifyEmail godoc
// @Summary Mark the caller's email as verified
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/verify-email [post]
func (ac *AuthController) VerifyEmail(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := ac.auth.VerifyEmail(ctx, uid); err != nil {
		ac.log.Error("verify email failed", zap.Error(err), zap.String("uid", uid))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to verify email"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Email verified."})
}

// EstablishSession godoc
// @Summary Resolve the caller's session and one-shot redirect
// @Description Loads the profile, syncs the email-verified flag and decides whether a post-login redirect applies for the client's current route.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.EstablishSessionDTO true "Current client route"
// @Success 200 {object} dto.SessionResponseDTO
// @Failure 401 {object} map[string]interface{}
// @Router /auth/session/establish [post]
func (ac *AuthController) EstablishSession(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req dto.EstablishSessionDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sess, err := ac.sessions.Establish(ctx, uid, middleware.EmailVerifiedFromLocals(c), navigation.Route(req.CurrentRoute))
	if err != nil {
		ac.log.Error("establish session failed", zap.Error(err), zap.String("uid", uid))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to establish session"})
	}

	resp := dto.SessionResponseDTO{
		UID:           sess.UID,
		EmailVerified: sess.EmailVerified,
		Redirect:      string(sess.Redirect),
	}
	if sess.Profile != nil {
		p := dto.ProfileDTOFromModel(sess.Profile)
		resp.Profile = &p
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// Logout godoc
// @Summary End the caller's session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := ac.sessions.End(ctx, uid); err != nil {
		ac.log.Warn("session end failed", zap.Error(err), zap.String("uid", uid))
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Signed out."})
}
