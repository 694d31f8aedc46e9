package controllers

import (
	"context"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/MdSponx/cifan-2025-film-festival/dto"
	"github.com/MdSponx/cifan-2025-film-festival/internal/forms"
	"github.com/MdSponx/cifan-2025-film-festival/internal/middleware"
	"github.com/MdSponx/cifan-2025-film-festival/internal/models"
	"github.com/MdSponx/cifan-2025-film-festival/internal/navigation"
	repo "github.com/MdSponx/cifan-2025-film-festival/internal/repository"
	"github.com/MdSponx/cifan-2025-film-festival/internal/services"
	"github.com/MdSponx/cifan-2025-film-festival/internal/storage"
)

const nationalityThailand = "Thailand"

type SubmissionController struct {
	submissions *services.SubmissionService
	profiles    *repo.ProfileRepository
	log         *zap.Logger
}

func NewSubmissionController(submissions *services.SubmissionService, profiles *repo.ProfileRepository, log *zap.Logger) *SubmissionController {
	return &SubmissionController{submissions: submissions, profiles: profiles, log: log}
}

// Categories godoc
// @Summary List the competition categories
// @Tags submissions
// @Produce json
// @Success 200 {array} dto.CategoryDTO
// @Router /submissions/categories [get]
func (sc *SubmissionController) Categories(c *fiber.Ctx) error {
	out := make([]dto.CategoryDTO, 0, 3)
	for _, cfg := range forms.AllConfigs() {
		out = append(out, dto.CategoryDTO{
			Category:   string(cfg.Category),
			Title:      cfg.Title,
			AgeMin:     cfg.AgeMin,
			AgeMax:     cfg.AgeMax,
			Unbounded:  cfg.Unbounded,
			PrizeEN:    cfg.PrizeEN,
			PrizeTH:    cfg.PrizeTH,
			DeadlineEN: forms.DeadlineEN,
			DeadlineTH: forms.DeadlineTH,
		})
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// Eligibility godoc
// @Summary Check age eligibility for a category
// @Tags submissions
// @Produce json
// @Param category path string true "Category" Enums(youth, future, world)
// @Param age query int false "Applicant age"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /submissions/{category}/eligibility [get]
func (sc *SubmissionController) Eligibility(c *fiber.Ctx) error {
	cat, ok := models.ParseCategory(c.Params("category"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown category"})
	}
	age, _ := strconv.Atoi(c.Query("age"))
	elig := forms.CheckAgeEligibility(cat, age)

	resp := fiber.Map{"eligibility": elig}
	if elig.Eligible {
		resp["formRoute"] = navigation.SubmitRoute(cat)
	} else if elig.Suggested != nil {
		resp["formRoute"] = navigation.SubmitRoute(*elig.Suggested)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// CreateDraft godoc
// @Summary Open a new draft for a category
// @Description Creates a draft prefilled from the caller's profile and persists it.
// @Tags submissions
// @Produce json
// @Param category path string true "Category" Enums(youth, future, world)
// @Param lang query string false "Language" Enums(en, th)
// @Success 201 {object} models.Submission
// @Failure 401 {object} map[string]interface{}
// @Router /submissions/{category} [post]
func (sc *SubmissionController) CreateDraft(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	cat, ok := models.ParseCategory(c.Params("category"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown category"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	profile, err := sc.profiles.FindByUID(ctx, uid)
	if err != nil {
		sc.log.Error("profile load failed", zap.Error(err), zap.String("uid", uid))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database query failed"})
	}

	f := forms.New(cat, uid, profile, forms.ParseLang(c.Query("lang")))
	if errs, err := sc.submissions.CreateDraft(ctx, f); err != nil {
		sc.log.Error("draft save failed", zap.Error(err), zap.String("uid", uid))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save draft"})
	} else if !errs.Empty() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidateResponseDTO{Valid: false, Errors: errs})
	}

	return c.Status(fiber.StatusCreated).JSON(f.Submission)
}

// Patch godoc
// @Summary Apply partial edits to a draft
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param body body dto.SubmissionPatchDTO true "Edits"
// @Success 200 {object} models.Submission
// @Failure 404 {object} map[string]interface{}
// @Router /submissions/{id} [patch]
func (sc *SubmissionController) Patch(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req dto.SubmissionPatchDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	f, status, errMsg := sc.loadForm(ctx, c.Params("id"), uid, req.Lang)
	if f == nil {
		return c.Status(status).JSON(fiber.Map{"error": errMsg})
	}

	for name, value := range req.Fields {
		f.SetField(name, value)
	}
	if req.Genres != nil {
		f.SetGenres(*req.Genres)
	}
	if req.Format != nil {
		f.SetFormat(models.FilmFormat(*req.Format))
	}
	if req.Crew != nil {
		f.SetCrewMembers(*req.Crew)
	}
	for name, checked := range req.Agreements {
		f.SetAgreement(name, checked)
	}

	if errs, err := sc.submissions.SaveDraft(ctx, f); err != nil {
		sc.log.Error("draft save failed", zap.Error(err), zap.String("uid", uid))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save draft"})
	} else if !errs.Empty() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidateResponseDTO{Valid: false, Errors: errs})
	}

	return c.Status(fiber.StatusOK).JSON(f.Submission)
}

// Nationality godoc
// @Summary Toggle between Thai and international
// @Description Switching off Thai clears the Thai film title and every Thai name on the form.
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param body body dto.NationalityDTO true "Nationality flag"
// @Success 200 {object} models.Submission
// @Router /submissions/{id}/nationality [put]
func (sc *SubmissionController) Nationality(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req dto.NationalityDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	f, status, errMsg := sc.loadForm(ctx, c.Params("id"), uid, "")
	if f == nil {
		return c.Status(status).JSON(fiber.Map{"error": errMsg})
	}

	f.SetNationalityType(req.IsThai)
	if req.IsThai {
		f.Submission.Nationality = nationalityThailand
	} else if f.Submission.Nationality == nationalityThailand {
		f.Submission.Nationality = ""
	}

	if errs, err := sc.submissions.SaveDraft(ctx, f); err != nil {
		sc.log.Error("draft save failed", zap.Error(err), zap.String("uid", uid))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save draft"})
	} else if !errs.Empty() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidateResponseDTO{Valid: false, Errors: errs})
	}

	return c.Status(fiber.StatusOK).JSON(f.Submission)
}

// Validate godoc
// @Summary Run draft or full validation without persisting
// @Tags submissions
// @Produce json
// @Param id path string true "Application ID"
// @Param mode query string false "Validation mode" Enums(draft, full) default(draft)
// @Success 200 {object} dto.ValidateResponseDTO
// @Router /submissions/{id}/validate [post]
func (sc *SubmissionController) Validate(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	f, status, errMsg := sc.loadForm(ctx, c.Params("id"), uid, c.Query("lang"))
	if f == nil {
		return c.Status(status).JSON(fiber.Map{"error": errMsg})
	}

	var errs models.FormErrors
	if c.Query("mode") == "full" {
		errs = f.ValidateFull(true)
	} else {
		errs = f.ValidateDraft(true)
	}
	return c.Status(fiber.StatusOK).JSON(dto.ValidateResponseDTO{Valid: errs.Empty(), Errors: errs})
}

// Submit godoc
// @Summary Finalize a submission
// @Description Multipart upload of the film, poster and proof files plus the final validation pass. Success returns the submission receipt id.
// @Tags submissions
// @Accept mpfd
// @Produce json
// @Param id path string true "Application ID"
// @Param filmFile formData file true "Film file"
// @Param posterFile formData file true "Poster file"
// @Param proofFile formData file true "Payment or identity proof"
// @Success 200 {object} services.Result
// @Failure 422 {object} dto.ValidateResponseDTO
// @Router /submissions/{id}/submit [post]
func (sc *SubmissionController) Submit(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	f, status, errMsg := sc.loadForm(ctx, c.Params("id"), uid, c.Query("lang"))
	if f == nil {
		return c.Status(status).JSON(fiber.Map{"error": errMsg})
	}
	if f.Submission.Status == models.StatusSubmitted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Already submitted"})
	}

	uploads := make([]storage.Upload, 0, 3)
	for _, slot := range []string{"filmFile", "posterFile", "proofFile"} {
		fh, err := c.FormFile(slot)
		if err != nil {
			continue
		}
		file, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unreadable file: " + slot})
		}
		defer file.Close()

		f.SetFile(slot, &models.FileRef{
			FileName:    fh.Filename,
			Size:        fh.Size,
			ContentType: contentType(fh),
		})
		uploads = append(uploads, storage.Upload{
			Slot:        slot,
			FileName:    fh.Filename,
			Size:        fh.Size,
			ContentType: contentType(fh),
			Body:        file,
		})
	}

	var lastProgress storage.Progress
	result, errs := sc.submissions.Submit(ctx, f, uploads, func(p storage.Progress) {
		lastProgress = p
	})
	if errs != nil && !errs.Empty() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidateResponseDTO{Valid: false, Errors: errs})
	}
	if !result.Success {
		return c.Status(fiber.StatusBadGateway).JSON(result)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":      true,
		"submissionId": result.SubmissionID,
		"progress":     lastProgress.Percent,
		"deadline":     deadlineFor(f.Lang),
	})
}

// ListMine godoc
// @Summary List the caller's applications
// @Tags submissions
// @Produce json
// @Success 200 {array} models.Submission
// @Router /my-applications [get]
func (sc *SubmissionController) ListMine(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	subs, err := sc.submissions.ListByUser(ctx, uid)
	if err != nil {
		sc.log.Error("list applications failed", zap.Error(err), zap.String("uid", uid))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database query failed"})
	}
	if subs == nil {
		subs = []models.Submission{}
	}
	return c.Status(fiber.StatusOK).JSON(subs)
}

// GetOne godoc
// @Summary Get one of the caller's applications
// @Tags submissions
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} models.Submission
// @Failure 404 {object} map[string]interface{}
// @Router /submissions/{id} [get]
func (sc *SubmissionController) GetOne(c *fiber.Ctx) error {
	uid, err := middleware.UIDFromLocals(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sub, err := sc.submissions.Get(ctx, c.Params("id"), uid)
	if err != nil {
		sc.log.Error("application load failed", zap.Error(err), zap.String("uid", uid))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database query failed"})
	}
	if sub == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}
	return c.Status(fiber.StatusOK).JSON(sub)
}

// loadForm fetches the caller's draft and rebuilds form state from it. A nil
// form means the response (status, message) is already decided.
func (sc *SubmissionController) loadForm(ctx context.Context, appID, uid, lang string) (*forms.Form, int, string) {
	sub, err := sc.submissions.Get(ctx, appID, uid)
	if err != nil {
		sc.log.Error("application load failed", zap.Error(err), zap.String("uid", uid))
		return nil, fiber.StatusInternalServerError, "Database query failed"
	}
	if sub == nil {
		return nil, fiber.StatusNotFound, "Application not found"
	}
	return forms.Load(*sub, sub.Nationality == nationalityThailand, forms.ParseLang(lang)), 0, ""
}

func contentType(fh *multipart.FileHeader) string {
	return fh.Header.Get("Content-Type")
}

func deadlineFor(lang forms.Lang) string {
	if lang == forms.LangTH {
		return forms.DeadlineTH
	}
	return forms.DeadlineEN
}
