package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MdSponx/cifan-2025-film-festival/internal/forms"
	"github.com/MdSponx/cifan-2025-film-festival/internal/models"
	"github.com/MdSponx/cifan-2025-film-festival/internal/storage"
)

// SubmissionStore is the persistence surface the service needs.
type SubmissionStore interface {
	Insert(ctx context.Context, s *models.Submission) error
	FindByApplicationID(ctx context.Context, appID string) (*models.Submission, error)
	FindByUser(ctx context.Context, uid string) ([]models.Submission, error)
	Save(ctx context.Context, s *models.Submission) error
}

// Result is the terminal outcome of a submit attempt. Error carries the
// underlying failure message verbatim so the caller can show it.
type Result struct {
	Success      bool   `json:"success"`
	SubmissionID string `json:"submissionId,omitempty"`
	Error        string `json:"error,omitempty"`
}

type SubmissionService struct {
	store    SubmissionStore
	uploader storage.Uploader
	log      *zap.Logger
}

func NewSubmissionService(store SubmissionStore, uploader storage.Uploader, log *zap.Logger) *SubmissionService {
	return &SubmissionService{store: store, uploader: uploader, log: log}
}

// CreateDraft validates the relaxed rule set and inserts the fresh draft.
// Insert rather than upsert so an application id collision is an error
// instead of silently replacing someone's draft.
func (s *SubmissionService) CreateDraft(ctx context.Context, f *forms.Form) (models.FormErrors, error) {
	errs := f.ValidateDraft(f.Submission.UserID != "")
	if !errs.Empty() {
		f.Errors = errs
		return errs, nil
	}
	f.Submission.Status = models.StatusDraft
	if err := s.store.Insert(ctx, &f.Submission); err != nil {
		return nil, err
	}
	return models.FormErrors{}, nil
}

// SaveDraft validates the relaxed rule set and persists the form's current
// snapshot. Validation errors come back on the form, not as a Go error.
func (s *SubmissionService) SaveDraft(ctx context.Context, f *forms.Form) (models.FormErrors, error) {
	errs := f.ValidateDraft(f.Submission.UserID != "")
	if !errs.Empty() {
		f.Errors = errs
		return errs, nil
	}
	f.Submission.Status = models.StatusDraft
	if err := s.store.Save(ctx, &f.Submission); err != nil {
		return nil, err
	}
	return models.FormErrors{}, nil
}

// Submit runs the full validation pass, uploads the three files and flips the
// record to submitted. Any unexpected failure, panics included, surfaces as a
// failed Result carrying a generic localized message; expected upload and
// persistence errors keep their original text.
func (s *SubmissionService) Submit(ctx context.Context, f *forms.Form, uploads []storage.Upload, onProgress storage.ProgressFunc) (res Result, errs models.FormErrors) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("submission panic", zap.Any("panic", r),
				zap.String("application_id", f.Submission.ApplicationID))
			res = Result{Success: false, Error: forms.GenericSubmitError(f.Lang)}
			errs = nil
		}
	}()

	errs = f.ValidateFull(f.Submission.UserID != "")
	if !errs.Empty() {
		f.Errors = errs
		return Result{}, errs
	}

	sub := &f.Submission
	sub.SubmissionID = uuid.NewString()

	// Persist before uploading so a crash mid-transfer leaves a record to
	// resume from.
	sub.Status = models.StatusDraft
	if err := s.store.Save(ctx, sub); err != nil {
		return Result{Success: false, Error: err.Error()}, nil
	}

	refs, err := s.uploader.UploadAll(ctx, sub.ApplicationID, uploads, onProgress)
	if err != nil {
		s.log.Error("upload failed", zap.Error(err),
			zap.String("application_id", sub.ApplicationID))
		return Result{Success: false, Error: err.Error()}, nil
	}
	if ref, ok := refs["filmFile"]; ok {
		sub.FilmFile = ref
	}
	if ref, ok := refs["posterFile"]; ok {
		sub.PosterFile = ref
	}
	if ref, ok := refs["proofFile"]; ok {
		sub.ProofFile = ref
	}

	now := time.Now().UTC()
	sub.Status = models.StatusSubmitted
	sub.SubmittedAt = &now
	if err := s.store.Save(ctx, sub); err != nil {
		return Result{Success: false, Error: err.Error()}, nil
	}

	s.log.Info("submission accepted",
		zap.String("application_id", sub.ApplicationID),
		zap.String("submission_id", sub.SubmissionID),
		zap.String("category", string(sub.Category)))
	return Result{Success: true, SubmissionID: sub.SubmissionID}, nil
}

// ListByUser returns the caller's applications, newest first.
func (s *SubmissionService) ListByUser(ctx context.Context, uid string) ([]models.Submission, error) {
	return s.store.FindByUser(ctx, uid)
}

// Get loads one application and confirms ownership. Missing or foreign
// records both come back nil.
func (s *SubmissionService) Get(ctx context.Context, appID, uid string) (*models.Submission, error) {
	sub, err := s.store.FindByApplicationID(ctx, appID)
	if err != nil || sub == nil {
		return nil, err
	}
	if sub.UserID != uid {
		return nil, nil
	}
	return sub, nil
}
