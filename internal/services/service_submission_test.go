package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MdSponx/cifan-2025-film-festival/internal/forms"
	"github.com/MdSponx/cifan-2025-film-festival/internal/models"
	repo "github.com/MdSponx/cifan-2025-film-festival/internal/repository"
	"github.com/MdSponx/cifan-2025-film-festival/internal/storage"
)

type fakeStore struct {
	saved   []models.Submission
	saveErr error
	byID    map[string]*models.Submission
}

func (f *fakeStore) Insert(_ context.Context, s *models.Submission) error {
	return f.Save(context.Background(), s)
}

func (f *fakeStore) FindByApplicationID(_ context.Context, appID string) (*models.Submission, error) {
	return f.byID[appID], nil
}

func (f *fakeStore) FindByUser(_ context.Context, uid string) ([]models.Submission, error) {
	var out []models.Submission
	for _, s := range f.saved {
		if s.UserID == uid {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) Save(_ context.Context, s *models.Submission) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, *s)
	if f.byID == nil {
		f.byID = map[string]*models.Submission{}
	}
	cp := *s
	f.byID[s.ApplicationID] = &cp
	return nil
}

type fakeUploader struct {
	err      error
	panicMsg string
	seen     []storage.Upload
}

func (f *fakeUploader) UploadAll(_ context.Context, appID string, uploads []storage.Upload, onProgress storage.ProgressFunc) (map[string]*models.FileRef, error) {
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if f.err != nil {
		return nil, f.err
	}
	f.seen = uploads
	refs := make(map[string]*models.FileRef, len(uploads))
	var total, done int64
	for _, up := range uploads {
		total += up.Size
	}
	for _, up := range uploads {
		done += up.Size
		if onProgress != nil {
			pct := 0
			if total > 0 {
				pct = int(done * 100 / total)
			}
			onProgress(storage.Progress{Percent: pct})
		}
		refs[up.Slot] = &models.FileRef{
			FileName:   up.FileName,
			Size:       up.Size,
			StorageKey: "submissions/" + appID + "/" + up.Slot,
		}
	}
	return refs, nil
}

func submittableForm(t *testing.T) *forms.Form {
	t.Helper()
	f := forms.New(models.CategoryWorld, "u1", nil, forms.LangEN)
	f.SetField("filmTitle", "Night Bus")
	f.SetGenres([]string{"horror"})
	f.SetFormat(models.FormatLiveAction)
	f.SetField("duration", "14")
	f.SetField("synopsis", "A ghost rides the night bus.")
	f.SetField("chiangmaiConnection", "Set in the old town.")
	f.SetNationalityType(false)
	f.SetField("submitterName", "Ana Diaz")
	f.SetField("submitterEmail", "ana@example.com")
	f.SetField("submitterAge", "34")
	f.SetField("submitterPhone", "+34911111111")
	f.SetField("submitterRole", "Director")
	f.SetFile("filmFile", &models.FileRef{FileName: "film.mp4", Size: 100})
	f.SetFile("posterFile", &models.FileRef{FileName: "poster.png", Size: 10})
	f.SetFile("proofFile", &models.FileRef{FileName: "proof.pdf", Size: 5})
	for _, a := range []string{"agreement1", "agreement2", "agreement3", "agreement4"} {
		f.SetAgreement(a, true)
	}
	return f
}

func testUploads() []storage.Upload {
	return []storage.Upload{
		{Slot: "filmFile", FileName: "film.mp4", Size: 100, Body: strings.NewReader(strings.Repeat("x", 100))},
		{Slot: "posterFile", FileName: "poster.png", Size: 10, Body: strings.NewReader(strings.Repeat("x", 10))},
		{Slot: "proofFile", FileName: "proof.pdf", Size: 5, Body: strings.NewReader("xxxxx")},
	}
}

func TestSubmitSuccess(t *testing.T) {
	store := &fakeStore{}
	svc := NewSubmissionService(store, &fakeUploader{}, zap.NewNop())

	f := submittableForm(t)
	var progress []int
	result, errs := svc.Submit(context.Background(), f, testUploads(), func(p storage.Progress) {
		progress = append(progress, p.Percent)
	})

	require.Empty(t, errs)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.SubmissionID)

	require.NotEmpty(t, store.saved)
	final := store.saved[len(store.saved)-1]
	assert.Equal(t, models.StatusSubmitted, final.Status)
	assert.NotNil(t, final.SubmittedAt)
	assert.Equal(t, result.SubmissionID, final.SubmissionID)
	require.NotNil(t, final.FilmFile)
	assert.Contains(t, final.FilmFile.StorageKey, final.ApplicationID)

	require.NotEmpty(t, progress)
	assert.Equal(t, 100, progress[len(progress)-1])
}

func TestSubmitValidationErrors(t *testing.T) {
	store := &fakeStore{}
	svc := NewSubmissionService(store, &fakeUploader{}, zap.NewNop())

	f := forms.New(models.CategoryWorld, "u1", nil, forms.LangEN)
	result, errs := svc.Submit(context.Background(), f, nil, nil)

	assert.False(t, result.Success)
	assert.NotEmpty(t, errs)
	assert.Empty(t, store.saved, "invalid forms must not be persisted")
}

func TestSubmitUploadErrorSurfacesVerbatim(t *testing.T) {
	store := &fakeStore{}
	svc := NewSubmissionService(store, &fakeUploader{err: errors.New("bucket unreachable")}, zap.NewNop())

	result, errs := svc.Submit(context.Background(), submittableForm(t), testUploads(), nil)

	assert.Empty(t, errs)
	assert.False(t, result.Success)
	assert.Equal(t, "bucket unreachable", result.Error)

	// The draft persisted before the upload survives for a retry.
	require.NotEmpty(t, store.saved)
	assert.Equal(t, models.StatusDraft, store.saved[len(store.saved)-1].Status)
}

func TestSubmitPersistErrorSurfacesVerbatim(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("write concern failed")}
	svc := NewSubmissionService(store, &fakeUploader{}, zap.NewNop())

	result, errs := svc.Submit(context.Background(), submittableForm(t), testUploads(), nil)

	assert.Empty(t, errs)
	assert.False(t, result.Success)
	assert.Equal(t, "write concern failed", result.Error)
}

func TestSubmitPanicBecomesGenericMessage(t *testing.T) {
	svc := NewSubmissionService(&fakeStore{}, &fakeUploader{panicMsg: "nil deref"}, zap.NewNop())

	result, errs := svc.Submit(context.Background(), submittableForm(t), testUploads(), nil)

	assert.Empty(t, errs)
	assert.False(t, result.Success)
	assert.Equal(t, "An error occurred while submitting. Please try again.", result.Error)
}

func TestSubmitPanicThaiMessage(t *testing.T) {
	svc := NewSubmissionService(&fakeStore{}, &fakeUploader{panicMsg: "nil deref"}, zap.NewNop())

	f := submittableForm(t)
	f.Lang = forms.LangTH
	result, _ := svc.Submit(context.Background(), f, testUploads(), nil)

	assert.Equal(t, "เกิดข้อผิดพลาดในการส่งผลงาน กรุณาลองใหม่อีกครั้ง", result.Error)
}

func TestSaveDraft(t *testing.T) {
	store := &fakeStore{}
	svc := NewSubmissionService(store, &fakeUploader{}, zap.NewNop())

	f := forms.New(models.CategoryYouth, "u1", nil, forms.LangEN)
	f.SetField("filmTitle", "The Long Ride")
	f.SetField("filmTitleTh", "ทางไกล")
	f.SetField("submitterName", "Somchai")
	f.SetField("submitterNameTh", "สมชาย")
	f.SetField("submitterEmail", "somchai@example.com")

	errs, err := svc.SaveDraft(context.Background(), f)
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, store.saved, 1)
	assert.Equal(t, models.StatusDraft, store.saved[0].Status)
}

func TestCreateDraftPropagatesInsertError(t *testing.T) {
	store := &fakeStore{saveErr: repo.ErrDuplicateApplication}
	svc := NewSubmissionService(store, &fakeUploader{}, zap.NewNop())

	f := forms.New(models.CategoryYouth, "u1", nil, forms.LangEN)
	f.SetField("filmTitle", "The Long Ride")
	f.SetField("filmTitleTh", "ทางไกล")
	f.SetField("submitterName", "Somchai")
	f.SetField("submitterNameTh", "สมชาย")
	f.SetField("submitterEmail", "somchai@example.com")

	_, err := svc.CreateDraft(context.Background(), f)
	assert.ErrorIs(t, err, repo.ErrDuplicateApplication)
}

func TestSaveDraftValidationBlocksPersist(t *testing.T) {
	store := &fakeStore{}
	svc := NewSubmissionService(store, &fakeUploader{}, zap.NewNop())

	f := forms.New(models.CategoryYouth, "u1", nil, forms.LangEN)
	errs, err := svc.SaveDraft(context.Background(), f)
	require.NoError(t, err)
	assert.NotEmpty(t, errs)
	assert.Empty(t, store.saved)
}

func TestGetEnforcesOwnership(t *testing.T) {
	store := &fakeStore{}
	svc := NewSubmissionService(store, &fakeUploader{}, zap.NewNop())

	f := forms.New(models.CategoryYouth, "u1", nil, forms.LangEN)
	require.NoError(t, store.Save(context.Background(), &f.Submission))

	got, err := svc.Get(context.Background(), f.Submission.ApplicationID, "u1")
	require.NoError(t, err)
	assert.NotNil(t, got)

	got, err = svc.Get(context.Background(), f.Submission.ApplicationID, "someone-else")
	require.NoError(t, err)
	assert.Nil(t, got)
}
