package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MdSponx/cifan-2025-film-festival/internal/models"
)

func TestNewPrefillsFromProfile(t *testing.T) {
	profile := &models.UserProfile{
		FullNameEN:  "Somchai F",
		FullNameTH:  "สมชาย",
		Age:         17,
		PhoneNumber: "0812345678",
		Email:       "somchai@example.com",
	}

	f := New(models.CategoryYouth, "u1", profile, LangEN)

	require.NotNil(t, f.Submission.Youth)
	assert.Nil(t, f.Submission.Future)
	assert.Nil(t, f.Submission.World)

	person := f.Submission.Block().Person()
	assert.Equal(t, "Somchai F", person.Name)
	assert.Equal(t, "สมชาย", person.NameTH)
	assert.Equal(t, "17", person.Age)
	assert.Equal(t, "somchai@example.com", person.Email)

	assert.True(t, f.IsThai)
	assert.Equal(t, models.StatusDraft, f.Submission.Status)
	assert.True(t, strings.HasPrefix(f.Submission.ApplicationID, "youth_"))
}

func TestNewWithoutProfile(t *testing.T) {
	f := New(models.CategoryWorld, "u1", nil, LangEN)
	require.NotNil(t, f.Submission.World)
	assert.Empty(t, f.Submission.Block().Person().Name)
}

func TestApplicationIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := New(models.CategoryFuture, "u1", nil, LangEN).Submission.ApplicationID
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestSetFieldClearsOwnError(t *testing.T) {
	f := New(models.CategoryYouth, "u1", nil, LangEN)
	f.Errors = models.FormErrors{
		"filmTitle":     "This field is required",
		"submitterName": "This field is required",
	}

	f.SetField("filmTitle", "The Long Ride")

	assert.Equal(t, "The Long Ride", f.Submission.FilmTitle)
	assert.NotContains(t, f.Errors, "filmTitle")
	assert.Contains(t, f.Errors, "submitterName", "other errors must survive an unrelated edit")
}

func TestSetFieldUnknownNameIgnored(t *testing.T) {
	f := New(models.CategoryYouth, "u1", nil, LangEN)
	f.Errors = models.FormErrors{"filmTitle": "This field is required"}

	f.SetField("somethingElse", "x")

	assert.Len(t, f.Errors, 1)
}

func TestSetFieldEducationRoutesToCategory(t *testing.T) {
	youth := New(models.CategoryYouth, "u1", nil, LangEN)
	youth.SetField("schoolName", "Chiang Mai High")
	assert.Equal(t, "Chiang Mai High", youth.Submission.Youth.SchoolName)

	future := New(models.CategoryFuture, "u1", nil, LangEN)
	future.SetField("universityName", "CMU")
	future.SetField("faculty", "Fine Arts")
	assert.Equal(t, "CMU", future.Submission.Future.UniversityName)
	assert.Equal(t, "Fine Arts", future.Submission.Future.Faculty)

	// School fields do not exist on the future form.
	future.SetField("schoolName", "nope")
	assert.Empty(t, future.Submission.Youth)
}

func TestSetAgreementClearsAggregateError(t *testing.T) {
	f := New(models.CategoryYouth, "u1", nil, LangEN)
	f.Errors = models.FormErrors{ErrKeyAgreements: "You must accept all agreements before submitting"}

	f.SetAgreement("agreement2", true)

	assert.True(t, f.Submission.Agreement2)
	assert.NotContains(t, f.Errors, ErrKeyAgreements)
}

func TestSetNationalityTypeClearsThaiFields(t *testing.T) {
	f := New(models.CategoryYouth, "u1", nil, LangEN)
	f.SetField("filmTitle", "Title")
	f.SetField("filmTitleTh", "ชื่อเรื่อง")
	f.SetField("submitterName", "Somchai")
	f.SetField("submitterNameTh", "สมชาย")
	f.SetCrewMembers([]models.CrewMember{
		{FullName: "A", FullNameTH: "เอ"},
		{FullName: "B", FullNameTH: "บี"},
	})

	f.SetNationalityType(false)

	assert.False(t, f.IsThai)
	assert.Empty(t, f.Submission.FilmTitleTH)
	assert.Empty(t, f.Submission.Block().Person().NameTH)
	for _, cm := range f.Submission.CrewMembers {
		assert.Empty(t, cm.FullNameTH)
	}

	// Non-Thai values survive the toggle.
	assert.Equal(t, "Title", f.Submission.FilmTitle)
	assert.Equal(t, "Somchai", f.Submission.Block().Person().Name)
	assert.Equal(t, "A", f.Submission.CrewMembers[0].FullName)
}

func TestSetNationalityTypeBackToThaiKeepsCleared(t *testing.T) {
	f := New(models.CategoryYouth, "u1", nil, LangEN)
	f.SetField("filmTitleTh", "ชื่อเรื่อง")

	f.SetNationalityType(false)
	f.SetNationalityType(true)

	assert.True(t, f.IsThai)
	assert.Empty(t, f.Submission.FilmTitleTH, "toggling back must not resurrect cleared values")
}

func TestSetFile(t *testing.T) {
	f := New(models.CategoryWorld, "u1", nil, LangEN)
	f.Errors = models.FormErrors{"posterFile": "This field is required"}

	f.SetFile("posterFile", &models.FileRef{FileName: "poster.png", Size: 1024})

	require.NotNil(t, f.Submission.PosterFile)
	assert.Equal(t, "poster.png", f.Submission.PosterFile.FileName)
	assert.NotContains(t, f.Errors, "posterFile")
	assert.Nil(t, f.Submission.FilmFile)
}
