package forms

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MdSponx/cifan-2025-film-festival/internal/models"
)

// Form is the per-category submission form state: the draft document, the
// nationality-type flag, and the field-keyed error map. Mutations clear only
// the edited field's error; validation recomputes the map wholesale.
type Form struct {
	Submission models.Submission
	IsThai     bool
	Lang       Lang
	Errors     models.FormErrors
}

// canonical error keys shared across categories (world's director fields
// report under the submitter keys, matching the unified form)
const (
	ErrKeyAuthentication = "authentication"
	ErrKeyAgeOverLimit   = "ageOverLimit"
	ErrKeyAgreements     = "agreements"
)

// New creates a draft for the category, prefilled from the signed-in user's
// profile. Thai nationality is the default, as on the original form.
func New(cat models.Category, uid string, profile *models.UserProfile, lang Lang) *Form {
	cfg := Config(cat)
	now := time.Now().UTC()

	sub := models.Submission{
		ApplicationID: newApplicationID(cfg.ApplicationPrefix),
		UserID:        uid,
		Category:      cat,
		Status:        models.StatusDraft,
		Nationality:   "Thailand",
		CreatedAt:     now,
	}

	person := models.PersonInfo{}
	if profile != nil {
		person.Name = profile.FullNameEN
		person.NameTH = profile.FullNameTH
		if profile.Age > 0 {
			person.Age = strconv.Itoa(profile.Age)
		}
		person.Phone = profile.PhoneNumber
		person.Email = profile.Email
	}

	switch cat {
	case models.CategoryYouth:
		sub.Youth = &models.YouthSubmitter{PersonInfo: person}
	case models.CategoryFuture:
		sub.Future = &models.FutureSubmitter{PersonInfo: person}
	case models.CategoryWorld:
		sub.World = &models.WorldDirector{PersonInfo: person}
	}

	return &Form{
		Submission: sub,
		IsThai:     true,
		Lang:       lang,
		Errors:     models.FormErrors{},
	}
}

// Load wraps an existing draft back into form state.
func Load(sub models.Submission, isThai bool, lang Lang) *Form {
	return &Form{Submission: sub, IsThai: isThai, Lang: lang, Errors: models.FormErrors{}}
}

func newApplicationID(prefix string) string {
	short := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), short)
}

// SetField updates one named text field and clears that field's error.
// Unknown names are ignored. Director fields on the world form are addressed
// through the same submitter names.
func (f *Form) SetField(name, value string) {
	sub := &f.Submission
	var person *models.PersonInfo
	if b := sub.Block(); b != nil {
		person = b.Person()
	}
	if person == nil {
		person = &models.PersonInfo{}
	}

	switch name {
	case "filmTitle":
		sub.FilmTitle = value
	case "filmTitleTh":
		sub.FilmTitleTH = value
	case "duration":
		sub.Duration = value
	case "synopsis":
		sub.Synopsis = value
	case "chiangmaiConnection":
		sub.ChiangmaiConnection = value
	case "nationality":
		sub.Nationality = value
	case "submitterName":
		person.Name = value
	case "submitterNameTh":
		person.NameTH = value
	case "submitterAge":
		person.Age = value
	case "submitterPhone":
		person.Phone = value
	case "submitterEmail":
		person.Email = value
	case "submitterRole":
		person.Role = value
	case "submitterCustomRole":
		person.CustomRole = value
	case "schoolName":
		if sub.Youth != nil {
			sub.Youth.SchoolName = value
		}
	case "studentId":
		if sub.Youth != nil {
			sub.Youth.StudentID = value
		}
	case "universityName":
		if sub.Future != nil {
			sub.Future.UniversityName = value
		}
	case "faculty":
		if sub.Future != nil {
			sub.Future.Faculty = value
		}
	case "universityId":
		if sub.Future != nil {
			sub.Future.UniversityID = value
		}
	default:
		return
	}
	delete(f.Errors, name)
}

func (f *Form) SetGenres(genres []string) {
	f.Submission.Genres = genres
	delete(f.Errors, "genres")
}

func (f *Form) SetFormat(format models.FilmFormat) {
	f.Submission.Format = format
	delete(f.Errors, "format")
}

func (f *Form) SetCrewMembers(crew []models.CrewMember) {
	f.Submission.CrewMembers = crew
	delete(f.Errors, "crewMembers")
}

// SetAgreement flips one of the four agreement checkboxes. Any agreement
// edit clears the single aggregate agreements error.
func (f *Form) SetAgreement(name string, checked bool) {
	switch name {
	case "agreement1":
		f.Submission.Agreement1 = checked
	case "agreement2":
		f.Submission.Agreement2 = checked
	case "agreement3":
		f.Submission.Agreement3 = checked
	case "agreement4":
		f.Submission.Agreement4 = checked
	default:
		return
	}
	delete(f.Errors, ErrKeyAgreements)
}

// SetFile records the selection for one of the three file slots and clears
// that slot's error.
func (f *Form) SetFile(slot string, ref *models.FileRef) {
	switch slot {
	case "filmFile":
		f.Submission.FilmFile = ref
	case "posterFile":
		f.Submission.PosterFile = ref
	case "proofFile":
		f.Submission.ProofFile = ref
	default:
		return
	}
	delete(f.Errors, slot)
}

// SetNationalityType toggles between Thai and international. Switching off
// Thai clears the Thai film title, the submitter's Thai name and every crew
// member's Thai name; everything else is left untouched.
func (f *Form) SetNationalityType(isThai bool) {
	f.IsThai = isThai
	if isThai {
		return
	}
	f.Submission.FilmTitleTH = ""
	if b := f.Submission.Block(); b != nil {
		b.Person().NameTH = ""
	}
	for i := range f.Submission.CrewMembers {
		f.Submission.CrewMembers[i].FullNameTH = ""
	}
}
