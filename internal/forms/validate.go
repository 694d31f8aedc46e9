package forms

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/MdSponx/cifan-2025-film-festival/internal/models"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidateDraft runs the relaxed rule set used for partial saves: the user
// must be signed in, within the category's age cap, and the minimal identity
// and title fields must be present. Files and agreements are never required
// here.
func (f *Form) ValidateDraft(authenticated bool) models.FormErrors {
	errs := models.FormErrors{}
	m := msg(f.Lang)

	if !authenticated || f.Submission.UserID == "" {
		errs[ErrKeyAuthentication] = m.signInBeforeDraft
	}

	f.checkAgeCap(errs)

	if strings.TrimSpace(f.Submission.FilmTitle) == "" {
		errs["filmTitle"] = m.required
	}
	if f.IsThai && strings.TrimSpace(f.Submission.FilmTitleTH) == "" {
		errs["filmTitleTh"] = m.required
	}

	f.checkBasicIdentity(errs)

	return errs
}

// ValidateFull runs the complete rule set required before final submission:
// every draft check plus film metadata, the whole submitter block, the
// category's education fields, all three files and all four agreements.
func (f *Form) ValidateFull(authenticated bool) models.FormErrors {
	errs := models.FormErrors{}
	m := msg(f.Lang)
	sub := &f.Submission
	cfg := Config(sub.Category)

	if !authenticated || sub.UserID == "" {
		errs[ErrKeyAuthentication] = m.signInBeforeSubmit
	}

	f.checkAgeCap(errs)

	// Film information
	if strings.TrimSpace(sub.FilmTitle) == "" {
		errs["filmTitle"] = m.required
	}
	if f.IsThai && strings.TrimSpace(sub.FilmTitleTH) == "" {
		errs["filmTitleTh"] = m.required
	}
	if len(sub.Genres) == 0 {
		errs["genres"] = m.required
	}
	if sub.Format == "" {
		errs["format"] = m.formatRequired
	}
	if sub.Duration == "" {
		errs["duration"] = m.required
	} else if d, err := strconv.Atoi(sub.Duration); err != nil || d <= 0 {
		errs["duration"] = m.invalidDuration
	}
	if strings.TrimSpace(sub.Synopsis) == "" {
		errs["synopsis"] = m.required
	}
	if strings.TrimSpace(sub.ChiangmaiConnection) == "" {
		errs["chiangmaiConnection"] = m.required
	}

	// Submitter block
	f.checkBasicIdentity(errs)

	person := personOf(sub)
	if person.Age == "" {
		errs["submitterAge"] = m.required
	} else if age, err := strconv.Atoi(person.Age); err != nil || !ValidAge(age, sub.Category) {
		errs["submitterAge"] = invalidAgeMessage(f.Lang, cfg)
	}
	if strings.TrimSpace(person.Phone) == "" {
		errs["submitterPhone"] = m.required
	}
	if person.Role == "" {
		errs["submitterRole"] = m.required
	}
	if person.Role == "Other" && strings.TrimSpace(person.CustomRole) == "" {
		errs["submitterCustomRole"] = m.required
	}

	// Category-specific education fields
	switch sub.Category {
	case models.CategoryYouth:
		if sub.Youth != nil {
			if strings.TrimSpace(sub.Youth.SchoolName) == "" {
				errs["schoolName"] = m.required
			}
			if strings.TrimSpace(sub.Youth.StudentID) == "" {
				errs["studentId"] = m.required
			}
		}
	case models.CategoryFuture:
		if sub.Future != nil {
			if strings.TrimSpace(sub.Future.UniversityName) == "" {
				errs["universityName"] = m.required
			}
			if strings.TrimSpace(sub.Future.Faculty) == "" {
				errs["faculty"] = m.required
			}
			if strings.TrimSpace(sub.Future.UniversityID) == "" {
				errs["universityId"] = m.required
			}
		}
	case models.CategoryWorld:
		// no education fields
	}

	// Files, required only on final submission
	if sub.FilmFile == nil {
		errs["filmFile"] = m.required
	}
	if sub.PosterFile == nil {
		errs["posterFile"] = m.required
	}
	if sub.ProofFile == nil {
		errs["proofFile"] = m.required
	}

	if !sub.Agreement1 || !sub.Agreement2 || !sub.Agreement3 || !sub.Agreement4 {
		errs[ErrKeyAgreements] = m.allAgreementsRequired
	}

	return errs
}

// checkAgeCap flags the declared age when it exceeds a finite category cap.
func (f *Form) checkAgeCap(errs models.FormErrors) {
	cfg := Config(f.Submission.Category)
	if cfg.Unbounded {
		return
	}
	person := personOf(&f.Submission)
	age, _ := strconv.Atoi(person.Age)
	if age > cfg.AgeMax {
		errs[ErrKeyAgeOverLimit] = ageOverLimitMessage(f.Lang, age, cfg)
	}
}

// checkBasicIdentity holds the identity rules shared by both passes.
func (f *Form) checkBasicIdentity(errs models.FormErrors) {
	m := msg(f.Lang)
	person := personOf(&f.Submission)

	if strings.TrimSpace(person.Name) == "" {
		errs["submitterName"] = m.required
	}
	if f.IsThai && strings.TrimSpace(person.NameTH) == "" {
		errs["submitterNameTh"] = m.required
	}
	if strings.TrimSpace(person.Email) == "" {
		errs["submitterEmail"] = m.required
	} else if !ValidEmail(person.Email) {
		errs["submitterEmail"] = m.invalidEmail
	}
}

func personOf(sub *models.Submission) *models.PersonInfo {
	if b := sub.Block(); b != nil {
		return b.Person()
	}
	return &models.PersonInfo{}
}
