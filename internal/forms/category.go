package forms

import "github.com/MdSponx/cifan-2025-film-festival/internal/models"

// CategoryConfig is the compiled-in per-category competition setup.
type CategoryConfig struct {
	Category models.Category
	Title    string

	AgeMin int
	AgeMax int
	// Unbounded marks the max as a display bound only (World's "99").
	Unbounded bool

	ApplicationPrefix string
	PrizeTH           string
	PrizeEN           string

	// Which education fields the category's submitter block carries.
	NeedsSchool     bool
	NeedsUniversity bool
}

var categoryConfigs = map[models.Category]CategoryConfig{
	models.CategoryYouth: {
		Category:          models.CategoryYouth,
		Title:             "Youth Fantastic Short Film Award",
		AgeMin:            12,
		AgeMax:            18,
		ApplicationPrefix: "youth",
		PrizeTH:           "160,000 บาท",
		PrizeEN:           "160,000 THB",
		NeedsSchool:       true,
	},
	models.CategoryFuture: {
		Category:          models.CategoryFuture,
		Title:             "Future Fantastic Short Film Award",
		AgeMin:            18,
		AgeMax:            25,
		ApplicationPrefix: "future",
		PrizeTH:           "380,000 บาท",
		PrizeEN:           "380,000 THB",
		NeedsUniversity:   true,
	},
	models.CategoryWorld: {
		Category:          models.CategoryWorld,
		Title:             "World Fantastic Short Film Award",
		AgeMin:            18,
		AgeMax:            99,
		Unbounded:         true,
		ApplicationPrefix: "world",
		PrizeTH:           "460,000 บาท",
		PrizeEN:           "460,000 THB",
	},
}

// Deadline copy shown in the submission confirmation.
const (
	DeadlineEN = "Submission deadline: September 5, 2025 at 11:59 PM"
	DeadlineTH = "กำหนดส่งผลงาน: 5 กันยายน 2025 เวลา 23:59 น."
)

func Config(cat models.Category) CategoryConfig {
	return categoryConfigs[cat]
}

func AllConfigs() []CategoryConfig {
	return []CategoryConfig{
		categoryConfigs[models.CategoryYouth],
		categoryConfigs[models.CategoryFuture],
		categoryConfigs[models.CategoryWorld],
	}
}

// Eligibility is the outcome of the pre-form age gate.
type Eligibility struct {
	Eligible  bool             `json:"eligible"`
	Age       int              `json:"age,omitempty"`
	Suggested *models.Category `json:"suggestedCategory,omitempty"`
}

// CheckAgeEligibility gates access to a category's form. Only the upper bound
// gates, and an unbounded category never rejects. Over-age users get a
// suggested category: youth applicants aged 18-25 are pointed at future,
// anyone over 25 at world. An unknown age (0) passes the gate; the form's
// own validation handles it later.
func CheckAgeEligibility(cat models.Category, age int) Eligibility {
	cfg := Config(cat)
	if age <= 0 {
		return Eligibility{Eligible: true}
	}
	if cfg.Unbounded || age <= cfg.AgeMax {
		return Eligibility{Eligible: true}
	}

	var suggested *models.Category
	if cat == models.CategoryYouth && age >= 18 && age <= 25 {
		c := models.CategoryFuture
		suggested = &c
	} else if (cat == models.CategoryYouth || cat == models.CategoryFuture) && age > 25 {
		c := models.CategoryWorld
		suggested = &c
	}
	return Eligibility{Eligible: false, Age: age, Suggested: suggested}
}

// ValidAge checks a declared submitter age against the category's range.
// Unlike the eligibility gate this also enforces the minimum.
func ValidAge(age int, cat models.Category) bool {
	cfg := Config(cat)
	if age < cfg.AgeMin {
		return false
	}
	return cfg.Unbounded || age <= cfg.AgeMax
}
