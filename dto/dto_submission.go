package dto

import (
	"github.com/MdSponx/cifan-2025-film-festival/internal/models"
)

// SubmissionPatchDTO is the partial-update body for drafts. Field names
// mirror the form's canonical field keys; nil means untouched.
type SubmissionPatchDTO struct {
	Fields     map[string]string    `json:"fields,omitempty"`
	Genres     *[]string            `json:"genres,omitempty"`
	Format     *string              `json:"format,omitempty" validate:"omitempty,oneof=live-action animation"`
	Crew       *[]models.CrewMember `json:"crewMembers,omitempty"`
	Agreements map[string]bool      `json:"agreements,omitempty"`
	Lang       string               `json:"lang,omitempty" validate:"omitempty,oneof=en th"`
}

type NationalityDTO struct {
	IsThai bool `json:"isThai"`
}

type ValidateResponseDTO struct {
	Valid  bool              `json:"valid"`
	Errors models.FormErrors `json:"errors"`
}

type CategoryDTO struct {
	Category   string `json:"category"`
	Title      string `json:"title"`
	AgeMin     int    `json:"ageMin"`
	AgeMax     int    `json:"ageMax"`
	Unbounded  bool   `json:"unbounded"`
	PrizeEN    string `json:"prizeEN"`
	PrizeTH    string `json:"prizeTH"`
	DeadlineEN string `json:"deadlineEN"`
	DeadlineTH string `json:"deadlineTH"`
}
