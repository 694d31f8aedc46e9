package dto

import (
	"time"

	"github.com/MdSponx/cifan-2025-film-festival/internal/models"
)

type ProfileDTO struct {
	UID           string     `json:"uid"`
	Email         string     `json:"email"`
	EmailVerified bool       `json:"emailVerified"`
	FullNameEN    string     `json:"fullNameEN"`
	FullNameTH    string     `json:"fullNameTH,omitempty"`
	BirthDate     *time.Time `json:"birthDate,omitempty"`
	Age           int        `json:"age,omitempty"`
	PhoneNumber   string     `json:"phoneNumber,omitempty"`
	PhotoURL      string     `json:"photoURL,omitempty"`
	Role          string     `json:"role,omitempty"`
	IsComplete    bool       `json:"isProfileComplete"`
}

func ProfileDTOFromModel(p *models.UserProfile) ProfileDTO {
	return ProfileDTO{
		UID:           p.UID,
		Email:         p.Email,
		EmailVerified: p.EmailVerified,
		FullNameEN:    p.FullNameEN,
		FullNameTH:    p.FullNameTH,
		BirthDate:     p.BirthDate,
		Age:           p.Age,
		PhoneNumber:   p.PhoneNumber,
		PhotoURL:      p.PhotoURL,
		Role:          string(p.Role),
		IsComplete:    p.IsComplete(),
	}
}

type ProfileUpdateDTO struct {
	FullNameEN  string     `json:"fullNameEN" validate:"omitempty,min=1"`
	FullNameTH  string     `json:"fullNameTH" validate:"omitempty,min=1"`
	BirthDate   *time.Time `json:"birthDate"`
	PhoneNumber string     `json:"phoneNumber" validate:"omitempty,min=6"`
	PhotoURL    string     `json:"photoURL" validate:"omitempty,url"`
}
