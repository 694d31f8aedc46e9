package dto

type RegisterDTO struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	FullNameEN string `json:"fullNameEN" validate:"required"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	Token string     `json:"token"`
	User  ProfileDTO `json:"user"`
}

// EstablishSessionDTO carries the client's current route so the server can
// decide whether a one-shot post-login redirect applies.
type EstablishSessionDTO struct {
	CurrentRoute string `json:"currentRoute"`
}

type SessionResponseDTO struct {
	UID           string      `json:"uid"`
	EmailVerified bool        `json:"emailVerified"`
	Profile       *ProfileDTO `json:"profile,omitempty"`
	Redirect      string      `json:"redirect,omitempty"`
}
