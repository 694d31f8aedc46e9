package dto

type AdminGrantDTO struct {
	UID            string `json:"uid" validate:"required"`
	AdminRole      string `json:"adminRole" validate:"required,oneof=admin super-admin moderator"`
	AdminLevel     string `json:"adminLevel" validate:"required,oneof=junior senior lead director"`
	Department     string `json:"department"`
	Responsibility string `json:"responsibility"`
}
