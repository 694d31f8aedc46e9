package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Role string

const (
	RoleNone       Role = ""
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

type UserProfile struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"-"`
	UID           string        `bson:"uid" json:"uid"`
	Email         string        `bson:"email" json:"email"`
	EmailVerified bool          `bson:"email_verified" json:"emailVerified"`
	PasswordHash  string        `bson:"password_hash,omitempty" json:"-"`

	FullNameEN  string     `bson:"fullname_en" json:"fullNameEN"`
	FullNameTH  string     `bson:"fullname_th,omitempty" json:"fullNameTH,omitempty"`
	BirthDate   *time.Time `bson:"birth_date,omitempty" json:"birthDate,omitempty"`
	Age         int        `bson:"age,omitempty" json:"age,omitempty"`
	PhoneNumber string     `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
	PhotoURL    string     `bson:"photo_url,omitempty" json:"photoURL,omitempty"`

	Role Role `bson:"role,omitempty" json:"role,omitempty"`

	CreatedAt time.Time `bson:"created_at,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// IsAdminUser reports whether the profile carries an admin-qualifying role.
func (p *UserProfile) IsAdminUser() bool {
	if p == nil {
		return false
	}
	return p.Role == RoleAdmin || p.Role == RoleSuperAdmin
}

// IsComplete checks profile completeness from actual field values.
// Admin users are always considered complete.
func (p *UserProfile) IsComplete() bool {
	if p == nil {
		return false
	}
	if p.IsAdminUser() {
		return true
	}
	if strings.TrimSpace(p.FullNameEN) == "" ||
		strings.TrimSpace(p.Email) == "" ||
		strings.TrimSpace(p.PhoneNumber) == "" ||
		p.BirthDate == nil {
		return false
	}
	year := p.BirthDate.Year()
	return year > 1900 && year < time.Now().Year()
}

// NeedsProfileSetup reports whether the user should be sent to profile setup.
// Admin users never need setup.
func (p *UserProfile) NeedsProfileSetup() bool {
	if p == nil {
		return false
	}
	if p.IsAdminUser() {
		return false
	}
	return !p.IsComplete()
}
