package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type AdminRole string

const (
	AdminRoleAdmin      AdminRole = "admin"
	AdminRoleSuperAdmin AdminRole = "super-admin"
	AdminRoleModerator  AdminRole = "moderator"
)

type AdminLevel string

const (
	AdminLevelJunior   AdminLevel = "junior"
	AdminLevelSenior   AdminLevel = "senior"
	AdminLevelLead     AdminLevel = "lead"
	AdminLevelDirector AdminLevel = "director"
)

// ParseAdminLevel maps a string to a known level, falling back to senior.
func ParseAdminLevel(s string) AdminLevel {
	switch AdminLevel(s) {
	case AdminLevelJunior, AdminLevelSenior, AdminLevelLead, AdminLevelDirector:
		return AdminLevel(s)
	}
	return AdminLevelSenior
}

// AdminProfile is the detailed admin record in the "admins" collection.
// A role-bearing user without one gets a synthesized profile instead.
type AdminProfile struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"-"`
	UID           string        `bson:"uid" json:"uid"`
	Email         string        `bson:"email" json:"email"`
	EmailVerified bool          `bson:"email_verified" json:"emailVerified"`
	PhotoURL      string        `bson:"photo_url,omitempty" json:"photoURL,omitempty"`

	FullNameEN  string     `bson:"fullname_en" json:"fullNameEN"`
	FullNameTH  string     `bson:"fullname_th,omitempty" json:"fullNameTH,omitempty"`
	BirthDate   *time.Time `bson:"birth_date,omitempty" json:"birthDate,omitempty"`
	Age         int        `bson:"age,omitempty" json:"age,omitempty"`
	PhoneNumber string     `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`

	AdminRole      AdminRole  `bson:"admin_role" json:"adminRole"`
	AdminLevel     AdminLevel `bson:"admin_level" json:"adminLevel"`
	Department     string     `bson:"department,omitempty" json:"department,omitempty"`
	Responsibility string     `bson:"responsibility,omitempty" json:"responsibility,omitempty"`

	AdminSince        time.Time `bson:"admin_since,omitempty" json:"adminSince,omitempty"`
	LastActiveAt      time.Time `bson:"last_active_at,omitempty" json:"lastActiveAt,omitempty"`
	IsProfileComplete bool      `bson:"is_profile_complete" json:"isProfileComplete"`

	CreatedAt time.Time `bson:"created_at,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}
