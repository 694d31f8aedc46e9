// Package permissions derives the capability vector for an admin from the
// (adminRole, adminLevel) pair. The computation is a pure table: nothing else
// on the profile may influence it, and it is recomputed on every load rather
// than persisted.
package permissions

import "github.com/MdSponx/cifan-2025-film-festival/internal/models"

type Permissions struct {
	CanViewDashboard        bool `json:"canViewDashboard"`
	CanViewApplications     bool `json:"canViewApplications"`
	CanScoreApplications    bool `json:"canScoreApplications"`
	CanApproveApplications  bool `json:"canApproveApplications"`
	CanExportData           bool `json:"canExportData"`
	CanManageUsers          bool `json:"canManageUsers"`
	CanManageContent        bool `json:"canManageContent"`
	CanAccessSystemSettings bool `json:"canAccessSystemSettings"`
	CanGenerateReports      bool `json:"canGenerateReports"`
	CanFlagApplications     bool `json:"canFlagApplications"`
	CanDeleteApplications   bool `json:"canDeleteApplications"`
	CanEditApplications     bool `json:"canEditApplications"`
}

// Permission names used by checkPermission-style lookups.
const (
	ViewDashboard        = "canViewDashboard"
	ViewApplications     = "canViewApplications"
	ScoreApplications    = "canScoreApplications"
	ApproveApplications  = "canApproveApplications"
	ExportData           = "canExportData"
	ManageUsers          = "canManageUsers"
	ManageContent        = "canManageContent"
	AccessSystemSettings = "canAccessSystemSettings"
	GenerateReports      = "canGenerateReports"
	FlagApplications     = "canFlagApplications"
	DeleteApplications   = "canDeleteApplications"
	EditApplications     = "canEditApplications"
)

// None is the all-false vector for unauthenticated or non-admin users.
func None() Permissions { return Permissions{} }

// Calculate maps (role, level) to the capability vector. Total function:
// unrecognized roles get the view-only base. Level checks are literal set
// membership, there is no ordering or inheritance between levels.
func Calculate(role models.AdminRole, level models.AdminLevel) Permissions {
	base := Permissions{
		CanViewDashboard:    true,
		CanViewApplications: true,
	}

	switch role {
	case models.AdminRoleSuperAdmin:
		return Permissions{
			CanViewDashboard:        true,
			CanViewApplications:     true,
			CanScoreApplications:    true,
			CanApproveApplications:  true,
			CanExportData:           true,
			CanManageUsers:          true,
			CanManageContent:        true,
			CanAccessSystemSettings: true,
			CanGenerateReports:      true,
			CanFlagApplications:     true,
			CanDeleteApplications:   true,
			CanEditApplications:     true,
		}

	case models.AdminRoleAdmin:
		managerLevel := level == models.AdminLevelDirector || level == models.AdminLevelLead
		return Permissions{
			CanViewDashboard:        true,
			CanViewApplications:     true,
			CanScoreApplications:    true,
			CanApproveApplications:  managerLevel,
			CanExportData:           true,
			CanManageUsers:          managerLevel,
			CanManageContent:        level != models.AdminLevelJunior,
			CanAccessSystemSettings: false,
			CanGenerateReports:      true,
			CanFlagApplications:     true,
			CanDeleteApplications:   managerLevel,
			CanEditApplications:     level != models.AdminLevelJunior,
		}

	case models.AdminRoleModerator:
		senior := level != models.AdminLevelJunior
		return Permissions{
			CanViewDashboard:     true,
			CanViewApplications:  true,
			CanScoreApplications: senior,
			CanExportData:        senior,
			CanGenerateReports:   senior,
			CanFlagApplications:  true,
		}
	}

	return base
}

// Has looks a permission up by name. Unknown names are false.
func (p Permissions) Has(name string) bool {
	switch name {
	case ViewDashboard:
		return p.CanViewDashboard
	case ViewApplications:
		return p.CanViewApplications
	case ScoreApplications:
		return p.CanScoreApplications
	case ApproveApplications:
		return p.CanApproveApplications
	case ExportData:
		return p.CanExportData
	case ManageUsers:
		return p.CanManageUsers
	case ManageContent:
		return p.CanManageContent
	case AccessSystemSettings:
		return p.CanAccessSystemSettings
	case GenerateReports:
		return p.CanGenerateReports
	case FlagApplications:
		return p.CanFlagApplications
	case DeleteApplications:
		return p.CanDeleteApplications
	case EditApplications:
		return p.CanEditApplications
	}
	return false
}
