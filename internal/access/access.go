// Package access resolves a user's admin standing from the profiles and
// admins collections and exposes permission-check helpers to the HTTP layer.
package access

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/MdSponx/cifan-2025-film-festival/internal/models"
	"github.com/MdSponx/cifan-2025-film-festival/internal/permissions"
)

type State string

const (
	StateNotAdmin      State = "not-admin"
	StateAdminBasic    State = "admin-basic"
	StateAdminDetailed State = "admin-detailed"
)

type Tier string

const (
	TierViewer  Tier = "viewer"
	TierScorer  Tier = "scorer"
	TierManager Tier = "manager"
	TierSuper   Tier = "super"
)

// Access is the resolved snapshot for one user.
type Access struct {
	State       State                   `json:"state"`
	IsAdmin     bool                    `json:"isAdmin"`
	Profile     *models.AdminProfile    `json:"adminProfile,omitempty"`
	Permissions permissions.Permissions `json:"permissions"`
}

func (a Access) CheckPermission(name string) bool {
	return a.Permissions.Has(name)
}

func (a Access) HasAnyPermission(names ...string) bool {
	for _, n := range names {
		if a.Permissions.Has(n) {
			return true
		}
	}
	return false
}

// Tier derives the coarse admin tier, evaluated in strict priority order:
// super-admin always wins, then manager, then anything that can score.
func (a Access) Tier() Tier {
	if a.Profile == nil {
		return TierViewer
	}
	if a.Profile.AdminRole == models.AdminRoleSuperAdmin {
		return TierSuper
	}
	if a.Profile.AdminRole == models.AdminRoleAdmin &&
		(a.Profile.AdminLevel == models.AdminLevelDirector || a.Profile.AdminLevel == models.AdminLevelLead) {
		return TierManager
	}
	if a.Permissions.CanScoreApplications {
		return TierScorer
	}
	return TierViewer
}

type ProfileStore interface {
	FindByUID(ctx context.Context, uid string) (*models.UserProfile, error)
}

type AdminStore interface {
	FindByUID(ctx context.Context, uid string) (*models.AdminProfile, error)
}

type Provider struct {
	profiles      ProfileStore
	admins        AdminStore
	fallbackLevel models.AdminLevel
	log           *zap.Logger
}

func NewProvider(profiles ProfileStore, admins AdminStore, fallbackLevel models.AdminLevel, log *zap.Logger) *Provider {
	return &Provider{
		profiles:      profiles,
		admins:        admins,
		fallbackLevel: fallbackLevel,
		log:           log,
	}
}

func notAdmin() Access {
	return Access{State: StateNotAdmin, Permissions: permissions.None()}
}

// Check runs the admin-status state machine for uid. An empty uid (no
// authenticated session) and any profile-read failure both resolve to
// not-admin; a missing or unreadable detailed admin record degrades to a
// synthesized profile rather than failing the whole access check.
func (p *Provider) Check(ctx context.Context, uid string) Access {
	if uid == "" {
		return notAdmin()
	}

	profile, err := p.profiles.FindByUID(ctx, uid)
	if err != nil {
		p.log.Error("admin status check failed", zap.String("uid", uid), zap.Error(err))
		return notAdmin()
	}
	if !profile.IsAdminUser() {
		return notAdmin()
	}

	// Role qualifies. From here on the user is an admin no matter what the
	// detailed lookup yields, to avoid a flash of access-denied.
	detailed, err := p.admins.FindByUID(ctx, uid)
	if err != nil {
		p.log.Warn("detailed admin record unreadable, synthesizing basic profile",
			zap.String("uid", uid), zap.Error(err))
		detailed = nil
	}

	if detailed == nil {
		basic := p.synthesize(profile)
		return Access{
			State:       StateAdminBasic,
			IsAdmin:     true,
			Profile:     basic,
			Permissions: permissions.Calculate(basic.AdminRole, basic.AdminLevel),
		}
	}

	detailed.IsProfileComplete = profile.FullNameEN != "" && profile.Email != ""
	return Access{
		State:       StateAdminDetailed,
		IsAdmin:     true,
		Profile:     detailed,
		Permissions: permissions.Calculate(detailed.AdminRole, detailed.AdminLevel),
	}
}

// Refresh re-reads the detailed admin record and recomputes permissions.
// Read failures are logged only; the prior snapshot is returned unchanged.
// A still-absent record also leaves the snapshot alone.
func (p *Provider) Refresh(ctx context.Context, uid string, cur Access) Access {
	if uid == "" {
		return cur
	}
	detailed, err := p.admins.FindByUID(ctx, uid)
	if err != nil {
		p.log.Error("admin data refresh failed", zap.String("uid", uid), zap.Error(err))
		return cur
	}
	if detailed == nil {
		return cur
	}
	cur.State = StateAdminDetailed
	cur.IsAdmin = true
	cur.Profile = detailed
	cur.Permissions = permissions.Calculate(detailed.AdminRole, detailed.AdminLevel)
	return cur
}

// synthesize builds a default admin profile for a role-bearing user without a
// detailed grant. The level comes from configuration (historically "senior";
// note this hands senior-tier permissions to any profile-level admin role
// without an explicit grant).
func (p *Provider) synthesize(profile *models.UserProfile) *models.AdminProfile {
	now := time.Now().UTC()
	name := profile.FullNameEN
	if name == "" {
		name = "Admin User"
	}
	age := profile.Age
	if age == 0 {
		age = 30
	}
	return &models.AdminProfile{
		UID:               profile.UID,
		Email:             profile.Email,
		EmailVerified:     profile.EmailVerified,
		PhotoURL:          profile.PhotoURL,
		FullNameEN:        name,
		FullNameTH:        profile.FullNameTH,
		BirthDate:         profile.BirthDate,
		Age:               age,
		PhoneNumber:       profile.PhoneNumber,
		AdminRole:         models.AdminRole(profile.Role),
		AdminLevel:        p.fallbackLevel,
		Department:        "Festival Management",
		Responsibility:    "General Administration",
		AdminSince:        now,
		LastActiveAt:      now,
		IsProfileComplete: profile.FullNameEN != "" && profile.Email != "",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
