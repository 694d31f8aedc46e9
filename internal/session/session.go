// Package session wraps the identity layer's login events: it loads the
// user's profile, keeps the stored email-verified flag in sync with the
// token, and decides the one-shot post-login redirect.
package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MdSponx/cifan-2025-film-festival/internal/models"
	"github.com/MdSponx/cifan-2025-film-festival/internal/navigation"
)

type ProfileStore interface {
	FindByUID(ctx context.Context, uid string) (*models.UserProfile, error)
	SetEmailVerified(ctx context.Context, uid string, verified bool) error
}

// Store tracks the per-login redirect state. Start resets to awaiting on
// login; MarkRedirected flips awaiting -> redirected exactly once; End clears
// the state when the session ends.
type Store interface {
	Start(ctx context.Context, uid string) error
	MarkRedirected(ctx context.Context, uid string) (bool, error)
	End(ctx context.Context, uid string) error
}

type Provider struct {
	profiles ProfileStore
	sessions Store
	nav      navigation.Navigator
	log      *zap.Logger
}

func NewProvider(profiles ProfileStore, sessions Store, nav navigation.Navigator, log *zap.Logger) *Provider {
	return &Provider{profiles: profiles, sessions: sessions, nav: nav, log: log}
}

// Session is the resolved view handed to callers.
type Session struct {
	UID           string              `json:"uid"`
	EmailVerified bool                `json:"emailVerified"`
	Profile       *models.UserProfile `json:"profile,omitempty"`
	Redirect      navigation.Route    `json:"redirect,omitempty"`
}

// Begin records a fresh login session so the next Establish may redirect.
func (p *Provider) Begin(ctx context.Context, uid string) error {
	return p.sessions.Start(ctx, uid)
}

// End tears the session state down; the next login starts over.
func (p *Provider) End(ctx context.Context, uid string) error {
	return p.sessions.End(ctx, uid)
}

// Establish handles one authenticated session event. It loads the profile,
// reconciles the email-verified flag (best effort, failures logged), and
// decides the post-login redirect. The redirect fires at most once per login
// session and only when the client sits on an auth-adjacent route: admins go
// to the dashboard, incomplete profiles to setup, everyone else to the
// default profile page.
func (p *Provider) Establish(ctx context.Context, uid string, emailVerified bool, current navigation.Route) (Session, error) {
	sess := Session{UID: uid, EmailVerified: emailVerified}

	profile, err := p.profiles.FindByUID(ctx, uid)
	if err != nil {
		return sess, fmt.Errorf("failed to load profile: %w", err)
	}

	if profile != nil && profile.EmailVerified != emailVerified {
		if err := p.profiles.SetEmailVerified(ctx, uid, emailVerified); err != nil {
			p.log.Error("email verification sync failed", zap.String("uid", uid), zap.Error(err))
		} else {
			profile.EmailVerified = emailVerified
		}
	}
	sess.Profile = profile

	if profile == nil || !emailVerified || !navigation.AuthAdjacent(current) {
		return sess, nil
	}

	route := postAuthRoute(profile)

	// The state transition is the edge trigger: only the call that wins the
	// awaiting -> redirected flip performs the navigation.
	first, err := p.sessions.MarkRedirected(ctx, uid)
	if err != nil {
		p.log.Error("redirect state transition failed", zap.String("uid", uid), zap.Error(err))
		return sess, nil
	}
	if !first {
		return sess, nil
	}

	p.nav.Navigate(route, nil)
	sess.Redirect = route
	return sess, nil
}

func postAuthRoute(profile *models.UserProfile) navigation.Route {
	if profile.IsAdminUser() {
		return navigation.RouteAdminDashboard
	}
	if profile.NeedsProfileSetup() {
		return navigation.RouteProfileSetup
	}
	return navigation.RouteProfileEdit
}
