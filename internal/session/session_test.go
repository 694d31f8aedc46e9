package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MdSponx/cifan-2025-film-festival/internal/models"
	"github.com/MdSponx/cifan-2025-film-festival/internal/navigation"
)

type fakeProfiles struct {
	profile *models.UserProfile
	err     error
	syncErr error
	synced  []bool
}

func (f *fakeProfiles) FindByUID(context.Context, string) (*models.UserProfile, error) {
	return f.profile, f.err
}

func (f *fakeProfiles) SetEmailVerified(_ context.Context, _ string, verified bool) error {
	if f.syncErr != nil {
		return f.syncErr
	}
	f.synced = append(f.synced, verified)
	if f.profile != nil {
		f.profile.EmailVerified = verified
	}
	return nil
}

// fakeSessions mimics the awaiting -> redirected transition in memory.
type fakeSessions struct {
	state   string
	markErr error
}

func (f *fakeSessions) Start(context.Context, string) error {
	f.state = "awaiting_redirect"
	return nil
}

func (f *fakeSessions) MarkRedirected(context.Context, string) (bool, error) {
	if f.markErr != nil {
		return false, f.markErr
	}
	if f.state == "awaiting_redirect" {
		f.state = "redirected"
		return true, nil
	}
	return false, nil
}

func (f *fakeSessions) End(context.Context, string) error {
	f.state = ""
	return nil
}

func completeProfile() *models.UserProfile {
	bd := time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC)
	return &models.UserProfile{
		UID:           "u1",
		Email:         "user@example.com",
		EmailVerified: true,
		FullNameEN:    "Somchai Filmmaker",
		PhoneNumber:   "0812345678",
		BirthDate:     &bd,
		Role:          models.RoleUser,
	}
}

func TestEstablishRedirectsOncePerLogin(t *testing.T) {
	profiles := &fakeProfiles{profile: completeProfile()}
	sessions := &fakeSessions{}
	nav := &navigation.Recorder{}
	p := NewProvider(profiles, sessions, nav, zap.NewNop())

	require.NoError(t, p.Begin(context.Background(), "u1"))

	sess, err := p.Establish(context.Background(), "u1", true, navigation.RouteHome)
	require.NoError(t, err)
	assert.Equal(t, navigation.RouteProfileEdit, sess.Redirect)
	require.Len(t, nav.Calls, 1)
	assert.Equal(t, navigation.RouteProfileEdit, nav.Calls[0].Route)

	// A second establish in the same login session must not redirect again.
	sess, err = p.Establish(context.Background(), "u1", true, navigation.RouteHome)
	require.NoError(t, err)
	assert.Equal(t, navigation.RouteNone, sess.Redirect)
	assert.Len(t, nav.Calls, 1)
}

func TestEstablishNewLoginRedirectsAgain(t *testing.T) {
	profiles := &fakeProfiles{profile: completeProfile()}
	sessions := &fakeSessions{}
	nav := &navigation.Recorder{}
	p := NewProvider(profiles, sessions, nav, zap.NewNop())

	require.NoError(t, p.Begin(context.Background(), "u1"))
	_, err := p.Establish(context.Background(), "u1", true, navigation.RouteHome)
	require.NoError(t, err)

	require.NoError(t, p.End(context.Background(), "u1"))
	require.NoError(t, p.Begin(context.Background(), "u1"))

	sess, err := p.Establish(context.Background(), "u1", true, navigation.RouteHome)
	require.NoError(t, err)
	assert.Equal(t, navigation.RouteProfileEdit, sess.Redirect)
	assert.Len(t, nav.Calls, 2)
}

func TestEstablishPreservesDeepLinks(t *testing.T) {
	profiles := &fakeProfiles{profile: completeProfile()}
	sessions := &fakeSessions{}
	nav := &navigation.Recorder{}
	p := NewProvider(profiles, sessions, nav, zap.NewNop())

	require.NoError(t, p.Begin(context.Background(), "u1"))

	sess, err := p.Establish(context.Background(), "u1", true, navigation.RouteMyApplications)
	require.NoError(t, err)
	assert.Equal(t, navigation.RouteNone, sess.Redirect)
	assert.Empty(t, nav.Calls)

	// The untouched session still allows a later auth-adjacent redirect.
	sess, err = p.Establish(context.Background(), "u1", true, navigation.RouteSignIn)
	require.NoError(t, err)
	assert.Equal(t, navigation.RouteProfileEdit, sess.Redirect)
}

func TestEstablishUnverifiedEmailNeverRedirects(t *testing.T) {
	profile := completeProfile()
	profile.EmailVerified = false
	profiles := &fakeProfiles{profile: profile}
	sessions := &fakeSessions{}
	nav := &navigation.Recorder{}
	p := NewProvider(profiles, sessions, nav, zap.NewNop())

	require.NoError(t, p.Begin(context.Background(), "u1"))

	sess, err := p.Establish(context.Background(), "u1", false, navigation.RouteHome)
	require.NoError(t, err)
	assert.Equal(t, navigation.RouteNone, sess.Redirect)
	assert.Empty(t, nav.Calls)
	assert.Equal(t, "awaiting_redirect", sessions.state, "redirect chance must be kept for after verification")
}

func TestEstablishAdminGoesToDashboard(t *testing.T) {
	profile := completeProfile()
	profile.Role = models.RoleAdmin
	profiles := &fakeProfiles{profile: profile}
	sessions := &fakeSessions{}
	p := NewProvider(profiles, sessions, &navigation.Recorder{}, zap.NewNop())

	require.NoError(t, p.Begin(context.Background(), "u1"))

	sess, err := p.Establish(context.Background(), "u1", true, navigation.RouteNone)
	require.NoError(t, err)
	assert.Equal(t, navigation.RouteAdminDashboard, sess.Redirect)
}

func TestEstablishIncompleteProfileGoesToSetup(t *testing.T) {
	profile := completeProfile()
	profile.PhoneNumber = ""
	profiles := &fakeProfiles{profile: profile}
	sessions := &fakeSessions{}
	p := NewProvider(profiles, sessions, &navigation.Recorder{}, zap.NewNop())

	require.NoError(t, p.Begin(context.Background(), "u1"))

	sess, err := p.Establish(context.Background(), "u1", true, navigation.RouteProfileSetup)
	require.NoError(t, err)
	assert.Equal(t, navigation.RouteProfileSetup, sess.Redirect)
}

func TestEstablishSyncsVerifiedFlag(t *testing.T) {
	profile := completeProfile()
	profile.EmailVerified = false
	profiles := &fakeProfiles{profile: profile}
	p := NewProvider(profiles, &fakeSessions{}, navigation.Noop{}, zap.NewNop())

	sess, err := p.Establish(context.Background(), "u1", true, navigation.RouteMyApplications)
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, profiles.synced)
	assert.True(t, sess.Profile.EmailVerified)
}

func TestEstablishSyncFailureIsNotFatal(t *testing.T) {
	profile := completeProfile()
	profile.EmailVerified = false
	profiles := &fakeProfiles{profile: profile, syncErr: errors.New("down")}
	sessions := &fakeSessions{}
	p := NewProvider(profiles, sessions, &navigation.Recorder{}, zap.NewNop())

	require.NoError(t, p.Begin(context.Background(), "u1"))

	sess, err := p.Establish(context.Background(), "u1", true, navigation.RouteHome)
	require.NoError(t, err)
	assert.Equal(t, navigation.RouteProfileEdit, sess.Redirect)
}

func TestEstablishMissingProfile(t *testing.T) {
	sessions := &fakeSessions{}
	nav := &navigation.Recorder{}
	p := NewProvider(&fakeProfiles{profile: nil}, sessions, nav, zap.NewNop())

	require.NoError(t, p.Begin(context.Background(), "u1"))

	sess, err := p.Establish(context.Background(), "u1", true, navigation.RouteHome)
	require.NoError(t, err)
	assert.Nil(t, sess.Profile)
	assert.Equal(t, navigation.RouteNone, sess.Redirect)
	assert.Empty(t, nav.Calls)
}

func TestEstablishProfileReadError(t *testing.T) {
	p := NewProvider(&fakeProfiles{err: errors.New("down")}, &fakeSessions{}, navigation.Noop{}, zap.NewNop())

	_, err := p.Establish(context.Background(), "u1", true, navigation.RouteHome)
	assert.Error(t, err)
}

func TestEstablishMarkRedirectedFailureSkipsNavigation(t *testing.T) {
	profiles := &fakeProfiles{profile: completeProfile()}
	sessions := &fakeSessions{markErr: errors.New("down")}
	nav := &navigation.Recorder{}
	p := NewProvider(profiles, sessions, nav, zap.NewNop())

	sess, err := p.Establish(context.Background(), "u1", true, navigation.RouteHome)
	require.NoError(t, err)
	assert.Equal(t, navigation.RouteNone, sess.Redirect)
	assert.Empty(t, nav.Calls)
}
