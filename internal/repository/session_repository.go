package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	SessionAwaitingRedirect = "awaiting_redirect"
	SessionRedirected       = "redirected"
)

// SessionRepository tracks one login-session document per user carrying the
// one-shot post-login redirect state.
type SessionRepository struct {
	col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{col: db.Collection("sessions")}
}

// Start resets the user's session to the awaiting state. Called on login, so
// every new authenticated session gets a fresh redirect decision.
func (r *SessionRepository) Start(ctx context.Context, uid string) error {
	now := time.Now().UTC()
	_, err := r.col.ReplaceOne(ctx,
		bson.M{"uid": uid},
		bson.M{"uid": uid, "state": SessionAwaitingRedirect, "created_at": now},
		options.Replace().SetUpsert(true),
	)
	return err
}

// MarkRedirected transitions awaiting_redirect -> redirected and reports
// whether this call performed the transition. The conditional update makes
// the redirect edge-triggered: concurrent establishes race on the same
// document and only one wins.
func (r *SessionRepository) MarkRedirected(ctx context.Context, uid string) (bool, error) {
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"uid": uid, "state": SessionAwaitingRedirect},
		bson.M{"$set": bson.M{"state": SessionRedirected}},
	).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// End removes the session document when the user signs out.
func (r *SessionRepository) End(ctx context.Context, uid string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"uid": uid})
	return err
}
