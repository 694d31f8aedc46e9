package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/MdSponx/cifan-2025-film-festival/internal/models"
)

type ProfileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{col: db.Collection("profiles")}
}

// FindByUID returns (nil, nil) when no profile document exists; consumers
// are expected to tolerate absence.
func (r *ProfileRepository) FindByUID(ctx context.Context, uid string) (*models.UserProfile, error) {
	var p models.UserProfile
	err := r.col.FindOne(ctx, bson.M{"uid": uid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	var p models.UserProfile
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) Insert(ctx context.Context, p *models.UserProfile) error {
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *ProfileRepository) Update(ctx context.Context, uid string, fields bson.M) error {
	fields["updated_at"] = time.Now().UTC()
	_, err := r.col.UpdateOne(ctx, bson.M{"uid": uid}, bson.M{"$set": fields})
	return err
}

func (r *ProfileRepository) SetEmailVerified(ctx context.Context, uid string, verified bool) error {
	return r.Update(ctx, uid, bson.M{"email_verified": verified})
}
