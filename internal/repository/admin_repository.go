package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/MdSponx/cifan-2025-film-festival/internal/models"
)

type AdminRepository struct {
	col *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{col: db.Collection("admins")}
}

// FindByUID returns (nil, nil) when no detailed admin record exists.
func (r *AdminRepository) FindByUID(ctx context.Context, uid string) (*models.AdminProfile, error) {
	var a models.AdminProfile
	err := r.col.FindOne(ctx, bson.M{"uid": uid}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) Upsert(ctx context.Context, a *models.AdminProfile) error {
	a.UpdatedAt = time.Now().UTC()
	_, err := r.col.ReplaceOne(ctx,
		bson.M{"uid": a.UID},
		a,
		options.Replace().SetUpsert(true),
	)
	return err
}
