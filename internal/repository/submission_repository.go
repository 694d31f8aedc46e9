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

var ErrDuplicateApplication = errors.New("application id already exists")

type SubmissionRepository struct {
	col *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{col: db.Collection("submissions")}
}

func (r *SubmissionRepository) Insert(ctx context.Context, s *models.Submission) error {
	_, err := r.col.InsertOne(ctx, s)
	if err == nil {
		return nil
	}
	var we mongo.WriteException
	if errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000 {
		return ErrDuplicateApplication
	}
	return err
}

// FindByApplicationID returns (nil, nil) when the application does not exist.
func (r *SubmissionRepository) FindByApplicationID(ctx context.Context, appID string) (*models.Submission, error) {
	var s models.Submission
	err := r.col.FindOne(ctx, bson.M{"application_id": appID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubmissionRepository) FindByUser(ctx context.Context, uid string) ([]models.Submission, error) {
	cur, err := r.col.Find(ctx, bson.M{"user_id": uid},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Submission
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Save replaces the whole document keyed by application id. Drafts are
// mutated field-by-field client side but persisted as full snapshots.
func (r *SubmissionRepository) Save(ctx context.Context, s *models.Submission) error {
	s.UpdatedAt = time.Now().UTC()
	_, err := r.col.ReplaceOne(ctx,
		bson.M{"application_id": s.ApplicationID},
		s,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *SubmissionRepository) Update(ctx context.Context, appID string, fields bson.M) error {
	fields["updated_at"] = time.Now().UTC()
	_, err := r.col.UpdateOne(ctx, bson.M{"application_id": appID}, bson.M{"$set": fields})
	return err
}
