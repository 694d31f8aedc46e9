package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func EnsureProfileIndexes(db *mongo.Database) error {
	_, err := db.Collection("profiles").Indexes().CreateMany(
		context.Background(),
		[]mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "uid", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_uid"),
			},
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_email"),
			},
		},
	)
	return err
}

func EnsureSubmissionIndexes(db *mongo.Database) error {
	_, err := db.Collection("submissions").Indexes().CreateMany(
		context.Background(),
		[]mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "application_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_application_id"),
			},
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("user_created"),
			},
		},
	)
	return err
}

func EnsureSessionIndexes(db *mongo.Database) error {
	_, err := db.Collection("sessions").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "uid", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_uid"),
		},
	)
	return err
}

func EnsureAdminIndexes(db *mongo.Database) error {
	_, err := db.Collection("admins").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "uid", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_uid"),
		},
	)
	return err
}
