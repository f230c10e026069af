package repository

import (
	"context"
	"intakeflow/internal/apierr"
	"intakeflow/internal/model"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoIntakeRepo struct {
	collection *mongo.Collection
}

// NewMongoIntakeRepo stores intakes as documents in the intakes collection
func NewMongoIntakeRepo(db *mongo.Database) IntakeRepo {
	return &mongoIntakeRepo{
		collection: db.Collection(IntakesTable),
	}
}

func (r *mongoIntakeRepo) Insert(ctx context.Context, rec *model.SubmissionRecord, accessToken string) (string, error) {
	now := time.Now()
	doc := &model.Intake{
		CreatedAt:        now,
		UpdatedAt:        now,
		SubmissionRecord: *rec,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", classifyMongoError(err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func classifyMongoError(err error) error {
	switch {
	case mongo.IsDuplicateKeyError(err):
		return &StoreError{Code: apierr.BackendUniqueViolation, Message: err.Error(), Err: err}
	case mongo.IsNetworkError(err), mongo.IsTimeout(err):
		return &StoreError{Code: apierr.BackendConnection, Message: err.Error(), Err: err}
	}
	return err
}
