package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medman/medman/internal/model"
)

// ReviewRepo wraps the 'medication_reviews' collection.
type ReviewRepo struct{ C *mongo.Collection }

func NewReviewRepo(db *mongo.Database) *ReviewRepo {
	return &ReviewRepo{C: db.Collection("medication_reviews")}
}

// Insert stores a new review and returns the assigned id.
func (r *ReviewRepo) Insert(ctx context.Context, rev *model.MedicationReview) (primitive.ObjectID, error) {
	res, err := r.C.InsertOne(ctx, rev)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("inserted id is not an ObjectID")
	}
	return id, nil
}

// FindByUser returns every review owned by the given user, fully collected
// (no pagination).
func (r *ReviewRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.MedicationReview, error) {
	cur, err := r.C.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	reviews := []model.MedicationReview{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
