package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medman/medman/internal/model"
)

// PlanRepo wraps the 'medication_plans' collection.
type PlanRepo struct{ C *mongo.Collection }

func NewPlanRepo(db *mongo.Database) *PlanRepo {
	return &PlanRepo{C: db.Collection("medication_plans")}
}

// Insert stores a new plan and returns the assigned id.
func (r *PlanRepo) Insert(ctx context.Context, p *model.MedicationPlan) (primitive.ObjectID, error) {
	res, err := r.C.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("inserted id is not an ObjectID")
	}
	return id, nil
}

// FindByUser returns every plan owned by the given user.
func (r *PlanRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.MedicationPlan, error) {
	cur, err := r.C.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	plans := []model.MedicationPlan{}
	if err := cur.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}
