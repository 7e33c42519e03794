package model

import (
    "time"

    "go.mongodb.org/mongo-driver/bson/primitive"
)

// MedicationPlan is a generated review plan stored in the `medication_plans`
// collection.  UserID references the owning user; the reference is not
// verified at insert time.  FocusAreas keeps the order the caller submitted.
type MedicationPlan struct {
    ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
    UserID         primitive.ObjectID `bson:"user_id" json:"user_id"`
    MedicationName string             `bson:"medication_name" json:"medication_name"`
    PlanContent    string             `bson:"plan_content" json:"plan_content"`
    CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
    FocusAreas     []string           `bson:"focus_areas" json:"focus_areas"`
}
