package model

import (
    "time"

    "go.mongodb.org/mongo-driver/bson/primitive"
)

// MedicationReview is a periodic check-in stored in the `medication_reviews`
// collection.  Date is caller-supplied (RFC 3339) rather than the insert
// time.  PlanID is kept as submitted; existence of the referenced plan is not
// enforced here.
type MedicationReview struct {
    ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
    UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
    PlanID      primitive.ObjectID `bson:"plan_id" json:"plan_id"`
    Date        time.Time          `bson:"date" json:"date"`
    Symptoms    string             `bson:"symptoms" json:"symptoms"`
    SideEffects string             `bson:"side_effects" json:"side_effects"`
    Notes       string             `bson:"notes" json:"notes"`
    Rating      int                `bson:"rating" json:"rating"`
}
