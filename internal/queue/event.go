// Package queue defines message payloads exchanged over the message broker.
package queue

// PlanCreatedEvent is published when a medication plan has been generated and
// stored. It contains enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary database.
type PlanCreatedEvent struct {
	PlanID         string   `json:"plan_id"`
	UserID         string   `json:"user_id"`
	MedicationName string   `json:"medication_name"`
	FocusAreas     []string `json:"focus_areas"`
	CreatedAt      string   `json:"created_at"`
}

// ReviewCreatedEvent is published when a medication review has been stored.
type ReviewCreatedEvent struct {
	ReviewID string `json:"review_id"`
	UserID   string `json:"user_id"`
	PlanID   string `json:"plan_id"`
	Date     string `json:"date"`
	Rating   int    `json:"rating"`
}
