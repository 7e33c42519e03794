package service

// This file implements MedicationService: plan generation (delegating the
// text itself to the external AI collaborator) and review creation/listing.
// User and plan references are accepted without an existence check; the
// store assigns ids and the records are returned amended with them.

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medman/medman/internal/apperr"
	"github.com/medman/medman/internal/model"
	"github.com/medman/medman/internal/queue"
)

// PlanStore is the slice of the plans repository the workflow needs.
type PlanStore interface {
	Insert(ctx context.Context, p *model.MedicationPlan) (primitive.ObjectID, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.MedicationPlan, error)
}

// ReviewStore is the slice of the reviews repository the workflow needs.
type ReviewStore interface {
	Insert(ctx context.Context, r *model.MedicationReview) (primitive.ObjectID, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]model.MedicationReview, error)
}

// PlanGenerator produces the free-text plan content. Single attempt, no
// retries; any failure is surfaced to the caller as a validation error.
type PlanGenerator interface {
	Generate(ctx context.Context, medicationName string, focusAreas []string) (string, error)
}

// EventPublisher emits domain events after successful writes. Publishing is
// best effort: failures are logged by the publisher and never fail the
// request.
type EventPublisher interface {
	PlanCreated(ctx context.Context, e queue.PlanCreatedEvent) error
	ReviewCreated(ctx context.Context, e queue.ReviewCreatedEvent) error
}

// MedicationService orchestrates plan and review workflows.
type MedicationService struct {
	Plans   PlanStore
	Reviews ReviewStore
	Planner PlanGenerator
	Events  EventPublisher // optional
}

// NewMedicationService constructs a MedicationService. events may be nil.
func NewMedicationService(plans PlanStore, reviews ReviewStore, planner PlanGenerator, events EventPublisher) *MedicationService {
	return &MedicationService{Plans: plans, Reviews: reviews, Planner: planner, Events: events}
}

// GeneratePlan validates the user id, asks the AI collaborator for plan
// content, stores the plan and returns it amended with its assigned id. The
// id is parsed before anything else so a malformed id never reaches the AI
// service or the store.
func (s *MedicationService) GeneratePlan(ctx context.Context, userID, medicationName string, focusAreas []string) (*model.MedicationPlan, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.NewValidationf("invalid user id: %v", err)
	}

	content, err := s.Planner.Generate(ctx, medicationName, focusAreas)
	if err != nil {
		return nil, apperr.NewValidation(err.Error())
	}

	plan := &model.MedicationPlan{
		UserID:         uid,
		MedicationName: medicationName,
		PlanContent:    content,
		CreatedAt:      time.Now().UTC(),
		FocusAreas:     focusAreas,
	}
	id, err := s.Plans.Insert(ctx, plan)
	if err != nil {
		return nil, apperr.WrapStore(err)
	}
	plan.ID = id

	if s.Events != nil {
		_ = s.Events.PlanCreated(ctx, queue.PlanCreatedEvent{
			PlanID:         id.Hex(),
			UserID:         uid.Hex(),
			MedicationName: medicationName,
			FocusAreas:     focusAreas,
			CreatedAt:      plan.CreatedAt.Format(time.RFC3339),
		})
	}
	return plan, nil
}

// CreateReview validates the ids and the RFC 3339 date, stores the review
// and returns it amended with its assigned id. The referenced plan is not
// checked for existence.
func (s *MedicationService) CreateReview(ctx context.Context, userID, planID, date, symptoms, sideEffects, notes string, rating int) (*model.MedicationReview, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.NewValidationf("invalid user id: %v", err)
	}
	pid, err := primitive.ObjectIDFromHex(planID)
	if err != nil {
		return nil, apperr.NewValidationf("invalid plan id: %v", err)
	}
	when, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return nil, apperr.NewValidationf("Invalid date format: %v", err)
	}

	review := &model.MedicationReview{
		UserID:      uid,
		PlanID:      pid,
		Date:        when,
		Symptoms:    symptoms,
		SideEffects: sideEffects,
		Notes:       notes,
		Rating:      rating,
	}
	id, err := s.Reviews.Insert(ctx, review)
	if err != nil {
		return nil, apperr.WrapStore(err)
	}
	review.ID = id

	if s.Events != nil {
		_ = s.Events.ReviewCreated(ctx, queue.ReviewCreatedEvent{
			ReviewID: id.Hex(),
			UserID:   uid.Hex(),
			PlanID:   pid.Hex(),
			Date:     when.Format(time.RFC3339),
			Rating:   rating,
		})
	}
	return review, nil
}

// ListReviews returns every review owned by the given user. The id comes
// from the verified token subject, not from client input.
func (s *MedicationService) ListReviews(ctx context.Context, userID string) ([]model.MedicationReview, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.NewValidationf("invalid user id: %v", err)
	}
	reviews, err := s.Reviews.FindByUser(ctx, uid)
	if err != nil {
		return nil, apperr.WrapStore(err)
	}
	return reviews, nil
}

// ListPlans returns every plan owned by the given user.
func (s *MedicationService) ListPlans(ctx context.Context, userID string) ([]model.MedicationPlan, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.NewValidationf("invalid user id: %v", err)
	}
	plans, err := s.Plans.FindByUser(ctx, uid)
	if err != nil {
		return nil, apperr.WrapStore(err)
	}
	return plans, nil
}
