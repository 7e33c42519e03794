package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medman/medman/internal/service"
)

// MedicationHandler bundles dependencies for plan and review endpoints.
// All routes sit behind the JWT middleware; the acting user is always the
// verified token subject, never client input.
type MedicationHandler struct {
	Med *service.MedicationService
}

func NewMedicationHandler(m *service.MedicationService) *MedicationHandler {
	return &MedicationHandler{Med: m}
}

// ----- DTOs -----

type generatePlanReq struct {
	MedicationName string   `json:"medication_name"`
	FocusAreas     []string `json:"focus_areas"`
}

type createReviewReq struct {
	PlanID      string `json:"plan_id"`
	Date        string `json:"date"`
	Symptoms    string `json:"symptoms"`
	SideEffects string `json:"side_effects"`
	Notes       string `json:"notes"`
	Rating      int    `json:"rating"`
}

// GeneratePlan: ask the AI collaborator for plan content and store the plan.
func (h *MedicationHandler) GeneratePlan(c echo.Context) error {
	var req generatePlanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.MedicationName = strings.TrimSpace(req.MedicationName)
	if req.MedicationName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "medication_name required"})
	}

	// The AI call dominates this request; the timeout covers it plus the insert.
	ctx, cancel := context.WithTimeout(c.Request().Context(), 35*time.Second)
	defer cancel()

	plan, err := h.Med.GeneratePlan(ctx, authedUserID(c), req.MedicationName, req.FocusAreas)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, plan)
}

// ListPlans: all plans owned by the authenticated user.
func (h *MedicationHandler) ListPlans(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	plans, err := h.Med.ListPlans(ctx, authedUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, plans)
}

// CreateReview: store a periodic review against a plan.
func (h *MedicationHandler) CreateReview(c echo.Context) error {
	var req createReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.PlanID) == "" || strings.TrimSpace(req.Date) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "plan_id/date required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	review, err := h.Med.CreateReview(ctx, authedUserID(c),
		req.PlanID, req.Date, req.Symptoms, req.SideEffects, req.Notes, req.Rating)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, review)
}

// ListReviews: all reviews owned by the authenticated user, fully collected.
func (h *MedicationHandler) ListReviews(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reviews, err := h.Med.ListReviews(ctx, authedUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, reviews)
}
