package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/medman/medman/internal/handler"
	"github.com/medman/medman/internal/model"
	"github.com/medman/medman/internal/router"
	"github.com/medman/medman/internal/service"
)

// Stub stores for the medication routes.

type stubPlanStore struct {
	inserted []*model.MedicationPlan
}

func (s *stubPlanStore) Insert(_ context.Context, p *model.MedicationPlan) (primitive.ObjectID, error) {
	s.inserted = append(s.inserted, p)
	return primitive.NewObjectID(), nil
}

func (s *stubPlanStore) FindByUser(_ context.Context, _ primitive.ObjectID) ([]model.MedicationPlan, error) {
	out := make([]model.MedicationPlan, 0, len(s.inserted))
	for _, p := range s.inserted {
		out = append(out, *p)
	}
	return out, nil
}

type stubReviewStore struct {
	inserted []*model.MedicationReview
}

func (s *stubReviewStore) Insert(_ context.Context, r *model.MedicationReview) (primitive.ObjectID, error) {
	s.inserted = append(s.inserted, r)
	return primitive.NewObjectID(), nil
}

func (s *stubReviewStore) FindByUser(_ context.Context, uid primitive.ObjectID) ([]model.MedicationReview, error) {
	out := []model.MedicationReview{}
	for _, r := range s.inserted {
		if r.UserID == uid {
			out = append(out, *r)
		}
	}
	return out, nil
}

type stubGenerator struct{ out string }

func (s *stubGenerator) Generate(_ context.Context, _ string, _ []string) (string, error) {
	return s.out, nil
}

// newServer wires the full router with in-memory stores, no cache, no events.
func newServer(t *testing.T) (*echo.Echo, *stubReviewStore) {
	t.Helper()

	users := &memUserStore{users: map[string]*model.User{}}
	authSvc := service.NewAuthService(users, "test-secret", 60, bcrypt.MinCost)
	reviews := &stubReviewStore{}
	medSvc := service.NewMedicationService(&stubPlanStore{}, reviews, &stubGenerator{out: "plan text"}, nil)

	e := echo.New()
	router.RegisterRoutes(e, handler.NewAuthHandler(authSvc), handler.NewMedicationHandler(medSvc), "test-secret", nil)
	return e, reviews
}

func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func registerUser(t *testing.T, e *echo.Echo) (token, userID string) {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/auth/register", "", `{"username":"alice","password":"pw123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Token  string `json:"token"`
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token, resp.UserID
}

func TestMedicationRoutes_RequireToken(t *testing.T) {
	t.Parallel()

	e, _ := newServer(t)
	rec := doJSON(e, http.MethodGet, "/api/medication/reviews", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/medication/reviews", "bogus.token.here", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateAndListReviews_UserFromToken(t *testing.T) {
	t.Parallel()

	e, reviews := newServer(t)
	token, userID := registerUser(t, e)

	planID := primitive.NewObjectID().Hex()
	rec := doJSON(e, http.MethodPost, "/api/medication/reviews", token,
		`{"plan_id":"`+planID+`","date":"2024-03-01T10:00:00Z","symptoms":"none","side_effects":"","notes":"fine","rating":4}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	// The stored review is owned by the token subject, not by any body field.
	require.Len(t, reviews.inserted, 1)
	require.Equal(t, userID, reviews.inserted[0].UserID.Hex())

	rec = doJSON(e, http.MethodGet, "/api/medication/reviews", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []model.MedicationReview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, 4, got[0].Rating)
}

func TestCreateReview_BadDateIsBadRequest(t *testing.T) {
	t.Parallel()

	e, _ := newServer(t)
	token, _ := registerUser(t, e)

	rec := doJSON(e, http.MethodPost, "/api/medication/reviews", token,
		`{"plan_id":"`+primitive.NewObjectID().Hex()+`","date":"not-a-date","rating":3}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid date format")
}

func TestGeneratePlan_ReturnsStoredPlan(t *testing.T) {
	t.Parallel()

	e, _ := newServer(t)
	token, userID := registerUser(t, e)

	rec := doJSON(e, http.MethodPost, "/api/medication/plans", token,
		`{"medication_name":"Metformin","focus_areas":["sleep","appetite"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var plan model.MedicationPlan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	require.False(t, plan.ID.IsZero())
	require.Equal(t, userID, plan.UserID.Hex())
	require.Equal(t, "plan text", plan.PlanContent)
	require.Equal(t, []string{"sleep", "appetite"}, plan.FocusAreas)
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	t.Parallel()

	e, _ := newServer(t)
	rec := doJSON(e, http.MethodGet, "/api/unknown", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "The requested resource was not found")
}
