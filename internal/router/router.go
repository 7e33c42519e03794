package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/medman/medman/internal/handler"    // import the handlers that implement the endpoints
	"github.com/medman/medman/internal/middleware" // import middleware for JWT authentication and caching
)

// RegisterRoutes wires every endpoint onto the provided Echo instance.  The
// auth endpoints are open; the medication endpoints require a valid access
// token, and their GET listings run behind the response cache.  Unknown
// paths fall through to the JSON 404 handler.
func RegisterRoutes(e *echo.Echo, a *handler.AuthHandler, m *handler.MedicationHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	// Health check for load balancers and monitoring systems.
	e.GET("/api/health", handler.Health)

	// Registration and login do not require an existing session.
	auth := e.Group("/api/auth")
	auth.POST("/register", a.Register)
	auth.POST("/login", a.Login)

	// Medication routes derive the acting user from the verified token, so
	// JWTAuth runs first.  The cache middleware only touches GET requests
	// and keys entries per user, which is why it runs after JWTAuth.
	med := e.Group("/api/medication")
	med.Use(middleware.JWTAuth(jwtSecret))
	if cache != nil {
		med.Use(cache)
	}
	med.POST("/plans", m.GeneratePlan)
	med.GET("/plans", m.ListPlans)
	med.POST("/reviews", m.CreateReview)
	med.GET("/reviews", m.ListReviews)

	// JSON fallback for everything else.
	e.RouteNotFound("/*", handler.NotFound)
}
