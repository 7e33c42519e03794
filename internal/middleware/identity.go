package middleware

// identity.go defines helper functions shared across middleware files.
// Currently it provides a userID extraction function that reads the subject
// stored by JWTAuth. When no user is authenticated, "guest" is returned.

import (
    "github.com/labstack/echo/v4"
)

// userID extracts the authenticated user's id from the Echo context. It
// returns "guest" when no user is authenticated.
func userID(c echo.Context) string {
    if v, ok := c.Get("user_id").(string); ok && v != "" {
        return v
    }
    return "guest"
}
