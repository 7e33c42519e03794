package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medman/medman/internal/apperr"
)

// fail renders a workflow error as a JSON body with the status its kind maps
// to. Server-side failures (store, hashing) are reported without detail.
func fail(c echo.Context, err error) error {
	status := apperr.HTTPStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	return c.JSON(status, echo.Map{"error": msg})
}

// authedUserID returns the subject stored by the JWT middleware.
func authedUserID(c echo.Context) string {
	if v, ok := c.Get("user_id").(string); ok {
		return v
	}
	return ""
}
