// Package apperr defines the error kinds shared by every workflow.  Handlers
// translate a kind into an HTTP status; collaborator failures are wrapped into
// one of these kinds and never swallowed.
package apperr

import (
    "errors"
    "fmt"
    "net/http"
)

// Kind classifies an Error for the boundary layer.
type Kind int

const (
    // Validation covers malformed or conflicting input (HTTP 400).
    Validation Kind = iota
    // Auth covers bad credentials and invalid or expired tokens (HTTP 401).
    Auth
    // Store covers document store failures (HTTP 500).
    Store
    // Hashing covers bcrypt failures, including malformed stored hashes
    // (HTTP 500; details stay out of client responses).
    Hashing
)

// Error carries a kind, a client-safe message and an optional wrapped cause.
type Error struct {
    Kind Kind
    Msg  string
    Err  error
}

func (e *Error) Error() string {
    if e.Err != nil && e.Msg != "" {
        return fmt.Sprintf("%s: %v", e.Msg, e.Err)
    }
    if e.Err != nil {
        return e.Err.Error()
    }
    return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// NewValidation builds a Validation error with a client-visible message.
func NewValidation(msg string) *Error { return &Error{Kind: Validation, Msg: msg} }

// NewValidationf is NewValidation with formatting.
func NewValidationf(format string, args ...any) *Error {
    return &Error{Kind: Validation, Msg: fmt.Sprintf(format, args...)}
}

// NewAuth builds an Auth error with a client-visible message.
func NewAuth(msg string) *Error { return &Error{Kind: Auth, Msg: msg} }

// WrapAuth wraps a token library failure as an Auth error.
func WrapAuth(err error) *Error { return &Error{Kind: Auth, Msg: "token error", Err: err} }

// WrapStore wraps a document store failure.
func WrapStore(err error) *Error { return &Error{Kind: Store, Msg: "store error", Err: err} }

// WrapHashing wraps a password hashing failure.
func WrapHashing(err error) *Error { return &Error{Kind: Hashing, Msg: "hashing error", Err: err} }

// KindOf reports the kind of err.  Unclassified errors count as Store
// failures so they surface as server errors rather than leaking detail.
func KindOf(err error) Kind {
    var e *Error
    if errors.As(err, &e) {
        return e.Kind
    }
    return Store
}

// HTTPStatus maps an error to the response status the boundary should use.
func HTTPStatus(err error) int {
    switch KindOf(err) {
    case Validation:
        return http.StatusBadRequest
    case Auth:
        return http.StatusUnauthorized
    default:
        return http.StatusInternalServerError
    }
}
