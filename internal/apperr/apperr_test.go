package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", NewValidation("bad input"), Validation},
		{"auth", NewAuth("Invalid credentials"), Auth},
		{"store", WrapStore(errors.New("connection reset")), Store},
		{"hashing", WrapHashing(errors.New("broken hash")), Hashing},
		{"wrapped", fmt.Errorf("outer: %w", NewAuth("nope")), Auth},
		{"unclassified", errors.New("mystery"), Store},
	}
	for _, tc := range cases {
		if got := KindOf(tc.err); got != tc.want {
			t.Errorf("%s: KindOf = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{NewValidation("x"), http.StatusBadRequest},
		{NewAuth("x"), http.StatusUnauthorized},
		{WrapStore(errors.New("x")), http.StatusInternalServerError},
		{WrapHashing(errors.New("x")), http.StatusInternalServerError},
		{errors.New("x"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestError_MessageAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: refused")
	err := WrapStore(cause)
	if !errors.Is(err, cause) {
		t.Fatalf("wrapped cause not reachable via errors.Is")
	}
	if err.Error() != "store error: dial tcp: refused" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	if msg := NewValidation("Username already exists").Error(); msg != "Username already exists" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
