package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestMapErrorNilStaysNil(t *testing.T) {
	if got := MapError(nil); got != nil {
		t.Fatalf("MapError(nil) must be a nil error interface, got %#v", got)
	}
}

func TestMapErrorPreservesDomainErrors(t *testing.T) {
	original := NewForbidden("access denied")
	mapped := MapError(original)
	var domainErr *DomainError
	if !errors.As(mapped, &domainErr) {
		t.Fatalf("want DomainError, got %T", mapped)
	}
	if domainErr.Code != "FORBIDDEN" || domainErr.HTTPStatus != http.StatusForbidden {
		t.Fatalf("domain error mangled: %+v", domainErr)
	}
}

func TestToDomainErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"missing row", pgx.ErrNoRows, "NOT_FOUND", http.StatusNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, "CONFLICT", http.StatusConflict},
		{"opaque store failure", errors.New("connection reset"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToDomainError(tc.err)
			if got.Code != tc.wantCode {
				t.Fatalf("want code %s, got %s", tc.wantCode, got.Code)
			}
			if got.HTTPStatus != tc.wantStatus {
				t.Fatalf("want status %d, got %d", tc.wantStatus, got.HTTPStatus)
			}
		})
	}
}

func TestToDomainErrorHidesInternalDetail(t *testing.T) {
	got := ToDomainError(errors.New("dial tcp 10.0.0.5:5432: i/o timeout"))
	if got.Message != "internal server error" {
		t.Fatalf("internal detail leaked: %q", got.Message)
	}
}
